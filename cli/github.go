// Copyright © 2019 NAME HERE <EMAIL ADDRESS>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/lhopki01/git-mass-delete/pkg/config"
	"github.com/lhopki01/git-mass-delete/pkg/deleter"
	"github.com/lhopki01/git-mass-delete/pkg/ghapi"
	"github.com/lhopki01/git-mass-delete/pkg/repos"
	"github.com/lhopki01/git-mass-delete/pkg/selection"
	"github.com/mitchellh/colorstring"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// githubCmd deletes repos from the authenticated user's account
var githubCmd = &cobra.Command{
	Use:   "github",
	Short: "Delete repos from your github account",
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runGithub(bufio.NewReader(os.Stdin)))
	},
}

func init() {
	rootCmd.AddCommand(githubCmd)

	githubCmd.Flags().BoolP("yes", "y", false, "Skip the DELETE confirmation prompt")
	githubCmd.Flags().Bool("include-forks", false, "Include forked repos when listing")
	githubCmd.Flags().Bool("include-archived", false, "Include archived repos when listing")
	githubCmd.Flags().Int("concurrency", config.DefaultConcurrency, "Max concurrent delete requests")
	githubCmd.Flags().Int("per-page", config.DefaultPerPage, "Repos to fetch per page (max 100)")
	githubCmd.Flags().String("token", "", "Github token with the delete_repo scope\n(default is the GITHUB_TOKEN env var, then an interactive prompt)")

	err := viper.BindPFlags(githubCmd.Flags())
	if err != nil {
		log.Fatalf("Binding flags failed: %s", err)
	}

	viper.AutomaticEnv()
}

func runGithub(stdin *bufio.Reader) int {
	cfg := config.FromViper()

	token, err := resolveToken(viper.GetString("token"), os.Getenv("GITHUB_TOKEN"), stdin)
	if err != nil {
		colorstring.Printf("[red]%s\n", err)
		return exitFatal
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := ghapi.NewClient(ctx, token)

	fmt.Printf("Getting remote repo list")

	catalog, err := repos.FetchAll(ctx, client, cfg.PerPage)

	fmt.Println("")

	if err != nil {
		colorstring.Printf("[red]%s\n", err)
		return exitFatal
	}

	if len(catalog) == 0 {
		fmt.Println("No repositories found for the authenticated user.")
		return exitOK
	}

	filtered := catalog.Filter(cfg)
	if len(filtered) == 0 {
		fmt.Println("No repositories matched the current filters.")
		return exitOK
	}

	printCatalog(filtered)

	fmt.Print("Repos to delete (comma separated, ranges allowed e.g. 1,3-5,7): ")

	line, _ := stdin.ReadString('\n')

	indexes, err := selection.Parse(line, len(filtered))
	if errors.Is(err, selection.ErrNoSelection) {
		fmt.Println("No repositories selected.")
		return exitOK
	}

	if err != nil {
		colorstring.Printf("[red]%s\n", err)
		return exitFatal
	}

	toDelete := make(repos.Repos, 0, len(indexes))
	for _, i := range indexes {
		toDelete = append(toDelete, filtered[i-1])
	}

	fmt.Println("=============")
	colorstring.Printf("[red]%d repos to delete\n", len(toDelete))

	for _, repo := range toDelete {
		fmt.Printf("- %s\n", repo.FullName)
	}

	fmt.Println("=============")

	switch {
	case cfg.DryRun:
		fmt.Println("Dry-run mode enabled. No repositories will be deleted.")
	case cfg.AutoConfirm:
		fmt.Println("--yes provided: skipping interactive confirmation.")
	default:
		fmt.Println("Type DELETE (uppercase) to confirm deletion of the above repositories:")
	}

	if !confirm(cfg, readConfirmation(cfg, stdin)) {
		fmt.Println("Confirmation failed. Aborting.")
		return exitOK
	}

	// A single interrupt stops new deletes being dispatched but lets
	// the in-flight ones finish; each delete is atomic on the API side.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)

	defer signal.Stop(sigCh)

	go func() {
		<-sigCh
		//nolint:errcheck
		colorstring.Println("\n[yellow]Interrupt received, finishing in-flight deletes")
		cancel()
	}()

	outcomes := deleter.Run(ctx, client, toDelete, cfg)

	failures := report(outcomes)
	if failures > 0 {
		return exitFailures
	}

	return exitOK
}

// resolveToken applies the token precedence: flag, then GITHUB_TOKEN,
// then an interactive prompt.
func resolveToken(flagToken, envToken string, stdin *bufio.Reader) (string, error) {
	if strings.TrimSpace(flagToken) != "" {
		return strings.TrimSpace(flagToken), nil
	}

	if strings.TrimSpace(envToken) != "" {
		return strings.TrimSpace(envToken), nil
	}

	fmt.Print("Enter your github token: ")

	line, _ := stdin.ReadString('\n')

	token := strings.TrimSpace(line)
	if token == "" {
		return "", errors.New("no github token provided")
	}

	return token, nil
}

func printCatalog(list repos.Repos) {
	fmt.Println("\nYour repositories:")

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "Repo", "Visibility", "Tags"})
	table.SetBorder(false)

	for i, repo := range list {
		table.Append([]string{strconv.Itoa(i + 1), repo.FullName, repo.Visibility(), repo.Tags()})
	}

	table.Render()
	fmt.Println("")
}

func readConfirmation(cfg config.Config, stdin *bufio.Reader) string {
	if cfg.DryRun || cfg.AutoConfirm {
		return ""
	}

	line, _ := stdin.ReadString('\n')

	return line
}

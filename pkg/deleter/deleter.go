// Package deleter runs the selected deletes through a bounded worker
// pool, retrying rate-limited calls with backoff and collecting one
// outcome per repo.
package deleter

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/lhopki01/git-mass-delete/pkg/config"
	"github.com/lhopki01/git-mass-delete/pkg/debug"
	"github.com/lhopki01/git-mass-delete/pkg/ghapi"
	"github.com/lhopki01/git-mass-delete/pkg/repos"
	"github.com/mitchellh/colorstring"
	"github.com/remeh/sizedwaitgroup"
	"github.com/schollz/progressbar/v2"
)

// API is the single mutating operation the executor needs.
type API interface {
	Delete(ctx context.Context, fullName string) error
}

// Outcome is the result for one selected repo.  Exactly one of
// Deleted, WouldDelete or Err is meaningful.
type Outcome struct {
	Repo        *repos.Repo
	Deleted     bool
	WouldDelete bool
	Err         error
	Retryable   bool
	Attempts    int
}

// Backoff constants for rate-limited deletes: up to 3 attempts, 500ms
// doubling between them, jittered to half either way.
const (
	maxAttempts   = 3
	backoffFactor = 2
)

var baseBackoff = 500 * time.Millisecond

func init() {
	// the global source is goroutine safe, it just needs seeding for
	// the jitter to vary between runs
	rand.Seed(time.Now().UnixNano())
}

// Run deletes every repo in toDelete with at most cfg.Concurrency
// calls in flight.  A failure on one repo never stops the others.  If
// ctx is cancelled, in-flight deletes finish but nothing new is
// dispatched, so repos that never got a worker produce no outcome.
// In dry-run mode the same dispatch path runs but the network call is
// replaced by a synthetic would-delete outcome.
func Run(ctx context.Context, api API, toDelete repos.Repos, cfg config.Config) []Outcome {
	num := len(toDelete)
	if num == 0 {
		return nil
	}

	swg := sizedwaitgroup.New(cfg.Concurrency)
	results := make(chan Outcome, num)

	bar := progressbar.NewOptions(
		num,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[red]Deleting repos"),
	)

	showBar := !cfg.Verbose && !cfg.DryRun
	if showBar {
		err := bar.RenderBlank()
		if err != nil {
			fmt.Printf("Can't render progress bar")
		}
	}

	for _, repo := range toDelete {
		if ctx.Err() != nil {
			break
		}

		// AddWithContext stops a dispatch that is waiting on a pool
		// slot when the run is interrupted.
		if err := swg.AddWithContext(ctx); err != nil {
			break
		}

		go func(repo *repos.Repo) {
			defer swg.Done()

			results <- deleteRepo(ctx, api, repo, cfg)

			if showBar {
				//nolint:gomnd
				err := bar.Add(1)
				if err != nil {
					fmt.Printf("Can't add to progress bar")
				}
			}
		}(repo)
	}

	swg.Wait()
	close(results)

	outcomes := make([]Outcome, 0, num)
	for outcome := range results {
		outcomes = append(outcomes, outcome)
	}

	if showBar {
		err := bar.Finish()
		if err != nil {
			fmt.Printf("Can't render progress bar finish")
		}

		println("")
	}

	return outcomes
}

func deleteRepo(ctx context.Context, api API, repo *repos.Repo, cfg config.Config) Outcome {
	if cfg.DryRun {
		colorstring.Printf("[red]Would delete %s\n", repo.FullName)

		return Outcome{Repo: repo, WouldDelete: true}
	}

	if cfg.Verbose {
		colorstring.Printf("[red]Deleting %s\n", repo.FullName)
	}

	outcome := Outcome{Repo: repo}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		outcome.Attempts = attempt

		// The delete itself runs on a fresh context: an interrupt only
		// stops new dispatches and backoff waits, never a delete that
		// is already on the wire.  Per-call timeouts are the
		// transport's concern.
		err := api.Delete(context.Background(), repo.FullName)
		if err == nil {
			outcome.Deleted = true
			outcome.Err = nil

			return outcome
		}

		var rateLimit *ghapi.RateLimitError
		if !errors.As(err, &rateLimit) {
			outcome.Err = err

			return outcome
		}

		outcome.Err = err
		outcome.Retryable = true

		if attempt == maxAttempts {
			break
		}

		debug.Debugf("rate limited deleting %s, backing off (attempt %d/%d)", repo.FullName, attempt, maxAttempts)

		if !sleep(ctx, backoffDelay(attempt)) {
			// interrupted mid-backoff, give up on this repo
			break
		}
	}

	return outcome
}

func backoffDelay(attempt int) time.Duration {
	delay := baseBackoff
	for i := 1; i < attempt; i++ {
		delay *= backoffFactor
	}

	// jitter uniformly in [0.5x, 1.5x)
	return time.Duration(float64(delay) * (0.5 + rand.Float64()))
}

func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

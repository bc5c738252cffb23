package cli

import (
	"fmt"

	"github.com/lhopki01/git-mass-delete/pkg/deleter"
	"github.com/mitchellh/colorstring"
)

// report prints every failure with the repo it belongs to, then the
// summary counts, and returns the number of failed deletes for the
// exit status.
func report(outcomes []deleter.Outcome) int {
	deleted, wouldDelete, failed := 0, 0, 0

	for _, outcome := range outcomes {
		switch {
		case outcome.WouldDelete:
			wouldDelete++
		case outcome.Deleted:
			deleted++
		default:
			failed++
		}
	}

	if failed > 0 {
		fmt.Println("=============")
		//nolint:errcheck
		colorstring.Println("[red]Errors:")

		for _, outcome := range outcomes {
			if outcome.Deleted || outcome.WouldDelete {
				continue
			}

			colorstring.Printf("[red]Delete %s: %s\n", outcome.Repo.FullName, outcome.Err)
		}
	}

	fmt.Println("=============")

	if wouldDelete > 0 {
		colorstring.Printf("[red]%d repos would be deleted\n", wouldDelete)
	} else if failed > 0 {
		colorstring.Printf("[red]%d[reset]/[green]%d repos deleted\n", deleted, deleted+failed)
	} else {
		colorstring.Printf("[green]%d/%d repos deleted\n", deleted, deleted)
	}

	return failed
}

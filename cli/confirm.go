package cli

import (
	"strings"

	"github.com/lhopki01/git-mass-delete/pkg/config"
)

// confirmWord is what the user must type, exactly, before anything is
// deleted.
const confirmWord = "DELETE"

// confirm is the last gate before the executor runs.  Dry-run passes
// trivially because the executor only simulates in that mode; --yes
// skips the prompt; anything except the literal confirmation word
// aborts the run.
func confirm(cfg config.Config, answer string) bool {
	if cfg.DryRun {
		return true
	}

	if cfg.AutoConfirm {
		return true
	}

	return strings.TrimSpace(answer) == confirmWord
}

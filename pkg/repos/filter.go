package repos

import "github.com/lhopki01/git-mass-delete/pkg/config"

// Filter drops forks and archived repos unless the config includes
// them.  Order is preserved; the result is what gets numbered for the
// user, so selection indexes always refer to the filtered list.
func (repos Repos) Filter(cfg config.Config) Repos {
	var filtered Repos

	for _, repo := range repos {
		if repo.Fork && !cfg.IncludeForks {
			continue
		}

		if repo.Archived && !cfg.IncludeArchived {
			continue
		}

		filtered = append(filtered, repo)
	}

	return filtered
}

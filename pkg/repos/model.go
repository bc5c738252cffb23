package repos

import "strings"

// Repo is an immutable snapshot of one remote repository, fetched once
// per run.
type Repo struct {
	FullName string `json:"full_name"`
	Private  bool   `json:"private"`
	Fork     bool   `json:"fork"`
	Archived bool   `json:"archived"`
}

type Repos []*Repo

func (r *Repo) Visibility() string {
	if r.Private {
		return "private"
	}

	return "public"
}

// Tags renders the fork/archived markers shown next to a repo in the
// catalog listing.
func (r *Repo) Tags() string {
	var tags []string
	if r.Fork {
		tags = append(tags, "fork")
	}

	if r.Archived {
		tags = append(tags, "archived")
	}

	return strings.Join(tags, ", ")
}

package repos

import (
	"context"

	"github.com/pkg/errors"
)

// Lister is the single listing operation needed from the github client.
type Lister interface {
	ListPage(ctx context.Context, page, perPage int) (Repos, error)
}

// maxPages stops the fetch loop if the API keeps returning full pages
// forever.
const maxPages = 1000

// FetchAll pulls every page of repos starting at page 1, preserving the
// order the API returns them in.  A page shorter than perPage ends the
// listing, so an account with an exact multiple of perPage repos costs
// one extra empty request.  The first failed request aborts the whole
// fetch; a partial catalog is worse than no catalog.
func FetchAll(ctx context.Context, lister Lister, perPage int) (Repos, error) {
	var all Repos

	for page := 1; page <= maxPages; page++ {
		pageRepos, err := lister.ListPage(ctx, page, perPage)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to fetch repo page %d", page)
		}

		all = append(all, pageRepos...)

		if len(pageRepos) < perPage {
			return all, nil
		}
	}

	return nil, errors.Errorf("repo listing still returning full pages after %d pages", maxPages)
}

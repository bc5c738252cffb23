// Package ghapi is the thin github collaborator: one listing call and
// one delete call, with github errors mapped to this tool's taxonomy.
// Authentication lives entirely in here; nothing else sees the token.
package ghapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/go-github/github"
	"github.com/lhopki01/git-mass-delete/pkg/debug"
	"github.com/lhopki01/git-mass-delete/pkg/repos"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

type Client struct {
	gh *github.Client
}

func NewClient(ctx context.Context, token string) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	return &Client{gh: github.NewClient(tc)}
}

// ListPage fetches one page of the authenticated user's repos.
func (c *Client) ListPage(ctx context.Context, page, perPage int) (repos.Repos, error) {
	debug.Debugf("listing repos page %d (%d per page)", page, perPage)

	rs, _, err := c.gh.Repositories.List(ctx, "", &github.RepositoryListOptions{
		ListOptions: github.ListOptions{
			Page:    page,
			PerPage: perPage,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to perform github repository list request")
	}

	var result repos.Repos
	for _, r := range rs {
		result = append(result, &repos.Repo{
			FullName: r.GetFullName(),
			Private:  r.GetPrivate(),
			Fork:     r.GetFork(),
			Archived: r.GetArchived(),
		})
	}

	return result, nil
}

// Delete removes one repo by its owner/name form.
func (c *Client) Delete(ctx context.Context, fullName string) error {
	owner, name, err := splitFullName(fullName)
	if err != nil {
		return err
	}

	debug.Debugf("deleting %s", fullName)

	_, err = c.gh.Repositories.Delete(ctx, owner, name)

	return classifyDeleteError(err, fullName)
}

func classifyDeleteError(err error, fullName string) error {
	if err == nil {
		return nil
	}

	switch e := err.(type) {
	case *github.RateLimitError, *github.AbuseRateLimitError:
		return &RateLimitError{FullName: fullName}
	case *github.ErrorResponse:
		switch e.Response.StatusCode {
		case http.StatusNotFound:
			return &NotFoundError{FullName: fullName}
		case http.StatusForbidden:
			return &ForbiddenError{FullName: fullName}
		}
	}

	return errors.Wrapf(err, "unable to delete %s", fullName)
}

func splitFullName(fullName string) (string, string, error) {
	//nolint:gomnd
	parts := strings.SplitN(fullName, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.Errorf("repo name [%s] is not in owner/name form", fullName)
	}

	return parts[0], parts[1], nil
}

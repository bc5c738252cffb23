package ghapi

import "fmt"

// RateLimitError means github asked us to slow down.  It is the only
// delete failure worth retrying.
type RateLimitError struct {
	FullName string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited deleting %s", e.FullName)
}

// NotFoundError covers repos that vanished between listing and delete.
type NotFoundError struct {
	FullName string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("repo %s not found", e.FullName)
}

// ForbiddenError usually means the token is missing the delete_repo
// scope.
type ForbiddenError struct {
	FullName string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("not allowed to delete %s (does the token have the delete_repo scope?)", e.FullName)
}

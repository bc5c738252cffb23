// Package selection parses the range expressions users type to pick
// repos out of the numbered catalog, e.g. "1,3-5,7".
package selection

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrNoSelection is returned for empty input so callers can treat "the
// user typed nothing" as a graceful no-op rather than a bad expression.
var ErrNoSelection = errors.New("no selection given")

// ParseError identifies the exact token that made a selection invalid.
// The whole expression is rejected on the first bad token; silently
// skipping it could delete a different set than the user meant.
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid selection %q: %s", e.Token, e.Reason)
}

// Parse resolves a comma-separated mix of single indexes and inclusive
// A-B ranges into a sorted, deduplicated set of 1-based indexes into a
// catalog of max entries.  Whitespace around tokens is ignored.
func Parse(input string, max int) ([]int, error) {
	if strings.TrimSpace(input) == "" {
		return nil, ErrNoSelection
	}

	seen := map[int]bool{}

	for _, token := range strings.Split(input, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			return nil, &ParseError{Token: token, Reason: "empty token"}
		}

		start, end, err := parseToken(token, max)
		if err != nil {
			return nil, err
		}

		for i := start; i <= end; i++ {
			seen[i] = true
		}
	}

	indexes := make([]int, 0, len(seen))
	for i := range seen {
		indexes = append(indexes, i)
	}

	sort.Ints(indexes)

	return indexes, nil
}

func parseToken(token string, max int) (int, int, error) {
	if strings.Contains(token, "-") {
		//nolint:gomnd
		parts := strings.SplitN(token, "-", 2)

		start, err := parseIndex(strings.TrimSpace(parts[0]), max, token)
		if err != nil {
			return 0, 0, err
		}

		end, err := parseIndex(strings.TrimSpace(parts[1]), max, token)
		if err != nil {
			return 0, 0, err
		}

		if start > end {
			return 0, 0, &ParseError{
				Token:  token,
				Reason: fmt.Sprintf("range start %d is after end %d", start, end),
			}
		}

		return start, end, nil
	}

	n, err := parseIndex(token, max, token)

	return n, n, err
}

func parseIndex(s string, max int, token string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ParseError{Token: token, Reason: "not a number"}
	}

	if n < 1 {
		return 0, &ParseError{Token: token, Reason: "indexes start at 1"}
	}

	if n > max {
		return 0, &ParseError{Token: token, Reason: fmt.Sprintf("only %d repos listed", max)}
	}

	return n, nil
}

package selection

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	type testCase struct {
		tName           string
		input           string
		max             int
		expectedIndexes []int
	}
	testCases := []testCase{
		{
			tName:           "single index",
			input:           "1",
			max:             4,
			expectedIndexes: []int{1},
		},
		{
			tName:           "mix of singles and ranges",
			input:           "1,3-5,7",
			max:             7,
			expectedIndexes: []int{1, 3, 4, 5, 7},
		},
		{
			tName:           "whitespace around tokens and commas",
			input:           " 2 ,  4 - 5 ",
			max:             5,
			expectedIndexes: []int{2, 4, 5},
		},
		{
			tName:           "single element range",
			input:           "3-3",
			max:             4,
			expectedIndexes: []int{3},
		},
		{
			tName:           "duplicates and overlapping ranges collapse",
			input:           "1,1,2-4,3,4",
			max:             4,
			expectedIndexes: []int{1, 2, 3, 4},
		},
		{
			tName:           "whole catalog",
			input:           "1-4",
			max:             4,
			expectedIndexes: []int{1, 2, 3, 4},
		},
		{
			tName:           "trailing newline from the prompt",
			input:           "2\n",
			max:             4,
			expectedIndexes: []int{2},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.tName, func(t *testing.T) {
			t.Parallel()

			indexes, err := Parse(tc.input, tc.max)
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedIndexes, indexes)
		})
	}
}

func TestParseFailures(t *testing.T) {
	type testCase struct {
		tName       string
		input       string
		max         int
		expectedErr string
	}
	testCases := []testCase{
		{
			tName:       "zero index",
			input:       "0",
			max:         4,
			expectedErr: `invalid selection "0": indexes start at 1`,
		},
		{
			tName:       "index past the catalog",
			input:       "99",
			max:         4,
			expectedErr: `invalid selection "99": only 4 repos listed`,
		},
		{
			tName:       "backwards range",
			input:       "5-3",
			max:         7,
			expectedErr: `invalid selection "5-3": range start 5 is after end 3`,
		},
		{
			tName:       "not a number",
			input:       "a",
			max:         4,
			expectedErr: `invalid selection "a": not a number`,
		},
		{
			tName:       "open ended range",
			input:       "1-",
			max:         4,
			expectedErr: `invalid selection "1-": not a number`,
		},
		{
			tName:       "negative index parses as a range",
			input:       "-2",
			max:         4,
			expectedErr: `invalid selection "-2": not a number`,
		},
		{
			tName:       "empty token between commas",
			input:       "1,,2",
			max:         4,
			expectedErr: `invalid selection "": empty token`,
		},
		{
			tName:       "one bad token fails the whole expression",
			input:       "1,2,99",
			max:         4,
			expectedErr: `invalid selection "99": only 4 repos listed`,
		},
		{
			tName:       "range reaching past the catalog",
			input:       "3-9",
			max:         4,
			expectedErr: `invalid selection "3-9": only 4 repos listed`,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.tName, func(t *testing.T) {
			t.Parallel()

			indexes, err := Parse(tc.input, tc.max)
			assert.Nil(t, indexes)
			assert.EqualError(t, err, tc.expectedErr)

			var parseErr *ParseError
			assert.True(t, errors.As(err, &parseErr))
		})
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n"} {
		indexes, err := Parse(input, 4)
		assert.Nil(t, indexes)
		assert.True(t, errors.Is(err, ErrNoSelection))
	}
}

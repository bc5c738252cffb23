package cli

import (
	"testing"

	"github.com/lhopki01/git-mass-delete/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestConfirm(t *testing.T) {
	type testCase struct {
		tName    string
		cfg      config.Config
		answer   string
		expected bool
	}
	testCases := []testCase{
		{
			tName:    "exact word confirms",
			answer:   "DELETE",
			expected: true,
		},
		{
			tName:    "surrounding whitespace from the prompt is fine",
			answer:   "  DELETE\n",
			expected: true,
		},
		{
			tName:    "lowercase does not confirm",
			answer:   "delete",
			expected: false,
		},
		{
			tName:    "empty answer does not confirm",
			answer:   "",
			expected: false,
		},
		{
			tName:    "anything else does not confirm",
			answer:   "yes please",
			expected: false,
		},
		{
			tName:    "dry run confirms trivially",
			cfg:      config.Config{DryRun: true},
			answer:   "",
			expected: true,
		},
		{
			tName:    "auto confirm skips the prompt",
			cfg:      config.Config{AutoConfirm: true},
			answer:   "",
			expected: true,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.tName, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, confirm(tc.cfg, tc.answer))
		})
	}
}

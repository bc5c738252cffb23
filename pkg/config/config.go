package config

import "github.com/spf13/viper"

const (
	// DefaultConcurrency is the number of delete requests in flight at
	// once unless overridden.
	DefaultConcurrency = 4
	// DefaultPerPage is the github maximum.
	DefaultPerPage = 100

	maxPerPage = 100
)

// Config holds everything a single run needs.  It is built once from
// viper before any network call and never mutated afterwards; no other
// package reads flags directly.
type Config struct {
	DryRun          bool
	AutoConfirm     bool
	Verbose         bool
	IncludeForks    bool
	IncludeArchived bool
	Concurrency     int
	PerPage         int
}

// FromViper reads the bound flags and clamps them to sane bounds.
func FromViper() Config {
	c := Config{
		DryRun:          viper.GetBool("dry-run"),
		AutoConfirm:     viper.GetBool("yes"),
		Verbose:         viper.GetBool("verbose"),
		IncludeForks:    viper.GetBool("include-forks"),
		IncludeArchived: viper.GetBool("include-archived"),
		Concurrency:     viper.GetInt("concurrency"),
		PerPage:         viper.GetInt("per-page"),
	}

	if c.Concurrency < 1 {
		c.Concurrency = 1
	}

	if c.PerPage < 1 {
		c.PerPage = 1
	} else if c.PerPage > maxPerPage {
		c.PerPage = maxPerPage
	}

	return c
}

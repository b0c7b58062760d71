// Package config loads configuration from files, env vars, and flags, and validates it.
package config

import (
	"stonyx-utils/internal/naming"
)

// Config holds the application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Naming  naming.Config `mapstructure:"naming"`
	Files   FilesConfig   `mapstructure:"files"`
	Merge   MergeConfig   `mapstructure:"merge"`
	Output  OutputConfig  `mapstructure:"output"`
	Random  RandomConfig  `mapstructure:"random"`
}

// LoggingConfig holds logging parameters.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File, when set, receives a JSON copy of every log record.
	File string `mapstructure:"file"`
}

// FilesConfig controls directory walking for the collections command.
type FilesConfig struct {
	// Extension selects which files are visited (e.g. ".json").
	Extension string `mapstructure:"extension"`
	// Recursive descends into subdirectories.
	Recursive bool `mapstructure:"recursive"`
	// RecursiveNaming prefixes names with their directory path ("admin/users").
	RecursiveNaming bool `mapstructure:"recursive_naming"`
	// RawName keeps file names as-is instead of camelCasing them.
	RawName bool `mapstructure:"raw_name"`
	// IgnoreAccessFailure treats an unreadable directory as empty.
	IgnoreAccessFailure bool `mapstructure:"ignore_access_failure"`
}

// MergeConfig controls the merge command.
type MergeConfig struct {
	// IgnoreNewKeys drops keys that only exist in later files.
	IgnoreNewKeys bool `mapstructure:"ignore_new_keys"`
}

// OutputConfig controls how structured results are printed.
type OutputConfig struct {
	// Format is "yaml" or "json".
	Format string `mapstructure:"format"`
}

// RandomConfig controls the random command.
type RandomConfig struct {
	// Length of generated strings.
	Length int `mapstructure:"length"`
}

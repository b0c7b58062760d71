package config

import (
	"fmt"
	"strings"

	"stonyx-utils/internal/inflect"
	"stonyx-utils/internal/naming"
)

// MaxRandomLength bounds the length of strings produced by the random command.
const MaxRandomLength = 4096

// ValidationError represents a configuration validation error with context.
type ValidationError struct {
	Field   string
	Message string
	Hint    string
}

func (e ValidationError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s (hint: %s)", e.Field, e.Message, e.Hint)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Field   string
	Message string
	Hint    string
}

// ValidationResult contains the results of configuration validation.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// Error returns a combined error message if there are validation errors.
func (r *ValidationResult) Error() string {
	if !r.HasErrors() {
		return ""
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the configuration for errors and returns validation results.
// It returns both errors (fatal) and warnings (non-fatal issues).
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{}

	c.Logging.validate(result)
	c.Files.validate(result)
	c.Output.validate(result)
	c.Random.validate(result)
	validateNamingConfig(result, c.Naming)

	return result
}

func (l *LoggingConfig) validate(result *ValidationResult) {
	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid log level %q", l.Level),
			Hint:    "use one of: debug, info, warn, error",
		})
	}

	switch l.Format {
	case "json", "text":
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("invalid log format %q", l.Format),
			Hint:    "use json or text",
		})
	}
}

func (f *FilesConfig) validate(result *ValidationResult) {
	if f.Extension == "" || f.Extension == "." {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "files.extension",
			Message: "extension cannot be empty",
			Hint:    "e.g. .json",
		})
	}
	if f.RecursiveNaming && !f.Recursive {
		result.Warnings = append(result.Warnings, ValidationWarning{
			Field:   "files.recursive_naming",
			Message: "has no effect unless files.recursive is enabled",
		})
	}
}

func (o *OutputConfig) validate(result *ValidationResult) {
	switch o.Format {
	case "yaml", "json":
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "output.format",
			Message: fmt.Sprintf("invalid output format %q", o.Format),
			Hint:    "use yaml or json",
		})
	}
}

func (r *RandomConfig) validate(result *ValidationResult) {
	if r.Length < 0 || r.Length > MaxRandomLength {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "random.length",
			Message: fmt.Sprintf("length %d is out of range", r.Length),
			Hint:    fmt.Sprintf("use a value between 1 and %d, or 0 for the default", MaxRandomLength),
		})
	}
}

func validateNamingConfig(result *ValidationResult, cfg naming.Config) {
	validateOverrides(result, "naming.plural_overrides", cfg.PluralOverrides)
	validateOverrides(result, "naming.singular_overrides", cfg.SingularOverrides)
}

func validateOverrides(result *ValidationResult, field string, overrides map[string]string) {
	for from, to := range overrides {
		if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("override %q -> %q cannot have an empty side", from, to),
			})
			continue
		}
		// Overrides are only consulted for single alphabetic words
		if !inflect.IsWord(from) {
			result.Warnings = append(result.Warnings, ValidationWarning{
				Field:   field,
				Message: fmt.Sprintf("override key %q is not a single alphabetic word and will never match", from),
				Hint:    "identifiers are split on '-' and '_' before inflection",
			})
		}
	}
}

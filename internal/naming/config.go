// Package naming derives collection and model names from singular
// identifiers, with configurable plural/singular overrides and collision
// handling for names registered from many sources.
package naming

// Config lists words whose inflection should not come from the built-in rules.
// Keys are matched exactly, then lowercased.
type Config struct {
	PluralOverrides   map[string]string `mapstructure:"plural_overrides"`   // e.g. staff=staff, octopus=octopodes
	SingularOverrides map[string]string `mapstructure:"singular_overrides"` // e.g. data=datum
}

// DefaultConfig returns a Config with no overrides.
func DefaultConfig() Config {
	return Config{
		PluralOverrides:   make(map[string]string),
		SingularOverrides: make(map[string]string),
	}
}

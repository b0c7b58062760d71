package naming

import (
	"log/slog"
	"strings"

	"stonyx-utils/internal/inflect"
)

// Pluralize converts a singular word to its plural form.
// Checks custom overrides first, then falls back to the inflect rules.
func (n *Namer) Pluralize(word string) string {
	if override, ok := lookupOverride(n.config.PluralOverrides, word); ok {
		n.logger.Debug("plural override applied",
			slog.String("word", word),
			slog.String("plural", override),
		)
		return override
	}
	return inflect.Pluralize(word)
}

// Singularize converts a plural word to its singular form.
// Checks custom overrides first, then falls back to the inflect rules.
func (n *Namer) Singularize(word string) string {
	if override, ok := lookupOverride(n.config.SingularOverrides, word); ok {
		n.logger.Debug("singular override applied",
			slog.String("word", word),
			slog.String("singular", override),
		)
		return override
	}
	return inflect.Singularize(word)
}

// lookupOverride matches the exact key first. A case-insensitive match has
// the casing of word reapplied to the override.
func lookupOverride(overrides map[string]string, word string) (string, bool) {
	if override, ok := overrides[word]; ok {
		return override, true
	}
	if override, ok := overrides[strings.ToLower(word)]; ok {
		return inflect.ApplyCasing(word, override), true
	}
	return "", false
}

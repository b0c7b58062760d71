package inflect

import "strings"

// Pluralize returns the plural form of word.
//
// Words that are empty or contain anything other than ASCII letters are
// returned unchanged. The result keeps the casing pattern of word: all-caps
// stays all-caps, lowercase stays lowercase and a leading capital is kept.
func Pluralize(word string) string {
	if !IsWord(word) {
		return word
	}

	lower := strings.ToLower(word)

	if contains(uncountables, lower) {
		return word
	}

	if plural, ok := irregularPlurals[lower]; ok {
		return ApplyCasing(word, plural)
	}

	if r, ok := matchRule(lower); ok {
		return ApplyCasing(word, r.apply(lower))
	}

	return word + "s"
}

// IsWord reports whether word is a non-empty run of ASCII letters.
func IsWord(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		c := word[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

// IsUncountable reports whether word has no distinct plural form.
func IsUncountable(word string) bool {
	return contains(uncountables, strings.ToLower(word))
}

func matchRule(lower string) (rule, bool) {
	for _, r := range pluralRules {
		if r.match(lower) {
			return r, true
		}
	}
	return rule{}, false
}

// ApplyCasing reapplies the casing pattern of original to word. An all-caps
// original upper-cases word, an all-lowercase original lower-cases it and an
// original with a leading capital capitalizes only the first letter of word.
func ApplyCasing(original, word string) string {
	switch {
	case original == strings.ToUpper(original):
		return strings.ToUpper(word)
	case original == strings.ToLower(original):
		return strings.ToLower(word)
	case isUpper(original[0]) && word != "":
		return strings.ToUpper(word[:1]) + word[1:]
	default:
		return word
	}
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

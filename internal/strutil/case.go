// Package strutil provides string case conversion and random identifier helpers.
package strutil

import "strings"

// KebabToCamel converts kebab-case to camelCase.
// Example: "hello-world" -> "helloWorld"
func KebabToCamel(s string) string {
	return delimitedToCase(s, '-', false)
}

// KebabToPascal converts kebab-case to PascalCase.
// Example: "hello-world" -> "HelloWorld"
func KebabToPascal(s string) string {
	return delimitedToCase(s, '-', true)
}

// SnakeToCamel converts snake_case to camelCase.
// Example: "user_name" -> "userName"
func SnakeToCamel(s string) string {
	return delimitedToCase(s, '_', false)
}

// SnakeToPascal converts snake_case to PascalCase.
// Example: "user_profiles" -> "UserProfiles"
func SnakeToPascal(s string) string {
	return delimitedToCase(s, '_', true)
}

// Capitalize upper-cases the first byte of s.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Decapitalize lower-cases the first byte of s.
func Decapitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// SplitIdentifier splits a kebab-case, snake_case or camelCase identifier
// into its non-empty tokens. A new token starts after '-' or '_', at an
// upper-case letter following a lower-case letter or digit, and at the last
// capital of an acronym run ("URLItem" -> "URL", "Item").
func SplitIdentifier(s string) []string {
	var tokens []string
	start := 0
	flush := func(end int) {
		if end > start {
			tokens = append(tokens, s[start:end])
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '-' || c == '_' {
			flush(i)
			start = i + 1
			continue
		}
		if i == start || !isUpperASCII(c) {
			continue
		}
		prev := s[i-1]
		acronymEnd := isUpperASCII(prev) && i+1 < len(s) && isLowerASCII(s[i+1])
		if isLowerASCII(prev) || isDigitASCII(prev) || acronymEnd {
			flush(i)
			start = i
		}
	}
	flush(len(s))
	return tokens
}

func isUpperASCII(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLowerASCII(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigitASCII(c byte) bool { return c >= '0' && c <= '9' }

// delimitedToCase drops every delimiter and upper-cases the character that
// follows it. Everything else is copied unchanged.
func delimitedToCase(s string, delim byte, pascal bool) string {
	var b strings.Builder
	b.Grow(len(s))

	upperNext := pascal
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == delim:
			upperNext = true
		case upperNext:
			b.WriteString(strings.ToUpper(string(c)))
			upperNext = false
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

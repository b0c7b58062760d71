package inflect

import "strings"

// rule pairs a suffix matcher with the transform applied to the lowercase word.
type rule struct {
	name  string
	match func(lower string) bool
	apply func(lower string) string
}

// pluralRules is evaluated top to bottom; the first matching rule wins.
var pluralRules = []rule{
	{
		// quiz -> quizzes, waltz -> waltzes
		name:  "z",
		match: suffix("z"),
		apply: func(w string) string {
			if strings.HasSuffix(w, "iz") {
				return w + "zes"
			}
			return w + "es"
		},
	},
	{
		// bus -> buses, church -> churches, stomach -> stomachs
		name:  "sibilant",
		match: suffix("s", "x", "ch", "sh"),
		apply: func(w string) string {
			if strings.HasSuffix(w, "ach") {
				return w + "s"
			}
			return w + "es"
		},
	},
	{
		// key -> keys
		name:  "vowel-y",
		match: vowelThen('y'),
		apply: appendS,
	},
	{
		// city -> cities
		name:  "consonant-y",
		match: suffix("y"),
		apply: func(w string) string { return w[:len(w)-1] + "ies" },
	},
	{
		// knife -> knives
		name:  "fe",
		match: suffix("fe"),
		apply: func(w string) string {
			if contains(fExceptions, w) {
				return w + "s"
			}
			return w[:len(w)-2] + "ves"
		},
	},
	{
		// wolf -> wolves, chief -> chiefs
		name:  "f",
		match: suffix("f"),
		apply: func(w string) string {
			if contains(fExceptions, w) {
				return w + "s"
			}
			return w[:len(w)-1] + "ves"
		},
	},
	{
		// thesis -> theses
		name:  "sis",
		match: suffix("sis"),
		apply: func(w string) string { return w[:len(w)-2] + "ses" },
	},
	{
		// zoo -> zoos, video -> videos
		name:  "vowel-o",
		match: vowelThen('o'),
		apply: appendS,
	},
	{
		// hero -> heroes, piano -> pianos
		name:  "consonant-o",
		match: suffix("o"),
		apply: func(w string) string {
			if contains(oExceptions, w) {
				return w + "s"
			}
			return w + "es"
		},
	},
	{
		name:  "default",
		match: func(string) bool { return true },
		apply: appendS,
	},
}

func suffix(suffixes ...string) func(string) bool {
	return func(w string) bool {
		for _, s := range suffixes {
			if strings.HasSuffix(w, s) {
				return true
			}
		}
		return false
	}
}

func vowelThen(last byte) func(string) bool {
	return func(w string) bool {
		n := len(w)
		return n >= 2 && w[n-1] == last && isVowel(w[n-2])
	}
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func appendS(w string) string {
	return w + "s"
}

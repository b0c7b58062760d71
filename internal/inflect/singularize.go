package inflect

import (
	"strings"

	"github.com/jinzhu/inflection"
)

func init() {
	for singular, plural := range irregularPlurals {
		inflection.AddIrregular(singular, plural)
	}
	for word := range uncountables {
		inflection.AddUncountable(word)
	}
}

// Singularize returns the singular form of word, the reverse of Pluralize.
//
// Input validation and casing follow Pluralize. Irregular and uncountable
// words come from the same tables Pluralize uses. Suffix rules are reversed
// next, and only a singular that Pluralize maps back to word is accepted;
// anything left is resolved by the inflection rule set.
func Singularize(word string) string {
	if !IsWord(word) {
		return word
	}

	lower := strings.ToLower(word)

	if contains(uncountables, lower) {
		return word
	}

	if singular, ok := irregularSingulars[lower]; ok {
		return ApplyCasing(word, singular)
	}

	return ApplyCasing(word, singularOf(lower))
}

func singularOf(lower string) string {
	for _, candidate := range reverseRules(lower) {
		if Pluralize(candidate) == lower {
			return candidate
		}
	}

	singular := inflection.Singular(lower)
	if Pluralize(singular) == lower {
		return singular
	}
	if trimmed := strings.TrimSuffix(lower, "s"); trimmed != lower && Pluralize(trimmed) == lower {
		return trimmed
	}
	return singular
}

// reverseRules lists singular candidates for lower in order of preference,
// undoing the "ves", z and sibilant rules. Endings it does not recognise
// yield nothing.
func reverseRules(w string) []string {
	n := len(w)
	switch {
	case strings.HasSuffix(w, "ves"):
		stem := w[:n-3]
		var out []string
		if contains(feVesWords, stem+"fe") {
			out = append(out, stem+"fe")
		}
		if contains(fVesWords, stem+"f") {
			out = append(out, stem+"f")
		}
		return append(out, stem+"ve")

	case strings.HasSuffix(w, "izzes"):
		// quizzes -> quiz
		return []string{w[:n-3]}

	case strings.HasSuffix(w, "zes"):
		// waltzes -> waltz, buzzes -> buzz, mazes -> maze
		stem := w[:n-2]
		if contains(esStems, stem) || consonantAt(stem, len(stem)-2) {
			return []string{stem, w[:n-1]}
		}
		return []string{w[:n-1]}

	case strings.HasSuffix(w, "sses"):
		// classes -> class
		return []string{w[:n-2]}

	case strings.HasSuffix(w, "uses"):
		// viruses -> virus, houses -> house
		stem := w[:n-2]
		if contains(seWords, w[:n-1]) {
			return []string{w[:n-1]}
		}
		if consonantAt(stem, len(stem)-3) {
			return []string{stem, w[:n-1]}
		}
		return []string{w[:n-1], stem}

	case strings.HasSuffix(w, "ses"):
		if contains(esStems, w[:n-2]) {
			return []string{w[:n-2]}
		}
		return nil

	case strings.HasSuffix(w, "xes"), strings.HasSuffix(w, "ches"), strings.HasSuffix(w, "shes"):
		// churches -> church, headaches -> headache
		return []string{w[:n-2], w[:n-1]}
	}
	return nil
}

func consonantAt(w string, i int) bool {
	return i >= 0 && i < len(w) && !isVowel(w[i])
}

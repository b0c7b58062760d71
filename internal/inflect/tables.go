// Package inflect pluralizes and singularizes single English nouns.
//
// Lookups consult, in order, the uncountable set, the irregular table and an
// ordered list of suffix rules. The casing of the input word is reapplied to
// the result. All tables are read-only after package initialization, so every
// function here is safe for concurrent use.
package inflect

// irregularPlurals maps lowercase singular nouns to their lowercase plural.
var irregularPlurals = map[string]string{
	"person":     "people",
	"man":        "men",
	"woman":      "women",
	"child":      "children",
	"tooth":      "teeth",
	"foot":       "feet",
	"mouse":      "mice",
	"goose":      "geese",
	"ox":         "oxen",
	"cactus":     "cacti",
	"nucleus":    "nuclei",
	"syllabus":   "syllabi",
	"focus":      "foci",
	"fungus":     "fungi",
	"appendix":   "appendices",
	"index":      "indices",
	"criterion":  "criteria",
	"phenomenon": "phenomena",
	"die":        "dice",
	"thesis":     "theses",
	"analysis":   "analyses",
	"crisis":     "crises",
	"radius":     "radii",
	"corpus":     "corpora",
}

// irregularSingulars is the reverse of irregularPlurals, built at init.
var irregularSingulars = invert(irregularPlurals)

// uncountables have no distinct plural form.
var uncountables = map[string]struct{}{
	"sheep":       {},
	"fish":        {},
	"deer":        {},
	"series":      {},
	"species":     {},
	"news":        {},
	"information": {},
	"rice":        {},
	"moose":       {},
	"bison":       {},
	"salmon":      {},
	"aircraft":    {},
	"offspring":   {},
}

// fExceptions end in "f" or "fe" but take a plain "s".
var fExceptions = map[string]struct{}{
	"chief":  {},
	"roof":   {},
	"belief": {},
	"chef":   {},
	"cliff":  {},
	"reef":   {},
	"proof":  {},
	"brief":  {},
}

// oExceptions end in consonant + "o" but take a plain "s".
var oExceptions = map[string]struct{}{
	"piano": {},
	"photo": {},
	"halo":  {},
	"canto": {},
	"solo":  {},
}

// fVesWords and feVesWords are the singulars whose "-ves" plural comes from
// the f and fe rules. Other "-ves" plurals end in "ve" (curves, valves).
var fVesWords = map[string]struct{}{
	"wolf":      {},
	"werewolf":  {},
	"half":      {},
	"calf":      {},
	"shelf":     {},
	"bookshelf": {},
	"elf":       {},
	"self":      {},
	"leaf":      {},
	"sheaf":     {},
	"loaf":      {},
	"thief":     {},
	"hoof":      {},
	"scarf":     {},
	"dwarf":     {},
	"wharf":     {},
}

var feVesWords = map[string]struct{}{
	"knife":     {},
	"penknife":  {},
	"life":      {},
	"wife":      {},
	"midwife":   {},
	"housewife": {},
}

// esStems end in "s" or vowel + "z" and pluralize with "es". Without them
// "gases" would read as the plural of "gase".
var esStems = map[string]struct{}{
	"topaz":  {},
	"gas":    {},
	"alias":  {},
	"atlas":  {},
	"canvas": {},
	"bias":   {},
	"lens":   {},
	"iris":   {},
}

// seWords end in consonant + "use"; most such plurals come from "-us" words.
var seWords = map[string]struct{}{
	"abuse":   {},
	"excuse":  {},
	"fuse":    {},
	"muse":    {},
	"ruse":    {},
	"recluse": {},
	"refuse":  {},
}

func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

func contains(set map[string]struct{}, word string) bool {
	_, ok := set[word]
	return ok
}

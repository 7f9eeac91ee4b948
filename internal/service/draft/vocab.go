package draft

import "strings"

// Keyword vocabularies for the rule-based pipeline. All matching is done on
// lowercased text with plain substring containment; the Slovak/Czech entries
// therefore include both accented and stripped spellings.

// Slovak/Czech marker words that flag the conversation language even without
// diacritics in the text.
var skczMarkers = []string{
	"nefunguje", "chyba", "problém", "problem", "malo by", "má byť", "ocakav", "očakáv",
}

// Label vocabularies, checked in priority order: bug, feature, chore.
// Nothing matched falls through to "discussion".
var bugWords = []string{
	"bug", "error", "exception", "crash", "fails", "not working", "doesn't work",
	"chyba", "nefunguje", "padá", "spadne", "výnimka", "vynimka", "rozbité", "rozbite", "problem", "problém",
}

var featureWords = []string{
	"feature", "add", "implement", "support", "should have", "would be nice",
	"funkcia", "funkcionalita", "pridať", "pridat", "doplniť", "implementovať", "implementovat", "podpora", "chcem", "bolo by fajn",
	"dark mode", "dark theme",
}

var choreWords = []string{
	"refactor", "cleanup", "optimize", "chore", "tech debt",
	"refaktor", "upratať", "upratat", "optimaliz", "technický dlh", "technicky dlh",
}

// Area vocabularies, checked in priority order.
var areaRules = []struct {
	area  string
	words []string
}{
	{"frontend", []string{"frontend", "ui", "mui", "react"}},
	{"backend", []string{"backend", "spring", "api", "controller", "service"}},
	{"websocket", []string{"websocket", "ws", "stomp"}},
	{"database", []string{"db", "database", "jpa", "hibernate"}},
}

// Expectation phrases per language.
var expectedWordsEN = []string{"should", "expected", "ideally", "must", "need to", "we want"}
var expectedWordsSKCZ = []string{
	"malo by", "má byť", "ma byt", "očakávam", "ocakavam", "ideálne", "idealne",
	"musí", "musi", "potrebujeme", "chcem aby",
}

// Observed-behavior phrases per language.
var actualWordsEN = []string{"currently", "happens", "sometimes", "now", "in reality", "actually"}
var actualWordsSKCZ = []string{
	"aktuálne", "aktualne", "deje sa", "stáva sa", "stava sa", "niekedy",
	"teraz", "momentálne", "momentalne", "v realite",
}

// Fallback problem phrases used when no observed-behavior phrase matched.
var problemWords = []string{"nefunguje", "chyba", "problem", "problém", "error", "exception", "crash"}

// Evidence scoring vocabularies.
var scoreProblemWords = []string{
	"bug", "error", "exception", "crash", "fails",
	"nefunguje", "chyba", "výnimka", "vynimka", "padá", "spadne", "problém", "problem",
}

var scoreExpectationWords = []string{
	"should", "expected", "ideally",
	"malo by", "má byť", "ma byt", "očakávam", "ocakavam", "idealne",
}

var scoreStepsWords = []string{
	"steps", "reproduce", "when i", "then",
	"kroky", "reproduk", "keď", "ked", "tak",
}

// containsAny reports whether text contains at least one of the keys.
func containsAny(text string, keys []string) bool {
	for _, k := range keys {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

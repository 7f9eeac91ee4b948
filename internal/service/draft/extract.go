package draft

import (
	"regexp"
	"strings"

	"github.com/mhladky/teamchat-backend/internal/domain"
)

const (
	maxSteps         = 8
	maxFallbackSteps = 3
)

// stepLineRe matches enumerated lines: "1) ...", "2. ..." or "3- ...".
var stepLineRe = regexp.MustCompile(`(^|\n)\s*(\d+\)|\d+\.|\d+-)\s+([^\n]+)`)

// extractExpected returns the first message mentioning an expectation
// phrase, or "" when none does.
func extractExpected(messages []*domain.Message, l lang) string {
	keys := expectedWordsEN
	if l == langSKCZ {
		keys = expectedWordsSKCZ
	}
	return findFirstMessageContaining(messages, keys)
}

// extractActual returns the first message describing observed behavior.
// When no observed-behavior phrase matches, the first message naming a
// problem is used instead, so bug reports rarely end up without it.
func extractActual(messages []*domain.Message, l lang) string {
	keys := actualWordsEN
	if l == langSKCZ {
		keys = actualWordsSKCZ
	}

	if s := findFirstMessageContaining(messages, keys); s != "" {
		return s
	}

	return findFirstMessageContaining(messages, problemWords)
}

// extractSteps collects reproduction steps from enumerated lines across the
// whole conversation (up to 8). Without enumerated lines it falls back to
// messages containing a causal connective (when / keď), up to 3.
func extractSteps(messages []*domain.Message, l lang) []string {
	text := allTextRaw(messages)

	var steps []string
	for _, m := range stepLineRe.FindAllStringSubmatch(text, -1) {
		if len(steps) >= maxSteps {
			break
		}
		steps = append(steps, strings.TrimSpace(m[3]))
	}

	if len(steps) == 0 {
		for _, msg := range messages {
			c := strings.ToLower(msg.Content)
			skczHit := l == langSKCZ && (strings.Contains(c, "keď") || strings.Contains(c, "ked"))
			enHit := l == langEN && strings.Contains(c, "when")
			if skczHit || enHit {
				steps = append(steps, strings.TrimSpace(msg.Content))
				if len(steps) >= maxFallbackSteps {
					break
				}
			}
		}
	}

	return steps
}

// findFirstMessageContaining returns the trimmed content of the first
// message whose lowercased text contains any keyword, or "".
func findFirstMessageContaining(messages []*domain.Message, keys []string) string {
	for _, m := range messages {
		lc := strings.ToLower(m.Content)
		for _, k := range keys {
			if strings.Contains(lc, k) {
				return strings.TrimSpace(m.Content)
			}
		}
	}
	return ""
}

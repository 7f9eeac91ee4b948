package draft

import (
	"strings"

	"github.com/mhladky/teamchat-backend/internal/domain"
)

// detectPrimaryLabel classifies the topic as bug, feature or chore by
// keyword priority over the title plus all message text. Conversations
// matching none of the vocabularies get the catch-all "discussion".
func detectPrimaryLabel(title string, messages []*domain.Message) string {
	text := strings.ToLower(title + "\n" + allText(messages))

	switch {
	case containsAny(text, bugWords):
		return "bug"
	case containsAny(text, featureWords):
		return "feature"
	case containsAny(text, choreWords):
		return "chore"
	default:
		return "discussion"
	}
}

// guessArea returns the first matching component area, or "" when the
// conversation names none.
func guessArea(messages []*domain.Message) string {
	t := allText(messages)
	for _, rule := range areaRules {
		if containsAny(t, rule.words) {
			return rule.area
		}
	}
	return ""
}

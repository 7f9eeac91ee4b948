package draft

import (
	"sort"
	"strings"

	"github.com/mhladky/teamchat-backend/internal/domain"
)

const maxEvidence = 5

// pickTopMessages ranks the conversation by relevance score and returns up
// to 5 messages. The sort is stable, so equally scored messages keep their
// chronological order.
func pickTopMessages(messages []*domain.Message) []*domain.Message {
	ranked := make([]*domain.Message, len(messages))
	copy(ranked, messages)

	sort.SliceStable(ranked, func(i, j int) bool {
		return score(ranked[i].Content) > score(ranked[j].Content)
	})

	if len(ranked) > maxEvidence {
		ranked = ranked[:maxEvidence]
	}
	return ranked
}

// score rates a message: up to 8 points for length (1 per 20 characters),
// +6 for problem vocabulary, +4 for expectation vocabulary, +4 for
// reproduction-steps vocabulary.
func score(content string) int {
	c := strings.ToLower(content)

	s := len([]rune(content)) / 20
	if s > 8 {
		s = 8
	}

	if containsAny(c, scoreProblemWords) {
		s += 6
	}
	if containsAny(c, scoreExpectationWords) {
		s += 4
	}
	if containsAny(c, scoreStepsWords) {
		s += 4
	}

	return s
}

package draft

import (
	"regexp"
	"strings"

	"github.com/mhladky/teamchat-backend/internal/domain"
)

// lang is the detected conversation language.
type lang int

const (
	langEN lang = iota
	langSKCZ
)

var diacriticsRe = regexp.MustCompile(`[áäčďéíľĺňóôŕřšťúýžěů]`)

// detectLang classifies the conversation as Slovak/Czech when the combined
// text carries SK/CZ diacritics or typical marker words, English otherwise.
func detectLang(messages []*domain.Message) lang {
	t := allText(messages)

	if diacriticsRe.MatchString(t) {
		return langSKCZ
	}
	if containsAny(t, skczMarkers) {
		return langSKCZ
	}

	return langEN
}

// allText joins message contents with newlines, lowercased.
func allText(messages []*domain.Message) string {
	return strings.ToLower(allTextRaw(messages))
}

// allTextRaw joins message contents with newlines, preserving case.
func allTextRaw(messages []*domain.Message) string {
	parts := make([]string, 0, len(messages))
	for _, m := range messages {
		parts = append(parts, m.Content)
	}
	return strings.Join(parts, "\n")
}

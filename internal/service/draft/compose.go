package draft

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mhladky/teamchat-backend/internal/domain"
)

const maxTitleLen = 60

// headerSet holds the localized section headers of an issue body.
type headerSet struct {
	summary  string
	typ      string
	actual   string
	expected string
	steps    string
	evidence string
	todo     string
	footer   string
}

var headersEN = headerSet{
	summary:  "### Summary",
	typ:      "### Type",
	actual:   "### Actual",
	expected: "### Expected",
	steps:    "### Steps to reproduce",
	evidence: "### Evidence (top messages)",
	todo:     "### TODO",
	footer:   "_Generated from chat topic: ",
}

var headersSKCZ = headerSet{
	summary:  "### Zhrnutie",
	typ:      "### Typ",
	actual:   "### Aktuálne správanie",
	expected: "### Očakávané správanie",
	steps:    "### Kroky na reprodukciu",
	evidence: "### Dôkazy (najrelevantnejšie správy)",
	todo:     "### TODO",
	footer:   "_Vygenerované z chat témy: ",
}

// buildSummary returns the one-line summary for the detected label, with
// the component area appended when one was recognized.
func buildSummary(label, area string, en bool) string {
	var base string
	switch label {
	case "bug":
		if en {
			base = "Discussion indicates a problem that should be fixed."
		} else {
			base = "Diskusia naznačuje problém, ktorý treba opraviť."
		}
	case "feature":
		if en {
			base = "Discussion proposes a new feature to implement."
		} else {
			base = "Diskusia navrhuje novú funkcionalitu na implementáciu."
		}
	case "chore":
		if en {
			base = "Discussion suggests technical improvements/refactoring."
		} else {
			base = "Diskusia navrhuje technické zlepšenia/refaktor."
		}
	default:
		if en {
			base = "Discussion captured in this topic."
		} else {
			base = "Diskusia zachytená v tejto téme."
		}
	}

	if area != "" {
		if en {
			return base + " Area: " + area + "."
		}
		return base + " Oblasť: " + area + "."
	}
	return base
}

// buildTodo returns the label-specific checklist.
func buildTodo(label, title string, en bool) []string {
	switch label {
	case "bug":
		if en {
			return []string{
				"Reproduce the issue",
				"Identify root cause",
				"Fix: " + shorten(title),
				"Add automated test",
				"Verify on mobile/desktop",
			}
		}
		return []string{
			"Zreprodukovať problém",
			"Nájsť príčinu",
			"Opraviť: " + shorten(title),
			"Pridať test",
			"Overiť na mobile/desktope",
		}
	case "feature":
		if en {
			return []string{
				"Define requirements & UX",
				"Implement: " + shorten(title),
				"Add tests",
				"Update documentation",
			}
		}
		return []string{
			"Upresniť požiadavky & UX",
			"Implementovať: " + shorten(title),
			"Pridať testy",
			"Aktualizovať dokumentáciu",
		}
	case "chore":
		if en {
			return []string{
				"Refactor relevant parts",
				"Add regression tests",
				"Verify behavior/performance",
			}
		}
		return []string{
			"Refaktorovať relevantné časti",
			"Pridať regresné testy",
			"Overiť správanie/výkon",
		}
	default:
		if en {
			return []string{"Decide next steps"}
		}
		return []string{"Dohodnúť ďalšie kroky"}
	}
}

// buildBody assembles the Markdown issue body. The Actual, Expected and
// Steps sections are omitted when their extraction found nothing.
func buildBody(
	topicID uuid.UUID,
	summary string,
	label string,
	expected string,
	actual string,
	steps []string,
	evidence []*domain.Message,
	todo []string,
	en bool,
) string {
	h := headersSKCZ
	if en {
		h = headersEN
	}

	var sb strings.Builder
	sb.WriteString(h.summary + "\n" + summary + "\n\n")
	sb.WriteString(h.typ + "\n" + label + "\n\n")

	if actual != "" {
		sb.WriteString(h.actual + "\n" + actual + "\n\n")
	}
	if expected != "" {
		sb.WriteString(h.expected + "\n" + expected + "\n\n")
	}

	if len(steps) > 0 {
		sb.WriteString(h.steps + "\n")
		for i, step := range steps {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, step)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(h.evidence + "\n")
	for _, m := range evidence {
		sb.WriteString("- " + m.SenderName + ": " + m.Content + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(h.todo + "\n")
	for _, item := range todo {
		sb.WriteString("- [ ] " + item + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(h.footer + topicID.String() + "_\n")

	return sb.String()
}

// shorten truncates a title to 60 characters with an ellipsis.
func shorten(title string) string {
	runes := []rune(title)
	if len(runes) <= maxTitleLen {
		return title
	}
	return string(runes[:57]) + "..."
}

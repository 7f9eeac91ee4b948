package domain

// IssueDraft is the synthesized issue report generated from a topic's bound
// messages. It is returned to the caller and never persisted.
type IssueDraft struct {
	Title  string
	Body   string
	Labels []string
}

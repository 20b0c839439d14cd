package domain

// Scope names the subject a record belongs to: the consulting user plus an
// optional client engagement. Every engine entry point takes an explicit
// Scope; there is no ambient "currently selected client". Switching
// engagements yields entirely independent records.
type Scope struct {
	SubjectID string
	ClientID  string // empty = the subject's own program
}

// Key returns a stable composite key for maps and logs.
func (s Scope) Key() string {
	if s.ClientID == "" {
		return s.SubjectID
	}
	return s.SubjectID + "/" + s.ClientID
}

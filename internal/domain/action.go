package domain

// ImprovementAction is derived from one assessment gap and is never edited
// directly. An action exists for an item if and only if the item scored
// below its maximum at generation time.
type ImprovementAction struct {
	ID           string
	Phase        int
	Priority     Priority
	Action       string
	Rationale    string
	SourceItemID string
	Category     Category
}

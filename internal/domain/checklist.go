package domain

// ChecklistItem is an immutable catalog entry of one implementation phase:
// the task description, the expected deliverable, and the guided form
// associated with the task, if any.
type ChecklistItem struct {
	ID          string
	Description string
	Deliverable string
	Form        FormType
}

package domain

import "time"

// Client is one consulting engagement. Assessments and progress records
// are scoped per client; an empty client ID means the subject's own
// program.
type Client struct {
	ID         string
	Name       string
	Site       string
	Status     ClientStatus
	ArchivedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DisplayID returns a short identifier for display: the first 8 characters
// of the ID.
func (c *Client) DisplayID() string {
	if len(c.ID) >= 8 {
		return c.ID[:8]
	}
	return c.ID
}

package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/lucasferrand/pathex/internal/domain"
)

// Item options
type ItemOption func(*domain.AssessmentItem)

func WithAchieved(score float64) ItemOption {
	return func(i *domain.AssessmentItem) {
		i.Achieved = score
	}
}

func WithCategory(c domain.Category) ItemOption {
	return func(i *domain.AssessmentItem) {
		i.Category = c
	}
}

func WithActivityCode(code string) ItemOption {
	return func(i *domain.AssessmentItem) {
		i.ActivityCode = code
	}
}

// NewTestItem builds an assessment item with the given ID and maximum
// score. Defaults: activity code "1.1", Equipment Records, achieved 0.
func NewTestItem(id string, max int, opts ...ItemOption) domain.AssessmentItem {
	item := domain.AssessmentItem{
		ID:           id,
		ActivityCode: "1.1",
		Description:  "Test item " + id,
		MaxScore:     max,
		Category:     domain.CategoryEquipmentRecords,
	}
	for _, opt := range opts {
		opt(&item)
	}
	return item
}

// NewTestClient builds an active client engagement.
func NewTestClient(name string) *domain.Client {
	now := time.Now().UTC()
	return &domain.Client{
		ID:        uuid.New().String(),
		Name:      name,
		Site:      "Test Site",
		Status:    domain.ClientActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TestScope returns a scope for the given subject with no client.
func TestScope(subjectID string) domain.Scope {
	return domain.Scope{SubjectID: subjectID}
}

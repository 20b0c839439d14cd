package repository

import (
	"context"
	"errors"

	"github.com/lucasferrand/pathex/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrStaleRecord is returned when a conditional save loses against a
// concurrent writer: the stored version no longer matches the version the
// caller read. The caller should reload and retry.
var ErrStaleRecord = errors.New("stale record version")

type ClientRepo interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// DeliverableRepo is the generic opaque-document store. Records are keyed
// by (scope, phase, doc type); Put replaces the whole payload.
type DeliverableRepo interface {
	Get(ctx context.Context, scope domain.Scope, phase int, docType string) (*domain.Deliverable, error)
	Put(ctx context.Context, d *domain.Deliverable) error
	ListByScope(ctx context.Context, scope domain.Scope) ([]*domain.Deliverable, error)
	Delete(ctx context.Context, scope domain.Scope, phase int, docType string) error
}

// ProgressRepo stores one ProgramProgress record per scope. Save replaces
// the whole record (program row plus all six phase rows) and is
// version-conditional: a record whose stored version differs from the
// loaded one fails with ErrStaleRecord instead of silently winning.
type ProgressRepo interface {
	Get(ctx context.Context, scope domain.Scope) (*domain.ProgramProgress, error)
	Save(ctx context.Context, p *domain.ProgramProgress) error
	Delete(ctx context.Context, scope domain.Scope) error
}

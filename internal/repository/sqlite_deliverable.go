package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lucasferrand/pathex/internal/db"
	"github.com/lucasferrand/pathex/internal/domain"
)

const deliverableColumns = `id, subject_id, client_id, phase, doc_type, payload, created_at, updated_at`

// SQLiteDeliverableRepo implements DeliverableRepo using a SQLite
// database. Payloads are stored as JSON text and never interpreted here.
type SQLiteDeliverableRepo struct {
	db db.DBTX
}

// NewSQLiteDeliverableRepo creates a new SQLiteDeliverableRepo.
func NewSQLiteDeliverableRepo(dbtx db.DBTX) *SQLiteDeliverableRepo {
	return &SQLiteDeliverableRepo{db: dbtx}
}

func (r *SQLiteDeliverableRepo) Get(ctx context.Context, scope domain.Scope, phase int, docType string) (*domain.Deliverable, error) {
	query := `SELECT ` + deliverableColumns + ` FROM deliverables
		WHERE subject_id = ? AND client_id = ? AND phase = ? AND doc_type = ?`
	row := r.db.QueryRowContext(ctx, query, scope.SubjectID, scope.ClientID, phase, docType)
	return scanDeliverable(row)
}

// Put replaces the record for the deliverable's key, creating it on first
// write. The stored payload is overwritten wholesale.
func (r *SQLiteDeliverableRepo) Put(ctx context.Context, d *domain.Deliverable) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now

	query := `INSERT INTO deliverables (` + deliverableColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(subject_id, client_id, phase, doc_type)
		DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		d.ID,
		d.SubjectID,
		d.ClientID,
		d.Phase,
		d.DocType,
		string(d.Payload),
		d.CreatedAt.Format(time.RFC3339),
		d.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("writing deliverable: %w", err)
	}
	return nil
}

func (r *SQLiteDeliverableRepo) ListByScope(ctx context.Context, scope domain.Scope) ([]*domain.Deliverable, error) {
	query := `SELECT ` + deliverableColumns + ` FROM deliverables
		WHERE subject_id = ? AND client_id = ?
		ORDER BY phase, doc_type`
	rows, err := r.db.QueryContext(ctx, query, scope.SubjectID, scope.ClientID)
	if err != nil {
		return nil, fmt.Errorf("listing deliverables: %w", err)
	}
	defer rows.Close()

	var out []*domain.Deliverable
	for rows.Next() {
		var d domain.Deliverable
		var payload, createdAt, updatedAt string
		if err := rows.Scan(&d.ID, &d.SubjectID, &d.ClientID, &d.Phase, &d.DocType, &payload, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning deliverable row: %w", err)
		}
		if err := fillDeliverable(&d, payload, createdAt, updatedAt); err != nil {
			return nil, err
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

func (r *SQLiteDeliverableRepo) Delete(ctx context.Context, scope domain.Scope, phase int, docType string) error {
	query := `DELETE FROM deliverables
		WHERE subject_id = ? AND client_id = ? AND phase = ? AND doc_type = ?`
	res, err := r.db.ExecContext(ctx, query, scope.SubjectID, scope.ClientID, phase, docType)
	if err != nil {
		return fmt.Errorf("deleting deliverable: %w", err)
	}
	return requireRowAffected(res, "deliverable")
}

func scanDeliverable(row *sql.Row) (*domain.Deliverable, error) {
	var d domain.Deliverable
	var payload, createdAt, updatedAt string
	err := row.Scan(&d.ID, &d.SubjectID, &d.ClientID, &d.Phase, &d.DocType, &payload, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("deliverable: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning deliverable: %w", err)
	}
	if err := fillDeliverable(&d, payload, createdAt, updatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}

func fillDeliverable(d *domain.Deliverable, payload, createdAt, updatedAt string) error {
	d.Payload = json.RawMessage(payload)
	var err error
	if d.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return fmt.Errorf("parsing deliverable created_at: %w", err)
	}
	if d.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return fmt.Errorf("parsing deliverable updated_at: %w", err)
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lucasferrand/pathex/internal/db"
	"github.com/lucasferrand/pathex/internal/domain"
)

// SQLiteProgressRepo implements ProgressRepo using a SQLite database.
// A record spans one program_progress row and one phase_progress row per
// implementation phase; Save replaces all of them, so it must run inside
// a transaction (pass a tx-scoped DBTX from the unit of work).
type SQLiteProgressRepo struct {
	db db.DBTX
}

// NewSQLiteProgressRepo creates a new SQLiteProgressRepo.
func NewSQLiteProgressRepo(dbtx db.DBTX) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{db: dbtx}
}

func (r *SQLiteProgressRepo) Get(ctx context.Context, scope domain.Scope) (*domain.ProgramProgress, error) {
	query := `SELECT current_phase, version, created_at, updated_at
		FROM program_progress WHERE subject_id = ? AND client_id = ?`
	row := r.db.QueryRowContext(ctx, query, scope.SubjectID, scope.ClientID)

	p := domain.NewProgramProgress(scope)
	var createdAt, updatedAt string
	err := row.Scan(&p.CurrentPhase, &p.Version, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("program progress: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning program progress: %w", err)
	}
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing progress created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing progress updated_at: %w", err)
	}

	if err := r.loadPhases(ctx, scope, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SQLiteProgressRepo) loadPhases(ctx context.Context, scope domain.Scope, p *domain.ProgramProgress) error {
	query := `SELECT phase, checklist, progress, completed, completed_at, notes
		FROM phase_progress WHERE subject_id = ? AND client_id = ? ORDER BY phase`
	rows, err := r.db.QueryContext(ctx, query, scope.SubjectID, scope.ClientID)
	if err != nil {
		return fmt.Errorf("listing phase progress: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var phase, progress, completed int
		var checklist, notes string
		var completedAt sql.NullString
		if err := rows.Scan(&phase, &checklist, &progress, &completed, &completedAt, &notes); err != nil {
			return fmt.Errorf("scanning phase progress: %w", err)
		}
		pp := p.Phase(phase)
		if pp == nil {
			continue
		}
		done := make(map[string]bool)
		if err := json.Unmarshal([]byte(checklist), &done); err != nil {
			return fmt.Errorf("decoding phase %d checklist: %w", phase, err)
		}
		pp.Checklist = done
		pp.Progress = progress
		pp.Completed = intToBool(completed)
		pp.CompletedAt = parseNullableTime(completedAt, time.RFC3339)
		pp.Notes = notes
	}
	return rows.Err()
}

// Save writes the whole record. A record with Version 0 is created with
// version 1; otherwise the program row is updated conditionally on the
// loaded version, and a mismatch fails with ErrStaleRecord before any
// phase row is touched. On success the in-memory Version is bumped.
func (r *SQLiteProgressRepo) Save(ctx context.Context, p *domain.ProgramProgress) error {
	now := time.Now().UTC()
	p.UpdatedAt = now

	if p.Version == 0 {
		p.CreatedAt = now
		query := `INSERT INTO program_progress (subject_id, client_id, current_phase, version, created_at, updated_at)
			VALUES (?, ?, ?, 1, ?, ?)`
		_, err := r.db.ExecContext(ctx, query,
			p.SubjectID, p.ClientID, p.CurrentPhase,
			now.Format(time.RFC3339), now.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("inserting program progress: %w", err)
		}
		p.Version = 1
	} else {
		query := `UPDATE program_progress
			SET current_phase = ?, version = version + 1, updated_at = ?
			WHERE subject_id = ? AND client_id = ? AND version = ?`
		res, err := r.db.ExecContext(ctx, query,
			p.CurrentPhase, now.Format(time.RFC3339),
			p.SubjectID, p.ClientID, p.Version)
		if err != nil {
			return fmt.Errorf("updating program progress: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("checking affected rows: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("program progress for %s: %w", domain.Scope{SubjectID: p.SubjectID, ClientID: p.ClientID}.Key(), ErrStaleRecord)
		}
		p.Version++
	}

	return r.replacePhases(ctx, p)
}

func (r *SQLiteProgressRepo) replacePhases(ctx context.Context, p *domain.ProgramProgress) error {
	del := `DELETE FROM phase_progress WHERE subject_id = ? AND client_id = ?`
	if _, err := r.db.ExecContext(ctx, del, p.SubjectID, p.ClientID); err != nil {
		return fmt.Errorf("clearing phase progress: %w", err)
	}

	ins := `INSERT INTO phase_progress (subject_id, client_id, phase, checklist, progress, completed, completed_at, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	for i := domain.FirstPhase; i <= domain.LastPhase; i++ {
		pp := &p.Phases[i]
		checklist := pp.Checklist
		if checklist == nil {
			checklist = map[string]bool{}
		}
		encoded, err := json.Marshal(checklist)
		if err != nil {
			return fmt.Errorf("encoding phase %d checklist: %w", i, err)
		}
		_, err = r.db.ExecContext(ctx, ins,
			p.SubjectID, p.ClientID, i,
			string(encoded),
			pp.Progress,
			boolToInt(pp.Completed),
			nullableTimeToString(pp.CompletedAt, time.RFC3339),
			pp.Notes,
		)
		if err != nil {
			return fmt.Errorf("inserting phase %d progress: %w", i, err)
		}
	}
	return nil
}

func (r *SQLiteProgressRepo) Delete(ctx context.Context, scope domain.Scope) error {
	query := `DELETE FROM program_progress WHERE subject_id = ? AND client_id = ?`
	res, err := r.db.ExecContext(ctx, query, scope.SubjectID, scope.ClientID)
	if err != nil {
		return fmt.Errorf("deleting program progress: %w", err)
	}
	return requireRowAffected(res, "program progress")
}

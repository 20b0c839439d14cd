package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lucasferrand/pathex/internal/db"
	"github.com/lucasferrand/pathex/internal/domain"
)

const clientColumns = `id, name, site, status, archived_at, created_at, updated_at`

// SQLiteClientRepo implements ClientRepo using a SQLite database.
type SQLiteClientRepo struct {
	db db.DBTX
}

// NewSQLiteClientRepo creates a new SQLiteClientRepo.
func NewSQLiteClientRepo(dbtx db.DBTX) *SQLiteClientRepo {
	return &SQLiteClientRepo{db: dbtx}
}

func (r *SQLiteClientRepo) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (` + clientColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Site,
		string(c.Status),
		nullableTimeToString(c.ArchivedAt, time.RFC3339),
		c.CreatedAt.Format(time.RFC3339),
		c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting client: %w", err)
	}
	return nil
}

func (r *SQLiteClientRepo) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = ?`
	return r.scanClient(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteClientRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients`
	if !includeArchived {
		query += ` WHERE status != 'archived'`
	}
	query += ` ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		c, err := r.scanClientRow(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *SQLiteClientRepo) Update(ctx context.Context, c *domain.Client) error {
	query := `UPDATE clients SET name = ?, site = ?, status = ?, archived_at = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		c.Name,
		c.Site,
		string(c.Status),
		nullableTimeToString(c.ArchivedAt, time.RFC3339),
		c.UpdatedAt.Format(time.RFC3339),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating client: %w", err)
	}
	return requireRowAffected(res, "client")
}

func (r *SQLiteClientRepo) Archive(ctx context.Context, id string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	query := `UPDATE clients SET status = 'archived', archived_at = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, now, now, id)
	if err != nil {
		return fmt.Errorf("archiving client: %w", err)
	}
	return requireRowAffected(res, "client")
}

func (r *SQLiteClientRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}
	return requireRowAffected(res, "client")
}

func (r *SQLiteClientRepo) scanClient(row *sql.Row) (*domain.Client, error) {
	var c domain.Client
	var status string
	var archivedAt sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(&c.ID, &c.Name, &c.Site, &status, &archivedAt, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("client: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning client: %w", err)
	}
	return fillClient(&c, status, archivedAt, createdAt, updatedAt)
}

func (r *SQLiteClientRepo) scanClientRow(rows *sql.Rows) (*domain.Client, error) {
	var c domain.Client
	var status string
	var archivedAt sql.NullString
	var createdAt, updatedAt string

	if err := rows.Scan(&c.ID, &c.Name, &c.Site, &status, &archivedAt, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("scanning client row: %w", err)
	}
	return fillClient(&c, status, archivedAt, createdAt, updatedAt)
}

func fillClient(c *domain.Client, status string, archivedAt sql.NullString, createdAt, updatedAt string) (*domain.Client, error) {
	c.Status = domain.ClientStatus(status)
	c.ArchivedAt = parseNullableTime(archivedAt, time.RFC3339)
	var err error
	if c.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing client created_at: %w", err)
	}
	if c.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing client updated_at: %w", err)
	}
	return c, nil
}

// requireRowAffected converts a zero-row write into ErrNotFound.
func requireRowAffected(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}

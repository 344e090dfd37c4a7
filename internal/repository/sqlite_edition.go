package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/wildercal/internal/db"
	"github.com/alexanderramin/wildercal/internal/domain"
)

// SQLiteEditionRepo implements EditionRepo using a SQLite database.
type SQLiteEditionRepo struct {
	db db.DBTX
}

func NewSQLiteEditionRepo(conn db.DBTX) *SQLiteEditionRepo {
	return &SQLiteEditionRepo{db: conn}
}

const editionColumns = `id, city, state, template_version, status, plan_source, degraded, created_at, updated_at`

func (r *SQLiteEditionRepo) Create(ctx context.Context, e *domain.Edition) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = nowUTC()
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = e.CreatedAt
	}
	if e.Status == "" {
		e.Status = domain.EditionDraft
	}
	query := `INSERT INTO editions (` + editionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.City,
		e.State,
		e.TemplateVersion,
		string(e.Status),
		e.PlanSource,
		boolToInt(e.Degraded),
		formatTime(e.CreatedAt),
		formatTime(e.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting edition: %w", err)
	}
	return nil
}

func (r *SQLiteEditionRepo) GetByID(ctx context.Context, id string) (*domain.Edition, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+editionColumns+` FROM editions WHERE id = ?`, id)
	e, err := scanEdition(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("edition %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning edition: %w", err)
	}
	return e, nil
}

// List returns editions newest first.
func (r *SQLiteEditionRepo) List(ctx context.Context) ([]*domain.Edition, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+editionColumns+` FROM editions ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("listing editions: %w", err)
	}
	defer rows.Close()

	var out []*domain.Edition
	for rows.Next() {
		e, err := scanEdition(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning edition: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating editions: %w", err)
	}
	return out, nil
}

func (r *SQLiteEditionRepo) Update(ctx context.Context, e *domain.Edition) error {
	e.UpdatedAt = nowUTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE editions SET city = ?, state = ?, template_version = ?, status = ?, plan_source = ?, degraded = ?, updated_at = ?
		WHERE id = ?`,
		e.City,
		e.State,
		e.TemplateVersion,
		string(e.Status),
		e.PlanSource,
		boolToInt(e.Degraded),
		formatTime(e.UpdatedAt),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating edition: %w", err)
	}
	return requireAffected(res, "edition", e.ID)
}

func (r *SQLiteEditionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM editions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting edition: %w", err)
	}
	return requireAffected(res, "edition", id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEdition(s rowScanner) (*domain.Edition, error) {
	var e domain.Edition
	var status, createdAt, updatedAt string
	var degraded int
	if err := s.Scan(&e.ID, &e.City, &e.State, &e.TemplateVersion, &status, &e.PlanSource, &degraded, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	e.Status = domain.EditionStatus(status)
	e.Degraded = intToBool(degraded)
	e.CreatedAt = parseTime(createdAt)
	e.UpdatedAt = parseTime(updatedAt)
	return &e, nil
}

func requireAffected(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
	}
	return nil
}

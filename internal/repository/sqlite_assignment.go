package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/wildercal/internal/db"
	"github.com/alexanderramin/wildercal/internal/domain"
)

// SQLiteAssignmentRepo implements AssignmentRepo using a SQLite database.
type SQLiteAssignmentRepo struct {
	db db.DBTX
}

func NewSQLiteAssignmentRepo(conn db.DBTX) *SQLiteAssignmentRepo {
	return &SQLiteAssignmentRepo{db: conn}
}

// ReplaceAll should run inside a UnitOfWork; a plan is stored whole or not
// at all.
func (r *SQLiteAssignmentRepo) ReplaceAll(ctx context.Context, editionID string, rows []domain.WeekAssignment) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM week_assignments WHERE edition_id = ?`, editionID); err != nil {
		return fmt.Errorf("clearing assignments: %w", err)
	}
	for _, a := range rows {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO week_assignments (edition_id, week, place_name, reason, alternate_name, alternate_reason)
			VALUES (?, ?, ?, ?, ?, ?)`,
			editionID, a.Week, a.PlaceName, a.Reason, a.AlternateName, a.AlternateReason,
		)
		if err != nil {
			return fmt.Errorf("inserting week %d: %w", a.Week, err)
		}
	}
	return nil
}

// ListByEdition returns rows ordered by week.
func (r *SQLiteAssignmentRepo) ListByEdition(ctx context.Context, editionID string) ([]domain.WeekAssignment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT week, place_name, reason, alternate_name, alternate_reason
		FROM week_assignments WHERE edition_id = ? ORDER BY week`, editionID)
	if err != nil {
		return nil, fmt.Errorf("listing assignments: %w", err)
	}
	defer rows.Close()

	var out []domain.WeekAssignment
	for rows.Next() {
		var a domain.WeekAssignment
		if err := rows.Scan(&a.Week, &a.PlaceName, &a.Reason, &a.AlternateName, &a.AlternateReason); err != nil {
			return nil, fmt.Errorf("scanning assignment: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assignments: %w", err)
	}
	return out, nil
}

func (r *SQLiteAssignmentRepo) AddAttempts(ctx context.Context, attempts []domain.PlanAttempt) error {
	for i := range attempts {
		a := &attempts[i]
		if a.CreatedAt.IsZero() {
			a.CreatedAt = nowUTC()
		}
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO plan_attempts (edition_id, strategy, outcome, error, latency_ms, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			a.EditionID, a.Strategy, a.Outcome, a.Error, a.LatencyMs, formatTime(a.CreatedAt),
		)
		if err != nil {
			return fmt.Errorf("inserting plan attempt: %w", err)
		}
	}
	return nil
}

// ListAttempts returns attempts in the order they were recorded.
func (r *SQLiteAssignmentRepo) ListAttempts(ctx context.Context, editionID string) ([]domain.PlanAttempt, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT edition_id, strategy, outcome, error, latency_ms, created_at
		FROM plan_attempts WHERE edition_id = ? ORDER BY id`, editionID)
	if err != nil {
		return nil, fmt.Errorf("listing plan attempts: %w", err)
	}
	defer rows.Close()

	var out []domain.PlanAttempt
	for rows.Next() {
		var a domain.PlanAttempt
		var createdAt string
		if err := rows.Scan(&a.EditionID, &a.Strategy, &a.Outcome, &a.Error, &a.LatencyMs, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning plan attempt: %w", err)
		}
		a.CreatedAt = parseTime(createdAt)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plan attempts: %w", err)
	}
	return out, nil
}

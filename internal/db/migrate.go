package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is idempotent so the
// full list is replayed on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS editions (
		id               TEXT PRIMARY KEY,
		city             TEXT NOT NULL,
		state            TEXT NOT NULL DEFAULT '',
		template_version TEXT NOT NULL,
		status           TEXT NOT NULL DEFAULT 'draft'
		                 CHECK(status IN ('draft','curated','planned')),
		plan_source      TEXT NOT NULL DEFAULT '',
		degraded         INTEGER NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_editions_city ON editions(city, state)`,

	`CREATE TABLE IF NOT EXISTS places (
		edition_id     TEXT NOT NULL REFERENCES editions(id) ON DELETE CASCADE,
		id             TEXT NOT NULL,
		position       INTEGER NOT NULL,
		name           TEXT NOT NULL,
		city           TEXT NOT NULL DEFAULT '',
		state          TEXT NOT NULL DEFAULT '',
		category       TEXT NOT NULL,
		price_tier     TEXT NOT NULL DEFAULT 'FREE',
		description    TEXT NOT NULL DEFAULT '',
		source         TEXT NOT NULL DEFAULT '',
		source_url     TEXT NOT NULL DEFAULT '',
		is_chain       INTEGER NOT NULL DEFAULT 0,
		baby_friendly  INTEGER NOT NULL DEFAULT 0,
		toddler_safe   INTEGER NOT NULL DEFAULT 0,
		preschool_plus INTEGER NOT NULL DEFAULT 0,
		warm_weather   INTEGER NOT NULL DEFAULT 0,
		winter_spot    INTEGER NOT NULL DEFAULT 0,
		tags           TEXT NOT NULL DEFAULT '',
		score          INTEGER NOT NULL DEFAULT 0 CHECK(score BETWEEN 0 AND 100),
		status         TEXT NOT NULL
		               CHECK(status IN ('RECOMMENDED','CONSIDER','REVIEW','REJECT')),
		notes          TEXT NOT NULL DEFAULT '',
		external_id    TEXT NOT NULL DEFAULT '',
		rating         REAL,
		review_count   INTEGER,
		place_types    TEXT NOT NULL DEFAULT '',
		address        TEXT NOT NULL DEFAULT '',
		website        TEXT NOT NULL DEFAULT '',
		phone          TEXT NOT NULL DEFAULT '',
		latitude       REAL,
		longitude      REAL,
		created_at     TEXT NOT NULL,
		PRIMARY KEY (edition_id, id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_places_status ON places(edition_id, status)`,

	`CREATE TABLE IF NOT EXISTS week_assignments (
		edition_id       TEXT NOT NULL REFERENCES editions(id) ON DELETE CASCADE,
		week             INTEGER NOT NULL CHECK(week BETWEEN 1 AND 52),
		place_name       TEXT NOT NULL DEFAULT '',
		reason           TEXT NOT NULL DEFAULT '',
		alternate_name   TEXT NOT NULL DEFAULT '',
		alternate_reason TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (edition_id, week)
	)`,

	`CREATE TABLE IF NOT EXISTS plan_attempts (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		edition_id TEXT NOT NULL REFERENCES editions(id) ON DELETE CASCADE,
		strategy   TEXT NOT NULL,
		outcome    TEXT NOT NULL,
		error      TEXT NOT NULL DEFAULT '',
		latency_ms INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plan_attempts_edition ON plan_attempts(edition_id)`,

	// Preferred weeks, comma separated.
	`ALTER TABLE places ADD COLUMN week_suggestions TEXT NOT NULL DEFAULT ''`,
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/wildercal/internal/db"
	"github.com/alexanderramin/wildercal/internal/domain"
)

// SQLitePlaceRepo implements PlaceRepo using a SQLite database.
type SQLitePlaceRepo struct {
	db db.DBTX
}

func NewSQLitePlaceRepo(conn db.DBTX) *SQLitePlaceRepo {
	return &SQLitePlaceRepo{db: conn}
}

const placeColumns = `edition_id, id, name, city, state, category, price_tier, description, source, source_url,
	is_chain, baby_friendly, toddler_safe, preschool_plus, warm_weather, winter_spot, tags, score, status, notes,
	external_id, rating, review_count, place_types, address, website, phone, latitude, longitude,
	week_suggestions, created_at`

// ReplaceAll should run inside a UnitOfWork so a failed insert leaves the
// previous library intact.
func (r *SQLitePlaceRepo) ReplaceAll(ctx context.Context, editionID string, places []domain.ScoredPlace) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM places WHERE edition_id = ?`, editionID); err != nil {
		return fmt.Errorf("clearing places: %w", err)
	}
	query := `INSERT INTO places (position, ` + placeColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	now := nowUTC()
	for i := range places {
		p := &places[i]
		p.EditionID = editionID
		if p.CreatedAt.IsZero() {
			p.CreatedAt = now
		}
		args := append([]any{i}, placeArgs(p)...)
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting place %q: %w", p.Name, err)
		}
	}
	return nil
}

// ListByEdition returns the library in stored order.
func (r *SQLitePlaceRepo) ListByEdition(ctx context.Context, editionID string) ([]domain.ScoredPlace, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+placeColumns+` FROM places WHERE edition_id = ? ORDER BY position`, editionID)
	if err != nil {
		return nil, fmt.Errorf("listing places: %w", err)
	}
	defer rows.Close()

	var out []domain.ScoredPlace
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning place: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating places: %w", err)
	}
	return out, nil
}

func (r *SQLitePlaceRepo) Get(ctx context.Context, editionID, placeID string) (*domain.ScoredPlace, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+placeColumns+` FROM places WHERE edition_id = ? AND id = ?`, editionID, placeID)
	p, err := scanPlace(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("place %s: %w", placeID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning place: %w", err)
	}
	return p, nil
}

func (r *SQLitePlaceRepo) Update(ctx context.Context, p *domain.ScoredPlace) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE places SET category = ?, price_tier = ?, description = ?, is_chain = ?,
			baby_friendly = ?, toddler_safe = ?, preschool_plus = ?, warm_weather = ?, winter_spot = ?,
			tags = ?, score = ?, status = ?, notes = ?, week_suggestions = ?
		WHERE edition_id = ? AND id = ?`,
		string(p.Category),
		string(p.PriceTier),
		p.Description,
		boolToInt(p.IsChain),
		boolToInt(p.Attributes.BabyFriendly),
		boolToInt(p.Attributes.ToddlerSafe),
		boolToInt(p.Attributes.PreschoolPlus),
		boolToInt(p.Attributes.WarmWeather),
		boolToInt(p.Attributes.WinterSpot),
		p.Tags,
		p.Score,
		string(p.Status),
		p.Notes,
		joinWeeks(p.WeekSuggestions),
		p.EditionID,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating place: %w", err)
	}
	return requireAffected(res, "place", p.ID)
}

func placeArgs(p *domain.ScoredPlace) []any {
	e := p.Enrichment
	return []any{
		p.EditionID,
		p.ID,
		p.Name,
		p.City,
		p.State,
		string(p.Category),
		string(p.PriceTier),
		p.Description,
		string(p.Source),
		p.SourceURL,
		boolToInt(p.IsChain),
		boolToInt(p.Attributes.BabyFriendly),
		boolToInt(p.Attributes.ToddlerSafe),
		boolToInt(p.Attributes.PreschoolPlus),
		boolToInt(p.Attributes.WarmWeather),
		boolToInt(p.Attributes.WinterSpot),
		p.Tags,
		p.Score,
		string(p.Status),
		p.Notes,
		e.ExternalID,
		nullableFloat(e.Rating),
		nullableInt(e.ReviewCount),
		joinList(e.PlaceTypes),
		e.Address,
		e.Website,
		e.Phone,
		nullableFloat(e.Latitude),
		nullableFloat(e.Longitude),
		joinWeeks(p.WeekSuggestions),
		formatTime(p.CreatedAt),
	}
}

func scanPlace(s rowScanner) (*domain.ScoredPlace, error) {
	var p domain.ScoredPlace
	var category, tier, source, status, placeTypes, weeks, createdAt string
	var chain, baby, toddler, preschool, warm, winter int
	var rating, lat, lng sql.NullFloat64
	var reviews sql.NullInt64
	err := s.Scan(
		&p.EditionID, &p.ID, &p.Name, &p.City, &p.State, &category, &tier, &p.Description, &source, &p.SourceURL,
		&chain, &baby, &toddler, &preschool, &warm, &winter, &p.Tags, &p.Score, &status, &p.Notes,
		&p.Enrichment.ExternalID, &rating, &reviews, &placeTypes, &p.Enrichment.Address, &p.Enrichment.Website,
		&p.Enrichment.Phone, &lat, &lng,
		&weeks, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	p.Category = domain.Category(category)
	p.PriceTier = domain.PriceTier(tier)
	p.Source = domain.SourceTag(source)
	p.Status = domain.Status(status)
	p.IsChain = intToBool(chain)
	p.Attributes = domain.Attributes{
		BabyFriendly:  intToBool(baby),
		ToddlerSafe:   intToBool(toddler),
		PreschoolPlus: intToBool(preschool),
		WarmWeather:   intToBool(warm),
		WinterSpot:    intToBool(winter),
	}
	p.Enrichment.Rating = floatPtr(rating)
	p.Enrichment.ReviewCount = intPtr(reviews)
	p.Enrichment.PlaceTypes = splitList(placeTypes)
	p.Enrichment.Latitude = floatPtr(lat)
	p.Enrichment.Longitude = floatPtr(lng)
	p.WeekSuggestions = splitWeeks(weeks)
	p.CreatedAt = parseTime(createdAt)
	return &p, nil
}

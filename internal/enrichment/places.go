package enrichment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alexanderramin/wildercal/internal/domain"
)

// DefaultPlacesBaseURL is the Google Places web service root.
const DefaultPlacesBaseURL = "https://maps.googleapis.com/maps/api/place"

const detailFields = "name,formatted_address,geometry,rating,user_ratings_total,website,formatted_phone_number,price_level,types"

// Lookup finds external facts for a place. A nil result with a nil error
// means the place was not found.
type Lookup interface {
	Lookup(ctx context.Context, name, city, state string) (*domain.Enrichment, error)
}

// PlacesClient looks places up with Google Places find-from-text followed
// by a details request.
type PlacesClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewPlacesClient creates a client. baseURL may be empty.
func NewPlacesClient(apiKey, baseURL string) *PlacesClient {
	if baseURL == "" {
		baseURL = DefaultPlacesBaseURL
	}
	return &PlacesClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type findResponse struct {
	Status     string `json:"status"`
	Candidates []struct {
		PlaceID string `json:"place_id"`
	} `json:"candidates"`
}

type placeDetails struct {
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address"`
	Rating           *float64 `json:"rating"`
	UserRatingsTotal *int     `json:"user_ratings_total"`
	Website          string   `json:"website"`
	Phone            string   `json:"formatted_phone_number"`
	PriceLevel       *int     `json:"price_level"`
	Types            []string `json:"types"`
	Geometry         *struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

type detailsResponse struct {
	Status string        `json:"status"`
	Result *placeDetails `json:"result"`
}

func (c *PlacesClient) Lookup(ctx context.Context, name, city, state string) (*domain.Enrichment, error) {
	if c.apiKey == "" {
		return nil, errors.New("google places api key is required")
	}
	id, err := c.findPlace(ctx, strings.Join([]string{name, city, state}, " "))
	if err != nil || id == "" {
		return nil, err
	}
	d, err := c.details(ctx, id)
	if err != nil || d == nil {
		return nil, err
	}
	return toEnrichment(id, d), nil
}

func (c *PlacesClient) findPlace(ctx context.Context, input string) (string, error) {
	q := url.Values{}
	q.Set("input", strings.TrimSpace(input))
	q.Set("inputtype", "textquery")
	q.Set("fields", "place_id")
	q.Set("key", c.apiKey)

	var resp findResponse
	if err := c.get(ctx, "/findplacefromtext/json", q, &resp); err != nil {
		return "", fmt.Errorf("find place: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", nil
	}
	return resp.Candidates[0].PlaceID, nil
}

func (c *PlacesClient) details(ctx context.Context, placeID string) (*placeDetails, error) {
	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("fields", detailFields)
	q.Set("key", c.apiKey)

	var resp detailsResponse
	if err := c.get(ctx, "/details/json", q, &resp); err != nil {
		return nil, fmt.Errorf("place details: %w", err)
	}
	return resp.Result, nil
}

func (c *PlacesClient) get(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("places returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func toEnrichment(id string, d *placeDetails) *domain.Enrichment {
	tier := PriceTierForLevel(d.PriceLevel)
	e := &domain.Enrichment{
		ExternalID: id,
		PlaceTypes: d.Types,
		PriceTier:  &tier,
		Address:    streetAddress(d.FormattedAddress),
		Website:    d.Website,
		Phone:      d.Phone,
	}
	if d.Rating != nil && *d.Rating > 0 {
		e.Rating = d.Rating
	}
	if d.UserRatingsTotal != nil && *d.UserRatingsTotal > 0 {
		e.ReviewCount = d.UserRatingsTotal
	}
	if d.Geometry != nil {
		lat, lng := d.Geometry.Location.Lat, d.Geometry.Location.Lng
		e.Latitude, e.Longitude = &lat, &lng
	}
	return e
}

// PriceTierForLevel maps a Places price_level: missing or 0 is FREE, 1 is
// $5_$10, 2 is $10_$15 and anything higher is $15_plus.
func PriceTierForLevel(level *int) domain.PriceTier {
	switch {
	case level == nil || *level <= 0:
		return domain.PriceFree
	case *level == 1:
		return domain.Price5To10
	case *level == 2:
		return domain.Price10To15
	default:
		return domain.Price15Plus
	}
}

// streetAddress keeps the first comma-separated part of a formatted
// address ("123 Main St, Lincoln, NE 68508, USA" becomes "123 Main St").
func streetAddress(formatted string) string {
	first, _, _ := strings.Cut(formatted, ",")
	return strings.TrimSpace(first)
}

// StaticLookup serves enrichment from a fixed table keyed by normalized
// name. It backs offline runs with the sample library.
type StaticLookup map[string]domain.Enrichment

func (s StaticLookup) Lookup(ctx context.Context, name, _, _ string) (*domain.Enrichment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, ok := s[domain.NormalizeKey(name)]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

package discovery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/alexanderramin/wildercal/internal/curation"
	"github.com/alexanderramin/wildercal/internal/domain"
)

// DefaultBraveEndpoint is the Brave web search API.
const DefaultBraveEndpoint = "https://api.search.brave.com/res/v1/web/search"

const (
	braveRequestTimeout = 8 * time.Second
	braveQueryGap       = 300 * time.Millisecond
	maxSnippetLen       = 200
)

var (
	listicleTitle  = regexp.MustCompile(`(?i)^\d+\s+(best|top|things|places|fun)`)
	listiclePrefix = regexp.MustCompile(`(?i)\d+\s*(best|top|things)`)
	titleSeparator = regexp.MustCompile(`[-|–—]`)
)

var braveQueries = map[domain.Category][]string{
	domain.CategoryNature:     {"best parks nature trails families toddlers", "playgrounds nature center stroller accessible"},
	domain.CategoryFarm:       {"family farms petting zoo kids", "u-pick orchard pumpkin patch children"},
	domain.CategoryLibrary:    {"public library children storytime programs", "best libraries kids toddlers"},
	domain.CategoryMuseum:     {"children's museum science center kids", "family friendly museums educational activities"},
	domain.CategoryIndoorPlay: {"indoor play space toddlers kids", "art studio play cafe children"},
	domain.CategoryGarden:     {"botanical garden farmers market family", "local ice cream bakery family friendly"},
	domain.CategorySeasonal:   {"family festivals holiday events children", "seasonal community events kids activities"},
}

// BraveSource derives place names from Brave web search result titles.
type BraveSource struct {
	apiKey   string
	endpoint string
	http     *http.Client
	pace     *rate.Limiter
	log      *zap.Logger
}

// NewBraveSource creates a source for apiKey. endpoint may be empty.
func NewBraveSource(apiKey, endpoint string, log *zap.Logger) *BraveSource {
	if endpoint == "" {
		endpoint = DefaultBraveEndpoint
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &BraveSource{
		apiKey:   apiKey,
		endpoint: endpoint,
		http:     &http.Client{Timeout: braveRequestTimeout},
		pace:     rate.NewLimiter(rate.Every(braveQueryGap), 1),
		log:      log.Named("brave"),
	}
}

func (s *BraveSource) Tag() domain.SourceTag { return domain.SourceBrave }

type braveResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

type braveResponse struct {
	Web struct {
		Results []braveResult `json:"results"`
	} `json:"web"`
}

// Discover runs two queries per category. A failed query contributes
// nothing; the error is returned only if every query failed.
func (s *BraveSource) Discover(ctx context.Context, req Request) ([]domain.CandidateRecord, error) {
	if s.apiKey == "" {
		return nil, errors.New("brave api key is required")
	}
	var out []domain.CandidateRecord
	var errs []error
	queries := 0
	for _, cat := range req.categories() {
		var results []braveResult
		for _, q := range queryList(cat) {
			if err := s.pace.Wait(ctx); err != nil {
				return out, err
			}
			queries++
			res, err := s.search(ctx, req.Location()+" "+q)
			if err != nil {
				s.log.Warn("query failed", zap.String("query", q), zap.Error(err))
				errs = append(errs, err)
				continue
			}
			results = append(results, res...)
		}
		recs := extractBravePlaces(results, cat)
		if limit := TargetCount(cat) + 5; len(recs) > limit {
			recs = recs[:limit]
		}
		out = append(out, recs...)
	}
	if queries > 0 && len(errs) == queries {
		return out, errors.Join(errs...)
	}
	return out, nil
}

func queryList(cat domain.Category) []string {
	if q, ok := braveQueries[cat]; ok {
		return q
	}
	return []string{"family activities"}
}

func (s *BraveSource) search(ctx context.Context, query string) ([]braveResult, error) {
	u := s.endpoint + "?q=" + url.QueryEscape(query) + "&count=10"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", s.apiKey)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("brave returned status %d", resp.StatusCode)
	}
	var body braveResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return body.Web.Results, nil
}

// extractBravePlaces turns search results into candidates: listicle and
// adult-venue titles are skipped, names come from the title up to the
// first separator, and duplicates within the batch are dropped.
func extractBravePlaces(results []braveResult, cat domain.Category) []domain.CandidateRecord {
	seen := map[string]bool{}
	var out []domain.CandidateRecord
	for _, r := range results {
		if curation.LooksAdult(r.Title, r.Description) {
			continue
		}
		if listicleTitle.MatchString(r.Title) {
			continue
		}
		name := titleSeparator.Split(r.Title, 2)[0]
		name = strings.TrimSpace(listiclePrefix.ReplaceAllString(strings.TrimSpace(name), ""))
		if n := len([]rune(name)); n < 3 || n > 80 {
			continue
		}
		key := domain.NormalizeKey(name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, domain.CandidateRecord{
			Name:      name,
			Source:    domain.SourceBrave,
			Snippet:   domain.Truncate(r.Description, maxSnippetLen),
			Category:  cat,
			SourceURL: r.URL,
		})
	}
	return out
}

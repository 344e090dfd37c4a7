package discovery

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/alexanderramin/wildercal/internal/domain"
	"github.com/alexanderramin/wildercal/internal/llm"
)

// DefaultGeminiModel is the search-grounded model used for discovery.
const DefaultGeminiModel = "gemini-2.5-flash"

// ContentGenerator is the part of the genai client discovery needs.
// *genai.Models satisfies it.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiSource asks Gemini with Google Search grounding for real places,
// one call per category.
type GeminiSource struct {
	models ContentGenerator
	model  string
	log    *zap.Logger
}

// NewGeminiSource creates a genai client for apiKey.
func NewGeminiSource(ctx context.Context, apiKey, model string, log *zap.Logger) (*GeminiSource, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	return NewGeminiSourceWithGenerator(client.Models, model, log), nil
}

// NewGeminiSourceWithGenerator wires an explicit generator, mainly for tests.
func NewGeminiSourceWithGenerator(models ContentGenerator, model string, log *zap.Logger) *GeminiSource {
	if model == "" {
		model = DefaultGeminiModel
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &GeminiSource{models: models, model: model, log: log.Named("gemini")}
}

func (s *GeminiSource) Tag() domain.SourceTag { return domain.SourceGemini }

type geminiPlace struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Outdoor     *bool  `json:"outdoor"`
	PriceTier   string `json:"priceTier"`
}

// Discover queries each category in turn. A failing category is logged and
// skipped; the error is returned only if every category failed.
func (s *GeminiSource) Discover(ctx context.Context, req Request) ([]domain.CandidateRecord, error) {
	var out []domain.CandidateRecord
	var errs []error
	cats := req.categories()
	for _, cat := range cats {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		recs, err := s.discoverCategory(ctx, req, cat)
		if err != nil {
			s.log.Warn("category failed", zap.String("category", string(cat)), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", cat, err))
			continue
		}
		out = append(out, recs...)
	}
	if len(errs) == len(cats) {
		return out, errors.Join(errs...)
	}
	return out, nil
}

func (s *GeminiSource) discoverCategory(ctx context.Context, req Request, cat domain.Category) ([]domain.CandidateRecord, error) {
	temp := float32(1.0)
	resp, err := s.models.GenerateContent(ctx, s.model,
		[]*genai.Content{genai.NewContentFromText(geminiPrompt(req, cat), genai.RoleUser)},
		&genai.GenerateContentConfig{
			Temperature:     &temp,
			MaxOutputTokens: 4096,
			Tools:           []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("%w: no candidates", llm.ErrInvalidOutput)
	}
	cand := resp.Candidates[0]

	var text strings.Builder
	for _, part := range cand.Content.Parts {
		if part != nil {
			text.WriteString(part.Text)
		}
	}
	places, err := llm.ExtractJSON[[]geminiPlace](text.String(), nil)
	if err != nil {
		return nil, err
	}

	var chunks []*genai.GroundingChunk
	if cand.GroundingMetadata != nil {
		chunks = cand.GroundingMetadata.GroundingChunks
	}

	out := make([]domain.CandidateRecord, 0, len(places))
	for _, p := range places {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			continue
		}
		rec := domain.CandidateRecord{
			Name:      name,
			Source:    domain.SourceGemini,
			Snippet:   p.Description,
			Category:  cat,
			SourceURL: groundingURL(chunks, name),
			Outdoor:   p.Outdoor,
		}
		if tier, ok := domain.ParsePriceTier(p.PriceTier); ok {
			rec.PriceHint = &tier
		}
		out = append(out, rec)
	}
	return out, nil
}

// groundingURL returns the first grounding chunk whose title contains the
// first word of name.
func groundingURL(chunks []*genai.GroundingChunk, name string) string {
	fields := strings.Fields(strings.ToLower(name))
	if len(fields) == 0 {
		return ""
	}
	first := fields[0]
	for _, c := range chunks {
		if c == nil || c.Web == nil {
			continue
		}
		if strings.Contains(strings.ToLower(c.Web.Title), first) {
			return c.Web.URI
		}
	}
	return ""
}

func geminiPrompt(req Request, cat domain.Category) string {
	return fmt.Sprintf(`Find real, family-friendly places in %s, %s in the category: %q.

Search for actual businesses, parks, libraries, farms and venues that exist today. Focus on:
- Locally owned, non-chain establishments
- Places safe and enjoyable for families with young children (ages 0-9)
- Free or low-cost destinations (under $20 per person)
- Nature-connected, community-oriented spots

For each place provide:
1. The exact name as it would appear on Google Maps
2. A one-sentence description of what it is
3. Whether it is primarily outdoor (true) or indoor (false)
4. Approximate price: FREE, $5_$10, or $10_$15

Return %d places as a JSON array with fields: name, description, outdoor, priceTier.
Only include places you are confident actually exist. Return ONLY a valid JSON array, no other text.`,
		req.City, req.State, cat, TargetCount(cat)+3)
}

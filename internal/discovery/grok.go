package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/alexanderramin/wildercal/internal/domain"
	"github.com/alexanderramin/wildercal/internal/llm"
)

// Channel selects what a Grok live-search pass looks for.
type Channel string

const (
	ChannelXParents      Channel = "x_parents"
	ChannelNeighborhoods Channel = "neighborhoods"
	ChannelLocalBlogs    Channel = "local_blogs"
	ChannelSeasonal      Channel = "seasonal"
)

// Channels lists every Grok channel in merge priority order.
var Channels = []Channel{ChannelXParents, ChannelNeighborhoods, ChannelLocalBlogs, ChannelSeasonal}

var channelTags = map[Channel]domain.SourceTag{
	ChannelXParents:      domain.SourceGrokX,
	ChannelNeighborhoods: domain.SourceGrokWeb,
	ChannelLocalBlogs:    domain.SourceGrokBlog,
	ChannelSeasonal:      domain.SourceGrokSeasonal,
}

const blogStepTimeout = 12 * time.Second

// GrokSource runs one channel against an xAI chat client with live search.
type GrokSource struct {
	channel Channel
	client  llm.LLMClient
	now     func() time.Time
	log     *zap.Logger
}

// NewGrokSource creates a source for channel. client is normally
// llm.NewGrokClient.
func NewGrokSource(channel Channel, client llm.LLMClient, log *zap.Logger) *GrokSource {
	if log == nil {
		log = zap.NewNop()
	}
	return &GrokSource{channel: channel, client: client, now: time.Now, log: log.Named("grok")}
}

// GrokSources returns one source per channel sharing client.
func GrokSources(client llm.LLMClient, log *zap.Logger) []Source {
	out := make([]Source, 0, len(Channels))
	for _, ch := range Channels {
		out = append(out, NewGrokSource(ch, client, log))
	}
	return out
}

func (s *GrokSource) Tag() domain.SourceTag { return channelTags[s.channel] }

func (s *GrokSource) Discover(ctx context.Context, req Request) ([]domain.CandidateRecord, error) {
	if s.channel == ChannelLocalBlogs {
		return s.discoverBlogs(ctx, req)
	}
	var prompt string
	switch s.channel {
	case ChannelXParents:
		prompt = xParentsPrompt(req)
	case ChannelNeighborhoods:
		prompt = neighborhoodPrompt(req)
	case ChannelSeasonal:
		prompt = seasonalPrompt(req, seasonForMonth(s.now().Month()))
	default:
		return nil, fmt.Errorf("unknown grok channel %q", s.channel)
	}
	text, err := s.ask(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return parseGrokPlaces(text, s.Tag())
}

// discoverBlogs finds local family blog domains first, then asks for places
// recommended on those domains. Each step has its own short timeout.
func (s *GrokSource) discoverBlogs(ctx context.Context, req Request) ([]domain.CandidateRecord, error) {
	stepCtx, cancel := context.WithTimeout(ctx, blogStepTimeout)
	text, err := s.ask(stepCtx, blogDomainsPrompt(req))
	cancel()
	if err != nil {
		return nil, fmt.Errorf("finding blogs: %w", err)
	}
	found, err := llm.ExtractJSON[struct {
		Domains []string `json:"domains"`
	}](text, nil)
	if err != nil {
		return nil, fmt.Errorf("finding blogs: %w", err)
	}
	var domains []string
	for _, d := range found.Domains {
		if strings.Contains(d, ".") {
			domains = append(domains, d)
		}
		if len(domains) == 5 {
			break
		}
	}
	if len(domains) == 0 {
		s.log.Info("no local blogs found", zap.String("city", req.City))
		return nil, nil
	}

	stepCtx, cancel = context.WithTimeout(ctx, blogStepTimeout)
	defer cancel()
	text, err = s.ask(stepCtx, blogSearchPrompt(req, domains))
	if err != nil {
		return nil, fmt.Errorf("searching blogs: %w", err)
	}
	return parseGrokPlaces(text, s.Tag())
}

func (s *GrokSource) ask(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskDiscover,
		SystemPrompt: grokSystemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

type grokPlace struct {
	Name             string `json:"name"`
	Category         string `json:"category"`
	Description      string `json:"description"`
	WhyParentsLoveIt string `json:"whyParentsLoveIt"`
	InsiderTip       string `json:"insiderTip"`
	Cost             string `json:"cost"`
}

// grokPlaces accepts either {"places":[...]} or a bare array.
type grokPlaces []grokPlace

func (g *grokPlaces) UnmarshalJSON(data []byte) error {
	var arr []grokPlace
	if err := json.Unmarshal(data, &arr); err == nil {
		*g = arr
		return nil
	}
	var wrapped struct {
		Places []grokPlace `json:"places"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	*g = wrapped.Places
	return nil
}

// parseGrokPlaces keeps names of at least three characters, drops
// duplicates and falls back to nature for unknown categories.
func parseGrokPlaces(text string, tag domain.SourceTag) ([]domain.CandidateRecord, error) {
	items, err := llm.ExtractJSON[grokPlaces](text, nil)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var out []domain.CandidateRecord
	for _, it := range items {
		name := strings.TrimSpace(it.Name)
		if len([]rune(name)) < 3 {
			continue
		}
		key := domain.NormalizeKey(name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, domain.CandidateRecord{
			Name:      name,
			Source:    tag,
			Snippet:   domain.Truncate(domain.CoalesceStr(it.WhyParentsLoveIt, it.Description), maxSnippetLen),
			Category:  domain.ParseCategory(it.Category),
			PriceHint: priceFromCost(it.Cost),
		})
	}
	return out, nil
}

func seasonForMonth(m time.Month) domain.Season {
	switch {
	case m >= time.March && m <= time.May:
		return domain.SeasonSpring
	case m >= time.June && m <= time.August:
		return domain.SeasonSummer
	case m >= time.September && m <= time.November:
		return domain.SeasonFall
	default:
		return domain.SeasonWinter
	}
}

// Package editorial runs the optional AI review that screens merged
// candidates before scoring and rewrites their snippets in the brand voice.
package editorial

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/alexanderramin/wildercal/internal/curation"
	"github.com/alexanderramin/wildercal/internal/domain"
	"github.com/alexanderramin/wildercal/internal/llm"
)

const maxPromptSnippet = 150

// Rejection is a candidate the reviewer turned down.
type Rejection struct {
	Name   string
	Reason string
}

// Outcome is the reviewed candidate list. Reviewed is false when no
// reviewer answered and the candidates passed through untouched.
type Outcome struct {
	Accepted []domain.CandidateRecord
	Rejected []Rejection
	Reviewed bool
	Provider string
}

// Reviewer asks the first available client to accept or reject candidates.
type Reviewer struct {
	clients []llm.LLMClient
	log     *zap.Logger
}

// NewReviewer creates a reviewer trying clients in order.
func NewReviewer(log *zap.Logger, clients ...llm.LLMClient) *Reviewer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reviewer{clients: clients, log: log.Named("editorial")}
}

type reviewedPlace struct {
	Name             string `json:"name"`
	Category         string `json:"category"`
	ShortDescription string `json:"shortDescription"`
	PriceTier        string `json:"priceTier"`
}

type reviewReply struct {
	Accepted []reviewedPlace `json:"accepted"`
	Rejected []struct {
		Name   string `json:"name"`
		Reason string `json:"reason"`
	} `json:"rejected"`
}

// Review never fails: when every client is unavailable or answers badly the
// candidates pass through unchanged. Accepted names that do not match a
// candidate are ignored, so the reviewer cannot add places. Candidates the
// model neither accepts nor rejects are kept.
func (r *Reviewer) Review(ctx context.Context, city, state string, cands []domain.CandidateRecord) Outcome {
	pass := Outcome{Accepted: cands}
	if len(cands) == 0 {
		return pass
	}
	prompt, err := buildPrompt(city, state, cands)
	if err != nil {
		r.log.Warn("building review prompt", zap.Error(err))
		return pass
	}

	for _, c := range r.clients {
		if ctx.Err() != nil {
			return pass
		}
		if !c.Available(ctx) {
			continue
		}
		resp, err := c.Generate(ctx, llm.GenerateRequest{
			Task:         llm.TaskCurate,
			SystemPrompt: systemPrompt,
			UserPrompt:   prompt,
		})
		if err != nil {
			r.log.Warn("review call failed", zap.String("provider", c.Provider()), zap.Error(err))
			continue
		}
		reply, err := llm.ExtractJSON[reviewReply](resp.Text, nil)
		if err != nil {
			r.log.Warn("review reply unusable", zap.String("provider", c.Provider()), zap.Error(err))
			continue
		}
		out := apply(cands, reply)
		out.Provider = c.Provider()
		r.log.Info("review complete",
			zap.String("provider", out.Provider),
			zap.Int("accepted", len(out.Accepted)),
			zap.Int("rejected", len(out.Rejected)),
		)
		return out
	}
	return pass
}

func apply(cands []domain.CandidateRecord, reply reviewReply) Outcome {
	accepted := make(map[string]reviewedPlace, len(reply.Accepted))
	for _, a := range reply.Accepted {
		accepted[domain.NormalizeKey(a.Name)] = a
	}
	rejected := make(map[string]string, len(reply.Rejected))
	for _, rj := range reply.Rejected {
		rejected[domain.NormalizeKey(rj.Name)] = rj.Reason
	}

	out := Outcome{Reviewed: true}
	for _, c := range cands {
		key := domain.NormalizeKey(c.Name)
		if a, ok := accepted[key]; ok {
			out.Accepted = append(out.Accepted, revise(c, a))
			continue
		}
		if reason, ok := rejected[key]; ok {
			out.Rejected = append(out.Rejected, Rejection{Name: c.Name, Reason: reason})
			continue
		}
		out.Accepted = append(out.Accepted, c)
	}
	return out
}

// revise applies the reviewer's category, description and price. The name
// is never changed.
func revise(c domain.CandidateRecord, a reviewedPlace) domain.CandidateRecord {
	if cat := domain.Category(strings.ToLower(strings.TrimSpace(a.Category))); cat.Valid() {
		c.Category = cat
	}
	if d := strings.TrimSpace(a.ShortDescription); d != "" {
		c.Snippet = domain.Truncate(d, curation.MaxDescriptionLen)
	}
	if c.PriceHint == nil {
		if tier, ok := domain.ParsePriceTier(a.PriceTier); ok {
			c.PriceHint = &tier
		}
	}
	return c
}

const systemPrompt = `You are a curation specialist for Wilder Seasons, a family nature brand for families with children ages 0-5.

Your job is to REVIEW a list of places discovered by web search and decide which ones are genuinely good fits. You are NOT discovering new places; only evaluate the ones provided.

ACCEPT real, specific venues that are family-friendly for ages 0-5, locally owned, FREE or under $15 per person, and nature-connected, educational or community-building.

REJECT chain restaurants and franchises, commercial entertainment chains, adult venues (bars, breweries, wineries, nightclubs, casinos), places over $15 per person, list articles and blog posts, and anything that seems fabricated.

Write accepted descriptions in the warm, wonder-filled Wilder Seasons voice.`

type promptPlace struct {
	Name     string `json:"name"`
	Source   string `json:"source"`
	Snippet  string `json:"snippet"`
	Category string `json:"category"`
}

func buildPrompt(city, state string, cands []domain.CandidateRecord) (string, error) {
	list := make([]promptPlace, len(cands))
	for i, c := range cands {
		list[i] = promptPlace{
			Name:     c.Name,
			Source:   string(c.Source),
			Snippet:  domain.Truncate(c.Snippet, maxPromptSnippet),
			Category: string(c.Category),
		}
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding candidates: %w", err)
	}
	return fmt.Sprintf(`Review these %d places discovered for %s. Accept the ones that fit Wilder Seasons and reject the rest.

DISCOVERED PLACES:
%s

For each ACCEPTED place return:
- "name": exact name from the list above (do not rename)
- "category": one of [nature, farm, library, museum, indoor_play, garden, seasonal]
- "shortDescription": warm, nature-connected description (max 100 chars)
- "priceTier": one of "FREE", "$5_$10", "$10_$15"

Return a JSON object with two arrays:
{"accepted": [...], "rejected": [{"name": "...", "reason": "..."}]}

Return ONLY valid JSON. No explanation text.`, len(cands), strings.TrimSuffix(city+", "+state, ", "), data), nil
}

package discovery

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/wildercal/internal/domain"
	"github.com/alexanderramin/wildercal/internal/llm"
)

// scriptedClient answers each Generate call with the next scripted reply.
type scriptedClient struct {
	replies []string
	err     error
	prompts []string
}

func (c *scriptedClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	c.prompts = append(c.prompts, req.UserPrompt)
	if c.err != nil {
		return nil, c.err
	}
	if len(c.replies) == 0 {
		return nil, errors.New("no scripted reply")
	}
	text := c.replies[0]
	c.replies = c.replies[1:]
	return &llm.GenerateResponse{Text: text, Provider: "xai"}, nil
}

func (c *scriptedClient) Available(context.Context) bool { return true }
func (c *scriptedClient) Provider() string               { return "xai" }

func TestGrokSource_XParents(t *testing.T) {
	client := &scriptedClient{replies: []string{`{"places":[
		{"name":"Pioneers Park Nature Center","category":"nature","whyParentsLoveIt":"Bison and trails","cost":"free"},
		{"name":"Pioneers Park Nature Center","category":"nature"},
		{"name":"Zo","category":"farm"},
		{"name":"Lincoln Children's Zoo","category":"petting zoo","description":"Hands-on animals","cost":"under $20"}
	]}`}}
	src := NewGrokSource(ChannelXParents, client, nil)

	recs, err := src.Discover(context.Background(), Request{City: "Lincoln", State: "NE"})
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, domain.SourceGrokX, recs[0].Source)
	assert.Equal(t, "Bison and trails", recs[0].Snippet)
	require.NotNil(t, recs[0].PriceHint)
	assert.Equal(t, domain.PriceFree, *recs[0].PriceHint)

	assert.Equal(t, domain.CategoryNature, recs[1].Category, "unknown category falls back to nature")
	assert.Equal(t, "Hands-on animals", recs[1].Snippet)
	require.NotNil(t, recs[1].PriceHint)
	assert.Equal(t, domain.Price10To15, *recs[1].PriceHint)
}

func TestGrokSource_BareArray(t *testing.T) {
	client := &scriptedClient{replies: []string{`[{"name":"Sunken Gardens","category":"garden"}]`}}
	recs, err := NewGrokSource(ChannelNeighborhoods, client, nil).Discover(context.Background(), Request{City: "Lincoln"})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, domain.SourceGrokWeb, recs[0].Source)
	assert.Equal(t, domain.CategoryGarden, recs[0].Category)
}

func TestGrokSource_SeasonalUsesCurrentMonth(t *testing.T) {
	client := &scriptedClient{replies: []string{`[]`}}
	src := NewGrokSource(ChannelSeasonal, client, nil)
	src.now = func() time.Time { return time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC) }

	recs, err := src.Discover(context.Background(), Request{City: "Lincoln"})
	require.NoError(t, err)
	assert.Empty(t, recs)
	require.Len(t, client.prompts, 1)
	assert.Contains(t, strings.ToLower(client.prompts[0]), "fall")
}

func TestGrokSource_LocalBlogsTwoSteps(t *testing.T) {
	client := &scriptedClient{replies: []string{
		`{"domains":["lincolnmoms.example","not a domain","kidsinlincoln.example"]}`,
		`{"places":[{"name":"Antelope Park Splash Pad","category":"nature"}]}`,
	}}
	src := NewGrokSource(ChannelLocalBlogs, client, nil)

	recs, err := src.Discover(context.Background(), Request{City: "Lincoln"})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, domain.SourceGrokBlog, recs[0].Source)

	require.Len(t, client.prompts, 2)
	assert.Contains(t, client.prompts[1], "lincolnmoms.example")
	assert.Contains(t, client.prompts[1], "kidsinlincoln.example")
	assert.NotContains(t, client.prompts[1], "not a domain")
}

func TestGrokSource_LocalBlogsNoDomains(t *testing.T) {
	client := &scriptedClient{replies: []string{`{"domains":[]}`}}
	recs, err := NewGrokSource(ChannelLocalBlogs, client, nil).Discover(context.Background(), Request{City: "Lincoln"})
	require.NoError(t, err)
	assert.Empty(t, recs)
	assert.Len(t, client.prompts, 1)
}

func TestGrokSource_ClientError(t *testing.T) {
	client := &scriptedClient{err: llm.ErrTimeout}
	_, err := NewGrokSource(ChannelXParents, client, nil).Discover(context.Background(), Request{City: "Lincoln"})
	assert.ErrorIs(t, err, llm.ErrTimeout)
}

func TestGrokSources_OnePerChannel(t *testing.T) {
	srcs := GrokSources(&scriptedClient{}, nil)
	require.Len(t, srcs, len(Channels))
	tags := make([]domain.SourceTag, len(srcs))
	for i, s := range srcs {
		tags[i] = s.Tag()
	}
	assert.Equal(t, []domain.SourceTag{
		domain.SourceGrokX, domain.SourceGrokWeb, domain.SourceGrokBlog, domain.SourceGrokSeasonal,
	}, tags)
}

func TestSeasonForMonth(t *testing.T) {
	assert.Equal(t, domain.SeasonWinter, seasonForMonth(time.January))
	assert.Equal(t, domain.SeasonSpring, seasonForMonth(time.April))
	assert.Equal(t, domain.SeasonSummer, seasonForMonth(time.July))
	assert.Equal(t, domain.SeasonFall, seasonForMonth(time.November))
	assert.Equal(t, domain.SeasonWinter, seasonForMonth(time.December))
}

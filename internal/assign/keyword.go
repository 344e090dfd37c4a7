package assign

import (
	"context"

	"github.com/alexanderramin/wildercal/internal/scheduler"
)

// KeywordName identifies the deterministic fallback in plan metadata.
const KeywordName = "keyword"

// KeywordStrategy ranks places by the shared fit score. It ignores the
// context and never fails.
type KeywordStrategy struct{}

func (KeywordStrategy) Name() string { return KeywordName }

func (KeywordStrategy) Suggest(_ context.Context, in Input) Result {
	return Success(scheduler.SuggestByKeywords(in.Places, in.Themes))
}

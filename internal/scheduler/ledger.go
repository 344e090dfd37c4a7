package scheduler

import "github.com/alexanderramin/wildercal/internal/domain"

// MaxUsesPerPlace caps how many slots, primary or alternate, one place may
// fill across a 52-week plan.
const MaxUsesPerPlace = 2

// UsageLedger counts slot usage per normalized place key. A ledger belongs
// to one enforcement run and is not safe for concurrent use.
type UsageLedger struct {
	limit  int
	counts map[string]int
}

func NewUsageLedger(limit int) *UsageLedger {
	if limit <= 0 {
		limit = MaxUsesPerPlace
	}
	return &UsageLedger{limit: limit, counts: make(map[string]int)}
}

// CanUse reports whether name still has capacity. Empty names never do.
func (l *UsageLedger) CanUse(name string) bool {
	key := domain.NormalizeKey(name)
	return key != "" && l.counts[key] < l.limit
}

// Record counts one use of name. Empty names are ignored.
func (l *UsageLedger) Record(name string) {
	key := domain.NormalizeKey(name)
	if key == "" {
		return
	}
	l.counts[key]++
}

func (l *UsageLedger) Count(name string) int {
	return l.counts[domain.NormalizeKey(name)]
}

// Counts returns a copy of the per-key usage.
func (l *UsageLedger) Counts() map[string]int {
	out := make(map[string]int, len(l.counts))
	for k, v := range l.counts {
		out[k] = v
	}
	return out
}

package curation

import "github.com/alexanderramin/wildercal/internal/domain"

// Merge flattens candidate batches into one list with at most one record per
// normalized key. Batches must be ordered most-trusted first: the first
// record seen for a key wins and later duplicates are discarded whole.
// Records whose key normalizes to empty are dropped.
func Merge(batches ...[]domain.CandidateRecord) []domain.CandidateRecord {
	seen := make(map[string]bool)
	out := make([]domain.CandidateRecord, 0)
	for _, batch := range batches {
		for _, rec := range batch {
			key := domain.NormalizeKey(rec.Name)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, rec)
		}
	}
	return out
}

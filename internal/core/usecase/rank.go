package usecase

import (
	"sort"

	"github.com/Ben-aoun-1/linksaudi/internal/core/domain"
)

// rankCandidates turns the unordered adapter output into the deterministic,
// deduplicated, capped sequence the citation assembler consumes. Scores are
// never rewritten beyond the floor cut and the truncation, so every surfaced
// score traces back to the adapter's raw score.
//
// Order: raw_score descending, ties by document_id ascending, then by
// page_number and practice_area so equal-score runs are stable across calls
// regardless of adapter insertion order. Duplicates sharing
// (document_id, page_number, practice_area) collapse to the highest score.
func rankCandidates(candidates []domain.Candidate, floor float64, topK int) []domain.Candidate {
	kept := make([]domain.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.RawScore < floor {
			continue
		}
		kept = append(kept, c)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].RawScore != kept[j].RawScore {
			return kept[i].RawScore > kept[j].RawScore
		}
		if kept[i].DocumentID != kept[j].DocumentID {
			return kept[i].DocumentID < kept[j].DocumentID
		}
		if kept[i].PageNumber != kept[j].PageNumber {
			return kept[i].PageNumber < kept[j].PageNumber
		}
		return kept[i].PracticeArea < kept[j].PracticeArea
	})

	// First occurrence wins: the sort already put the higher score (or the
	// tie-break winner) in front.
	seen := make(map[string]struct{}, len(kept))
	deduped := kept[:0]
	for _, c := range kept {
		key := c.DedupKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, c)
	}

	if topK > 0 && len(deduped) > topK {
		deduped = deduped[:topK]
	}
	return deduped
}

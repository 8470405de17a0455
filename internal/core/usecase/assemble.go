package usecase

import (
	"sort"

	"github.com/Ben-aoun-1/linksaudi/internal/core/domain"
)

// assembleCitations maps the ranked candidates to transcript citations and
// builds the response metadata block. consulted is the pre-deduplication
// candidate count seen by the ranker, so documents_consulted can exceed
// citations_provided when hits fell below the floor or collapsed as
// duplicates. An empty ranked sequence is a valid zero-citation outcome, not
// an error; search_method still reflects the mode attempted.
func assembleCitations(
	ranked []domain.Candidate,
	consulted int,
	mode domain.SearchMode,
	profile domain.RankingProfile,
) ([]domain.Citation, domain.ResponseMetadata) {
	citations := make([]domain.Citation, 0, len(ranked))
	for _, c := range ranked {
		citation := domain.Citation{
			Title:          c.Title,
			DocumentType:   c.DocumentType,
			Jurisdiction:   c.Jurisdiction,
			PracticeArea:   c.PracticeArea,
			FileName:       c.FileName,
			PageNumber:     c.PageNumber,
			ProcessingDate: c.ProcessingDate,
		}
		if profile != domain.ProfileLightweight {
			score := c.RawScore
			citation.RelevanceScore = &score
			citation.Source = c.SourceLabel
		}
		citations = append(citations, citation)
	}

	meta := domain.ResponseMetadata{
		DocumentsConsulted: consulted,
		CitationsProvided:  len(citations),
		DocumentTypes:      distinctValues(citations, func(c domain.Citation) string { return c.DocumentType }),
		Jurisdictions:      distinctValues(citations, func(c domain.Citation) string { return c.Jurisdiction }),
		SearchMethod:       mode.Method(),
	}
	return citations, meta
}

// distinctValues collects the distinct non-empty values across the returned
// citations only, not the full candidate pool.
func distinctValues(citations []domain.Citation, value func(domain.Citation) string) []string {
	set := make(map[string]struct{}, len(citations))
	for _, c := range citations {
		if v := value(c); v != "" {
			set[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

package staticguide

import (
	"context"
	"errors"
	"sort"
	"strings"
	"unicode"

	"github.com/Ben-aoun-1/linksaudi/internal/core/domain"
)

// SourceLabel marks candidates answered from the built-in guide library.
const SourceLabel = "Static Legal Guide Library"

var errSemanticUnsupported = errors.New("static guide library has no vector index")

// Index serves queries from a small built-in library of legal guides. It is
// the offline backend: deployments without a reachable vector store still
// answer basic questions about Saudi law.
//
// Only basic mode is supported; semantic requests report the index as
// unavailable so the search controller falls back.
type Index struct {
	guides []guide
}

type guide struct {
	id           string
	title        string
	documentType string
	jurisdiction string
	practiceArea string
	fileName     string
	date         string
	content      string
}

func New() *Index {
	return &Index{guides: builtinGuides}
}

func (i *Index) Search(
	ctx context.Context,
	text string,
	filters domain.SearchFilter,
	mode domain.SearchMode,
	limit int,
) ([]domain.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if mode == domain.ModeSemantic {
		return nil, domain.WrapError(domain.ErrIndexUnavailable, "static guide semantic search", errSemanticUnsupported)
	}
	if limit <= 0 || limit > 50 {
		limit = 50
	}

	queryTokens := tokenize(text)
	candidates := make([]domain.Candidate, 0, len(i.guides))
	for _, g := range i.guides {
		if filters.DocumentType != "" && !strings.EqualFold(filters.DocumentType, g.documentType) {
			continue
		}
		if filters.Jurisdiction != "" && !strings.EqualFold(filters.Jurisdiction, g.jurisdiction) {
			continue
		}
		score := overlapScore(queryTokens, tokenize(g.title+" "+g.content))
		if score == 0 {
			continue
		}
		candidates = append(candidates, domain.Candidate{
			DocumentID:     g.id,
			Title:          g.title,
			DocumentType:   g.documentType,
			Jurisdiction:   g.jurisdiction,
			PracticeArea:   g.practiceArea,
			FileName:       g.fileName,
			PageNumber:     1,
			ChunkIndex:     0,
			Content:        g.content,
			RawScore:       score,
			ProcessingDate: g.date,
			SourceLabel:    SourceLabel,
		})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		if candidates[a].RawScore != candidates[b].RawScore {
			return candidates[a].RawScore > candidates[b].RawScore
		}
		return candidates[a].DocumentID < candidates[b].DocumentID
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

func tokenize(s string) map[string]struct{} {
	tokens := make(map[string]struct{})
	var b strings.Builder
	flush := func() {
		if b.Len() >= 3 {
			tokens[b.String()] = struct{}{}
		}
		b.Reset()
	}
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			continue
		}
		flush()
	}
	flush()
	return tokens
}

// overlapScore is the share of query tokens present in the guide text.
func overlapScore(query, text map[string]struct{}) float64 {
	if len(query) == 0 {
		return 0
	}
	matched := 0
	for token := range query {
		if _, ok := text[token]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(query))
}

package usecase

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Ben-aoun-1/linksaudi/internal/core/domain"
)

func TestAssembleCitationsMetadataInvariants(t *testing.T) {
	ranked := []domain.Candidate{
		{DocumentID: "doc-1", DocumentType: "Royal Decree", Jurisdiction: "Saudi Arabia", RawScore: 8.5, SourceLabel: "Weaviate Cloud Legal Database"},
		{DocumentID: "doc-2", DocumentType: "Legal Guidance", Jurisdiction: "Saudi Arabia", RawScore: 6.0, SourceLabel: "Weaviate Cloud Legal Database"},
	}

	citations, meta := assembleCitations(ranked, 7, domain.ModeSemantic, domain.ProfileStandard)
	if meta.CitationsProvided != len(citations) {
		t.Fatalf("citations_provided=%d but %d citations", meta.CitationsProvided, len(citations))
	}
	if meta.DocumentsConsulted < meta.CitationsProvided {
		t.Fatalf("documents_consulted=%d < citations_provided=%d", meta.DocumentsConsulted, meta.CitationsProvided)
	}
	if meta.DocumentsConsulted != 7 {
		t.Fatalf("expected pre-dedup count 7, got %d", meta.DocumentsConsulted)
	}
	if meta.SearchMethod != domain.MethodSemanticSearch {
		t.Fatalf("expected semantic_search, got %s", meta.SearchMethod)
	}
	if len(meta.DocumentTypes) != 2 || meta.DocumentTypes[0] != "Legal Guidance" {
		t.Fatalf("unexpected document_types: %v", meta.DocumentTypes)
	}
	if len(meta.Jurisdictions) != 1 || meta.Jurisdictions[0] != "Saudi Arabia" {
		t.Fatalf("unexpected jurisdictions: %v", meta.Jurisdictions)
	}
	if citations[0].RelevanceScore == nil || *citations[0].RelevanceScore != 8.5 {
		t.Fatalf("expected relevance_score 8.5, got %v", citations[0].RelevanceScore)
	}
}

func TestAssembleCitationsEmptyInput(t *testing.T) {
	citations, meta := assembleCitations(nil, 0, domain.ModeBasic, domain.ProfileStandard)
	if len(citations) != 0 {
		t.Fatalf("expected zero citations, got %d", len(citations))
	}
	if meta.CitationsProvided != 0 {
		t.Fatalf("expected citations_provided=0, got %d", meta.CitationsProvided)
	}
	if meta.SearchMethod != domain.MethodBasicSearch {
		t.Fatalf("empty result must still stamp the mode attempted, got %s", meta.SearchMethod)
	}
}

func TestAssembleCitationsLightweightProfileOmitsScoreAndSource(t *testing.T) {
	ranked := []domain.Candidate{
		{DocumentID: "doc-1", Title: "Labor Law Guide", RawScore: 1.0, SourceLabel: "Static Legal Guide Library"},
	}

	citations, _ := assembleCitations(ranked, 1, domain.ModeBasic, domain.ProfileLightweight)
	if citations[0].RelevanceScore != nil {
		t.Fatalf("lightweight profile must omit relevance_score")
	}
	if citations[0].Source != "" {
		t.Fatalf("lightweight profile must omit source")
	}

	raw, err := json.Marshal(citations[0])
	if err != nil {
		t.Fatalf("marshal citation: %v", err)
	}
	if strings.Contains(string(raw), "relevance_score") || strings.Contains(string(raw), `"source"`) {
		t.Fatalf("serialized citation leaks omitted keys: %s", raw)
	}
}

func TestAssembleCitationsTranscriptKeys(t *testing.T) {
	ranked := []domain.Candidate{{
		DocumentID:     "doc-1",
		Title:          "Commercial Regulations Guide",
		DocumentType:   "Regulatory Guide",
		Jurisdiction:   "Saudi Arabia",
		PracticeArea:   "Commercial Law",
		FileName:       "commercial_regulations.pdf",
		PageNumber:     3,
		ProcessingDate: "2025-03-14T09:00:00Z",
		RawScore:       0.9,
		SourceLabel:    "Weaviate Cloud Legal Database",
	}}

	citations, _ := assembleCitations(ranked, 1, domain.ModeSemantic, domain.ProfileStandard)
	raw, err := json.Marshal(citations[0])
	if err != nil {
		t.Fatalf("marshal citation: %v", err)
	}
	for _, key := range []string{
		"title", "document_type", "jurisdiction", "practice_area",
		"file_name", "page_number", "processing_date", "relevance_score", "source",
	} {
		if !strings.Contains(string(raw), `"`+key+`"`) {
			t.Fatalf("serialized citation missing key %q: %s", key, raw)
		}
	}
}

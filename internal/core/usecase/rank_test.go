package usecase

import (
	"fmt"
	"testing"

	"github.com/Ben-aoun-1/linksaudi/internal/core/domain"
)

func TestRankCandidatesOrdersByScoreThenID(t *testing.T) {
	in := []domain.Candidate{
		{DocumentID: "doc-9", RawScore: 4.0},
		{DocumentID: "doc-1", RawScore: 8.5},
		{DocumentID: "doc-3", RawScore: 4.0},
		{DocumentID: "doc-2", RawScore: 6.1},
	}

	out := rankCandidates(in, 0, 10)
	if len(out) != 4 {
		t.Fatalf("expected 4 candidates, got %d", len(out))
	}
	for i := 1; i < len(out); i++ {
		if out[i].RawScore > out[i-1].RawScore {
			t.Fatalf("scores not non-increasing at %d: %v > %v", i, out[i].RawScore, out[i-1].RawScore)
		}
	}
	if out[2].DocumentID != "doc-3" || out[3].DocumentID != "doc-9" {
		t.Fatalf("equal-score run not ordered by document_id: %s, %s", out[2].DocumentID, out[3].DocumentID)
	}
}

func TestRankCandidatesAppliesFloor(t *testing.T) {
	in := []domain.Candidate{
		{DocumentID: "doc-1", RawScore: 0.9},
		{DocumentID: "doc-2", RawScore: 0.3},
	}

	out := rankCandidates(in, 0.5, 10)
	if len(out) != 1 {
		t.Fatalf("expected 1 candidate above floor, got %d", len(out))
	}
	if out[0].DocumentID != "doc-1" {
		t.Fatalf("expected doc-1, got %s", out[0].DocumentID)
	}
}

func TestRankCandidatesTruncatesToTopK(t *testing.T) {
	in := make([]domain.Candidate, 0, 10)
	for i := 0; i < 10; i++ {
		in = append(in, domain.Candidate{
			DocumentID: fmt.Sprintf("doc-%d", i),
			RawScore:   float64(i),
		})
	}

	out := rankCandidates(in, 0, 3)
	if len(out) != 3 {
		t.Fatalf("expected exactly 3 candidates, got %d", len(out))
	}
	for i, want := range []string{"doc-9", "doc-8", "doc-7"} {
		if out[i].DocumentID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, out[i].DocumentID)
		}
	}
}

func TestRankCandidatesDeduplicatesKeepingHigherScore(t *testing.T) {
	in := []domain.Candidate{
		{DocumentID: "doc-1", PageNumber: 4, PracticeArea: "Employment Law", RawScore: 7.5},
		{DocumentID: "doc-1", PageNumber: 4, PracticeArea: "Employment Law", RawScore: 8.5},
	}

	out := rankCandidates(in, 0, 10)
	if len(out) != 1 {
		t.Fatalf("expected 1 citation after dedup, got %d", len(out))
	}
	if out[0].RawScore != 8.5 {
		t.Fatalf("expected surviving score 8.5, got %v", out[0].RawScore)
	}
}

func TestRankCandidatesDedupKeepsDistinctPages(t *testing.T) {
	in := []domain.Candidate{
		{DocumentID: "doc-1", PageNumber: 4, PracticeArea: "Employment Law", RawScore: 7.5},
		{DocumentID: "doc-1", PageNumber: 5, PracticeArea: "Employment Law", RawScore: 7.5},
	}

	out := rankCandidates(in, 0, 10)
	if len(out) != 2 {
		t.Fatalf("distinct pages must not collapse, got %d", len(out))
	}
}

func TestRankCandidatesIsIdempotent(t *testing.T) {
	in := []domain.Candidate{
		{DocumentID: "doc-2", PageNumber: 1, RawScore: 3.0},
		{DocumentID: "doc-1", PageNumber: 1, RawScore: 3.0},
		{DocumentID: "doc-1", PageNumber: 1, RawScore: 2.0},
		{DocumentID: "doc-3", PageNumber: 2, RawScore: 9.0},
	}

	once := rankCandidates(in, 0, 10)
	twice := rankCandidates(once, 0, 10)
	if len(once) != len(twice) {
		t.Fatalf("length changed on second pass: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("position %d changed on second pass: %+v vs %+v", i, once[i], twice[i])
		}
	}
}

func TestRankCandidatesEmptyInput(t *testing.T) {
	out := rankCandidates(nil, 0, 10)
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %d", len(out))
	}
}

package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Ben-aoun-1/linksaudi/internal/core/domain"
)

func sampleEntry() domain.TranscriptEntry {
	score := 0.9
	return domain.TranscriptEntry{
		ID:        "entry-1",
		SessionID: "session-1",
		Question:  "What is the VAT registration threshold?",
		Filters:   domain.SearchFilter{Jurisdiction: "Saudi Arabia"},
		Response: domain.LegalResponse{
			Content: "The threshold is 375,000 riyals.",
			Metadata: domain.ResponseMetadata{
				DocumentsConsulted: 3,
				CitationsProvided:  1,
				DocumentTypes:      []string{"guide"},
				Jurisdictions:      []string{"Saudi Arabia"},
				SearchMethod:       domain.MethodSemanticSearch,
			},
			Citations: []domain.Citation{
				{
					Title:          "Value Added Tax Compliance Guide",
					DocumentType:   "guide",
					Jurisdiction:   "Saudi Arabia",
					PracticeArea:   "tax",
					FileName:       "vat_compliance.md",
					PageNumber:     1,
					RelevanceScore: &score,
				},
			},
		},
		CreatedAt: time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC),
	}
}

func TestSaveEntryInsertsAllColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	entry := sampleEntry()
	mock.ExpectExec("INSERT INTO legal_transcripts").
		WithArgs(
			entry.ID, entry.SessionID, entry.Question,
			sqlmock.AnyArg(), entry.Response.Content, sqlmock.AnyArg(),
			"semantic_search", 3, 1, entry.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewTranscriptRepository(db)
	if err := repo.SaveEntry(context.Background(), entry); err != nil {
		t.Fatalf("SaveEntry: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestSaveEntryWrapsDriverError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO legal_transcripts").
		WillReturnError(errors.New("connection refused"))

	repo := NewTranscriptRepository(db)
	if err := repo.SaveEntry(context.Background(), sampleEntry()); err == nil {
		t.Fatal("expected error")
	}
}

func TestBumpSessionUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO legal_sessions").
		WithArgs("session-1", `{"guide"}`, `{"Saudi Arabia"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewTranscriptRepository(db)
	meta := domain.ResponseMetadata{
		DocumentTypes: []string{"guide"},
		Jurisdictions: []string{"Saudi Arabia"},
	}
	if err := repo.BumpSession(context.Background(), "session-1", meta); err != nil {
		t.Fatalf("BumpSession: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestEnsureSchemaTakesAdvisoryLock(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("pg_advisory_lock").
		WithArgs(schemaLockID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS legal_transcripts").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_legal_transcripts_session").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS legal_sessions").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("pg_advisory_unlock").
		WithArgs(schemaLockID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewTranscriptRepository(db)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestTextArrayEscaping(t *testing.T) {
	got := textArray([]string{`with"quote`, `with\slash`})
	want := `{"with\"quote","with\\slash"}`
	if got != want {
		t.Errorf("textArray = %s, want %s", got, want)
	}
	if textArray(nil) != "{}" {
		t.Errorf("empty array literal = %s", textArray(nil))
	}
}

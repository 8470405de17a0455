package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/Ben-aoun-1/linksaudi/internal/core/domain"
)

const schemaLockID int64 = 7245001

// OpenDB opens a pooled connection through the pgx stdlib driver and verifies
// connectivity before handing it out.
func OpenDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// TranscriptRepository persists transcript entries and per-session rollups.
type TranscriptRepository struct {
	db *sql.DB
}

func NewTranscriptRepository(db *sql.DB) *TranscriptRepository {
	return &TranscriptRepository{db: db}
}

// EnsureSchema creates the transcript tables if they are missing. The advisory
// lock keeps concurrent worker replicas from racing on DDL.
func (r *TranscriptRepository) EnsureSchema(ctx context.Context) error {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire schema connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "SELECT pg_advisory_lock($1)", schemaLockID); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}
	defer conn.ExecContext(context.WithoutCancel(ctx), "SELECT pg_advisory_unlock($1)", schemaLockID)

	statements := []string{
		`CREATE TABLE IF NOT EXISTS legal_transcripts (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			question TEXT NOT NULL,
			filters JSONB NOT NULL DEFAULT '{}'::jsonb,
			answer TEXT NOT NULL,
			citations JSONB NOT NULL DEFAULT '[]'::jsonb,
			search_method TEXT NOT NULL,
			documents_consulted INTEGER NOT NULL,
			citations_provided INTEGER NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_legal_transcripts_session
			ON legal_transcripts (session_id, created_at)`,
		`CREATE TABLE IF NOT EXISTS legal_sessions (
			session_id TEXT PRIMARY KEY,
			queries_count INTEGER NOT NULL DEFAULT 0,
			document_types TEXT[] NOT NULL DEFAULT '{}',
			jurisdictions TEXT[] NOT NULL DEFAULT '{}',
			updated_at TIMESTAMPTZ NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure transcript schema: %w", err)
		}
	}
	return nil
}

func (r *TranscriptRepository) SaveEntry(ctx context.Context, entry domain.TranscriptEntry) error {
	filters, err := json.Marshal(entry.Filters)
	if err != nil {
		return fmt.Errorf("marshal transcript filters: %w", err)
	}
	citations, err := json.Marshal(entry.Response.Citations)
	if err != nil {
		return fmt.Errorf("marshal transcript citations: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO legal_transcripts
			(id, session_id, question, filters, answer, citations,
			 search_method, documents_consulted, citations_provided, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO NOTHING`,
		entry.ID,
		entry.SessionID,
		entry.Question,
		filters,
		entry.Response.Content,
		citations,
		string(entry.Response.Metadata.SearchMethod),
		entry.Response.Metadata.DocumentsConsulted,
		entry.Response.Metadata.CitationsProvided,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transcript entry %s: %w", entry.ID, err)
	}
	return nil
}

// BumpSession folds one completed query into the per-session rollup row.
// Array merges deduplicate on the database side.
func (r *TranscriptRepository) BumpSession(ctx context.Context, sessionID string, meta domain.ResponseMetadata) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO legal_sessions
			(session_id, queries_count, document_types, jurisdictions, updated_at)
		VALUES ($1, 1, $2, $3, NOW())
		ON CONFLICT (session_id) DO UPDATE SET
			queries_count = legal_sessions.queries_count + 1,
			document_types = (
				SELECT ARRAY(SELECT DISTINCT v FROM unnest(legal_sessions.document_types || EXCLUDED.document_types) AS v ORDER BY v)
			),
			jurisdictions = (
				SELECT ARRAY(SELECT DISTINCT v FROM unnest(legal_sessions.jurisdictions || EXCLUDED.jurisdictions) AS v ORDER BY v)
			),
			updated_at = NOW()`,
		sessionID,
		textArray(meta.DocumentTypes),
		textArray(meta.Jurisdictions),
	)
	if err != nil {
		return fmt.Errorf("bump session %s: %w", sessionID, err)
	}
	return nil
}

// textArray renders a Postgres array literal; the stdlib driver has no native
// slice binding.
func textArray(values []string) string {
	if len(values) == 0 {
		return "{}"
	}
	out := "{"
	for i, v := range values {
		if i > 0 {
			out += ","
		}
		out += `"` + escapeArrayElement(v) + `"`
	}
	return out + "}"
}

func escapeArrayElement(v string) string {
	escaped := make([]byte, 0, len(v))
	for i := 0; i < len(v); i++ {
		if v[i] == '"' || v[i] == '\\' {
			escaped = append(escaped, '\\')
		}
		escaped = append(escaped, v[i])
	}
	return string(escaped)
}

package domain

import "time"

// TranscriptEntry is the persisted record of one completed query, published
// for the compliance audit trail and stored by the transcript worker.
type TranscriptEntry struct {
	ID        string        `json:"id"`
	SessionID string        `json:"session_id"`
	Question  string        `json:"question"`
	Filters   SearchFilter  `json:"filters"`
	Response  LegalResponse `json:"response"`
	CreatedAt time.Time     `json:"created_at"`
}

package domain

import (
	"errors"
	"math"
	"strconv"
)

var (
	errMissingDocumentID  = errors.New("missing document_id")
	errNegativePageNumber = errors.New("negative page_number")
	errUnusableScore      = errors.New("raw_score is not a finite number")
)

// Candidate is a scored passage returned by a document index. Value object,
// never mutated after the adapter produces it.
type Candidate struct {
	DocumentID     string  `json:"document_id"`
	Title          string  `json:"title"`
	DocumentType   string  `json:"document_type"`
	Jurisdiction   string  `json:"jurisdiction"`
	PracticeArea   string  `json:"practice_area"`
	FileName       string  `json:"file_name"`
	PageNumber     int     `json:"page_number"`
	ChunkIndex     int     `json:"chunk_index"`
	Content        string  `json:"content"`
	RawScore       float64 `json:"raw_score"`
	ProcessingDate string  `json:"processing_date"`
	SourceLabel    string  `json:"source"`
}

// Validate flags candidates a backing store returned in a shape the ranker
// cannot work with. Such candidates are dropped, not fatal to the query.
func (c Candidate) Validate() error {
	switch {
	case c.DocumentID == "":
		return WrapError(ErrAdapterProtocol, "validate candidate", errMissingDocumentID)
	case c.PageNumber < 0:
		return WrapError(ErrAdapterProtocol, "validate candidate", errNegativePageNumber)
	case math.IsNaN(c.RawScore) || math.IsInf(c.RawScore, 0):
		return WrapError(ErrAdapterProtocol, "validate candidate", errUnusableScore)
	}
	return nil
}

// DedupKey identifies near-identical hits within one response.
func (c Candidate) DedupKey() string {
	return c.DocumentID + "\x00" + strconv.Itoa(c.PageNumber) + "\x00" + c.PracticeArea
}

// Citation is the transcript projection of a ranked candidate.
// RelevanceScore and Source are pointers/omitempty so the lightweight profile
// can leave them out of the serialized record.
type Citation struct {
	Title          string   `json:"title"`
	DocumentType   string   `json:"document_type"`
	Jurisdiction   string   `json:"jurisdiction"`
	PracticeArea   string   `json:"practice_area"`
	FileName       string   `json:"file_name"`
	PageNumber     int      `json:"page_number"`
	ProcessingDate string   `json:"processing_date"`
	RelevanceScore *float64 `json:"relevance_score,omitempty"`
	Source         string   `json:"source,omitempty"`
}

type ResponseMetadata struct {
	DocumentsConsulted int          `json:"documents_consulted"`
	CitationsProvided  int          `json:"citations_provided"`
	DocumentTypes      []string     `json:"document_types"`
	Jurisdictions      []string     `json:"jurisdictions"`
	SearchMethod       SearchMethod `json:"search_method"`
}

// LegalResponse is one completed transcript entry body.
type LegalResponse struct {
	Content   string           `json:"content"`
	Metadata  ResponseMetadata `json:"metadata"`
	Citations []Citation       `json:"citations"`
}

package domain

// SearchMode selects which index operation answers a query.
type SearchMode string

const (
	ModeBasic    SearchMode = "basic"
	ModeSemantic SearchMode = "semantic"
)

func (m SearchMode) Valid() bool {
	return m == ModeBasic || m == ModeSemantic
}

// Method returns the transcript-facing name of the mode.
func (m SearchMode) Method() SearchMethod {
	if m == ModeSemantic {
		return MethodSemanticSearch
	}
	return MethodBasicSearch
}

// SearchMethod is the search_method value stamped into response metadata.
type SearchMethod string

const (
	MethodBasicSearch    SearchMethod = "basic_search"
	MethodSemanticSearch SearchMethod = "semantic_search"
)

// RankingProfile controls top-K and how much provenance a citation carries.
type RankingProfile string

const (
	ProfileStandard    RankingProfile = "standard"
	ProfileLightweight RankingProfile = "lightweight"
)

type SearchFilter struct {
	DocumentType string `json:"document_type,omitempty"`
	Jurisdiction string `json:"jurisdiction,omitempty"`
}

func (f SearchFilter) Empty() bool {
	return f.DocumentType == "" && f.Jurisdiction == ""
}

// Query is one user turn. Immutable once issued.
type Query struct {
	Text        string       `json:"text"`
	Filters     SearchFilter `json:"filters"`
	ModeHint    SearchMode   `json:"mode_hint,omitempty"`
	BypassCache bool         `json:"bypass_cache,omitempty"`
}

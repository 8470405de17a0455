package weaviate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Ben-aoun-1/linksaudi/internal/core/domain"
	"github.com/Ben-aoun-1/linksaudi/internal/infrastructure/resilience"
)

// SourceLabel is stamped on every candidate this adapter returns; downstream
// consumers rely on it to reconstruct which backend answered.
const SourceLabel = "Weaviate Cloud Legal Database"

// The adapter never returns more than this many candidates per query.
const maxSearchLimit = 50

var storedProperties = strings.Join([]string{
	"content",
	"documentTitle",
	"documentType",
	"jurisdiction",
	"practiceArea",
	"filename",
	"processingDate",
	"pageNumber",
	"chunkIndex",
}, " ")

// retrievedProperties appends the _additional block per mode. Certainty only
// exists on vector searches; asking for it on a plain Get is a resolver error.
func retrievedProperties(mode domain.SearchMode) string {
	if mode == domain.ModeSemantic {
		return storedProperties + " _additional { id certainty }"
	}
	return storedProperties + " _additional { id }"
}

type Options struct {
	HTTPTimeout        time.Duration
	SemanticCertainty  float64
	ResilienceExecutor *resilience.Executor
}

// Client searches the LegalDocument class over the Weaviate GraphQL API.
// Basic mode is a filtered listing with a flat raw score; semantic mode is a
// nearText query scored by certainty.
type Client struct {
	baseURL   string
	apiKey    string
	class     string
	certainty float64

	httpClient *http.Client
	executor   *resilience.Executor
}

func New(baseURL, apiKey, class string, options Options) *Client {
	timeout := options.HTTPTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	certainty := options.SemanticCertainty
	if certainty <= 0 || certainty > 1 {
		certainty = 0.7
	}
	if class == "" {
		class = "LegalDocument"
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		class:      class,
		certainty:  certainty,
		httpClient: &http.Client{Timeout: timeout},
		executor:   options.ResilienceExecutor,
	}
}

func (c *Client) Search(
	ctx context.Context,
	text string,
	filters domain.SearchFilter,
	mode domain.SearchMode,
	limit int,
) ([]domain.Candidate, error) {
	if limit <= 0 || limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	query := c.buildQuery(text, filters, mode, limit)

	var candidates []domain.Candidate
	call := func(callCtx context.Context) error {
		out, err := c.runQuery(callCtx, query, mode)
		if err != nil {
			return err
		}
		candidates = out
		return nil
	}

	var err error
	if c.executor != nil {
		err = c.executor.Execute(ctx, "weaviate."+string(mode), call, classifyWeaviateError)
	} else {
		err = call(ctx)
	}
	if err != nil {
		return nil, wrapSearchError(string(mode), err)
	}
	return candidates, nil
}

func (c *Client) buildQuery(text string, filters domain.SearchFilter, mode domain.SearchMode, limit int) string {
	args := make([]string, 0, 3)
	args = append(args, fmt.Sprintf("limit: %d", limit))

	if mode == domain.ModeSemantic {
		args = append(args, fmt.Sprintf(
			"nearText: {concepts: [%s], certainty: %s}",
			strconv.Quote(text),
			strconv.FormatFloat(c.certainty, 'g', -1, 64),
		))
	}
	if where := buildWhere(filters); where != "" {
		args = append(args, where)
	}

	return fmt.Sprintf("{ Get { %s(%s) { %s } } }", c.class, strings.Join(args, ", "), retrievedProperties(mode))
}

func buildWhere(filters domain.SearchFilter) string {
	operands := make([]string, 0, 2)
	if filters.DocumentType != "" {
		operands = append(operands, fmt.Sprintf(
			`{path: ["documentType"], operator: Equal, valueText: %s}`, strconv.Quote(filters.DocumentType)))
	}
	if filters.Jurisdiction != "" {
		operands = append(operands, fmt.Sprintf(
			`{path: ["jurisdiction"], operator: Equal, valueText: %s}`, strconv.Quote(filters.Jurisdiction)))
	}

	switch len(operands) {
	case 0:
		return ""
	case 1:
		return "where: " + operands[0]
	default:
		return fmt.Sprintf("where: {operator: And, operands: [%s]}", strings.Join(operands, ", "))
	}
}

func (c *Client) runQuery(ctx context.Context, query string, mode domain.SearchMode) ([]domain.Candidate, error) {
	body, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, fmt.Errorf("marshal graphql body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/graphql", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create graphql request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weaviate graphql request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, &HTTPStatusError{
			Operation:  "graphql",
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(payload),
		}
	}

	var gqlResp struct {
		Data struct {
			Get map[string]json.RawMessage `json:"Get"`
		} `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		return nil, domain.WrapError(domain.ErrAdapterProtocol, "decode graphql response", err)
	}
	if len(gqlResp.Errors) > 0 {
		return nil, domain.WrapError(domain.ErrAdapterProtocol, "graphql query",
			fmt.Errorf("%s", gqlResp.Errors[0].Message))
	}

	raw, ok := gqlResp.Data.Get[c.class]
	if !ok || len(raw) == 0 {
		return nil, nil
	}

	var items []storedDocument
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, domain.WrapError(domain.ErrAdapterProtocol, "decode class payload", err)
	}

	candidates := make([]domain.Candidate, 0, len(items))
	for _, item := range items {
		candidate := item.toCandidate(mode)
		if err := candidate.Validate(); err != nil {
			// One malformed hit never fails the query.
			slog.Warn("weaviate_candidate_dropped", "file_name", candidate.FileName, "error", err)
			continue
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

type storedDocument struct {
	Content        string `json:"content"`
	DocumentTitle  string `json:"documentTitle"`
	DocumentType   string `json:"documentType"`
	Jurisdiction   string `json:"jurisdiction"`
	PracticeArea   string `json:"practiceArea"`
	Filename       string `json:"filename"`
	ProcessingDate string `json:"processingDate"`
	PageNumber     int    `json:"pageNumber"`
	ChunkIndex     int    `json:"chunkIndex"`
	Additional     struct {
		ID        string   `json:"id"`
		Certainty *float64 `json:"certainty"`
	} `json:"_additional"`
}

func (d storedDocument) toCandidate(mode domain.SearchMode) domain.Candidate {
	// Basic mode carries a flat score: the store does not rank a filtered
	// listing, and the ranker must not pretend otherwise.
	score := 1.0
	if mode == domain.ModeSemantic {
		score = 0
		if d.Additional.Certainty != nil {
			score = *d.Additional.Certainty
		}
	}

	title := d.DocumentTitle
	if title == "" {
		title = "Untitled Legal Document"
	}

	return domain.Candidate{
		DocumentID:     d.Additional.ID,
		Title:          title,
		DocumentType:   d.DocumentType,
		Jurisdiction:   d.Jurisdiction,
		PracticeArea:   d.PracticeArea,
		FileName:       d.Filename,
		PageNumber:     d.PageNumber,
		ChunkIndex:     d.ChunkIndex,
		Content:        d.Content,
		RawScore:       score,
		ProcessingDate: d.ProcessingDate,
		SourceLabel:    SourceLabel,
	}
}

package catalog

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Ben-aoun-1/linksaudi/internal/core/domain"
)

// Catalog is the closed vocabulary of recognized filter values. Queries
// carrying values outside it are rejected before the index is contacted.
type Catalog struct {
	documentTypes []string
	jurisdictions []string
	practiceAreas []string

	typeSet         map[string]struct{}
	jurisdictionSet map[string]struct{}
}

type catalogFile struct {
	DocumentTypes []string `yaml:"document_types"`
	Jurisdictions []string `yaml:"jurisdictions"`
	PracticeAreas []string `yaml:"practice_areas"`
}

// Default returns the vocabulary shipped with the engine.
func Default() *Catalog {
	return build(catalogFile{
		DocumentTypes: []string{
			"law", "regulation", "royal decree", "ministerial decision",
			"circular", "guide", "case summary", "contract template",
		},
		Jurisdictions: []string{"Saudi Arabia", "GCC", "International"},
		PracticeAreas: []string{
			"corporate", "employment", "investment", "litigation",
			"tax", "privacy", "trade", "real estate", "banking",
		},
	})
}

// Load reads the vocabulary from a YAML file. Empty sections fall back to the
// defaults so a partial file never produces an unfilterable catalog.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	defaults := Default()
	if len(file.DocumentTypes) == 0 {
		file.DocumentTypes = defaults.documentTypes
	}
	if len(file.Jurisdictions) == 0 {
		file.Jurisdictions = defaults.jurisdictions
	}
	if len(file.PracticeAreas) == 0 {
		file.PracticeAreas = defaults.practiceAreas
	}
	return build(file), nil
}

func build(file catalogFile) *Catalog {
	c := &Catalog{
		documentTypes:   normalizeList(file.DocumentTypes),
		jurisdictions:   normalizeList(file.Jurisdictions),
		practiceAreas:   normalizeList(file.PracticeAreas),
		typeSet:         make(map[string]struct{}),
		jurisdictionSet: make(map[string]struct{}),
	}
	for _, v := range c.documentTypes {
		c.typeSet[strings.ToLower(v)] = struct{}{}
	}
	for _, v := range c.jurisdictions {
		c.jurisdictionSet[strings.ToLower(v)] = struct{}{}
	}
	return c
}

func normalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func (c *Catalog) DocumentTypes() []string {
	return append([]string(nil), c.documentTypes...)
}

func (c *Catalog) Jurisdictions() []string {
	return append([]string(nil), c.jurisdictions...)
}

func (c *Catalog) PracticeAreas() []string {
	return append([]string(nil), c.practiceAreas...)
}

func (c *Catalog) ValidateFilter(filter domain.SearchFilter) error {
	if filter.DocumentType != "" {
		if _, ok := c.typeSet[strings.ToLower(filter.DocumentType)]; !ok {
			return domain.WrapError(domain.ErrInvalidFilter, "validate filter",
				fmt.Errorf("unknown document type %q", filter.DocumentType))
		}
	}
	if filter.Jurisdiction != "" {
		if _, ok := c.jurisdictionSet[strings.ToLower(filter.Jurisdiction)]; !ok {
			return domain.WrapError(domain.ErrInvalidFilter, "validate filter",
				fmt.Errorf("unknown jurisdiction %q", filter.Jurisdiction))
		}
	}
	return nil
}

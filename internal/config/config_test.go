package config

import (
	"testing"
	"time"

	"github.com/Ben-aoun-1/linksaudi/internal/core/domain"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SearchMode != domain.ModeSemantic {
		t.Errorf("SearchMode = %s", cfg.SearchMode)
	}
	if cfg.RankingProfile != domain.ProfileStandard {
		t.Errorf("RankingProfile = %s", cfg.RankingProfile)
	}
	if cfg.TopK() != 10 {
		t.Errorf("TopK = %d", cfg.TopK())
	}
	if cfg.SemanticTimeout != 20*time.Second {
		t.Errorf("SemanticTimeout = %s", cfg.SemanticTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SEARCH_MODE", "basic")
	t.Setenv("RAG_PROFILE", "lightweight")
	t.Setenv("TOP_K_LIGHTWEIGHT", "4")
	t.Setenv("INDEX_BACKEND", "static")
	t.Setenv("CACHE_TTL", "90s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SearchMode != domain.ModeBasic {
		t.Errorf("SearchMode = %s", cfg.SearchMode)
	}
	if cfg.TopK() != 4 {
		t.Errorf("TopK = %d", cfg.TopK())
	}
	if cfg.IndexBackend != "static" {
		t.Errorf("IndexBackend = %s", cfg.IndexBackend)
	}
	if cfg.CacheTTL != 90*time.Second {
		t.Errorf("CacheTTL = %s", cfg.CacheTTL)
	}
}

func TestLoadRejectsUnknownValues(t *testing.T) {
	t.Setenv("SEARCH_MODE", "psychic")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown search mode")
	}
}

func TestLoadRejectsBackendTypo(t *testing.T) {
	t.Setenv("INDEX_BACKEND", "wweaviate")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestMalformedNumbersFallBack(t *testing.T) {
	t.Setenv("TOP_K_STANDARD", "many")
	t.Setenv("SEMANTIC_CERTAINTY", "not-a-number")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TopKStandard != 10 {
		t.Errorf("TopKStandard = %d", cfg.TopKStandard)
	}
	if cfg.SemanticCertainty != 0.7 {
		t.Errorf("SemanticCertainty = %v", cfg.SemanticCertainty)
	}
}

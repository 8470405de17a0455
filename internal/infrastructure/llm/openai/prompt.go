package openai

import (
	"fmt"
	"strings"

	"github.com/Ben-aoun-1/linksaudi/internal/core/domain"
)

const systemPrompt = "You are a senior legal analyst specializing in Saudi Arabian " +
	"and GCC law. Ground every statement in the provided legal context and cite the " +
	"documents you rely on by title. Where the context is silent, say so rather " +
	"than speculate. Answer in clear professional prose."

const passageExcerptLimit = 1200

// buildAnalysisPrompt assembles the user message: numbered context blocks with
// provenance, then the question and the expected analysis structure.
func buildAnalysisPrompt(question string, passages []domain.Candidate) string {
	var b strings.Builder

	b.WriteString("LEGAL CONTEXT:\n\n")
	for i, p := range passages {
		fmt.Fprintf(&b, "[Document %d] %s\n", i+1, p.Title)
		if p.DocumentType != "" || p.Jurisdiction != "" {
			fmt.Fprintf(&b, "Type: %s | Jurisdiction: %s\n", orUnknown(p.DocumentType), orUnknown(p.Jurisdiction))
		}
		if p.FileName != "" {
			fmt.Fprintf(&b, "Source: %s, page %d\n", p.FileName, p.PageNumber)
		}
		b.WriteString(excerpt(p.Content))
		b.WriteString("\n\n")
	}

	b.WriteString("QUESTION:\n")
	b.WriteString(question)
	b.WriteString("\n\n")
	b.WriteString("Provide a structured legal analysis covering:\n")
	b.WriteString("1. Direct answer to the question\n")
	b.WriteString("2. Applicable laws and regulations from the context\n")
	b.WriteString("3. Practical implications and requirements\n")
	b.WriteString("4. Any limitations of the available documents\n")
	return b.String()
}

func excerpt(content string) string {
	content = strings.TrimSpace(content)
	if len(content) <= passageExcerptLimit {
		return content
	}
	cut := content[:passageExcerptLimit]
	if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "..."
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

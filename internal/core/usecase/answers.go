package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Ben-aoun-1/linksaudi/internal/core/domain"
)

const legalDisclaimer = "**Legal Disclaimer:** This analysis is based on legal documents in our database and is " +
	"for informational purposes only. For specific legal advice applicable to your situation, please consult " +
	"with a qualified attorney licensed to practice in Saudi Arabia."

// noDocumentsAnswer is the explicit zero-citation answer. The engine never
// retries silently when the stores come back empty; it tells the user so.
func noDocumentsAnswer(question string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I couldn't find supporting legal documents to answer your question about %q.\n\n", question)
	b.WriteString("For legal matters in Saudi Arabia, I recommend:\n")
	b.WriteString("- Consulting with a qualified attorney licensed in Saudi Arabia\n")
	b.WriteString("- Reviewing official government legal resources\n")
	b.WriteString("- Contacting the relevant regulatory authorities\n")
	return b.String()
}

// summaryAnswer stands in when the composer is unreachable: a structured
// digest of the retrieved passages so the turn still carries its citations.
func summaryAnswer(question string, ranked []domain.Candidate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Based on the legal documents retrieved for %q, here are the key findings:\n\n", question)

	types := make(map[string]struct{})
	jurisdictions := make(map[string]struct{})
	for _, c := range ranked {
		if c.DocumentType != "" {
			types[c.DocumentType] = struct{}{}
		}
		if c.Jurisdiction != "" {
			jurisdictions[c.Jurisdiction] = struct{}{}
		}
	}
	fmt.Fprintf(&b, "**Document Types Consulted:** %s\n", joinSet(types))
	fmt.Fprintf(&b, "**Jurisdictions:** %s\n\n", joinSet(jurisdictions))

	b.WriteString("**Key Passages:**\n")
	for i, c := range ranked {
		if i == 3 {
			break
		}
		excerpt := c.Content
		if len(excerpt) > 300 {
			excerpt = excerpt[:300] + "..."
		}
		fmt.Fprintf(&b, "- From %s: %s\n", c.Title, excerpt)
	}
	return b.String()
}

func joinSet(set map[string]struct{}) string {
	if len(set) == 0 {
		return "Unknown"
	}
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	// Stable output for transcripts.
	sort.Strings(values)
	return strings.Join(values, ", ")
}

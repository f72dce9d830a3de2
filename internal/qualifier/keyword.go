package qualifier

import (
	"context"
	"strings"
)

// maxNeedEcho caps the length of the need echo in degraded mode.
const maxNeedEcho = 50

// degradedSummary is prepended so triage staff can tell a keyword-matched
// enquiry from an inference-backed one.
const degradedSummary = "Qualified in degraded mode (keyword matching); manual review recommended."

// categoryRule maps keywords to a category. First match wins, so order matters.
type categoryRule struct {
	keywords []string
	category string
}

var categoryRules = []categoryRule{
	{[]string{"crm"}, "CRM Software"},
	{[]string{"whatsapp"}, "WhatsApp API"},
	{[]string{"cloud", "storage"}, "Cloud Storage"},
	{[]string{"internet", "leased"}, "Internet Leased Line"},
	{[]string{"sip"}, "SIP Trunk"},
	{[]string{"cyber", "security"}, "SMB Cybersecurity Package"},
	{[]string{"support"}, "Proactive IT Support"},
	{[]string{"voice", "call"}, "Voice Solutions"},
}

// KeywordQualifier is the deterministic fallback: category by ordered
// keyword matching, fixed placeholders for the dimensions the text cannot
// decide, and a truncated echo of the input as the need. It satisfies the
// same contract as delegated inference but at a lower answer quality, which
// is why selection is a deployment-time choice and never a silent fallback.
type KeywordQualifier struct{}

// NewKeywordQualifier creates the deterministic keyword qualifier.
func NewKeywordQualifier() *KeywordQualifier {
	return &KeywordQualifier{}
}

// Provider returns the provider name.
func (q *KeywordQualifier) Provider() string {
	return "keyword"
}

// Qualify categorises the input by keyword and fills the remaining fields
// with placeholders.
func (q *KeywordQualifier) Qualify(ctx context.Context, input string) (*Result, error) {
	input, err := clampInput(input)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Budget:    NotSpecified,
		Authority: NotSpecified,
		Need:      truncateNeed(input),
		Timeframe: NotSpecified,
		Summary:   degradedSummary,
		Category:  matchCategory(input),
	}
	result.normalize()
	return result, nil
}

// matchCategory returns the first rule whose keyword appears in the input.
func matchCategory(input string) string {
	lower := strings.ToLower(input)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return "Custom Requirement"
}

// truncateNeed echoes the input capped at maxNeedEcho runes with ellipsis.
func truncateNeed(input string) string {
	runes := []rune(input)
	if len(runes) <= maxNeedEcho {
		return input
	}
	return string(runes[:maxNeedEcho]) + "..."
}

// Compile-time interface check
var _ Qualifier = (*KeywordQualifier)(nil)

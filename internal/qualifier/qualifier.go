package qualifier

import (
	"context"
	"fmt"
	"strings"

	"bantconfirm/internal/config"
	"bantconfirm/internal/errors"
)

// MaxInputLen bounds the requirement text forwarded to a qualifier. Longer
// input is truncated before the call to cap external-call cost.
const MaxInputLen = 4000

// NotSpecified is the placeholder emitted for a BANT dimension that could
// not be determined. Fields are never empty.
const NotSpecified = "Not specified"

// Result holds the structured qualification of a free-text requirement:
// the four BANT dimensions, a professional summary and a category guess.
// The category is open vocabulary, not restricted to the catalog enum.
type Result struct {
	Budget    string `json:"budget"`
	Authority string `json:"authority"`
	Need      string `json:"need"`
	Timeframe string `json:"timeframe"`
	Summary   string `json:"summary"`
	Category  string `json:"category"`
}

// Qualifier converts an unstructured requirement description into a Result.
// Implementations are interchangeable; selection happens at deployment time
// and failures never silently downgrade to another implementation.
type Qualifier interface {
	Qualify(ctx context.Context, input string) (*Result, error)
	Provider() string
}

// New creates a qualifier based on configuration.
func New(cfg *config.Config) (Qualifier, error) {
	switch cfg.QualifierProvider {
	case "gemini":
		return NewGeminiQualifier(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.QualifierTimeout)
	case "keyword":
		return NewKeywordQualifier(), nil
	default:
		return nil, fmt.Errorf("unsupported qualifier provider: %s", cfg.QualifierProvider)
	}
}

// clampInput trims and truncates requirement text, returning ErrEmptyInput
// for blank input.
func clampInput(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", errors.ErrEmptyInput
	}
	if len(input) > MaxInputLen {
		input = input[:MaxInputLen]
	}
	return input, nil
}

// normalize enforces the non-emptiness contract on a parsed result.
func (r *Result) normalize() {
	if strings.TrimSpace(r.Budget) == "" {
		r.Budget = NotSpecified
	}
	if strings.TrimSpace(r.Authority) == "" {
		r.Authority = NotSpecified
	}
	if strings.TrimSpace(r.Need) == "" {
		r.Need = NotSpecified
	}
	if strings.TrimSpace(r.Timeframe) == "" {
		r.Timeframe = NotSpecified
	}
	if strings.TrimSpace(r.Category) == "" {
		r.Category = "Custom Requirement"
	}
	if strings.TrimSpace(r.Summary) == "" {
		r.Summary = r.Need
	}
}

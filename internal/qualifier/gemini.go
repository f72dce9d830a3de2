package qualifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"bantconfirm/internal/errors"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiQualifier delegates qualification to the Gemini generateContent
// endpoint, constraining the response to the six-field JSON shape. Any
// transport error, non-200 status or unparsable body surfaces as
// ErrQualificationFailed; there is no fallback to the keyword strategy.
type GeminiQualifier struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiSchemaProp struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

type geminiSchema struct {
	Type       string                      `json:"type"`
	Properties map[string]geminiSchemaProp `json:"properties"`
	Required   []string                    `json:"required"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string        `json:"responseMimeType"`
	ResponseSchema   *geminiSchema `json:"responseSchema,omitempty"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

// NewGeminiQualifier creates a Gemini-backed qualifier.
func NewGeminiQualifier(apiKey, model string, timeout time.Duration) (*GeminiQualifier, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is not configured")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GeminiQualifier{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultGeminiBaseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Provider returns the provider name.
func (q *GeminiQualifier) Provider() string {
	return "gemini"
}

// Qualify extracts the BANT parameters, a category and a summary from the
// requirement text.
func (q *GeminiQualifier) Qualify(ctx context.Context, input string) (*Result, error) {
	input, err := clampInput(input)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`You are an expert sales qualifier for an IT Marketplace.
Analyze the following user input and extract the BANT parameters (Budget, Authority, Need, Timeframe).

User Input: %q

If a parameter is not explicitly stated, infer it reasonably or state "Not specified".
Also determine the best fitting IT category (e.g., Cloud Storage, SIP Trunk, CRM, etc.) and write a professional summary.`, input)

	req := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema: &geminiSchema{
				Type: "OBJECT",
				Properties: map[string]geminiSchemaProp{
					"budget":    {Type: "STRING", Description: "The budget mentioned or implied"},
					"authority": {Type: "STRING", Description: "The decision making power of the user"},
					"need":      {Type: "STRING", Description: "The specific technical or business requirement"},
					"timeframe": {Type: "STRING", Description: "When they need this implemented"},
					"summary":   {Type: "STRING", Description: "A professional summary of the enquiry"},
					"category":  {Type: "STRING", Description: "The most relevant IT category"},
				},
				Required: []string{"budget", "authority", "need", "timeframe", "summary", "category"},
			},
		},
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", errors.ErrQualificationFailed, err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", q.baseURL, q.model, q.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", errors.ErrQualificationFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := q.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrQualificationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: gemini API error %d: %s", errors.ErrQualificationFailed, resp.StatusCode, string(body))
	}

	var response geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", errors.ErrQualificationFailed, err)
	}

	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: no candidates in response", errors.ErrQualificationFailed)
	}

	var result Result
	if err := json.Unmarshal([]byte(response.Candidates[0].Content.Parts[0].Text), &result); err != nil {
		return nil, fmt.Errorf("%w: response is not the expected shape: %v", errors.ErrQualificationFailed, err)
	}

	result.normalize()
	return &result, nil
}

// Compile-time interface check
var _ Qualifier = (*GeminiQualifier)(nil)

package qualifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bantconfirm/internal/errors"
)

// newTestGemini returns a qualifier pointed at a stub server.
func newTestGemini(t *testing.T, handler http.HandlerFunc) (*GeminiQualifier, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	q, err := NewGeminiQualifier("test-key", "gemini-2.5-flash", 5*time.Second)
	assert.NoError(t, err)
	q.baseURL = server.URL
	return q, server
}

func geminiStubResponse(t *testing.T, result Result) []byte {
	t.Helper()
	inner, err := json.Marshal(result)
	assert.NoError(t, err)

	body, err := json.Marshal(map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"parts": []map[string]string{{"text": string(inner)}},
				},
				"finishReason": "STOP",
			},
		},
	})
	assert.NoError(t, err)
	return body
}

func TestGeminiQualifier_Qualify(t *testing.T) {
	want := Result{
		Budget:    "2000/month",
		Authority: "Decision maker",
		Need:      "CRM with WhatsApp integration",
		Timeframe: "Next week",
		Summary:   "The customer needs a CRM platform with WhatsApp integration.",
		Category:  "CRM Software",
	}

	q, _ := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "gemini-2.5-flash:generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req geminiRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "application/json", req.GenerationConfig.ResponseMimeType)
		assert.NotNil(t, req.GenerationConfig.ResponseSchema)

		w.Header().Set("Content-Type", "application/json")
		w.Write(geminiStubResponse(t, want))
	})

	result, err := q.Qualify(context.Background(), "Need a CRM with WhatsApp integration, budget 2000/month, by next week")

	assert.NoError(t, err)
	assert.Equal(t, &want, result)
}

func TestGeminiQualifier_NormalizesBlankFields(t *testing.T) {
	q, _ := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(geminiStubResponse(t, Result{Need: "A vague requirement"}))
	})

	result, err := q.Qualify(context.Background(), "we need something")

	assert.NoError(t, err)
	assert.Equal(t, NotSpecified, result.Budget)
	assert.Equal(t, NotSpecified, result.Authority)
	assert.Equal(t, NotSpecified, result.Timeframe)
	assert.Equal(t, "Custom Requirement", result.Category)
	assert.Equal(t, "A vague requirement", result.Summary)
}

func TestGeminiQualifier_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "http error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"error": "quota exceeded"}`, http.StatusTooManyRequests)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json at all"))
			},
		},
		{
			name: "no candidates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"candidates": []}`))
			},
		},
		{
			name: "candidate text is not the expected shape",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "plain prose, no json"}]}}]}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, _ := newTestGemini(t, tt.handler)

			result, err := q.Qualify(context.Background(), "some requirement")

			assert.Nil(t, result)
			assert.ErrorIs(t, err, errors.ErrQualificationFailed)
		})
	}
}

func TestGeminiQualifier_EmptyInput(t *testing.T) {
	q, _ := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for empty input")
	})

	_, err := q.Qualify(context.Background(), "   ")
	assert.ErrorIs(t, err, errors.ErrEmptyInput)
}

func TestNewGeminiQualifier_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiQualifier("", "gemini-2.5-flash", time.Second)
	assert.Error(t, err)
}

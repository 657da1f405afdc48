package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/faisalshariff123/Gene-Characteristics-Identifier/internal/models"
	"github.com/faisalshariff123/Gene-Characteristics-Identifier/internal/openrouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(r.Body)
}

func newSummarizer(serverURL string) *NarrativeSummarizer {
	client := openrouter.NewClient(openrouter.Options{
		APIKey:  "test-key",
		BaseURL: serverURL,
		Timeout: 5 * time.Second,
	}, testLogger())
	return NewNarrativeSummarizer(client, testLogger())
}

func testRecord() *models.GeneRecord {
	return &models.GeneRecord{
		Symbol:      "BRCA1",
		GeneID:      "672",
		Description: "BRCA1 DNA repair associated",
		Summary:     "This gene encodes a nuclear phosphoprotein.",
	}
}

// capturePrompt pulls the user message out of a captured request body.
func capturePrompt(t *testing.T, body []byte) string {
	t.Helper()
	var req struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(body, &req))
	require.Len(t, req.Messages, 1)
	assert.Equal(t, "user", req.Messages[0].Role)
	return req.Messages[0].Content
}

func TestSummarize(t *testing.T) {
	var requestBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestBody, _ = readAll(r)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "gen-1",
			"model": "anthropic/claude-3.5-sonnet",
			"choices": [{"message": {"role": "assistant", "content": "BRCA1 is a tumor suppressor."}}]
		}`))
	}))
	defer server.Close()

	result := newSummarizer(server.URL).Summarize(context.Background(), testRecord())

	assert.Equal(t, "BRCA1 is a tumor suppressor.", result.Summary)
	assert.Equal(t, "anthropic/claude-3.5-sonnet", result.Model)

	prompt := capturePrompt(t, requestBody)
	assert.Contains(t, prompt, "Gene: BRCA1")
	assert.Contains(t, prompt, "Description: BRCA1 DNA repair associated")
	assert.Contains(t, prompt, "Details: This gene encodes a nuclear phosphoprotein.")
	assert.Contains(t, prompt, "bioinformatics expert")
	assert.Contains(t, prompt, "Clinical significance")
}

func TestSummarize_TruncatesDetails(t *testing.T) {
	var requestBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestBody, _ = readAll(r)
		w.Write([]byte(`{"model": "m", "choices": [{"message": {"content": "ok"}}]}`))
	}))
	defer server.Close()

	record := testRecord()
	record.Summary = strings.Repeat("x", 600)

	newSummarizer(server.URL).Summarize(context.Background(), record)

	prompt := capturePrompt(t, requestBody)
	assert.Contains(t, prompt, strings.Repeat("x", 500))
	assert.NotContains(t, prompt, strings.Repeat("x", 501))
}

func TestSummarize_ProviderErrorPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"error": {"message": "quota exceeded"}}`))
	}))
	defer server.Close()

	result := newSummarizer(server.URL).Summarize(context.Background(), testRecord())

	assert.Equal(t, "Could not generate AI summary. Error: quota exceeded", result.Summary)
	assert.Equal(t, models.NarrativeModelError, result.Model)
}

func TestSummarize_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "Invalid API key"}}`))
	}))
	defer server.Close()

	result := newSummarizer(server.URL).Summarize(context.Background(), testRecord())

	assert.Equal(t, "Could not generate AI summary. Error: Invalid API key", result.Summary)
	assert.Equal(t, models.NarrativeModelError, result.Model)
}

func TestSummarize_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	result := newSummarizer(server.URL).Summarize(context.Background(), testRecord())

	assert.True(t, strings.HasPrefix(result.Summary, "AI summary unavailable:"), result.Summary)
	assert.Equal(t, models.NarrativeModelError, result.Model)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 500))
	assert.Equal(t, strings.Repeat("a", 500), truncate(strings.Repeat("a", 501), 500))
	// Multi-byte runes are never split.
	assert.Equal(t, "ααα", truncate("αααββ", 3))
}

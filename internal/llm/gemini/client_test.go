package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"google.golang.org/genai"

	"prepwise/interview/internal/llm"
)

func newStubClient(t *testing.T, handler http.HandlerFunc) (*Client, func()) {
	t.Helper()
	server := httptest.NewServer(handler)

	genaiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:     "test",
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: server.Client(),
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    server.URL,
			APIVersion: "v1beta",
		},
	})
	if err != nil {
		t.Fatalf("failed to create genai client: %v", err)
	}

	client := &Client{
		client: genaiClient,
		config: &Config{APIKey: "test", Model: "test-model"},
	}

	return client, server.Close
}

func TestClientGenerateTextSuccess(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1beta/models/test-model:generateContent" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		resp := map[string]any{
			"candidates": []map[string]any{
				{
					"content": map[string]any{
						"parts": []map[string]any{
							{"text": "hello world"},
						},
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}

	client, cleanup := newStubClient(t, handler)
	defer cleanup()

	text, err := client.GenerateText(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("GenerateText returned error: %v", err)
	}
	if text != "hello world" {
		t.Fatalf("expected response text, got %s", text)
	}
}

func TestClientGenerateTextServiceError(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "503 service unavailable", http.StatusServiceUnavailable)
	}
	client, cleanup := newStubClient(t, handler)
	defer cleanup()

	_, err := client.GenerateText(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected error")
	}
	provErr, ok := err.(*llm.ProviderError)
	if !ok || provErr.Code != llm.ErrCodeServiceDown {
		t.Fatalf("expected provider service error, got %v", err)
	}
}

func TestClientGenerateTextEmptyResponse(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{"candidates": []map[string]any{{"content": map[string]any{"parts": []map[string]any{{"text": ""}}}}}}
		json.NewEncoder(w).Encode(resp)
	}
	client, cleanup := newStubClient(t, handler)
	defer cleanup()

	if _, err := client.GenerateText(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestGetProviderName(t *testing.T) {
	client := &Client{}
	if client.GetProviderName() != "gemini" {
		t.Fatal("expected provider name gemini")
	}
}

package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"calendarize/pkg/gemini"
)

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Mock LLM generation check
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req struct {
			SystemInstruction *struct {
				Parts []map[string]any `json:"parts"`
			} `json:"system_instruction"`
			Contents []struct {
				Parts []map[string]any `json:"parts"`
			} `json:"contents"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		// Read mock command
		text, _ := req.Contents[0].Parts[0]["text"].(string)
		if text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if text == "check_image" {
			if len(req.Contents[0].Parts) != 2 {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			inline, ok := req.Contents[0].Parts[1]["inline_data"].(map[string]any)
			if !ok || inline["mime_type"] != "image/jpeg" || inline["data"] == "" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "mocked response string" }
						],
						"role": "model"
					}
				}
			],
			"usageMetadata": { "promptTokenCount": 10, "candidatesTokenCount": 5, "totalTokenCount": 15 }
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		req := &gemini.Request{
			SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: "you extract events"}}},
			Messages: []gemini.Content{
				{Role: "user", Parts: []gemini.Part{{Text: "Hello world"}}},
			},
		}

		resp, err := client.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != "mocked response string" {
			t.Errorf("unexpected content response: %s", resp.Text())
		}
		if resp.Usage.TotalTokens != 15 {
			t.Errorf("unexpected usage: %+v", resp.Usage)
		}
	})

	t.Run("Inline Image Flow", func(t *testing.T) {
		req := &gemini.Request{
			Messages: []gemini.Content{
				{Role: "user", Parts: []gemini.Part{
					{Text: "check_image"},
					{InlineData: &gemini.Blob{MIMEType: "image/jpeg", Data: []byte{0xff, 0xd8}}},
				}},
			},
		}

		if _, err := client.GenerateContent(context.Background(), req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		req := &gemini.Request{
			Messages: []gemini.Content{
				{Parts: []gemini.Part{{Text: "cause_500"}}},
			},
		}

		if _, err := client.GenerateContent(context.Background(), req); err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	cfg := gemini.Config{}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing API key")
	}

	cfg = gemini.Config{APIKey: "k"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != gemini.DefaultModel || cfg.APIURL != gemini.DefaultAPIURL {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

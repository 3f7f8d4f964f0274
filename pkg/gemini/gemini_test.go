package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGenerateText(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/models/gemini-2.0-flash:generateContent" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if r.URL.Query().Get("key") != "test-key" {
				t.Errorf("expected api key in query, got %q", r.URL.Query().Get("key"))
			}

			var req geminiRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.SystemInstruction == nil || req.SystemInstruction.Parts[0].Text != "be terse" {
				t.Error("expected system instruction forwarded")
			}
			if req.Contents[0].Parts[0].Text != "hello" {
				t.Errorf("expected user text forwarded, got %q", req.Contents[0].Parts[0].Text)
			}

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"candidates": [
					{"content": {"parts": [{"text": "  hi there  "}]}}
				]
			}`))
		}))
		defer ts.Close()

		client, err := New(Config{APIKey: "test-key", APIURL: ts.URL})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}

		resp, err := client.GenerateText(context.Background(), &Request{
			SystemInstruction: "be terse",
			UserText:          "hello",
		})
		if err != nil {
			t.Fatalf("GenerateText() error = %v", err)
		}
		if resp.Text != "hi there" {
			t.Errorf("expected trimmed text, got %q", resp.Text)
		}
	})

	t.Run("empty candidates", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"candidates": []}`))
		}))
		defer ts.Close()

		client, _ := New(Config{APIKey: "test-key", APIURL: ts.URL})

		if _, err := client.GenerateText(context.Background(), &Request{UserText: "hello"}); err == nil {
			t.Error("expected error on empty candidates")
		}
	})

	t.Run("api error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error": {"message": "quota exceeded"}}`))
		}))
		defer ts.Close()

		client, _ := New(Config{APIKey: "test-key", APIURL: ts.URL})

		if _, err := client.GenerateText(context.Background(), &Request{UserText: "hello"}); err == nil {
			t.Error("expected error on 429")
		}
	})

	t.Run("missing api key", func(t *testing.T) {
		if _, err := New(Config{}); err == nil {
			t.Error("expected error without api key")
		}
	})
}

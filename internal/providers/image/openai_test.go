package image

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"promptimage/internal/domain"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestOpenAIGeneratorRequestsSingleImage(t *testing.T) {
	var captured openAIImageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/images/generations" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-img" {
			t.Errorf("Authorization = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"created":1,"data":[{"url":"https://example.com/img.png"}]}`))
	}))
	defer srv.Close()

	gen, err := NewOpenAIGenerator(OpenAIOptions{APIKey: "sk-img", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewOpenAIGenerator returned error: %v", err)
	}
	asset, err := gen.Generate(context.Background(), GenerateRequest{Prompt: "a cat sitting on a chair", RequestID: "req-1"})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if asset.URL != "https://example.com/img.png" {
		t.Fatalf("URL = %q", asset.URL)
	}
	if captured.Prompt != "a cat sitting on a chair" || captured.N != 1 || captured.Size != "512x512" {
		t.Fatalf("request = %+v", captured)
	}
	if captured.ResponseFormat != "url" {
		t.Fatalf("response_format = %q", captured.ResponseFormat)
	}
	if captured.Model != "" {
		t.Fatalf("model should be omitted when unset, got %q", captured.Model)
	}
}

func TestOpenAIGeneratorFailures(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		op     string
	}{
		{name: "rate_limited", status: http.StatusTooManyRequests, body: `{"error":{"message":"slow down"}}`, op: "http_429"},
		{name: "malformed", status: http.StatusOK, body: `{"data":[`, op: "decode_response"},
		{name: "no_data", status: http.StatusOK, body: `{"data":[]}`, op: "empty_data"},
		{name: "no_url", status: http.StatusOK, body: `{"data":[{"b64_json":"AAAA"}]}`, op: "empty_url"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()
			gen, err := NewOpenAIGenerator(OpenAIOptions{APIKey: "sk-img", BaseURL: srv.URL})
			if err != nil {
				t.Fatalf("NewOpenAIGenerator returned error: %v", err)
			}
			_, err = gen.Generate(context.Background(), GenerateRequest{Prompt: "p"})
			var callErr *domain.ExternalCallError
			if !errors.As(err, &callErr) {
				t.Fatalf("expected ExternalCallError, got %v", err)
			}
			if callErr.Op != tc.op {
				t.Fatalf("Op = %q, want %q", callErr.Op, tc.op)
			}
		})
	}
}

func TestOpenAIGeneratorTransportError(t *testing.T) {
	gen, err := NewOpenAIGenerator(OpenAIOptions{
		APIKey: "sk-img",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return nil, errors.New("connection reset")
		})},
	})
	if err != nil {
		t.Fatalf("NewOpenAIGenerator returned error: %v", err)
	}
	_, err = gen.Generate(context.Background(), GenerateRequest{Prompt: "p"})
	if !errors.Is(err, domain.ErrExternalCall) {
		t.Fatalf("expected external call error, got %v", err)
	}
}

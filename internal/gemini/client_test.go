package gemini

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
)

func TestNew_Defaults(t *testing.T) {
	c := New(Options{})

	if c.baseURL != DefaultBaseURL {
		t.Errorf("expected base url %q, got %q", DefaultBaseURL, c.baseURL)
	}
	if c.apiVersion != DefaultAPIVersion {
		t.Errorf("expected api version %q, got %q", DefaultAPIVersion, c.apiVersion)
	}
	if c.httpClient == nil {
		t.Error("expected default http client")
	}
}

func TestClient_Endpoint(t *testing.T) {
	c := New(Options{BaseURL: "https://example.test/", APIVersion: "/v1beta/"})

	got := c.endpoint("gemini-2.5-flash", "a&b")
	want := "https://example.test/v1beta/models/gemini-2.5-flash:generateContent?key=a%26b"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestClient_GenerateContent(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantOK     bool
		wantStatus int
	}{
		{
			name:       "success passes body through",
			status:     http.StatusOK,
			body:       `{"candidates":[]}`,
			wantOK:     true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "upstream error is not a client error",
			status:     http.StatusBadRequest,
			body:       `{"error":{"code":400,"message":"bad"}}`,
			wantOK:     false,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				gotPath, gotKey, gotContentType string
				gotPayload                      GenerateContentRequest
			)
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotKey = r.URL.Query().Get("key")
				gotContentType = r.Header.Get("Content-Type")
				raw, _ := io.ReadAll(r.Body)
				_ = sonic.Unmarshal(raw, &gotPayload)

				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := New(Options{BaseURL: srv.URL})
			payload := &GenerateContentRequest{
				Contents: []Content{{Role: RoleUser, Parts: []Part{{Text: "hi"}}}},
			}

			resp, err := c.GenerateContent(context.Background(), "gemini-2.5-flash", "secret", payload)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, resp.StatusCode)
			}
			if resp.OK() != tt.wantOK {
				t.Errorf("expected OK() %v, got %v", tt.wantOK, resp.OK())
			}
			if string(resp.Body) != tt.body {
				t.Errorf("expected body %q, got %q", tt.body, resp.Body)
			}
			if gotPath != "/v1beta/models/gemini-2.5-flash:generateContent" {
				t.Errorf("unexpected path %q", gotPath)
			}
			if gotKey != "secret" {
				t.Errorf("expected key 'secret', got %q", gotKey)
			}
			if gotContentType != "application/json" {
				t.Errorf("expected json content type, got %q", gotContentType)
			}
			if len(gotPayload.Contents) != 1 || gotPayload.Contents[0].Role != RoleUser {
				t.Errorf("unexpected payload %+v", gotPayload)
			}
		})
	}
}

func TestClient_GenerateContent_RedactsKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	c := New(Options{BaseURL: baseURL})
	_, err := c.GenerateContent(context.Background(), "gemini-2.5-flash", "top-secret", &GenerateContentRequest{})
	if err == nil {
		t.Fatal("expected transport error")
	}
	if strings.Contains(err.Error(), "top-secret") {
		t.Errorf("error leaks api key: %v", err)
	}
	if !strings.Contains(err.Error(), "REDACTED") {
		t.Errorf("expected redacted key in error, got %v", err)
	}
}

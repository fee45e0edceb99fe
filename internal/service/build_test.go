package service

import (
	"reflect"
	"sort"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/kdduha/gemini-relay/internal/gemini"
	"github.com/kdduha/gemini-relay/internal/models"
)

func decodePayload(t *testing.T, payload *gemini.GenerateContentRequest) map[string]any {
	t.Helper()

	raw, err := sonic.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	var out map[string]any
	if err := sonic.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	return out
}

func parts(t *testing.T, payload map[string]any) []any {
	t.Helper()

	contents, ok := payload["contents"].([]any)
	if !ok || len(contents) != 1 {
		t.Fatalf("expected exactly one content, got %v", payload["contents"])
	}
	content := contents[0].(map[string]any)
	if content["role"] != "user" {
		t.Errorf("expected role user, got %v", content["role"])
	}
	return content["parts"].([]any)
}

func TestBuildGeminiReq_StructuredByDefault(t *testing.T) {
	tests := []struct {
		name   string
		isChat any
	}{
		{name: "isChat omitted", isChat: nil},
		{name: "isChat false", isChat: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := decodePayload(t, buildGeminiReq(&models.ProxyRequest{Prompt: "q", IsChat: tt.isChat}))

			cfg, ok := payload["generationConfig"].(map[string]any)
			if !ok {
				t.Fatal("expected generationConfig")
			}
			if cfg["responseMimeType"] != "application/json" {
				t.Errorf("expected json mime type, got %v", cfg["responseMimeType"])
			}

			schema := cfg["responseSchema"].(map[string]any)
			if schema["type"] != "OBJECT" {
				t.Errorf("expected OBJECT schema, got %v", schema["type"])
			}

			props := schema["properties"].(map[string]any)
			var names []string
			for name, prop := range props {
				names = append(names, name)
				if prop.(map[string]any)["type"] != "STRING" {
					t.Errorf("expected %s to be STRING, got %v", name, prop)
				}
			}
			sort.Strings(names)

			want := []string{"final_answer", "recommendations", "simplified_question", "solution_steps"}
			if !reflect.DeepEqual(names, want) {
				t.Errorf("expected properties %v, got %v", want, names)
			}

			var required []string
			for _, r := range schema["required"].([]any) {
				required = append(required, r.(string))
			}
			sort.Strings(required)
			if !reflect.DeepEqual(required, want) {
				t.Errorf("expected required %v, got %v", want, required)
			}
		})
	}
}

func TestBuildGeminiReq_ChatOmitsGenerationConfig(t *testing.T) {
	payload := decodePayload(t, buildGeminiReq(&models.ProxyRequest{Prompt: "hello", IsChat: true}))

	if _, ok := payload["generationConfig"]; ok {
		t.Errorf("expected no generationConfig, got %v", payload["generationConfig"])
	}
}

func TestBuildGeminiReq_Parts(t *testing.T) {
	tests := []struct {
		name      string
		image     any
		wantParts int
	}{
		{name: "no image", image: nil, wantParts: 1},
		{name: "empty image", image: "", wantParts: 1},
		{name: "with image", image: "aGVsbG8=", wantParts: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := decodePayload(t, buildGeminiReq(&models.ProxyRequest{Prompt: "q", ImageBase64Data: tt.image}))
			got := parts(t, payload)

			if len(got) != tt.wantParts {
				t.Fatalf("expected %d parts, got %d", tt.wantParts, len(got))
			}
			if got[0].(map[string]any)["text"] != "q" {
				t.Errorf("expected text part first, got %v", got[0])
			}
			if tt.wantParts == 2 {
				inline := got[1].(map[string]any)["inlineData"].(map[string]any)
				if inline["mimeType"] != "image/jpeg" {
					t.Errorf("expected image/jpeg, got %v", inline["mimeType"])
				}
				if inline["data"] != tt.image {
					t.Errorf("expected data %v, got %v", tt.image, inline["data"])
				}
			}
		})
	}
}

func TestBuildGeminiReq_ForwardsPromptUnchanged(t *testing.T) {
	t.Run("missing prompt drops text", func(t *testing.T) {
		got := parts(t, decodePayload(t, buildGeminiReq(&models.ProxyRequest{IsChat: true})))
		if _, ok := got[0].(map[string]any)["text"]; ok {
			t.Errorf("expected no text key, got %v", got[0])
		}
	})

	t.Run("non-string prompt kept", func(t *testing.T) {
		got := parts(t, decodePayload(t, buildGeminiReq(&models.ProxyRequest{Prompt: float64(42), IsChat: true})))
		if got[0].(map[string]any)["text"] != float64(42) {
			t.Errorf("expected numeric text, got %v", got[0])
		}
	})
}

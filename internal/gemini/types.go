package gemini

const (
	RoleUser = "user"

	MimeTypeJPEG = "image/jpeg"
	MimeTypeJSON = "application/json"

	TypeObject = "OBJECT"
	TypeString = "STRING"
)

type GenerateContentRequest struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

type Content struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

// Part carries either text or inline data. Text is untyped so whatever the
// caller sent as a prompt is forwarded as is; a nil Text drops the key.
type Part struct {
	Text       any         `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     any    `json:"data"`
}

type GenerationConfig struct {
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *Schema `json:"responseSchema,omitempty"`
}

type Schema struct {
	Type       string             `json:"type"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

package service

import (
	"github.com/kdduha/gemini-relay/internal/gemini"
	"github.com/kdduha/gemini-relay/internal/models"
)

var answerFields = []string{
	fieldSimplifiedQuestion,
	fieldSolutionSteps,
	fieldFinalAnswer,
	fieldRecommendations,
}

func buildGeminiReq(req *models.ProxyRequest) *gemini.GenerateContentRequest {
	payload := &gemini.GenerateContentRequest{
		Contents: []gemini.Content{
			{
				Role:  gemini.RoleUser,
				Parts: buildParts(req),
			},
		},
	}

	if !req.Chat() {
		payload.GenerationConfig = &gemini.GenerationConfig{
			ResponseMimeType: gemini.MimeTypeJSON,
			ResponseSchema:   answerSchema(),
		}
	}
	return payload
}

func buildParts(req *models.ProxyRequest) []gemini.Part {
	parts := []gemini.Part{{Text: req.Prompt}}
	if req.HasImage() {
		parts = append(parts, gemini.Part{
			InlineData: &gemini.InlineData{
				MimeType: gemini.MimeTypeJPEG,
				Data:     req.ImageBase64Data,
			},
		})
	}
	return parts
}

func answerSchema() *gemini.Schema {
	properties := make(map[string]*gemini.Schema, len(answerFields))
	for _, field := range answerFields {
		properties[field] = &gemini.Schema{Type: gemini.TypeString}
	}

	required := make([]string, len(answerFields))
	copy(required, answerFields)

	return &gemini.Schema{
		Type:       gemini.TypeObject,
		Properties: properties,
		Required:   required,
	}
}

func modeOf(req *models.ProxyRequest) string {
	if req.Chat() {
		return ModeChat
	}
	return ModeStructured
}

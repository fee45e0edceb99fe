package service

const (
	ModeChat       = "chat"
	ModeStructured = "structured"
)

const (
	fieldSimplifiedQuestion = "simplified_question"
	fieldSolutionSteps      = "solution_steps"
	fieldFinalAnswer        = "final_answer"
	fieldRecommendations    = "recommendations"
)

const (
	// MessageUpstreamError is returned when Gemini rejects the request.
	MessageUpstreamError = "Gemini API tarafından bir hata döndürüldü."
	// MessageInternalError is returned for any failure inside the relay.
	MessageInternalError = "Sunucu fonksiyonunda kritik bir hata oluştu."

	missingAPIKeyText = "API anahtarı bulunamadı. Lütfen GEMINI_API_KEY ortam değişkenini kontrol edin."
)

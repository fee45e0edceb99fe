package models

// ProxyRequest represents request for gemini-proxy endpoint.
// Fields are untyped, values are forwarded upstream unchanged.
type ProxyRequest struct {
	Prompt          any `json:"prompt" swaggertype:"string" example:"2x + 3 = 11 denklemini çöz"`
	ImageBase64Data any `json:"imageBase64Data,omitempty" swaggertype:"string" example:"/9j/4AAQSkZJRgABAQAAAQABAAD..."`
	IsChat          any `json:"isChat,omitempty" swaggertype:"boolean" example:"false"`
}

// ErrorResponse is the normalized error envelope.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   any    `json:"error,omitempty" swaggertype:"object"`
}

// Answer is the structured answer Gemini is asked to produce when isChat is false.
type Answer struct {
	SimplifiedQuestion string `json:"simplified_question"`
	SolutionSteps      string `json:"solution_steps"`
	FinalAnswer        string `json:"final_answer"`
	Recommendations    string `json:"recommendations"`
}

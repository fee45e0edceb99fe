package handler

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/kdduha/gemini-relay/internal/models"
	"github.com/kdduha/gemini-relay/internal/service"
)

const methodNotAllowed = "Method Not Allowed"

type geminiProxyService interface {
	Ready() error
	Relay(ctx context.Context, req *models.ProxyRequest) ([]byte, error)
}

type GeminiProxyHandler struct {
	logger  *log.Logger
	service geminiProxyService
}

func NewGeminiProxyHandler(logger *log.Logger, service geminiProxyService) *GeminiProxyHandler {
	return &GeminiProxyHandler{
		logger:  logger,
		service: service,
	}
}

// Proxy godoc
// @Summary Relay prompt to Gemini
// @Description Forwards a prompt and optional base64 JPEG image to Gemini generateContent.
// @Description Unless isChat is true, Gemini is asked for a structured JSON answer.
// @Tags gemini
// @Accept json
// @Produce json
// @Param request body models.ProxyRequest true "Proxy request"
// @Success 200 {object} object "Gemini generateContent response"
// @Failure 400 {object} models.ErrorResponse "Gemini rejected the request (any upstream status)"
// @Failure 405 {string} string "Method Not Allowed"
// @Failure 500 {object} models.ErrorResponse
// @Router /gemini-proxy [post]
func (h *GeminiProxyHandler) Proxy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusMethodNotAllowed)
		_, _ = w.Write([]byte(methodNotAllowed))
		return
	}

	if err := h.service.Ready(); err != nil {
		h.internalError(w, err)
		return
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		h.internalError(w, err)
		return
	}

	req, err := models.ParseProxyRequest(raw)
	if err != nil {
		h.internalError(w, err)
		return
	}

	data, err := h.service.Relay(r.Context(), req)
	if err != nil {
		var upstreamErr *service.UpstreamError
		if errors.As(err, &upstreamErr) {
			writeJSON(w, upstreamErr.StatusCode, models.ErrorResponse{
				Message: service.MessageUpstreamError,
				Error:   upstreamErr.Detail,
			})
			return
		}
		h.internalError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *GeminiProxyHandler) internalError(w http.ResponseWriter, err error) {
	h.logger.Printf("relay error: %v\n", err)
	writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
		Message: service.MessageInternalError,
		Error:   err.Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := sonic.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

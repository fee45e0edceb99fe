package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/kdduha/gemini-relay/internal/config"
	"github.com/kdduha/gemini-relay/internal/gemini"
	"github.com/kdduha/gemini-relay/internal/metrics"
	"github.com/kdduha/gemini-relay/internal/models"
)

type GeminiClient interface {
	GenerateContent(ctx context.Context, model, apiKey string, payload *gemini.GenerateContentRequest) (*gemini.Response, error)
}

type GeminiProxyService struct {
	logger *log.Logger
	client GeminiClient
	apiKey string
	model  string
}

func NewGeminiProxyService(logger *log.Logger, client GeminiClient, cfg config.GeminiConfig) *GeminiProxyService {
	return &GeminiProxyService{
		logger: logger,
		client: client,
		apiKey: cfg.APIKey,
		model:  cfg.Model,
	}
}

// Ready reports whether the credential needed to call Gemini is configured.
func (s *GeminiProxyService) Ready() error {
	if s.apiKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// Relay forwards req to Gemini and returns the upstream JSON body on success.
// A non-2xx upstream reply is returned as *UpstreamError.
func (s *GeminiProxyService) Relay(ctx context.Context, req *models.ProxyRequest) ([]byte, error) {
	if err := s.Ready(); err != nil {
		return nil, err
	}

	mode := modeOf(req)
	payload := buildGeminiReq(req)

	start := time.Now()
	resp, err := s.client.GenerateContent(ctx, s.model, s.apiKey, payload)
	metrics.UpstreamRequestDuration(mode, time.Since(start))
	if err != nil {
		metrics.UpstreamRequestsTotal(mode, "error")
		return nil, fmt.Errorf("gemini client error: %w", err)
	}
	metrics.UpstreamRequestsTotal(mode, strconv.Itoa(resp.StatusCode))

	if !resp.OK() {
		var errBody any
		if err := sonic.Unmarshal(resp.Body, &errBody); err != nil {
			return nil, fmt.Errorf("failed to decode gemini error body: %w", err)
		}
		if errBody == nil {
			return nil, errNullErrorBody
		}
		s.logger.Printf("gemini API error: %s\n", resp.Body)
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Detail:     errorMember(errBody),
		}
	}

	var data any
	if err := sonic.Unmarshal(resp.Body, &data); err != nil {
		return nil, fmt.Errorf("failed to decode gemini response: %w", err)
	}
	return resp.Body, nil
}

func errorMember(body any) any {
	obj, ok := body.(map[string]any)
	if !ok {
		return nil
	}
	return obj["error"]
}

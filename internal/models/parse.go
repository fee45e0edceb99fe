package models

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
)

var ErrNullBody = errors.New("request body is null")

// ParseProxyRequest decodes a whole request body. Any JSON value other than
// null is accepted: fields are read from objects, every other value yields
// an empty request.
func ParseProxyRequest(raw []byte) (*ProxyRequest, error) {
	var body any
	if err := sonic.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	switch v := body.(type) {
	case nil:
		return nil, ErrNullBody
	case map[string]any:
		return &ProxyRequest{
			Prompt:          v["prompt"],
			ImageBase64Data: v["imageBase64Data"],
			IsChat:          v["isChat"],
		}, nil
	default:
		return &ProxyRequest{}, nil
	}
}

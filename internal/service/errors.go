package service

import (
	"errors"
	"fmt"
)

var ErrMissingAPIKey = errors.New(missingAPIKeyText)

// errNullErrorBody is returned when Gemini fails with a literal null body,
// which carries no error member to relay.
var errNullErrorBody = errors.New("gemini error body is null")

// UpstreamError is a non-2xx reply from Gemini. Detail holds the "error"
// member of the upstream body and is nil when the body has none.
type UpstreamError struct {
	StatusCode int
	Detail     any
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("gemini API returned status %d", e.StatusCode)
}

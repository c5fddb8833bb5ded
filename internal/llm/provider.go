package llm

import (
	"context"
)

// defines the interface for generative-text providers
type Provider interface {
	// GenerateText runs one synchronous prompt/response round trip.
	GenerateText(ctx context.Context, prompt string) (string, error)
	// GenerateTextStream forwards chunks to sink as they arrive while
	// accumulating the full text. sink may be nil.
	GenerateTextStream(ctx context.Context, prompt string, sink func(chunk string)) (string, error)
	GetProviderName() string
}

// represents an error from a generative-text provider
type ProviderError struct {
	Provider string
	Code     string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return e.Provider + " error: " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Provider + " error: " + e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Common error codes
// For current and future use across different providers
const (
	ErrCodeAPIKey       = "invalid_api_key"
	ErrCodeRateLimit    = "rate_limit_exceeded"
	ErrCodeServiceDown  = "service_unavailable"
	ErrCodeInvalidInput = "invalid_input"
	ErrCodeTimeout      = "timeout"
)

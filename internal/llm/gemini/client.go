package gemini

import (
	"context"
	"strings"

	"google.golang.org/genai"

	"prepwise/interview/internal/llm"
)

// Client represents a Gemini text-generation client

type Client struct {
	client *genai.Client
	config *Config
}

func NewClient(config *Config) (*Client, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeAPIKey,
			Message:  "Failed to create Gemini client",
			Err:      err,
		}
	}

	return &Client{
		client: client,
		config: config,
	}, nil
}

// GenerateText runs one synchronous generation round trip.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	result, err := c.client.Models.GenerateContent(
		ctx,
		c.config.Model,
		genai.Text(prompt),
		nil,
	)
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeServiceDown,
			Message:  "Failed to generate content",
			Err:      err,
		}
	}

	if result == nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "No response generated",
		}
	}

	text, err := result.Text()
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Failed to extract response text",
			Err:      err,
		}
	}
	if text == "" {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Empty response generated",
		}
	}

	return text, nil
}

// GenerateTextStream forwards chunks to sink as they arrive and returns the
// accumulated text once the stream ends. sink may be nil.
func (c *Client) GenerateTextStream(ctx context.Context, prompt string, sink func(chunk string)) (string, error) {
	var full strings.Builder

	for chunk, err := range c.client.Models.GenerateContentStream(
		ctx,
		c.config.Model,
		genai.Text(prompt),
		nil,
	) {
		if err != nil {
			return "", &llm.ProviderError{
				Provider: "gemini",
				Code:     llm.ErrCodeServiceDown,
				Message:  "Stream interrupted",
				Err:      err,
			}
		}

		text, err := chunk.Text()
		if err != nil {
			continue // non-text chunk
		}
		full.WriteString(text)
		if sink != nil {
			sink(text)
		}
	}

	if full.Len() == 0 {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Empty response generated",
		}
	}

	return full.String(), nil
}

func (c *Client) GetProviderName() string {
	return "gemini"
}

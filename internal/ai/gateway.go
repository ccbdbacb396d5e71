// Package ai provides the client for the hosted generative-AI service:
// text completion for the tutor chat and image generation for lesson steps.
package ai

import (
	"context"
	"errors"
)

// ErrNoImage is returned when the service reports success but the response
// contains no inline image payload.
var ErrNoImage = errors.New("no inline image in response")

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest is the input to a text completion.
type CompletionRequest struct {
	System      string    `json:"system,omitempty"`
	Messages    []Message `json:"messages"`
	Model       string    `json:"model,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
}

// CompletionResponse is the output from a text completion.
type CompletionResponse struct {
	Content      string `json:"content"`
	Model        string `json:"model"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
}

// ImageRequest is the input to an image generation.
type ImageRequest struct {
	Prompt      string `json:"prompt"`
	Model       string `json:"model,omitempty"`
	AspectRatio string `json:"aspect_ratio,omitempty"`
}

// ImageResult carries the first inline image returned by the service.
type ImageResult struct {
	MIMEType string `json:"mime_type"`
	Data     []byte `json:"data"`
	Model    string `json:"model"`
}

// Provider is the interface the AI service client must implement.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error)
	GenerateImage(ctx context.Context, req ImageRequest) (ImageResult, error)
}

package ai

import (
	"context"
	"sync"
)

// MockProvider is a test double for the AI service.
type MockProvider struct {
	Response  string
	Err       error
	ImageData []byte
	MIMEType  string
	ImageErr  error

	mu               sync.Mutex
	lastCompletion   *CompletionRequest
	lastImage        *ImageRequest
	completeCalls    int
	generateImgCalls int
}

// NewMockProvider creates a MockProvider that returns the given response.
func NewMockProvider(response string) *MockProvider {
	return &MockProvider{Response: response, MIMEType: "image/png"}
}

func (m *MockProvider) Complete(_ context.Context, req CompletionRequest) (CompletionResponse, error) {
	m.mu.Lock()
	m.lastCompletion = &req
	m.completeCalls++
	m.mu.Unlock()

	if m.Err != nil {
		return CompletionResponse{}, m.Err
	}
	return CompletionResponse{
		Content:      m.Response,
		Model:        "mock",
		InputTokens:  10,
		OutputTokens: len(m.Response),
	}, nil
}

func (m *MockProvider) GenerateImage(_ context.Context, req ImageRequest) (ImageResult, error) {
	m.mu.Lock()
	m.lastImage = &req
	m.generateImgCalls++
	m.mu.Unlock()

	if m.ImageErr != nil {
		return ImageResult{}, m.ImageErr
	}
	return ImageResult{MIMEType: m.MIMEType, Data: m.ImageData, Model: "mock"}, nil
}

// LastCompletion returns the most recent completion request, if any.
func (m *MockProvider) LastCompletion() *CompletionRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastCompletion
}

// LastImage returns the most recent image request, if any.
func (m *MockProvider) LastImage() *ImageRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastImage
}

// CompleteCalls returns how many completions were requested.
func (m *MockProvider) CompleteCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.completeCalls
}

// ImageCalls returns how many image generations were requested.
func (m *MockProvider) ImageCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.generateImgCalls
}

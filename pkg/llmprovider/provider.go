package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "gemini", "openai")
	Name() string

	// Model returns the model being used
	Model() string
}

// Generator is the caller-facing generation interface. The Manager
// implements it; use cases depend on this rather than the concrete Manager.
type Generator interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
}

// Request represents a normalized generation request for event extraction
type Request struct {
	SystemInstruction string
	UserText          string
	Image             *Image
	Temperature       float64
	MaxTokens         int
}

// Image is an optional inline image attached to the request
type Image struct {
	MIMEType string
	Data     []byte
}

// Response represents a normalized generation response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

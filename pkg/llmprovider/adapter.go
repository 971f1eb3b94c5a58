package llmprovider

import (
	"context"
	"encoding/base64"
	"fmt"

	"calendarize/pkg/gemini"
	"calendarize/pkg/openai"
)

// GeminiAdapter adapts pkg/gemini to the llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements the Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	parts := []gemini.Part{{Text: req.UserText}}
	if req.Image != nil {
		parts = append(parts, gemini.Part{
			InlineData: &gemini.Blob{MIMEType: req.Image.MIMEType, Data: req.Image.Data},
		})
	}

	geminiReq := &gemini.Request{
		Messages:    []gemini.Content{{Role: "user", Parts: parts}},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != "" {
		geminiReq.SystemInstruction = &gemini.Content{
			Parts: []gemini.Part{{Text: req.SystemInstruction}},
		}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	out := &Response{
		Text:         resp.Text(),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage.InputTokens = resp.Usage.InputTokens
		out.Usage.OutputTokens = resp.Usage.OutputTokens
		out.Usage.TotalTokens = resp.Usage.TotalTokens
	}
	return out, nil
}

// Name returns the provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns the model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// OpenAIAdapter adapts pkg/openai to the llmprovider.Provider interface
type OpenAIAdapter struct {
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new OpenAI adapter
func NewOpenAIAdapter(client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

// GenerateContent implements the Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]openai.Message, 0, 2)
	if req.SystemInstruction != "" {
		messages = append(messages, openai.Message{Role: "system", Content: req.SystemInstruction})
	}

	if req.Image != nil {
		dataURI := fmt.Sprintf("data:%s;base64,%s",
			req.Image.MIMEType, base64.StdEncoding.EncodeToString(req.Image.Data))
		messages = append(messages, openai.Message{
			Role: "user",
			Content: []openai.ContentPart{
				{Type: "text", Text: req.UserText},
				{Type: "image_url", ImageURL: &openai.ImageURL{URL: dataURI}},
			},
		})
	} else {
		messages = append(messages, openai.Message{Role: "user", Content: req.UserText})
	}

	resp, err := a.client.GenerateContent(ctx, &openai.Request{
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return &Response{
		Text:         resp.Text(),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *OpenAIAdapter) Name() string {
	return "openai"
}

// Model returns the model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

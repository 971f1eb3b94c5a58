package gemini

import (
	"fmt"
	"net/http"
)

// Config holds the Gemini client configuration.
type Config struct {
	APIKey     string
	Model      string
	APIURL     string
	HTTPClient *http.Client
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("gemini: API key is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Request is a normalized generation request.
type Request struct {
	SystemInstruction *Content
	Messages          []Content
	Temperature       float64
	MaxTokens         int
}

// Content wraps a list of Part objects to form a message.
type Content struct {
	Role  string
	Parts []Part
}

// Part holds a text segment or inline binary data (e.g. an image).
type Part struct {
	Text       string
	InlineData *Blob
}

// Blob is inline binary content with its MIME type.
type Blob struct {
	MIMEType string
	Data     []byte
}

// Response is a normalized generation response.
type Response struct {
	Content Content
	Usage   *Usage
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Text returns the concatenated text of all parts in the response content.
func (r *Response) Text() string {
	var out string
	for _, p := range r.Content.Parts {
		out += p.Text
	}
	return out
}

// Wire types for the Generative Language REST API.

type geminiRequest struct {
	SystemInstruction *geminiContent          `json:"system_instruction,omitempty"`
	Contents          []geminiContent         `json:"contents"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string          `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"` // base64
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiResponse struct {
	Candidates    []geminiCandidate    `json:"candidates"`
	UsageMetadata *geminiUsageMetadata `json:"usageMetadata,omitempty"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiUsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type geminiImpl struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
}

// newGeminiImpl creates a new Gemini implementation
func newGeminiImpl(cfg Config) *geminiImpl {
	return &geminiImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		apiURL:     cfg.APIURL,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a generation request to the Gemini API
func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := g.transformRequest(req)
	geminiResp, err := g.callAPI(ctx, geminiReq)
	if err != nil {
		return nil, err
	}
	return g.transformResponse(geminiResp), nil
}

// Model returns the model being used
func (g *geminiImpl) Model() string {
	return g.model
}

// callAPI sends a request to the Gemini API
func (g *geminiImpl) callAPI(ctx context.Context, req geminiRequest) (*geminiResponse, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.apiURL, g.model, g.apiKey)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("gemini: failed to decode response: %w", err)
	}

	return &result, nil
}

// transformRequest converts the request to Gemini API wire format
func (g *geminiImpl) transformRequest(req *Request) geminiRequest {
	geminiReq := geminiRequest{
		Contents: make([]geminiContent, len(req.Messages)),
	}

	if req.SystemInstruction != nil {
		geminiReq.SystemInstruction = &geminiContent{
			Parts: transformParts(req.SystemInstruction.Parts),
		}
	}

	for i, msg := range req.Messages {
		geminiReq.Contents[i] = geminiContent{
			Role:  msg.Role,
			Parts: transformParts(msg.Parts),
		}
	}

	if req.Temperature > 0 || req.MaxTokens > 0 {
		geminiReq.GenerationConfig = &geminiGenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}

	return geminiReq
}

func transformParts(parts []Part) []geminiPart {
	geminiParts := make([]geminiPart, len(parts))
	for i, part := range parts {
		geminiParts[i] = geminiPart{Text: part.Text}
		if part.InlineData != nil {
			geminiParts[i].InlineData = &geminiInlineData{
				MIMEType: part.InlineData.MIMEType,
				Data:     base64.StdEncoding.EncodeToString(part.InlineData.Data),
			}
		}
	}
	return geminiParts
}

// transformResponse converts the Gemini API response to the normalized format
func (g *geminiImpl) transformResponse(resp *geminiResponse) *Response {
	usage := &Usage{}
	if resp.UsageMetadata != nil {
		usage.InputTokens = resp.UsageMetadata.PromptTokenCount
		usage.OutputTokens = resp.UsageMetadata.CandidatesTokenCount
		usage.TotalTokens = resp.UsageMetadata.TotalTokenCount
	}

	if len(resp.Candidates) == 0 {
		return &Response{Usage: usage}
	}

	content := resp.Candidates[0].Content

	parts := make([]Part, len(content.Parts))
	for i, part := range content.Parts {
		parts[i] = Part{Text: part.Text}
	}

	return &Response{
		Content: Content{Role: content.Role, Parts: parts},
		Usage:   usage,
	}
}

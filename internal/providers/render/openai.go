package render

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"server/internal/domain"
)

// OpenAIOptions configures the OpenAI-backed renderer.
type OpenAIOptions struct {
	APIKey       string
	Model        string
	BaseURL      string
	Organization string
	HTTPClient   *http.Client
	Fallback     Renderer
	OnFallback   func(reason string, err error)
}

// OpenAIRenderer asks a chat model for blueprint-shaped JSON and degrades to
// the static renderer on any failure, so render never hard-fails on the
// provider.
type OpenAIRenderer struct {
	apiKey       string
	model        string
	baseURL      string
	organization string
	client       *http.Client
	fallback     Renderer
	onFallback   func(reason string, err error)
}

const openAIDefaultTimeout = 15 * time.Second

const defaultOpenAIModel = "gpt-4o-mini"

var openAIModelAliases = map[string]string{
	"gpt4o-mini":   "gpt-4o-mini",
	"gpt4omini":    "gpt-4o-mini",
	"gpt-35-turbo": "gpt-3.5-turbo",
	"gpt-3.5":      "gpt-3.5-turbo",
}

type openAIChatRequest struct {
	Model          string          `json:"model"`
	Messages       []openAIMessage `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	ResponseFormat *openAIFormat   `json:"response_format,omitempty"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIFormat struct {
	Type string `json:"type"`
}

type openAIChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func NewOpenAIRenderer(opts OpenAIOptions) (*OpenAIRenderer, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("openai api key is required")
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: openAIDefaultTimeout}
	}
	fallback := opts.Fallback
	if fallback == nil {
		fallback = NewStaticRenderer()
	}
	return &OpenAIRenderer{
		apiKey:       strings.TrimSpace(opts.APIKey),
		model:        normalizeOpenAIModel(opts.Model),
		baseURL:      baseURL,
		organization: strings.TrimSpace(opts.Organization),
		client:       client,
		fallback:     fallback,
		onFallback:   opts.OnFallback,
	}, nil
}

func (o *OpenAIRenderer) Render(ctx context.Context, req Request) (domain.RenderedContent, error) {
	if _, ok := staticTemplates[req.Kind]; !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedBlueprint, req.Kind)
	}
	payload := openAIChatRequest{
		Model:       o.model,
		Temperature: 0.6,
		ResponseFormat: &openAIFormat{
			Type: "json_object",
		},
		Messages: []openAIMessage{
			{Role: "system", Content: "You are a content generator that only responds with valid JSON."},
			{Role: "user", Content: buildRenderPrompt(req)},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return o.useFallback(ctx, req, "encode_request", err)
	}
	endpoint := fmt.Sprintf("%s/chat/completions", o.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return o.useFallback(ctx, req, "build_request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	if o.organization != "" {
		httpReq.Header.Set("OpenAI-Organization", o.organization)
	}
	resp, err := o.client.Do(httpReq)
	if err != nil {
		return o.useFallback(ctx, req, "http_request", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 300 {
		return o.useFallback(ctx, req, fmt.Sprintf("http_%d", resp.StatusCode), fmt.Errorf("openai status %d", resp.StatusCode))
	}
	var out openAIChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return o.useFallback(ctx, req, "decode_response", err)
	}
	if len(out.Choices) == 0 {
		return o.useFallback(ctx, req, "empty_choices", errors.New("no choices"))
	}
	text := strings.TrimSpace(out.Choices[0].Message.Content)
	if text == "" {
		return o.useFallback(ctx, req, "empty_response", errors.New("empty response"))
	}
	parsed, err := parseRenderedObject(text)
	if err != nil {
		return o.useFallback(ctx, req, "parse_payload", err)
	}
	return domain.RenderedContent(parsed), nil
}

func (o *OpenAIRenderer) Provider() string { return openAIProviderName }

func (o *OpenAIRenderer) useFallback(ctx context.Context, req Request, reason string, fallbackErr error) (domain.RenderedContent, error) {
	if o.onFallback != nil {
		o.onFallback(reason, fallbackErr)
	}
	return o.fallback.Render(ctx, req)
}

var _ Renderer = (*OpenAIRenderer)(nil)

func normalizeOpenAIModel(name string) string {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	trimmed = strings.ReplaceAll(trimmed, "_", "-")
	trimmed = strings.ReplaceAll(trimmed, " ", "-")
	if trimmed == "" {
		return defaultOpenAIModel
	}
	if alias, ok := openAIModelAliases[trimmed]; ok {
		return alias
	}
	return trimmed
}

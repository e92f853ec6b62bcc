package prompt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"promptimage/internal/domain"
)

type OpenAIOptions struct {
	APIKey       string
	Model        string
	BaseURL      string
	Organization string
	Temperature  float64
	HTTPClient   *http.Client
	OnWarning    func(reason, detail string)
}

// OpenAICompleter calls the chat completions endpoint with one system and
// one user message.
type OpenAICompleter struct {
	apiKey       string
	model        string
	baseURL      string
	organization string
	temperature  float64
	client       *http.Client
}

const openAIDefaultTimeout = 60 * time.Second

const defaultOpenAIModel = "gpt-3.5-turbo"

var openAIModelCanonical = map[string]string{
	"gpt-3.5-turbo": "gpt-3.5-turbo",
	"gpt-4o-mini":   "gpt-4o-mini",
	"gpt-4o":        "gpt-4o",
}

var openAIModelAliases = map[string]string{
	"gpt-3.5":                "gpt-3.5-turbo",
	"gpt3.5":                 "gpt-3.5-turbo",
	"gpt-3-5":                "gpt-3.5-turbo",
	"gpt-35-turbo":           "gpt-3.5-turbo",
	"gpt35-turbo":            "gpt-3.5-turbo",
	"gpt4o-mini":             "gpt-4o-mini",
	"gpt4omini":              "gpt-4o-mini",
	"gpt-4o-mini-2024-07-18": "gpt-4o-mini",
	"gpt4o":                  "gpt-4o",
}

type openAIChatRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float64         `json:"temperature,omitempty"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func NewOpenAICompleter(opts OpenAIOptions) (*OpenAICompleter, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("openai api key is required")
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	modelInput := strings.TrimSpace(opts.Model)
	normalizedModel, normalizationReason := normalizeOpenAIModel(modelInput)
	if normalizationReason != "" && opts.OnWarning != nil {
		detail := fmt.Sprintf("requested=%s resolved=%s", coalesce(modelInput, defaultOpenAIModel), normalizedModel)
		opts.OnWarning("model_"+normalizationReason, detail)
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: openAIDefaultTimeout}
	}
	return &OpenAICompleter{
		apiKey:       strings.TrimSpace(opts.APIKey),
		model:        normalizedModel,
		baseURL:      baseURL,
		organization: strings.TrimSpace(opts.Organization),
		temperature:  opts.Temperature,
		client:       client,
	}, nil
}

// Model reports the resolved model name.
func (o *OpenAICompleter) Model() string {
	return o.model
}

// Complete returns the trimmed content of the first choice.
func (o *OpenAICompleter) Complete(ctx context.Context, system, user string) (string, error) {
	payload := openAIChatRequest{
		Model:       o.model,
		Temperature: o.temperature,
		Messages: []openAIMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}
	headers := map[string]string{"Authorization": "Bearer " + o.apiKey}
	if o.organization != "" {
		headers["OpenAI-Organization"] = o.organization
	}
	var out openAIChatResponse
	if err := postJSON(ctx, o.client, openAICapability, o.baseURL+"/chat/completions", headers, payload, &out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", domain.NewExternalCallError(openAICapability, "empty_choices", http.StatusOK, errors.New("no choices"))
	}
	text := strings.TrimSpace(out.Choices[0].Message.Content)
	if text == "" {
		return "", domain.NewExternalCallError(openAICapability, "empty_response", http.StatusOK, errors.New("empty response"))
	}
	return text, nil
}

func normalizeOpenAIModel(name string) (string, string) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return defaultOpenAIModel, ""
	}
	normalized := strings.ToLower(trimmed)
	normalized = strings.ReplaceAll(normalized, "_", "-")
	normalized = strings.ReplaceAll(normalized, " ", "-")
	if canonical, ok := openAIModelCanonical[normalized]; ok {
		return canonical, ""
	}
	if alias, ok := openAIModelAliases[normalized]; ok {
		if canonical, ok := openAIModelCanonical[alias]; ok {
			return canonical, "alias"
		}
		return alias, "alias"
	}
	return defaultOpenAIModel, "defaulted"
}

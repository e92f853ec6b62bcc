package prompt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"promptimage/internal/domain"
)

type GeminiOptions struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	HTTPClient  *http.Client
}

// GeminiCompleter calls generateContent with the stage instruction as the
// system instruction and the stage input as the single user turn.
type GeminiCompleter struct {
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	client      *http.Client
}

const geminiDefaultTimeout = 60 * time.Second

type geminiRequest struct {
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	Contents          []geminiContent         `json:"contents"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiGenerationConfig struct {
	Temperature    float64 `json:"temperature,omitempty"`
	CandidateCount int     `json:"candidateCount,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func NewGeminiCompleter(opts GeminiOptions) (*GeminiCompleter, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("gemini api key is required")
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: geminiDefaultTimeout}
	}
	return &GeminiCompleter{
		apiKey:      strings.TrimSpace(opts.APIKey),
		model:       model,
		baseURL:     baseURL,
		temperature: opts.Temperature,
		client:      client,
	}, nil
}

func (g *GeminiCompleter) Model() string {
	return g.model
}

func (g *GeminiCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	payload := geminiRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: user}},
		}},
		GenerationConfig: &geminiGenerationConfig{
			Temperature:    g.temperature,
			CandidateCount: 1,
		},
	}
	if system != "" {
		payload.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: system}}}
	}
	headers := map[string]string{"x-goog-api-key": g.apiKey}
	var out geminiResponse
	if err := postJSON(ctx, g.client, geminiCapability, g.endpoint(), headers, payload, &out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 {
		return "", domain.NewExternalCallError(geminiCapability, "empty_choices", http.StatusOK, errors.New("no candidates"))
	}
	text := strings.TrimSpace(extractText(out))
	if text == "" {
		return "", domain.NewExternalCallError(geminiCapability, "empty_response", http.StatusOK, errors.New("empty response"))
	}
	return text, nil
}

func (g *GeminiCompleter) endpoint() string {
	return fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, url.PathEscape(g.model))
}

// extractText returns the text parts of the top candidate.
func extractText(resp geminiResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String()
}

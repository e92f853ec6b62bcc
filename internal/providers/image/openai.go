package image

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"promptimage/internal/domain"
)

const openAIImageCapability = "openai.images"

const openAIImageDefaultTimeout = 60 * time.Second

type OpenAIOptions struct {
	APIKey       string
	Model        string
	BaseURL      string
	Organization string
	HTTPClient   *http.Client
}

// OpenAIGenerator requests exactly one image per call from the images API.
type OpenAIGenerator struct {
	apiKey       string
	model        string
	baseURL      string
	organization string
	client       *http.Client
}

type openAIImageRequest struct {
	Model          string `json:"model,omitempty"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	ResponseFormat string `json:"response_format"`
	User           string `json:"user,omitempty"`
}

type openAIImageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

func NewOpenAIGenerator(opts OpenAIOptions) (*OpenAIGenerator, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("openai api key is required")
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: openAIImageDefaultTimeout}
	}
	return &OpenAIGenerator{
		apiKey:       strings.TrimSpace(opts.APIKey),
		model:        strings.TrimSpace(opts.Model),
		baseURL:      baseURL,
		organization: strings.TrimSpace(opts.Organization),
		client:       client,
	}, nil
}

func (g *OpenAIGenerator) Generate(ctx context.Context, req GenerateRequest) (Asset, error) {
	payload := openAIImageRequest{
		Model:          g.model,
		Prompt:         req.Prompt,
		N:              1,
		Size:           DefaultSize,
		ResponseFormat: "url",
		User:           req.RequestID,
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return Asset{}, domain.NewExternalCallError(openAIImageCapability, "encode_request", 0, err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/images/generations", &buf)
	if err != nil {
		return Asset{}, domain.NewExternalCallError(openAIImageCapability, "build_request", 0, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	if g.organization != "" {
		httpReq.Header.Set("OpenAI-Organization", g.organization)
	}
	resp, err := g.client.Do(httpReq)
	if err != nil {
		return Asset{}, domain.NewExternalCallError(openAIImageCapability, "http_request", 0, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return Asset{}, domain.NewExternalCallError(openAIImageCapability, fmt.Sprintf("http_%d", resp.StatusCode), resp.StatusCode,
			fmt.Errorf("openai status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}
	var out openAIImageResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Asset{}, domain.NewExternalCallError(openAIImageCapability, "decode_response", resp.StatusCode, err)
	}
	if len(out.Data) == 0 {
		return Asset{}, domain.NewExternalCallError(openAIImageCapability, "empty_data", resp.StatusCode, errors.New("no images returned"))
	}
	url := strings.TrimSpace(out.Data[0].URL)
	if url == "" {
		return Asset{}, domain.NewExternalCallError(openAIImageCapability, "empty_url", resp.StatusCode, errors.New("image url missing"))
	}
	return Asset{URL: url}, nil
}

var _ Generator = (*OpenAIGenerator)(nil)

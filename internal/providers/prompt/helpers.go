package prompt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"promptimage/internal/domain"
)

const (
	openAICapability = "openai.chat"
	geminiCapability = "gemini.generate"
)

// maxErrorBody bounds how much of an upstream error body ends up in logs.
const maxErrorBody = 2048

// postJSON encodes payload, sends it and decodes a 2xx response into out.
// Every failure is reported as a *domain.ExternalCallError for capability.
func postJSON(ctx context.Context, client *http.Client, capability, endpoint string, headers map[string]string, payload, out any) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return domain.NewExternalCallError(capability, "encode_request", 0, err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return domain.NewExternalCallError(capability, "build_request", 0, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return domain.NewExternalCallError(capability, "http_request", 0, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return domain.NewExternalCallError(capability, fmt.Sprintf("http_%d", resp.StatusCode), resp.StatusCode,
			fmt.Errorf("upstream status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.NewExternalCallError(capability, "decode_response", resp.StatusCode, err)
	}
	return nil
}

func coalesce(values ...string) string {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			return v
		}
	}
	return ""
}

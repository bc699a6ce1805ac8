package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/polyglotbot/polyglot/internal/language"
)

// DefaultLibreTranslateURL is the hosted LibreTranslate instance used when no
// base URL is configured. Hosted instances require an API key; self-hosted
// ones usually do not, but we still treat a missing key as "not configured"
// so the free providers are preferred.
const DefaultLibreTranslateURL = "https://libretranslate.com"

// LibreTranslate is a client for a LibreTranslate server.
type LibreTranslate struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewLibreTranslate creates a LibreTranslate client. The provider reports
// itself unavailable until an API key is supplied.
func NewLibreTranslate(baseURL, apiKey string) *LibreTranslate {
	if baseURL == "" {
		baseURL = DefaultLibreTranslateURL
	}
	return &LibreTranslate{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *LibreTranslate) Name() string { return "libretranslate" }

func (c *LibreTranslate) Available() bool { return c.apiKey != "" }

func (c *LibreTranslate) Supports(source, target language.Code) bool {
	return source != language.Unknown && target != language.Unknown && source != target
}

type libreRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type libreResponse struct {
	TranslatedText string `json:"translatedText"`
}

func (c *LibreTranslate) Translate(ctx context.Context, text string, source, target language.Code) (string, error) {
	payload := libreRequest{
		Q:      text,
		Source: string(source),
		Target: string(target),
		Format: "text",
		APIKey: c.apiKey,
	}

	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(&payload); err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/translate", buf)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	var body libreResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return body.TranslatedText, nil
}

package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/polyglotbot/polyglot/internal/language"
)

// DefaultMyMemoryURL is the public MyMemory API endpoint.
const DefaultMyMemoryURL = "https://api.mymemory.translated.net"

// MyMemory is a client for the free MyMemory translation API. It needs no
// credentials and accepts any pair of distinct language codes, which makes
// it the usual first entry in the dispatcher chain.
type MyMemory struct {
	baseURL    string
	httpClient *http.Client
}

// NewMyMemory creates a MyMemory client. An empty baseURL selects the public
// endpoint.
func NewMyMemory(baseURL string) *MyMemory {
	if baseURL == "" {
		baseURL = DefaultMyMemoryURL
	}
	return &MyMemory{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (m *MyMemory) Name() string { return "mymemory" }

func (m *MyMemory) Available() bool { return true }

func (m *MyMemory) Supports(source, target language.Code) bool {
	return source != language.Unknown && target != language.Unknown && source != target
}

// myMemoryResponse is the subset of the API response we consume. The service
// signals errors inside a 200 body via responseStatus and responseDetails.
type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	ResponseStatus  int    `json:"responseStatus"`
	ResponseDetails string `json:"responseDetails"`
}

func (m *MyMemory) Translate(ctx context.Context, text string, source, target language.Code) (string, error) {
	q := make(url.Values)
	q.Set("q", text)
	q.Set("langpair", fmt.Sprintf("%s|%s", source, target))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"/get?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body myMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if body.ResponseStatus != 0 && body.ResponseStatus != http.StatusOK {
		return "", fmt.Errorf("api status %d: %s", body.ResponseStatus, body.ResponseDetails)
	}
	if body.ResponseData.TranslatedText == "" {
		return "", fmt.Errorf("empty translation: %s", body.ResponseDetails)
	}
	return body.ResponseData.TranslatedText, nil
}

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

// DefaultLingvaURL is the public Lingva instance.
const DefaultLingvaURL = "https://lingva.ml"

// lingvaPairs are the language codes this provider is allowed to handle.
// Lingva itself covers more, but restricting the set keeps it a last-resort
// provider for the common European pairs it translates well.
var lingvaPairs = map[language.Code]bool{
	"en": true, "de": true, "es": true, "fr": true, "pt": true, "it": true,
}

// Lingva is a client for a Lingva Translate instance. No credentials are
// required, but only a fixed set of language pairs is supported.
type Lingva struct {
	baseURL    string
	httpClient *http.Client
}

// NewLingva creates a Lingva client. An empty baseURL selects the public
// instance.
func NewLingva(baseURL string) *Lingva {
	if baseURL == "" {
		baseURL = DefaultLingvaURL
	}
	return &Lingva{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (l *Lingva) Name() string { return "lingva" }

func (l *Lingva) Available() bool { return true }

func (l *Lingva) Supports(source, target language.Code) bool {
	return source != target && lingvaPairs[source] && lingvaPairs[target]
}

type lingvaResponse struct {
	Translation string `json:"translation"`
}

func (l *Lingva) Translate(ctx context.Context, text string, source, target language.Code) (string, error) {
	endpoint := fmt.Sprintf("%s/api/v1/%s/%s/%s",
		l.baseURL, source, target, url.PathEscape(text))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body lingvaResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return body.Translation, nil
}

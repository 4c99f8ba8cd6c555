package correctors

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultGrammarTimeout = 10 * time.Second

// GrammarClient calls an external grammar-correction service over HTTP. The
// service receives the cue text plus a window of surrounding cue text and
// answers with the rewritten string.
type GrammarClient struct {
	baseURL    string
	language   string
	httpClient *http.Client
}

// GrammarOption customizes the grammar client.
type GrammarOption func(*GrammarClient)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) GrammarOption {
	return func(c *GrammarClient) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithLanguage sets the language hint sent with each request.
func WithLanguage(lang string) GrammarOption {
	return func(c *GrammarClient) {
		c.language = strings.TrimSpace(lang)
	}
}

// WithTimeout sets the per-call timeout. Corrections are best effort, so a
// slow service degrades to "no change" instead of stalling the pipeline.
func WithTimeout(timeout time.Duration) GrammarOption {
	return func(c *GrammarClient) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewGrammarClient constructs a grammar service client.
func NewGrammarClient(baseURL string, opts ...GrammarOption) (*GrammarClient, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("grammar: base url required")
	}
	client := &GrammarClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultGrammarTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

func (c *GrammarClient) Name() string { return "grammar" }

type grammarRequest struct {
	Text     string `json:"text"`
	Context  string `json:"context,omitempty"`
	Language string `json:"language,omitempty"`
}

type grammarResponse struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

// Correct posts the text to the service's /correct endpoint.
func (c *GrammarClient) Correct(ctx context.Context, text, contextText string) (string, bool, error) {
	if strings.TrimSpace(text) == "" {
		return text, false, nil
	}
	endpoint, err := url.JoinPath(c.baseURL, "/correct")
	if err != nil {
		return text, false, fmt.Errorf("grammar: build url: %w", err)
	}
	encoded, err := json.Marshal(grammarRequest{Text: text, Context: contextText, Language: c.language})
	if err != nil {
		return text, false, fmt.Errorf("grammar: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return text, false, fmt.Errorf("grammar: request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return text, false, fmt.Errorf("grammar: request failed: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return text, false, fmt.Errorf("grammar: read body: %w", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return text, false, fmt.Errorf("grammar: http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var parsed grammarResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return text, false, fmt.Errorf("grammar: decode response: %w", err)
	}
	if parsed.Error != "" {
		return text, false, fmt.Errorf("grammar: service error: %s", parsed.Error)
	}
	if parsed.Text == "" {
		return text, false, nil
	}
	return parsed.Text, parsed.Text != text, nil
}

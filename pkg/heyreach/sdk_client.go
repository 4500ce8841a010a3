package heyreach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/net/http/httpguts"
	logf "sigs.k8s.io/controller-runtime/pkg/log"

	"go.miloapis.com/outreach-provider-heyreach/pkg/version"
)

const (
	defaultBaseURL = "https://api.heyreach.io"
	apiKeyHeader   = "X-API-KEY"
)

// Client is the HeyReach API client. It holds no credentials; every call
// takes the API key to use.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// ClientOption defines a functional option for configuring the Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL for the client.
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client. Its timeout bounds every call.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// NewSDK creates a new HeyReach API client.
func NewSDK(opts ...ClientOption) (*Client, error) {
	c := &Client{
		baseURL:    defaultBaseURL,
		userAgent:  version.Get().UserAgent(),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.baseURL == "" {
		return nil, fmt.Errorf("base url is required")
	}
	if c.httpClient == nil {
		return nil, fmt.Errorf("http client is required")
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")

	return c, nil
}

// sendRequest performs one round trip and decodes a successful body into out.
func (c *Client) sendRequest(ctx context.Context, method, path, apiKey string, body any, out any) error {
	respBody, err := c.do(ctx, method, path, apiKey, body, true)
	if err != nil {
		return err
	}

	if !utf8.Valid(respBody) {
		return stageError(ErrorKindUnknown, "invalid UTF-8 in response", nil)
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return stageError(ErrorKindUnknown, "failed to decode response", err)
	}
	return nil
}

// sendRequestEmpty performs one round trip and discards a successful body.
func (c *Client) sendRequestEmpty(ctx context.Context, method, path, apiKey string, body any) error {
	_, err := c.do(ctx, method, path, apiKey, body, false)
	return err
}

func (c *Client) do(ctx context.Context, method, path, apiKey string, body any, keepBody bool) ([]byte, error) {
	log := logf.FromContext(ctx).WithName("heyreach").WithValues("method", method, "path", path)

	if !httpguts.ValidHeaderFieldValue(apiKey) {
		return nil, stageError(ErrorKindUnknown, "failed to set api key header", nil)
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, stageError(ErrorKindBadRequest, "failed to marshal request body", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, stageError(ErrorKindUnknown, "failed to create request", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, apiKey)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	log.V(1).Info("Sending request")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, stageError(ErrorKindUnknown, "failed to execute request", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		log.V(1).Info("Request failed", "status", resp.StatusCode, "bytes", len(respBody))
		return nil, &Error{
			Kind:       kindForStatus(resp.StatusCode),
			Message:    errorMessage(resp.StatusCode, respBody),
			StatusCode: resp.StatusCode,
		}
	}

	if !keepBody {
		n, _ := io.Copy(io.Discard, resp.Body)
		log.V(1).Info("Request succeeded", "status", resp.StatusCode, "bytes", n)
		return nil, nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, stageError(ErrorKindUnknown, "failed to read response", err)
	}
	log.V(1).Info("Request succeeded", "status", resp.StatusCode, "bytes", len(respBody))

	return respBody, nil
}

// errorMessage extracts a human readable message from an error response body.
func errorMessage(status int, body []byte) string {
	fallback := fmt.Sprintf("HTTP %d", status)
	if !utf8.Valid(body) {
		return fallback
	}

	text := string(body)
	if strings.TrimSpace(text) == "" {
		return fallback
	}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return text
	}

	switch v := parsed.(type) {
	case string:
		return v
	case map[string]any:
		for _, key := range []string{"detail", "errorMessage", "message"} {
			if msg, ok := v[key].(string); ok && msg != "" {
				return msg
			}
		}
	}
	return fallback
}

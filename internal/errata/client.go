package errata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"etctl/pkg/logging"
)

const defaultBaseURL = "https://errata.devel.redhat.com"

// Response is the outcome of one API request: the HTTP status code and the
// raw body. Decode the body with JSON when a structured payload is expected.
type Response struct {
	StatusCode int
	Body       []byte
}

// JSON decodes the response body into v.
func (r *Response) JSON(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}

// ErrorDetail extracts the server-reported error message from the body.
// The Errata Tool reports errors as {"error": ...} or {"errors": ...};
// when neither is present the raw body is returned so the operator still
// sees what the server said.
func (r *Response) ErrorDetail() string {
	var payload struct {
		Error  interface{} `json:"error"`
		Errors interface{} `json:"errors"`
	}
	if err := json.Unmarshal(r.Body, &payload); err == nil {
		if payload.Error != nil {
			return fmt.Sprintf("%v", payload.Error)
		}
		if payload.Errors != nil {
			return fmt.Sprintf("%v", payload.Errors)
		}
	}
	return strings.TrimSpace(string(r.Body))
}

// Client is the Errata Tool API client. Requests are issued strictly
// sequentially by callers; the client itself holds no mutable state beyond
// the underlying http.Client connection pool.
type Client struct {
	BaseURL string

	token      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. Tests use this to
// point the client at an httptest server transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithToken sets the bearer token used for authentication.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// NewClient creates a client for the given server base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 5 * time.Minute},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClientFromEnv creates a client configured from ERRATA_TOOL_URL and
// ERRATA_TOOL_TOKEN.
func NewClientFromEnv() *Client {
	baseURL := os.Getenv("ERRATA_TOOL_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return NewClient(baseURL, WithToken(os.Getenv("ERRATA_TOOL_TOKEN")))
}

// Get issues a GET request to the endpoint with the given query parameters.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) (*Response, error) {
	return c.do(ctx, http.MethodGet, endpoint, params, nil)
}

// Post issues a POST request with a JSON-encoded body.
func (c *Client) Post(ctx context.Context, endpoint string, body interface{}) (*Response, error) {
	return c.do(ctx, http.MethodPost, endpoint, nil, body)
}

// Put issues a PUT request with a JSON-encoded body.
func (c *Client) Put(ctx context.Context, endpoint string, body interface{}) (*Response, error) {
	return c.do(ctx, http.MethodPut, endpoint, nil, body)
}

// Delete issues a DELETE request to the endpoint.
func (c *Client) Delete(ctx context.Context, endpoint string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil)
}

func (c *Client) do(ctx context.Context, method, endpoint string, params url.Values, body interface{}) (*Response, error) {
	reqURL := c.BaseURL + "/" + strings.TrimLeft(endpoint, "/")
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s body: %w", method, endpoint, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("building %s %s request: %w", method, endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s %s response: %w", method, endpoint, err)
	}

	logging.Debug("Client", "%s %s -> %d (%s)", method, endpoint, resp.StatusCode, time.Since(start).Round(time.Millisecond))

	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}

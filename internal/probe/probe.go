// Package probe checks that a profile's endpoint answers and classifies the
// failure when it does not.
package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ccconfig/config/models"
	"ccconfig/internal/utils"
)

// DefaultTimeout bounds a single probe
const DefaultTimeout = 10 * time.Second

const maxBodyBytes = 4096

// Result is the outcome of one probe
type Result struct {
	Profile     string `json:"profile"`
	URL         string `json:"url"`
	Method      string `json:"requestMethod"`
	StatusCode  int    `json:"statusCode,omitempty"`
	StatusText  string `json:"statusText,omitempty"`
	DurationMs  int64  `json:"durationMs"`
	TimeoutMs   int64  `json:"timeoutMs"`
	Success     bool   `json:"success"`
	Reachable   bool   `json:"reachable"`
	Category    string `json:"category,omitempty"`
	UserMessage string `json:"userMessage,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Prober sends the probe requests
type Prober struct {
	client  *http.Client
	timeout time.Duration
	method  string
	now     func() time.Time
}

// Option configures a Prober
type Option func(*Prober)

// WithTimeout sets the request timeout
func WithTimeout(d time.Duration) Option {
	return func(p *Prober) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithMethod sets the HTTP method, HEAD by default
func WithMethod(method string) Option {
	return func(p *Prober) {
		if method != "" {
			p.method = strings.ToUpper(method)
		}
	}
}

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(p *Prober) {
		p.client = c
	}
}

// New creates a Prober
func New(opts ...Option) *Prober {
	p := &Prober{
		timeout: DefaultTimeout,
		method:  http.MethodHead,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.client == nil {
		p.client = &http.Client{
			Timeout: p.timeout,
			Transport: &http.Transport{
				Proxy:                 http.ProxyFromEnvironment,
				MaxIdleConns:          10,
				IdleConnTimeout:       30 * time.Second,
				TLSHandshakeTimeout:   5 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		}
	}
	return p
}

// Probe requests the profile's base URL with its bearer token. Transport
// failures are reported in the Result; the error is only for unusable input.
func (p *Prober) Probe(ctx context.Context, name string, profile models.Profile) (*Result, error) {
	baseURL := strings.TrimSpace(profile.BaseURL)
	if baseURL == "" {
		baseURL = models.DefaultBaseURL
	}
	if !utils.ValidateURL(baseURL) {
		return nil, fmt.Errorf("invalid URL format: %s", baseURL)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, p.method, baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if profile.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+profile.AuthToken)
	}

	result := &Result{
		Profile:   name,
		URL:       baseURL,
		Method:    p.method,
		TimeoutMs: p.timeout.Milliseconds(),
	}

	start := p.now()
	resp, err := p.client.Do(req)
	result.DurationMs = p.now().Sub(start).Milliseconds()
	if err != nil {
		result.Category = CategoryNetworkError
		result.UserMessage = UserMessage(CategoryNetworkError)
		result.Error = describeTransportError(err, p.timeout)
		return result, nil
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))

	result.Reachable = true
	result.StatusCode = resp.StatusCode
	result.StatusText = http.StatusText(resp.StatusCode)
	result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
	if !result.Success {
		result.Category = CategorizeStatus(resp.StatusCode, body)
		result.UserMessage = UserMessage(result.Category)
	}
	return result, nil
}

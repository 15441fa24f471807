package client

import (
	"compress/gzip"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "devsalary/1.0 (+https://github.com/fr4nk3nst1ner/devsalary)"
	maxErrorBody     = 4096
)

// Config describes how API requests are sent
type Config struct {
	ProxyURL          string
	Timeout           time.Duration
	UserAgent         string
	RequestsPerSecond float64 // 0 disables pacing
	HTTPClient        *http.Client
}

// Client performs paced JSON GET requests against the job board APIs
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
}

// StatusError is returned when an API answers with a 4xx or 5xx status
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("API error (%d)", e.StatusCode)
	}
	return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Body)
}

// New builds a Client from cfg
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = CreateProxyHTTPClient(cfg.ProxyURL, timeout)
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	return &Client{
		httpClient: httpClient,
		limiter:    limiter,
		userAgent:  userAgent,
	}
}

// CreateProxyHTTPClient creates an HTTP client with proxy support
func CreateProxyHTTPClient(proxyURL string, timeout time.Duration) *http.Client {
	if proxyURL == "" {
		return CreateHTTPClient(timeout)
	}

	proxy, err := url.Parse(proxyURL)
	if err != nil {
		return CreateHTTPClient(timeout)
	}

	transport := newTransport()
	transport.Proxy = http.ProxyURL(proxy)

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// CreateHTTPClient creates a standard HTTP client
func CreateHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: newTransport(),
		Timeout:   timeout,
	}
}

func newTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 10,
		ForceAttemptHTTP2:   true,
	}
}

// GetJSON sends a GET request and decodes the JSON body into out
func (c *Client) GetJSON(ctx context.Context, rawURL string, header http.Header, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	for key, values := range header {
		req.Header[key] = values
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := ReadResponseBody(resp)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// ReadResponseBody reads the response body, handling gzip compression if necessary
func ReadResponseBody(resp *http.Response) ([]byte, error) {
	var reader io.ReadCloser
	var err error

	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		reader, err = gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer reader.Close()
	default:
		reader = resp.Body
	}

	return io.ReadAll(reader)
}

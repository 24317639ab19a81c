package notion

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Client defines the database operations the sync engine needs.
type Client interface {
	// QueryDatabase returns the first page of rows matching the request.
	QueryDatabase(ctx context.Context, databaseID string, req QueryRequest) ([]Page, error)
	// CreatePage adds a row to the database.
	CreatePage(ctx context.Context, databaseID string, props Properties) (*Page, error)
	// UpdatePage rewrites the given properties of an existing row.
	UpdatePage(ctx context.Context, pageID string, props Properties) (*Page, error)
}

type httpClient struct {
	baseURL string
	token   string
	version string
	http    *http.Client
}

// NewClient creates a new API client based on the configuration.
func NewClient(cfg Config) (Client, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, ErrMissingToken
	}

	base := strings.TrimRight(cfg.BaseURL, "/")
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("notion: invalid base url %q: %w", cfg.BaseURL, err)
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &httpClient{
		baseURL: base,
		token:   cfg.Token,
		version: cfg.Version,
		http:    &http.Client{Transport: transport},
	}, nil
}

func (c *httpClient) QueryDatabase(ctx context.Context, databaseID string, req QueryRequest) ([]Page, error) {
	var resp QueryResponse
	if err := c.do(ctx, http.MethodPost, "/databases/"+url.PathEscape(databaseID)+"/query", req, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (c *httpClient) CreatePage(ctx context.Context, databaseID string, props Properties) (*Page, error) {
	body := createPageRequest{
		Parent:     parent{Type: "database_id", DatabaseID: databaseID},
		Properties: props,
	}
	var page Page
	if err := c.do(ctx, http.MethodPost, "/pages", body, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *httpClient) UpdatePage(ctx context.Context, pageID string, props Properties) (*Page, error) {
	var page Page
	if err := c.do(ctx, http.MethodPatch, "/pages/"+url.PathEscape(pageID), updatePageRequest{Properties: props}, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *httpClient) do(ctx context.Context, method, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("notion: encode %s %s: %w", method, path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("notion: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", c.version)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrRemoteCall, method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read %s %s: %w", ErrRemoteCall, method, path, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		if jsonErr := json.Unmarshal(data, apiErr); jsonErr != nil || apiErr.Code == "" {
			apiErr.Code = http.StatusText(resp.StatusCode)
			apiErr.Message = strings.TrimSpace(string(data))
		}
		apiErr.Status = resp.StatusCode
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decode %s %s: %w", ErrRemoteCall, method, path, err)
	}
	return nil
}

package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"resty.dev/v3"
)

// Client talks to the read-only catalog API.
type Client interface {
	// FetchPage fetches one list page. Transport failures and non-2xx
	// responses are returned as errors; an empty page is not an error.
	FetchPage(ctx context.Context, limit, offset int) (*ListPage, error)
	// FetchDetail fetches a single detail record from an opaque URL taken
	// from a list page.
	FetchDetail(ctx context.Context, url string) (*Detail, error)
	// Close releases idle connections.
	Close() error
}

type restyClient struct {
	http    *resty.Client
	listURL string
}

// NewClient creates a resty-backed Client. No retries are configured: a
// failed request is reported once and the caller decides what to skip.
func NewClient(cfg Config) Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}

	httpClient := resty.New().
		SetTimeout(time.Duration(timeout)*time.Second).
		SetHeader("Accept", "application/json")
	if cfg.UserAgent != "" {
		httpClient.SetHeader("User-Agent", cfg.UserAgent)
	}

	return &restyClient{
		http:    httpClient,
		listURL: strings.TrimRight(cfg.BaseURL, "/") + "/" + strings.TrimLeft(cfg.ListPath, "/"),
	}
}

func (c *restyClient) FetchPage(ctx context.Context, limit, offset int) (*ListPage, error) {
	var page ListPage

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetQueryParam("offset", strconv.Itoa(offset)).
		Get(c.listURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch list page: %w", err)
	}
	if !isSuccess(resp.StatusCode()) {
		return nil, &StatusError{URL: c.listURL, StatusCode: resp.StatusCode()}
	}
	if err := json.Unmarshal([]byte(resp.String()), &page); err != nil {
		return nil, fmt.Errorf("failed to decode list page: %w", err)
	}

	return &page, nil
}

func (c *restyClient) FetchDetail(ctx context.Context, url string) (*Detail, error) {
	var detail Detail

	resp, err := c.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch detail %s: %w", url, err)
	}
	if !isSuccess(resp.StatusCode()) {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode()}
	}
	if err := json.Unmarshal([]byte(resp.String()), &detail); err != nil {
		return nil, fmt.Errorf("failed to decode detail %s: %w", url, err)
	}

	return &detail, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func (c *restyClient) Close() error {
	return c.http.Close()
}

package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// Config describes one analysis source profile.
type Config struct {
	BaseURL   string
	UserAgent string
	Token     string
}

// AnalysisClient fetches analysis payloads from a remote analysis API.
type AnalysisClient struct {
	http *retryablehttp.Client
	cfg  Config
}

func NewAnalysisClient(cfg Config) (*AnalysisClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", cfg.BaseURL, err)
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.HTTPClient.Timeout = 30 * time.Second
	rc.Logger = nil

	return &AnalysisClient{http: rc, cfg: cfg}, nil
}

// GetAnalysis returns the raw analysis payload for an accession
// number. The payload is passed through as-is; ingestion owns decoding
// and repair.
func (c *AnalysisClient) GetAnalysis(ctx context.Context, accession string) ([]byte, error) {
	if accession == "" {
		return nil, fmt.Errorf("accession is required")
	}

	endpoint := fmt.Sprintf("%s/api/analyses/%s", c.cfg.BaseURL, url.PathEscape(accession))
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", accession, err)
	}
	c.applyHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch analysis %s: %w", accession, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("analysis %s not found at source", accession)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch analysis %s: unexpected status %s", accession, resp.Status)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read analysis %s: %w", accession, err)
	}
	return payload, nil
}

// ListAccessions returns the accession numbers the source currently
// exposes.
func (c *AnalysisClient) ListAccessions(ctx context.Context) ([]string, error) {
	endpoint := fmt.Sprintf("%s/api/analyses", c.cfg.BaseURL)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build list request: %w", err)
	}
	c.applyHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list analyses: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read accession list: %w", err)
	}
	return decodeAccessionList(body)
}

func (c *AnalysisClient) applyHeaders(req *retryablehttp.Request) {
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}
	req.Header.Set("Accept", "application/json")
}

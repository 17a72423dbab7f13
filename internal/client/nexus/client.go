package nexus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"nexus-export-cache/internal/config"
	"nexus-export-cache/internal/interfaces"
	"nexus-export-cache/internal/models"
)

// Ensure Client implements interfaces.ExportClient
var _ interfaces.ExportClient = (*Client)(nil)

// maxErrorBody caps how much of an error response body is kept
const maxErrorBody = 4096

// ErrMissingLastModified is returned when the API response has no usable Last-Modified header
var ErrMissingLastModified = errors.New("export response has no valid Last-Modified header")

// HTTPError captures unexpected status codes and response bodies
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status code: %d, body: %s", e.StatusCode, string(e.Body))
}

// userAgentRoundTripper adds a User-Agent header to every request
type userAgentRoundTripper struct {
	wrapped   http.RoundTripper
	userAgent string
}

func (rt *userAgentRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", rt.userAgent)
	return rt.wrapped.RoundTrip(clone)
}

// Client fetches the full mod export from the export API
type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewClient creates an export API client. A nil base client means a fresh http.Client.
func NewClient(cfg *config.ClientConfig, base *http.Client, logger *zap.Logger) *Client {
	if base == nil {
		base = &http.Client{}
	}
	transport := base.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	httpClient := &http.Client{
		Transport: &userAgentRoundTripper{
			wrapped:   transport,
			userAgent: cfg.UserAgent,
		},
		Timeout:       time.Duration(cfg.TimeoutMs) * time.Millisecond,
		CheckRedirect: base.CheckRedirect,
		Jar:           base.Jar,
	}

	return &Client{
		baseURL: cfg.BaseURL,
		client:  httpClient,
		logger:  logger,
	}
}

// FetchLastModifiedDate returns the export's Last-Modified date using a HEAD request
func (c *Client) FetchLastModifiedDate(ctx context.Context) (time.Time, error) {
	resp, err := c.do(ctx, http.MethodHead)
	if err != nil {
		return time.Time{}, err
	}
	defer resp.Body.Close()

	return parseLastModified(resp)
}

// FetchFullExport downloads and decodes the full export
func (c *Client) FetchFullExport(ctx context.Context) (*models.FullExport, error) {
	resp, err := c.do(ctx, http.MethodGet)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	lastModified, err := parseLastModified(resp)
	if err != nil {
		return nil, err
	}

	var export models.FullExport
	if err := json.NewDecoder(resp.Body).Decode(&export); err != nil {
		return nil, fmt.Errorf("failed to decode export: %w", err)
	}
	export.LastUpdated = lastModified
	if export.Data == nil {
		export.Data = map[uint32]models.ModExport{}
	}

	c.logger.Info("Fetched full export",
		zap.Int("entries", len(export.Data)),
		zap.Time("last_modified", lastModified))

	return &export, nil
}

// do sends a request to the export URL and checks the status code
func (c *Client) do(ctx context.Context, method string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", method, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("export API %s request failed: %w", method, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Warn("Export API returned unexpected status",
			zap.String("method", method),
			zap.Int("status", resp.StatusCode))
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: body}
	}

	return resp, nil
}

func parseLastModified(resp *http.Response) (time.Time, error) {
	header := resp.Header.Get("Last-Modified")
	if header == "" {
		return time.Time{}, ErrMissingLastModified
	}

	lastModified, err := http.ParseTime(header)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMissingLastModified, header)
	}
	return lastModified.UTC(), nil
}

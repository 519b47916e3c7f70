package gist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
)

// Client talks to the GitHub Gists API. It holds only fixed configuration;
// every call is a single round trip with no shared state, so a Client is safe
// for concurrent use. Conflicting writes to the same gist race at the API
// level and are the caller's problem to sequence.
type Client struct {
	baseURL    *url.URL
	token      string
	httpClient *http.Client
	logger     *slog.Logger

	closeOnce sync.Once
}

// Config holds configuration for creating a new Client.
type Config struct {
	// Token is the GitHub authorization token, sent as "token <TOKEN>".
	Token string
	// BaseURL overrides the Gists API root. Defaults to DefaultBaseURL.
	BaseURL string
	// HTTPClient overrides the underlying HTTP client.
	HTTPClient *http.Client
	// Logger receives debug logging for issued requests.
	Logger *slog.Logger
}

// NewClient creates a new Gists API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if cfg.Token == "" {
		cfg.Logger.Warn("Auth token is empty. Authenticated operations will fail.")
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	return &Client{
		baseURL:    baseURL,
		token:      cfg.Token,
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
	}, nil
}

// Close releases idle connections held by the underlying HTTP client. It is
// idempotent and safe to call multiple times.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.httpClient.CloseIdleConnections()
	})
}

// do issues one request against the Gists API root. path is appended to the
// base URL, payload (if any) is sent as a JSON body. A 2xx response yields
// the raw body, with an empty body yielding nil rather than an error. Any
// other status yields an error from the taxonomy in errors.go with the
// response text attached.
func (c *Client) do(ctx context.Context, method, path string, payload any, query url.Values) (json.RawMessage, error) {
	u := *c.baseURL
	u.Path += path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Authorization", "token "+c.token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("issuing request", "method", method, "url", u.String())
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newHTTPError(resp, body)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	return json.RawMessage(body), nil
}

// fileContent is the only file attribute the API accepts on writes. Other
// File fields are read-only and must not appear in outgoing payloads.
type fileContent struct {
	Content string `json:"content"`
}

func filesPayload(files []File) (map[string]fileContent, error) {
	payload := make(map[string]fileContent, len(files))
	for _, f := range files {
		if f.Filename == "" {
			return nil, fmt.Errorf("file is missing a filename")
		}
		if f.Content == nil {
			return nil, fmt.Errorf("file %q is missing content", f.Filename)
		}
		payload[f.Filename] = fileContent{Content: *f.Content}
	}
	return payload, nil
}

// Create posts a new gist with the given files.
func (c *Client) Create(ctx context.Context, description string, public bool, files ...File) (*Gist, error) {
	fp, err := filesPayload(files)
	if err != nil {
		return nil, err
	}
	payload := map[string]any{
		"description": description,
		"public":      public,
		"files":       fp,
	}
	raw, err := c.do(ctx, http.MethodPost, "", payload, nil)
	if err != nil {
		return nil, err
	}
	return decodeGist(c, raw)
}

// Get fetches a gist by id or URL.
func (c *Client) Get(ctx context.Context, idOrURL string) (*Gist, error) {
	raw, err := c.do(ctx, http.MethodGet, "/"+CleanID(idOrURL), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeGist(c, raw)
}

// Update edits a gist's description and files. Files are upserted by
// filename; files not named are left untouched by the API.
func (c *Client) Update(ctx context.Context, idOrURL, description string, files ...File) (*Gist, error) {
	fp, err := filesPayload(files)
	if err != nil {
		return nil, err
	}
	payload := map[string]any{
		"description": description,
		"files":       fp,
	}
	raw, err := c.do(ctx, http.MethodPatch, "/"+CleanID(idOrURL), payload, nil)
	if err != nil {
		return nil, err
	}
	return decodeGist(c, raw)
}

// Delete removes a gist.
func (c *Client) Delete(ctx context.Context, idOrURL string) error {
	_, err := c.do(ctx, http.MethodDelete, "/"+CleanID(idOrURL), nil, nil)
	return err
}

// Star stars a gist for the authenticated user.
func (c *Client) Star(ctx context.Context, idOrURL string) error {
	_, err := c.do(ctx, http.MethodPut, "/"+CleanID(idOrURL)+"/star", nil, nil)
	return err
}

// Unstar removes the authenticated user's star from a gist.
func (c *Client) Unstar(ctx context.Context, idOrURL string) error {
	_, err := c.do(ctx, http.MethodDelete, "/"+CleanID(idOrURL)+"/star", nil, nil)
	return err
}

// Fork forks a gist into the authenticated user's account.
func (c *Client) Fork(ctx context.Context, idOrURL string) (*Gist, error) {
	raw, err := c.do(ctx, http.MethodPost, "/"+CleanID(idOrURL)+"/forks", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeGist(c, raw)
}

// Comments lists comments on a gist in the order the API returns them.
// perPage defaults to 30 and is capped at 100; page defaults to 1. The
// values are passed through as query parameters, pagination itself is left
// to the caller.
func (c *Client) Comments(ctx context.Context, idOrURL string, perPage, page int) ([]*Comment, error) {
	if perPage <= 0 {
		perPage = 30
	}
	if perPage > 100 {
		perPage = 100
	}
	if page <= 0 {
		page = 1
	}
	gistID := CleanID(idOrURL)
	query := url.Values{}
	query.Set("per_page", strconv.Itoa(perPage))
	query.Set("page", strconv.Itoa(page))
	raw, err := c.do(ctx, http.MethodGet, "/"+gistID+"/comments", nil, query)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode comment list: %w", err)
	}
	comments := make([]*Comment, 0, len(items))
	for _, item := range items {
		cm, err := decodeComment(c, gistID, item)
		if err != nil {
			return nil, err
		}
		comments = append(comments, cm)
	}
	return comments, nil
}

// CreateComment posts a comment on a gist.
func (c *Client) CreateComment(ctx context.Context, idOrURL, body string) (*Comment, error) {
	gistID := CleanID(idOrURL)
	raw, err := c.do(ctx, http.MethodPost, "/"+gistID+"/comments", map[string]string{"body": body}, nil)
	if err != nil {
		return nil, err
	}
	return decodeComment(c, gistID, raw)
}

// UpdateComment edits a comment's body.
func (c *Client) UpdateComment(ctx context.Context, idOrURL string, commentID int64, body string) (*Comment, error) {
	gistID := CleanID(idOrURL)
	path := fmt.Sprintf("/%s/comments/%d", gistID, commentID)
	raw, err := c.do(ctx, http.MethodPatch, path, map[string]string{"body": body}, nil)
	if err != nil {
		return nil, err
	}
	return decodeComment(c, gistID, raw)
}

// DeleteComment removes a comment.
func (c *Client) DeleteComment(ctx context.Context, idOrURL string, commentID int64) error {
	path := fmt.Sprintf("/%s/comments/%d", CleanID(idOrURL), commentID)
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}

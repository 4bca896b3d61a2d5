// Package hub implements a minimal client for the Hugging Face Hub http api.
// It lists trending models and datasets and downloads single repository files.
package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/umputun/hfbriefer/pkg/config"
)

const maxDownloadSize = 16 << 20

// Client talks to the hub api
type Client struct {
	client    *http.Client
	baseURL   string
	token     string
	userAgent string
}

// NewClient creates a hub client for the given config
func NewClient(cfg config.HubConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 5,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		token:     cfg.Token,
		userAgent: "hfbriefer/1.0",
	}
}

// ListTrending returns up to limit entries of the given repo type, ordered by trending score descending
func (c *Client) ListTrending(ctx context.Context, repoType RepoType, limit int) ([]Entry, error) {
	path := "/api/models"
	if repoType == RepoDataset {
		path = "/api/datasets"
	}

	q := url.Values{}
	q.Set("sort", "trendingScore")
	q.Set("direction", "-1")
	q.Set("limit", strconv.Itoa(limit))
	q.Set("full", "true")
	q.Set("cardData", "true")

	body, err := c.get(ctx, c.baseURL+path+"?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("list trending %ss: %w", repoType, err)
	}
	defer body.Close()

	var entries []Entry
	if err := json.NewDecoder(body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode trending %ss: %w", repoType, err)
	}
	return entries, nil
}

// Download fetches a single file of the repo into destDir and returns the local path
func (c *Client) Download(ctx context.Context, repoID string, repoType RepoType, filename, destDir string) (string, error) {
	if repoID == "" || filename == "" {
		return "", fmt.Errorf("repo id and filename are required")
	}

	body, err := c.get(ctx, c.fileURL(repoID, repoType, filename))
	if err != nil {
		return "", fmt.Errorf("download %s from %s: %w", filename, repoID, err)
	}
	defer body.Close()

	localPath := filepath.Join(destDir, filepath.Base(filename))
	f, err := os.Create(localPath) //nolint:gosec // path is built from our temp dir
	if err != nil {
		return "", fmt.Errorf("create %s: %w", localPath, err)
	}

	n, err := io.Copy(f, io.LimitReader(body, maxDownloadSize+1))
	if closeErr := f.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return "", fmt.Errorf("write %s: %w", localPath, err)
	}
	if n > maxDownloadSize {
		return "", fmt.Errorf("file %s of %s exceeds %d bytes", filename, repoID, maxDownloadSize)
	}
	return localPath, nil
}

// fileURL makes resolve url, datasets live under their own prefix
func (c *Client) fileURL(repoID string, repoType RepoType, filename string) string {
	parts := strings.Split(repoID, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	prefix := ""
	if repoType == RepoDataset {
		prefix = "/datasets"
	}
	return fmt.Sprintf("%s%s/%s/resolve/main/%s", c.baseURL, prefix, strings.Join(parts, "/"), url.PathEscape(filename))
}

// get performs a GET request and returns body for 2xx responses
func (c *Client) get(ctx context.Context, reqURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return resp.Body, nil
}

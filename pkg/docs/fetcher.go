// Package docs retrieves the README of a registry item, bounded in size.
package docs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/hfbriefer/pkg/domain"
	"github.com/umputun/hfbriefer/pkg/hub"
)

const (
	readmeFile = "README.md"

	// MaxLength is the README cap in characters, keeps the LLM prompt bounded
	MaxLength = 20000

	// TruncationMarker is appended to capped documentation
	TruncationMarker = "\n\n[... truncated ...]"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store downloads a single repository file into destDir and returns its local path
type Store interface {
	Download(ctx context.Context, repoID string, repoType hub.RepoType, filename, destDir string) (string, error)
}

// Fetcher gets documentation for registry items
type Fetcher struct {
	store   Store
	tempDir string // parent of per-call temp dirs, empty for os default
}

// NewFetcher makes a documentation fetcher on top of the store
func NewFetcher(store Store) *Fetcher {
	return &Fetcher{store: store}
}

// FetchDocs returns README content of the item. Any failure is reported as absence, never as an error.
func (f *Fetcher) FetchDocs(ctx context.Context, repoID string, kind domain.ItemKind) (string, bool) {
	content, err := f.fetch(ctx, repoID, kind)
	if err != nil {
		lgr.Printf("[WARN] could not fetch README for %s: %v", repoID, err)
		return "", false
	}
	lgr.Printf("[INFO] fetched README for %s (%d chars)", repoID, utf8.RuneCountInString(content))
	return content, true
}

func (f *Fetcher) fetch(ctx context.Context, repoID string, kind domain.ItemKind) (string, error) {
	dir, err := os.MkdirTemp(f.tempDir, "hfbriefer-docs-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			lgr.Printf("[WARN] failed to remove temp dir %s: %v", dir, err)
		}
	}()

	path, err := f.store.Download(ctx, repoID, repoTypeFor(kind), readmeFile, dir)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path) //nolint:gosec // path returned by store inside our temp dir
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", errors.New("README is not valid utf-8")
	}
	if len(data) == 0 {
		return "", errors.New("README is empty")
	}

	return capLength(repoID, string(data)), nil
}

// repoTypeFor maps dataset kind to dataset repos, everything else to model repos
func repoTypeFor(kind domain.ItemKind) hub.RepoType {
	if kind == domain.KindDataset {
		return hub.RepoDataset
	}
	return hub.RepoModel
}

// capLength truncates content longer than MaxLength characters and appends TruncationMarker
func capLength(repoID, content string) string {
	count := utf8.RuneCountInString(content)
	if count <= MaxLength {
		return content
	}
	lgr.Printf("[INFO] README for %s is %d chars, truncating to %d", repoID, count, MaxLength)
	return string([]rune(content)[:MaxLength]) + TruncationMarker
}

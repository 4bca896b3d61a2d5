package docs

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/hfbriefer/pkg/config"
	"github.com/umputun/hfbriefer/pkg/docs/mocks"
	"github.com/umputun/hfbriefer/pkg/domain"
	"github.com/umputun/hfbriefer/pkg/hub"
)

// storeWith returns a store mock writing content into destDir
func storeWith(content []byte) *mocks.StoreMock {
	return &mocks.StoreMock{
		DownloadFunc: func(_ context.Context, _ string, _ hub.RepoType, filename, destDir string) (string, error) {
			path := filepath.Join(destDir, filename)
			if err := os.WriteFile(path, content, 0o600); err != nil {
				return "", err
			}
			return path, nil
		},
	}
}

func TestFetcher_FetchDocs(t *testing.T) {
	t.Run("short readme returned unmodified", func(t *testing.T) {
		readme := "# Model\n\nSome text with unicode: ✓"
		f := NewFetcher(storeWith([]byte(readme)))
		res, ok := f.FetchDocs(context.Background(), "org/model", domain.KindModel)
		require.True(t, ok)
		assert.Equal(t, readme, res)
	})

	t.Run("exactly at cap returned unmodified", func(t *testing.T) {
		readme := strings.Repeat("a", MaxLength)
		f := NewFetcher(storeWith([]byte(readme)))
		res, ok := f.FetchDocs(context.Background(), "org/model", domain.KindModel)
		require.True(t, ok)
		assert.Equal(t, readme, res)
	})

	t.Run("long readme truncated with marker", func(t *testing.T) {
		readme := strings.Repeat("b", MaxLength+500)
		f := NewFetcher(storeWith([]byte(readme)))
		res, ok := f.FetchDocs(context.Background(), "org/model", domain.KindModel)
		require.True(t, ok)
		assert.Equal(t, strings.Repeat("b", MaxLength)+TruncationMarker, res)
	})

	t.Run("cap counts characters not bytes", func(t *testing.T) {
		readme := strings.Repeat("ж", MaxLength) // 2 bytes each
		f := NewFetcher(storeWith([]byte(readme)))
		res, ok := f.FetchDocs(context.Background(), "org/model", domain.KindModel)
		require.True(t, ok)
		assert.Equal(t, readme, res)

		f = NewFetcher(storeWith([]byte(readme + "жж")))
		res, ok = f.FetchDocs(context.Background(), "org/model", domain.KindModel)
		require.True(t, ok)
		assert.Equal(t, readme+TruncationMarker, res)
	})

	t.Run("download failure is absence", func(t *testing.T) {
		store := &mocks.StoreMock{
			DownloadFunc: func(context.Context, string, hub.RepoType, string, string) (string, error) {
				return "", errors.New("404 not found")
			},
		}
		f := NewFetcher(store)
		res, ok := f.FetchDocs(context.Background(), "org/missing", domain.KindDataset)
		assert.False(t, ok)
		assert.Empty(t, res)
		require.Len(t, store.DownloadCalls(), 1)
	})

	t.Run("invalid utf-8 is absence", func(t *testing.T) {
		f := NewFetcher(storeWith([]byte{0xff, 0xfe, 0xfd}))
		_, ok := f.FetchDocs(context.Background(), "org/model", domain.KindModel)
		assert.False(t, ok)
	})

	t.Run("empty readme is absence", func(t *testing.T) {
		f := NewFetcher(storeWith([]byte{}))
		_, ok := f.FetchDocs(context.Background(), "org/model", domain.KindModel)
		assert.False(t, ok)
	})
}

func TestFetcher_RepoTypeAndTempDir(t *testing.T) {
	store := storeWith([]byte("readme"))
	f := NewFetcher(store)
	f.tempDir = t.TempDir()

	_, ok := f.FetchDocs(context.Background(), "org/data", domain.KindDataset)
	require.True(t, ok)
	_, ok = f.FetchDocs(context.Background(), "org/model", domain.KindModel)
	require.True(t, ok)
	_, ok = f.FetchDocs(context.Background(), "org/other", domain.ItemKind("space"))
	require.True(t, ok)

	calls := store.DownloadCalls()
	require.Len(t, calls, 3)
	assert.Equal(t, hub.RepoDataset, calls[0].RepoType)
	assert.Equal(t, hub.RepoModel, calls[1].RepoType)
	assert.Equal(t, hub.RepoModel, calls[2].RepoType, "unknown kinds use model repos")
	for _, c := range calls {
		assert.Equal(t, "README.md", c.Filename)
	}

	// each call got its own dir, removed afterwards
	assert.NotEqual(t, calls[0].DestDir, calls[1].DestDir)
	for _, c := range calls {
		_, err := os.Stat(c.DestDir)
		assert.True(t, os.IsNotExist(err), "temp dir %s should be removed", c.DestDir)
	}
	entries, err := os.ReadDir(f.tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFetcher_WithHubClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/datasets/org/data/resolve/main/README.md" {
			_, _ = w.Write([]byte("# Dataset card"))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	f := NewFetcher(hub.NewClient(config.HubConfig{BaseURL: server.URL}))

	res, ok := f.FetchDocs(context.Background(), "org/data", domain.KindDataset)
	require.True(t, ok)
	assert.Equal(t, "# Dataset card", res)

	res, ok = f.FetchDocs(context.Background(), "org/nonexistent", domain.KindModel)
	assert.False(t, ok)
	assert.Empty(t, res)
}

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/hfbriefer/pkg/domain"
	"github.com/umputun/hfbriefer/pkg/repository"
	"github.com/umputun/hfbriefer/pkg/selector"
)

const llmReply = `{"title": "Tiny model, big ideas", "summary": "A small text model.", ` +
	`"ideas": ["Chat bot", "Ticket triage", "Email drafts", "Study helper", "Code hints"]}`

// fakeHub serves trending lists and README files
func fakeHub(t *testing.T, models string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/models":
			_, _ = w.Write([]byte(models))
		case "/api/datasets":
			_, _ = w.Write([]byte(`[]`))
		case "/org/tiny/resolve/main/README.md":
			_, _ = w.Write([]byte("# Tiny model\n\nSmall and fast."))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func fakeLLM(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Role: "assistant", Content: llmReply}}},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// setupEnv points the test config to fake services and a temp database
func setupEnv(t *testing.T, hubURL, llmURL, listen string) (configPath, dsn string) {
	t.Helper()
	dsn = "file:" + filepath.Join(t.TempDir(), "test.db") + "?mode=rwc&_txlock=immediate"
	t.Setenv("TEST_DSN", dsn)
	t.Setenv("TEST_HUB_URL", hubURL)
	t.Setenv("TEST_LLM_URL", llmURL)
	t.Setenv("TEST_LISTEN", listen)

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Join(wd, "testdata", "test_config.yml"), dsn
}

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid-config.yml")
	require.NoError(t, os.WriteFile(path, []byte("invalid: yaml: content: ["), 0o600))

	err := run(context.Background(), Opts{Config: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_Once(t *testing.T) {
	hubSrv := fakeHub(t, `[{"id": "org/tiny", "author": "org", "downloads": 10, "likes": 2, "tags": ["text-generation"]}]`)
	llmSrv := fakeLLM(t)
	configPath, dsn := setupEnv(t, hubSrv.URL, llmSrv.URL, "127.0.0.1:0")

	err := run(context.Background(), Opts{Config: configPath, Once: true})
	require.NoError(t, err)

	repos, err := repository.NewRepositories(context.Background(), repository.Config{DSN: dsn})
	require.NoError(t, err)
	defer repos.Close()

	reports, err := repos.Report.ListReports(context.Background(), domain.ReportFilter{})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "Tiny model, big ideas", reports[0].Title)
	assert.Equal(t, "org/tiny", reports[0].ItemName)
	assert.Equal(t, domain.KindModel, reports[0].ItemType)
	assert.Len(t, reports[0].Ideas, 5)
	assert.Contains(t, reports[0].Metadata, `"readme":"# Tiny model\n\nSmall and fast."`)

	// the only trending item is used now
	err = run(context.Background(), Opts{Config: configPath, Once: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, selector.ErrExhausted)
	assert.Contains(t, err.Error(), "failed to generate report")

	count, err := repos.Report.CountReports(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRun_ServerStartStop(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	hubSrv := fakeHub(t, `[]`)
	configPath, _ := setupEnv(t, hubSrv.URL, "http://127.0.0.1:1", fmt.Sprintf("127.0.0.1:%d", port))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- run(ctx, Opts{Config: configPath}) }()

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		return err == nil
	}, 5*time.Second, 50*time.Millisecond)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", string(body))

	// generate on demand, the hub has nothing trending
	resp, err = http.Post(fmt.Sprintf("http://127.0.0.1:%d/api/v1/generate", port), "application/json", http.NoBody)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("server shutdown timeout")
	}
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, &domain.Report{
		ID:       3,
		Title:    "Title",
		ItemName: "org/x",
		ItemType: domain.KindDataset,
		Summary:  strings.Repeat("s", 250),
		Ideas:    []string{"one", "two"},
	})

	out := buf.String()
	assert.Contains(t, out, "=== Final Report ===\nTitle: Title\nItem: org/x (dataset)\n")
	assert.Contains(t, out, "Summary: "+strings.Repeat("s", 200)+"...\n")
	assert.Contains(t, out, "  1. one\n  2. two\n")
	assert.Contains(t, out, "Report saved: Title (ID: 3)")
}

func TestSetupLog(t *testing.T) {
	setupLog(true, true, "secret-value")
	setupLog(false, false)
}

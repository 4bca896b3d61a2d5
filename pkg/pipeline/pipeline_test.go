package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/hfbriefer/pkg/domain"
	"github.com/umputun/hfbriefer/pkg/llm"
	"github.com/umputun/hfbriefer/pkg/pipeline/mocks"
	"github.com/umputun/hfbriefer/pkg/selector"
)

type testDeps struct {
	store     *mocks.ReportStoreMock
	selector  *mocks.SelectorMock
	docs      *mocks.DocsFetcherMock
	generator *mocks.GeneratorMock
}

func newTestPipeline() (*Pipeline, testDeps) {
	deps := testDeps{
		store: &mocks.ReportStoreMock{
			UsedItemNamesFunc: func(context.Context) (domain.UsedNames, error) {
				return domain.NewUsedNames("org/old"), nil
			},
			CreateReportFunc: func(_ context.Context, r *domain.Report) error {
				r.ID = 42
				return nil
			},
		},
		selector: &mocks.SelectorMock{
			SelectFunc: func(context.Context, domain.UsedNames) (domain.ItemMetadata, error) {
				return domain.ItemMetadata{ID: "org/new", Type: domain.KindDataset, Author: "org", Tags: []string{"nlp"}}, nil
			},
		},
		docs: &mocks.DocsFetcherMock{
			FetchDocsFunc: func(context.Context, string, domain.ItemKind) (string, bool) {
				return "# New dataset", true
			},
		},
		generator: &mocks.GeneratorMock{
			GenerateFunc: func(context.Context, domain.ItemMetadata) (domain.ReportDraft, error) {
				return domain.ReportDraft{Title: "New dataset", Summary: "About it", Ideas: []string{"a", "b", "c", "d", "e"}}, nil
			},
		},
	}
	p := New(Params{Store: deps.store, Selector: deps.selector, Docs: deps.docs, Generator: deps.generator})
	p.now = func() time.Time { return time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC) }
	return p, deps
}

func TestPipeline_Run(t *testing.T) {
	p, deps := newTestPipeline()

	report, err := p.Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, int64(42), report.ID)
	assert.Equal(t, "New dataset", report.Title)
	assert.Equal(t, "org/new", report.ItemName)
	assert.Equal(t, domain.KindDataset, report.ItemType)
	assert.Equal(t, "About it", report.Summary)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, report.Ideas)
	assert.Equal(t, time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC), report.CreatedAt)

	// used names passed to selector
	require.Len(t, deps.selector.SelectCalls(), 1)
	assert.True(t, deps.selector.SelectCalls()[0].Used.Contains("org/old"))

	// docs fetched for the selected item and attached to metadata given to llm
	require.Len(t, deps.docs.FetchDocsCalls(), 1)
	assert.Equal(t, "org/new", deps.docs.FetchDocsCalls()[0].RepoID)
	assert.Equal(t, domain.KindDataset, deps.docs.FetchDocsCalls()[0].Kind)
	require.Len(t, deps.generator.GenerateCalls(), 1)
	assert.Equal(t, "# New dataset", deps.generator.GenerateCalls()[0].Meta.Readme)

	// stored metadata includes the readme
	var stored map[string]any
	require.NoError(t, json.Unmarshal([]byte(report.Metadata), &stored))
	assert.Equal(t, "org/new", stored["id"])
	assert.Equal(t, "dataset", stored["type"])
	assert.Equal(t, "# New dataset", stored["readme"])
	require.Len(t, deps.store.CreateReportCalls(), 1)
}

func TestPipeline_RunWithoutReadme(t *testing.T) {
	p, deps := newTestPipeline()
	deps.docs.FetchDocsFunc = func(context.Context, string, domain.ItemKind) (string, bool) { return "", false }

	report, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.False(t, deps.generator.GenerateCalls()[0].Meta.HasReadme())
	var stored map[string]any
	require.NoError(t, json.Unmarshal([]byte(report.Metadata), &stored))
	_, hasReadme := stored["readme"]
	assert.False(t, hasReadme)
}

func TestPipeline_RunFailures(t *testing.T) {
	t.Run("used names error", func(t *testing.T) {
		p, deps := newTestPipeline()
		deps.store.UsedItemNamesFunc = func(context.Context) (domain.UsedNames, error) {
			return nil, errors.New("db is gone")
		}
		_, err := p.Run(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "load used item names")
		assert.Empty(t, deps.selector.SelectCalls())
		assert.Empty(t, deps.store.CreateReportCalls())
	})

	t.Run("exhausted", func(t *testing.T) {
		p, deps := newTestPipeline()
		deps.selector.SelectFunc = func(context.Context, domain.UsedNames) (domain.ItemMetadata, error) {
			return domain.ItemMetadata{}, fmt.Errorf("%w, try again later", selector.ErrExhausted)
		}
		_, err := p.Run(context.Background())
		require.ErrorIs(t, err, selector.ErrExhausted)
		assert.Empty(t, deps.docs.FetchDocsCalls())
		assert.Empty(t, deps.generator.GenerateCalls())
		assert.Empty(t, deps.store.CreateReportCalls())
	})

	t.Run("contract violation", func(t *testing.T) {
		p, deps := newTestPipeline()
		deps.generator.GenerateFunc = func(context.Context, domain.ItemMetadata) (domain.ReportDraft, error) {
			return domain.ReportDraft{}, fmt.Errorf("%w: no valid report for org/new", llm.ErrContractViolation)
		}
		_, err := p.Run(context.Background())
		require.ErrorIs(t, err, llm.ErrContractViolation)
		assert.Contains(t, err.Error(), "org/new")
		assert.Empty(t, deps.store.CreateReportCalls(), "nothing stored on generation failure")
	})

	t.Run("store error", func(t *testing.T) {
		p, deps := newTestPipeline()
		deps.store.CreateReportFunc = func(context.Context, *domain.Report) error { return errors.New("disk full") }
		report, err := p.Run(context.Background())
		require.Error(t, err)
		assert.Nil(t, report)
		assert.Contains(t, err.Error(), "save report for org/new: disk full")
	})
}

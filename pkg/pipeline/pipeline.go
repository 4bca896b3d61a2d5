// Package pipeline runs one report generation: select a trending item, fetch its README,
// ask the LLM for a report and store the result.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/hfbriefer/pkg/domain"
)

//go:generate moq -out mocks/selector.go -pkg mocks -skip-ensure -fmt goimports . Selector
//go:generate moq -out mocks/docs_fetcher.go -pkg mocks -skip-ensure -fmt goimports . DocsFetcher
//go:generate moq -out mocks/generator.go -pkg mocks -skip-ensure -fmt goimports . Generator
//go:generate moq -out mocks/report_store.go -pkg mocks -skip-ensure -fmt goimports . ReportStore

// Selector picks an item not reported on yet
type Selector interface {
	Select(ctx context.Context, used domain.UsedNames) (domain.ItemMetadata, error)
}

// DocsFetcher gets the README of an item, false if not available
type DocsFetcher interface {
	FetchDocs(ctx context.Context, repoID string, kind domain.ItemKind) (string, bool)
}

// Generator writes a report draft for the item
type Generator interface {
	Generate(ctx context.Context, meta domain.ItemMetadata) (domain.ReportDraft, error)
}

// ReportStore keeps generated reports
type ReportStore interface {
	UsedItemNames(ctx context.Context) (domain.UsedNames, error)
	CreateReport(ctx context.Context, report *domain.Report) error
}

// Pipeline produces a single report per Run
type Pipeline struct {
	store     ReportStore
	selector  Selector
	docs      DocsFetcher
	generator Generator
	now       func() time.Time
}

// Params contains all dependencies of the pipeline
type Params struct {
	Store     ReportStore
	Selector  Selector
	Docs      DocsFetcher
	Generator Generator
}

// New makes a pipeline from params
func New(params Params) *Pipeline {
	return &Pipeline{
		store:     params.Store,
		selector:  params.Selector,
		docs:      params.Docs,
		generator: params.Generator,
		now:       time.Now,
	}
}

// Run generates and stores a report about one trending item. Nothing is stored if any step fails.
func (p *Pipeline) Run(ctx context.Context) (*domain.Report, error) {
	used, err := p.store.UsedItemNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("load used item names: %w", err)
	}

	lgr.Printf("[INFO] fetching trending item from hugging face, %d already used", len(used))
	meta, err := p.selector.Select(ctx, used)
	if err != nil {
		return nil, fmt.Errorf("select item: %w", err)
	}
	lgr.Printf("[INFO] selected: %s (%s)", meta.ID, meta.Type)

	lgr.Printf("[INFO] fetching README for %s", meta.ID)
	if readme, ok := p.docs.FetchDocs(ctx, meta.ID, meta.Type); ok {
		meta.Readme = readme
		lgr.Printf("[INFO] README fetched (%d chars)", utf8.RuneCountInString(readme))
	} else {
		lgr.Printf("[INFO] README not available, continuing with metadata only")
	}

	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata of %s: %w", meta.ID, err)
	}

	lgr.Printf("[INFO] generating report via LLM")
	draft, err := p.generator.Generate(ctx, meta)
	if err != nil {
		return nil, fmt.Errorf("generate report: %w", err)
	}

	report := &domain.Report{
		Title:     draft.Title,
		ItemName:  meta.ID,
		ItemType:  meta.Type,
		Summary:   draft.Summary,
		Ideas:     draft.Ideas,
		Metadata:  string(metaJSON),
		CreatedAt: p.now().UTC(),
	}
	if err := p.store.CreateReport(ctx, report); err != nil {
		return nil, fmt.Errorf("save report for %s: %w", meta.ID, err)
	}

	lgr.Printf("[INFO] report saved: %q (id: %d)", report.Title, report.ID)
	return report, nil
}

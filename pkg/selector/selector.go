// Package selector picks a random trending registry item which has not been reported on yet.
package selector

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/hfbriefer/pkg/domain"
	"github.com/umputun/hfbriefer/pkg/hub"
)

// ErrExhausted is returned when every trending item in the widest pool was already used
var ErrExhausted = errors.New("all trending items have already been reported on")

// poolSizes are the per-kind trending limits, tried in order
var poolSizes = []int{20, 50}

const maxCardSummary = 2000

//go:generate moq -out mocks/registry.go -pkg mocks -skip-ensure -fmt goimports . Registry

// Registry lists trending entries of the hub
type Registry interface {
	ListTrending(ctx context.Context, repoType hub.RepoType, limit int) ([]hub.Entry, error)
}

// Selector picks an unused trending item
type Selector struct {
	registry Registry
	intn     func(n int) int
}

// candidate is a pool entry tagged with its kind
type candidate struct {
	entry hub.Entry
	kind  domain.ItemKind
}

// New makes a selector for the given registry
func New(registry Registry) *Selector {
	return &Selector{registry: registry, intn: rand.IntN}
}

// Select returns metadata of a random trending item whose id is not in used.
// The pool is widened from 20 to 50 items per kind if everything in the smaller pool was used.
func (s *Selector) Select(ctx context.Context, used domain.UsedNames) (domain.ItemMetadata, error) {
	for _, limit := range poolSizes {
		pool, err := s.fetchPool(ctx, limit)
		if err != nil {
			return domain.ItemMetadata{}, err
		}

		if c, ok := pickUnused(pool, used, s.intn); ok {
			lgr.Printf("[INFO] selected %s (%s) from trending pool of %d, limit %d", c.entry.ID, c.kind, len(pool), limit)
			return extractMetadata(c), nil
		}
		lgr.Printf("[INFO] all %d trending items at limit %d are already used", len(pool), limit)
	}
	return domain.ItemMetadata{}, fmt.Errorf("%w, try again later when new items are trending", ErrExhausted)
}

// fetchPool lists trending models and datasets, models first
func (s *Selector) fetchPool(ctx context.Context, limit int) ([]candidate, error) {
	models, err := s.registry.ListTrending(ctx, hub.RepoModel, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch %d trending models: %w", limit, err)
	}
	datasets, err := s.registry.ListTrending(ctx, hub.RepoDataset, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch %d trending datasets: %w", limit, err)
	}

	pool := make([]candidate, 0, len(models)+len(datasets))
	for _, m := range models {
		pool = append(pool, candidate{entry: m, kind: domain.KindModel})
	}
	for _, d := range datasets {
		pool = append(pool, candidate{entry: d, kind: domain.KindDataset})
	}
	return pool, nil
}

// pickUnused chooses uniformly among pool entries not in used. Entries without id are never picked.
func pickUnused(pool []candidate, used domain.UsedNames, intn func(n int) int) (candidate, bool) {
	available := make([]candidate, 0, len(pool))
	for _, c := range pool {
		if c.entry.ID == "" || used.Contains(c.entry.ID) {
			continue
		}
		available = append(available, c)
	}
	if len(available) == 0 {
		return candidate{}, false
	}
	return available[intn(len(available))], true
}

// extractMetadata converts a hub entry to item metadata, kind-specific fields only for models
func extractMetadata(c candidate) domain.ItemMetadata {
	tags := c.entry.Tags
	if tags == nil {
		tags = []string{}
	}

	meta := domain.ItemMetadata{
		ID:            c.entry.ID,
		Type:          c.kind,
		Author:        c.entry.Author,
		Downloads:     c.entry.Downloads,
		Likes:         c.entry.Likes,
		TrendingScore: c.entry.TrendingScore,
		Tags:          tags,
		CreatedAt:     c.entry.CreatedAt,
		LastModified:  c.entry.LastModified,
	}

	if c.kind == domain.KindModel {
		meta.PipelineTag = c.entry.PipelineTag
		meta.LibraryName = c.entry.LibraryName
	}

	if c.entry.HasCardData() {
		meta.CardDataSummary = truncateRunes(string(c.entry.CardData), maxCardSummary)
	}
	return meta
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

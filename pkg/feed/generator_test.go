package feed

import (
	"strings"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/hfbriefer/pkg/domain"
)

func TestGenerator_GenerateRSS(t *testing.T) {
	generator := NewGenerator("https://briefer.example.com/", "https://huggingface.co")

	created := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	reports := []domain.Report{
		{
			ID:        2,
			Title:     "Tiny Llama goes big",
			ItemName:  "org/tiny-llama",
			ItemType:  domain.KindModel,
			Summary:   "A compact <b>chat</b> model.<script>alert(1)</script>",
			Ideas:     []string{"Build a bot", "Summarize <i>tickets</i>", "Draft emails", "Tutor", "Review code"},
			CreatedAt: created.Add(24 * time.Hour),
		},
		{
			ID:        1,
			Title:     "Speech & text corpus",
			ItemName:  "org/speech",
			ItemType:  domain.KindDataset,
			Summary:   "Ten thousand hours of audio.",
			Ideas:     []string{"a", "b", "c", "d", "e"},
			CreatedAt: created,
		},
	}

	rss, err := generator.GenerateRSS(reports)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(rss, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, rss, `<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
	assert.Contains(t, rss, `<guid isPermaLink="false">report-2</guid>`)
	assert.Contains(t, rss, `<link>https://briefer.example.com/</link>`)
	assert.NotContains(t, rss, "<script>")
	assert.NotContains(t, rss, "alert(1)")

	parsed, err := gofeed.NewParser().ParseString(rss)
	require.NoError(t, err)
	assert.Equal(t, "rss", parsed.FeedType)
	assert.Equal(t, "HF Briefer - Daily Hugging Face Trends", parsed.Title)
	require.Len(t, parsed.Items, 2)

	first := parsed.Items[0]
	assert.Equal(t, "Tiny Llama goes big", first.Title)
	assert.Equal(t, "https://huggingface.co/org/tiny-llama", first.Link)
	assert.Equal(t, "report-2", first.GUID)
	assert.Equal(t, []string{"model"}, first.Categories)
	assert.Equal(t, "A compact chat model.\n\nProject ideas:\n1. Build a bot\n2. Summarize tickets\n3. Draft emails\n4. Tutor\n5. Review code",
		first.Description)
	require.NotNil(t, first.PublishedParsed)
	assert.True(t, created.Add(24*time.Hour).Equal(*first.PublishedParsed))

	second := parsed.Items[1]
	assert.Equal(t, "Speech & text corpus", second.Title)
	assert.Equal(t, "https://huggingface.co/datasets/org/speech", second.Link)
	assert.Equal(t, []string{"dataset"}, second.Categories)
}

func TestGenerator_GenerateRSSEmpty(t *testing.T) {
	rss, err := NewGenerator("http://localhost:8080", "https://huggingface.co").GenerateRSS(nil)
	require.NoError(t, err)

	parsed, err := gofeed.NewParser().ParseString(rss)
	require.NoError(t, err)
	assert.Empty(t, parsed.Items)
	assert.Contains(t, rss, `href="http://localhost:8080/rss" rel="self"`)
}

func TestGenerator_ItemURL(t *testing.T) {
	g := NewGenerator("http://localhost", "https://hub.example.com/")
	assert.Equal(t, "https://hub.example.com/org/m", g.ItemURL("org/m", domain.KindModel))
	assert.Equal(t, "https://hub.example.com/datasets/org/d", g.ItemURL("org/d", domain.KindDataset))
}

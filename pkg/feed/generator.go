// Package feed renders stored reports as an RSS 2.0 feed.
package feed

import (
	"encoding/xml"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/hfbriefer/pkg/domain"
)

// Generator creates RSS feeds from reports
type Generator struct {
	baseURL string
	hubURL  string
	policy  *bluemonday.Policy
}

// NewGenerator creates a new feed generator. baseURL is the public address of the service,
// hubURL is used to link items to their hub pages.
func NewGenerator(baseURL, hubURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
		hubURL:  strings.TrimRight(hubURL, "/"),
		policy:  bluemonday.StrictPolicy(),
	}
}

// GenerateRSS creates an RSS 2.0 feed, one item per report in the given order
func (g *Generator) GenerateRSS(reports []domain.Report) (string, error) {
	rssItems := make([]*RSSItem, 0, len(reports))
	for _, r := range reports {
		rssItems = append(rssItems, g.convertToRSSItem(r))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         "HF Briefer - Daily Hugging Face Trends",
			Link:          g.baseURL + "/",
			Description:   "Daily reports about trending Hugging Face models and datasets",
			AtomLink:      &AtomLink{Href: g.baseURL + "/rss", Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: time.Now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

// ItemURL returns the hub page of the item
func (g *Generator) ItemURL(name string, kind domain.ItemKind) string {
	if kind == domain.KindDataset {
		return g.hubURL + "/datasets/" + name
	}
	return g.hubURL + "/" + name
}

// convertToRSSItem makes feed entry with sanitized summary followed by numbered ideas
func (g *Generator) convertToRSSItem(r domain.Report) *RSSItem {
	var desc strings.Builder
	desc.WriteString(g.sanitize(r.Summary))
	if len(r.Ideas) > 0 {
		desc.WriteString("\n\nProject ideas:")
		for i, idea := range r.Ideas {
			fmt.Fprintf(&desc, "\n%d. %s", i+1, g.sanitize(idea))
		}
	}

	return &RSSItem{
		Title:       g.sanitize(r.Title),
		Link:        g.ItemURL(r.ItemName, r.ItemType),
		GUID:        RSSGUID{Value: fmt.Sprintf("report-%d", r.ID)},
		Description: desc.String(),
		PubDate:     r.CreatedAt.Format(time.RFC1123Z),
		Category:    string(r.ItemType),
	}
}

// sanitize strips all markup, the xml encoder escapes the rest
func (g *Generator) sanitize(s string) string {
	return strings.TrimSpace(html.UnescapeString(g.policy.Sanitize(s)))
}

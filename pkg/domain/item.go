package domain

import "fmt"

// ItemKind is the type of a registry entry
type ItemKind string

const (
	KindModel   ItemKind = "model"
	KindDataset ItemKind = "dataset"
)

// ParseItemKind converts a string to ItemKind, empty and unknown values are rejected
func ParseItemKind(s string) (ItemKind, error) {
	switch ItemKind(s) {
	case KindModel, KindDataset:
		return ItemKind(s), nil
	default:
		return "", fmt.Errorf("unknown item kind %q", s)
	}
}

// ItemMetadata describes one selected registry entry. JSON keys follow the stored report metadata format.
type ItemMetadata struct {
	ID            string   `json:"id"`
	Type          ItemKind `json:"type"`
	Author        string   `json:"author"`
	Downloads     int64    `json:"downloads"`
	Likes         int64    `json:"likes"`
	TrendingScore *float64 `json:"trending_score"`
	Tags          []string `json:"tags"`
	CreatedAt     *string  `json:"created_at"`
	LastModified  *string  `json:"last_modified"`

	// model only
	PipelineTag *string `json:"pipeline_tag,omitempty"`
	LibraryName *string `json:"library_name,omitempty"`

	CardDataSummary string `json:"card_data_summary,omitempty"`
	Readme          string `json:"readme,omitempty"`
}

// HasReadme reports whether documentation was attached
func (m ItemMetadata) HasReadme() bool {
	return m.Readme != ""
}

// UsedNames is the set of item ids already reported on
type UsedNames map[string]struct{}

// NewUsedNames makes a set from the list of ids
func NewUsedNames(ids ...string) UsedNames {
	res := make(UsedNames, len(ids))
	for _, id := range ids {
		res[id] = struct{}{}
	}
	return res
}

// Contains checks if id was used already
func (u UsedNames) Contains(id string) bool {
	_, ok := u[id]
	return ok
}

package hub

import "encoding/json"

// RepoType selects the repository namespace on the hub
type RepoType string

const (
	RepoModel   RepoType = "model"
	RepoDataset RepoType = "dataset"
)

// Entry is a model or dataset summary as returned by the listing api
type Entry struct {
	ID            string          `json:"id"`
	Author        string          `json:"author"`
	Downloads     int64           `json:"downloads"`
	Likes         int64           `json:"likes"`
	TrendingScore *float64        `json:"trendingScore"`
	Tags          []string        `json:"tags"`
	CreatedAt     *string         `json:"createdAt"`
	LastModified  *string         `json:"lastModified"`
	PipelineTag   *string         `json:"pipeline_tag"`
	LibraryName   *string         `json:"library_name"`
	CardData      json.RawMessage `json:"cardData"`
}

// HasCardData reports whether the entry carries a non-empty card
func (e Entry) HasCardData() bool {
	switch string(e.CardData) {
	case "", "null", "{}", "[]", `""`:
		return false
	}
	return true
}

package domain

import "time"

// IdeasCount is the exact number of project ideas in a valid draft
const IdeasCount = 5

// ReportDraft is the validated LLM output before persistence
type ReportDraft struct {
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Ideas   []string `json:"ideas"`
}

// Report is a finished, stored digest for a single registry item
type Report struct {
	ID        int64
	Title     string
	ItemName  string
	ItemType  ItemKind
	Summary   string
	Ideas     []string
	Metadata  string // serialized ItemMetadata
	CreatedAt time.Time
}

// ReportFilter represents listing criteria for reports
type ReportFilter struct {
	ItemType ItemKind // empty for all kinds
	Limit    int
	Offset   int
}

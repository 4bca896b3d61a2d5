package server

import (
	"log"
	"net/http"
	"strconv"

	"github.com/umputun/hfbriefer/pkg/domain"
)

const defaultRSSLimit = 50

// rssHandler serves RSS feed of the latest reports, optionally filtered with ?type=model|dataset
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	filter := domain.ReportFilter{Limit: defaultRSSLimit}
	if t := r.URL.Query().Get("type"); t != "" {
		kind, err := domain.ParseItemKind(t)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		filter.ItemType = kind
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if limit, err := strconv.Atoi(l); err == nil && limit > 0 {
			filter.Limit = min(limit, maxPageSize)
		}
	}

	reports, err := s.db.ListReports(r.Context(), filter)
	if err != nil {
		log.Printf("[ERROR] failed to get reports for RSS: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	rss, err := s.feedGen.GenerateRSS(reports)
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/umputun/hfbriefer/pkg/domain"
	"github.com/umputun/hfbriefer/pkg/llm"
	"github.com/umputun/hfbriefer/pkg/repository"
	"github.com/umputun/hfbriefer/pkg/selector"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// reportResponse is the api representation of a report
type reportResponse struct {
	ID        int64           `json:"id"`
	Title     string          `json:"title"`
	ItemName  string          `json:"item_name"`
	ItemType  domain.ItemKind `json:"item_type"`
	ItemURL   string          `json:"item_url"`
	Summary   string          `json:"summary"`
	Ideas     []string        `json:"ideas"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type listResponse struct {
	Reports []reportResponse `json:"reports"`
	Total   int              `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	count, err := s.db.CountReports(r.Context(), "")
	if err != nil {
		log.Printf("[WARN] failed to count reports: %v", err)
		status["status"] = "degraded"
	} else {
		status["reports"] = count
	}
	renderJSON(w, r, http.StatusOK, status)
}

// listReportsHandler returns a page of reports, newest first
func (s *Server) listReportsHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	reports, err := s.db.ListReports(r.Context(), filter)
	if err != nil {
		log.Printf("[ERROR] failed to list reports: %v", err)
		renderError(w, r, errors.New("failed to list reports"), http.StatusInternalServerError)
		return
	}
	total, err := s.db.CountReports(r.Context(), filter.ItemType)
	if err != nil {
		log.Printf("[ERROR] failed to count reports: %v", err)
		renderError(w, r, errors.New("failed to count reports"), http.StatusInternalServerError)
		return
	}

	resp := listResponse{Reports: make([]reportResponse, 0, len(reports)), Total: total, Limit: filter.Limit, Offset: filter.Offset}
	for _, rep := range reports {
		resp.Reports = append(resp.Reports, s.toResponse(rep, false))
	}
	renderJSON(w, r, http.StatusOK, resp)
}

// getReportHandler returns a single report with its metadata
func (s *Server) getReportHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid report ID"), http.StatusBadRequest)
		return
	}

	report, err := s.db.GetReport(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			renderError(w, r, fmt.Errorf("report %d not found", id), http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to get report %d: %v", id, err)
		renderError(w, r, errors.New("failed to get report"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, s.toResponse(*report, true))
}

// generateHandler makes a new report right away
func (s *Server) generateHandler(w http.ResponseWriter, r *http.Request) {
	report, err := s.scheduler.RunNow(r.Context())
	switch {
	case err == nil:
		renderJSON(w, r, http.StatusOK, s.toResponse(*report, true))
	case errors.Is(err, selector.ErrExhausted):
		renderError(w, r, err, http.StatusConflict)
	case errors.Is(err, llm.ErrContractViolation):
		log.Printf("[WARN] report generation failed: %v", err)
		renderError(w, r, err, http.StatusBadGateway)
	default:
		log.Printf("[ERROR] report generation failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
	}
}

// parseFilter reads type, limit and offset query params
func parseFilter(r *http.Request) (domain.ReportFilter, error) {
	q := r.URL.Query()
	filter := domain.ReportFilter{Limit: defaultPageSize}

	if t := q.Get("type"); t != "" {
		kind, err := domain.ParseItemKind(t)
		if err != nil {
			return filter, err
		}
		filter.ItemType = kind
	}

	if l := q.Get("limit"); l != "" {
		limit, err := strconv.Atoi(l)
		if err != nil || limit < 1 {
			return filter, fmt.Errorf("invalid limit %q", l)
		}
		filter.Limit = min(limit, maxPageSize)
	}

	if o := q.Get("offset"); o != "" {
		offset, err := strconv.Atoi(o)
		if err != nil || offset < 0 {
			return filter, fmt.Errorf("invalid offset %q", o)
		}
		filter.Offset = offset
	}
	return filter, nil
}

func (s *Server) toResponse(rep domain.Report, withMetadata bool) reportResponse {
	resp := reportResponse{
		ID:        rep.ID,
		Title:     rep.Title,
		ItemName:  rep.ItemName,
		ItemType:  rep.ItemType,
		ItemURL:   s.feedGen.ItemURL(rep.ItemName, rep.ItemType),
		Summary:   rep.Summary,
		Ideas:     rep.Ideas,
		CreatedAt: rep.CreatedAt,
	}
	if withMetadata && json.Valid([]byte(rep.Metadata)) {
		resp.Metadata = json.RawMessage(rep.Metadata)
	}
	return resp
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}

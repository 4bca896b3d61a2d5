package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/hfbriefer/pkg/domain"
)

// ReportRepository handles report-related database operations
type ReportRepository struct {
	db *sqlx.DB
}

// reportRow is the db representation of domain.Report, ideas kept as json text
type reportRow struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	ItemName  string    `db:"item_name"`
	ItemType  string    `db:"item_type"`
	Summary   string    `db:"summary"`
	Ideas     string    `db:"ideas"`
	Metadata  string    `db:"metadata"`
	CreatedAt time.Time `db:"created_at"`
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// UsedItemNames returns ids of all items which already have a report
func (r *ReportRepository) UsedItemNames(ctx context.Context) (domain.UsedNames, error) {
	var names []string
	if err := r.db.SelectContext(ctx, &names, "SELECT DISTINCT item_name FROM reports"); err != nil {
		return nil, fmt.Errorf("get used item names: %w", err)
	}
	return domain.NewUsedNames(names...), nil
}

// CreateReport inserts a new report and sets its ID. Retried on SQLite lock errors.
func (r *ReportRepository) CreateReport(ctx context.Context, report *domain.Report) error {
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}
	row, err := toRow(report)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO reports (title, item_name, item_type, summary, ideas, metadata, created_at)
		VALUES (:title, :item_name, :item_type, :summary, :ideas, :metadata, :created_at)
	`
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err = retrier.Do(ctx, func() error {
		result, err := r.db.NamedExecContext(ctx, query, row)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("create report: %w", err)}
		}

		id, err := result.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get insert id: %w", err)}
		}
		report.ID = id
		return nil
	}, errCritical)
	if err != nil {
		var ce *criticalError
		if errors.As(err, &ce) {
			return ce.err
		}
		return fmt.Errorf("create report: %w", err)
	}
	return nil
}

// GetReport retrieves a report by ID, returns ErrNotFound if it doesn't exist
func (r *ReportRepository) GetReport(ctx context.Context, id int64) (*domain.Report, error) {
	var row reportRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM reports WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("report %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get report %d: %w", id, err)
	}
	return row.toDomain()
}

// ListReports returns reports newest first, optionally filtered by item type
func (r *ReportRepository) ListReports(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, error) {
	query := "SELECT * FROM reports"
	args := []any{}
	if filter.ItemType != "" {
		query += " WHERE item_type = ?"
		args = append(args, string(filter.ItemType))
	}
	query += " ORDER BY created_at DESC, id DESC"
	if filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, max(filter.Offset, 0))
	}

	var rows []reportRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	reports := make([]domain.Report, 0, len(rows))
	for _, row := range rows {
		rep, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		reports = append(reports, *rep)
	}
	return reports, nil
}

// CountReports returns number of stored reports, all kinds if itemType is empty
func (r *ReportRepository) CountReports(ctx context.Context, itemType domain.ItemKind) (int, error) {
	query := "SELECT COUNT(*) FROM reports"
	args := []any{}
	if itemType != "" {
		query += " WHERE item_type = ?"
		args = append(args, string(itemType))
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count reports: %w", err)
	}
	return count, nil
}

func toRow(report *domain.Report) (reportRow, error) {
	ideas := report.Ideas
	if ideas == nil {
		ideas = []string{}
	}
	ideasJSON, err := json.Marshal(ideas)
	if err != nil {
		return reportRow{}, fmt.Errorf("marshal ideas: %w", err)
	}
	return reportRow{
		ID:        report.ID,
		Title:     report.Title,
		ItemName:  report.ItemName,
		ItemType:  string(report.ItemType),
		Summary:   report.Summary,
		Ideas:     string(ideasJSON),
		Metadata:  report.Metadata,
		CreatedAt: report.CreatedAt.UTC(),
	}, nil
}

func (row reportRow) toDomain() (*domain.Report, error) {
	var ideas []string
	if err := json.Unmarshal([]byte(row.Ideas), &ideas); err != nil {
		return nil, fmt.Errorf("unmarshal ideas of report %d: %w", row.ID, err)
	}
	return &domain.Report{
		ID:        row.ID,
		Title:     row.Title,
		ItemName:  row.ItemName,
		ItemType:  domain.ItemKind(row.ItemType),
		Summary:   row.Summary,
		Ideas:     ideas,
		Metadata:  row.Metadata,
		CreatedAt: row.CreatedAt.UTC(),
	}, nil
}

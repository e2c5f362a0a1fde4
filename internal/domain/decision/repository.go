package decision

import "context"

type Repository interface {
	Create(ctx context.Context, r *Record) error

	// Newest first.
	ListByReportID(ctx context.Context, reportID string) ([]Record, error)
}

package decisionmock

import (
	"context"
	"sync"

	domain "glint-backoffice/internal/domain/decision"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// With no functions set it behaves as an in-memory journal.
type Repo struct {
	CreateFn         func(ctx context.Context, r *domain.Record) error
	ListByReportIDFn func(ctx context.Context, reportID string) ([]domain.Record, error)

	mu      sync.Mutex
	Records []domain.Record
}

func (m *Repo) Create(ctx context.Context, r *domain.Record) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Records = append(m.Records, *r)
	return nil
}

func (m *Repo) ListByReportID(ctx context.Context, reportID string) ([]domain.Record, error) {
	if m.ListByReportIDFn != nil {
		return m.ListByReportIDFn(ctx, reportID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Record
	for i := len(m.Records) - 1; i >= 0; i-- {
		if m.Records[i].ReportID == reportID {
			out = append(out, m.Records[i])
		}
	}
	return out, nil
}

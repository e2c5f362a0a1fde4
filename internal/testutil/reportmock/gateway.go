package reportmock

import (
	"context"

	domain "glint-backoffice/internal/domain/report"
)

var _ domain.Gateway = (*Gateway)(nil)

// Gateway is a function-backed mock that satisfies domain.Gateway.
// Unset functions fail with context.Canceled so a stray call is visible.
type Gateway struct {
	ListFn           func(ctx context.Context, token string) ([]domain.Report, error)
	CreateFn         func(ctx context.Context, token string, p domain.CreatePayload) (*domain.Report, error)
	SubmitDecisionFn func(ctx context.Context, token string, endpoint domain.DecisionEndpoint, reportID string, p domain.DecisionPayload) error

	// call counters
	SubmitCalls int
}

func (m *Gateway) List(ctx context.Context, token string) ([]domain.Report, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, token)
	}
	return nil, context.Canceled
}

func (m *Gateway) Create(ctx context.Context, token string, p domain.CreatePayload) (*domain.Report, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, token, p)
	}
	return nil, context.Canceled
}

func (m *Gateway) SubmitDecision(ctx context.Context, token string, endpoint domain.DecisionEndpoint, reportID string, p domain.DecisionPayload) error {
	m.SubmitCalls++
	if m.SubmitDecisionFn != nil {
		return m.SubmitDecisionFn(ctx, token, endpoint, reportID, p)
	}
	return context.Canceled
}

// Static returns a gateway whose List always answers reports.
func Static(reports ...domain.Report) *Gateway {
	return &Gateway{
		ListFn: func(context.Context, string) ([]domain.Report, error) { return reports, nil },
	}
}

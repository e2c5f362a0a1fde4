package report

import "context"

// Gateway is the remote GLINT API as seen by the report flows. Every call
// carries the caller's bearer token explicitly.
type Gateway interface {
	List(ctx context.Context, token string) ([]Report, error)
	Create(ctx context.Context, token string, p CreatePayload) (*Report, error)

	// SubmitDecision posts p to the DGM or GM decision endpoint of reportID.
	SubmitDecision(ctx context.Context, token string, endpoint DecisionEndpoint, reportID string, p DecisionPayload) error
}

package report

import (
	"time"

	domain "glint-backoffice/internal/domain/report"
)

// ReportDTO is a list row: the remote report plus what the caller may do.
type ReportDTO struct {
	domain.Report
	StatusLabel string `json:"status_label"`
	CanReview   bool   `json:"can_review"`
}

type OverviewDTO struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

type DecideInput struct {
	ReportID string
	Action   domain.DecisionAction
	Comment  string
}

type DecisionDTO struct {
	DecisionID  string                  `json:"decision_id"`
	ReportID    string                  `json:"report_id"`
	Action      domain.DecisionAction   `json:"action"`
	Comment     string                  `json:"comment,omitempty"`
	Endpoint    domain.DecisionEndpoint `json:"endpoint"`
	PriorStatus domain.Status           `json:"prior_status"`
	SubmittedAt time.Time               `json:"submitted_at"`
}

type HistoryEntryDTO struct {
	DecisionID  string    `json:"decision_id"`
	ActorID     string    `json:"actor_id"`
	ActorRole   string    `json:"actor_role"`
	Action      string    `json:"action"`
	Comment     string    `json:"comment,omitempty"`
	PriorStatus string    `json:"prior_status"`
	Endpoint    string    `json:"endpoint"`
	Outcome     string    `json:"outcome"`
	Failure     string    `json:"failure,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

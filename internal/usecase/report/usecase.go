package report

import (
	"context"
	"errors"
	"strings"
	"time"

	"glint-backoffice/internal/domain/decision"
	domain "glint-backoffice/internal/domain/report"
	"glint-backoffice/internal/domain/session"
	"glint-backoffice/internal/domain/workflow"
	"glint-backoffice/pkg/id"

	"go.uber.org/zap"
)

type Usecase struct {
	reports   domain.Gateway
	decisions decision.Repository
	log       *zap.Logger
	now       func() time.Time
}

// NewUsecase: decisions may be nil, in which case nothing is journaled and
// History returns an empty list.
func NewUsecase(reports domain.Gateway, decisions decision.Repository, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{reports: reports, decisions: decisions, log: log, now: time.Now}
}

// visible fetches the remote list and narrows it to what s may see.
func (u *Usecase) visible(ctx context.Context, s *session.Session) ([]domain.Report, error) {
	all, err := u.reports.List(ctx, s.Token)
	if err != nil {
		return nil, err
	}
	return workflow.VisibleReports(all, s.Role, s.UserID), nil
}

func (u *Usecase) List(ctx context.Context, s *session.Session) ([]ReportDTO, error) {
	rs, err := u.visible(ctx, s)
	if err != nil {
		return nil, err
	}
	out := make([]ReportDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, ReportDTO{
			Report:      r,
			StatusLabel: domain.Label(r.Status),
			CanReview:   workflow.CanShowStatusAction(s.Role, r.Status),
		})
	}
	return out, nil
}

func (u *Usecase) Overview(ctx context.Context, s *session.Session) (*OverviewDTO, error) {
	rs, err := u.visible(ctx, s)
	if err != nil {
		return nil, err
	}
	dto := &OverviewDTO{Total: len(rs), ByStatus: map[string]int{}}
	for _, r := range rs {
		dto.ByStatus[string(r.Status)]++
	}
	return dto, nil
}

func (u *Usecase) Create(ctx context.Context, s *session.Session, p domain.CreatePayload) (*domain.Report, error) {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return nil, workflow.Invalid("title is required")
	}
	return u.reports.Create(ctx, s.Token, p)
}

// Decide gates the decision locally, forwards it, and journals the attempt.
// A locally rejected decision never reaches the remote API or the journal.
func (u *Usecase) Decide(ctx context.Context, s *session.Session, in DecideInput) (*DecisionDTO, error) {
	all, err := u.reports.List(ctx, s.Token)
	if err != nil {
		return nil, err
	}
	// unfiltered so the engine, not visibility, explains a refusal
	r, err := byID(all, in.ReportID)
	if err != nil {
		return nil, err
	}

	d, err := workflow.ApplyDecision(*r, s.Role, in.Action, in.Comment)
	if err != nil {
		return nil, err
	}

	rec := &decision.Record{
		DecisionID:  id.NewID32(),
		ReportID:    r.ID,
		ActorID:     s.UserID,
		ActorRole:   string(s.Role),
		Action:      string(d.Payload.Action),
		Comment:     d.Payload.Comment,
		PriorStatus: string(r.Status),
		Endpoint:    string(d.Endpoint),
		Outcome:     decision.OutcomeSubmitted,
	}

	submitErr := u.reports.SubmitDecision(ctx, s.Token, d.Endpoint, r.ID, d.Payload)
	if submitErr != nil {
		rec.Outcome = decision.OutcomeFailed
		rec.Failure = submitErr.Error()
		if !errors.Is(submitErr, workflow.ErrRemote) {
			submitErr = workflow.Remote(submitErr.Error())
		}
	}
	u.journal(ctx, rec)

	if submitErr != nil {
		return nil, submitErr
	}
	return &DecisionDTO{
		DecisionID:  rec.DecisionID,
		ReportID:    r.ID,
		Action:      d.Payload.Action,
		Comment:     d.Payload.Comment,
		Endpoint:    d.Endpoint,
		PriorStatus: r.Status,
		SubmittedAt: u.now().UTC(),
	}, nil
}

func (u *Usecase) journal(ctx context.Context, rec *decision.Record) {
	if u.decisions == nil {
		return
	}
	// the remote call already happened; a lost journal row must not change its result
	if err := u.decisions.Create(context.WithoutCancel(ctx), rec); err != nil {
		u.log.Error("journal decision",
			zap.String("decision_id", rec.DecisionID),
			zap.String("report_id", rec.ReportID),
			zap.Error(err))
	}
}

// History lists journaled decisions for a report the caller can see.
func (u *Usecase) History(ctx context.Context, s *session.Session, reportID string) ([]HistoryEntryDTO, error) {
	if _, err := u.find(ctx, s, reportID); err != nil {
		return nil, err
	}
	if u.decisions == nil {
		return []HistoryEntryDTO{}, nil
	}
	recs, err := u.decisions.ListByReportID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	out := make([]HistoryEntryDTO, 0, len(recs))
	for _, r := range recs {
		out = append(out, HistoryEntryDTO{
			DecisionID:  r.DecisionID,
			ActorID:     r.ActorID,
			ActorRole:   r.ActorRole,
			Action:      r.Action,
			Comment:     r.Comment,
			PriorStatus: r.PriorStatus,
			Endpoint:    r.Endpoint,
			Outcome:     string(r.Outcome),
			Failure:     r.Failure,
			CreatedAt:   r.CreatedAt,
		})
	}
	return out, nil
}

// find looks reportID up among the reports s may see. There is no single
// report endpoint on the remote, so this goes through the list.
func (u *Usecase) find(ctx context.Context, s *session.Session, reportID string) (*domain.Report, error) {
	rs, err := u.visible(ctx, s)
	if err != nil {
		return nil, err
	}
	return byID(rs, reportID)
}

func byID(rs []domain.Report, reportID string) (*domain.Report, error) {
	for i := range rs {
		if rs[i].ID == reportID {
			return &rs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

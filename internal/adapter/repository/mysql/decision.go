package mysql

import (
	"context"

	decisionDomain "glint-backoffice/internal/domain/decision"

	"gorm.io/gorm"
)

type DecisionRepository struct{ db *gorm.DB }

func NewDecisionRepository(db *gorm.DB) *DecisionRepository { return &DecisionRepository{db: db} }

func (r *DecisionRepository) Create(ctx context.Context, rec *decisionDomain.Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *DecisionRepository) ListByReportID(ctx context.Context, reportID string) ([]decisionDomain.Record, error) {
	var out []decisionDomain.Record
	res := r.db.WithContext(ctx).
		Where("report_id = ?", reportID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

// Migrate creates or updates the report_decisions table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&decisionDomain.Record{})
}

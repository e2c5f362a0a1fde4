package decision

import (
	"time"

	"gorm.io/gorm"
)

type Outcome string

const (
	OutcomeSubmitted Outcome = "submitted"
	OutcomeFailed    Outcome = "failed"
)

// Table: report_decisions. One row per decision sent to the remote API.
type Record struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	DecisionID  string         `gorm:"column:decision_id;type:char(32);not null;uniqueIndex" json:"decision_id"`
	ReportID    string         `gorm:"column:report_id;size:64;not null;index:idx_report_decisions_report" json:"report_id"`
	ActorID     string         `gorm:"column:actor_id;size:64;not null" json:"actor_id"`
	ActorRole   string         `gorm:"column:actor_role;size:32;not null" json:"actor_role"`
	Action      string         `gorm:"column:action;size:32;not null" json:"action"`
	Comment     string         `gorm:"column:comment;type:text" json:"comment,omitempty"`
	PriorStatus string         `gorm:"column:prior_status;size:32;not null" json:"prior_status"`
	Endpoint    string         `gorm:"column:endpoint;size:8;not null" json:"endpoint"`
	Outcome     Outcome        `gorm:"column:outcome;size:16;not null" json:"outcome"`
	Failure     string         `gorm:"column:failure;type:text" json:"failure,omitempty"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"-"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Record) TableName() string { return "report_decisions" }

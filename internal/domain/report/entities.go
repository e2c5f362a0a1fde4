package report

import "errors"

var (
	ErrNotFound = errors.New("report not found")
)

type Status string

const (
	StatusDraft         Status = "draft"
	StatusSubmitted     Status = "submitted"
	StatusDGMApproved   Status = "dgm_approved"
	StatusGMApproved    Status = "gm_approved"
	StatusRejected      Status = "rejected"
	StatusNeedsRevision Status = "needs_revision"

	// Shown by the dashboard labels but never produced or checked by the
	// decision flow. Kept apart from the enforced set until product decides.
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
)

// EnforcedStatuses are the statuses the workflow rules are written against.
var EnforcedStatuses = []Status{
	StatusDraft,
	StatusSubmitted,
	StatusDGMApproved,
	StatusGMApproved,
	StatusRejected,
	StatusNeedsRevision,
}

// DisplayOnlyStatuses have a label but no workflow rule.
var DisplayOnlyStatuses = []Status{
	StatusPending,
	StatusApproved,
}

var labels = map[Status]string{
	StatusDraft:         "Draft",
	StatusSubmitted:     "Submitted",
	StatusDGMApproved:   "DGM Approved",
	StatusGMApproved:    "GM Approved",
	StatusRejected:      "Rejected",
	StatusNeedsRevision: "Needs Revision",
	StatusPending:       "Pending",
	StatusApproved:      "Approved",
}

// Label returns the display string for s, or s itself when unrecognized.
func Label(s Status) string {
	if l, ok := labels[s]; ok {
		return l
	}
	return string(s)
}

func (s Status) Enforced() bool {
	for _, e := range EnforcedStatuses {
		if e == s {
			return true
		}
	}
	return false
}

func (s Status) Known() bool {
	_, ok := labels[s]
	return ok
}

type AttachmentType string

const (
	AttachmentImage    AttachmentType = "image"
	AttachmentDocument AttachmentType = "document"
	AttachmentVideo    AttachmentType = "video"
	AttachmentLink     AttachmentType = "link"
	AttachmentGeneric  AttachmentType = "attachment"
)

type Attachment struct {
	Type AttachmentType `json:"type"`
	Name string         `json:"name"`
	URL  string         `json:"url"`
}

type ContentBlock struct {
	Type  string `json:"type"` // text | list | custom
	Label string `json:"label,omitempty"`
	Key   string `json:"key,omitempty"`
	Value any    `json:"value,omitempty"`
	Items []any  `json:"items,omitempty"`
}

// Report mirrors the remote API payload. Only Status and DeveloperID are
// interpreted here; the rest is carried through untouched.
type Report struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Body        string         `json:"body"`
	Content     []ContentBlock `json:"content,omitempty"`
	Attachments []Attachment   `json:"attachments,omitempty"`
	DeveloperID string         `json:"developer_id"`
	Status      Status         `json:"status"`

	// Timestamps stay as the remote formats them.
	CreatedAt   string `json:"created_at,omitempty"`
	SubmittedAt string `json:"submitted_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

type CreatePayload struct {
	Title       string         `json:"title"`
	Body        string         `json:"body,omitempty"`
	Content     []ContentBlock `json:"content,omitempty"`
	Attachments []Attachment   `json:"attachments,omitempty"`
}

type DecisionAction string

const (
	ActionApprove        DecisionAction = "approve"
	ActionRequestChanges DecisionAction = "request_changes"
	ActionNeedsRevision  DecisionAction = "needs_revision"
)

// DecisionPayload is the body sent to either decision endpoint.
type DecisionPayload struct {
	Action  DecisionAction `json:"action"`
	Comment string         `json:"comment,omitempty"`
}

type DecisionEndpoint string

const (
	EndpointDGM DecisionEndpoint = "dgm"
	EndpointGM  DecisionEndpoint = "gm"
)

// Package workflow holds the report approval rules: which role may act on
// which status, what a decision request must contain, and which reports a
// role sees in a list.
//
// These checks only spare the user a round trip. The remote API enforces
// the same rules and decides the resulting status.
package workflow

import (
	"strings"

	"glint-backoffice/internal/domain/report"
	"glint-backoffice/internal/domain/user"
)

// reviewable lists, per reviewing role, the statuses that role may act on.
// Admin is handled separately; roles absent here may act on nothing.
var reviewable = map[user.Role]map[report.Status]bool{
	user.RoleDeputyGeneralManager: {
		report.StatusSubmitted:     true,
		report.StatusNeedsRevision: true,
	},
	user.RoleGeneralManager: {
		report.StatusDGMApproved: true,
		report.StatusGMApproved:  true,
	},
}

// CanReviewStatus reports whether role may submit a decision on a report in
// status. Unknown roles are denied.
func CanReviewStatus(role user.Role, status report.Status) bool {
	if role == user.RoleAdmin {
		return true
	}
	return reviewable[role][status]
}

// CanShowStatusAction decides whether a list row offers the decision action.
// It is the same rule as CanReviewStatus so the button and the submit check
// cannot drift apart.
func CanShowStatusAction(role user.Role, status report.Status) bool {
	return CanReviewStatus(role, status)
}

// Decision is a validated decision request, ready to send.
type Decision struct {
	Endpoint report.DecisionEndpoint
	Payload  report.DecisionPayload
}

func requiresComment(a report.DecisionAction) bool {
	return a == report.ActionRequestChanges || a == report.ActionNeedsRevision
}

func validAction(a report.DecisionAction) bool {
	switch a {
	case report.ActionApprove, report.ActionRequestChanges, report.ActionNeedsRevision:
		return true
	}
	return false
}

// ApplyDecision checks whether role may take action on r and packages the
// request. Only the DGM and GM roles are gated on status; unknown roles are
// refused. It never computes the next status; the remote API does that.
func ApplyDecision(r report.Report, role user.Role, action report.DecisionAction, comment string) (Decision, error) {
	if !validAction(action) {
		return Decision{}, validation("unknown decision action " + quote(string(action)))
	}
	comment = strings.TrimSpace(comment)
	if requiresComment(action) && comment == "" {
		return Decision{}, validation("Comment is required when requesting changes or revisions")
	}

	switch role {
	case user.RoleDeputyGeneralManager:
		if !CanReviewStatus(role, r.Status) {
			return Decision{}, authorization("DGM can only review reports with status 'submitted' or 'needs_revision'")
		}
	case user.RoleGeneralManager:
		if !CanReviewStatus(role, r.Status) {
			return Decision{}, authorization("GM can only review reports with status 'dgm_approved' or 'gm_approved'")
		}
	case user.RoleAdmin, user.RoleDeveloper:
		// No status gate. Developers are never offered the action
		// (CanShowStatusAction), and the remote API has the final word.
	default:
		return Decision{}, authorization("role " + quote(string(role)) + " cannot review reports")
	}

	return Decision{
		Endpoint: DecisionEndpointFor(role),
		Payload:  report.DecisionPayload{Action: action, Comment: comment},
	}, nil
}

// DecisionEndpointFor picks the remote endpoint for role: GMs use the GM
// endpoint, everyone else goes through the DGM one.
func DecisionEndpointFor(role user.Role) report.DecisionEndpoint {
	if role == user.RoleGeneralManager {
		return report.EndpointGM
	}
	return report.EndpointDGM
}

// VisibleReports returns the subset of reports role may see, in input order.
// The input slice is not modified.
func VisibleReports(reports []report.Report, role user.Role, userID string) []report.Report {
	out := make([]report.Report, 0, len(reports))
	switch role {
	case user.RoleAdmin, user.RoleDeputyGeneralManager:
		return append(out, reports...)
	case user.RoleGeneralManager:
		for _, r := range reports {
			if r.Status == report.StatusDGMApproved || r.Status == report.StatusGMApproved {
				out = append(out, r)
			}
		}
	case user.RoleDeveloper:
		if userID == "" {
			return out
		}
		for _, r := range reports {
			if r.DeveloperID == userID {
				out = append(out, r)
			}
		}
	}
	return out
}

func quote(s string) string { return "'" + s + "'" }

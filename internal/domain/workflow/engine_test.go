package workflow

import (
	"errors"
	"testing"

	"glint-backoffice/internal/domain/report"
	"glint-backoffice/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// every status the dashboard knows about, plus one the server might invent
var allStatuses = append(append([]report.Status{}, report.EnforcedStatuses...),
	report.StatusPending, report.StatusApproved, report.Status("archived_2031"), report.Status(""))

var allRoles = []user.Role{
	user.RoleAdmin, user.RoleGeneralManager, user.RoleDeputyGeneralManager, user.RoleDeveloper,
	user.Role("auditor"), user.Role(""),
}

func TestCanReviewStatus_ReviewerAllowSets(t *testing.T) {
	allow := map[user.Role]map[report.Status]bool{
		user.RoleDeputyGeneralManager: {report.StatusSubmitted: true, report.StatusNeedsRevision: true},
		user.RoleGeneralManager:       {report.StatusDGMApproved: true, report.StatusGMApproved: true},
	}
	for role, set := range allow {
		for _, s := range allStatuses {
			assert.Equalf(t, set[s], CanReviewStatus(role, s), "role=%s status=%q", role, s)
		}
	}
}

func TestCanReviewStatus_DeveloperNever(t *testing.T) {
	for _, s := range allStatuses {
		assert.False(t, CanReviewStatus(user.RoleDeveloper, s), "status=%q", s)
	}
}

func TestCanReviewStatus_AdminAlways(t *testing.T) {
	for _, s := range allStatuses {
		assert.True(t, CanReviewStatus(user.RoleAdmin, s), "status=%q", s)
	}
}

func TestCanReviewStatus_UnknownRoleDenied(t *testing.T) {
	for _, s := range allStatuses {
		assert.False(t, CanReviewStatus("auditor", s))
		assert.False(t, CanReviewStatus("", s))
	}
}

func TestCanShowStatusAction_MatchesCanReviewStatus(t *testing.T) {
	for _, r := range allRoles {
		for _, s := range allStatuses {
			assert.Equal(t, CanReviewStatus(r, s), CanShowStatusAction(r, s), "role=%s status=%q", r, s)
		}
	}
}

func TestApplyDecision_CommentRequired(t *testing.T) {
	for _, action := range []report.DecisionAction{report.ActionRequestChanges, report.ActionNeedsRevision} {
		for _, role := range allRoles {
			for _, s := range allStatuses {
				for _, comment := range []string{"", "   ", "\n\t"} {
					_, err := ApplyDecision(report.Report{ID: "r1", Status: s}, role, action, comment)
					require.Error(t, err)
					assert.Truef(t, errors.Is(err, ErrValidation), "action=%s role=%s status=%q: %v", action, role, s, err)
				}
			}
		}
	}
}

func TestApplyDecision_ApproveCommentOptional(t *testing.T) {
	for _, role := range allRoles {
		for _, s := range allStatuses {
			_, err := ApplyDecision(report.Report{Status: s}, role, report.ActionApprove, "")
			assert.Falsef(t, errors.Is(err, ErrValidation), "role=%s status=%q: %v", role, s, err)
		}
	}
}

func TestApplyDecision_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		role     user.Role
		status   report.Status
		action   report.DecisionAction
		comment  string
		wantErr  error
		wantMsg  string
		endpoint report.DecisionEndpoint
	}{
		{
			name: "dgm on gm-stage report", role: user.RoleDeputyGeneralManager, status: report.StatusGMApproved,
			action: report.ActionApprove, wantErr: ErrAuthorization,
			wantMsg: "DGM can only review reports with status 'submitted' or 'needs_revision'",
		},
		{
			name: "gm before dgm approval", role: user.RoleGeneralManager, status: report.StatusSubmitted,
			action: report.ActionApprove, wantErr: ErrAuthorization,
			wantMsg: "GM can only review reports with status 'dgm_approved' or 'gm_approved'",
		},
		{
			name: "dgm approves submitted", role: user.RoleDeputyGeneralManager, status: report.StatusSubmitted,
			action: report.ActionApprove, endpoint: report.EndpointDGM,
		},
		{
			name: "dgm requests changes on revision", role: user.RoleDeputyGeneralManager, status: report.StatusNeedsRevision,
			action: report.ActionRequestChanges, comment: "add numbers", endpoint: report.EndpointDGM,
		},
		{
			name: "gm approves dgm_approved", role: user.RoleGeneralManager, status: report.StatusDGMApproved,
			action: report.ActionApprove, endpoint: report.EndpointGM,
		},
		{
			name: "admin acts on draft", role: user.RoleAdmin, status: report.StatusDraft,
			action: report.ActionNeedsRevision, comment: "x", endpoint: report.EndpointDGM,
		},
		{
			name: "admin acts on unknown status", role: user.RoleAdmin, status: "archived",
			action: report.ActionApprove, endpoint: report.EndpointDGM,
		},
		{
			name: "developer is not status gated", role: user.RoleDeveloper, status: report.StatusDraft,
			action: report.ActionApprove, endpoint: report.EndpointDGM,
		},
		{
			name: "developer on gm stage", role: user.RoleDeveloper, status: report.StatusGMApproved,
			action: report.ActionNeedsRevision, comment: "redo", endpoint: report.EndpointDGM,
		},
		{
			name: "unknown role denied", role: "intern", status: report.StatusSubmitted,
			action: report.ActionApprove, wantErr: ErrAuthorization,
		},
		{
			name: "unknown action", role: user.RoleAdmin, status: report.StatusSubmitted,
			action: "reject", wantErr: ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ApplyDecision(report.Report{ID: "r1", Status: tt.status}, tt.role, tt.action, tt.comment)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, err.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.endpoint, d.Endpoint)
			assert.Equal(t, tt.action, d.Payload.Action)
		})
	}
}

func TestApplyDecision_TrimsComment(t *testing.T) {
	d, err := ApplyDecision(report.Report{Status: report.StatusSubmitted}, user.RoleDeputyGeneralManager,
		report.ActionNeedsRevision, "  fix the totals \n")
	require.NoError(t, err)
	assert.Equal(t, "fix the totals", d.Payload.Comment)

	d, err = ApplyDecision(report.Report{Status: report.StatusSubmitted}, user.RoleDeputyGeneralManager,
		report.ActionApprove, "   ")
	require.NoError(t, err)
	assert.Empty(t, d.Payload.Comment)
}

func TestApplyDecision_OnlyReviewersAreStatusGated(t *testing.T) {
	for _, s := range allStatuses {
		for _, role := range []user.Role{user.RoleAdmin, user.RoleDeveloper} {
			_, err := ApplyDecision(report.Report{Status: s}, role, report.ActionApprove, "")
			assert.NoErrorf(t, err, "role=%s status=%q", role, s)
		}
		for _, role := range []user.Role{user.RoleDeputyGeneralManager, user.RoleGeneralManager} {
			_, err := ApplyDecision(report.Report{Status: s}, role, report.ActionApprove, "")
			if CanReviewStatus(role, s) {
				assert.NoErrorf(t, err, "role=%s status=%q", role, s)
			} else {
				assert.ErrorIsf(t, err, ErrAuthorization, "role=%s status=%q", role, s)
			}
		}
	}
	// the row action stays hidden from developers
	assert.False(t, CanShowStatusAction(user.RoleDeveloper, report.StatusSubmitted))
}

func TestDecisionEndpointFor(t *testing.T) {
	assert.Equal(t, report.EndpointGM, DecisionEndpointFor(user.RoleGeneralManager))
	for _, r := range []user.Role{user.RoleAdmin, user.RoleDeputyGeneralManager, user.RoleDeveloper, "x"} {
		assert.Equal(t, report.EndpointDGM, DecisionEndpointFor(r))
	}
}

func TestVisibleReports_DeveloperSeesOwn(t *testing.T) {
	in := []report.Report{
		{ID: "a", DeveloperID: "u1"},
		{ID: "b", DeveloperID: "u2"},
	}
	got := VisibleReports(in, user.RoleDeveloper, "u1")
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestVisibleReports_DeveloperWithoutIDSeesNothing(t *testing.T) {
	in := []report.Report{{ID: "a", DeveloperID: ""}, {ID: "b", DeveloperID: "u2"}}
	assert.Empty(t, VisibleReports(in, user.RoleDeveloper, ""))
}

func TestVisibleReports_GeneralManagerSeesGMStage(t *testing.T) {
	in := []report.Report{
		{ID: "1", Status: report.StatusDraft},
		{ID: "2", Status: report.StatusSubmitted},
		{ID: "3", Status: report.StatusDGMApproved},
		{ID: "4", Status: report.StatusGMApproved},
		{ID: "5", Status: report.StatusRejected},
	}
	got := VisibleReports(in, user.RoleGeneralManager, "gm")
	require.Len(t, got, 2)
	assert.Equal(t, "3", got[0].ID)
	assert.Equal(t, "4", got[1].ID)
}

func TestVisibleReports_UnfilteredRoles(t *testing.T) {
	in := []report.Report{{ID: "1"}, {ID: "2", Status: report.StatusRejected}, {ID: "3"}}
	for _, r := range []user.Role{user.RoleAdmin, user.RoleDeputyGeneralManager} {
		got := VisibleReports(in, r, "")
		assert.Equal(t, in, got)
	}
	assert.Empty(t, VisibleReports(in, "guest", "u1"))
}

func TestVisibleReports_DoesNotAliasInput(t *testing.T) {
	in := []report.Report{{ID: "1"}, {ID: "2"}}
	got := VisibleReports(in, user.RoleAdmin, "")
	got[0].ID = "changed"
	assert.Equal(t, "1", in[0].ID)
}

func TestPureFunctions_Idempotent(t *testing.T) {
	in := []report.Report{
		{ID: "1", Status: report.StatusDGMApproved, DeveloperID: "u1"},
		{ID: "2", Status: report.StatusSubmitted, DeveloperID: "u2"},
	}
	for _, r := range allRoles {
		for _, s := range allStatuses {
			assert.Equal(t, CanReviewStatus(r, s), CanReviewStatus(r, s))
		}
		assert.Equal(t, VisibleReports(in, r, "u1"), VisibleReports(in, r, "u1"))
	}
}

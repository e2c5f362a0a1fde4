package user

import (
	"context"
	"testing"

	"glint-backoffice/internal/domain/session"
	domain "glint-backoffice/internal/domain/user"
	"glint-backoffice/internal/domain/workflow"
	"glint-backoffice/internal/testutil/usermock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var admin = &session.Session{ID: "sid", Token: "tok", UserID: "a-1", Role: domain.RoleAdmin}

func TestNonAdminIsRefusedWithoutRemoteCall(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleDeveloper, domain.RoleGeneralManager, domain.RoleDeputyGeneralManager, "auditor"} {
		t.Run(string(role), func(t *testing.T) {
			gw := &usermock.Gateway{}
			u := NewUsecase(gw, nil)
			s := &session.Session{Token: "tok", Role: role}

			_, err := u.List(context.Background(), s)
			assert.ErrorIs(t, err, workflow.ErrAuthorization)
			_, err = u.Create(context.Background(), s, domain.CreatePayload{Role: domain.RoleDeveloper})
			assert.ErrorIs(t, err, workflow.ErrAuthorization)
			err = u.UpdateRole(context.Background(), s, "u-2", domain.RoleAdmin)
			assert.ErrorIs(t, err, workflow.ErrAuthorization)

			assert.Zero(t, gw.Calls)
		})
	}
}

func TestList(t *testing.T) {
	gw := &usermock.Gateway{ListFn: func(_ context.Context, tok string) ([]domain.User, error) {
		assert.Equal(t, "tok", tok)
		return nil, nil
	}}
	got, err := NewUsecase(gw, nil).List(context.Background(), admin)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCreate(t *testing.T) {
	var sent domain.CreatePayload
	gw := &usermock.Gateway{CreateFn: func(_ context.Context, _ string, p domain.CreatePayload) (*domain.User, error) {
		sent = p
		return &domain.User{ID: "u-9", Email: p.Email, Role: p.Role}, nil
	}}
	u := NewUsecase(gw, nil)

	_, err := u.Create(context.Background(), admin, domain.CreatePayload{Email: "x@glint.io", Role: "boss"})
	require.ErrorIs(t, err, workflow.ErrValidation)
	assert.Zero(t, gw.Calls)

	got, err := u.Create(context.Background(), admin, domain.CreatePayload{Email: " dev@glint.io ", Role: domain.RoleDeveloper})
	require.NoError(t, err)
	assert.Equal(t, "u-9", got.ID)
	assert.Equal(t, "dev@glint.io", sent.Email)
}

func TestUpdateRole(t *testing.T) {
	var gotID string
	var gotRole domain.Role
	gw := &usermock.Gateway{UpdateRoleFn: func(_ context.Context, _ string, id string, p domain.UpdateRolePayload) error {
		gotID, gotRole = id, p.Role
		return nil
	}}
	u := NewUsecase(gw, nil)

	require.ErrorIs(t, u.UpdateRole(context.Background(), admin, "", domain.RoleAdmin), workflow.ErrValidation)
	require.ErrorIs(t, u.UpdateRole(context.Background(), admin, "u-2", "root"), workflow.ErrValidation)
	assert.Zero(t, gw.Calls)

	require.NoError(t, u.UpdateRole(context.Background(), admin, "u-2", domain.RoleGeneralManager))
	assert.Equal(t, "u-2", gotID)
	assert.Equal(t, domain.RoleGeneralManager, gotRole)
}

func TestUpdateRole_RemoteError(t *testing.T) {
	gw := &usermock.Gateway{UpdateRoleFn: func(context.Context, string, string, domain.UpdateRolePayload) error {
		return workflow.Remote("user not found")
	}}
	err := NewUsecase(gw, nil).UpdateRole(context.Background(), admin, "u-404", domain.RoleDeveloper)
	require.ErrorIs(t, err, workflow.ErrRemote)
	assert.Equal(t, "user not found", err.Error())
}

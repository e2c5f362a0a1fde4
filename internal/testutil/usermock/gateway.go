package usermock

import (
	"context"

	domain "glint-backoffice/internal/domain/user"
)

var _ domain.Gateway = (*Gateway)(nil)

// Gateway is a function-backed mock that satisfies domain.Gateway.
type Gateway struct {
	LoginFn      func(ctx context.Context, p domain.LoginPayload) (string, error)
	RegisterFn   func(ctx context.Context, p domain.RegisterPayload) error
	MeFn         func(ctx context.Context, token string) (*domain.User, error)
	ListFn       func(ctx context.Context, token string) ([]domain.User, error)
	CreateFn     func(ctx context.Context, token string, p domain.CreatePayload) (*domain.User, error)
	UpdateRoleFn func(ctx context.Context, token, userID string, p domain.UpdateRolePayload) error

	Calls int
}

func (m *Gateway) Login(ctx context.Context, p domain.LoginPayload) (string, error) {
	m.Calls++
	if m.LoginFn != nil {
		return m.LoginFn(ctx, p)
	}
	return "", context.Canceled
}

func (m *Gateway) Register(ctx context.Context, p domain.RegisterPayload) error {
	m.Calls++
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, p)
	}
	return context.Canceled
}

func (m *Gateway) Me(ctx context.Context, token string) (*domain.User, error) {
	m.Calls++
	if m.MeFn != nil {
		return m.MeFn(ctx, token)
	}
	return nil, context.Canceled
}

func (m *Gateway) List(ctx context.Context, token string) ([]domain.User, error) {
	m.Calls++
	if m.ListFn != nil {
		return m.ListFn(ctx, token)
	}
	return nil, context.Canceled
}

func (m *Gateway) Create(ctx context.Context, token string, p domain.CreatePayload) (*domain.User, error) {
	m.Calls++
	if m.CreateFn != nil {
		return m.CreateFn(ctx, token, p)
	}
	return nil, context.Canceled
}

func (m *Gateway) UpdateRole(ctx context.Context, token, userID string, p domain.UpdateRolePayload) error {
	m.Calls++
	if m.UpdateRoleFn != nil {
		return m.UpdateRoleFn(ctx, token, userID, p)
	}
	return context.Canceled
}

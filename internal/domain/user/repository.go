package user

import "context"

// Gateway covers the account endpoints of the remote GLINT API.
type Gateway interface {
	Login(ctx context.Context, p LoginPayload) (token string, err error)
	Register(ctx context.Context, p RegisterPayload) error
	Me(ctx context.Context, token string) (*User, error)

	// admin endpoints
	List(ctx context.Context, token string) ([]User, error)
	Create(ctx context.Context, token string, p CreatePayload) (*User, error)
	UpdateRole(ctx context.Context, token, userID string, p UpdateRolePayload) error
}

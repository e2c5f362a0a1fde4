package glintapi

import (
	"context"
	"net/http"
	"net/url"

	"glint-backoffice/internal/domain/user"
	"glint-backoffice/internal/domain/workflow"
)

var _ user.Gateway = (*UserGateway)(nil)

type UserGateway struct{ c *Client }

func NewUserGateway(c *Client) *UserGateway { return &UserGateway{c: c} }

type authResponse struct {
	Token string         `json:"token"`
	User  map[string]any `json:"user"`
}

func (g *UserGateway) Login(ctx context.Context, p user.LoginPayload) (string, error) {
	var out authResponse
	if err := g.c.doJSON(ctx, http.MethodPost, "/auth/login", "", p, &out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", workflow.Remote("login response carried no token")
	}
	return out.Token, nil
}

func (g *UserGateway) Register(ctx context.Context, p user.RegisterPayload) error {
	return g.c.doJSON(ctx, http.MethodPost, "/auth/register", "", p, nil)
}

func (g *UserGateway) Me(ctx context.Context, token string) (*user.User, error) {
	var out user.User
	if err := g.c.doJSON(ctx, http.MethodGet, "/me", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *UserGateway) List(ctx context.Context, token string) ([]user.User, error) {
	var out []user.User
	if err := g.c.doJSON(ctx, http.MethodGet, "/admin/users", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *UserGateway) Create(ctx context.Context, token string, p user.CreatePayload) (*user.User, error) {
	var out user.User
	if err := g.c.doJSON(ctx, http.MethodPost, "/admin/users", token, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *UserGateway) UpdateRole(ctx context.Context, token, userID string, p user.UpdateRolePayload) error {
	path := "/admin/users/" + url.PathEscape(userID) + "/role"
	return g.c.doJSON(ctx, http.MethodPatch, path, token, p, nil)
}

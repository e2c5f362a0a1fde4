package user

import (
	"context"
	"strings"

	"glint-backoffice/internal/domain/session"
	domain "glint-backoffice/internal/domain/user"
	"glint-backoffice/internal/domain/workflow"

	"go.uber.org/zap"
)

// Usecase is user administration. Every operation is admin only; the remote
// API enforces the same, this only saves the round trip.
type Usecase struct {
	users domain.Gateway
	log   *zap.Logger
}

func NewUsecase(users domain.Gateway, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{users: users, log: log}
}

func requireAdmin(s *session.Session) error {
	if s == nil || s.Role != domain.RoleAdmin {
		return workflow.Forbidden("only admins can manage users")
	}
	return nil
}

func checkRole(r domain.Role) error {
	if !r.Valid() {
		return workflow.Invalid("unknown role '" + string(r) + "'")
	}
	return nil
}

func (u *Usecase) List(ctx context.Context, s *session.Session) ([]domain.User, error) {
	if err := requireAdmin(s); err != nil {
		return nil, err
	}
	users, err := u.users.List(ctx, s.Token)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (u *Usecase) Create(ctx context.Context, s *session.Session, p domain.CreatePayload) (*domain.User, error) {
	if err := requireAdmin(s); err != nil {
		return nil, err
	}
	if err := checkRole(p.Role); err != nil {
		return nil, err
	}
	p.Email = strings.TrimSpace(p.Email)
	p.Username = strings.TrimSpace(p.Username)

	created, err := u.users.Create(ctx, s.Token, p)
	if err != nil {
		return nil, err
	}
	u.log.Info("user created", zap.String("by", s.UserID), zap.String("role", string(p.Role)))
	return created, nil
}

func (u *Usecase) UpdateRole(ctx context.Context, s *session.Session, userID string, role domain.Role) error {
	if err := requireAdmin(s); err != nil {
		return err
	}
	if strings.TrimSpace(userID) == "" {
		return workflow.Invalid("user id is required")
	}
	if err := checkRole(role); err != nil {
		return err
	}
	if err := u.users.UpdateRole(ctx, s.Token, userID, domain.UpdateRolePayload{Role: role}); err != nil {
		return err
	}
	u.log.Info("user role changed",
		zap.String("by", s.UserID),
		zap.String("user_id", userID),
		zap.String("role", string(role)))
	return nil
}

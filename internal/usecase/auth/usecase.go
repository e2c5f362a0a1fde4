package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"glint-backoffice/internal/domain/session"
	"glint-backoffice/internal/domain/user"
	"glint-backoffice/internal/domain/workflow"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Usecase struct {
	users    user.Gateway
	sessions session.Store
	maxTTL   time.Duration
	log      *zap.Logger
	now      func() time.Time
}

// NewUsecase: maxTTL bounds every session, whatever the remote token says.
func NewUsecase(users user.Gateway, sessions session.Store, maxTTL time.Duration, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{users: users, sessions: sessions, maxTTL: maxTTL, log: log, now: time.Now}
}

func (u *Usecase) Login(ctx context.Context, in LoginInput) (*LoginDTO, error) {
	identifier := strings.TrimSpace(in.Identifier)
	if identifier == "" || in.Password == "" {
		return nil, workflow.Invalid("identifier and password are required")
	}

	token, err := u.users.Login(ctx, user.LoginPayload{Identifier: identifier, Password: in.Password})
	if err != nil {
		return nil, err
	}
	me, err := u.users.Me(ctx, token)
	if err != nil {
		return nil, err
	}

	now := u.now().UTC()
	ttl := u.ttlFor(token, now)
	if ttl <= 0 {
		return nil, session.ErrExpired
	}
	s := &session.Session{
		ID:        uuid.NewString(),
		Token:     token,
		UserID:    me.ID,
		Role:      me.Role,
		Username:  me.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if err := u.sessions.Save(ctx, s); err != nil {
		return nil, err
	}
	u.log.Info("session created",
		zap.String("user_id", me.ID),
		zap.String("role", string(me.Role)),
		zap.Time("expires_at", s.ExpiresAt))

	return &LoginDTO{SessionID: s.ID, ExpiresAt: s.ExpiresAt, User: me}, nil
}

// ttlFor reads exp from the remote token without verifying it. The gateway
// never trusts the claims for identity, only to avoid outliving the token.
func (u *Usecase) ttlFor(token string, now time.Time) time.Duration {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil || claims.ExpiresAt == nil {
		return u.maxTTL
	}
	ttl := claims.ExpiresAt.Time.Sub(now)
	if ttl > u.maxTTL {
		return u.maxTTL
	}
	return ttl
}

func (u *Usecase) Register(ctx context.Context, p user.RegisterPayload) error {
	return u.users.Register(ctx, p)
}

func (u *Usecase) Logout(ctx context.Context, s *session.Session) error {
	if s == nil {
		return session.ErrNotFound
	}
	return u.sessions.Delete(ctx, s.ID)
}

// Me fetches a fresh profile. A 401 from the remote ends the local session.
func (u *Usecase) Me(ctx context.Context, s *session.Session) (*user.User, error) {
	if s == nil {
		return nil, session.ErrNotFound
	}
	me, err := u.users.Me(ctx, s.Token)
	if err != nil {
		var unauthorized interface{ Unauthorized() bool }
		if errors.As(err, &unauthorized) && unauthorized.Unauthorized() {
			if derr := u.sessions.Delete(ctx, s.ID); derr != nil {
				u.log.Warn("drop revoked session",
					zap.String("user_id", s.UserID),
					zap.Error(derr))
			}
			return nil, session.ErrExpired
		}
		return nil, err
	}
	return me, nil
}

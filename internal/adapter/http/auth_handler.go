package http

import (
	"net/http"

	"glint-backoffice/internal/adapter/middleware"
	"glint-backoffice/internal/domain/user"
	"glint-backoffice/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct{ uc *auth.Usecase }

func NewAuthHandler(uc *auth.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

type loginReq struct {
	// email or username
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"   validate:"required"`
}

type registerReq struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Phone     string `json:"phone"      validate:"required"`
	Password  string `json:"password"   validate:"required"`
	Username  string `json:"username"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Login(c.Request().Context(), auth.LoginInput(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	if err := h.uc.Register(c.Request().Context(), user.RegisterPayload(req)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"status": "registered"})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context(), middleware.CurrentSession(c)); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) Me(c echo.Context) error {
	me, err := h.uc.Me(c.Request().Context(), middleware.CurrentSession(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, me)
}

package http

import (
	"net/http"

	"glint-backoffice/internal/adapter/middleware"
	"glint-backoffice/internal/domain/user"
	ucUser "glint-backoffice/internal/usecase/user"

	"github.com/labstack/echo/v4"
)

type UserHandler struct{ uc *ucUser.Usecase }

func NewUserHandler(uc *ucUser.Usecase) *UserHandler { return &UserHandler{uc: uc} }

type createUserReq struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Phone     string `json:"phone"      validate:"required"`
	Username  string `json:"username"   validate:"required"`
	Password  string `json:"password"   validate:"required,min=6"`
	Role      string `json:"role"       validate:"required,role"`
}

type updateRoleReq struct {
	Role string `json:"role" validate:"required,role"`
}

func (h *UserHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), middleware.CurrentSession(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) Create(c echo.Context) error {
	var req createUserReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	u, err := h.uc.Create(c.Request().Context(), middleware.CurrentSession(c), user.CreatePayload{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Username:  req.Username,
		Password:  req.Password,
		Role:      user.Role(req.Role),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *UserHandler) UpdateRole(c echo.Context) error {
	userID := c.Param("user_id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing user_id path param"})
	}
	var req updateRoleReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	if err := h.uc.UpdateRole(c.Request().Context(), middleware.CurrentSession(c), userID, user.Role(req.Role)); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

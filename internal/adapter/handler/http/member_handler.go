package http

import (
	"net/http"

	"github.com/itsmardochee/Planit-sub003/internal/usecase"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// MemberHandler handles workspace membership HTTP requests
type MemberHandler struct {
	logger  *zap.Logger
	members *usecase.MemberService
}

// NewMemberHandler creates a new member handler instance
func NewMemberHandler(logger *zap.Logger, members *usecase.MemberService) *MemberHandler {
	return &MemberHandler{
		logger:  logger,
		members: members,
	}
}

type inviteMemberRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Email  string `json:"email" validate:"omitempty,email"`
	Role   string `json:"role" validate:"required"`
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// List handles GET /api/v1/workspaces/:workspaceID/members
func (h *MemberHandler) List(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	members, err := h.members.List(c.Request().Context(), actorID, c.Param("workspaceID"))
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, members)
}

// Invite handles POST /api/v1/workspaces/:workspaceID/members
func (h *MemberHandler) Invite(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	var req inviteMemberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return badRequest(c, "user_id and role are required")
	}

	member, err := h.members.Invite(c.Request().Context(), actorID, c.Param("workspaceID"), req.UserID, req.Email, req.Role)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, member)
}

// AcceptInvite handles POST /api/v1/workspaces/:workspaceID/members/accept
func (h *MemberHandler) AcceptInvite(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.members.AcceptInvite(c.Request().Context(), actorID, c.Param("workspaceID")); err != nil {
		return writeError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ChangeRole handles PATCH /api/v1/workspaces/:workspaceID/members/:userID/role
func (h *MemberHandler) ChangeRole(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	var req changeRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return badRequest(c, "role is required")
	}

	member, err := h.members.ChangeRole(c.Request().Context(), actorID, c.Param("workspaceID"), c.Param("userID"), req.Role)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, member)
}

// Remove handles DELETE /api/v1/workspaces/:workspaceID/members/:userID
func (h *MemberHandler) Remove(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.members.Remove(c.Request().Context(), actorID, c.Param("workspaceID"), c.Param("userID")); err != nil {
		return writeError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

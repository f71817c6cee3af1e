package http

import (
	"net/http"

	"github.com/itsmardochee/Planit-sub003/internal/domain/entity"
	"github.com/itsmardochee/Planit-sub003/internal/middleware/auth"
	"github.com/itsmardochee/Planit-sub003/internal/usecase"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// WorkspaceHandler handles workspace-related HTTP requests
type WorkspaceHandler struct {
	logger     *zap.Logger
	workspaces *usecase.WorkspaceService
}

// NewWorkspaceHandler creates a new workspace handler instance
func NewWorkspaceHandler(logger *zap.Logger, workspaces *usecase.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{
		logger:     logger,
		workspaces: workspaces,
	}
}

type createWorkspaceRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description" validate:"max=2000"`
}

// Create handles POST /api/v1/workspaces
func (h *WorkspaceHandler) Create(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	var req createWorkspaceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return badRequest(c, "name is required")
	}

	email := ""
	if user, err := auth.GetUserFromContext(c); err == nil {
		email = user.Email
	}

	workspace, err := h.workspaces.Create(c.Request().Context(), actorID, email, req.Name, req.Description)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, workspace)
}

// List handles GET /api/v1/workspaces
func (h *WorkspaceHandler) List(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	workspaces, err := h.workspaces.ListMine(c.Request().Context(), actorID)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, workspaces)
}

// Get handles GET /api/v1/workspaces/:workspaceID
func (h *WorkspaceHandler) Get(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	workspace, err := h.workspaces.Get(c.Request().Context(), actorID, c.Param("workspaceID"))
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, workspace)
}

// Update handles PATCH /api/v1/workspaces/:workspaceID
func (h *WorkspaceHandler) Update(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	var update entity.WorkspaceUpdate
	if err := c.Bind(&update); err != nil {
		return badRequest(c, "invalid request body")
	}

	workspace, err := h.workspaces.Update(c.Request().Context(), actorID, c.Param("workspaceID"), update)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, workspace)
}

// Delete handles DELETE /api/v1/workspaces/:workspaceID
func (h *WorkspaceHandler) Delete(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.workspaces.Delete(c.Request().Context(), actorID, c.Param("workspaceID")); err != nil {
		return writeError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

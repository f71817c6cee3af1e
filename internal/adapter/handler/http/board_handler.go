package http

import (
	"net/http"

	"github.com/itsmardochee/Planit-sub003/internal/domain/entity"
	"github.com/itsmardochee/Planit-sub003/internal/usecase"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// BoardHandler handles board HTTP requests
type BoardHandler struct {
	logger *zap.Logger
	boards *usecase.BoardService
}

// NewBoardHandler creates a new board handler instance
func NewBoardHandler(logger *zap.Logger, boards *usecase.BoardService) *BoardHandler {
	return &BoardHandler{
		logger: logger,
		boards: boards,
	}
}

type createBoardRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description" validate:"max=2000"`
	Background  string `json:"background" validate:"omitempty,max=64"`
}

// Create handles POST /api/v1/workspaces/:workspaceID/boards
func (h *BoardHandler) Create(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	var req createBoardRequest
	if err := bindAndValidate(c, &req); err != nil {
		return badRequest(c, "name is required")
	}

	board, err := h.boards.Create(c.Request().Context(), actorID, c.Param("workspaceID"), req.Name, req.Description, req.Background)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, board)
}

// List handles GET /api/v1/workspaces/:workspaceID/boards
func (h *BoardHandler) List(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	includeArchived := c.QueryParam("include_archived") == "true"
	boards, err := h.boards.ListByWorkspace(c.Request().Context(), actorID, c.Param("workspaceID"), includeArchived)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, boards)
}

// Get handles GET /api/v1/boards/:boardID and returns the full board
// snapshot with lists, cards and labels.
func (h *BoardHandler) Get(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	snapshot, err := h.boards.Get(c.Request().Context(), actorID, c.Param("boardID"))
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, snapshot)
}

// Update handles PATCH /api/v1/boards/:boardID
func (h *BoardHandler) Update(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	var update entity.BoardUpdate
	if err := c.Bind(&update); err != nil {
		return badRequest(c, "invalid request body")
	}

	board, err := h.boards.Update(c.Request().Context(), actorID, c.Param("boardID"), update)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, board)
}

// Delete handles DELETE /api/v1/boards/:boardID
func (h *BoardHandler) Delete(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.boards.Delete(c.Request().Context(), actorID, c.Param("boardID")); err != nil {
		return writeError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

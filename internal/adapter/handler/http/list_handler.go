package http

import (
	"net/http"

	"github.com/itsmardochee/Planit-sub003/internal/usecase"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListHandler handles board list HTTP requests
type ListHandler struct {
	logger *zap.Logger
	lists  *usecase.ListService
}

// NewListHandler creates a new list handler instance
func NewListHandler(logger *zap.Logger, lists *usecase.ListService) *ListHandler {
	return &ListHandler{
		logger: logger,
		lists:  lists,
	}
}

type createListRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

type renameListRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

type archiveListRequest struct {
	Archived bool `json:"archived"`
}

type moveListRequest struct {
	Index int `json:"index" validate:"min=0"`
}

// Create handles POST /api/v1/boards/:boardID/lists
func (h *ListHandler) Create(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	var req createListRequest
	if err := bindAndValidate(c, &req); err != nil {
		return badRequest(c, "name is required")
	}

	list, err := h.lists.Create(c.Request().Context(), actorID, c.Param("boardID"), req.Name)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, list)
}

// Rename handles PATCH /api/v1/lists/:listID
func (h *ListHandler) Rename(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	var req renameListRequest
	if err := bindAndValidate(c, &req); err != nil {
		return badRequest(c, "name is required")
	}

	list, err := h.lists.Rename(c.Request().Context(), actorID, c.Param("listID"), req.Name)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, list)
}

// Archive handles PATCH /api/v1/lists/:listID/archive
func (h *ListHandler) Archive(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	var req archiveListRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	list, err := h.lists.Archive(c.Request().Context(), actorID, c.Param("listID"), req.Archived)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, list)
}

// Move handles PATCH /api/v1/lists/:listID/move
func (h *ListHandler) Move(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	var req moveListRequest
	if err := bindAndValidate(c, &req); err != nil {
		return badRequest(c, "index must be zero or positive")
	}

	list, err := h.lists.Move(c.Request().Context(), actorID, c.Param("listID"), req.Index)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, list)
}

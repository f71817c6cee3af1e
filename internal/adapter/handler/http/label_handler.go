package http

import (
	"net/http"

	"github.com/itsmardochee/Planit-sub003/internal/usecase"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// LabelHandler handles board label HTTP requests
type LabelHandler struct {
	logger *zap.Logger
	labels *usecase.LabelService
}

// NewLabelHandler creates a new label handler instance
func NewLabelHandler(logger *zap.Logger, labels *usecase.LabelService) *LabelHandler {
	return &LabelHandler{
		logger: logger,
		labels: labels,
	}
}

type labelRequest struct {
	Name  string `json:"name" validate:"required,max=64"`
	Color string `json:"color" validate:"omitempty,max=16"`
}

// List handles GET /api/v1/boards/:boardID/labels
func (h *LabelHandler) List(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	labels, err := h.labels.ListByBoard(c.Request().Context(), actorID, c.Param("boardID"))
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, labels)
}

// Create handles POST /api/v1/boards/:boardID/labels
func (h *LabelHandler) Create(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	var req labelRequest
	if err := bindAndValidate(c, &req); err != nil {
		return badRequest(c, "name is required")
	}

	label, err := h.labels.Create(c.Request().Context(), actorID, c.Param("boardID"), req.Name, req.Color)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, label)
}

// Update handles PATCH /api/v1/labels/:labelID
func (h *LabelHandler) Update(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	var req labelRequest
	if err := bindAndValidate(c, &req); err != nil {
		return badRequest(c, "name is required")
	}

	label, err := h.labels.Update(c.Request().Context(), actorID, c.Param("labelID"), req.Name, req.Color)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, label)
}

// Delete handles DELETE /api/v1/labels/:labelID
func (h *LabelHandler) Delete(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.labels.Delete(c.Request().Context(), actorID, c.Param("labelID")); err != nil {
		return writeError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

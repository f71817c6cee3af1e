package http

import (
	"net/http"

	"github.com/itsmardochee/Planit-sub003/internal/domain/entity"
	"github.com/itsmardochee/Planit-sub003/internal/usecase"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CardHandler handles card HTTP requests
type CardHandler struct {
	logger *zap.Logger
	cards  *usecase.CardService
}

// NewCardHandler creates a new card handler instance
func NewCardHandler(logger *zap.Logger, cards *usecase.CardService) *CardHandler {
	return &CardHandler{
		logger: logger,
		cards:  cards,
	}
}

type createCardRequest struct {
	Title       string `json:"title" validate:"required,max=500"`
	Description string `json:"description" validate:"max=10000"`
}

type moveCardRequest struct {
	ListID string `json:"list_id" validate:"required"`
	Index  int    `json:"index" validate:"min=0"`
}

// Create handles POST /api/v1/lists/:listID/cards
func (h *CardHandler) Create(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	var req createCardRequest
	if err := bindAndValidate(c, &req); err != nil {
		return badRequest(c, "title is required")
	}

	card, err := h.cards.Create(c.Request().Context(), actorID, c.Param("listID"), req.Title, req.Description)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, card)
}

// Get handles GET /api/v1/cards/:cardID
func (h *CardHandler) Get(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	card, err := h.cards.Get(c.Request().Context(), actorID, c.Param("cardID"))
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, card)
}

// Update handles PATCH /api/v1/cards/:cardID
func (h *CardHandler) Update(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	var update entity.CardUpdate
	if err := c.Bind(&update); err != nil {
		return badRequest(c, "invalid request body")
	}

	card, err := h.cards.Update(c.Request().Context(), actorID, c.Param("cardID"), update)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, card)
}

// Move handles PATCH /api/v1/cards/:cardID/move
func (h *CardHandler) Move(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	var req moveCardRequest
	if err := bindAndValidate(c, &req); err != nil {
		return badRequest(c, "list_id is required and index must be zero or positive")
	}

	card, err := h.cards.Move(c.Request().Context(), actorID, c.Param("cardID"), req.ListID, req.Index)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, card)
}

// Delete handles DELETE /api/v1/cards/:cardID
func (h *CardHandler) Delete(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.cards.Delete(c.Request().Context(), actorID, c.Param("cardID")); err != nil {
		return writeError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

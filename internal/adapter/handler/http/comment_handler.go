package http

import (
	"net/http"
	"strconv"

	"github.com/itsmardochee/Planit-sub003/internal/usecase"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CommentHandler handles card comment HTTP requests
type CommentHandler struct {
	logger   *zap.Logger
	comments *usecase.CommentService
}

// NewCommentHandler creates a new comment handler instance
func NewCommentHandler(logger *zap.Logger, comments *usecase.CommentService) *CommentHandler {
	return &CommentHandler{
		logger:   logger,
		comments: comments,
	}
}

type commentBodyRequest struct {
	Body string `json:"body" validate:"required,max=10000"`
}

// List handles GET /api/v1/cards/:cardID/comments
func (h *CommentHandler) List(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	limit, offset := paginationParams(c)
	comments, err := h.comments.ListByCard(c.Request().Context(), actorID, c.Param("cardID"), limit, offset)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, comments)
}

// Add handles POST /api/v1/cards/:cardID/comments
func (h *CommentHandler) Add(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	var req commentBodyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return badRequest(c, "body is required")
	}

	comment, err := h.comments.Add(c.Request().Context(), actorID, c.Param("cardID"), req.Body)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, comment)
}

// Edit handles PATCH /api/v1/comments/:commentID
func (h *CommentHandler) Edit(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	var req commentBodyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return badRequest(c, "body is required")
	}

	comment, err := h.comments.Edit(c.Request().Context(), actorID, c.Param("commentID"), req.Body)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, comment)
}

// Delete handles DELETE /api/v1/comments/:commentID
func (h *CommentHandler) Delete(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.comments.Delete(c.Request().Context(), actorID, c.Param("commentID")); err != nil {
		return writeError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// paginationParams reads limit and offset query parameters, tolerating
// absent or malformed values.
func paginationParams(c echo.Context) (limit, offset int) {
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = v
	}
	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}

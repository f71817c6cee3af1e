package http

import (
	"net/http"

	"github.com/itsmardochee/Planit-sub003/internal/usecase"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ActivityHandler serves the workspace and board activity feeds
type ActivityHandler struct {
	logger     *zap.Logger
	activities *usecase.ActivityService
}

// NewActivityHandler creates a new activity handler instance
func NewActivityHandler(logger *zap.Logger, activities *usecase.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		logger:     logger,
		activities: activities,
	}
}

// WorkspaceFeed handles GET /api/v1/workspaces/:workspaceID/activity
func (h *ActivityHandler) WorkspaceFeed(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	limit, offset := paginationParams(c)
	feed, err := h.activities.WorkspaceFeed(c.Request().Context(), actorID, c.Param("workspaceID"), limit, offset)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, feed)
}

// BoardFeed handles GET /api/v1/workspaces/:workspaceID/boards/:boardID/activity
func (h *ActivityHandler) BoardFeed(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	limit, offset := paginationParams(c)
	feed, err := h.activities.BoardFeed(c.Request().Context(), actorID, c.Param("workspaceID"), c.Param("boardID"), limit, offset)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, feed)
}

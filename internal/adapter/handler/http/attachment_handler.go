package http

import (
	"net/http"

	"github.com/itsmardochee/Planit-sub003/internal/usecase"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// maxAttachmentSize caps uploads at 25 MiB.
const maxAttachmentSize = 25 << 20

// AttachmentHandler handles card attachment HTTP requests
type AttachmentHandler struct {
	logger      *zap.Logger
	attachments *usecase.AttachmentService
}

// NewAttachmentHandler creates a new attachment handler instance
func NewAttachmentHandler(logger *zap.Logger, attachments *usecase.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{
		logger:      logger,
		attachments: attachments,
	}
}

// List handles GET /api/v1/cards/:cardID/attachments
func (h *AttachmentHandler) List(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	attachments, err := h.attachments.ListByCard(c.Request().Context(), actorID, c.Param("cardID"))
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, attachments)
}

// Upload handles POST /api/v1/cards/:cardID/attachments with multipart form
// data carrying a "file" part.
func (h *AttachmentHandler) Upload(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "multipart file field is required")
	}
	if fileHeader.Size > maxAttachmentSize {
		return c.JSON(http.StatusRequestEntityTooLarge, echo.Map{
			"error": "attachment exceeds the maximum allowed size",
			"code":  "ATTACHMENT_TOO_LARGE",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("failed to open uploaded file", zap.Error(err))
		return badRequest(c, "unreadable multipart file")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	attachment, err := h.attachments.Upload(
		c.Request().Context(), actorID, c.Param("cardID"),
		fileHeader.Filename, contentType, file, fileHeader.Size,
	)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, attachment)
}

// Download handles GET /api/v1/attachments/:attachmentID/download and
// returns a presigned URL instead of streaming the bytes.
func (h *AttachmentHandler) Download(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	url, err := h.attachments.DownloadURL(c.Request().Context(), actorID, c.Param("attachmentID"))
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"url": url})
}

// Delete handles DELETE /api/v1/attachments/:attachmentID
func (h *AttachmentHandler) Delete(c echo.Context) error {
	actorID, ok := userID(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.attachments.Delete(c.Request().Context(), actorID, c.Param("attachmentID")); err != nil {
		return writeError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

package http

import (
	"errors"
	"net/http"

	domainErrors "github.com/itsmardochee/Planit-sub003/internal/domain/errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// userID extracts the authenticated user's id placed in the echo context by
// the JWT middleware.
func userID(c echo.Context) (string, bool) {
	id, ok := c.Get("user_id").(string)
	return id, ok && id != ""
}

// bindAndValidate decodes the request body into req and runs the
// registered validator over it.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}

// writeError maps domain errors onto HTTP statuses with a stable
// {"error","code"} body. Unrecognized errors become 500s with the detail
// kept out of the response.
func writeError(c echo.Context, logger *zap.Logger, err error) error {
	var wsErr *domainErrors.WorkspaceError
	if errors.As(err, &wsErr) {
		return c.JSON(workspaceErrorStatus(wsErr.Type), echo.Map{
			"error": wsErr.Message,
			"code":  wsErr.Type,
		})
	}

	var resErr *domainErrors.ResourceError
	if errors.As(err, &resErr) {
		return c.JSON(resourceErrorStatus(resErr.Type), echo.Map{
			"error": resourceErrorMessage(resErr),
			"code":  resErr.Type,
		})
	}

	logger.Error("unhandled error",
		zap.String("path", c.Request().URL.Path),
		zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{
		"error": "internal server error",
		"code":  "INTERNAL_ERROR",
	})
}

func workspaceErrorStatus(errType string) int {
	switch errType {
	case domainErrors.ErrTypeWorkspaceNotFound, domainErrors.ErrTypeMemberNotFound:
		return http.StatusNotFound
	case domainErrors.ErrTypeUserNotMember,
		domainErrors.ErrTypeInsufficientPermissions,
		domainErrors.ErrTypeRoleChangeDenied:
		return http.StatusForbidden
	case domainErrors.ErrTypeMemberAlreadyExists, domainErrors.ErrTypeOwnerNotRemovable:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func resourceErrorMessage(err *domainErrors.ResourceError) string {
	switch err.Type {
	case domainErrors.ErrTypeNotFound:
		return err.Resource + " not found"
	case domainErrors.ErrTypeConflict:
		return err.Resource + " conflicts with current state"
	case domainErrors.ErrTypeStorageFailed:
		return err.Resource + " storage operation failed"
	default:
		return "request failed"
	}
}

func resourceErrorStatus(errType string) int {
	switch errType {
	case domainErrors.ErrTypeNotFound:
		return http.StatusNotFound
	case domainErrors.ErrTypeConflict:
		return http.StatusConflict
	case domainErrors.ErrTypeStorageFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{
		"error": "unauthorized",
		"code":  "UNAUTHORIZED",
	})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{
		"error": message,
		"code":  "INVALID_REQUEST",
	})
}

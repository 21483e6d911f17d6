package handlers

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/apperrors"
	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/common"
)

// callerID extracts the authenticated user's id established by the identity
// middleware. Resource handlers never trust ids from the request body.
func callerID(c echo.Context) (uuid.UUID, error) {
	userID, ok := common.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return uuid.Nil, apperrors.Unauthorized("User not authenticated")
	}
	return userID, nil
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.BadRequest("Invalid id format")
	}
	return id, nil
}

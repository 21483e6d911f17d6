package common

import (
	"time"

	"github.com/labstack/echo/v4"
)

// APIResponse is the uniform envelope for every endpoint, success or failure.
type APIResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data"`
	Message   string      `json:"message"`
	Timestamp time.Time   `json:"timestamp"`
}

// Respond writes a success envelope with the given status code.
func Respond(c echo.Context, status int, data interface{}, message string) error {
	return c.JSON(status, APIResponse{
		Success:   true,
		Data:      data,
		Message:   message,
		Timestamp: time.Now(),
	})
}

// RespondError writes a failure envelope with the given status code.
func RespondError(c echo.Context, status int, message string) error {
	return c.JSON(status, APIResponse{
		Success:   false,
		Data:      nil,
		Message:   message,
		Timestamp: time.Now(),
	})
}

package helpers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint returns. Failure responses never
// carry Data; success responses never carry Error.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// RespondWithData writes a success envelope wrapping the given payload.
func RespondWithData(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

// RespondWithMessage writes a success envelope carrying both a payload and an
// explanatory message, used for empty list results.
func RespondWithMessage(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// RespondWithError writes a failure envelope. The Error field carries the
// status text; Message carries the caller's explanation.
func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: customMessage,
		Error:   http.StatusText(statusCode),
	})
}

// RespondWithInternalError writes a 500 failure envelope, surfacing the
// underlying error text alongside the caller's message.
func RespondWithInternalError(c *gin.Context, customMessage string, err error) {
	c.JSON(http.StatusInternalServerError, Response{
		Success: false,
		Message: customMessage,
		Error:   err.Error(),
	})
}

package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with status "success".
func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Resp{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// Error sends an error response with the given status code. The message is
// the human-readable summary; err carries the specific rejection reason.
func Error(c *gin.Context, code int, message string, err error) {
	resp := Resp{
		Status:  StatusError,
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(code, resp)
}

// InternalError sends 500 without leaking internals to the caller.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Resp{
		Status:  StatusError,
		Message: "internal server error",
	})
}

package response

import (
	"github.com/CodeWithFin/platypus-website/internal/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// FromError renders any error through apperror.ToHTTP.
func FromError(c *gin.Context, err error, details interface{}) {
	httpErr := apperror.ToHTTP(err)
	Error(c, httpErr.Status, httpErr.Code, httpErr.Message, details)
}

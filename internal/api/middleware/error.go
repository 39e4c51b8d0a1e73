package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"powerplant-dispatch/internal/apierr"
)

// ErrorHandler recovers panics raised inside a handler and turns them into
// the same {status_code, exception_case, detail} envelope a handled error
// would produce, matching the generic exception handler of the service this
// was distilled from.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		apiErr := apierr.Internal(fmt.Sprintf("%v", recovered))
		c.JSON(apiErr.StatusCode, apiErr)
		c.Abort()
	})
}

package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/carinsurance-service/internal/platform/logging"
)

// CarScope records the :carId path parameter in the request scope and on the
// context logger, so every line logged while serving a car route carries
// car_id. It must be attached to a route group, where path parameters are
// already resolved. Invalid IDs are left for the handler to reject.
func CarScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("carId"), 10, 64)
		if err == nil && id > 0 {
			ctx := ContextWithCarID(c.Request.Context(), id)
			c.Request = c.Request.WithContext(logging.WithCarID(ctx, id))
		}

		c.Next()
	}
}

package http

import (
	"net/http"
	"strconv"

	"pawnops/internal/core/domain/model/principal"

	"github.com/labstack/echo/v4"
)

const principalContextKey = "principal"

// PrincipalMiddleware resolves the authenticated caller from the
// X-User-Id and X-User-Role headers set by the auth gateway. Requests
// without a resolvable principal are rejected with 401 before reaching
// any handler.
func PrincipalMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawID := c.Request().Header.Get("X-User-Id")
			rawRole := c.Request().Header.Get("X-User-Role")
			if rawID == "" || rawRole == "" {
				return c.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "missing credentials",
				})
			}

			id, err := strconv.ParseInt(rawID, 10, 64)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "invalid user id",
				})
			}

			p, err := principal.NewPrincipal(id, rawRole)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "unknown role",
				})
			}

			c.Set(principalContextKey, p)
			return next(c)
		}
	}
}

func currentPrincipal(c echo.Context) principal.Principal {
	p, _ := c.Get(principalContextKey).(principal.Principal)
	return p
}

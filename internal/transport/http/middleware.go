package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/megamind1212/notesmate-api/internal/domain"
	"github.com/megamind1212/notesmate-api/internal/service"
	"github.com/megamind1212/notesmate-api/internal/util"
)

const (
	contextEmployeeKey = "auth.employee"
	contextTokenKey    = "auth.token"
)

func RequireAuth(sessions *service.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if strings.TrimSpace(authHeader) == "" {
				return c.JSON(http.StatusUnauthorized, util.Error("missing authorization header"))
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return c.JSON(http.StatusUnauthorized, util.Error("invalid authorization header"))
			}
			token := strings.TrimSpace(parts[1])
			emp, err := sessions.Authenticate(c.Request().Context(), token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, util.Error(err.Error()))
			}
			c.Set(contextEmployeeKey, emp)
			c.Set(contextTokenKey, token)
			return next(c)
		}
	}
}

func CurrentEmployee(c echo.Context) (*domain.Employee, bool) {
	emp, ok := c.Get(contextEmployeeKey).(*domain.Employee)
	return emp, ok
}

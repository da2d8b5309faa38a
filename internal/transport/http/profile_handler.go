package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/megamind1212/notesmate-api/internal/service"
	"github.com/megamind1212/notesmate-api/internal/util"
)

type ProfileHandler struct {
	sessions *service.SessionService
}

func RegisterProfile(e *echo.Echo, sessions *service.SessionService) {
	handler := &ProfileHandler{sessions: sessions}
	protected := e.Group("/api", RequireAuth(sessions))
	protected.GET("/me", handler.me)
	protected.POST("/logout", handler.logout)
}

// me handles GET /api/me
func (h *ProfileHandler) me(c echo.Context) error {
	emp, ok := CurrentEmployee(c)
	if !ok || emp == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	return c.JSON(http.StatusOK, EmployeeResponse{
		OrgID:        emp.OrgID,
		EmpID:        emp.EmpID,
		EmpName:      emp.Name,
		EmpShortname: emp.ShortName,
		EmpPhone:     emp.Phone,
		EmpEmail:     emp.Email,
	})
}

// logout handles POST /api/logout
func (h *ProfileHandler) logout(c echo.Context) error {
	token, ok := c.Get(contextTokenKey).(string)
	if !ok || token == "" {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	if err := h.sessions.Logout(c.Request().Context(), token); err != nil {
		c.Logger().Errorf("logout: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("unable to log out"))
	}
	return c.JSON(http.StatusOK, util.Message("Logged out"))
}

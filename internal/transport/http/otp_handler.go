package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/megamind1212/notesmate-api/internal/service"
	"github.com/megamind1212/notesmate-api/internal/util"
)

type OTPHandler struct {
	otps     *service.OTPService
	sessions *service.SessionService
}

// RegisterOTP wires the OTP login flow. sessions may be nil, in which case
// validate-otp confirms the login without issuing a token.
func RegisterOTP(e *echo.Echo, otps *service.OTPService, sessions *service.SessionService) {
	handler := &OTPHandler{otps: otps, sessions: sessions}
	e.POST("/api/request-otp", handler.requestOTP)
	e.POST("/api/validate-otp", handler.validateOTP)
}

// requestOTP handles POST /api/request-otp
func (h *OTPHandler) requestOTP(c echo.Context) error {
	var req OTPRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if req.OrgID <= 0 || req.EmpID <= 0 {
		return c.JSON(http.StatusBadRequest, util.Error("orgid and empid are required"))
	}

	message, err := h.otps.RequestOTP(c.Request().Context(), req.OrgID, req.EmpID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmployeeNotFound):
			return c.JSON(http.StatusNotFound, util.Error(err.Error()))
		case errors.Is(err, service.ErrEmployeeEmailMissing):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		default:
			c.Logger().Errorf("request otp: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("unable to issue OTP"))
		}
	}
	return c.JSON(http.StatusOK, util.Message(message))
}

// validateOTP handles POST /api/validate-otp
func (h *OTPHandler) validateOTP(c echo.Context) error {
	var req ValidateOTPRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if req.OrgID <= 0 || req.EmpID <= 0 || req.OTP == "" {
		return c.JSON(http.StatusBadRequest, util.Error("orgid, empid, and OTP are required"))
	}

	if err := h.otps.ValidateOTP(c.Request().Context(), req.OrgID, req.EmpID, req.OTP); err != nil {
		switch {
		case errors.Is(err, service.ErrOTPNotFound),
			errors.Is(err, service.ErrOTPExpired),
			errors.Is(err, service.ErrOTPInvalid):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		default:
			c.Logger().Errorf("validate otp: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("unable to validate OTP"))
		}
	}

	resp := ValidateOTPResponse{
		Message: service.MsgOTPValidated,
		OrgID:   req.OrgID,
		EmpID:   req.EmpID,
	}
	if h.sessions != nil {
		token, expiresAt, err := h.sessions.Issue(c.Request().Context(), req.OrgID, req.EmpID)
		if err != nil {
			// The OTP is already consumed, so confirm the login anyway.
			c.Logger().Errorf("issue session for %d-%d: %v", req.OrgID, req.EmpID, err)
		} else {
			resp.Token = token
			resp.ExpiresAt = expiresAt.UTC().Format(time.RFC3339)
		}
	}
	return c.JSON(http.StatusOK, resp)
}

package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/megamind1212/notesmate-api/internal/service"
	"github.com/megamind1212/notesmate-api/internal/util"
)

type RegistrationHandler struct {
	directory *service.DirectoryService
	clients   *service.ClientService
}

func RegisterDirectory(e *echo.Echo, directory *service.DirectoryService, clients *service.ClientService) {
	handler := &RegistrationHandler{directory: directory, clients: clients}
	e.POST("/api/register", handler.register)
	e.POST("/api/register-client", handler.registerClient)
	e.POST("/api/fetch-clients", handler.fetchClients)
}

// register handles POST /api/register
func (h *RegistrationHandler) register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if req.OrgID <= 0 || req.OrgName == "" || req.Shortname == "" || req.Address == "" ||
		req.OrgPhone == "" || req.OrgEmail == "" || req.EmpID <= 0 || req.EmpName == "" ||
		req.EmpShortname == "" || req.EmpPhone == "" || req.EmpEmail == "" {
		return c.JSON(http.StatusBadRequest, util.Error("All fields are required"))
	}

	input := service.RegistrationInput{
		OrgID:        req.OrgID,
		OrgName:      req.OrgName,
		OrgShortname: req.Shortname,
		OrgAddress:   req.Address,
		OrgPhone:     req.OrgPhone,
		OrgEmail:     req.OrgEmail,
		EmpID:        req.EmpID,
		EmpName:      req.EmpName,
		EmpShortname: req.EmpShortname,
		EmpPhone:     req.EmpPhone,
		EmpEmail:     req.EmpEmail,
	}
	if err := h.directory.Register(c.Request().Context(), input); err != nil {
		switch {
		case errors.Is(err, service.ErrEmployeeExists):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		default:
			c.Logger().Errorf("register: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("unable to register"))
		}
	}
	return c.JSON(http.StatusOK, util.Message("Registration successful"))
}

// registerClient handles POST /api/register-client
func (h *RegistrationHandler) registerClient(c echo.Context) error {
	var req RegisterClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if req.OrgID <= 0 || req.ClientName == "" || req.ClientShortname == "" ||
		req.ClientPhone == "" || req.ClientEmail == "" {
		return c.JSON(http.StatusBadRequest, util.Error("All fields are required"))
	}

	clientID, err := h.clients.Register(c.Request().Context(), service.ClientRegistrationInput{
		OrgID:           req.OrgID,
		ClientName:      req.ClientName,
		ClientShortname: req.ClientShortname,
		ClientPhone:     req.ClientPhone,
		ClientEmail:     req.ClientEmail,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrganizationNotFound):
			return c.JSON(http.StatusNotFound, util.Error(err.Error()))
		case errors.Is(err, service.ErrClientExists):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		default:
			c.Logger().Errorf("register client: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("unable to register client"))
		}
	}
	return c.JSON(http.StatusOK, RegisterClientResponse{
		Message:  "Client registered successfully",
		ClientID: clientID,
	})
}

// fetchClients handles POST /api/fetch-clients
func (h *RegistrationHandler) fetchClients(c echo.Context) error {
	var req FetchClientsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if req.OrgID <= 0 {
		return c.JSON(http.StatusBadRequest, util.Error("orgid is required"))
	}

	summaries, err := h.clients.List(c.Request().Context(), req.OrgID)
	if err != nil {
		c.Logger().Errorf("fetch clients: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("unable to fetch clients"))
	}

	entries := make([]ClientEntry, 0, len(summaries))
	for _, s := range summaries {
		entries = append(entries, ClientEntry{
			ClientID:        s.ClientID,
			ClientName:      s.Name,
			ClientShortname: s.ShortName,
			NoteCount:       s.NoteCount,
		})
	}
	return c.JSON(http.StatusOK, ClientsResponse{Clients: entries})
}

package http

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/megamind1212/notesmate-api/internal/domain"
	"github.com/megamind1212/notesmate-api/internal/repository/ports"
	"github.com/megamind1212/notesmate-api/internal/service"
)

type stubClientRepo struct {
	clients    map[string]*domain.Client
	noteCounts map[int64]int64
}

var _ ports.ClientRepository = (*stubClientRepo)(nil)

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{
		clients:    make(map[string]*domain.Client),
		noteCounts: make(map[int64]int64),
	}
}

func stubClientKey(orgID, clientID int64) string {
	return fmt.Sprintf("%d/%d", orgID, clientID)
}

func (s *stubClientRepo) CreateClient(ctx context.Context, c *domain.Client) error {
	clone := *c
	s.clients[stubClientKey(c.OrgID, c.ClientID)] = &clone
	return nil
}

func (s *stubClientRepo) FindClient(ctx context.Context, orgID, clientID int64) (*domain.Client, error) {
	c, ok := s.clients[stubClientKey(orgID, clientID)]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return c, nil
}

func (s *stubClientRepo) MaxClientID(ctx context.Context, orgID int64) (int64, error) {
	var max int64
	for _, c := range s.clients {
		if c.OrgID == orgID && c.ClientID > max {
			max = c.ClientID
		}
	}
	return max, nil
}

func (s *stubClientRepo) ListClients(ctx context.Context, orgID int64) ([]domain.Client, error) {
	var out []domain.Client
	for id := int64(1); id <= int64(len(s.clients)); id++ {
		if c, ok := s.clients[stubClientKey(orgID, id)]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (s *stubClientRepo) CountNotesByClient(ctx context.Context, orgID int64, clientIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64)
	for _, id := range clientIDs {
		if n, ok := s.noteCounts[id]; ok {
			counts[id] = n
		}
	}
	return counts, nil
}

type memDirectory struct {
	orgs      map[int64]*domain.Organization
	employees map[string]*domain.Employee
}

var _ ports.DirectoryRepository = (*memDirectory)(nil)

func newMemDirectory() *memDirectory {
	return &memDirectory{
		orgs:      make(map[int64]*domain.Organization),
		employees: make(map[string]*domain.Employee),
	}
}

func (d *memDirectory) CreateOrganization(ctx context.Context, org *domain.Organization) error {
	clone := *org
	d.orgs[org.OrgID] = &clone
	return nil
}

func (d *memDirectory) FindOrganization(ctx context.Context, orgID int64) (*domain.Organization, error) {
	org, ok := d.orgs[orgID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return org, nil
}

func (d *memDirectory) CreateEmployee(ctx context.Context, emp *domain.Employee) error {
	clone := *emp
	d.employees[domain.OTPKey(emp.OrgID, emp.EmpID)] = &clone
	return nil
}

func (d *memDirectory) FindEmployee(ctx context.Context, orgID, empID int64) (*domain.Employee, error) {
	emp, ok := d.employees[domain.OTPKey(orgID, empID)]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return emp, nil
}

func newRegistrationTestServer(t *testing.T) (*echo.Echo, *memDirectory, *stubClientRepo) {
	t.Helper()
	directory := newMemDirectory()
	clients := newStubClientRepo()
	e := echo.New()
	RegisterDirectory(e, service.NewDirectoryService(directory), service.NewClientService(clients, directory))
	return e, directory, clients
}

const registerBody = `{
	"orgId": 101, "orgName": "Harbor Clinic", "shortname": "HC",
	"address": "12 Pier Road", "orgPhone": "555-0100", "orgEmail": "office@harborclinic.example",
	"empId": 1, "empName": "Dana Reyes", "empShortname": "DR",
	"empPhone": "555-0101", "empEmail": "dana@harborclinic.example"
}`

func TestRegisterEndpoint(t *testing.T) {
	e, directory, _ := newRegistrationTestServer(t)

	rec := postJSON(e, "/api/register", registerBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if body := decodeBody(t, rec); body["message"] != "Registration successful" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	if directory.orgs[101] == nil {
		t.Fatalf("expected organization 101 created")
	}
	if directory.employees["101-1"] == nil {
		t.Fatalf("expected employee 101-1 created")
	}

	// The same employee cannot register twice.
	rec = postJSON(e, "/api/register", registerBody)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on duplicate, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Employee with this empid already exists in this organization" {
		t.Fatalf("unexpected error: %v", body["error"])
	}
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	e, _, _ := newRegistrationTestServer(t)

	rec := postJSON(e, "/api/register", `{"orgId":101,"orgName":"Harbor Clinic"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "All fields are required" {
		t.Fatalf("unexpected error: %v", body["error"])
	}
}

func TestRegisterClientAndFetchClients(t *testing.T) {
	e, directory, clients := newRegistrationTestServer(t)
	directory.orgs[101] = &domain.Organization{OrgID: 101, OrgName: "Harbor Clinic"}

	rec := postJSON(e, "/api/register-client", `{
		"orgId": 101, "clientName": "Alex Moreno", "clientShortname": "AM",
		"clientPhone": "555-0200", "clientEmail": "alex@example.com"
	}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("register-client: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["message"] != "Client registered successfully" || body["clientId"] != float64(1) {
		t.Fatalf("unexpected response: %v", body)
	}

	clients.noteCounts[1] = 4

	rec = postJSON(e, "/api/fetch-clients", `{"orgId":101}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("fetch-clients: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body = decodeBody(t, rec)
	listed, ok := body["clients"].([]any)
	if !ok || len(listed) != 1 {
		t.Fatalf("expected one client, got %v", body["clients"])
	}
	entry, ok := listed[0].(map[string]any)
	if !ok {
		t.Fatalf("unexpected client entry: %v", listed[0])
	}
	// The frontend depends on this exact casing.
	if entry["ClientID"] != float64(1) || entry["ClientName"] != "Alex Moreno" ||
		entry["ClientShortname"] != "AM" || entry["NoteCount"] != float64(4) {
		t.Fatalf("unexpected client entry: %v", entry)
	}
}

func TestRegisterClientUnknownOrganization(t *testing.T) {
	e, _, _ := newRegistrationTestServer(t)

	rec := postJSON(e, "/api/register-client", `{
		"orgId": 999, "clientName": "Alex Moreno", "clientShortname": "AM",
		"clientPhone": "555-0200", "clientEmail": "alex@example.com"
	}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Organization not found" {
		t.Fatalf("unexpected error: %v", body["error"])
	}
}

package service

import (
	"context"
	"errors"

	"github.com/megamind1212/notesmate-api/internal/domain"
	"github.com/megamind1212/notesmate-api/internal/repository/ports"
)

var (
	ErrClientExists   = errors.New("Client with this clientid already exists in this organization")
	ErrClientNotFound = errors.New("Invalid clientid for this organization")
)

type ClientRegistrationInput struct {
	OrgID           int64
	ClientName      string
	ClientShortname string
	ClientPhone     string
	ClientEmail     string
}

type ClientService struct {
	clients   ports.ClientRepository
	directory ports.DirectoryRepository
}

func NewClientService(clients ports.ClientRepository, directory ports.DirectoryRepository) *ClientService {
	return &ClientService{clients: clients, directory: directory}
}

// Register allocates the next client id within the organization and creates
// the client. Ids are per-organization, starting at 1.
func (s *ClientService) Register(ctx context.Context, input ClientRegistrationInput) (int64, error) {
	if _, err := s.directory.FindOrganization(ctx, input.OrgID); err != nil {
		if isNotFound(err) {
			return 0, ErrOrganizationNotFound
		}
		return 0, err
	}

	maxID, err := s.clients.MaxClientID(ctx, input.OrgID)
	if err != nil {
		return 0, err
	}
	newID := maxID + 1

	if _, err := s.clients.FindClient(ctx, input.OrgID, newID); err == nil {
		return 0, ErrClientExists
	} else if !isNotFound(err) {
		return 0, err
	}

	client := &domain.Client{
		ClientID:  newID,
		OrgID:     input.OrgID,
		Name:      input.ClientName,
		ShortName: input.ClientShortname,
		Phone:     input.ClientPhone,
		Email:     input.ClientEmail,
	}
	if err := s.clients.CreateClient(ctx, client); err != nil {
		if isUniqueViolation(err) {
			return 0, ErrClientExists
		}
		return 0, err
	}
	return newID, nil
}

// List returns the organization's clients with their note counts.
func (s *ClientService) List(ctx context.Context, orgID int64) ([]domain.ClientSummary, error) {
	clients, err := s.clients.ListClients(ctx, orgID)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(clients))
	for _, client := range clients {
		ids = append(ids, client.ClientID)
	}
	counts, err := s.clients.CountNotesByClient(ctx, orgID, ids)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.ClientSummary, 0, len(clients))
	for _, client := range clients {
		summaries = append(summaries, domain.ClientSummary{
			Client:    client,
			NoteCount: counts[client.ClientID],
		})
	}
	return summaries, nil
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/megamind1212/notesmate-api/internal/domain"
	"github.com/megamind1212/notesmate-api/internal/repository/ports"
	"github.com/megamind1212/notesmate-api/internal/util"
)

var ErrSessionInvalid = errors.New("invalid or expired session")

type SessionService struct {
	sessions  ports.SessionRepository
	directory ports.DirectoryRepository
	jwt       *util.JWTManager
}

func NewSessionService(sessions ports.SessionRepository, directory ports.DirectoryRepository, jwt *util.JWTManager) *SessionService {
	return &SessionService{sessions: sessions, directory: directory, jwt: jwt}
}

// Issue mints a bearer token for a validated employee and records it as an
// active session.
func (s *SessionService) Issue(ctx context.Context, orgID, empID int64) (string, time.Time, error) {
	token, expiresAt, err := s.jwt.Generate(orgID, empID)
	if err != nil {
		return "", time.Time{}, err
	}
	if _, err := s.sessions.CreateSession(ctx, orgID, empID, token, expiresAt); err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Authenticate resolves a bearer token to the employee it was issued for. The
// token must parse, and its session must still be active and unexpired.
func (s *SessionService) Authenticate(ctx context.Context, token string) (*domain.Employee, error) {
	claims, err := s.jwt.Parse(token)
	if err != nil {
		return nil, ErrSessionInvalid
	}
	session, err := s.sessions.FindActiveSession(ctx, token)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrSessionInvalid
		}
		return nil, err
	}
	emp, err := s.directory.FindEmployee(ctx, session.OrgID, session.EmpID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrSessionInvalid
		}
		return nil, err
	}
	if claims.OrgID != emp.OrgID || claims.EmpID != emp.EmpID {
		return nil, ErrSessionInvalid
	}
	return emp, nil
}

func (s *SessionService) Logout(ctx context.Context, token string) error {
	return s.sessions.DeactivateSession(ctx, token)
}

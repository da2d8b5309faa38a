package service

import (
	"context"
	"errors"

	"github.com/megamind1212/notesmate-api/internal/domain"
	"github.com/megamind1212/notesmate-api/internal/repository/ports"
)

var (
	ErrEmployeeNotFound     = errors.New("No employee found with this orgid and empid")
	ErrEmployeeExists       = errors.New("Employee with this empid already exists in this organization")
	ErrOrganizationNotFound = errors.New("Organization not found")
)

type RegistrationInput struct {
	OrgID        int64
	OrgName      string
	OrgShortname string
	OrgAddress   string
	OrgPhone     string
	OrgEmail     string
	EmpID        int64
	EmpName      string
	EmpShortname string
	EmpPhone     string
	EmpEmail     string
}

type DirectoryService struct {
	directory ports.DirectoryRepository
}

func NewDirectoryService(directory ports.DirectoryRepository) *DirectoryService {
	return &DirectoryService{directory: directory}
}

// Register creates the organization if this is its first employee, then adds
// the employee. A second registration for the same (org, emp) pair fails.
func (s *DirectoryService) Register(ctx context.Context, input RegistrationInput) error {
	_, err := s.directory.FindOrganization(ctx, input.OrgID)
	switch {
	case err == nil:
	case isNotFound(err):
		org := &domain.Organization{
			OrgID:     input.OrgID,
			OrgName:   input.OrgName,
			ShortName: input.OrgShortname,
			Address:   input.OrgAddress,
			Phone:     input.OrgPhone,
			Email:     input.OrgEmail,
		}
		if err := s.directory.CreateOrganization(ctx, org); err != nil && !isUniqueViolation(err) {
			return err
		}
	default:
		return err
	}

	if _, err := s.directory.FindEmployee(ctx, input.OrgID, input.EmpID); err == nil {
		return ErrEmployeeExists
	} else if !isNotFound(err) {
		return err
	}

	emp := &domain.Employee{
		EmpID:     input.EmpID,
		OrgID:     input.OrgID,
		Name:      input.EmpName,
		ShortName: input.EmpShortname,
		Phone:     input.EmpPhone,
		Email:     input.EmpEmail,
	}
	if err := s.directory.CreateEmployee(ctx, emp); err != nil {
		if isUniqueViolation(err) {
			return ErrEmployeeExists
		}
		return err
	}
	return nil
}

func (s *DirectoryService) GetEmployee(ctx context.Context, orgID, empID int64) (*domain.Employee, error) {
	emp, err := s.directory.FindEmployee(ctx, orgID, empID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return emp, nil
}

func (s *DirectoryService) GetOrganization(ctx context.Context, orgID int64) (*domain.Organization, error) {
	org, err := s.directory.FindOrganization(ctx, orgID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrOrganizationNotFound
		}
		return nil, err
	}
	return org, nil
}

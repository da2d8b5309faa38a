package ports

import (
	"context"

	"github.com/megamind1212/notesmate-api/internal/domain"
)

type DirectoryRepository interface {
	CreateOrganization(ctx context.Context, org *domain.Organization) error
	FindOrganization(ctx context.Context, orgID int64) (*domain.Organization, error)
	CreateEmployee(ctx context.Context, emp *domain.Employee) error
	FindEmployee(ctx context.Context, orgID, empID int64) (*domain.Employee, error)
}

package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/megamind1212/notesmate-api/internal/domain"
)

type DirectoryRepository struct {
	db *sqlx.DB
}

func NewDirectoryRepo(db *sqlx.DB) *DirectoryRepository {
	return &DirectoryRepository{db: db}
}

func (r *DirectoryRepository) CreateOrganization(ctx context.Context, org *domain.Organization) error {
	const query = `
        INSERT INTO organizations (orgid, orgname, shortname, address, phone, email)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.ExecContext(ctx, query, org.OrgID, org.OrgName, org.ShortName, org.Address, org.Phone, org.Email)
	return err
}

func (r *DirectoryRepository) FindOrganization(ctx context.Context, orgID int64) (*domain.Organization, error) {
	const query = `
        SELECT orgid, orgname, shortname, address, phone, email, created_at
        FROM organizations
        WHERE orgid = $1
    `
	var org domain.Organization
	if err := r.db.GetContext(ctx, &org, query, orgID); err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *DirectoryRepository) CreateEmployee(ctx context.Context, emp *domain.Employee) error {
	const query = `
        INSERT INTO employees (empid, orgid, empname, empshortname, empphone, empemail)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.ExecContext(ctx, query, emp.EmpID, emp.OrgID, emp.Name, emp.ShortName, emp.Phone, emp.Email)
	return err
}

func (r *DirectoryRepository) FindEmployee(ctx context.Context, orgID, empID int64) (*domain.Employee, error) {
	const query = `
        SELECT empid, orgid, empname, empshortname, empphone, empemail, created_at
        FROM employees
        WHERE orgid = $1 AND empid = $2
    `
	var emp domain.Employee
	if err := r.db.GetContext(ctx, &emp, query, orgID, empID); err != nil {
		return nil, err
	}
	return &emp, nil
}

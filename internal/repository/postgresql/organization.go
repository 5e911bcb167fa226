package postgresql

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/organization"
	"github.com/qhamayedwa/wfm-backend-go/internal/pkg/database"
)

type organizationRepositoryImpl struct {
	db *database.DB
}

func NewOrganizationRepository(db *database.DB) organization.OrganizationRepository {
	return &organizationRepositoryImpl{db: db}
}

// GetCompany implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) GetCompany(ctx context.Context, companyID string) (organization.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM companies WHERE id = $1`

	var c organization.Company
	err := q.QueryRow(ctx, query, companyID).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return organization.Company{}, organization.ErrCompanyNotFound
		}
		return organization.Company{}, err
	}
	return c, nil
}

// CreateCompany implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) CreateCompany(ctx context.Context, company organization.Company) (organization.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO companies (name)
		VALUES ($1)
		RETURNING id, name, created_at, updated_at
	`

	var created organization.Company
	err := q.QueryRow(ctx, query, company.Name).Scan(&created.ID, &created.Name, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return organization.Company{}, err
	}
	return created, nil
}

// UpdateCompanyName implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) UpdateCompanyName(ctx context.Context, companyID, name string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE companies SET name = $1, updated_at = NOW() WHERE id = $2`, name, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return organization.ErrCompanyNotFound
	}
	return nil
}

// CreateRegion implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) CreateRegion(ctx context.Context, region organization.Region) (organization.Region, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO regions (company_id, name)
		VALUES ($1, $2)
		RETURNING id, company_id, name, created_at, updated_at
	`

	var created organization.Region
	err := q.QueryRow(ctx, query, region.CompanyID, region.Name).Scan(
		&created.ID, &created.CompanyID, &created.Name, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "regions_company_id_name_key") {
			return organization.Region{}, organization.ErrNameExists
		}
		return organization.Region{}, err
	}
	return created, nil
}

// ListRegions implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) ListRegions(ctx context.Context, companyID string) ([]organization.Region, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, created_at, updated_at
		FROM regions
		WHERE company_id = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regions []organization.Region
	for rows.Next() {
		var reg organization.Region
		if err := rows.Scan(&reg.ID, &reg.CompanyID, &reg.Name, &reg.CreatedAt, &reg.UpdatedAt); err != nil {
			return nil, err
		}
		regions = append(regions, reg)
	}
	return regions, rows.Err()
}

// UpdateRegionName implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) UpdateRegionName(ctx context.Context, companyID string, req organization.UpdateNameRequest) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE regions SET name = $1, updated_at = NOW() WHERE id = $2 AND company_id = $3`,
		req.Name, req.ID, companyID,
	)
	if err != nil {
		if strings.Contains(err.Error(), "regions_company_id_name_key") {
			return organization.ErrNameExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return organization.ErrRegionNotFound
	}
	return nil
}

// DeleteRegion implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) DeleteRegion(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	var hasChildren bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM sites WHERE region_id = $1)`, id).Scan(&hasChildren)
	if err != nil {
		return err
	}
	if hasChildren {
		return organization.ErrHasChildren
	}

	tag, err := q.Exec(ctx, `DELETE FROM regions WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return organization.ErrRegionNotFound
	}
	return nil
}

// CreateSite implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) CreateSite(ctx context.Context, site organization.Site, companyID string) (organization.Site, error) {
	q := GetQuerier(ctx, r.db)

	// Region ownership check keeps tenants from attaching sites to foreign
	// regions.
	query := `
		INSERT INTO sites (region_id, name, address, latitude, longitude)
		SELECT $1, $2, $3, $4, $5
		WHERE EXISTS (SELECT 1 FROM regions WHERE id = $1 AND company_id = $6)
		RETURNING id, region_id, name, address, latitude, longitude, created_at, updated_at
	`

	var created organization.Site
	err := q.QueryRow(ctx, query, site.RegionID, site.Name, site.Address, site.Latitude, site.Longitude, companyID).Scan(
		&created.ID, &created.RegionID, &created.Name, &created.Address,
		&created.Latitude, &created.Longitude, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return organization.Site{}, organization.ErrRegionNotFound
		}
		if strings.Contains(err.Error(), "sites_region_id_name_key") {
			return organization.Site{}, organization.ErrNameExists
		}
		return organization.Site{}, err
	}
	return created, nil
}

// ListSites implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) ListSites(ctx context.Context, companyID string, regionID *string) ([]organization.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.region_id, s.name, s.address, s.latitude, s.longitude, s.created_at, s.updated_at, r.name
		FROM sites s
		JOIN regions r ON r.id = s.region_id
		WHERE r.company_id = $1 AND ($2::uuid IS NULL OR s.region_id = $2)
		ORDER BY r.name, s.name
	`

	rows, err := q.Query(ctx, query, companyID, regionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sites []organization.Site
	for rows.Next() {
		var s organization.Site
		if err := rows.Scan(
			&s.ID, &s.RegionID, &s.Name, &s.Address,
			&s.Latitude, &s.Longitude, &s.CreatedAt, &s.UpdatedAt, &s.RegionName,
		); err != nil {
			return nil, err
		}
		sites = append(sites, s)
	}
	return sites, rows.Err()
}

// UpdateSiteName implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) UpdateSiteName(ctx context.Context, companyID string, req organization.UpdateNameRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE sites SET name = $1, updated_at = NOW()
		WHERE id = $2 AND region_id IN (SELECT id FROM regions WHERE company_id = $3)
	`

	tag, err := q.Exec(ctx, query, req.Name, req.ID, companyID)
	if err != nil {
		if strings.Contains(err.Error(), "sites_region_id_name_key") {
			return organization.ErrNameExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return organization.ErrSiteNotFound
	}
	return nil
}

// DeleteSite implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) DeleteSite(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	var hasChildren bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM departments WHERE site_id = $1)`, id).Scan(&hasChildren)
	if err != nil {
		return err
	}
	if hasChildren {
		return organization.ErrHasChildren
	}

	query := `
		DELETE FROM sites
		WHERE id = $1 AND region_id IN (SELECT id FROM regions WHERE company_id = $2)
	`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return organization.ErrSiteNotFound
	}
	return nil
}

// CreateDepartment implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) CreateDepartment(ctx context.Context, department organization.Department, companyID string) (organization.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (site_id, name, manager_id)
		SELECT $1, $2, $3
		WHERE EXISTS (
			SELECT 1 FROM sites s JOIN regions r ON r.id = s.region_id
			WHERE s.id = $1 AND r.company_id = $4
		)
		RETURNING id, site_id, name, manager_id, created_at, updated_at
	`

	var created organization.Department
	err := q.QueryRow(ctx, query, department.SiteID, department.Name, department.ManagerID, companyID).Scan(
		&created.ID, &created.SiteID, &created.Name, &created.ManagerID, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return organization.Department{}, organization.ErrSiteNotFound
		}
		if strings.Contains(err.Error(), "departments_site_id_name_key") {
			return organization.Department{}, organization.ErrNameExists
		}
		return organization.Department{}, err
	}
	return created, nil
}

// ListDepartments implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) ListDepartments(ctx context.Context, companyID string, siteID *string) ([]organization.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.site_id, d.name, d.manager_id, d.created_at, d.updated_at, s.name
		FROM departments d
		JOIN sites s ON s.id = d.site_id
		JOIN regions r ON r.id = s.region_id
		WHERE r.company_id = $1 AND ($2::uuid IS NULL OR d.site_id = $2)
		ORDER BY s.name, d.name
	`

	rows, err := q.Query(ctx, query, companyID, siteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []organization.Department
	for rows.Next() {
		var d organization.Department
		if err := rows.Scan(&d.ID, &d.SiteID, &d.Name, &d.ManagerID, &d.CreatedAt, &d.UpdatedAt, &d.SiteName); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

// GetDepartment implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) GetDepartment(ctx context.Context, id string, companyID string) (organization.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.site_id, d.name, d.manager_id, d.created_at, d.updated_at, s.name
		FROM departments d
		JOIN sites s ON s.id = d.site_id
		JOIN regions r ON r.id = s.region_id
		WHERE d.id = $1 AND r.company_id = $2
	`

	var d organization.Department
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&d.ID, &d.SiteID, &d.Name, &d.ManagerID, &d.CreatedAt, &d.UpdatedAt, &d.SiteName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return organization.Department{}, organization.ErrDepartmentNotFound
		}
		return organization.Department{}, err
	}
	return d, nil
}

// UpdateDepartmentName implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) UpdateDepartmentName(ctx context.Context, companyID string, req organization.UpdateNameRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments SET name = $1, updated_at = NOW()
		WHERE id = $2 AND site_id IN (
			SELECT s.id FROM sites s JOIN regions r ON r.id = s.region_id WHERE r.company_id = $3
		)
	`

	tag, err := q.Exec(ctx, query, req.Name, req.ID, companyID)
	if err != nil {
		if strings.Contains(err.Error(), "departments_site_id_name_key") {
			return organization.ErrNameExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return organization.ErrDepartmentNotFound
	}
	return nil
}

// DeleteDepartment implements organization.OrganizationRepository.
func (r *organizationRepositoryImpl) DeleteDepartment(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	var hasChildren bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE department_id = $1 AND deleted_at IS NULL)`, id,
	).Scan(&hasChildren)
	if err != nil {
		return err
	}
	if hasChildren {
		return organization.ErrHasChildren
	}

	query := `
		DELETE FROM departments
		WHERE id = $1 AND site_id IN (
			SELECT s.id FROM sites s JOIN regions r ON r.id = s.region_id WHERE r.company_id = $2
		)
	`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return organization.ErrDepartmentNotFound
	}
	return nil
}

package organization

import "context"

// OrganizationRepository defines data access for the company hierarchy.
// All methods take companyID to keep tenants isolated.
type OrganizationRepository interface {
	GetCompany(ctx context.Context, companyID string) (Company, error)
	CreateCompany(ctx context.Context, company Company) (Company, error)
	UpdateCompanyName(ctx context.Context, companyID, name string) error

	CreateRegion(ctx context.Context, region Region) (Region, error)
	ListRegions(ctx context.Context, companyID string) ([]Region, error)
	UpdateRegionName(ctx context.Context, companyID string, req UpdateNameRequest) error
	DeleteRegion(ctx context.Context, id string, companyID string) error

	CreateSite(ctx context.Context, site Site, companyID string) (Site, error)
	ListSites(ctx context.Context, companyID string, regionID *string) ([]Site, error)
	UpdateSiteName(ctx context.Context, companyID string, req UpdateNameRequest) error
	DeleteSite(ctx context.Context, id string, companyID string) error

	CreateDepartment(ctx context.Context, department Department, companyID string) (Department, error)
	ListDepartments(ctx context.Context, companyID string, siteID *string) ([]Department, error)
	GetDepartment(ctx context.Context, id string, companyID string) (Department, error)
	UpdateDepartmentName(ctx context.Context, companyID string, req UpdateNameRequest) error
	DeleteDepartment(ctx context.Context, id string, companyID string) error
}

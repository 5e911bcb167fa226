package organization

import "context"

// OrganizationService defines business logic for the company hierarchy
type OrganizationService interface {
	GetHierarchy(ctx context.Context) (HierarchyResponse, error)

	CreateRegion(ctx context.Context, req CreateRegionRequest) (RegionResponse, error)
	ListRegions(ctx context.Context) ([]RegionResponse, error)
	RenameRegion(ctx context.Context, req UpdateNameRequest) error
	DeleteRegion(ctx context.Context, id string) error

	CreateSite(ctx context.Context, req CreateSiteRequest) (SiteResponse, error)
	ListSites(ctx context.Context, regionID *string) ([]SiteResponse, error)
	RenameSite(ctx context.Context, req UpdateNameRequest) error
	DeleteSite(ctx context.Context, id string) error

	CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	ListDepartments(ctx context.Context, siteID *string) ([]DepartmentResponse, error)
	RenameDepartment(ctx context.Context, req UpdateNameRequest) error
	DeleteDepartment(ctx context.Context, id string) error
}

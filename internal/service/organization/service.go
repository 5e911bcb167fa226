package organization

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/organization"
	"github.com/qhamayedwa/wfm-backend-go/internal/pkg/database"
)

type OrganizationServiceImpl struct {
	db      *database.DB
	orgRepo organization.OrganizationRepository
}

func NewOrganizationService(db *database.DB, orgRepo organization.OrganizationRepository) organization.OrganizationService {
	return &OrganizationServiceImpl{db: db, orgRepo: orgRepo}
}

// Helper to get company_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}
	return companyID, nil
}

// GetHierarchy implements organization.OrganizationService.
func (s *OrganizationServiceImpl) GetHierarchy(ctx context.Context) (organization.HierarchyResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return organization.HierarchyResponse{}, err
	}

	company, err := s.orgRepo.GetCompany(ctx, companyID)
	if err != nil {
		return organization.HierarchyResponse{}, err
	}

	regions, err := s.orgRepo.ListRegions(ctx, companyID)
	if err != nil {
		return organization.HierarchyResponse{}, err
	}
	sites, err := s.orgRepo.ListSites(ctx, companyID, nil)
	if err != nil {
		return organization.HierarchyResponse{}, err
	}
	departments, err := s.orgRepo.ListDepartments(ctx, companyID, nil)
	if err != nil {
		return organization.HierarchyResponse{}, err
	}

	sitesByRegion := make(map[string][]organization.Site)
	for _, site := range sites {
		sitesByRegion[site.RegionID] = append(sitesByRegion[site.RegionID], site)
	}
	departmentsBySite := make(map[string][]organization.Department)
	for _, dept := range departments {
		departmentsBySite[dept.SiteID] = append(departmentsBySite[dept.SiteID], dept)
	}

	resp := organization.HierarchyResponse{
		CompanyID:   company.ID,
		CompanyName: company.Name,
		Regions:     []organization.RegionNodeResponse{},
	}
	for _, region := range regions {
		node := organization.RegionNodeResponse{
			RegionResponse: toRegionResponse(region),
			Sites:          []organization.SiteNodeResponse{},
		}
		for _, site := range sitesByRegion[region.ID] {
			siteNode := organization.SiteNodeResponse{
				SiteResponse: toSiteResponse(site),
				Departments:  []organization.DepartmentResponse{},
			}
			for _, dept := range departmentsBySite[site.ID] {
				siteNode.Departments = append(siteNode.Departments, toDepartmentResponse(dept))
			}
			node.Sites = append(node.Sites, siteNode)
		}
		resp.Regions = append(resp.Regions, node)
	}
	return resp, nil
}

// CreateRegion implements organization.OrganizationService.
func (s *OrganizationServiceImpl) CreateRegion(ctx context.Context, req organization.CreateRegionRequest) (organization.RegionResponse, error) {
	if err := req.Validate(); err != nil {
		return organization.RegionResponse{}, err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return organization.RegionResponse{}, err
	}

	created, err := s.orgRepo.CreateRegion(ctx, organization.Region{CompanyID: companyID, Name: req.Name})
	if err != nil {
		return organization.RegionResponse{}, err
	}
	return toRegionResponse(created), nil
}

// ListRegions implements organization.OrganizationService.
func (s *OrganizationServiceImpl) ListRegions(ctx context.Context) ([]organization.RegionResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	regions, err := s.orgRepo.ListRegions(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]organization.RegionResponse, 0, len(regions))
	for _, region := range regions {
		responses = append(responses, toRegionResponse(region))
	}
	return responses, nil
}

// RenameRegion implements organization.OrganizationService.
func (s *OrganizationServiceImpl) RenameRegion(ctx context.Context, req organization.UpdateNameRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}
	return s.orgRepo.UpdateRegionName(ctx, companyID, req)
}

// DeleteRegion implements organization.OrganizationService.
func (s *OrganizationServiceImpl) DeleteRegion(ctx context.Context, id string) error {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}
	return s.orgRepo.DeleteRegion(ctx, id, companyID)
}

// CreateSite implements organization.OrganizationService.
func (s *OrganizationServiceImpl) CreateSite(ctx context.Context, req organization.CreateSiteRequest) (organization.SiteResponse, error) {
	if err := req.Validate(); err != nil {
		return organization.SiteResponse{}, err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return organization.SiteResponse{}, err
	}

	created, err := s.orgRepo.CreateSite(ctx, organization.Site{
		RegionID:  req.RegionID,
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}, companyID)
	if err != nil {
		return organization.SiteResponse{}, err
	}
	return toSiteResponse(created), nil
}

// ListSites implements organization.OrganizationService.
func (s *OrganizationServiceImpl) ListSites(ctx context.Context, regionID *string) ([]organization.SiteResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	sites, err := s.orgRepo.ListSites(ctx, companyID, regionID)
	if err != nil {
		return nil, err
	}

	responses := make([]organization.SiteResponse, 0, len(sites))
	for _, site := range sites {
		responses = append(responses, toSiteResponse(site))
	}
	return responses, nil
}

// RenameSite implements organization.OrganizationService.
func (s *OrganizationServiceImpl) RenameSite(ctx context.Context, req organization.UpdateNameRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}
	return s.orgRepo.UpdateSiteName(ctx, companyID, req)
}

// DeleteSite implements organization.OrganizationService.
func (s *OrganizationServiceImpl) DeleteSite(ctx context.Context, id string) error {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}
	return s.orgRepo.DeleteSite(ctx, id, companyID)
}

// CreateDepartment implements organization.OrganizationService.
func (s *OrganizationServiceImpl) CreateDepartment(ctx context.Context, req organization.CreateDepartmentRequest) (organization.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return organization.DepartmentResponse{}, err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return organization.DepartmentResponse{}, err
	}

	created, err := s.orgRepo.CreateDepartment(ctx, organization.Department{
		SiteID:    req.SiteID,
		Name:      req.Name,
		ManagerID: req.ManagerID,
	}, companyID)
	if err != nil {
		return organization.DepartmentResponse{}, err
	}
	return toDepartmentResponse(created), nil
}

// ListDepartments implements organization.OrganizationService.
func (s *OrganizationServiceImpl) ListDepartments(ctx context.Context, siteID *string) ([]organization.DepartmentResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	departments, err := s.orgRepo.ListDepartments(ctx, companyID, siteID)
	if err != nil {
		return nil, err
	}

	responses := make([]organization.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		responses = append(responses, toDepartmentResponse(dept))
	}
	return responses, nil
}

// RenameDepartment implements organization.OrganizationService.
func (s *OrganizationServiceImpl) RenameDepartment(ctx context.Context, req organization.UpdateNameRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}
	return s.orgRepo.UpdateDepartmentName(ctx, companyID, req)
}

// DeleteDepartment implements organization.OrganizationService.
func (s *OrganizationServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}
	return s.orgRepo.DeleteDepartment(ctx, id, companyID)
}

func toRegionResponse(region organization.Region) organization.RegionResponse {
	return organization.RegionResponse{ID: region.ID, Name: region.Name}
}

func toSiteResponse(site organization.Site) organization.SiteResponse {
	return organization.SiteResponse{
		ID:         site.ID,
		RegionID:   site.RegionID,
		RegionName: site.RegionName,
		Name:       site.Name,
		Address:    site.Address,
		Latitude:   site.Latitude,
		Longitude:  site.Longitude,
	}
}

func toDepartmentResponse(dept organization.Department) organization.DepartmentResponse {
	return organization.DepartmentResponse{
		ID:        dept.ID,
		SiteID:    dept.SiteID,
		SiteName:  dept.SiteName,
		Name:      dept.Name,
		ManagerID: dept.ManagerID,
	}
}

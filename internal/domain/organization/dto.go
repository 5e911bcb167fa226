package organization

import "github.com/qhamayedwa/wfm-backend-go/internal/pkg/validator"

type CreateRegionRequest struct {
	Name string `json:"name"`
}

func (r *CreateRegionRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateSiteRequest struct {
	RegionID  string   `json:"region_id"`
	Name      string   `json:"name"`
	Address   *string  `json:"address,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

func (r *CreateSiteRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.RegionID) {
		errs = append(errs, validator.ValidationError{Field: "region_id", Message: "region_id is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "latitude must be between -90 and 90"})
	}
	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{Field: "longitude", Message: "longitude must be between -180 and 180"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateDepartmentRequest struct {
	SiteID    string  `json:"site_id"`
	Name      string  `json:"name"`
	ManagerID *string `json:"manager_id,omitempty"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.SiteID) {
		errs = append(errs, validator.ValidationError{Field: "site_id", Message: "site_id is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateNameRequest struct {
	ID   string
	Name string `json:"name"`
}

func (r *UpdateNameRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RegionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SiteResponse struct {
	ID         string   `json:"id"`
	RegionID   string   `json:"region_id"`
	RegionName *string  `json:"region_name,omitempty"`
	Name       string   `json:"name"`
	Address    *string  `json:"address,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

type DepartmentResponse struct {
	ID        string  `json:"id"`
	SiteID    string  `json:"site_id"`
	SiteName  *string `json:"site_name,omitempty"`
	Name      string  `json:"name"`
	ManagerID *string `json:"manager_id,omitempty"`
}

// HierarchyResponse is the full tree for one company.
type HierarchyResponse struct {
	CompanyID   string               `json:"company_id"`
	CompanyName string               `json:"company_name"`
	Regions     []RegionNodeResponse `json:"regions"`
}

type RegionNodeResponse struct {
	RegionResponse
	Sites []SiteNodeResponse `json:"sites"`
}

type SiteNodeResponse struct {
	SiteResponse
	Departments []DepartmentResponse `json:"departments"`
}

package organization

import "time"

// Company is the tenant root of the hierarchy.
type Company struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Region groups sites under a company.
type Region struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Site is a physical location within a region.
type Site struct {
	ID        string
	RegionID  string
	Name      string
	Address   *string
	Latitude  *float64
	Longitude *float64
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	RegionName *string
}

// Department is the unit employees belong to.
type Department struct {
	ID        string
	SiteID    string
	Name      string
	ManagerID *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	SiteName *string
}

package organization

import "errors"

var (
	ErrCompanyNotFound    = errors.New("company not found")
	ErrRegionNotFound     = errors.New("region not found")
	ErrSiteNotFound       = errors.New("site not found")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrNameExists         = errors.New("name already exists at this level")
	ErrHasChildren        = errors.New("cannot delete: child records exist")
)

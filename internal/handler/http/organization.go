package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/organization"
	"github.com/qhamayedwa/wfm-backend-go/internal/handler/http/response"
)

type OrganizationHandler interface {
	GetHierarchy(w http.ResponseWriter, r *http.Request)

	CreateRegion(w http.ResponseWriter, r *http.Request)
	ListRegions(w http.ResponseWriter, r *http.Request)
	RenameRegion(w http.ResponseWriter, r *http.Request)
	DeleteRegion(w http.ResponseWriter, r *http.Request)

	CreateSite(w http.ResponseWriter, r *http.Request)
	ListSites(w http.ResponseWriter, r *http.Request)
	RenameSite(w http.ResponseWriter, r *http.Request)
	DeleteSite(w http.ResponseWriter, r *http.Request)

	CreateDepartment(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	RenameDepartment(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)
}

type organizationHandlerImpl struct {
	orgService organization.OrganizationService
}

func NewOrganizationHandler(orgService organization.OrganizationService) OrganizationHandler {
	return &organizationHandlerImpl{orgService: orgService}
}

func (h *organizationHandlerImpl) GetHierarchy(w http.ResponseWriter, r *http.Request) {
	result, err := h.orgService.GetHierarchy(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ========== REGIONS ==========

func (h *organizationHandlerImpl) CreateRegion(w http.ResponseWriter, r *http.Request) {
	var req organization.CreateRegionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.orgService.CreateRegion(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Region created", result)
}

func (h *organizationHandlerImpl) ListRegions(w http.ResponseWriter, r *http.Request) {
	result, err := h.orgService.ListRegions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *organizationHandlerImpl) RenameRegion(w http.ResponseWriter, r *http.Request) {
	var req organization.UpdateNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.orgService.RenameRegion(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Region renamed", nil)
}

func (h *organizationHandlerImpl) DeleteRegion(w http.ResponseWriter, r *http.Request) {
	if err := h.orgService.DeleteRegion(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Region deleted", nil)
}

// ========== SITES ==========

func (h *organizationHandlerImpl) CreateSite(w http.ResponseWriter, r *http.Request) {
	var req organization.CreateSiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.orgService.CreateSite(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Site created", result)
}

func (h *organizationHandlerImpl) ListSites(w http.ResponseWriter, r *http.Request) {
	var regionID *string
	if v := r.URL.Query().Get("region_id"); v != "" {
		regionID = &v
	}

	result, err := h.orgService.ListSites(r.Context(), regionID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *organizationHandlerImpl) RenameSite(w http.ResponseWriter, r *http.Request) {
	var req organization.UpdateNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.orgService.RenameSite(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Site renamed", nil)
}

func (h *organizationHandlerImpl) DeleteSite(w http.ResponseWriter, r *http.Request) {
	if err := h.orgService.DeleteSite(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Site deleted", nil)
}

// ========== DEPARTMENTS ==========

func (h *organizationHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req organization.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.orgService.CreateDepartment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Department created", result)
}

func (h *organizationHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	var siteID *string
	if v := r.URL.Query().Get("site_id"); v != "" {
		siteID = &v
	}

	result, err := h.orgService.ListDepartments(r.Context(), siteID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *organizationHandlerImpl) RenameDepartment(w http.ResponseWriter, r *http.Request) {
	var req organization.UpdateNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.orgService.RenameDepartment(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Department renamed", nil)
}

func (h *organizationHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	if err := h.orgService.DeleteDepartment(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Department deleted", nil)
}

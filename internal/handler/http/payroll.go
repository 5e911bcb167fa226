package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/qhamayedwa/wfm-backend-go/internal/domain/payroll"
	"github.com/qhamayedwa/wfm-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	// Pay codes
	CreatePayCode(w http.ResponseWriter, r *http.Request)
	GetPayCode(w http.ResponseWriter, r *http.Request)
	ListPayCodes(w http.ResponseWriter, r *http.Request)
	UpdatePayCode(w http.ResponseWriter, r *http.Request)
	DeletePayCode(w http.ResponseWriter, r *http.Request)
	TogglePayCode(w http.ResponseWriter, r *http.Request)

	// Pay rules
	CreatePayRule(w http.ResponseWriter, r *http.Request)
	GetPayRule(w http.ResponseWriter, r *http.Request)
	ListPayRules(w http.ResponseWriter, r *http.Request)
	UpdatePayRule(w http.ResponseWriter, r *http.Request)
	ReorderPayRules(w http.ResponseWriter, r *http.Request)
	DeletePayRule(w http.ResponseWriter, r *http.Request)

	// Calculation
	Calculate(w http.ResponseWriter, r *http.Request)
	GetCalculation(w http.ResponseWriter, r *http.Request)
	ListCalculations(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ========== PAY CODES ==========

func (h *payrollHandlerImpl) CreatePayCode(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreatePayCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.CreatePayCode(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Pay code created", result)
}

func (h *payrollHandlerImpl) GetPayCode(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetPayCode(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListPayCodes(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	result, err := h.payrollService.ListPayCodes(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *payrollHandlerImpl) UpdatePayCode(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdatePayCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.payrollService.UpdatePayCode(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Pay code updated", nil)
}

func (h *payrollHandlerImpl) DeletePayCode(w http.ResponseWriter, r *http.Request) {
	if err := h.payrollService.DeletePayCode(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Pay code deleted", nil)
}

func (h *payrollHandlerImpl) TogglePayCode(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.TogglePayCode(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Pay code toggled", result)
}

// ========== PAY RULES ==========

func (h *payrollHandlerImpl) CreatePayRule(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreatePayRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.CreatePayRule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Pay rule created", result)
}

func (h *payrollHandlerImpl) GetPayRule(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetPayRule(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListPayRules(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	result, err := h.payrollService.ListPayRules(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *payrollHandlerImpl) UpdatePayRule(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdatePayRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.payrollService.UpdatePayRule(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Pay rule updated", nil)
}

func (h *payrollHandlerImpl) ReorderPayRules(w http.ResponseWriter, r *http.Request) {
	var req payroll.ReorderPayRulesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.payrollService.ReorderPayRules(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Pay rules reordered", nil)
}

func (h *payrollHandlerImpl) DeletePayRule(w http.ResponseWriter, r *http.Request) {
	if err := h.payrollService.DeletePayRule(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Pay rule deleted", nil)
}

// ========== CALCULATION ==========

func (h *payrollHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var req payroll.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.Calculate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetCalculation(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetCalculation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListCalculations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := payroll.CalculationFilter{}
	if v := q.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	result, err := h.payrollService.ListCalculations(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int((result.TotalCount + int64(result.Limit) - 1) / int64(result.Limit))
	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages,
	})
}

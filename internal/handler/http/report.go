package http

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/qhamayedwa/wfm-backend-go/internal/domain/report"
	"github.com/qhamayedwa/wfm-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	AttendanceSummary(w http.ResponseWriter, r *http.Request)
	PayrollSummary(w http.ResponseWriter, r *http.Request)
	ExportAttendance(w http.ResponseWriter, r *http.Request)
	ExportPayroll(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func (h *reportHandlerImpl) AttendanceSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.AttendanceSummary(r.Context(), parsePeriodRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *reportHandlerImpl) PayrollSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.PayrollSummary(r.Context(), parsePeriodRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *reportHandlerImpl) ExportAttendance(w http.ResponseWriter, r *http.Request) {
	req := parsePeriodRequest(r)

	// Buffer the CSV so errors still produce a JSON error response.
	var buf bytes.Buffer
	if err := h.reportService.ExportAttendanceCSV(r.Context(), req, &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	writeCSV(w, fmt.Sprintf("attendance_%s_%s.csv", req.StartDate, req.EndDate), buf.Bytes())
}

func (h *reportHandlerImpl) ExportPayroll(w http.ResponseWriter, r *http.Request) {
	req := parsePeriodRequest(r)

	var buf bytes.Buffer
	if err := h.reportService.ExportPayrollCSV(r.Context(), req, &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	writeCSV(w, fmt.Sprintf("payroll_%s_%s.csv", req.StartDate, req.EndDate), buf.Bytes())
}

func parsePeriodRequest(r *http.Request) report.PeriodRequest {
	q := r.URL.Query()

	req := report.PeriodRequest{
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
	}
	if v := q.Get("department_id"); v != "" {
		req.DepartmentID = &v
	}
	return req
}

func writeCSV(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

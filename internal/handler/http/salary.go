package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/peoplekit/hrms-backend-go/internal/domain/salary"
	"github.com/peoplekit/hrms-backend-go/internal/handler/http/middleware"
	"github.com/peoplekit/hrms-backend-go/internal/handler/http/response"
	salarysvc "github.com/peoplekit/hrms-backend-go/internal/service/salary"
)

type SalaryHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	CalculateAll(w http.ResponseWriter, r *http.Request)
	GetRecord(w http.ResponseWriter, r *http.Request)
	ListRecords(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	DeleteRecord(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService *salarysvc.Service
}

func NewSalaryHandler(salaryService *salarysvc.Service) SalaryHandler {
	return &salaryHandlerImpl{salaryService: salaryService}
}

func (h *salaryHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var req salary.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	rec, err := h.salaryService.CalculateEmployeeSalary(r.Context(), req.EmployeeID, req.Month, req.Year, middleware.UserID(r), req.Overrides)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary calculated", rec)
}

func (h *salaryHandlerImpl) CalculateAll(w http.ResponseWriter, r *http.Request) {
	var req salary.CalculateAllRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.salaryService.CalculateForAllEmployees(r.Context(), req.Month, req.Year, middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Batch calculation finished", result)
}

func (h *salaryHandlerImpl) GetRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	rec, err := h.salaryService.GetRecord(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rec)
}

func (h *salaryHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "month query parameter is required", nil)
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "year query parameter is required", nil)
		return
	}

	records, err := h.salaryService.ListRecords(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, records, &response.Meta{
		Month:      month,
		Year:       year,
		TotalItems: int64(len(records)),
	})
}

func (h *salaryHandlerImpl) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	if err := h.salaryService.DeleteRecord(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary record deleted", nil)
}

func (h *salaryHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.updateStatus(w, r, "Records approved", h.salaryService.Approve)
}

func (h *salaryHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	h.updateStatus(w, r, "Records marked as paid", h.salaryService.MarkPaid)
}

func (h *salaryHandlerImpl) updateStatus(
	w http.ResponseWriter,
	r *http.Request,
	message string,
	fn func(ctx context.Context, req salary.StatusUpdateRequest, actorID string) error,
) {
	var req salary.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := fn(r.Context(), req, middleware.UserID(r)); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, nil)
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/peoplekit/hrms-backend-go/internal/domain/policy"
	"github.com/peoplekit/hrms-backend-go/internal/handler/http/response"
	policysvc "github.com/peoplekit/hrms-backend-go/internal/service/policy"
)

type PolicyHandler interface {
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
	GetEmployeePolicy(w http.ResponseWriter, r *http.Request)
	UpsertEmployeePolicy(w http.ResponseWriter, r *http.Request)
	PreviewConfig(w http.ResponseWriter, r *http.Request)
}

type policyHandlerImpl struct {
	policyService *policysvc.Service
}

func NewPolicyHandler(policyService *policysvc.Service) PolicyHandler {
	return &policyHandlerImpl{policyService: policyService}
}

func (h *policyHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.policyService.GetSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, cfg)
}

func (h *policyHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req policy.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	cfg, err := h.policyService.UpdateSettings(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Policy settings updated", cfg)
}

func (h *policyHandlerImpl) GetEmployeePolicy(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	p, err := h.policyService.GetEmployeePolicy(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, p)
}

func (h *policyHandlerImpl) UpsertEmployeePolicy(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req policy.UpsertEmployeePolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	p, err := h.policyService.UpsertEmployeePolicy(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee policy saved", p)
}

type previewConfigRequest struct {
	EmployeeID string            `json:"employee_id"`
	Overrides  *policy.Overrides `json:"overrides,omitempty"`
}

func (h *policyHandlerImpl) PreviewConfig(w http.ResponseWriter, r *http.Request) {
	var req previewConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if req.EmployeeID == "" {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}

	cfg, err := h.policyService.PreviewEffectiveConfig(r.Context(), req.EmployeeID, req.Overrides)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, cfg)
}

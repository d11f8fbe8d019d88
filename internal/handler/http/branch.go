package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/domain/branch"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type BranchHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type branchHandlerImpl struct {
	branchService branch.BranchService
}

func NewBranchHandler(branchService branch.BranchService) BranchHandler {
	return &branchHandlerImpl{
		branchService: branchService,
	}
}

// Create implements BranchHandler.
func (h *branchHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req branch.CreateBranchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create branch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.branchService.CreateBranch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Branch created", result)
}

// Get implements BranchHandler.
func (h *branchHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.branchService.GetBranch(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements BranchHandler.
func (h *branchHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.branchService.ListBranches(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements BranchHandler.
func (h *branchHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req branch.UpdateBranchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update branch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.branchService.UpdateBranch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Branch updated", result)
}

// Delete implements BranchHandler.
func (h *branchHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.branchService.DeleteBranch(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.NoContent(w)
}

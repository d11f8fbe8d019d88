package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/domain/checkout"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CheckoutHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type checkoutHandlerImpl struct {
	checkoutService checkout.CheckoutService
}

func NewCheckoutHandler(checkoutService checkout.CheckoutService) CheckoutHandler {
	return &checkoutHandlerImpl{
		checkoutService: checkoutService,
	}
}

// Submit implements CheckoutHandler.
func (h *checkoutHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req checkout.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit checkout request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.checkoutService.Submit(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checkout correction request submitted", result)
}

// Approve implements CheckoutHandler.
func (h *checkoutHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.checkoutService.Approve, "Checkout correction request approved")
}

// Reject implements CheckoutHandler.
func (h *checkoutHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.checkoutService.Reject, "Checkout correction request rejected")
}

func (h *checkoutHandlerImpl) resolve(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, resolverID string, req checkout.ResolveRequest) (checkout.CheckoutRequestResponse, error),
	message string,
) {
	userID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req checkout.ResolveRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Resolve checkout request decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	req.ID = chi.URLParam(r, "id")

	result, err := fn(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, result)
}

// List implements CheckoutHandler.
func (h *checkoutHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := checkout.Filter{
		Page:  parseIntQuery(r, "page", 1),
		Limit: parseIntQuery(r, "limit", 20),
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}
	if v := r.URL.Query().Get("therapist_id"); v != "" {
		filter.TherapistID = &v
	}

	result, err := h.checkoutService.List(r.Context(), userID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

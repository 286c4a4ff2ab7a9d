package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tendas-mozambique/api/internal/platform/httpx"
	"github.com/tendas-mozambique/api/internal/services"
)

// InquiryHandlers exposes the rental inquiry endpoints.
type InquiryHandlers struct {
	inquiries services.InquiryService
}

// NewInquiryHandlers constructs handlers for the rental inquiry endpoints.
func NewInquiryHandlers(svc services.InquiryService) *InquiryHandlers {
	return &InquiryHandlers{inquiries: svc}
}

// Routes registers inquiry endpoints against the provided router.
func (h *InquiryHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Post("/rentals", h.submitInquiry)
	r.Get("/rentals/items", h.listRentalItems)
}

func (h *InquiryHandlers) submitInquiry(w http.ResponseWriter, r *http.Request) {
	if h.inquiries == nil {
		httpx.WriteError(r.Context(), w, httpx.NewError("inquiries_unavailable", "inquiry service is unavailable", http.StatusServiceUnavailable))
		return
	}

	var inquiry services.RentalInquiry
	if err := json.NewDecoder(r.Body).Decode(&inquiry); err != nil {
		httpx.WriteError(r.Context(), w, httpx.NewError("invalid_request", "request body must be JSON", http.StatusBadRequest))
		return
	}

	receipt, err := h.inquiries.Submit(r.Context(), inquiry)
	if err != nil {
		if errors.Is(err, services.ErrInquiryInvalid) {
			httpx.WriteError(r.Context(), w, httpx.NewError("invalid_inquiry", err.Error(), http.StatusUnprocessableEntity))
			return
		}
		httpx.WriteError(r.Context(), w, httpx.NewError("internal_error", "unexpected error", http.StatusInternalServerError))
		return
	}
	httpx.WriteJSON(w, http.StatusAccepted, receipt)
}

func (h *InquiryHandlers) listRentalItems(w http.ResponseWriter, r *http.Request) {
	if h.inquiries == nil {
		httpx.WriteError(r.Context(), w, httpx.NewError("inquiries_unavailable", "inquiry service is unavailable", http.StatusServiceUnavailable))
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"items": h.inquiries.AvailableItems(r.Context())})
}

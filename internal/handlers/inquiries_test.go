package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/tendas-mozambique/api/internal/services"
)

func TestSubmitInquiryEndpoint(t *testing.T) {
	stub := &stubInquiryService{receipt: services.InquiryReceipt{
		ID:          "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		Message:     "Rental request submitted successfully",
		SubmittedAt: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
	}}
	router := NewRouter(WithInquiryRoutes(NewInquiryHandlers(stub).Routes))

	body := `{"rentalType":"5x5 event tents","duration":"3 days","phoneNumber":"840000000"}`
	w := doRequest(router, http.MethodPost, "/api/v1/inquiries/rentals", body)
	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", w.Code, w.Body.String())
	}
	var receipt services.InquiryReceipt
	decodeBody(t, w, &receipt)
	if receipt.ID != "01ARZ3NDEKTSV4RRFFQ69G5FAV" {
		t.Fatalf("unexpected receipt %+v", receipt)
	}
	if len(stub.submitted) != 1 || stub.submitted[0].RentalType != "5x5 event tents" {
		t.Fatalf("inquiry not forwarded: %+v", stub.submitted)
	}
}

func TestSubmitInquiryEndpointErrors(t *testing.T) {
	stub := &stubInquiryService{submitErr: fmt.Errorf("%w: missing phoneNumber", services.ErrInquiryInvalid)}
	router := NewRouter(WithInquiryRoutes(NewInquiryHandlers(stub).Routes))

	if w := doRequest(router, http.MethodPost, "/api/v1/inquiries/rentals", "not json"); w.Code != http.StatusBadRequest {
		t.Fatalf("bad body: expected 400, got %d", w.Code)
	}
	if w := doRequest(router, http.MethodPost, "/api/v1/inquiries/rentals", `{"rentalType":"tent"}`); w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("invalid inquiry: expected 422, got %d", w.Code)
	}
}

func TestListRentalItemsEndpoint(t *testing.T) {
	router := NewRouter(WithInquiryRoutes(NewInquiryHandlers(&stubInquiryService{}).Routes))

	w := doRequest(router, http.MethodGet, "/api/v1/inquiries/rentals/items", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var payload struct {
		Items []services.RentalItem `json:"items"`
	}
	decodeBody(t, w, &payload)
	if len(payload.Items) != 2 || payload.Items[0].Name != "18x9 200man Marquee tent" {
		t.Fatalf("unexpected items %+v", payload.Items)
	}
}

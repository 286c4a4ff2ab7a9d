package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

var (
	// ErrInquiryInvalid indicates a submission missing required fields.
	ErrInquiryInvalid = errors.New("inquiry service: invalid inquiry")
	// ErrRentalItemNotFound indicates an availability check for an unknown item.
	ErrRentalItemNotFound = errors.New("inquiry service: rental item not found")
)

// RentalInquiry is a quick rental request from the public site. RentalType,
// Duration and PhoneNumber are required; the rest is optional context.
type RentalInquiry struct {
	RentalType      string `json:"rentalType"`
	Duration        string `json:"duration"`
	PhoneNumber     string `json:"phoneNumber"`
	Email           string `json:"email,omitempty"`
	Name            string `json:"name,omitempty"`
	StartDate       string `json:"startDate,omitempty"`
	AdditionalNotes string `json:"additionalNotes,omitempty"`
}

// InquiryReceipt acknowledges an accepted inquiry.
type InquiryReceipt struct {
	ID          string    `json:"id"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// RentalItem is one rentable equipment listing.
type RentalItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	DailyRate   string `json:"dailyRate"`
	WeeklyRate  string `json:"weeklyRate"`
	Deposit     string `json:"deposit"`
	Category    string `json:"category"`
	Available   bool   `json:"available"`
}

// InquiryNotifier delivers an accepted inquiry to the shop. Implementations
// must be safe for concurrent use.
type InquiryNotifier interface {
	NotifyInquiry(ctx context.Context, inquiry RentalInquiry, receiptID string) error
}

// InquiryServiceDeps bundles constructor inputs for the inquiry service.
type InquiryServiceDeps struct {
	// Notifier may be nil; inquiries are then accepted and logged only.
	Notifier InquiryNotifier
	// ProcessingDelay simulates backend processing before the notification
	// goes out. Zero dispatches immediately.
	ProcessingDelay time.Duration
	Logger          *zap.Logger
	Clock           func() time.Time
}

type inquiryService struct {
	notifier  InquiryNotifier
	delay     time.Duration
	logger    *zap.Logger
	clock     func() time.Time
	sanitizer *bluemonday.Policy
}

// NewInquiryService constructs the inquiry service with the supplied dependencies.
func NewInquiryService(deps InquiryServiceDeps) InquiryService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &inquiryService{
		notifier:  deps.Notifier,
		delay:     deps.ProcessingDelay,
		logger:    logger,
		clock:     func() time.Time { return clock().UTC() },
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Submit validates and sanitizes the inquiry, returns a receipt immediately,
// and dispatches the notification in the background after the configured
// processing delay. Dispatch is not tied to the request context: once
// accepted it always runs to completion.
func (s *inquiryService) Submit(ctx context.Context, inquiry RentalInquiry) (InquiryReceipt, error) {
	cleaned, err := s.sanitize(inquiry)
	if err != nil {
		return InquiryReceipt{}, err
	}

	receipt := InquiryReceipt{
		ID:          ulid.Make().String(),
		Message:     "Rental request submitted successfully",
		SubmittedAt: s.clock(),
	}

	s.logger.Info("rental inquiry accepted",
		zap.String("receipt_id", receipt.ID),
		zap.String("rental_type", cleaned.RentalType),
		zap.String("duration", cleaned.Duration),
	)

	go s.dispatch(cleaned, receipt.ID)

	return receipt, nil
}

func (s *inquiryService) dispatch(inquiry RentalInquiry, receiptID string) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyInquiry(context.Background(), inquiry, receiptID); err != nil {
		s.logger.Error("rental inquiry notification failed",
			zap.String("receipt_id", receiptID),
			zap.Error(err),
		)
		return
	}
	s.logger.Info("rental inquiry notification sent", zap.String("receipt_id", receiptID))
}

func (s *inquiryService) sanitize(inquiry RentalInquiry) (RentalInquiry, error) {
	clean := func(v string) string {
		return strings.TrimSpace(s.sanitizer.Sanitize(v))
	}
	out := RentalInquiry{
		RentalType:      clean(inquiry.RentalType),
		Duration:        clean(inquiry.Duration),
		PhoneNumber:     clean(inquiry.PhoneNumber),
		Email:           clean(inquiry.Email),
		Name:            clean(inquiry.Name),
		StartDate:       clean(inquiry.StartDate),
		AdditionalNotes: clean(inquiry.AdditionalNotes),
	}

	var missing []string
	if out.RentalType == "" {
		missing = append(missing, "rentalType")
	}
	if out.Duration == "" {
		missing = append(missing, "duration")
	}
	if out.PhoneNumber == "" {
		missing = append(missing, "phoneNumber")
	}
	if len(missing) > 0 {
		return RentalInquiry{}, fmt.Errorf("%w: missing %s", ErrInquiryInvalid, strings.Join(missing, ", "))
	}
	return out, nil
}

// AvailableItems lists the rentable equipment. The list is static and
// independent of the product catalog.
func (s *inquiryService) AvailableItems(ctx context.Context) []RentalItem {
	return []RentalItem{
		{
			ID:          1,
			Name:        "18x9 200man Marquee tent",
			Description: "Spacious marquee tent perfect for large events, weddings, and corporate gatherings. Accommodates up to 200 people with professional setup and takedown included.",
			Image:       "https://images.unsplash.com/photo-1478827387698-1527781a4887?w=800&q=80",
			DailyRate:   "$350",
			WeeklyRate:  "$1,800",
			Deposit:     "$700",
			Category:    "tents",
			Available:   true,
		},
		{
			ID:          2,
			Name:        "5x5 event tents",
			Description: "Versatile 5x5 meter event tents ideal for smaller gatherings, market stalls, and outdoor displays. Easy to set up and transport.",
			Image:       "https://images.unsplash.com/photo-1523987355523-c7b5b0dd90a7?w=800&q=80",
			DailyRate:   "$120",
			WeeklyRate:  "$600",
			Deposit:     "$250",
			Category:    "tents",
			Available:   true,
		},
	}
}

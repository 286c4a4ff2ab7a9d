// Package mail delivers rental inquiry notifications over SMTP.
package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gomail "github.com/wneessen/go-mail"

	"github.com/tendas-mozambique/api/internal/platform/config"
	"github.com/tendas-mozambique/api/internal/services"
)

// ErrMailDisabled indicates the notifier was built without SMTP settings.
var ErrMailDisabled = errors.New("mail: notifier is not configured")

// Notifier sends one plain-text message per accepted inquiry.
type Notifier struct {
	client    *gomail.Client
	from      string
	recipient string
}

// NewNotifier builds an SMTP notifier from configuration. It returns
// (nil, nil) when mail is not configured so callers can wire an optional
// dependency without special-casing.
func NewNotifier(cfg config.MailConfig, recipient string) (*Notifier, error) {
	if !cfg.Enabled() {
		return nil, nil
	}
	if strings.TrimSpace(recipient) == "" {
		recipient = cfg.From
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mail: building client: %w", err)
	}
	return &Notifier{client: client, from: cfg.From, recipient: recipient}, nil
}

// NotifyInquiry implements services.InquiryNotifier.
func (n *Notifier) NotifyInquiry(ctx context.Context, inquiry services.RentalInquiry, receiptID string) error {
	if n == nil || n.client == nil {
		return ErrMailDisabled
	}

	msg := gomail.NewMsg()
	if err := msg.From(n.from); err != nil {
		return fmt.Errorf("mail: invalid sender: %w", err)
	}
	if err := msg.To(n.recipient); err != nil {
		return fmt.Errorf("mail: invalid recipient: %w", err)
	}
	msg.Subject(fmt.Sprintf("Rental inquiry %s: %s", receiptID, inquiry.RentalType))
	msg.SetBodyString(gomail.TypeTextPlain, renderBody(inquiry, receiptID))

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mail: sending inquiry %s: %w", receiptID, err)
	}
	return nil
}

func renderBody(inquiry services.RentalInquiry, receiptID string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New rental inquiry %s\n\n", receiptID)
	fmt.Fprintf(&b, "Equipment: %s\n", inquiry.RentalType)
	fmt.Fprintf(&b, "Duration:  %s\n", inquiry.Duration)
	fmt.Fprintf(&b, "Phone:     %s\n", inquiry.PhoneNumber)
	if inquiry.Name != "" {
		fmt.Fprintf(&b, "Name:      %s\n", inquiry.Name)
	}
	if inquiry.Email != "" {
		fmt.Fprintf(&b, "Email:     %s\n", inquiry.Email)
	}
	if inquiry.StartDate != "" {
		fmt.Fprintf(&b, "Start:     %s\n", inquiry.StartDate)
	}
	if inquiry.AdditionalNotes != "" {
		fmt.Fprintf(&b, "\nNotes:\n%s\n", inquiry.AdditionalNotes)
	}
	return b.String()
}

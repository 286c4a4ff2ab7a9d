package mail

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tendas-mozambique/api/internal/platform/config"
	"github.com/tendas-mozambique/api/internal/services"
)

func TestNewNotifierDisabledWithoutConfig(t *testing.T) {
	notifier, err := NewNotifier(config.MailConfig{}, "")
	if err != nil {
		t.Fatalf("NewNotifier: %v", err)
	}
	if notifier != nil {
		t.Fatalf("expected nil notifier when mail is unconfigured")
	}

	var nilNotifier *Notifier
	err = nilNotifier.NotifyInquiry(context.Background(), services.RentalInquiry{}, "x")
	if !errors.Is(err, ErrMailDisabled) {
		t.Fatalf("expected ErrMailDisabled, got %v", err)
	}
}

func TestNewNotifierDefaultsRecipientToSender(t *testing.T) {
	notifier, err := NewNotifier(config.MailConfig{
		Host: "smtp.example.test",
		Port: 587,
		From: "noreply@example.test",
	}, "")
	if err != nil {
		t.Fatalf("NewNotifier: %v", err)
	}
	if notifier == nil {
		t.Fatalf("expected a configured notifier")
	}
	if notifier.recipient != "noreply@example.test" {
		t.Fatalf("expected recipient fallback to sender, got %q", notifier.recipient)
	}
}

func TestRenderBody(t *testing.T) {
	body := renderBody(services.RentalInquiry{
		RentalType:      "5x5 event tents",
		Duration:        "3 days",
		PhoneNumber:     "840000000",
		Name:            "Carlos",
		AdditionalNotes: "Setup on Friday",
	}, "01ARZ3NDEKTSV4RRFFQ69G5FAV")

	for _, want := range []string{"01ARZ3NDEKTSV4RRFFQ69G5FAV", "5x5 event tents", "3 days", "840000000", "Carlos", "Setup on Friday"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}
	if strings.Contains(body, "Email:") {
		t.Fatalf("optional empty fields should be omitted:\n%s", body)
	}
}

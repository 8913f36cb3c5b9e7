package email

import (
	"strings"
	"testing"
	"time"

	"go-insights/internal/features/contact"
)

func sampleContact() *contact.Contact {
	return &contact.Contact{
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		CountryCode: "+44",
		Phone:       "7700900000",
		Company:     "Acme",
		Subject:     "Pricing",
		Message:     "How much for the 2025 report?",
		CreatedAt:   time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestOwnerBodyContainsSubmission(t *testing.T) {
	body := ownerBody(sampleContact())

	for _, want := range []string{"Jane Doe", "jane@example.com", "+44 7700900000", "Acme", "Pricing", "How much for the 2025 report?"} {
		if !strings.Contains(body, want) {
			t.Errorf("owner body missing %q", want)
		}
	}
}

func TestOwnerBodyFillsOptionalFields(t *testing.T) {
	c := sampleContact()
	c.Company = ""
	c.Industry = ""

	body := ownerBody(c)
	if !strings.Contains(body, "Company: N/A") {
		t.Error("empty company should render as N/A")
	}
	if !strings.Contains(body, "Industry: N/A") {
		t.Error("empty industry should render as N/A")
	}
}

func TestAckSubjectUsesFirstName(t *testing.T) {
	got := ackSubject(sampleContact())
	want := "Thanks for contacting us, Jane!"
	if got != want {
		t.Errorf("ackSubject() = %q, want %q", got, want)
	}
}

func TestOwnerSubjectWithoutSubject(t *testing.T) {
	c := sampleContact()
	c.Subject = ""

	got := ownerSubject(c)
	if !strings.Contains(got, "No subject") {
		t.Errorf("ownerSubject() = %q, want fallback subject", got)
	}
}

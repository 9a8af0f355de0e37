package service

import (
	"net/mail"
	"strings"
	"time"

	"github.com/dtroode/gocalendar/internal/apperrors"
	"github.com/dtroode/gocalendar/internal/model"
)

const dateLayout = "2006-01-02"

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateEmail accepts bare addresses only, no display names.
func validateEmail(email string) error {
	if email == "" {
		return apperrors.NewErrValidation("email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return apperrors.NewErrValidation("email is invalid")
	}
	return nil
}

// parseDate accepts YYYY-MM-DD (stored as UTC midnight) or RFC 3339.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, apperrors.NewErrValidation("date is required")
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, apperrors.NewErrValidation("date must be YYYY-MM-DD or RFC 3339")
	}
	return t.UTC(), nil
}

type entryFields struct {
	email       string
	date        time.Time
	description string
}

func validateEntry(p model.EntryParams) (entryFields, error) {
	email := normalizeEmail(p.Email)
	if err := validateEmail(email); err != nil {
		return entryFields{}, err
	}

	date, err := parseDate(p.Date)
	if err != nil {
		return entryFields{}, err
	}

	description := strings.TrimSpace(p.Description)
	if description == "" {
		return entryFields{}, apperrors.NewErrValidation("description is required")
	}

	return entryFields{email: email, date: date, description: description}, nil
}

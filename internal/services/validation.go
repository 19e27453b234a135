package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"magnet-orders-backend/internal/models"
)

// Basic syntactic check only: something, @, something, dot, something.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidationError is a client error. Message is user-facing copy in the
// storefront's language.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateSubmission trims every text field in place and fails fast on the
// first violation. No side effects may happen before this passes.
func ValidateSubmission(sub *models.Submission) error {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Phone = strings.TrimSpace(sub.Phone)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.City = strings.TrimSpace(sub.City)
	sub.Address = strings.TrimSpace(sub.Address)
	sub.Song = strings.TrimSpace(sub.Song)
	sub.Message = strings.TrimSpace(sub.Message)
	sub.Note = strings.TrimSpace(sub.Note)
	sub.Qty = strings.TrimSpace(sub.Qty)
	sub.Total = strings.TrimSpace(sub.Total)

	if sub.Photo == nil || len(sub.Photo.Data) == 0 {
		return ValidationError{
			Field:   "photo",
			Message: "Dodaj fotografiju (obavezno).",
		}
	}

	if sub.Name == "" || sub.Phone == "" || sub.Email == "" || sub.City == "" || sub.Address == "" || sub.Song == "" {
		return ValidationError{
			Field:   "required",
			Message: "Popuni obavezna polja (ime, telefon, email, grad, adresa, pjesma).",
		}
	}

	if !emailPattern.MatchString(sub.Email) {
		return ValidationError{
			Field:   "email",
			Message: "Unesi ispravan email.",
		}
	}

	return nil
}

// ClampQty parses the raw quantity field into an integer in [1,9].
// Non-numeric or empty input defaults to 1.
func ClampQty(raw string) int {
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 1
	}
	if qty < 1 {
		return 1
	}
	if qty > 9 {
		return 9
	}
	return qty
}

// ParseTotal parses the client-supplied total hint; anything unparsable is 0.
func ParseTotal(raw string) float64 {
	total, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return total
}

// OrderCode derives the human-friendly label used in email copy from the
// order identifier. It is never stored and never used as a lookup key.
func OrderCode(orderID string) string {
	code := orderID
	if len(code) > 8 {
		code = code[:8]
	}
	return "MAG-" + strings.ToUpper(code)
}

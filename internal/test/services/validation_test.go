package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"magnet-orders-backend/internal/models"
	"magnet-orders-backend/internal/services"
)

func TestClampQty(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"1", 1},
		{"9", 9},
		{"4", 4},
		{"0", 1},
		{"-1", 1},
		{"10", 9},
		{"15", 9},
		{"999", 9},
		{"", 1},
		{"abc", 1},
		{"2.5", 1},
		{" 3 ", 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, services.ClampQty(tt.raw), "input %q", tt.raw)
	}
}

func TestParseTotal(t *testing.T) {
	assert.Equal(t, 79.8, services.ParseTotal("79.80"))
	assert.Equal(t, 0.0, services.ParseTotal(""))
	assert.Equal(t, 0.0, services.ParseTotal("free"))
}

func TestOrderCode(t *testing.T) {
	assert.Equal(t, "MAG-F47AC10B", services.OrderCode("f47ac10b-58cc-4372-a567-0e02b2c3d479"))

	// Deterministic: same identifier always yields the same code.
	assert.Equal(t,
		services.OrderCode("f47ac10b-58cc-4372-a567-0e02b2c3d479"),
		services.OrderCode("f47ac10b-58cc-4372-a567-0e02b2c3d479"))

	// Short identifiers are used whole rather than sliced out of range.
	assert.Equal(t, "MAG-AB12", services.OrderCode("ab12"))
}

func TestValidateSubmission_TrimsFields(t *testing.T) {
	sub := &models.Submission{
		Name:    "  Stefan  ",
		Phone:   " 065 123 ",
		Email:   " stefan@example.com ",
		City:    " Banja Luka ",
		Address: " Ulica 1 ",
		Song:    " Perfect ",
		Photo:   &models.Photo{Filename: "p.jpg", Data: []byte("x")},
	}

	err := services.ValidateSubmission(sub)

	assert.NoError(t, err)
	assert.Equal(t, "Stefan", sub.Name)
	assert.Equal(t, "stefan@example.com", sub.Email)
	assert.Equal(t, "Banja Luka", sub.City)
}

func TestValidateSubmission_EmailPattern(t *testing.T) {
	valid := []string{"a@b.co", "stefan.r@mail.example.com", "x+tag@y.ba"}
	invalid := []string{"not-an-email", "a@b", "a b@c.d", "@b.c", "a@.", ""}

	for _, email := range valid {
		sub := &models.Submission{
			Name: "n", Phone: "p", Email: email, City: "c", Address: "a", Song: "s",
			Photo: &models.Photo{Filename: "p.jpg", Data: []byte("x")},
		}
		assert.NoError(t, services.ValidateSubmission(sub), "email %q", email)
	}

	for _, email := range invalid {
		sub := &models.Submission{
			Name: "n", Phone: "p", Email: email, City: "c", Address: "a", Song: "s",
			Photo: &models.Photo{Filename: "p.jpg", Data: []byte("x")},
		}
		assert.Error(t, services.ValidateSubmission(sub), "email %q", email)
	}
}

func TestValidateSubmission_EmptyPhotoPayload(t *testing.T) {
	sub := &models.Submission{
		Name: "n", Phone: "p", Email: "a@b.c", City: "c", Address: "a", Song: "s",
		Photo: &models.Photo{Filename: "p.jpg"},
	}

	err := services.ValidateSubmission(sub)

	var ve services.ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, "photo", ve.Field)
}

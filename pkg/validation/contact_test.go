package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-contact-backend/internal/domain"
	"go-contact-backend/pkg/validation"
)

func TestValidateContact(t *testing.T) {
	t.Run("Should accept a valid submission and trim every field", func(t *testing.T) {
		res := validation.ValidateContact(&domain.ContactRequest{
			Name:    "  Jo Smith  ",
			Email:   " jo@example.com ",
			Subject: " Hello there ",
			Message: "  Hi\nthere  ",
		})

		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
		assert.Equal(t, "Jo Smith", res.Normalized.Name)
		assert.Equal(t, "jo@example.com", res.Normalized.Email)
		assert.Equal(t, "Hello there", res.Normalized.Subject)
		assert.Equal(t, "Hi\nthere", res.Normalized.Message)
	})

	t.Run("Should allow a missing message", func(t *testing.T) {
		res := validation.ValidateContact(&domain.ContactRequest{
			Name:    "Jo",
			Email:   "jo@example.com",
			Subject: "Hello there",
		})

		assert.True(t, res.Valid)
		assert.Equal(t, "", res.Normalized.Message)
	})

	t.Run("Should collect every violation, not just the first", func(t *testing.T) {
		res := validation.ValidateContact(&domain.ContactRequest{
			Name:    "J",
			Email:   "not-an-email",
			Subject: "Hi",
		})

		assert.False(t, res.Valid)
		assert.Nil(t, res.Normalized)
		assert.Len(t, res.Errors, 3)
		assert.Contains(t, res.Errors, "name")
		assert.Contains(t, res.Errors, "email")
		assert.Contains(t, res.Errors, "subject")
	})

	t.Run("Should report required errors for blank fields", func(t *testing.T) {
		res := validation.ValidateContact(&domain.ContactRequest{
			Name:    "   ",
			Email:   "",
			Subject: "\t",
		})

		assert.False(t, res.Valid)
		assert.Equal(t, "Name is required", res.Errors["name"])
		assert.Equal(t, "Email is required", res.Errors["email"])
		assert.Equal(t, "Subject is required", res.Errors["subject"])
	})

	t.Run("Should enforce length bounds", func(t *testing.T) {
		res := validation.ValidateContact(&domain.ContactRequest{
			Name:    strings.Repeat("a", 101),
			Email:   "jo@example.com",
			Subject: strings.Repeat("s", 201),
		})

		assert.False(t, res.Valid)
		assert.Equal(t, "Name must be between 2 and 100 characters", res.Errors["name"])
		assert.Equal(t, "Subject must be between 5 and 200 characters", res.Errors["subject"])
	})

	t.Run("Should fold line breaks out of header-bound fields", func(t *testing.T) {
		res := validation.ValidateContact(&domain.ContactRequest{
			Name:    "Jo\r\nSmith",
			Email:   "jo@example.com",
			Subject: "Hello\r\nBcc: victim@evil.example",
			Message: "Line one\nLine two",
		})

		assert.True(t, res.Valid)
		assert.Equal(t, "Jo Smith", res.Normalized.Name)
		assert.Equal(t, "Hello Bcc: victim@evil.example", res.Normalized.Subject)
		assert.NotContains(t, res.Normalized.Subject, "\r")
		assert.NotContains(t, res.Normalized.Subject, "\n")
		// The message only ever reaches the body, so its line breaks stay
		assert.Equal(t, "Line one\nLine two", res.Normalized.Message)
	})

	t.Run("Should measure the message cap before trimming", func(t *testing.T) {
		// 1995 chars of content plus 10 spaces of padding crosses the cap
		padded := "     " + strings.Repeat("m", 1995) + "     "
		res := validation.ValidateContact(&domain.ContactRequest{
			Name:    "Jo",
			Email:   "jo@example.com",
			Subject: "Hello there",
			Message: padded,
		})

		assert.False(t, res.Valid)
		assert.Equal(t, "Message must not exceed 2000 characters", res.Errors["message"])
	})

	t.Run("Should apply length rules to the trimmed value", func(t *testing.T) {
		// 2 meaningful chars padded with whitespace still passes min=2
		res := validation.ValidateContact(&domain.ContactRequest{
			Name:    "  Jo  ",
			Email:   "jo@example.com",
			Subject: "Hello there",
		})

		assert.True(t, res.Valid)
	})
}

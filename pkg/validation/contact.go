package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"go-contact-backend/internal/domain"
)

var validate = validator.New()

// contactForm mirrors the submission with the constraints each field must
// satisfy. Name, Email and Subject are validated post-trim; Message length is
// measured on the raw value.
type contactForm struct {
	Name    string `validate:"required,min=2,max=100"`
	Email   string `validate:"required,email"`
	Subject string `validate:"required,min=5,max=200"`
	Message string `validate:"omitempty,max=2000"`
}

// Result is the outcome of validating one submission. Normalized is set only
// when Valid is true; callers must not consult it otherwise.
type Result struct {
	Valid      bool
	Errors     map[string]string
	Normalized *domain.NormalizedSubmission
}

// ValidateContact checks every field rule independently and collects all
// violations. A single response therefore reports a short name and a
// malformed email at the same time.
// stripLineBreaks trims a field and folds CR/LF out of it. Name and subject
// end up in mail headers, where a stray line break would let a submission
// append headers of its own (Bcc, extra recipients).
func stripLineBreaks(v string) string {
	v = strings.ReplaceAll(v, "\r", "")
	v = strings.ReplaceAll(v, "\n", " ")
	return strings.TrimSpace(v)
}

func ValidateContact(req *domain.ContactRequest) Result {
	form := contactForm{
		Name:    stripLineBreaks(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: stripLineBreaks(req.Subject),
		Message: req.Message, // length cap applies pre-trim
	}

	errs := map[string]string{}
	if err := validate.Struct(form); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				field := strings.ToLower(fe.StructField())
				// Keep the first violation per field
				if _, seen := errs[field]; !seen {
					errs[field] = messageFor(fe)
				}
			}
		} else {
			errs["form"] = "Invalid submission"
		}
	}

	if len(errs) > 0 {
		return Result{Valid: false, Errors: errs}
	}

	return Result{
		Valid:  true,
		Errors: errs,
		Normalized: &domain.NormalizedSubmission{
			Name:    form.Name,
			Email:   form.Email,
			Subject: form.Subject,
			Message: strings.TrimSpace(req.Message),
		},
	}
}

// messageFor maps a violated rule to the user-facing message for its field.
func messageFor(fe validator.FieldError) string {
	switch fe.StructField() {
	case "Name":
		if fe.Tag() == "required" {
			return "Name is required"
		}
		return "Name must be between 2 and 100 characters"
	case "Email":
		if fe.Tag() == "required" {
			return "Email is required"
		}
		return "Please provide a valid email address"
	case "Subject":
		if fe.Tag() == "required" {
			return "Subject is required"
		}
		return "Subject must be between 5 and 200 characters"
	case "Message":
		return "Message must not exceed 2000 characters"
	}
	return "Invalid value"
}

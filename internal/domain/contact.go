package domain

import "context"

// ContactRequest represents a raw contact form submission. Fields are
// untrusted at this point; validation collects every violation rather than
// short-circuiting, so no binding constraints live here.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// NormalizedSubmission is a validated submission with every field trimmed.
// It exists only when validation succeeded and is never persisted.
type NormalizedSubmission struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// DispatchOutcome records the result of the one or two sends a submission
// triggers. AdminSent is the primary success signal; ReplySent is best-effort.
type DispatchOutcome struct {
	AdminSent      bool
	AdminMessageID string
	ReplySent      bool
	ReplyMessageID string
	Err            error
}

// SubmitResult is the single outcome the HTTP layer reports to the caller.
type SubmitResult struct {
	Success bool
	Message string
}

// ValidationError carries the per-field violation messages for an invalid
// submission. It is an expected condition, not an application fault.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// Submit validates a submission, renders the notification emails and
	// dispatches them. Returns *ValidationError when fields are invalid.
	Submit(ctx context.Context, req *ContactRequest) (*SubmitResult, error)
}

package mailer

import "context"

// Email is a fully-prepared message ready for delivery.
type Email struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// Sender is the narrow delivery capability the dispatch logic depends on.
// Implementations return the provider's message id on success. No retries
// happen at this level; a failed send surfaces as an error exactly once.
type Sender interface {
	Send(ctx context.Context, email *Email) (string, error)
	// IsConfigured reports whether the transport has enough configuration
	// to attempt a send at all.
	IsConfigured() bool
}

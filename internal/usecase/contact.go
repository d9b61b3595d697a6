package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-contact-backend/internal/domain"
	"go-contact-backend/pkg/logger"
	"go-contact-backend/pkg/mailer"
	"go-contact-backend/pkg/validation"
)

// ErrMailNotConfigured means the transport lacks credentials; the handler
// maps it to 503 rather than a generic failure.
var ErrMailNotConfigured = errors.New("mail service is not configured")

type contactUsecase struct {
	sender    mailer.Sender
	renderer  *mailer.Renderer
	fromEmail string
	toEmail   string
	autoReply bool
	now       func() time.Time
}

// NewContactUsecase creates the submission pipeline. fromEmail is the fixed
// sender identity, toEmail the fixed recipient of admin notifications, and
// autoReply gates the acknowledgement back to the submitter.
func NewContactUsecase(sender mailer.Sender, renderer *mailer.Renderer, fromEmail, toEmail string, autoReply bool) domain.ContactUsecase {
	return &contactUsecase{
		sender:    sender,
		renderer:  renderer,
		fromEmail: fromEmail,
		toEmail:   toEmail,
		autoReply: autoReply,
		now:       time.Now,
	}
}

// Submit runs validate -> render -> dispatch and folds the outcome into a
// single result for the HTTP layer.
func (uc *contactUsecase) Submit(ctx context.Context, req *domain.ContactRequest) (*domain.SubmitResult, error) {
	res := validation.ValidateContact(req)
	if !res.Valid {
		return nil, &domain.ValidationError{Fields: res.Errors}
	}

	if !uc.sender.IsConfigured() {
		return nil, ErrMailNotConfigured
	}

	s := res.Normalized
	sub := mailer.Submission{
		Name:    s.Name,
		Email:   s.Email,
		Subject: s.Subject,
		Message: s.Message,
	}

	admin, err := uc.renderer.RenderAdminNotification(sub, uc.now())
	if err != nil {
		return nil, err
	}

	var ack *mailer.Rendered
	if uc.autoReply {
		rendered, err := uc.renderer.RenderAcknowledgement(sub)
		if err != nil {
			return nil, err
		}
		ack = &rendered
	}

	outcome := uc.dispatch(ctx, admin, ack, s)
	if !outcome.AdminSent {
		return nil, fmt.Errorf("failed to send contact email: %w", outcome.Err)
	}

	return &domain.SubmitResult{
		Success: true,
		Message: "Your message has been sent successfully!",
	}, nil
}

// dispatch performs the mandatory admin send and, when an acknowledgement
// was rendered, the best-effort reply to the submitter. Each leg is
// attempted at most once; retry policy belongs to the transport, not here.
func (uc *contactUsecase) dispatch(ctx context.Context, admin mailer.Rendered, ack *mailer.Rendered, s *domain.NormalizedSubmission) domain.DispatchOutcome {
	var outcome domain.DispatchOutcome

	adminID, err := uc.sender.Send(ctx, &mailer.Email{
		From:    uc.fromEmail,
		To:      uc.toEmail,
		ReplyTo: s.Email,
		Subject: fmt.Sprintf("Contact Form: %s", s.Subject),
		HTML:    admin.HTML,
		Text:    admin.Text,
	})
	if err != nil {
		// The obligation to the site owner was not met; the acknowledgement
		// is skipped entirely.
		outcome.Err = err
		return outcome
	}
	outcome.AdminSent = true
	outcome.AdminMessageID = adminID

	if ack == nil {
		return outcome
	}

	replyID, err := uc.sender.Send(ctx, &mailer.Email{
		From:    uc.fromEmail,
		To:      s.Email,
		Subject: "We received your message",
		HTML:    ack.HTML,
		Text:    ack.Text,
	})
	if err != nil {
		// Best-effort: the admin notification went out, so the submission
		// still counts as delivered. Record and log, never escalate.
		outcome.Err = err
		logger.Log.Warn("acknowledgement email failed",
			"recipient", s.Email,
			"error", err.Error(),
		)
		return outcome
	}
	outcome.ReplySent = true
	outcome.ReplyMessageID = replyID

	return outcome
}

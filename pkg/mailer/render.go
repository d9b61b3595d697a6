package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"
)

// Rendered holds the HTML and plain-text variants of one email body.
// Both are derived deterministically from the submission (and, for the admin
// notification, the timestamp captured at render time).
type Rendered struct {
	HTML string
	Text string
}

// Submission is the validated, trimmed input the renderer works from.
type Submission struct {
	Name    string
	Email   string
	Subject string
	Message string
}

const noMessagePlaceholder = "No message provided"

// adminTemplate is the HTML body for the notification sent to the site owner.
// All fields pass through html/template escaping; the message body is
// pre-escaped separately so its line breaks can become <br> tags.
const adminTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1a7a4a; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #1a7a4a; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Contact Form Submission</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">From:</div>
                <div class="value">{{.Name}} (<a href="mailto:{{.Email}}">{{.Email}}</a>)</div>
            </div>
            <div class="field">
                <div class="label">Subject:</div>
                <div class="value">{{.Subject}}</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.MessageHTML}}</div>
            </div>
        </div>
        <div class="footer">
            <p>Received on {{.Timestamp}} via the groenv8.com contact form.</p>
            <p>Reply to this email to answer {{.Name}} directly.</p>
        </div>
    </div>
</body>
</html>`

// ackTemplate is the HTML body for the acknowledgement sent back to the
// submitter. No timestamp footer and no contact details beyond the greeting.
const ackTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>We received your message</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1a7a4a; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .quote { background: white; padding: 15px; border-left: 4px solid #1a7a4a; margin-top: 10px; color: #555; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Thanks for reaching out</h1>
        </div>
        <div class="content">
            <p>Hi {{.Name}},</p>
            <p>We received your message about &quot;{{.Subject}}&quot; and will get back to you as soon as possible, usually within one business day.</p>
            <div class="quote">{{.MessageHTML}}</div>
            <p>This is an automated confirmation; there is no need to reply.</p>
        </div>
    </div>
</body>
</html>`

var (
	adminTmpl = template.Must(template.New("admin").Parse(adminTemplate))
	ackTmpl   = template.Must(template.New("ack").Parse(ackTemplate))
)

// Renderer produces the notification and acknowledgement bodies. The timezone
// is fixed at construction so rendering stays pure.
type Renderer struct {
	loc *time.Location
}

// NewRenderer creates a renderer presenting timestamps in the named timezone.
// Unknown names fall back to UTC.
func NewRenderer(timezone string) *Renderer {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return &Renderer{loc: loc}
}

// RenderAdminNotification renders the email sent to the site owner.
func (r *Renderer) RenderAdminNotification(s Submission, now time.Time) (Rendered, error) {
	message := s.Message
	if strings.TrimSpace(message) == "" {
		message = noMessagePlaceholder
	}
	timestamp := now.In(r.loc).Format("January 2, 2006 at 3:04 PM MST")

	data := struct {
		Name        string
		Email       string
		Subject     string
		MessageHTML template.HTML
		Timestamp   string
	}{
		Name:        s.Name,
		Email:       s.Email,
		Subject:     s.Subject,
		MessageHTML: htmlWithLineBreaks(message),
		Timestamp:   timestamp,
	}

	var body bytes.Buffer
	if err := adminTmpl.Execute(&body, data); err != nil {
		return Rendered{}, fmt.Errorf("failed to render admin notification: %w", err)
	}

	var text strings.Builder
	text.WriteString("New contact form submission\n\n")
	fmt.Fprintf(&text, "Name: %s\n", s.Name)
	fmt.Fprintf(&text, "Email: %s\n", s.Email)
	fmt.Fprintf(&text, "Subject: %s\n\n", s.Subject)
	text.WriteString(message)
	text.WriteString("\n\n")
	fmt.Fprintf(&text, "Received on %s via the groenv8.com contact form.\n", timestamp)

	return Rendered{HTML: body.String(), Text: text.String()}, nil
}

// RenderAcknowledgement renders the confirmation sent back to the submitter.
func (r *Renderer) RenderAcknowledgement(s Submission) (Rendered, error) {
	message := s.Message
	if strings.TrimSpace(message) == "" {
		message = noMessagePlaceholder
	}

	data := struct {
		Name        string
		Subject     string
		MessageHTML template.HTML
	}{
		Name:        s.Name,
		Subject:     s.Subject,
		MessageHTML: htmlWithLineBreaks(message),
	}

	var body bytes.Buffer
	if err := ackTmpl.Execute(&body, data); err != nil {
		return Rendered{}, fmt.Errorf("failed to render acknowledgement: %w", err)
	}

	var text strings.Builder
	fmt.Fprintf(&text, "Hi %s,\n\n", s.Name)
	fmt.Fprintf(&text, "We received your message about %q and will get back to you as soon as possible, usually within one business day.\n\n", s.Subject)
	text.WriteString("> " + strings.ReplaceAll(message, "\n", "\n> "))
	text.WriteString("\n\nThis is an automated confirmation; there is no need to reply.\n")

	return Rendered{HTML: body.String(), Text: text.String()}, nil
}

// htmlWithLineBreaks entity-escapes a value and converts its line breaks to
// <br> tags. Only the HTML variant gets this treatment; the text variant
// keeps raw line breaks.
func htmlWithLineBreaks(v string) template.HTML {
	escaped := template.HTMLEscapeString(v)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	return template.HTML(escaped)
}

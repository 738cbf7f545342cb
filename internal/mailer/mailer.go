package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"go-screening-backend/config"
	"go-screening-backend/internal/domain"
	"go-screening-backend/pkg/logger"
)

// Message is one outbound email, carrying both HTML and plain-text bodies.
type Message struct {
	From     string
	To       string
	ReplyTo  string
	Subject  string
	HTMLBody string
	TextBody string
}

// Sender is a single email backend. Implementations: SMTP, Resend, SendGrid.
type Sender interface {
	// Name identifies the backend in server-side logs only. It must never
	// reach a client response.
	Name() string
	Send(ctx context.Context, msg *Message) error
}

// NewSender selects a backend by configuration precedence:
// SMTP credentials > Resend API key > SendGrid API key.
// Returns nil when no backend is configured.
func NewSender(cfg *config.Config) Sender {
	timeout := time.Duration(cfg.HTTPTimeoutSeconds) * time.Second
	switch {
	case cfg.SMTPHost != "" && cfg.SMTPUser != "" && cfg.SMTPPass != "":
		return newSMTPSender(cfg, timeout)
	case cfg.ResendAPIKey != "":
		return newResendSender(cfg.ResendAPIKey, timeout)
	case cfg.SendGridAPIKey != "":
		return newSendGridSender(cfg.SendGridAPIKey, timeout)
	default:
		return nil
	}
}

// Dispatcher builds and sends the notification email for each accepted
// submission, plus an optional confirmation back to the submitter.
type Dispatcher struct {
	sender           Sender
	fromEmail        string
	toEmail          string
	sendConfirmation bool
	now              func() time.Time
}

// NewDispatcher wires a dispatcher to the selected sender. A nil sender is
// legal and makes Dispatch fail with domain.ErrNotConfigured.
func NewDispatcher(cfg *config.Config, sender Sender) *Dispatcher {
	return &Dispatcher{
		sender:           sender,
		fromEmail:        cfg.FromEmail,
		toEmail:          cfg.ToEmail,
		sendConfirmation: cfg.SendConfirmation,
		now:              time.Now,
	}
}

// IsConfigured reports whether any email backend is available.
func (d *Dispatcher) IsConfigured() bool {
	return d.sender != nil
}

// Dispatch sends the notification for req to the business inbox and, when
// enabled, a confirmation to the submitter. A failed notification aborts the
// operation; a failed confirmation is logged and swallowed since the primary
// goal already succeeded.
func (d *Dispatcher) Dispatch(ctx context.Context, req *domain.ContactRequest) error {
	if d.sender == nil {
		return domain.ErrNotConfigured
	}

	notification := d.buildNotification(req)
	if err := d.sender.Send(ctx, notification); err != nil {
		logger.Log.Error("Notification email failed", "backend", d.sender.Name(), "error", err)
		return fmt.Errorf("%w: %v", domain.ErrDispatchFailed, err)
	}

	if d.sendConfirmation {
		confirmation := d.buildConfirmation(req)
		if err := d.sender.Send(ctx, confirmation); err != nil {
			logger.Log.Warn("Confirmation email failed", "backend", d.sender.Name(), "to", req.WorkEmail, "error", err)
		}
	}

	return nil
}

const notificationTemplate = `<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Work Email:</strong> {{.WorkEmail}}</p>
<p><strong>Company:</strong> {{.Company}}</p>
{{if .Telephone}}<p><strong>Telephone:</strong> {{.Telephone}}</p>
{{end}}{{if .Message}}<p><strong>Message:</strong><br>{{.Message}}</p>
{{end}}<hr>
<p><small>Submitted at: {{.SubmittedAt}}</small></p>`

var notificationTmpl = template.Must(template.New("notification").Parse(notificationTemplate))

type notificationData struct {
	Name        string
	WorkEmail   string
	Company     string
	Telephone   string
	Message     template.HTML
	SubmittedAt string
}

func (d *Dispatcher) buildNotification(req *domain.ContactRequest) *Message {
	submittedAt := d.now().UTC().Format(time.RFC3339)

	var html bytes.Buffer
	// template.Must on a const template; Execute on a buffer cannot fail
	_ = notificationTmpl.Execute(&html, notificationData{
		Name:        req.Name,
		WorkEmail:   req.WorkEmail,
		Company:     req.Company,
		Telephone:   req.Telephone,
		Message:     htmlMessage(req.Message),
		SubmittedAt: submittedAt,
	})

	var text strings.Builder
	text.WriteString("New Contact Form Submission\n\n")
	fmt.Fprintf(&text, "Name: %s\n", req.Name)
	fmt.Fprintf(&text, "Work Email: %s\n", req.WorkEmail)
	fmt.Fprintf(&text, "Company: %s\n", req.Company)
	if req.Telephone != "" {
		fmt.Fprintf(&text, "Telephone: %s\n", req.Telephone)
	}
	if req.Message != "" {
		fmt.Fprintf(&text, "Message: %s\n", req.Message)
	}
	fmt.Fprintf(&text, "\nSubmitted at: %s\n", submittedAt)

	return &Message{
		From:     d.fromEmail,
		To:       d.toEmail,
		ReplyTo:  req.WorkEmail,
		Subject:  fmt.Sprintf("New Contact Form Submission from %s", req.Name),
		HTMLBody: html.String(),
		TextBody: text.String(),
	}
}

const confirmationTemplate = `<h2>Thank you for your inquiry</h2>
<p>Dear {{.Name}},</p>
<p>We have received your message and will get back to you soon.</p>
<p>Best regards,<br>The BEXA Team</p>`

var confirmationTmpl = template.Must(template.New("confirmation").Parse(confirmationTemplate))

// buildConfirmation thanks the submitter. It deliberately does not echo the
// notification content back to the submitter's address.
func (d *Dispatcher) buildConfirmation(req *domain.ContactRequest) *Message {
	var html bytes.Buffer
	_ = confirmationTmpl.Execute(&html, struct{ Name string }{Name: req.Name})

	text := fmt.Sprintf("Thank you for your inquiry\n\nDear %s,\n\nWe have received your message and will get back to you soon.\n\nBest regards,\nThe BEXA Team\n", req.Name)

	return &Message{
		From:     d.fromEmail,
		To:       req.WorkEmail,
		Subject:  "Thank you for contacting BEXA",
		HTMLBody: html.String(),
		TextBody: text,
	}
}

// htmlMessage escapes the free-form message and converts newlines to <br>
// so multi-line messages render in the HTML body.
func htmlMessage(msg string) template.HTML {
	escaped := template.HTMLEscapeString(msg)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

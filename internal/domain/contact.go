package domain

import (
	"context"
	"errors"
)

// ContactRequest represents a contact form submission from the outreach site
type ContactRequest struct {
	Name      string `json:"name" binding:"required,min=2"`
	WorkEmail string `json:"workEmail" binding:"required,email"`
	Telephone string `json:"telephone"`
	Company   string `json:"company" binding:"required,min=2"`
	Message   string `json:"message" binding:"required,min=10"`
	// Honeypot: hidden on the real form, so any value marks the
	// submission as automated. No binding tag; non-empty is handled
	// after structural validation, not reported as a field error.
	Website      string `json:"website"`
	CaptchaToken string `json:"captchaToken"`
}

// Sentinel errors for the contact pipeline. The handler maps these to
// HTTP statuses; anything else is treated as an internal error.
var (
	ErrCaptchaFailed  = errors.New("captcha verification failed")
	ErrRateLimited    = errors.New("rate limit exceeded")
	ErrNotConfigured  = errors.New("email service not configured")
	ErrDispatchFailed = errors.New("failed to dispatch email")
)

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SubmitContact runs the intake pipeline for one submission.
	// clientIP is the remote address used for rate-limit identity.
	SubmitContact(ctx context.Context, req *ContactRequest, clientIP string) error
}

// CaptchaVerifier checks a challenge token with an external service.
// A nil verifier means verification is not required.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token string) bool
}

// MailDispatcher sends the notification (and optional confirmation) emails
// for an accepted submission.
type MailDispatcher interface {
	Dispatch(ctx context.Context, req *ContactRequest) error
}

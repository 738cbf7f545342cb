package usecase

import (
	"context"

	"go-screening-backend/internal/domain"
	"go-screening-backend/internal/ratelimit"
	"go-screening-backend/pkg/logger"
)

type contactUsecase struct {
	dispatcher domain.MailDispatcher
	limiter    *ratelimit.Limiter
	verifier   domain.CaptchaVerifier
}

// NewContactUsecase creates the contact intake pipeline. verifier may be nil
// when no captcha secret is configured.
func NewContactUsecase(dispatcher domain.MailDispatcher, limiter *ratelimit.Limiter, verifier domain.CaptchaVerifier) domain.ContactUsecase {
	return &contactUsecase{
		dispatcher: dispatcher,
		limiter:    limiter,
		verifier:   verifier,
	}
}

// SubmitContact runs the gates in a fixed order, each a potential early
// exit: honeypot, captcha, rate limit, dispatch.
func (uc *contactUsecase) SubmitContact(ctx context.Context, req *domain.ContactRequest, clientIP string) error {
	// Honeypot field filled means an automated submission. Accept it
	// silently and send nothing, so the bot learns nothing.
	if req.Website != "" {
		logger.Log.Info("Honeypot triggered, dropping submission", "ip", clientIP)
		return nil
	}

	// Captcha only applies when a secret is configured and the client
	// actually submitted a token.
	if uc.verifier != nil && req.CaptchaToken != "" {
		if !uc.verifier.Verify(ctx, req.CaptchaToken) {
			return domain.ErrCaptchaFailed
		}
	}

	identifier := req.WorkEmail + "-" + clientIP
	if !uc.limiter.Allow(identifier) {
		return domain.ErrRateLimited
	}

	return uc.dispatcher.Dispatch(ctx, req)
}

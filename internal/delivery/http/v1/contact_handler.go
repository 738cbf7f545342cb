package v1

import (
	"errors"
	"net/http"

	"go-screening-backend/internal/delivery/http/response"
	"go-screening-backend/internal/domain"
	"go-screening-backend/pkg/apperror"
	"go-screening-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact accepts a contact form submission. Binding collects every
// violated field constraint, not just the first; the usecase then runs the
// honeypot, captcha, rate-limit and dispatch gates.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		details := validation.FormatValidationErrors(err)
		c.Error(apperror.BadRequestWithDetails("Invalid form data", details))
		return
	}

	err := h.contactUC.SubmitContact(c.Request.Context(), &req, c.ClientIP())
	switch {
	case err == nil:
		// Honeypot drops share this payload so bots cannot tell the
		// paths apart.
		response.Success(c, http.StatusOK, "Thank you for contacting us. We will get back to you soon.")
	case errors.Is(err, domain.ErrCaptchaFailed):
		c.Error(apperror.BadRequest("CAPTCHA verification failed"))
	case errors.Is(err, domain.ErrRateLimited):
		c.Error(apperror.TooManyRequests("Too many requests. Please wait before submitting again."))
	case errors.Is(err, domain.ErrNotConfigured):
		c.Error(apperror.Internal("Email service not configured", err))
	default:
		c.Error(apperror.Internal("Failed to process form submission", err))
	}
}

package captcha

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go-screening-backend/pkg/logger"
)

const turnstileVerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

// Verifier checks Cloudflare Turnstile tokens against the siteverify
// endpoint. Any transport or decoding failure is treated as a failed
// verification, never as a server error.
type Verifier struct {
	secretKey string
	endpoint  string
	client    *http.Client
}

type verifyRequest struct {
	Secret   string `json:"secret"`
	Response string `json:"response"`
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// NewVerifier creates a Turnstile verifier. An empty secret key yields a
// nil verifier, which callers treat as "verification not required".
func NewVerifier(secretKey string, timeout time.Duration) *Verifier {
	if secretKey == "" {
		return nil
	}
	return &Verifier{
		secretKey: secretKey,
		endpoint:  turnstileVerifyURL,
		client:    &http.Client{Timeout: timeout},
	}
}

// Verify reports whether token passes the challenge. Fails closed.
func (v *Verifier) Verify(ctx context.Context, token string) bool {
	payload, err := json.Marshal(verifyRequest{Secret: v.secretKey, Response: token})
	if err != nil {
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, bytes.NewReader(payload))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		logger.Log.Warn("Captcha verification request failed", "error", err)
		return false
	}
	defer resp.Body.Close()

	var result verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		logger.Log.Warn("Captcha verification response unreadable", "error", err)
		return false
	}

	if !result.Success {
		logger.Log.Info("Captcha token rejected", "codes", result.ErrorCodes)
	}
	return result.Success
}

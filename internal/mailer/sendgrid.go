package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const sendgridEndpoint = "https://api.sendgrid.com/v3/mail/send"

// sendgridSender delivers mail through the SendGrid v3 API.
type sendgridSender struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

func newSendGridSender(apiKey string, timeout time.Duration) *sendgridSender {
	return &sendgridSender{
		apiKey:   apiKey,
		endpoint: sendgridEndpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (s *sendgridSender) Name() string { return "sendgrid" }

type sgAddress struct {
	Email string `json:"email"`
}

type sgContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sgPayload struct {
	Personalizations []struct {
		To []sgAddress `json:"to"`
	} `json:"personalizations"`
	From    sgAddress   `json:"from"`
	ReplyTo *sgAddress  `json:"reply_to,omitempty"`
	Subject string      `json:"subject"`
	Content []sgContent `json:"content"`
}

func (s *sendgridSender) Send(ctx context.Context, msg *Message) error {
	payload := sgPayload{
		From:    sgAddress{Email: msg.From},
		Subject: msg.Subject,
		// SendGrid requires text/plain before text/html
		Content: []sgContent{
			{Type: "text/plain", Value: msg.TextBody},
			{Type: "text/html", Value: msg.HTMLBody},
		},
	}
	payload.Personalizations = []struct {
		To []sgAddress `json:"to"`
	}{{To: []sgAddress{{Email: msg.To}}}}
	if msg.ReplyTo != "" {
		payload.ReplyTo = &sgAddress{Email: msg.ReplyTo}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("sendgrid marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("sendgrid request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, detail)
	}

	return nil
}

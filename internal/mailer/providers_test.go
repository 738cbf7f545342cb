package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMessage() *Message {
	return &Message{
		From:     "noreply@mybexa.com",
		To:       "info@mybexa.com",
		ReplyTo:  "jo@acme.com",
		Subject:  "New Contact Form Submission from Jo Ann",
		HTMLBody: "<p>hello</p>",
		TextBody: "hello",
	}
}

func TestResendSend(t *testing.T) {
	var got resendPayload
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"email_123"}`))
	}))
	defer srv.Close()

	s := newResendSender("re_123", 5*time.Second)
	s.endpoint = srv.URL

	err := s.Send(context.Background(), sampleMessage())
	require.NoError(t, err)
	assert.Equal(t, "Bearer re_123", auth)
	assert.Equal(t, "noreply@mybexa.com", got.From)
	assert.Equal(t, []string{"info@mybexa.com"}, got.To)
	assert.Equal(t, "jo@acme.com", got.ReplyTo)
	assert.Equal(t, "<p>hello</p>", got.HTML)
}

func TestResendSendRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid from"}`))
	}))
	defer srv.Close()

	s := newResendSender("re_123", 5*time.Second)
	s.endpoint = srv.URL

	err := s.Send(context.Background(), sampleMessage())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestResendSendTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	s := newResendSender("re_123", time.Second)
	s.endpoint = srv.URL

	assert.Error(t, s.Send(context.Background(), sampleMessage()))
}

func TestSendGridSend(t *testing.T) {
	var got sgPayload
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	s := newSendGridSender("SG.123", 5*time.Second)
	s.endpoint = srv.URL

	err := s.Send(context.Background(), sampleMessage())
	require.NoError(t, err)
	assert.Equal(t, "Bearer SG.123", auth)
	require.Len(t, got.Personalizations, 1)
	require.Len(t, got.Personalizations[0].To, 1)
	assert.Equal(t, "info@mybexa.com", got.Personalizations[0].To[0].Email)
	require.Len(t, got.Content, 2)
	assert.Equal(t, "text/plain", got.Content[0].Type)
	assert.Equal(t, "text/html", got.Content[1].Type)
	require.NotNil(t, got.ReplyTo)
	assert.Equal(t, "jo@acme.com", got.ReplyTo.Email)
}

func TestSendGridSendRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errors":[{"message":"bad api key"}]}`))
	}))
	defer srv.Close()

	s := newSendGridSender("SG.bad", 5*time.Second)
	s.endpoint = srv.URL

	err := s.Send(context.Background(), sampleMessage())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

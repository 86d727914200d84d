package formspree

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VANSHIKA-2727/portfolio/internal/contact"
)

var fields = contact.Fields{
	Name:    "Ada",
	Email:   "ada@example.com",
	Subject: "Hi",
	Message: "Hello",
}

func serve(t *testing.T, status int, body string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/f/xldwqned", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		var got contact.Fields
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, fields, got)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL+"/f/", "xldwqned", 5*time.Second)
}

func TestSubmitAccepted(t *testing.T) {
	c := serve(t, http.StatusOK, `{"next":"/thanks","ok":true}`)

	out, err := c.Submit(context.Background(), fields)
	require.NoError(t, err)
	assert.True(t, out.Accepted)
}

func TestSubmitFieldErrors(t *testing.T) {
	c := serve(t, http.StatusUnprocessableEntity, `{
		"error": "Validation errors",
		"errors": [
			{"code": "TYPE_EMAIL", "field": "email", "message": "Invalid email"},
			{"code": "REQUIRED_FIELD_EMPTY", "field": "message", "message": "is required"},
			{"code": "FORM_NOT_FOUND", "message": "Form not found"}
		]
	}`)

	out, err := c.Submit(context.Background(), fields)
	require.NoError(t, err)
	assert.False(t, out.Accepted)
	assert.Equal(t, contact.FieldErrors{
		"email":              {"Invalid email"},
		"message":            {"is required"},
		contact.FormErrorKey: {"Form not found"},
	}, out.Errors)
}

func TestSubmitTopLevelErrorOnly(t *testing.T) {
	c := serve(t, http.StatusBadRequest, `{"error":"Form is disabled"}`)

	out, err := c.Submit(context.Background(), fields)
	require.NoError(t, err)
	assert.Equal(t, []string{"Form is disabled"}, out.Errors[contact.FormErrorKey])
}

func TestSubmitTransportErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusBadGateway, `{"error":"upstream"}`},
		{"html error page", http.StatusForbidden, `<html>nope</html>`},
		{"no details", http.StatusBadRequest, `{}`},
		{"oversized", http.StatusBadRequest, `{"error":"` + strings.Repeat("x", int(MaxResponseBody)) + `"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := serve(t, tt.status, tt.body)
			_, err := c.Submit(context.Background(), fields)
			assert.ErrorIs(t, err, ErrTransport)
		})
	}
}

func TestSubmitUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(url, "xldwqned", time.Second)
	_, err := c.Submit(context.Background(), fields)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestSubmitTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	c := New(srv.URL, "xldwqned", 50*time.Millisecond)
	_, err := c.Submit(context.Background(), fields)
	assert.ErrorIs(t, err, ErrTransport)
}

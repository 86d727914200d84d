// Package formspree submits contact form fields to a hosted Formspree form.
package formspree

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/VANSHIKA-2727/portfolio/internal/contact"
)

// MaxResponseBody caps how much of a reply is read (1 MiB).
const MaxResponseBody int64 = 1 << 20

// ErrTransport wraps every failure that is not a verdict on the fields.
var ErrTransport = errors.New("formspree: transport error")

// Client posts to {Endpoint}/{FormID}.
type Client struct {
	Endpoint   string
	FormID     string
	HTTPClient *http.Client
}

// New returns a client with its own HTTP client bounded by timeout.
func New(endpoint, formID string, timeout time.Duration) *Client {
	return &Client{
		Endpoint:   strings.TrimRight(endpoint, "/"),
		FormID:     formID,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

type apiError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiResponse struct {
	OK     bool       `json:"ok"`
	Error  string     `json:"error"`
	Errors []apiError `json:"errors"`
}

// Submit implements contact.Submitter.
func (c *Client) Submit(ctx context.Context, f contact.Fields) (contact.Outcome, error) {
	body, err := json.Marshal(f)
	if err != nil {
		return contact.Outcome{}, fmt.Errorf("%w: encode: %v", ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint+"/"+c.FormID, bytes.NewReader(body))
	if err != nil {
		return contact.Outcome{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return contact.Outcome{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := readLimited(resp.Body, MaxResponseBody)
	if err != nil {
		return contact.Outcome{}, fmt.Errorf("%w: read response: %v", ErrTransport, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return contact.Outcome{Accepted: true}, nil
	case resp.StatusCode >= 500:
		return contact.Outcome{}, fmt.Errorf("%w: status %d", ErrTransport, resp.StatusCode)
	}

	var r apiResponse
	if err := json.Unmarshal(data, &r); err != nil {
		return contact.Outcome{}, fmt.Errorf("%w: status %d with unreadable body: %v", ErrTransport, resp.StatusCode, err)
	}
	errs := contact.FieldErrors{}
	for _, e := range r.Errors {
		msg := e.Message
		if msg == "" {
			msg = e.Code
		}
		errs.Add(e.Field, msg)
	}
	if len(errs) == 0 && r.Error != "" {
		errs.Add(contact.FormErrorKey, r.Error)
	}
	if len(errs) == 0 {
		return contact.Outcome{}, fmt.Errorf("%w: status %d without error details", ErrTransport, resp.StatusCode)
	}
	return contact.Outcome{Errors: errs}, nil
}

func readLimited(r io.Reader, maxBytes int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("response exceeds %d bytes", maxBytes)
	}
	return data, nil
}

package contact

import (
	"fmt"
	"strings"
)

// Field names as they appear in the form and in endpoint error reports.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// FormErrorKey collects errors that are not tied to a single field.
const FormErrorKey = ""

// Fields is one set of submitted values.
type Fields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Normalize trims surrounding whitespace. The values are forwarded as plain
// text, so nothing else is touched.
func (f Fields) Normalize() Fields {
	return Fields{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Subject: strings.TrimSpace(f.Subject),
		Message: strings.TrimSpace(f.Message),
	}
}

// IsField reports whether name is one of the form's inputs.
func IsField(name string) bool {
	switch name {
	case FieldName, FieldEmail, FieldSubject, FieldMessage:
		return true
	}
	return false
}

// Missing lists the required fields that are empty, in form order.
func (f Fields) Missing() []string {
	var out []string
	for _, kv := range []struct{ name, value string }{
		{FieldName, f.Name},
		{FieldEmail, f.Email},
		{FieldSubject, f.Subject},
		{FieldMessage, f.Message},
	} {
		if strings.TrimSpace(kv.value) == "" {
			out = append(out, kv.name)
		}
	}
	return out
}

// FieldErrors maps a field name to the messages reported against it.
type FieldErrors map[string][]string

func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func (e FieldErrors) clone() FieldErrors {
	if len(e) == 0 {
		return nil
	}
	out := make(FieldErrors, len(e))
	for k, v := range e {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// MissingFieldsError is returned when a required field is blank. Nothing is
// sent in that case.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("contact: missing required fields: %s", strings.Join(e.Fields, ", "))
}

// FieldErrors renders the error in the same shape the endpoint uses.
func (e *MissingFieldsError) FieldErrors() FieldErrors {
	out := make(FieldErrors, len(e.Fields))
	for _, f := range e.Fields {
		out.Add(f, RequiredMessage)
	}
	return out
}

// Package contact drives the lifecycle of a contact form submission: it hands
// the fields to an external Submitter and maps the answer onto a small state
// machine the page renders from.
package contact

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
)

const (
	// Acknowledgment replaces the form once the message is accepted.
	Acknowledgment = "✅ Thanks for reaching out! I’ll get back to you soon."
	// GenericFailure is shown when the form service could not be reached.
	GenericFailure = "Sorry, there was an error sending your message. Please try again later."
	// RequiredMessage is reported for a blank required field.
	RequiredMessage = "is required"
)

var (
	ErrInFlight    = errors.New("contact: submission already in progress")
	ErrAlreadySent = errors.New("contact: message already sent")
)

// State is the position of a form in its lifecycle.
type State int

const (
	Idle State = iota
	Submitting
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Outcome is the endpoint's answer to a submission that reached it.
type Outcome struct {
	Accepted bool
	Errors   FieldErrors
}

// Submitter forwards fields to the hosted form service. A non-nil error means
// the service could not be reached or gave no usable answer.
type Submitter interface {
	Submit(ctx context.Context, f Fields) (Outcome, error)
}

// Snapshot is a copy of the controller state safe to hand to a renderer.
type Snapshot struct {
	State  State
	Errors FieldErrors
	Values Fields
}

// CanSubmit reports whether the submit control should be enabled.
func (s Snapshot) CanSubmit() bool {
	return s.State == Idle || s.State == Failed
}

// Sent reports whether the message was accepted.
func (s Snapshot) Sent() bool { return s.State == Succeeded }

// InFlight reports whether a submission is outstanding.
func (s Snapshot) InFlight() bool { return s.State == Submitting }

// FieldErrors returns the messages reported against field.
func (s Snapshot) FieldErrors(field string) []string {
	return s.Errors[field]
}

// FormErrors returns the messages that are not tied to one of the form's
// inputs. Errors the endpoint reports against other fields are folded in,
// prefixed with the field name, so they are still shown.
func (s Snapshot) FormErrors() []string {
	out := slices.Clone(s.Errors[FormErrorKey])
	for _, field := range slices.Sorted(maps.Keys(s.Errors)) {
		if field == FormErrorKey || IsField(field) {
			continue
		}
		for _, msg := range s.Errors[field] {
			out = append(out, field+" "+msg)
		}
	}
	return out
}

// Controller owns one form instance.
type Controller struct {
	submitter Submitter

	mu     sync.Mutex
	state  State
	errs   FieldErrors
	values Fields
}

func NewController(s Submitter) *Controller {
	return &Controller{submitter: s}
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{State: c.state, Errors: c.errs.clone(), Values: c.values}
}

// Submit sends f unless a submission is already running or has succeeded.
// On a transport failure the form moves to Failed with GenericFailure and the
// underlying error is returned alongside the snapshot.
func (c *Controller) Submit(ctx context.Context, f Fields) (Snapshot, error) {
	f = f.Normalize()

	c.mu.Lock()
	switch c.state {
	case Submitting:
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, ErrInFlight
	case Succeeded:
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, ErrAlreadySent
	}
	if missing := f.Missing(); len(missing) > 0 {
		c.values = f
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, &MissingFieldsError{Fields: missing}
	}
	c.state = Submitting
	c.errs = nil
	c.values = f
	c.mu.Unlock()

	out, err := c.submitter.Submit(ctx, f)

	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case err != nil:
		c.state = Failed
		c.errs = FieldErrors{FormErrorKey: {GenericFailure}}
		return c.snapshotLocked(), fmt.Errorf("submit contact form: %w", err)
	case out.Accepted:
		c.state = Succeeded
		c.values = Fields{}
	default:
		c.state = Failed
		c.errs = out.Errors.clone()
		if len(c.errs) == 0 {
			c.errs = FieldErrors{FormErrorKey: {GenericFailure}}
		}
	}
	return c.snapshotLocked(), nil
}

package contact

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeSubmitter struct {
	calls   atomic.Int32
	outcome Outcome
	err     error
	gate    chan struct{} // when set, Submit blocks until closed
	entered chan struct{}
}

func (f *fakeSubmitter) Submit(ctx context.Context, _ Fields) (Outcome, error) {
	f.calls.Add(1)
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
	return f.outcome, f.err
}

func validFields() Fields {
	return Fields{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Project inquiry",
		Message: "Hello there",
	}
}

func TestSubmitAccepted(t *testing.T) {
	sub := &fakeSubmitter{outcome: Outcome{Accepted: true}}
	c := NewController(sub)
	assert.Equal(t, Idle, c.Snapshot().State)

	snap, err := c.Submit(context.Background(), validFields())
	require.NoError(t, err)
	assert.Equal(t, Succeeded, snap.State)
	assert.False(t, snap.CanSubmit())
	assert.Equal(t, int32(1), sub.calls.Load())

	// terminal: nothing more goes out
	snap, err = c.Submit(context.Background(), validFields())
	assert.ErrorIs(t, err, ErrAlreadySent)
	assert.Equal(t, Succeeded, snap.State)
	assert.Equal(t, int32(1), sub.calls.Load())
}

func TestSubmitRejectedThenRetry(t *testing.T) {
	sub := &fakeSubmitter{outcome: Outcome{Errors: FieldErrors{FieldEmail: {"Invalid email"}}}}
	c := NewController(sub)

	f := validFields()
	f.Email = "ada@"
	snap, err := c.Submit(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, Failed, snap.State)
	assert.True(t, snap.CanSubmit())
	assert.Equal(t, []string{"Invalid email"}, snap.FieldErrors(FieldEmail))
	assert.Equal(t, "ada@", snap.Values.Email)

	sub.outcome = Outcome{Accepted: true}
	sub.gate = make(chan struct{})
	sub.entered = make(chan struct{}, 1)

	done := make(chan Snapshot)
	go func() {
		s, _ := c.Submit(context.Background(), validFields())
		done <- s
	}()
	<-sub.entered

	// errors are cleared as soon as the new submission starts
	mid := c.Snapshot()
	assert.Equal(t, Submitting, mid.State)
	assert.Empty(t, mid.Errors)

	close(sub.gate)
	assert.Equal(t, Succeeded, (<-done).State)
}

func TestSubmitTransportFailure(t *testing.T) {
	netErr := errors.New("dial tcp: connection refused")
	c := NewController(&fakeSubmitter{err: netErr})

	snap, err := c.Submit(context.Background(), validFields())
	assert.ErrorIs(t, err, netErr)
	assert.Equal(t, Failed, snap.State)
	assert.Equal(t, []string{GenericFailure}, snap.FormErrors())
	assert.True(t, snap.CanSubmit())
}

func TestSubmitRejectedWithoutDetails(t *testing.T) {
	c := NewController(&fakeSubmitter{outcome: Outcome{}})

	snap, err := c.Submit(context.Background(), validFields())
	require.NoError(t, err)
	assert.Equal(t, Failed, snap.State)
	assert.Equal(t, []string{GenericFailure}, snap.FormErrors())
}

func TestSubmitMissingFieldsSendsNothing(t *testing.T) {
	sub := &fakeSubmitter{outcome: Outcome{Accepted: true}}
	c := NewController(sub)

	f := validFields()
	f.Subject = "   "
	f.Message = ""
	snap, err := c.Submit(context.Background(), f)

	var missing *MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{FieldSubject, FieldMessage}, missing.Fields)
	assert.Equal(t, []string{RequiredMessage}, missing.FieldErrors()[FieldMessage])
	assert.Equal(t, Idle, snap.State)
	assert.Zero(t, sub.calls.Load())
}

func TestReentrancyGuard(t *testing.T) {
	sub := &fakeSubmitter{
		outcome: Outcome{Accepted: true},
		gate:    make(chan struct{}),
		entered: make(chan struct{}, 1),
	}
	c := NewController(sub)

	first := make(chan error)
	go func() {
		_, err := c.Submit(context.Background(), validFields())
		first <- err
	}()
	<-sub.entered

	var wg sync.WaitGroup
	var rejected atomic.Int32
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			snap, err := c.Submit(context.Background(), validFields())
			if errors.Is(err, ErrInFlight) && snap.State == Submitting {
				rejected.Add(1)
			}
		}()
	}
	wg.Wait()

	close(sub.gate)
	require.NoError(t, <-first)
	assert.Equal(t, int32(10), rejected.Load())
	assert.Equal(t, int32(1), sub.calls.Load())
	assert.Equal(t, Succeeded, c.Snapshot().State)
}

func TestNormalizeOnlyTrims(t *testing.T) {
	f := Fields{
		Name:    "  Ada <b>Lovelace</b> ",
		Email:   "ada@example.com\n",
		Subject: "Tom & Jerry",
		Message: "if a<b and c>d then swap",
	}.Normalize()

	assert.Equal(t, "Ada <b>Lovelace</b>", f.Name)
	assert.Equal(t, "ada@example.com", f.Email)
	assert.Equal(t, "Tom & Jerry", f.Subject)
	assert.Equal(t, "if a<b and c>d then swap", f.Message)

	markupOnly := Fields{Name: "Ada", Email: "a@b.c", Subject: "s", Message: "<br>"}.Normalize()
	assert.Empty(t, markupOnly.Missing())
}

func TestFormErrorsFoldsUnknownFields(t *testing.T) {
	snap := Snapshot{Errors: FieldErrors{
		FormErrorKey: {"Form is disabled"},
		"email":      {"Invalid email"},
		"_replyto":   {"must be an email"},
		"_gotcha":    {"spam"},
	}}

	assert.Equal(t, []string{
		"Form is disabled",
		"_gotcha spam",
		"_replyto must be an email",
	}, snap.FormErrors())
	assert.Equal(t, []string{"Invalid email"}, snap.FieldErrors("email"))
	assert.Empty(t, Snapshot{}.FormErrors())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "submitting", Submitting.String())
	assert.Equal(t, "State(9)", State(9).String())
}

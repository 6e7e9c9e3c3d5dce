package dashboard

import (
	"context"
	"errors"
	"sync"
)

// State is a view's lifecycle position
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateLoaded  State = "loaded"
	StateErrored State = "errored"
)

// ErrSuperseded means a newer load started while this one was in flight;
// its result was discarded and the view was not touched.
var ErrSuperseded = errors.New("load superseded by a newer request")

// fallbackErrorMessage is shown when the server gives no usable message
const fallbackErrorMessage = "Something went wrong. Please try again."

// Notifier surfaces transient outcome messages to the user
type Notifier interface {
	Success(message string)
	Error(message string)
}

// NopNotifier discards all notifications
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}

// Controller owns one view's record set and drives its lifecycle:
// idle until the first Load, loading while a fetch is in flight, then
// loaded or errored. Mutations go through Mutate, which refetches the
// whole set on success rather than patching local state.
//
// Each Load bumps a generation counter and captures its value; when the
// fetch returns, a result whose captured generation no longer matches is
// dropped. This keeps a slow earlier response from overwriting a newer one.
type Controller[T any] struct {
	mu         sync.Mutex
	generation uint64
	state      State
	data       T
	err        error

	fetch    func(ctx context.Context) (T, error)
	notifier Notifier
}

// NewController creates a controller in the idle state
func NewController[T any](fetch func(ctx context.Context) (T, error), notifier Notifier) *Controller[T] {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Controller[T]{
		state:    StateIdle,
		fetch:    fetch,
		notifier: notifier,
	}
}

// Load fetches the record set and replaces the view's data.
// A concurrent newer Load wins: this call then returns ErrSuperseded
// and leaves all state alone.
func (c *Controller[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.state = StateLoading
	c.mu.Unlock()

	data, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return ErrSuperseded
	}
	if err != nil {
		c.state = StateErrored
		c.err = err
		c.notifier.Error(userMessage(err))
		return err
	}
	c.data = data
	c.err = nil
	c.state = StateLoaded
	return nil
}

// Mutate runs a write operation and, on success, refetches the full record
// set so the view reflects the server's state. The operation's error is
// surfaced via the notifier; the previously loaded data is kept.
func (c *Controller[T]) Mutate(ctx context.Context, successMessage string, op func(ctx context.Context) error) error {
	if err := op(ctx); err != nil {
		c.notifier.Error(userMessage(err))
		return err
	}
	if successMessage != "" {
		c.notifier.Success(successMessage)
	}
	return c.Refresh(ctx)
}

// Refresh refetches the record set. Mutations funnel through it, and other
// components holding the controller can trigger it directly.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	return c.Load(ctx)
}

// State returns the current lifecycle state
func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Data returns the last loaded record set
func (c *Controller[T]) Data() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data
}

// Err returns the error from the last failed load, if any
func (c *Controller[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func userMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr.Message
	}
	return fallbackErrorMessage
}

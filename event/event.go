package event

import (
	"context"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Event carries a body of a specific type to the listeners registered for that type.
type Event interface {

	// When return the time of the event.
	When() time.Time

	// ID return the id of the event.
	ID() string

	// Body return the body of the event.
	Body() any

	// Type return the body's reflect.Type of the event.
	Type() reflect.Type

	// WithContext returns a shallow copy of e with its context changed to ctx.
	// The provided ctx must be non-nil.
	WithContext(ctx context.Context) Event

	// Context returns the context of the event. To change the context, use WithContext.
	Context() context.Context
}

type event struct {
	body       any
	id         string
	occurredOn time.Time
	ctx        context.Context
}

func (e *event) ID() string {
	return e.id
}

func (e *event) When() time.Time {
	return e.occurredOn
}

func (e *event) Body() any {
	return e.body
}

func (e *event) Type() reflect.Type {
	return reflect.TypeOf(e.body)
}

func (e *event) WithContext(ctx context.Context) Event {
	if ctx == nil {
		panic("nil context")
	}
	copied := new(event)
	*copied = *e
	copied.ctx = ctx
	return copied
}

func (e *event) Context() context.Context {
	if e.ctx != nil {
		return e.ctx
	}
	return context.Background()
}

// New wraps body in an Event with a random id.
func New(ctx context.Context, body any) Event {
	return &event{body: body, id: uuid.NewString(), occurredOn: time.Now(), ctx: ctx}
}

package event

import (
	"errors"
	"reflect"
	"sync"

	"github.com/go-leo/gox/slicex"
)

// Bus dispatches events to listeners keyed by the type of the event body.
type Bus interface {
	// On adds a Listener for bodies of the same type as body.
	On(body any, lis Listener) error

	// Prepend adds the Listener to the beginning of the listeners.
	Prepend(body any, lis Listener) error

	// Once adds a Listener that is removed after its first call.
	Once(body any, lis Listener) error

	// Emit synchronously calls each of the listeners registered for the event body type,
	// in the order they were registered, and joins their errors.
	Emit(e Event) error

	// Off removes the specified Listener.
	Off(body any, lis Listener) error

	// OffAll removes all listeners for the body type.
	OffAll(body any) error

	// Close rejects any further call.
	Close() error
}

var _ Bus = (*bus)(nil)

type bus struct {
	mu        sync.Mutex
	listeners map[reflect.Type][]Listener
	closed    bool
}

// NewBus returns an empty synchronous Bus.
func NewBus() Bus {
	return &bus{listeners: make(map[reflect.Type][]Listener)}
}

func (b *bus) On(body any, lis Listener) error {
	return b.add(body, lis, func(listeners []Listener, lis Listener) []Listener {
		return append(listeners, lis)
	})
}

func (b *bus) Prepend(body any, lis Listener) error {
	return b.add(body, lis, func(listeners []Listener, lis Listener) []Listener {
		return slicex.Insert(listeners, 0, lis)
	})
}

func (b *bus) Once(body any, lis Listener) error {
	if err := checkListener(lis); err != nil {
		return err
	}
	return b.On(body, &onceListener{Listener: lis})
}

func (b *bus) Emit(e Event) error {
	if e == nil || e.Body() == nil {
		return ErrEventNil
	}
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrBusClosed
	}
	eventType := e.Type()
	listeners := b.listeners[eventType]
	remaining := make([]Listener, 0, len(listeners))
	for _, lis := range listeners {
		if _, ok := lis.(*onceListener); !ok {
			remaining = append(remaining, lis)
		}
	}
	b.listeners[eventType] = remaining
	b.mu.Unlock()

	// listeners run unlocked so they may subscribe or emit themselves
	errs := make([]error, 0, len(listeners))
	for _, lis := range listeners {
		errs = append(errs, lis.Handle(e))
	}
	return errors.Join(errs...)
}

func (b *bus) Off(body any, lis Listener) error {
	if err := checkListener(lis); err != nil {
		return err
	}
	eventType, err := typeOf(body)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrBusClosed
	}
	listeners := b.listeners[eventType]
	indexes := slicex.IndexesFunc(listeners, func(l Listener) bool {
		if once, ok := l.(*onceListener); ok {
			return once.Listener == lis
		}
		return l == lis
	})
	if len(indexes) > 0 {
		b.listeners[eventType] = slicex.DeleteAll(listeners, indexes...)
	}
	return nil
}

func (b *bus) OffAll(body any) error {
	eventType, err := typeOf(body)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrBusClosed
	}
	delete(b.listeners, eventType)
	return nil
}

func (b *bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrBusClosed
	}
	b.closed = true
	b.listeners = nil
	return nil
}

func (b *bus) add(body any, lis Listener, pend func([]Listener, Listener) []Listener) error {
	if err := checkListener(lis); err != nil {
		return err
	}
	eventType, err := typeOf(body)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrBusClosed
	}
	b.listeners[eventType] = pend(b.listeners[eventType], lis)
	return nil
}

func typeOf(body any) (reflect.Type, error) {
	if body == nil {
		return nil, ErrEventNil
	}
	return reflect.TypeOf(body), nil
}

func checkListener(lis Listener) error {
	if lis == nil {
		return ErrListenerNil
	}
	if !reflect.TypeOf(lis).Comparable() {
		return ErrListenerIncomparable
	}
	return nil
}

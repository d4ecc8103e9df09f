package event

import "sync"

// Listener is Event listener interface.
type Listener interface {
	// Handle handles Event logic.
	Handle(e Event) error
}

type funcListener struct {
	fn func(e Event) error
}

func (l *funcListener) Handle(e Event) error {
	return l.fn(e)
}

// Func adapts fn to a Listener. Each call returns a distinct listener, keep it to call Off later.
func Func(fn func(e Event) error) Listener {
	return &funcListener{fn: fn}
}

type onceListener struct {
	Listener Listener
	Once     sync.Once
}

func (l *onceListener) Handle(e Event) error {
	var err error
	l.Once.Do(func() {
		err = l.Listener.Handle(e)
	})
	return err
}

package event

import "errors"

var (
	// ErrEventNil event or its body is nil
	ErrEventNil = errors.New("event is nil")

	// ErrListenerNil listener is nil
	ErrListenerNil = errors.New("listener is nil")

	// ErrListenerIncomparable listener can not be compared, so it could never be removed
	ErrListenerIncomparable = errors.New("listener is incomparable")

	// ErrBusClosed bus is closed
	ErrBusClosed = errors.New("bus is closed")
)

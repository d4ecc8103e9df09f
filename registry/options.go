package registry

import (
	"io"

	"github.com/go-leo/bestiary/event"
	"github.com/go-leo/bestiary/factory"
	"github.com/go-leo/bestiary/logger"
)

// DefaultRepetitions is how many times each factory repeats its species triplet.
const DefaultRepetitions = 10

type option struct {
	Repetitions int
	Rand        Rand
	Out         io.Writer
	Logger      logger.Logger
	Bus         event.Bus
	Middlewares []factory.Middleware
}

type Option func(*option)

// Repetitions sets the count passed to every factory on Populate.
func Repetitions(n int) Option {
	return func(o *option) {
		o.Repetitions = n
	}
}

// WithRand sets the source used by RandomCreature.
func WithRand(r Rand) Option {
	return func(o *option) {
		o.Rand = r
	}
}

// Output sets where populated creatures write their actions.
func Output(w io.Writer) Option {
	return func(o *option) {
		o.Out = w
	}
}

func WithLogger(l logger.Logger) Option {
	return func(o *option) {
		o.Logger = l
	}
}

// WithBus publishes a Populated event on bus after every variant batch.
func WithBus(bus event.Bus) Option {
	return func(o *option) {
		o.Bus = bus
	}
}

// WithMiddleware wraps every factory's Create.
func WithMiddleware(mdws ...factory.Middleware) Option {
	return func(o *option) {
		o.Middlewares = append(o.Middlewares, mdws...)
	}
}

func newOption(opts ...Option) *option {
	o := &option{Repetitions: DefaultRepetitions}
	for _, opt := range opts {
		opt(o)
	}
	if o.Rand == nil {
		o.Rand = globalRand
	}
	if o.Logger == nil {
		o.Logger = logger.NopLogger{}
	}
	return o
}

package factory

import (
	"io"
	"os"
)

type option struct {
	Out         io.Writer
	Middlewares []Middleware
}

type Option func(*option)

// Output sets where the produced creatures write their actions. Defaults to os.Stdout.
func Output(w io.Writer) Option {
	return func(o *option) {
		o.Out = w
	}
}

// Middlewares wraps Create with the given middlewares, first one outermost.
func Middlewares(mdws ...Middleware) Option {
	return func(o *option) {
		o.Middlewares = append(o.Middlewares, mdws...)
	}
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	return o
}

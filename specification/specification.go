package specification

import "context"

// Specification is a predicate over T that composes with other specifications.
type Specification[T any] interface {

	// IsSatisfiedBy check if t is satisfied by the specification.
	IsSatisfiedBy(ctx context.Context, t T) bool

	// And create a new specification that is the AND operation of the current specification and
	// another specification.
	And(another Specification[T]) Specification[T]

	// Or create a new specification that is the OR operation of the current specification and
	// another specification.
	Or(another Specification[T]) Specification[T]

	// Not create a new specification that is the NOT operation of the current specification.
	Not() Specification[T]
}

// New returns a Specification backed by predicate.
func New[T any](predicate func(ctx context.Context, t T) bool) Specification[T] {
	return composite[T]{predicate: predicate}
}

// And is satisfied when both left and right are.
func And[T any](left Specification[T], right Specification[T]) Specification[T] {
	return New(func(ctx context.Context, t T) bool {
		return left.IsSatisfiedBy(ctx, t) && right.IsSatisfiedBy(ctx, t)
	})
}

// Or is satisfied when left or right is.
func Or[T any](left Specification[T], right Specification[T]) Specification[T] {
	return New(func(ctx context.Context, t T) bool {
		return left.IsSatisfiedBy(ctx, t) || right.IsSatisfiedBy(ctx, t)
	})
}

// Not is the inverse of spec.
func Not[T any](spec Specification[T]) Specification[T] {
	return New(func(ctx context.Context, t T) bool {
		return !spec.IsSatisfiedBy(ctx, t)
	})
}

// Conjunction is satisfied when every spec is. An empty conjunction is always satisfied.
func Conjunction[T any](specs ...Specification[T]) Specification[T] {
	return New(func(ctx context.Context, t T) bool {
		for _, spec := range specs {
			if !spec.IsSatisfiedBy(ctx, t) {
				return false
			}
		}
		return true
	})
}

// Disjunction is satisfied when any spec is. An empty disjunction is never satisfied.
func Disjunction[T any](specs ...Specification[T]) Specification[T] {
	return New(func(ctx context.Context, t T) bool {
		for _, spec := range specs {
			if spec.IsSatisfiedBy(ctx, t) {
				return true
			}
		}
		return false
	})
}

// Select returns the elements of items satisfying spec, in order.
func Select[T any](ctx context.Context, spec Specification[T], items []T) []T {
	var selected []T
	for _, item := range items {
		if spec.IsSatisfiedBy(ctx, item) {
			selected = append(selected, item)
		}
	}
	return selected
}

type composite[T any] struct {
	predicate func(ctx context.Context, t T) bool
}

func (spec composite[T]) IsSatisfiedBy(ctx context.Context, t T) bool {
	return spec.predicate(ctx, t)
}

func (spec composite[T]) And(another Specification[T]) Specification[T] {
	return And[T](spec, another)
}

func (spec composite[T]) Or(another Specification[T]) Specification[T] {
	return Or[T](spec, another)
}

func (spec composite[T]) Not() Specification[T] {
	return Not[T](spec)
}

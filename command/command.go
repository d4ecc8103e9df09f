package command

import (
	"context"
	"errors"

	"github.com/go-leo/bestiary/creature"
)

var (
	ErrNotReceiver = errors.New("command has no creature")
	ErrNotCommand  = errors.New("nil command in macro")
)

// A Command encapsulates a unit of processing work to be performed.
type Command interface {
	// Execute a unit of processing work to be performed
	Execute(ctx context.Context) (context.Context, error)
}

// The CommandFunc type is an adapter to allow the use of ordinary functions as Command.
// If f is a function with the appropriate signature, CommandFunc(f) is a Command that calls f.
type CommandFunc func(ctx context.Context) (context.Context, error)

// Execute calls f(ctx).
func (f CommandFunc) Execute(ctx context.Context) (context.Context, error) {
	return f(ctx)
}

// Action is one creature action bound to its receiver.
type Action struct {
	receiver creature.Creature
	verb     string
	do       func(c creature.Creature)
}

// Verb names the action, e.g. "attack".
func (a *Action) Verb() string {
	return a.verb
}

// Receiver returns the creature the action runs on.
func (a *Action) Receiver() creature.Creature {
	return a.receiver
}

func (a *Action) Execute(ctx context.Context) (context.Context, error) {
	if a == nil || a.receiver == nil {
		return ctx, ErrNotReceiver
	}
	if err := ctx.Err(); err != nil {
		return ctx, err
	}
	a.do(a.receiver)
	return ctx, nil
}

func Attack(c creature.Creature) *Action {
	return &Action{receiver: c, verb: "attack", do: creature.Creature.Attack}
}

func TakeDamage(c creature.Creature) *Action {
	return &Action{receiver: c, verb: "take-damage", do: creature.Creature.TakeDamage}
}

func Flee(c creature.Creature) *Action {
	return &Action{receiver: c, verb: "flee", do: creature.Creature.Flee}
}

// Macro runs its commands in order, threading the context returned by each one
// into the next, and stops at the first error.
type Macro []Command

func (m Macro) Execute(ctx context.Context) (context.Context, error) {
	for _, cmd := range m {
		if cmd == nil {
			return ctx, ErrNotCommand
		}
		var err error
		ctx, err = cmd.Execute(ctx)
		if err != nil {
			return ctx, err
		}
	}
	return ctx, nil
}

// Encounter attacks, takes damage and flees, in that order.
func Encounter(c creature.Creature) Macro {
	return Macro{Attack(c), TakeDamage(c), Flee(c)}
}

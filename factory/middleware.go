package factory

import (
	"context"
	"time"

	"github.com/go-leo/bestiary/creature"
	"github.com/go-leo/bestiary/logger"
)

// Request describes one Create call as seen by middlewares.
type Request struct {
	Variant     creature.Variant
	Repetitions int
}

type Invoker func(ctx context.Context, req Request) ([]creature.Creature, error)

type Middleware func(ctx context.Context, req Request, invoker Invoker) ([]creature.Creature, error)

// Chain composes middlewares into one, the first being outermost. It returns nil when mdws is empty.
func Chain(mdws ...Middleware) Middleware {
	switch len(mdws) {
	case 0:
		return nil
	case 1:
		return mdws[0]
	default:
		return func(ctx context.Context, req Request, invoker Invoker) ([]creature.Creature, error) {
			return mdws[0](ctx, req, getInvoker(mdws, 0, invoker))
		}
	}
}

func getInvoker(mdws []Middleware, curr int, finalInvoker Invoker) Invoker {
	if curr == len(mdws)-1 {
		return finalInvoker
	}
	return func(ctx context.Context, req Request) ([]creature.Creature, error) {
		return mdws[curr+1](ctx, req, getInvoker(mdws, curr+1, finalInvoker))
	}
}

// Logging logs every batch at debug level and failures at error level.
func Logging(l logger.Logger) Middleware {
	return func(ctx context.Context, req Request, invoker Invoker) ([]creature.Creature, error) {
		start := time.Now()
		creatures, err := invoker(ctx, req)
		if err != nil {
			l.Errorf("create %s x%d: %v", req.Variant, req.Repetitions, err)
			return creatures, err
		}
		l.Debugf("created %d %s creatures in %s", len(creatures), req.Variant, time.Since(start))
		return creatures, nil
	}
}

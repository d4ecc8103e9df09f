package registry

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/exp/slices"

	"github.com/go-leo/bestiary/creature"
	"github.com/go-leo/bestiary/event"
	"github.com/go-leo/bestiary/factory"
	"github.com/go-leo/bestiary/specification"
)

// Populated is published after one factory batch has been appended.
type Populated struct {
	Variant creature.Variant
	// Count is the size of the batch.
	Count int
	// Total is the registry size right after the batch.
	Total int
}

// Map is the client of the creature factories. It owns an ordered, append-only
// collection filled by Populate and sampled by RandomCreature.
type Map struct {
	mu        sync.RWMutex
	creatures []creature.Creature
	factories []factory.CreatureFactory
	options   *option
}

// New returns an empty Map bound to one factory per variant, in population order.
func New(opts ...Option) (*Map, error) {
	o := newOption(opts...)
	if o.Repetitions < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRepetitions, o.Repetitions)
	}
	factoryOpts := []factory.Option{factory.Middlewares(o.Middlewares...)}
	if o.Out != nil {
		factoryOpts = append(factoryOpts, factory.Output(o.Out))
	}
	m := &Map{options: o}
	for _, v := range creature.Variants() {
		f, err := factory.New(v, factoryOpts...)
		if err != nil {
			return nil, err
		}
		m.factories = append(m.factories, f)
	}
	return m, nil
}

// Populate asks every factory, fire then water then earth then air, for its batch and
// appends the batches in that order. A second call appends another full round.
// If any factory fails nothing is appended. Errors returned by event listeners are
// reported after the creatures have been appended.
func (m *Map) Populate(ctx context.Context) error {
	batches := make([][]creature.Creature, 0, len(m.factories))
	for _, f := range m.factories {
		batch, err := f.Create(ctx, m.options.Repetitions)
		if err != nil {
			return fmt.Errorf("populate %s: %w", f.Variant(), err)
		}
		batches = append(batches, batch)
	}

	m.mu.Lock()
	added := 0
	events := make([]Populated, 0, len(batches))
	for i, batch := range batches {
		m.creatures = append(m.creatures, batch...)
		added += len(batch)
		events = append(events, Populated{Variant: m.factories[i].Variant(), Count: len(batch), Total: len(m.creatures)})
	}
	total := len(m.creatures)
	m.mu.Unlock()

	m.options.Logger.Infof("populated %d creatures, registry holds %d", added, total)
	return m.publish(ctx, events)
}

func (m *Map) publish(ctx context.Context, events []Populated) error {
	if m.options.Bus == nil {
		return nil
	}
	for _, populated := range events {
		if err := m.options.Bus.Emit(event.New(ctx, populated)); err != nil {
			return fmt.Errorf("publish %s batch: %w", populated.Variant, err)
		}
	}
	return nil
}

// RandomCreature returns a creature of the collection drawn uniformly at random.
func (m *Map) RandomCreature() (creature.Creature, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.creatures) == 0 {
		return nil, ErrEmptyRegistry
	}
	i := m.options.Rand.Intn(len(m.creatures))
	if i < 0 || i >= len(m.creatures) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrRandOutOfRange, i, len(m.creatures))
	}
	c := m.creatures[i]
	m.options.Logger.Debugf("picked %s", c.Name())
	return c, nil
}

// Len returns the number of creatures held.
func (m *Map) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.creatures)
}

// Creatures returns a copy of the collection in population order.
func (m *Map) Creatures() []creature.Creature {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.creatures)
}

// Filter returns the creatures satisfying spec, in population order.
func (m *Map) Filter(ctx context.Context, spec specification.Specification[creature.Creature]) []creature.Creature {
	return specification.Select(ctx, spec, m.Creatures())
}

// OfVariant is satisfied by creatures of variant v.
func OfVariant(v creature.Variant) specification.Specification[creature.Creature] {
	return specification.New(func(_ context.Context, c creature.Creature) bool {
		return c.Variant() == v
	})
}

// Named is satisfied by creatures whose display name is name.
func Named(name string) specification.Specification[creature.Creature] {
	return specification.New(func(_ context.Context, c creature.Creature) bool {
		return c.Name() == name
	})
}

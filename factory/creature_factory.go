package factory

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/go-leo/bestiary/creature"
)

// Factory creates a T from a parameter P.
type Factory[T any, P any] interface {
	Create(ctx context.Context, param P) (T, error)
}

// CreatureFactory produces creatures of one variant. The parameter is the number
// of times the variant's species triplet is repeated, so Create(ctx, n) returns 3*n creatures.
type CreatureFactory interface {
	Factory[[]creature.Creature, int]

	// Variant returns the variant this factory is bound to.
	Variant() creature.Variant
}

// Family is the fixed, ordered triplet of species a variant produces.
type Family [3]creature.Constructor

var families = map[creature.Variant]Family{
	creature.Fire:  {creature.NewBlazeWurm, creature.NewPyroBeast, creature.NewEmberSprite},
	creature.Water: {creature.NewAquazor, creature.NewTidalTantrum, creature.NewMistMage},
	creature.Earth: {creature.NewGolemWyrm, creature.NewTerrakin, creature.NewGroveGuardian},
	creature.Air:   {creature.NewGaleWyvern, creature.NewWindWraith, creature.NewSkySylph},
}

// FamilyOf returns the species triplet declared for v.
func FamilyOf(v creature.Variant) (Family, error) {
	family, ok := families[v]
	if !ok {
		return Family{}, fmt.Errorf("%w: %s", ErrUnknownVariant, v)
	}
	return family, nil
}

type familyFactory struct {
	variant creature.Variant
	family  Family
	out     io.Writer
	invoke  Invoker
}

func (f *familyFactory) Variant() creature.Variant {
	return f.variant
}

func (f *familyFactory) Create(ctx context.Context, n int) ([]creature.Creature, error) {
	return f.invoke(ctx, Request{Variant: f.variant, Repetitions: n})
}

func (f *familyFactory) create(ctx context.Context, req Request) ([]creature.Creature, error) {
	if req.Repetitions < 0 {
		return nil, fmt.Errorf("%w: %s repetitions %d", ErrInvalidArgument, f.variant, req.Repetitions)
	}
	if req.Repetitions > math.MaxInt/len(f.family) {
		return nil, fmt.Errorf("%w: %s repetitions %d overflow the batch size", ErrInvalidArgument, f.variant, req.Repetitions)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	creatures := make([]creature.Creature, 0, len(f.family)*req.Repetitions)
	for i := 0; i < req.Repetitions; i++ {
		for _, construct := range f.family {
			creatures = append(creatures, construct(f.out))
		}
	}
	return creatures, nil
}

// New returns the factory bound to variant v.
func New(v creature.Variant, opts ...Option) (CreatureFactory, error) {
	family, err := FamilyOf(v)
	if err != nil {
		return nil, err
	}
	o := newOption(opts...)
	f := &familyFactory{variant: v, family: family, out: o.Out}
	f.invoke = f.create
	if mdw := Chain(o.Middlewares...); mdw != nil {
		f.invoke = func(ctx context.Context, req Request) ([]creature.Creature, error) {
			return mdw(ctx, req, f.create)
		}
	}
	return f, nil
}

func mustNew(v creature.Variant, opts ...Option) CreatureFactory {
	f, err := New(v, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// FireFactory produces Blaze Wurm, Pyro Beast and Ember Sprite.
func FireFactory(opts ...Option) CreatureFactory {
	return mustNew(creature.Fire, opts...)
}

// WaterFactory produces Aquazor, Tidal Tantrum and Mist Mage.
func WaterFactory(opts ...Option) CreatureFactory {
	return mustNew(creature.Water, opts...)
}

// EarthFactory produces Golem Wyrm, Terrakin and Grove Guardian.
func EarthFactory(opts ...Option) CreatureFactory {
	return mustNew(creature.Earth, opts...)
}

// AirFactory produces Gale Wyvern, Wind Wraith and Sky Sylph.
func AirFactory(opts ...Option) CreatureFactory {
	return mustNew(creature.Air, opts...)
}

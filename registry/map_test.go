package registry

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-leo/bestiary/command"
	"github.com/go-leo/bestiary/creature"
	"github.com/go-leo/bestiary/event"
	"github.com/go-leo/bestiary/factory"
)

func fixed(i int) Rand {
	return RandFunc(func(int) int { return i })
}

func populated(t *testing.T, opts ...Option) *Map {
	t.Helper()
	m, err := New(append([]Option{Output(&bytes.Buffer{})}, opts...)...)
	require.NoError(t, err)
	require.NoError(t, m.Populate(context.Background()))
	return m
}

func TestMap_Populate(t *testing.T) {
	m := populated(t)
	creatures := m.Creatures()
	require.Len(t, creatures, 120)
	assert.Equal(t, 120, m.Len())

	for block, v := range creature.Variants() {
		family := creatures[block*30 : (block+1)*30]
		for _, c := range family {
			assert.Equal(t, v, c.Variant())
		}
	}
	assert.Equal(t, creature.BlazeWurmName, creatures[0].Name())
	assert.Equal(t, creature.PyroBeastName, creatures[1].Name())
	assert.Equal(t, creature.EmberSpriteName, creatures[2].Name())
	assert.Equal(t, creature.BlazeWurmName, creatures[3].Name())
	assert.Equal(t, creature.AquazorName, creatures[30].Name())
	assert.Equal(t, creature.GolemWyrmName, creatures[60].Name())
	assert.Equal(t, creature.GaleWyvernName, creatures[90].Name())
	assert.Equal(t, creature.SkySylphName, creatures[119].Name())
}

func TestMap_PopulateAppends(t *testing.T) {
	m := populated(t, Repetitions(1))
	first := m.Creatures()
	require.NoError(t, m.Populate(context.Background()))
	all := m.Creatures()
	require.Len(t, all, 24)
	assert.Equal(t, first, all[:12])
	assert.Equal(t, creature.BlazeWurmName, all[12].Name())
	assert.NotSame(t, all[0], all[12])
}

func TestMap_PopulateZero(t *testing.T) {
	m := populated(t, Repetitions(0))
	assert.Zero(t, m.Len())
	_, err := m.RandomCreature()
	assert.ErrorIs(t, err, ErrEmptyRegistry)
}

func TestNew_NegativeRepetitions(t *testing.T) {
	m, err := New(Repetitions(-1))
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrInvalidRepetitions)
}

func TestMap_PopulateFailureAppendsNothing(t *testing.T) {
	errBroken := errors.New("broken kiln")
	broken := func(ctx context.Context, req factory.Request, invoker factory.Invoker) ([]creature.Creature, error) {
		if req.Variant == creature.Earth {
			return nil, errBroken
		}
		return invoker(ctx, req)
	}
	m, err := New(Output(&bytes.Buffer{}), WithMiddleware(broken))
	require.NoError(t, err)
	err = m.Populate(context.Background())
	assert.ErrorIs(t, err, errBroken)
	assert.Contains(t, err.Error(), "populate earth")
	assert.Zero(t, m.Len())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Populate(ctx), context.Canceled)
	assert.Zero(t, m.Len())
}

func TestMap_RandomCreature_Empty(t *testing.T) {
	m, err := New()
	require.NoError(t, err)
	c, err := m.RandomCreature()
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrEmptyRegistry)
}

func TestMap_RandomCreature_Member(t *testing.T) {
	m := populated(t, WithRand(rand.New(rand.NewSource(42))))
	creatures := m.Creatures()
	for i := 0; i < 50; i++ {
		c, err := m.RandomCreature()
		require.NoError(t, err)
		assert.Contains(t, creatures, c)
	}
}

func TestMap_RandomCreature_OutOfRange(t *testing.T) {
	for _, i := range []int{-1, 12, 100} {
		m := populated(t, Repetitions(1), WithRand(fixed(i)))
		c, err := m.RandomCreature()
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrRandOutOfRange)
	}
}

func TestMap_RandomCreature_Default(t *testing.T) {
	m := populated(t, Repetitions(1))
	c, err := m.RandomCreature()
	require.NoError(t, err)
	assert.Contains(t, m.Creatures(), c)
}

func TestMap_Encounter(t *testing.T) {
	var out bytes.Buffer
	m, err := New(Output(&out), WithRand(fixed(90)))
	require.NoError(t, err)
	require.NoError(t, m.Populate(context.Background()))
	require.Equal(t, 120, m.Len())

	c, err := m.RandomCreature()
	require.NoError(t, err)
	require.Equal(t, creature.GaleWyvernName, c.Name())
	assert.Same(t, m.Creatures()[90], c)

	_, err = command.Encounter(c).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Gale Wyvern attacking\nGale Wyvern got damage\nGale Wyvern running away\n", out.String())
}

func TestMap_Filter(t *testing.T) {
	m := populated(t)
	ctx := context.Background()
	for _, v := range creature.Variants() {
		assert.Len(t, m.Filter(ctx, OfVariant(v)), 30)
	}
	wyverns := m.Filter(ctx, Named(creature.GaleWyvernName))
	assert.Len(t, wyverns, 10)
	assert.Len(t, m.Filter(ctx, OfVariant(creature.Air).And(Named(creature.BlazeWurmName).Not())), 30)
	assert.Empty(t, m.Filter(ctx, OfVariant(creature.Fire).And(Named(creature.SkySylphName))))
}

func TestMap_Events(t *testing.T) {
	bus := event.NewBus()
	var got []Populated
	require.NoError(t, bus.On(Populated{}, event.Func(func(e event.Event) error {
		got = append(got, e.Body().(Populated))
		return nil
	})))
	populated(t, Repetitions(2), WithBus(bus))
	assert.Equal(t, []Populated{
		{Variant: creature.Fire, Count: 6, Total: 6},
		{Variant: creature.Water, Count: 6, Total: 12},
		{Variant: creature.Earth, Count: 6, Total: 18},
		{Variant: creature.Air, Count: 6, Total: 24},
	}, got)
}

func TestMap_EventListenerError(t *testing.T) {
	bus := event.NewBus()
	errListener := errors.New("listener failed")
	require.NoError(t, bus.On(Populated{}, event.Func(func(event.Event) error { return errListener })))
	m, err := New(Output(&bytes.Buffer{}), WithBus(bus), Repetitions(1))
	require.NoError(t, err)
	assert.ErrorIs(t, m.Populate(context.Background()), errListener)
	assert.Equal(t, 12, m.Len())
}

func TestMap_Census(t *testing.T) {
	m, err := New(Output(&bytes.Buffer{}), Repetitions(2))
	require.NoError(t, err)
	empty, err := m.Census().JSON()
	require.NoError(t, err)
	jsonassert.New(t).Assertf(string(empty), `{
		"total": 0,
		"variants": [
			{"variant": "fire", "count": 0, "species": []},
			{"variant": "water", "count": 0, "species": []},
			{"variant": "earth", "count": 0, "species": []},
			{"variant": "air", "count": 0, "species": []}
		]
	}`)

	require.NoError(t, m.Populate(context.Background()))
	data, err := m.Census().JSON()
	require.NoError(t, err)
	jsonassert.New(t).Assertf(string(data), `{
		"total": 24,
		"variants": [
			{"variant": "fire", "count": 6, "species": [
				{"name": "Blaze Wurm", "count": 2},
				{"name": "Pyro Beast", "count": 2},
				{"name": "Ember Sprite", "count": 2}
			]},
			{"variant": "water", "count": 6, "species": [
				{"name": "Aquazor", "count": 2},
				{"name": "Tidal Tantrum", "count": 2},
				{"name": "Mist Mage", "count": 2}
			]},
			{"variant": "earth", "count": 6, "species": [
				{"name": "Golem Wyrm", "count": 2},
				{"name": "Terrakin", "count": 2},
				{"name": "Grove Guardian", "count": 2}
			]},
			{"variant": "air", "count": 6, "species": [
				{"name": "Gale Wyvern", "count": 2},
				{"name": "Wind Wraith", "count": 2},
				{"name": "Sky Sylph", "count": 2}
			]}
		]
	}`)
}

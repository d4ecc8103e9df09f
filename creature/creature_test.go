package creature

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

type roaringWurm struct{ Base }

func (w roaringWurm) Attack() {
	w.Say("breathing fire")
}

func TestBase_DefaultActions(t *testing.T) {
	var buf bytes.Buffer
	c := NewGaleWyvern(&buf)
	c.Attack()
	c.TakeDamage()
	c.Flee()
	assert.Equal(t, "Gale Wyvern attacking\nGale Wyvern got damage\nGale Wyvern running away\n", buf.String())
	assert.Equal(t, GaleWyvernName, c.Name())
	assert.Equal(t, Air, c.Variant())
}

func TestNewBase_EmptyName(t *testing.T) {
	assert.Panics(t, func() {
		NewBase("", Fire, nil)
	})
}

func TestSpecies_Override(t *testing.T) {
	var buf bytes.Buffer
	var c Creature = roaringWurm{Base: NewBase(BlazeWurmName, Fire, &buf)}
	c.Attack()
	c.TakeDamage()
	c.Flee()
	assert.Equal(t, "Blaze Wurm breathing fire\nBlaze Wurm got damage\nBlaze Wurm running away\n", buf.String())

	// other species keep the default attack
	buf.Reset()
	NewPyroBeast(&buf).Attack()
	assert.Equal(t, "Pyro Beast attacking\n", buf.String())
}

func TestDecorate(t *testing.T) {
	var buf bytes.Buffer
	base := NewMistMage(&buf)
	c := Decorate(base, OverrideAttack(func(c Creature) {
		buf.WriteString(c.Name() + " casting a tide\n")
	}))
	c.Attack()
	c.TakeDamage()
	c.Flee()
	assert.Equal(t, "Mist Mage casting a tide\nMist Mage got damage\nMist Mage running away\n", buf.String())
	assert.Equal(t, MistMageName, c.Name())
	assert.Equal(t, Water, c.Variant())

	unwrapper, ok := c.(interface{ Unwrap() Creature })
	assert.True(t, ok)
	assert.Same(t, base, unwrapper.Unwrap())

	buf.Reset()
	base.Attack()
	assert.Equal(t, "Mist Mage attacking\n", buf.String())
}

func TestDecorate_Order(t *testing.T) {
	var buf bytes.Buffer
	c := Decorate(NewTerrakin(&buf),
		OverrideFlee(func(c Creature) { buf.WriteString("outer\n") }),
		OverrideFlee(func(c Creature) { buf.WriteString("inner\n") }),
		OverrideTakeDamage(func(c Creature) { buf.WriteString(c.Name() + " shrugging\n") }),
	)
	c.Flee()
	c.TakeDamage()
	c.Attack()
	assert.Equal(t, "outer\nTerrakin shrugging\nTerrakin attacking\n", buf.String())
}

func TestVariant_String(t *testing.T) {
	assert.Equal(t, []Variant{Fire, Water, Earth, Air}, Variants())
	assert.Equal(t, "fire", Fire.String())
	assert.Equal(t, "air", Air.String())
	assert.False(t, Variant(7).Valid())
	assert.Equal(t, "variant(7)", Variant(7).String())
}

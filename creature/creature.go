package creature

import (
	"fmt"
	"io"
	"os"
)

const (
	attacking   = "attacking"
	gotDamage   = "got damage"
	runningAway = "running away"
)

// Creature is the product every factory manufactures.
type Creature interface {
	// Name returns the display name assigned at construction.
	Name() string

	// Variant returns the elemental family the creature belongs to.
	Variant() Variant

	Attack()

	TakeDamage()

	Flee()
}

// Base carries the state shared by all species and the default actions.
// Species embed it and may shadow any single action.
type Base struct {
	name    string
	variant Variant
	out     io.Writer
}

// NewBase returns a Base writing its actions to out, or to os.Stdout when out is nil.
// It panics if name is empty.
func NewBase(name string, variant Variant, out io.Writer) Base {
	if name == "" {
		panic("creature: empty name")
	}
	if out == nil {
		out = os.Stdout
	}
	return Base{name: name, variant: variant, out: out}
}

func (b Base) Name() string {
	return b.name
}

func (b Base) Variant() Variant {
	return b.variant
}

// Attack writes "{name} attacking".
func (b Base) Attack() {
	b.Say(attacking)
}

// TakeDamage writes "{name} got damage".
func (b Base) TakeDamage() {
	b.Say(gotDamage)
}

// Flee writes "{name} running away".
func (b Base) Flee() {
	b.Say(runningAway)
}

// Say writes one line made of the creature name and phrase.
// Overriding actions use it to keep the output format.
func (b Base) Say(phrase string) {
	_, _ = fmt.Fprintf(b.out, "%s %s\n", b.name, phrase)
}

func (b Base) String() string {
	return b.name
}

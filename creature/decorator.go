package creature

// Decorator wraps a Creature, replacing some of its behavior.
type Decorator interface {
	Decorate(c Creature) Creature
}

// The DecoratorFunc type is an adapter to allow the use of ordinary functions as Decorator.
type DecoratorFunc func(c Creature) Creature

// Decorate calls f(c).
func (f DecoratorFunc) Decorate(c Creature) Creature {
	return f(c)
}

// Decorate applies decorators to c. The first decorator ends up outermost.
func Decorate(c Creature, decorators ...Decorator) Creature {
	for i := len(decorators) - 1; i >= 0; i-- {
		c = decorators[i].Decorate(c)
	}
	return c
}

// override delegates every action to the wrapped creature unless a replacement is set.
type override struct {
	Creature
	attack     func(c Creature)
	takeDamage func(c Creature)
	flee       func(c Creature)
}

func (o *override) Attack() {
	if o.attack == nil {
		o.Creature.Attack()
		return
	}
	o.attack(o.Creature)
}

func (o *override) TakeDamage() {
	if o.takeDamage == nil {
		o.Creature.TakeDamage()
		return
	}
	o.takeDamage(o.Creature)
}

func (o *override) Flee() {
	if o.flee == nil {
		o.Creature.Flee()
		return
	}
	o.flee(o.Creature)
}

// Unwrap returns the decorated creature.
func (o *override) Unwrap() Creature {
	return o.Creature
}

// OverrideAttack replaces Attack with fn. fn receives the wrapped creature.
func OverrideAttack(fn func(c Creature)) Decorator {
	return DecoratorFunc(func(c Creature) Creature {
		return &override{Creature: c, attack: fn}
	})
}

// OverrideTakeDamage replaces TakeDamage with fn.
func OverrideTakeDamage(fn func(c Creature)) Decorator {
	return DecoratorFunc(func(c Creature) Creature {
		return &override{Creature: c, takeDamage: fn}
	})
}

// OverrideFlee replaces Flee with fn.
func OverrideFlee(fn func(c Creature)) Decorator {
	return DecoratorFunc(func(c Creature) Creature {
		return &override{Creature: c, flee: fn}
	})
}

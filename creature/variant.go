package creature

import "strconv"

// Variant selects the elemental family a factory produces.
type Variant int

const (
	Fire Variant = iota
	Water
	Earth
	Air
)

var variantNames = [...]string{
	Fire:  "fire",
	Water: "water",
	Earth: "earth",
	Air:   "air",
}

// Variants returns every variant in population order.
func Variants() []Variant {
	return []Variant{Fire, Water, Earth, Air}
}

// Valid reports whether v is one of the four declared variants.
func (v Variant) Valid() bool {
	return v >= Fire && v <= Air
}

func (v Variant) String() string {
	if !v.Valid() {
		return "variant(" + strconv.Itoa(int(v)) + ")"
	}
	return variantNames[v]
}

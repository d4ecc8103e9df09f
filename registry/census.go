package registry

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/go-leo/bestiary/creature"
)

type SpeciesCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type VariantCount struct {
	Variant string         `json:"variant"`
	Count   int            `json:"count"`
	Species []SpeciesCount `json:"species"`
}

// Census counts the registry per variant and species. Variants follow population
// order and species the order they first appear in.
type Census struct {
	Total    int            `json:"total"`
	Variants []VariantCount `json:"variants"`
}

// JSON renders the census as indented JSON.
func (c Census) JSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(c, "", "  ")
}

// Census counts the creatures currently held.
func (m *Map) Census() Census {
	creatures := m.Creatures()
	census := Census{Total: len(creatures)}
	for _, v := range creature.Variants() {
		vc := VariantCount{Variant: v.String(), Species: []SpeciesCount{}}
		index := map[string]int{}
		for _, c := range creatures {
			if c.Variant() != v {
				continue
			}
			vc.Count++
			i, ok := index[c.Name()]
			if !ok {
				i = len(vc.Species)
				index[c.Name()] = i
				vc.Species = append(vc.Species, SpeciesCount{Name: c.Name()})
			}
			vc.Species[i].Count++
		}
		census.Variants = append(census.Variants, vc)
	}
	return census
}

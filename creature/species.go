package creature

import "io"

// Display names of the twelve species.
const (
	BlazeWurmName   = "Blaze Wurm"
	PyroBeastName   = "Pyro Beast"
	EmberSpriteName = "Ember Sprite"

	AquazorName      = "Aquazor"
	TidalTantrumName = "Tidal Tantrum"
	MistMageName     = "Mist Mage"

	GolemWyrmName     = "Golem Wyrm"
	TerrakinName      = "Terrakin"
	GroveGuardianName = "Grove Guardian"

	GaleWyvernName = "Gale Wyvern"
	WindWraithName = "Wind Wraith"
	SkySylphName   = "Sky Sylph"
)

// Constructor builds one creature writing its actions to out.
type Constructor func(out io.Writer) Creature

// Fire family.

type BlazeWurm struct{ Base }

// NewBlazeWurm returns a Blaze Wurm writing to out.
func NewBlazeWurm(out io.Writer) Creature {
	return &BlazeWurm{Base: NewBase(BlazeWurmName, Fire, out)}
}

type PyroBeast struct{ Base }

func NewPyroBeast(out io.Writer) Creature {
	return &PyroBeast{Base: NewBase(PyroBeastName, Fire, out)}
}

type EmberSprite struct{ Base }

func NewEmberSprite(out io.Writer) Creature {
	return &EmberSprite{Base: NewBase(EmberSpriteName, Fire, out)}
}

// Water family.

type Aquazor struct{ Base }

func NewAquazor(out io.Writer) Creature {
	return &Aquazor{Base: NewBase(AquazorName, Water, out)}
}

type TidalTantrum struct{ Base }

func NewTidalTantrum(out io.Writer) Creature {
	return &TidalTantrum{Base: NewBase(TidalTantrumName, Water, out)}
}

type MistMage struct{ Base }

func NewMistMage(out io.Writer) Creature {
	return &MistMage{Base: NewBase(MistMageName, Water, out)}
}

// Earth family.

type GolemWyrm struct{ Base }

func NewGolemWyrm(out io.Writer) Creature {
	return &GolemWyrm{Base: NewBase(GolemWyrmName, Earth, out)}
}

type Terrakin struct{ Base }

func NewTerrakin(out io.Writer) Creature {
	return &Terrakin{Base: NewBase(TerrakinName, Earth, out)}
}

type GroveGuardian struct{ Base }

func NewGroveGuardian(out io.Writer) Creature {
	return &GroveGuardian{Base: NewBase(GroveGuardianName, Earth, out)}
}

// Air family.

type GaleWyvern struct{ Base }

func NewGaleWyvern(out io.Writer) Creature {
	return &GaleWyvern{Base: NewBase(GaleWyvernName, Air, out)}
}

type WindWraith struct{ Base }

func NewWindWraith(out io.Writer) Creature {
	return &WindWraith{Base: NewBase(WindWraithName, Air, out)}
}

type SkySylph struct{ Base }

func NewSkySylph(out io.Writer) Creature {
	return &SkySylph{Base: NewBase(SkySylphName, Air, out)}
}

package setup

import (
	"fmt"

	"github.com/yaptide/mcnp/errors"
	"github.com/yaptide/mcnp/validate"
)

const (
	// DefaultMaxEnergy in MeV.
	DefaultMaxEnergy = 20.0
	// DefaultMinEnergy in MeV.
	DefaultMinEnergy = 1.0e-8
)

// Physics contains global run parameters of deck.
type Physics struct {
	// Particles transported, listed on mode card in this order.
	Particles []Particle `json:"particles"`

	// MaxEnergy in MeV, DefaultMaxEnergy if 0.
	MaxEnergy float64 `json:"maxE,omitempty"`
	// MinEnergy in MeV, DefaultMinEnergy if 0.
	MinEnergy float64 `json:"minE,omitempty"`

	// NPS is number of histories to run, nps card is emitted only if set.
	NPS *float64 `json:"nps,omitempty"`
	// CTME is run time limit in minutes, ctme card is emitted only if set.
	CTME *float64 `json:"ctme,omitempty"`

	NoFission bool `json:"noFission,omitempty"`

	// Polimi enables MCNP-Polimi transport in PolimiCells.
	Polimi      bool  `json:"polimi,omitempty"`
	PolimiCells []int `json:"polimiCells,omitempty"`
}

// WithDefaults returns copy with unset energy bounds replaced by defaults.
func (p Physics) WithDefaults() Physics {
	if p.MaxEnergy == 0 {
		p.MaxEnergy = DefaultMaxEnergy
	}
	if p.MinEnergy == 0 {
		p.MinEnergy = DefaultMinEnergy
	}
	return p
}

// Validate ...
func (p Physics) Validate() error {
	result := E{}

	if len(p.Particles) == 0 {
		result["particles"] = fmt.Errorf("%w: at least one particle is required", errors.ErrUnknownParticleType)
	}
	for _, particle := range p.Particles {
		if !particle.Valid() || !particle.IsMode() {
			result["particles"] = fmt.Errorf("%w: %v can't be transported", errors.ErrUnknownParticleType, particle)
			break
		}
	}

	bounded := p.WithDefaults()
	if !validate.Positive(bounded.MinEnergy) || !(bounded.MaxEnergy > bounded.MinEnergy) {
		result["energy"] = fmt.Errorf("%w: expected maxE > minE > 0, got maxE=%v minE=%v",
			errors.ErrInvalidEnergyBounds, bounded.MaxEnergy, bounded.MinEnergy)
	}

	if p.NPS != nil && !validate.NonNegative(*p.NPS) {
		result["nps"] = fmt.Errorf("should not be negative")
	}
	if p.CTME != nil && !validate.NonNegative(*p.CTME) {
		result["ctme"] = fmt.Errorf("should not be negative")
	}

	return result.orNil()
}

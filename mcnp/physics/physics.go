// Package physics encodes mode, phys, cut and run control cards.
package physics

import (
	"fmt"
	"strings"

	"github.com/yaptide/mcnp/errors"
	"github.com/yaptide/mcnp/log"
	"github.com/yaptide/mcnp/mcnp/card"
	"github.com/yaptide/mcnp/setup"
)

type particleCardSerializerFunc func(setup.Physics) []card.Card

var particleCardSerializers = map[setup.Particle]particleCardSerializerFunc{
	setup.Photon: func(physics setup.Physics) []card.Card {
		return []card.Card{
			card.New("phys:p", card.Exp(physics.MaxEnergy), "0", "1", "-1", "2J", "1"),
			card.New("cut:p", card.Exp(physics.MaxEnergy), "J", "0", "0"),
		}
	},
	setup.Neutron: func(physics setup.Physics) []card.Card {
		return []card.Card{
			card.New("phys:n", card.Exp(physics.MaxEnergy)),
			card.New("cut:n", "j", card.Exp(physics.MinEnergy)),
		}
	},
}

var particleCardOrder = []setup.Particle{setup.Photon, setup.Neutron}

// Encoder accumulates physics cards. Every mutator appends cards and returns
// the same encoder. First error is kept and reported by Fragment.
type Encoder struct {
	physics setup.Physics
	tags    []string
	cards   card.Builder
	err     error
}

// New encodes mode and per particle cards, then nps, ctme, nonu and ipol
// cards requested by physics.
func New(physics setup.Physics) (*Encoder, error) {
	physics = physics.WithDefaults()
	tags := make([]string, len(physics.Particles))
	for i, particle := range physics.Particles {
		tags[i] = particle.String()
	}

	if err := physics.Validate(); err != nil {
		return nil, errors.PhysicsError(strings.Join(tags, " "), err, "invalid physics")
	}

	e := &Encoder{physics: physics, tags: tags}
	log.Debug("[Encoder][physics] start %v", tags)

	e.cards.Add(card.New("mode", tags...))
	for _, particle := range particleCardOrder {
		if !e.has(particle) {
			continue
		}
		e.cards.Add(particleCardSerializers[particle](physics)...)
	}

	if physics.NPS != nil {
		e.NPS(*physics.NPS)
	}
	if physics.CTME != nil {
		e.CTME(*physics.CTME)
	}
	if physics.NoFission {
		e.NoFission()
	}
	if physics.Polimi {
		cells := make([]interface{}, len(physics.PolimiCells))
		for i, cell := range physics.PolimiCells {
			cells[i] = cell
		}
		e.Polimi(cells...)
	}
	if e.err != nil {
		return nil, e.err
	}
	return e, nil
}

func (e *Encoder) has(particle setup.Particle) bool {
	for _, p := range e.physics.Particles {
		if p == particle {
			return true
		}
	}
	return false
}

func (e *Encoder) fail(cause error, format string, values ...interface{}) *Encoder {
	if e.err == nil {
		e.err = errors.PhysicsError(strings.Join(e.tags, " "), cause, format, values...)
		log.Warning("[Encoder][physics] %v", e.err)
	}
	return e
}

// NPS sets number of histories to run. Beyond ~2e9 MCNP needs 64-bit integers.
func (e *Encoder) NPS(histories float64) *Encoder {
	e.cards.Add(card.New("nps", card.Exp(histories)))
	return e
}

// CTME sets run time limit in minutes.
func (e *Encoder) CTME(minutes float64) *Encoder {
	e.cards.Add(card.New("ctme", card.Exp(minutes)))
	return e
}

// NoFission disables fission neutron production. Restricting it to cells
// is not supported yet.
func (e *Encoder) NoFission(cells ...interface{}) *Encoder {
	if len(cells) > 0 {
		return e.fail(errors.ErrNotImplemented, "nonu restricted to %d cells", len(cells))
	}
	e.cards.Add(card.New("nonu"))
	return e
}

// Polimi transports particles with MCNP-Polimi in given cells. cells are
// cell numbers (int) or values with Number() int method.
func (e *Encoder) Polimi(cells ...interface{}) *Encoder {
	numbers := make([]int, 0, len(cells))
	for _, cell := range cells {
		number, err := cellNumber(cell)
		if err != nil {
			return e.fail(errors.ErrTypeMismatch, "%v", err)
		}
		numbers = append(numbers, number)
	}

	ipol := append([]string{"0", "0", "0", "0", "2J"}, card.Ints(len(numbers))...)
	e.cards.Add(
		card.New("ipol", append(ipol, card.Ints(numbers...)...)...),
		card.New("files", "21", "DUMN1"),
	)
	return e
}

func cellNumber(cell interface{}) (int, error) {
	switch c := cell.(type) {
	case int:
		return c, nil
	case interface{ Number() int }:
		return c.Number(), nil
	}
	return 0, fmt.Errorf("cell %v of type %T is neither number nor cell", cell, cell)
}

// Err returns first error of mutators.
func (e *Encoder) Err() error {
	return e.err
}

// Fragment returns comment and cards. Nothing is returned after any error.
func (e *Encoder) Fragment() (card.Fragment, error) {
	if e.err != nil {
		return card.Fragment{}, e.err
	}
	return card.Fragment{
		Comment: card.Comment("default physics for " + strings.Join(e.tags, " ")),
		Body:    e.cards.Render(),
	}, nil
}

// String returns rendered fragment or "" after error.
func (e *Encoder) String() string {
	fragment, err := e.Fragment()
	if err != nil {
		return ""
	}
	return fragment.String()
}

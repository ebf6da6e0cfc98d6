// Package mcnp encodes scene description into MCNP deck fragments.
package mcnp

import (
	"fmt"

	"github.com/yaptide/mcnp/config"
	"github.com/yaptide/mcnp/log"
	"github.com/yaptide/mcnp/mcnp/card"
	"github.com/yaptide/mcnp/mcnp/physics"
	"github.com/yaptide/mcnp/mcnp/source"
	"github.com/yaptide/mcnp/render"
	"github.com/yaptide/mcnp/setup"
)

// Deck contains encoded fragments of scene. Assembling them into input file
// is left to caller.
type Deck struct {
	Physics card.Fragment
	Sources []card.Fragment
	// Directives for scene builder, in source order.
	Directives []render.Directive
}

// Fragments returns physics fragment followed by source fragments.
func (d Deck) Fragments() []card.Fragment {
	return append([]card.Fragment{d.Physics}, d.Sources...)
}

// Encode scene to deck fragments. Return error, if any fragment can't be
// encoded; no fragments are returned then.
func Encode(scene setup.Scene, conf config.Config) (Deck, error) {
	log.Info("[Encoder] start, %d sources", len(scene.Sources))

	if err := conf.Check(); err != nil {
		return Deck{}, err
	}
	if scene.Physics.Polimi && conf.Flavor != config.FlavorPolimi {
		log.Warning("[Encoder][physics] ipol requested for %s flavor deck", conf.Flavor)
	}

	physicsEncoder, err := physics.New(scene.Physics)
	if err != nil {
		return Deck{}, err
	}
	physicsFragment, err := physicsEncoder.Fragment()
	if err != nil {
		return Deck{}, err
	}

	deck := Deck{Physics: physicsFragment}
	cells := scene.CellIndex()
	seen := map[string]bool{}
	for _, src := range scene.Sources {
		sourceEncoder, err := source.New(src, cells)
		if err != nil {
			return Deck{}, fmt.Errorf("source %q: %w", src.ID, err)
		}
		if seen[sourceEncoder.ID()] {
			log.Warning("[Encoder][source] duplicated source id %q", sourceEncoder.ID())
		}
		seen[sourceEncoder.ID()] = true

		deck.Sources = append(deck.Sources, sourceEncoder.Fragment())
		if directive, ok := sourceEncoder.Directive(); ok {
			deck.Directives = append(deck.Directives, directive)
		}
	}

	log.Info("[Encoder] finished")
	return deck, nil
}

// Package source encodes sdef source entries with distributions they reference.
package source

import (
	"fmt"

	"github.com/yaptide/mcnp/errors"
	"github.com/yaptide/mcnp/log"
	"github.com/yaptide/mcnp/mcnp/card"
	"github.com/yaptide/mcnp/mcnp/distribution"
	"github.com/yaptide/mcnp/render"
	"github.com/yaptide/mcnp/setup"
)

const (
	diskHeight   = 0.1
	markerRadius = 1.0
)

// Encoder is fully resolved source. It is immutable after New.
type Encoder struct {
	id            string
	fragment      card.Fragment
	distributions []distribution.Distribution
	directive     *render.Directive
}

type builder struct {
	source        setup.Source
	entries       []string
	distributions []distribution.Distribution
	directive     *render.Directive
}

// New resolves source placement, direction and spectrum. cells is used only
// by cell placement and may be nil otherwise.
func New(source setup.Source, cells setup.CellLookup) (*Encoder, error) {
	if err := source.Validate(); err != nil {
		return nil, errors.SourceError(source.ID, err, "invalid source")
	}
	log.Debug("[Encoder][source] start %s", source.ID)

	b := &builder{source: source}
	b.entries = append(b.entries, card.Entry("par", card.Ints(source.Particle.Code())...))
	if source.Direction != setup.Isotropic {
		vector := source.Direction.Vector()
		b.entries = append(b.entries,
			card.Entry("vec", card.Ints(vector[:]...)...),
			card.Entry("dir", "1"),
		)
	}
	if err := b.resolvePlacement(cells); err != nil {
		return nil, err
	}
	if err := b.resolveSpectrum(); err != nil {
		return nil, err
	}

	cards := &card.Builder{}
	cards.Add(card.New("", b.entries...))
	for _, d := range b.distributions {
		distributionCards, err := d.Cards()
		if err != nil {
			return nil, errors.SourceError(source.ID, err, "distribution d%d", d.Index)
		}
		cards.Add(distributionCards...)
	}

	log.Debug("[Encoder][source] %s done with %d distributions", source.ID, len(b.distributions))
	return &Encoder{
		id: source.ID,
		fragment: card.Fragment{
			Comment: card.Comment(source.ID),
			Body:    cards.Render(),
		},
		distributions: b.distributions,
		directive:     b.directive,
	}, nil
}

// allocate assigns next distribution index, starting from 1.
func (b *builder) allocate(create func(index int) distribution.Distribution) int {
	index := len(b.distributions) + 1
	b.distributions = append(b.distributions, create(index))
	return index
}

func distributionRef(index int) string {
	return fmt.Sprintf("d%d", index)
}

func (b *builder) resolvePlacement(cells setup.CellLookup) error {
	source := b.source
	switch placement := source.Placement.(type) {
	case setup.DiskPlacement:
		index := b.allocate(func(index int) distribution.Distribution {
			return distribution.NewRadial(index, placement.Radius)
		})
		axis := source.Direction.Axis()
		b.entries = append(b.entries,
			card.Entry("axs", card.Ints(axis[:]...)...),
			card.Entry("rad", distributionRef(index)),
		)
		// pos defaults to origin
		if !placement.Center.IsOrigin() {
			b.entries = append(b.entries,
				card.Entry("pos", card.Map(card.Fixed, placement.Center.X, placement.Center.Y, placement.Center.Z)...),
			)
		}
		b.directive = &render.Directive{
			Shape: render.RightCircularCylinder,
			Args: render.Args{
				Center:    placement.Center.Array(),
				Radius:    placement.Radius,
				Height:    diskHeight,
				Name:      source.ID,
				Color:     source.Particle.Color(),
				Direction: source.Direction.AxisName(),
				Alpha:     1.0,
				Emitting:  true,
			},
		}

	case setup.PointPlacement:
		b.entries = append(b.entries,
			card.Entry("pos", card.Map(card.Fixed, placement.Center.X, placement.Center.Y, placement.Center.Z)...),
		)
		b.directive = &render.Directive{
			Shape: render.Sphere,
			Args: render.Args{
				Center:   placement.Center.Array(),
				Radius:   markerRadius,
				Name:     source.ID,
				Color:    render.SourceMarker,
				Alpha:    1.0,
				Emitting: true,
			},
		}

	case setup.CellPlacement:
		if cells == nil {
			return errors.SourceError(source.ID, errors.ErrMissingCell, "no cells to look up cell %d", placement.Cell)
		}
		cell, ok := cells.Lookup(placement.Cell)
		if !ok {
			return errors.SourceError(source.ID, errors.ErrMissingCell, "cell %d", placement.Cell)
		}
		center, radius := cell.Position(), cell.Radius()
		if placement.Center != nil {
			center = *placement.Center
		}
		if placement.Radius != nil {
			radius = *placement.Radius
		}
		if radius <= 0 {
			return errors.SourceError(source.ID, errors.ErrInvalidPlacement,
				"cell %d radius should be positive, got %v", cell.Number(), radius)
		}

		index := b.allocate(func(index int) distribution.Distribution {
			return distribution.NewRadial(index, radius)
		})
		b.entries = append(b.entries,
			card.Entry("cel", card.Ints(cell.Number())...),
			card.Entry("pos", card.Map(card.Fixed, center.X, center.Y, center.Z)...),
			card.Entry("rad", distributionRef(index)),
		)
		if directive, ok := cell.Directive(); ok && source.Show {
			derived := directive.WithEmitting(true)
			b.directive = &derived
		}

	default:
		return errors.SourceError(source.ID, errors.ErrInvalidPlacement, "unsupported placement %T", placement)
	}
	return nil
}

func (b *builder) resolveSpectrum() error {
	source := b.source
	spectrum := source.Spectrum
	if spectrum == nil && source.Particle == setup.Fission {
		spectrum = setup.DefaultWatt
	}

	var create func(index int) distribution.Distribution
	switch s := spectrum.(type) {
	case nil:
		return nil
	case setup.FixedSpectrum:
		b.entries = append(b.entries, card.Entry("erg", card.Sci(s.Energy)))
		return nil
	case setup.TabulatedSpectrum:
		create = func(index int) distribution.Distribution {
			return distribution.NewTabulated(index, s.Energies, s.Weights, s.SiOption(), distribution.Float)
		}
	case setup.WattSpectrum:
		create = func(index int) distribution.Distribution {
			return distribution.NewWatt(index, s.A, s.B)
		}
	case setup.MaxwellianSpectrum:
		create = func(index int) distribution.Distribution {
			return distribution.NewMaxwellian(index, s.Temperature)
		}
	default:
		return errors.SourceError(source.ID, errors.ErrNotImplemented, "spectrum %T", spectrum)
	}

	index := b.allocate(create)
	b.entries = append(b.entries, card.Entry("erg", distributionRef(index)))
	return nil
}

// ID of source.
func (e *Encoder) ID() string {
	return e.id
}

// Fragment returns comment line and source cards.
func (e *Encoder) Fragment() card.Fragment {
	return e.fragment
}

// Distributions returns copy of distributions owned by source, in index order.
func (e *Encoder) Distributions() []distribution.Distribution {
	return append([]distribution.Distribution(nil), e.distributions...)
}

// Directive returns visualization directive for scene builder, if any.
func (e *Encoder) Directive() (render.Directive, bool) {
	if e.directive == nil {
		return render.Directive{}, false
	}
	return *e.directive, true
}

func (e *Encoder) String() string {
	return e.fragment.String()
}

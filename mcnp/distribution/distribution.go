// Package distribution encodes si/sp source distribution cards.
package distribution

import (
	"fmt"

	"github.com/yaptide/mcnp/errors"
	"github.com/yaptide/mcnp/log"
	"github.com/yaptide/mcnp/mcnp/card"
	"github.com/yaptide/mcnp/validate"
)

// Kind of distribution.
type Kind int

const (
	// Tabulated distribution given by si/sp value lists.
	Tabulated Kind = iota
	// Watt fission spectrum, sp function -3.
	Watt
	// Maxwellian fission spectrum, sp function -2.
	Maxwellian
)

func (k Kind) String() string {
	switch k {
	case Tabulated:
		return "tabulated"
	case Watt:
		return "watt"
	case Maxwellian:
		return "maxwellian"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Format of sp values.
type Format int

const (
	// Float renders "%15.10e".
	Float Format = iota
	// Integer renders plain decimal integers.
	Integer
)

const (
	wattFunction       = -3
	maxwellianFunction = -2
	// RadialPowerLaw is sp function -21, with exponent 1 it samples uniformly over disk area.
	RadialPowerLaw = -21
)

// Distribution is single si/sp pair referenced as d<Index> from source card.
type Distribution struct {
	Index  int
	Kind   Kind
	Option string
	X      []float64
	Y      []float64
	Format Format
	// Params of canned shapes: (a, b) for Watt, (T) for Maxwellian.
	Params []float64
}

// NewTabulated constructs tabulated distribution. option may be empty.
func NewTabulated(index int, x, y []float64, option string, format Format) Distribution {
	return Distribution{
		Index:  index,
		Kind:   Tabulated,
		Option: option,
		X:      append([]float64(nil), x...),
		Y:      append([]float64(nil), y...),
		Format: format,
	}
}

// NewRadial constructs distribution sampling radius uniformly over disk area.
func NewRadial(index int, radius float64) Distribution {
	return NewTabulated(index, []float64{0, radius}, []float64{RadialPowerLaw, 1}, "", Integer)
}

// NewWatt constructs Watt fission spectrum.
func NewWatt(index int, a, b float64) Distribution {
	return Distribution{Index: index, Kind: Watt, Params: []float64{a, b}}
}

// NewMaxwellian constructs Maxwellian fission spectrum of temperature in MeV.
func NewMaxwellian(index int, temperature float64) Distribution {
	return Distribution{Index: index, Kind: Maxwellian, Params: []float64{temperature}}
}

// Validate ...
func (d Distribution) Validate() error {
	if d.Index < 1 {
		return errors.DistributionError(d.Index, errors.ErrInvalidDistribution, "index should be positive")
	}
	switch d.Kind {
	case Tabulated:
		if len(d.X) == 0 || len(d.X) != len(d.Y) {
			return errors.DistributionError(d.Index, errors.ErrInvalidDistribution,
				"got %d si values and %d sp values", len(d.X), len(d.Y))
		}
		if d.Option != "" && !validate.Letter(d.Option) {
			return errors.DistributionError(d.Index, errors.ErrInvalidDistribution,
				"option %q should be single letter", d.Option)
		}
	case Watt:
		if len(d.Params) != 2 {
			return errors.DistributionError(d.Index, errors.ErrInvalidDistribution, "watt requires a and b")
		}
	case Maxwellian:
		if len(d.Params) != 1 {
			return errors.DistributionError(d.Index, errors.ErrInvalidDistribution, "maxwellian requires temperature")
		}
	default:
		return errors.DistributionError(d.Index, errors.ErrNotImplemented, "kind %v", d.Kind)
	}
	return nil
}

// Cards returns si and sp cards, canned shapes have sp card only.
func (d Distribution) Cards() ([]card.Card, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	si, sp := fmt.Sprintf("si%d", d.Index), fmt.Sprintf("sp%d", d.Index)

	switch d.Kind {
	case Watt:
		return []card.Card{
			card.New(sp, card.Int(wattFunction), card.Exp(d.Params[0]), card.Exp(d.Params[1])),
		}, nil
	case Maxwellian:
		return []card.Card{
			card.New(sp, card.Int(maxwellianFunction), card.Exp(d.Params[0])),
		}, nil
	}

	siValues := append([]string{d.Option}, card.Map(card.Sci, d.X...)...)
	spFormat := card.Sci
	if d.Format == Integer {
		spFormat = card.Int
	}
	return []card.Card{
		card.New(si, siValues...),
		card.New(sp, card.Map(spFormat, d.Y...)...),
	}, nil
}

// Encode renders cards, every line newline terminated.
func (d Distribution) Encode() (string, error) {
	cards, err := d.Cards()
	if err != nil {
		return "", err
	}
	log.Debug("[Encoder][distribution] d%d %v with %d cards", d.Index, d.Kind, len(cards))
	encoded := ""
	for _, c := range cards {
		encoded += c.String() + "\n"
	}
	return encoded, nil
}

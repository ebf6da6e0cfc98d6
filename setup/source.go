package setup

import (
	"encoding/json"
	"fmt"

	"github.com/yaptide/mcnp/errors"
)

// Source is declarative description of particle source.
type Source struct {
	// ID is label of source used in comment and visualization.
	ID        string    `json:"id"`
	Particle  Particle  `json:"particle"`
	Placement Placement `json:"placement"`
	// Direction of emission, Isotropic if not set.
	Direction Direction `json:"direction,omitempty"`
	// Spectrum of energy, may be nil.
	Spectrum Spectrum `json:"spectrum,omitempty"`
	// Show source in visualization.
	Show bool `json:"show"`
}

// NewSource constructs visible source.
func NewSource(id string, particle Particle, placement Placement) Source {
	return Source{
		ID:        id,
		Particle:  particle,
		Placement: placement,
		Show:      true,
	}
}

// WithDirection returns copy of source emitting along direction.
func (s Source) WithDirection(direction Direction) Source {
	s.Direction = direction
	return s
}

// WithSpectrum returns copy of source with given spectrum.
func (s Source) WithSpectrum(spectrum Spectrum) Source {
	s.Spectrum = spectrum
	return s
}

// Hidden returns copy of source excluded from visualization.
func (s Source) Hidden() Source {
	s.Show = false
	return s
}

// Validate ...
func (s Source) Validate() error {
	result := E{}

	if !s.Particle.Valid() {
		result["particle"] = fmt.Errorf("%w: %v", errors.ErrUnknownParticleType, s.Particle)
	}

	switch placement := s.Placement.(type) {
	case nil:
		result["placement"] = fmt.Errorf("%w: source has no placement", errors.ErrInvalidPlacement)
	case DiskPlacement:
		if s.Direction == Isotropic {
			result["direction"] = fmt.Errorf("%w: disk source requires direction", errors.ErrInvalidPlacement)
		}
		if err := placement.Validate(); err != nil {
			result["placement"] = err
		}
	default:
		if err := placement.Validate(); err != nil {
			result["placement"] = err
		}
	}

	if s.Spectrum != nil {
		if err := s.Spectrum.Validate(); err != nil {
			result["spectrum"] = err
		}
	}

	return result.orNil()
}

// UnmarshalJSON custom Unmarshal function.
func (s *Source) UnmarshalJSON(b []byte) error {
	type rawSource struct {
		ID        string          `json:"id"`
		Particle  Particle        `json:"particle"`
		Placement json.RawMessage `json:"placement"`
		Direction Direction       `json:"direction"`
		Spectrum  json.RawMessage `json:"spectrum"`
		Show      *bool           `json:"show"`
	}
	var raw rawSource
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*s = Source{
		ID:        raw.ID,
		Particle:  raw.Particle,
		Direction: raw.Direction,
		Show:      raw.Show == nil || *raw.Show,
	}
	if len(raw.Placement) > 0 && string(raw.Placement) != "null" {
		placement, err := unmarshalPlacement(raw.Placement)
		if err != nil {
			return err
		}
		s.Placement = placement
	}
	if len(raw.Spectrum) > 0 && string(raw.Spectrum) != "null" {
		spectrum, err := unmarshalSpectrum(raw.Spectrum)
		if err != nil {
			return err
		}
		s.Spectrum = spectrum
	}
	return nil
}

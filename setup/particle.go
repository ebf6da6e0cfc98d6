package setup

import (
	"encoding/json"
	"fmt"

	"github.com/yaptide/mcnp/errors"
	"github.com/yaptide/mcnp/render"
)

// Particle is closed set of particle kinds known to encoders.
type Particle int

const (
	// Neutron ...
	Neutron Particle = iota + 1
	// Photon ...
	Photon
	// Electron ...
	Electron
	// Fission is neutron source sampled from fission spectrum.
	Fission
)

type particleInfo struct {
	tag   string
	code  int
	color render.Color
	mode  bool
}

var particles = map[Particle]particleInfo{
	Neutron:  {tag: "n", code: 1, color: render.MustParseColor("#7299C6"), mode: true},
	Photon:   {tag: "p", code: 2, color: render.MustParseColor("#E3AE24"), mode: true},
	Electron: {tag: "e", code: 3, color: render.MustParseColor("#8DC63F"), mode: true},
	Fission:  {tag: "fission", code: 1, color: render.MustParseColor("#B95915")},
}

var particleAliases = map[string]Particle{
	"n":        Neutron,
	"neutron":  Neutron,
	"p":        Photon,
	"photon":   Photon,
	"e":        Electron,
	"electron": Electron,
	"fission":  Fission,
}

// ParseParticle maps tag (e.g. "n", "photon") to particle kind.
func ParseParticle(tag string) (Particle, error) {
	particle, ok := particleAliases[tag]
	if !ok {
		return 0, fmt.Errorf("%w: %q", errors.ErrUnknownParticleType, tag)
	}
	return particle, nil
}

func (p Particle) info() particleInfo {
	return particles[p]
}

// Valid checks if p is one of declared kinds.
func (p Particle) Valid() bool {
	_, ok := particles[p]
	return ok
}

// Tag used in mode card and in json.
func (p Particle) Tag() string {
	return p.info().tag
}

// Code used in par= source entry.
func (p Particle) Code() int {
	return p.info().code
}

// Color used to display source of this particle.
func (p Particle) Color() render.Color {
	return p.info().color
}

// IsMode reports whether particle can be transported, i.e. listed on mode card.
func (p Particle) IsMode() bool {
	return p.info().mode
}

func (p Particle) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Particle(%d)", int(p))
	}
	return p.Tag()
}

// MarshalJSON json.Marshaller implementation.
func (p Particle) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", errors.ErrUnknownParticleType, int(p))
	}
	return json.Marshal(p.Tag())
}

// UnmarshalJSON json.Unmarshaller implementation.
func (p *Particle) UnmarshalJSON(b []byte) error {
	var tag string
	if err := json.Unmarshal(b, &tag); err != nil {
		return err
	}
	particle, err := ParseParticle(tag)
	if err != nil {
		return err
	}
	*p = particle
	return nil
}

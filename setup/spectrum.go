package setup

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yaptide/mcnp/errors"
	"github.com/yaptide/mcnp/utils"
	"github.com/yaptide/mcnp/validate"
)

var spectrumType = struct {
	tabulated  string
	fixed      string
	watt       string
	maxwellian string
}{
	tabulated:  "tabulated",
	fixed:      "fixed",
	watt:       "watt",
	maxwellian: "maxwellian",
}

// DefaultSpectrumOption is si option used when tabulated spectrum doesn't set one.
const DefaultSpectrumOption = "C"

// si options whose values are histogram bin bounds.
var binnedOptions = map[string]bool{"H": true, "A": true}

// Spectrum is energy spectrum of source. Implemented by TabulatedSpectrum,
// FixedSpectrum, WattSpectrum and MaxwellianSpectrum.
type Spectrum interface {
	isSpectrum()
	Validate() error
}

// TabulatedSpectrum is spectrum given by energies (MeV) and their weights.
type TabulatedSpectrum struct {
	Energies []float64 `json:"energies"`
	Weights  []float64 `json:"weights"`
	// Option is single letter si option, e.g. "H", "L".
	Option string `json:"option,omitempty"`
}

// FixedSpectrum is monoenergetic source.
type FixedSpectrum struct {
	Energy float64 `json:"energy"`
}

// WattSpectrum is fission spectrum exp(-E/a)*sinh(sqrt(b*E)).
type WattSpectrum struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// MaxwellianSpectrum is fission spectrum sqrt(E)*exp(-E/T).
type MaxwellianSpectrum struct {
	Temperature float64 `json:"temperature"`
}

// DefaultWatt parameters of thermal neutron induced U-235 fission.
var DefaultWatt = WattSpectrum{A: 0.988, B: 2.249}

func (TabulatedSpectrum) isSpectrum() {}
func (FixedSpectrum) isSpectrum() {}
func (WattSpectrum) isSpectrum() {}
func (MaxwellianSpectrum) isSpectrum() {}

// SiOption returns option letter, DefaultSpectrumOption if empty.
func (t TabulatedSpectrum) SiOption() string {
	if t.Option == "" {
		return DefaultSpectrumOption
	}
	return t.Option
}

// Validate ...
func (t TabulatedSpectrum) Validate() error {
	result := E{}
	if len(t.Energies) == 0 {
		result["energies"] = fmt.Errorf("%w: should not be empty", errors.ErrInvalidSpectrum)
	} else if binnedOptions[strings.ToUpper(t.SiOption())] && !validate.NonDecreasing(t.Energies) {
		result["energies"] = fmt.Errorf("%w: bin bounds of option %s should be sorted", errors.ErrInvalidSpectrum, t.SiOption())
	}
	if len(t.Weights) != len(t.Energies) {
		result["weights"] = fmt.Errorf("%w: got %d weights for %d energies",
			errors.ErrInvalidSpectrum, len(t.Weights), len(t.Energies))
	}
	if !validate.Letter(t.SiOption()) {
		result["option"] = fmt.Errorf("%w: option %q should be single letter", errors.ErrInvalidSpectrum, t.Option)
	}
	return result.orNil()
}

// Validate ...
func (f FixedSpectrum) Validate() error {
	if !validate.Positive(f.Energy) {
		return E{"energy": fmt.Errorf("%w: should be positive value", errors.ErrInvalidSpectrum)}
	}
	return nil
}

// Validate ...
func (w WattSpectrum) Validate() error {
	result := E{}
	if !validate.Positive(w.A) {
		result["a"] = fmt.Errorf("%w: should be positive value", errors.ErrInvalidSpectrum)
	}
	if !validate.Positive(w.B) {
		result["b"] = fmt.Errorf("%w: should be positive value", errors.ErrInvalidSpectrum)
	}
	return result.orNil()
}

// Validate ...
func (m MaxwellianSpectrum) Validate() error {
	if !validate.Positive(m.Temperature) {
		return E{"temperature": fmt.Errorf("%w: should be positive value", errors.ErrInvalidSpectrum)}
	}
	return nil
}

// MarshalJSON json.Marshaller implementation.
func (t TabulatedSpectrum) MarshalJSON() ([]byte, error) {
	type Alias TabulatedSpectrum
	return json.Marshal(struct {
		Type string `json:"type"`
		Alias
	}{
		Type:  spectrumType.tabulated,
		Alias: Alias(t),
	})
}

// MarshalJSON json.Marshaller implementation.
func (f FixedSpectrum) MarshalJSON() ([]byte, error) {
	type Alias FixedSpectrum
	return json.Marshal(struct {
		Type string `json:"type"`
		Alias
	}{
		Type:  spectrumType.fixed,
		Alias: Alias(f),
	})
}

// MarshalJSON json.Marshaller implementation.
func (w WattSpectrum) MarshalJSON() ([]byte, error) {
	type Alias WattSpectrum
	return json.Marshal(struct {
		Type string `json:"type"`
		Alias
	}{
		Type:  spectrumType.watt,
		Alias: Alias(w),
	})
}

// MarshalJSON json.Marshaller implementation.
func (m MaxwellianSpectrum) MarshalJSON() ([]byte, error) {
	type Alias MaxwellianSpectrum
	return json.Marshal(struct {
		Type string `json:"type"`
		Alias
	}{
		Type:  spectrumType.maxwellian,
		Alias: Alias(m),
	})
}

func unmarshalSpectrum(b []byte) (Spectrum, error) {
	type tabulatedAlias TabulatedSpectrum
	type fixedAlias FixedSpectrum
	type wattAlias WattSpectrum
	type maxwellianAlias MaxwellianSpectrum

	value, err := utils.TypeBasedUnmarshalJSON(b, map[string]func() interface{}{
		spectrumType.tabulated: func() interface{} { return &tabulatedAlias{} },
		spectrumType.fixed:     func() interface{} { return &fixedAlias{} },
		spectrumType.watt: func() interface{} {
			watt := wattAlias(DefaultWatt)
			return &watt
		},
		spectrumType.maxwellian: func() interface{} { return &maxwellianAlias{} },
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidSpectrum, err)
	}
	switch s := value.(type) {
	case tabulatedAlias:
		return TabulatedSpectrum(s), nil
	case fixedAlias:
		return FixedSpectrum(s), nil
	case wattAlias:
		return WattSpectrum(s), nil
	case maxwellianAlias:
		return MaxwellianSpectrum(s), nil
	}
	return nil, fmt.Errorf("%w: unexpected spectrum %T", errors.ErrInvalidSpectrum, value)
}

// Package errors error module.
package errors

import (
	"fmt"
)

var (
	// ErrUnknownParticleType particle tag outside of supported kinds.
	ErrUnknownParticleType = fmt.Errorf("unknownparticletype")
	// ErrTypeMismatch value is neither a cell number nor a cell.
	ErrTypeMismatch = fmt.Errorf("typemismatch")
	// ErrNotImplemented ...
	ErrNotImplemented = fmt.Errorf("notimplemented")
	// ErrInvalidEnergyBounds energy bounds do not satisfy maxE > minE > 0.
	ErrInvalidEnergyBounds = fmt.Errorf("invalidenergybounds")
	// ErrInvalidPlacement source placement can't be resolved.
	ErrInvalidPlacement = fmt.Errorf("invalidplacement")
	// ErrInvalidSpectrum source spectrum can't be resolved.
	ErrInvalidSpectrum = fmt.Errorf("invalidspectrum")
	// ErrInvalidDistribution malformed si/sp distribution.
	ErrInvalidDistribution = fmt.Errorf("invaliddistribution")
	// ErrMissingCell referenced cell is not known.
	ErrMissingCell = fmt.Errorf("missingcell")
)

type makeNewIDErrorFuncType = func(id interface{}, cause error, message string, formatedValues ...interface{}) error

// PhysicsError decorates errors raised while encoding physics cards.
var PhysicsError = makeNewIDErrorFunc("Physics")

// SourceError decorates errors raised while encoding sdef cards.
var SourceError = makeNewIDErrorFunc("Source")

// DistributionError decorates errors raised while encoding si/sp cards.
var DistributionError = makeNewIDErrorFunc("Distribution")

func makeNewIDErrorFunc(modelName string) makeNewIDErrorFuncType {
	return func(id interface{}, cause error, message string, formatedValues ...interface{}) error {
		header := fmt.Sprintf("[encoder] %s{Id: %v}", modelName, id)
		return fmt.Errorf("%s -> %w: %s", header, cause, fmt.Sprintf(message, formatedValues...))
	}
}

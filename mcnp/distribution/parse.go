package distribution

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/yaptide/mcnp/errors"
	"github.com/yaptide/mcnp/validate"
)

// Parse reads distribution back from its si/sp cards.
func Parse(text string) (Distribution, error) {
	var (
		d            Distribution
		siSeen       bool
		spSeen       bool
		parseFailure = func(format string, values ...interface{}) (Distribution, error) {
			return Distribution{}, errors.DistributionError(d.Index, errors.ErrInvalidDistribution, format, values...)
		}
	)

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		name := strings.ToLower(fields[0])
		if len(name) < 3 || (name[:2] != "si" && name[:2] != "sp") {
			return parseFailure("unexpected card %q", fields[0])
		}
		index, err := strconv.Atoi(name[2:])
		if err != nil {
			return parseFailure("invalid card %q", fields[0])
		}
		if d.Index != 0 && d.Index != index {
			return parseFailure("mixed indices %d and %d", d.Index, index)
		}
		d.Index = index
		values := fields[1:]

		switch name[:2] {
		case "si":
			if siSeen {
				return parseFailure("duplicated si card")
			}
			siSeen = true
			if len(values) > 0 && validate.Letter(values[0]) {
				d.Option, values = values[0], values[1:]
			}
			if d.X, err = parseFloats(values); err != nil {
				return parseFailure("%v", err)
			}
		case "sp":
			if spSeen {
				return parseFailure("duplicated sp card")
			}
			spSeen = true
			d.Format = Integer
			for _, value := range values {
				if _, intErr := strconv.ParseInt(value, 10, 64); intErr != nil {
					d.Format = Float
				}
			}
			if d.Y, err = parseFloats(values); err != nil {
				return parseFailure("%v", err)
			}
		}
	}

	if !spSeen {
		return parseFailure("missing sp card")
	}
	if !siSeen {
		return parseCanned(d)
	}
	d.Kind = Tabulated
	return d, d.Validate()
}

func parseCanned(d Distribution) (Distribution, error) {
	invalid := func(format string, values ...interface{}) (Distribution, error) {
		return Distribution{}, errors.DistributionError(d.Index, errors.ErrInvalidDistribution, format, values...)
	}
	if len(d.Y) == 0 {
		return invalid("empty sp card")
	}
	if d.Y[0] != math.Trunc(d.Y[0]) {
		return invalid("sp function %v should be integer", d.Y[0])
	}
	params := d.Y[1:]
	switch int(d.Y[0]) {
	case wattFunction:
		if len(params) != 2 {
			return invalid("watt requires a and b, got %v", params)
		}
		return NewWatt(d.Index, params[0], params[1]), nil
	case maxwellianFunction:
		if len(params) != 1 {
			return invalid("maxwellian requires temperature, got %v", params)
		}
		return NewMaxwellian(d.Index, params[0]), nil
	}
	return Distribution{}, errors.DistributionError(d.Index, errors.ErrNotImplemented, "sp function %v", d.Y[0])
}

func parseFloats(values []string) ([]float64, error) {
	result := make([]float64, len(values))
	for i, value := range values {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q", value)
		}
		result[i] = v
	}
	return result, nil
}

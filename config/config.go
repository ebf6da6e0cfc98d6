// Package config provide encoder configuration from environment.
package config

import (
	"fmt"
	"strings"
)

// Flavor of simulator which consumes generated deck.
type Flavor string

const (
	// FlavorMCNP plain MCNP deck.
	FlavorMCNP Flavor = "mcnp"
	// FlavorPolimi MCNP-Polimi deck, enables ipol transport.
	FlavorPolimi Flavor = "polimi"
)

// Config represent encoder configuration.
type Config struct {
	LoggingLevel string

	Flavor Flavor
}

var availableLoggingLevels = []string{"panic", "fatal", "error", "warn", "info", "debug"}
var availableLoggingLevelsString = strings.Join(availableLoggingLevels, ", ")

var availableFlavors = []Flavor{FlavorMCNP, FlavorPolimi}

func validateLoggingLevel(loggingLevel string) bool {
	for _, l := range availableLoggingLevels {
		if l == loggingLevel {
			return true
		}
	}
	return false
}

func validateFlavor(flavor Flavor) bool {
	for _, f := range availableFlavors {
		if f == flavor {
			return true
		}
	}
	return false
}

// Check returns error describing first invalid field.
func (c Config) Check() error {
	if !validateLoggingLevel(c.LoggingLevel) {
		return fmt.Errorf("[config] invalid logging level %q, one of: %s", c.LoggingLevel, availableLoggingLevelsString)
	}
	if !validateFlavor(c.Flavor) {
		return fmt.Errorf("[config] invalid flavor %q", c.Flavor)
	}
	return nil
}

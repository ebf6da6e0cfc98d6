package config

import (
	"os"
	"strings"

	"github.com/yaptide/mcnp/log"
)

const (
	loggingLevelEnv = "MCNP_LOG_LEVEL"
	flavorEnv       = "MCNP_FLAVOR"
)

// Default configuration used when environment is empty.
var Default = Config{
	LoggingLevel: "warn",
	Flavor:       FlavorMCNP,
}

// SetupConfig read and check config from environment.
// Invalid values are reported and replaced by defaults.
func SetupConfig() Config {
	conf := Default

	if level := os.Getenv(loggingLevelEnv); level != "" {
		conf.LoggingLevel = strings.ToLower(level)
	}
	if !validateLoggingLevel(conf.LoggingLevel) {
		log.Error("[config] Logging level %q is not valid. Using default %s", conf.LoggingLevel, Default.LoggingLevel)
		conf.LoggingLevel = Default.LoggingLevel
	}

	if flavor := os.Getenv(flavorEnv); flavor != "" {
		conf.Flavor = Flavor(strings.ToLower(flavor))
	} else {
		log.Debug("[config] Flavor is not defined. Using default %s", Default.Flavor)
	}
	if !validateFlavor(conf.Flavor) {
		log.Error("[config] Flavor %q is not valid. Using default %s", conf.Flavor, Default.Flavor)
		conf.Flavor = Default.Flavor
	}

	level, err := log.ParseLevel(conf.LoggingLevel)
	if err != nil {
		level = log.LevelWarning
	}
	log.SetLoggerLevel(level)

	return conf
}

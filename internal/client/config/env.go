package config

import "github.com/caarlos0/env/v11"

// envPrefix namespaces our variables so the CLI can live alongside other
// tools reading the same shell environment.
const envPrefix = "SKYBRIEF_"

// parseEnv overlays Config with values from the environment. Variables that
// are not set leave the current value untouched. Panics on malformed values
// (e.g. an unparsable duration), matching the other overlay stages.
func parseEnv(cfg *Config) {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		panic(err)
	}
}

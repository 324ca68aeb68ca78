// Package config loads CLI configuration from layered sources:
// built-in defaults, then environment variables (SKYBRIEF_*), then an
// optional JSON file (-c/-config), then command-line flags. Each later
// source overrides the earlier ones.
package config

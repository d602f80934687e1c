// Package config loads mbdyn presets from YAML files and applies MBDYN_*
// environment overrides, optionally sourced from .env files.
package config

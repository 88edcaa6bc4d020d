// Package config loads, validates, and normalizes cleave's TOML configuration.
//
// Configuration is resolved from an explicit --config path, then
// ~/.config/cleave/config.toml, then ./cleave.toml, falling back to
// built-in defaults when no file exists.
package config

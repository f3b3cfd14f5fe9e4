// Package config normalizes and validates the settings of a foldean run.
//
// Settings arrive from command-line flags only; there is no configuration
// file. This package supplies the defaults, resolves the OS Downloads folder
// when no target directory is given, expands user paths (including tilde
// shortcuts), and rejects values the organizer cannot honour such as a scan
// depth above one. The effective settings can be rendered as TOML for
// `foldean config show`.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical log formats, and clear validation errors.
package config

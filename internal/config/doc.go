// Package config loads, normalizes, and validates tagcloud configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours environment overrides such as TAGCLOUD_LOG_LEVEL,
// optionally seeded from a .env file in the working directory.
//
// Always obtain settings through this package so commands receive sanitized
// paths, canonical log formats, and clear validation errors.
package config

// Package config loads, normalizes, and validates reelkit configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. Configuration covers the DCP-o-matic
// executable overrides, the subprocess timeout, the optional tool lock,
// and log output settings. Always obtain settings through this package so
// downstream code receives sanitized paths and clear validation errors.
package config

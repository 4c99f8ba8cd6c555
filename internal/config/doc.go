// Package config loads, normalizes, and validates subfix configuration from
// TOML, with XDG-style defaults and a project-local fallback file.
package config

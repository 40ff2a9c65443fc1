// Package config manages omt configuration persistence.
//
// It handles:
//   - The config.json document (custom theme repositories and settings)
//   - Default back-fill for top-level keys missing from a stored file
//   - Fail-safe loading: a missing or unreadable file never stops the tool
package config

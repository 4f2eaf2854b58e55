// Package config loads and merges the application configuration from
// environment variables, command-line flags, an optional JSON file, and
// built-in defaults.
//
// Sources are merged in priority order (env > flags > JSON > defaults) using
// a small builder on top of mergo: each source only fills fields the previous
// sources left at their zero value. The main entry point is
// [GetStructuredConfig], which also validates the merged result before the
// server starts.
package config

// Package config handles configuration loading, parsing, and validation
// from various sources (defaults, config files, environment variables and
// flags). The resulting Config is built once at startup and handed to each
// component, so nothing reads the process environment at request time.
package config

// Package config loads and validates the client configuration: the router
// endpoint (host, port, router id, API version, timezone override) and
// optional query defaults. Settings come from config.yml with .env /
// environment overrides.
package config

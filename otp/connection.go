package otp

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/theoremus-urban-solutions/otp-trip-client/config"
	"github.com/theoremus-urban-solutions/otp-trip-client/normalize"
)

// Version tags the router's API major version; it selects which field of
// an upstream error node holds the human-readable message.
type Version int

const (
	V1 Version = 1
	V2 Version = 2
)

// Options configures Connect.
type Options struct {
	Scheme   string // http (default) or https
	Host     string
	Port     int    // default 8080
	Router   string // router id, default "default"
	Version  int    // 1 (default) or 2
	TimeZone string // IANA name; empty means the process-local zone
	// SkipCheck disables the router reachability probe.
	SkipCheck bool
	// HTTPClient overrides the transport; cancellation, timeouts and
	// anything beyond a plain GET are its business.
	HTTPClient *http.Client
}

// OptionsFromConfig maps a loaded router configuration onto connect
// options.
func OptionsFromConfig(rc config.RouterConfig) Options {
	return Options{
		Scheme:   rc.Scheme,
		Host:     rc.Host,
		Port:     rc.Port,
		Router:   rc.Router,
		Version:  rc.Version,
		TimeZone: rc.TimeZone,
	}
}

// Connection holds the router endpoint, API version tag and effective
// timezone. Immutable after Connect; created once and read by every query,
// safe for concurrent callers.
type Connection struct {
	scheme     string
	host       string
	port       int
	router     string
	version    Version
	loc        *time.Location
	httpClient *http.Client
}

// Connect validates the options, resolves the timezone and, unless
// SkipCheck, probes the router endpoint once.
func Connect(ctx context.Context, opts Options) (*Connection, error) {
	if opts.Scheme == "" {
		opts.Scheme = "http"
	}
	if opts.Scheme != "http" && opts.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", opts.Scheme)
	}
	if opts.Host == "" {
		return nil, fmt.Errorf("host is required")
	}
	if opts.Port == 0 {
		opts.Port = 8080
	}
	if opts.Router == "" {
		opts.Router = "default"
	}
	if opts.Version == 0 {
		opts.Version = 1
	}
	if opts.Version != 1 && opts.Version != 2 {
		return nil, fmt.Errorf("unsupported API version %d: must be 1 or 2", opts.Version)
	}
	loc, err := normalize.ResolveLocation(opts.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", opts.TimeZone, err)
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	c := &Connection{
		scheme:     opts.Scheme,
		host:       opts.Host,
		port:       opts.Port,
		router:     opts.Router,
		version:    Version(opts.Version),
		loc:        loc,
		httpClient: client,
	}
	if !opts.SkipCheck {
		if err := c.CheckRouter(ctx); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RouterURL is the base URL of the configured router.
func (c *Connection) RouterURL() string {
	return c.scheme + "://" + c.host + ":" + strconv.Itoa(c.port) +
		"/otp/routers/" + c.router
}

// Version returns the API major version tag.
func (c *Connection) Version() Version { return c.version }

// Location returns the zone every epoch field is converted into.
func (c *Connection) Location() *time.Location { return c.loc }

// CheckRouter probes the router endpoint and reports whether it answered.
func (c *Connection) CheckRouter(ctx context.Context) error {
	if _, err := c.doGetOK(ctx, c.RouterURL()); err != nil {
		return fmt.Errorf("router check: %w", err)
	}
	return nil
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonld

package jsonld

import (
	"context"
	"log/slog"
	"time"
)

// Option configures a document at construction.
type Option func(*config)

// config holds collaborators injected into a document.
type config struct {
	probe    ImageProbe
	location *time.Location
	logger   *slog.Logger
	identity RequestIdentity
	ctx      context.Context
}

// WithIdentity sets serving host and request path used for default identifiers.
func WithIdentity(identity RequestIdentity) Option {
	return func(c *config) {
		c.identity = identity
	}
}

// WithContext sets context passed to the image probe.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithImageProbe sets image dimension resolver.
func WithImageProbe(probe ImageProbe) Option {
	return func(c *config) {
		if probe != nil {
			c.probe = probe
		}
	}
}

// WithTimeLocation sets time zone used to render dates.
func WithTimeLocation(loc *time.Location) Option {
	return func(c *config) {
		if loc != nil {
			c.location = loc
		}
	}
}

// WithLogger sets logger receiving debug records for rejected values.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// newConfig applies options over defaults.
func newConfig(opts []Option) config {
	c := config{
		probe:    DefaultProbe{},
		location: time.Local,
		logger:   slog.New(slog.DiscardHandler),
		ctx:      context.Background(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}

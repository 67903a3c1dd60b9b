// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respkit

import (
	"time"

	"go.uber.org/zap"

	"code.hybscloud.com/respkit/internal/metrics"
)

// Options configures a Connection (and, transitively, a Client built on one).
type Options struct {
	// InitialBufferSize is the read buffer's starting capacity.
	InitialBufferSize int

	// MaxBufferSize caps how large the read buffer may grow while assembling
	// a single frame. Exceeding it is an *Error{Kind: KindInvalidFrame}.
	MaxBufferSize int

	// WriteBufferSize sizes the bufio.Writer wrapping the connection's write side.
	WriteBufferSize int

	// Logger receives structured diagnostics for connection lifecycle events.
	// Defaults to zap.NewNop() so callers who don't configure one pay nothing.
	Logger *zap.Logger

	// Metrics receives connection-level counters. Defaults to metrics.Noop(),
	// a collector on a private registry that is never exported.
	Metrics *metrics.Collector

	// DialTimeout bounds Dial's underlying net.Dialer.Timeout. Zero means no timeout,
	// matching spec's non-goal of not imposing operation timeouts by default.
	DialTimeout time.Duration
}

const (
	defaultInitialBufferSize = 4 * 1024
	defaultMaxBufferSize     = 512 * 1024 * 1024
	defaultWriteBufferSize   = 4 * 1024
)

var defaultOptions = Options{
	InitialBufferSize: defaultInitialBufferSize,
	MaxBufferSize:     defaultMaxBufferSize,
	WriteBufferSize:   defaultWriteBufferSize,
	Logger:            zap.NewNop(),
	Metrics:           metrics.Noop(),
}

// Option configures a Connection or Client at construction time.
type Option func(*Options)

// WithInitialBufferSize sets the read buffer's starting capacity.
func WithInitialBufferSize(n int) Option {
	return func(o *Options) { o.InitialBufferSize = n }
}

// WithMaxBufferSize caps how large a single frame's backing buffer may grow.
func WithMaxBufferSize(n int) Option {
	return func(o *Options) { o.MaxBufferSize = n }
}

// WithWriteBufferSize sizes the buffered writer wrapping the connection.
func WithWriteBufferSize(n int) Option {
	return func(o *Options) { o.WriteBufferSize = n }
}

// WithLogger attaches a *zap.Logger for connection lifecycle diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics attaches a metrics collector to observe connection activity.
func WithMetrics(c *metrics.Collector) Option {
	return func(o *Options) {
		if c != nil {
			o.Metrics = c
		}
	}
}

// WithDialTimeout bounds the Dial helper's connection attempt.
func WithDialTimeout(d time.Duration) Option {
	return func(o *Options) { o.DialTimeout = d }
}

func buildOptions(opts []Option) Options {
	o := defaultOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

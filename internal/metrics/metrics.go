// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package metrics wires connection-level activity into Prometheus counters.
//
// Each Collector owns a private prometheus.Registry rather than registering
// into prometheus.DefaultRegisterer, so multiple Clients in the same process
// never collide over metric names; callers that want the counters scraped
// pass the Registry to their own exporter.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collector holds the counters a Connection reports against.
type Collector struct {
	registry *prometheus.Registry

	framesRead     *prometheus.CounterVec
	framesWritten  *prometheus.CounterVec
	bytesRead      prometheus.Counter
	bytesWritten   prometheus.Counter
	readErrors     *prometheus.CounterVec
	writeErrors    *prometheus.CounterVec
	bufferGrowths  prometheus.Counter
}

// New returns a Collector backed by a fresh registry.
func New() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		registry: reg,
		framesRead: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "respkit",
			Subsystem: "connection",
			Name:      "frames_read_total",
			Help:      "Total number of frames successfully parsed from the wire, by kind.",
		}, []string{"kind"}),
		framesWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "respkit",
			Subsystem: "connection",
			Name:      "frames_written_total",
			Help:      "Total number of frames serialized to the wire, by kind.",
		}, []string{"kind"}),
		bytesRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "respkit",
			Subsystem: "connection",
			Name:      "bytes_read_total",
			Help:      "Total bytes read from the underlying stream.",
		}),
		bytesWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "respkit",
			Subsystem: "connection",
			Name:      "bytes_written_total",
			Help:      "Total bytes written to the underlying stream.",
		}),
		readErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "respkit",
			Subsystem: "connection",
			Name:      "read_errors_total",
			Help:      "Total read-side failures, by error kind.",
		}, []string{"kind"}),
		writeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "respkit",
			Subsystem: "connection",
			Name:      "write_errors_total",
			Help:      "Total write-side failures, by error kind.",
		}, []string{"kind"}),
		bufferGrowths: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "respkit",
			Subsystem: "connection",
			Name:      "buffer_growths_total",
			Help:      "Total number of times a connection's read buffer grew.",
		}),
	}
	reg.MustRegister(c.framesRead, c.framesWritten, c.bytesRead, c.bytesWritten, c.readErrors, c.writeErrors, c.bufferGrowths)
	return c
}

// Noop returns a Collector whose counters are never exported; it costs the
// same as New but signals intent at call sites that don't wire a registry.
func Noop() *Collector { return New() }

// Registry exposes the collector's private registry for an exporter to scrape.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

func (c *Collector) FrameRead(kind string)    { c.framesRead.WithLabelValues(kind).Inc() }
func (c *Collector) FrameWritten(kind string) { c.framesWritten.WithLabelValues(kind).Inc() }
func (c *Collector) BytesRead(n int)          { c.bytesRead.Add(float64(n)) }
func (c *Collector) BytesWritten(n int)       { c.bytesWritten.Add(float64(n)) }
func (c *Collector) ReadError(kind string)    { c.readErrors.WithLabelValues(kind).Inc() }
func (c *Collector) WriteError(kind string)   { c.writeErrors.WithLabelValues(kind).Inc() }
func (c *Collector) BufferGrowth()            { c.bufferGrowths.Inc() }

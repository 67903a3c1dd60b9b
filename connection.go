// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respkit

import (
	"bufio"
	"context"
	"io"
	"net"
	"time"

	"go.uber.org/zap"

	"code.hybscloud.com/respkit/internal/metrics"
)

// Connection is a framed RESP2/RESP3 stream over a single net.Conn. It is
// not safe for concurrent use: one goroutine must own ReadFrame and one
// (possibly the same) must own WriteFrame at a time, matching spec §5's
// single-owner concurrency model. Callers that need request/response
// multiplexing compose a Connection behind their own synchronization (see
// package pool for one such composition).
type Connection struct {
	conn net.Conn
	bw   *bufio.Writer

	opts Options
	log  *zap.Logger
	metr *metrics.Collector

	// buf is a sliding window over an undelimited byte stream: bytes in
	// [0, start) have been consumed by a returned frame, [start, end) are
	// buffered and not yet parsed, and [end, len(buf)) is free space ready
	// for the next read. Compaction slides the unparsed window back to
	// offset 0 before growing, so steady-state operation reuses the same
	// backing array indefinitely.
	buf   []byte
	start int
	end   int
}

// DialConnection opens a TCP connection to addr and wraps it in a Connection.
func DialConnection(ctx context.Context, addr string, opts ...Option) (*Connection, error) {
	o := buildOptions(opts)
	d := net.Dialer{Timeout: o.DialTimeout}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, ioError("dial "+addr, err)
	}
	return NewConnection(conn, opts...), nil
}

// NewConnection wraps an already-established net.Conn. The caller remains
// responsible for closing conn (Connection.Close does this for them).
func NewConnection(conn net.Conn, opts ...Option) *Connection {
	o := buildOptions(opts)
	return &Connection{
		conn: conn,
		bw:   bufio.NewWriterSize(conn, o.WriteBufferSize),
		opts: o,
		log:  o.Logger,
		metr: o.Metrics,
		buf:  make([]byte, o.InitialBufferSize),
	}
}

// Close closes the underlying connection.
func (c *Connection) Close() error {
	return c.conn.Close()
}

// LocalAddr returns the underlying connection's local address.
func (c *Connection) LocalAddr() net.Addr { return c.conn.LocalAddr() }

// RemoteAddr returns the underlying connection's remote address.
func (c *Connection) RemoteAddr() net.Addr { return c.conn.RemoteAddr() }

// SetDeadline forwards to the underlying net.Conn; respkit itself never
// sets deadlines (no implicit timeouts, per spec's non-goals), but callers
// that want one may set it directly.
func (c *Connection) SetDeadline(t time.Time) error { return c.conn.SetDeadline(t) }

// ReadFrame blocks until one complete frame has been read from the
// connection, implementing spec §4.3's read loop: attempt to parse the
// buffered window, and only read more bytes when the parser reports
// IncompleteFrame. A frame spanning more than Options.MaxBufferSize bytes
// is reported as InvalidFrame rather than growing without bound.
func (c *Connection) ReadFrame() (*Frame, error) {
	for {
		frame, consumed, err := ParseFrame(c.buf[c.start:c.end])
		if err == nil {
			c.start += consumed
			if c.start == c.end {
				c.start, c.end = 0, 0
			}
			c.metr.FrameRead(frame.Kind.String())
			return frame, nil
		}
		if err != errIncomplete {
			return nil, err
		}

		if err := c.ensureSpace(); err != nil {
			return nil, err
		}

		n, rerr := c.conn.Read(c.buf[c.end:])
		if n > 0 {
			c.end += n
			c.metr.BytesRead(n)
		}
		if rerr != nil {
			if rerr == io.EOF {
				if c.start == c.end {
					return nil, ioError("connection closed", io.EOF)
				}
				return nil, ioError("connection closed mid-frame", io.ErrUnexpectedEOF)
			}
			c.metr.ReadError(KindIO.String())
			return nil, ioError("read", rerr)
		}
	}
}

// ensureSpace makes room for at least one more read, compacting the
// buffered-but-unparsed window to the front and growing geometrically (cap
// doubling) when that isn't enough. It fails closed with InvalidFrame once
// MaxBufferSize is reached, rather than growing without bound.
func (c *Connection) ensureSpace() error {
	if c.end < len(c.buf) {
		return nil
	}
	if c.start > 0 {
		copy(c.buf, c.buf[c.start:c.end])
		c.end -= c.start
		c.start = 0
		if c.end < len(c.buf) {
			return nil
		}
	}
	if len(c.buf) >= c.opts.MaxBufferSize {
		return invalidFrame("frame exceeds maximum buffer size")
	}
	newSize := len(c.buf) * 2
	if newSize > c.opts.MaxBufferSize {
		newSize = c.opts.MaxBufferSize
	}
	grown := make([]byte, newSize)
	copy(grown, c.buf[c.start:c.end])
	c.buf = grown
	c.log.Debug("grew connection read buffer", zap.Int("new_size", newSize))
	c.metr.BufferGrowth()
	return nil
}

// WriteFrame serializes f and writes it to the connection, flushing
// immediately so the request reaches the wire before WriteFrame returns
// (spec §4.4). respkit issues commands one at a time and never pipelines
// internally, so an unflushed buffered write is never observable.
func (c *Connection) WriteFrame(f *Frame) error {
	encoded, err := Serialize(f)
	if err != nil {
		return err
	}
	if _, err := c.bw.Write(encoded); err != nil {
		c.metr.WriteError(KindIO.String())
		return ioError("write", err)
	}
	if err := c.bw.Flush(); err != nil {
		return ioError("flush", err)
	}
	c.metr.BytesWritten(len(encoded))
	c.metr.FrameWritten(f.Kind.String())
	return nil
}

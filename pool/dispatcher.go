// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pool serializes concurrent access to a single respkit.Client
// through a bounded queue, rather than pooling multiple connections.
//
// respkit's core deliberately does not pool connections (see the doc on
// the respkit.Connection type); Dispatcher is the additive layer spec's
// design notes describe sitting above it. It owns exactly one
// *respkit.Client and one worker goroutine, so the client's single-owner
// requirement is satisfied no matter how many goroutines call Do
// concurrently. Admission is capped with a semaphore so a burst of callers
// queues instead of growing an unbounded number of pending requests.
package pool

import (
	"context"

	"golang.org/x/sync/semaphore"

	"code.hybscloud.com/respkit"
	"code.hybscloud.com/respkit/command"
)

// Dispatcher serializes command execution against one respkit.Client.
type Dispatcher struct {
	client *respkit.Client
	sem    *semaphore.Weighted
	reqs   chan request
	done   chan struct{}
}

type request struct {
	ctx  context.Context
	cmd  command.Command
	resp chan response
}

type response struct {
	frame *respkit.Frame
	err   error
}

// NewDispatcher starts a Dispatcher backed by client. maxInFlight bounds
// how many callers may be waiting on Do at once; additional callers block
// in Do until a slot frees up. queueDepth sizes the internal request
// channel; it should be at least maxInFlight to avoid callers blocking on
// the channel send itself once they've already acquired a semaphore slot.
func NewDispatcher(client *respkit.Client, maxInFlight, queueDepth int64) *Dispatcher {
	d := &Dispatcher{
		client: client,
		sem:    semaphore.NewWeighted(maxInFlight),
		reqs:   make(chan request, queueDepth),
		done:   make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	for req := range d.reqs {
		frame, err := d.client.Do(req.cmd)
		req.resp <- response{frame: frame, err: err}
	}
	close(d.done)
}

// Do queues cmd for execution and blocks until its response arrives or ctx
// is cancelled. Cancelling ctx after the command has already been handed
// to the underlying connection does not abort the in-flight write or
// read, and respkit does not drain an abandoned response, so the caller
// must then discard the whole Dispatcher (and the Client under it), since
// its Connection no longer has a known protocol-level boundary.
func (d *Dispatcher) Do(ctx context.Context, cmd command.Command) (*respkit.Frame, error) {
	if err := d.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer d.sem.Release(1)

	req := request{ctx: ctx, cmd: cmd, resp: make(chan response, 1)}
	select {
	case d.reqs <- req:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case resp := <-req.resp:
		return resp.frame, resp.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close stops accepting new work and waits for the worker goroutine to
// drain in-flight requests already queued. It does not close the
// underlying Client; callers retain ownership of that.
func (d *Dispatcher) Close() {
	close(d.reqs)
	<-d.done
}

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package command builds request Frames for the Redis commands respkit
// knows about. Each command type is a small value object; Frame() renders
// it once, at the point Client.Do dispatches it, not at construction time.
package command

import "code.hybscloud.com/respkit"

// Command builds the request frame for a single Redis command invocation.
//
// respkit settled on this single-method interface instead of the two
// competing shapes the original client code tried (a free function per
// command, and a fallible TryInto-style conversion): a Command is always
// representable as a frame, so Frame never needs to return an error.
type Command interface {
	Frame() *respkit.Frame
}

// array builds the Array-of-BulkString frame shared by every command: the
// verb followed by its arguments, each already rendered as bytes.
func array(verb string, args ...[]byte) *respkit.Frame {
	children := make([]*respkit.Frame, 0, len(args)+1)
	children = append(children, respkit.NewBulkStringFrom(verb))
	for _, a := range args {
		children = append(children, respkit.NewBulkString(a))
	}
	return respkit.NewArray(children...)
}

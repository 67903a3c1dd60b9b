// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package command

import "code.hybscloud.com/respkit"

// Subscribe is a Redis SUBSCRIBE command over one or more channels.
//
// A subscribed Connection receives Push frames for matching messages;
// respkit does not run a background loop to dispatch them; callers call
// Connection.ReadFrame in a loop for as long as the subscription is active.
type Subscribe struct {
	Channels []string
}

func (c Subscribe) Frame() *respkit.Frame {
	args := make([][]byte, len(c.Channels))
	for i, ch := range c.Channels {
		args[i] = []byte(ch)
	}
	return array("SUBSCRIBE", args...)
}

// Unsubscribe is a Redis UNSUBSCRIBE command. An empty Channels list
// unsubscribes from all channels, matching Redis's own semantics.
type Unsubscribe struct {
	Channels []string
}

func (c Unsubscribe) Frame() *respkit.Frame {
	args := make([][]byte, len(c.Channels))
	for i, ch := range c.Channels {
		args[i] = []byte(ch)
	}
	return array("UNSUBSCRIBE", args...)
}

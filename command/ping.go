// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package command

import "code.hybscloud.com/respkit"

// Ping is a Redis PING command. Msg is echoed back by the server when
// non-nil; when nil the server replies with a bare PONG.
type Ping struct {
	Msg []byte
}

func (c Ping) Frame() *respkit.Frame {
	if c.Msg == nil {
		return array("PING")
	}
	return array("PING", c.Msg)
}

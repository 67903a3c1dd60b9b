// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package command

import (
	"strconv"

	"code.hybscloud.com/respkit"
)

// Hello is a Redis HELLO command. Proto selects the protocol version to
// negotiate (2 or 3); zero omits the argument and keeps the server's
// current protocol. When Password is non-empty, Username and Password are
// sent as the AUTH clause, with an empty Username sent as "default"; when
// Password is empty no AUTH clause is sent and Username is ignored. respkit
// does not itself implement any auth negotiation, per spec's non-goals.
type Hello struct {
	Proto    uint8
	Username string
	Password string
}

func (c Hello) Frame() *respkit.Frame {
	args := make([][]byte, 0, 4)
	if c.Proto != 0 {
		args = append(args, []byte(strconv.FormatUint(uint64(c.Proto), 10)))
	}
	if c.Password != "" {
		args = append(args, []byte("AUTH"))
		if c.Username != "" {
			args = append(args, []byte(c.Username))
		} else {
			args = append(args, []byte("default"))
		}
		args = append(args, []byte(c.Password))
	}
	return array("HELLO", args...)
}

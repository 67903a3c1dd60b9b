// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package command

import "code.hybscloud.com/respkit"

// LPush is a Redis LPUSH command.
type LPush struct {
	Key    string
	Values [][]byte
}

func (c LPush) Frame() *respkit.Frame {
	args := make([][]byte, 0, len(c.Values)+1)
	args = append(args, []byte(c.Key))
	args = append(args, c.Values...)
	return array("LPUSH", args...)
}

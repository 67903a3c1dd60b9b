// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package command

import "code.hybscloud.com/respkit"

// TTL is a Redis TTL command.
type TTL struct {
	Key string
}

func (c TTL) Frame() *respkit.Frame {
	return array("TTL", []byte(c.Key))
}

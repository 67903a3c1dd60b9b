// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package command

import "code.hybscloud.com/respkit"

// Get is a Redis GET command.
type Get struct {
	Key string
}

func (c Get) Frame() *respkit.Frame {
	return array("GET", []byte(c.Key))
}

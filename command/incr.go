// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package command

import "code.hybscloud.com/respkit"

// Incr is a Redis INCR command.
type Incr struct {
	Key string
}

func (c Incr) Frame() *respkit.Frame {
	return array("INCR", []byte(c.Key))
}

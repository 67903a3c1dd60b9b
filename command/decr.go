// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package command

import "code.hybscloud.com/respkit"

// Decr is a Redis DECR command.
type Decr struct {
	Key string
}

func (c Decr) Frame() *respkit.Frame {
	return array("DECR", []byte(c.Key))
}

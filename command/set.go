// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package command

import "code.hybscloud.com/respkit"

// Set is a Redis SET command.
type Set struct {
	Key   string
	Value []byte
}

func (c Set) Frame() *respkit.Frame {
	return array("SET", []byte(c.Key), c.Value)
}

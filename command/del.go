// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package command

import "code.hybscloud.com/respkit"

// Del is a Redis DEL command over one or more keys.
type Del struct {
	Keys []string
}

func (c Del) Frame() *respkit.Frame {
	args := make([][]byte, len(c.Keys))
	for i, k := range c.Keys {
		args[i] = []byte(k)
	}
	return array("DEL", args...)
}

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package command

import "code.hybscloud.com/respkit"

// Exists is a Redis EXISTS command over one or more keys.
type Exists struct {
	Keys []string
}

func (c Exists) Frame() *respkit.Frame {
	args := make([][]byte, len(c.Keys))
	for i, k := range c.Keys {
		args[i] = []byte(k)
	}
	return array("EXISTS", args...)
}

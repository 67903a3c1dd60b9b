// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package command

import (
	"strconv"

	"code.hybscloud.com/respkit"
)

// RPop is a Redis RPOP command. Count of zero omits the count argument and
// pops a single element; a positive count pops up to that many.
type RPop struct {
	Key   string
	Count int64
}

func (c RPop) Frame() *respkit.Frame {
	if c.Count == 0 {
		return array("RPOP", []byte(c.Key))
	}
	return array("RPOP", []byte(c.Key), []byte(strconv.FormatInt(c.Count, 10)))
}

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package command

import (
	"strconv"

	"code.hybscloud.com/respkit"
)

// LRange is a Redis LRANGE command.
type LRange struct {
	Key         string
	Start, Stop int64
}

func (c LRange) Frame() *respkit.Frame {
	return array("LRANGE", []byte(c.Key),
		[]byte(strconv.FormatInt(c.Start, 10)),
		[]byte(strconv.FormatInt(c.Stop, 10)))
}

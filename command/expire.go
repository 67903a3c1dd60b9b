// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package command

import (
	"strconv"

	"code.hybscloud.com/respkit"
)

// Expire is a Redis EXPIRE command.
type Expire struct {
	Key     string
	Seconds int64
}

func (c Expire) Frame() *respkit.Frame {
	return array("EXPIRE", []byte(c.Key), []byte(strconv.FormatInt(c.Seconds, 10)))
}

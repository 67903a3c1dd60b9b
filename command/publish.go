// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package command

import "code.hybscloud.com/respkit"

// Publish is a Redis PUBLISH command.
//
// The original client left Publish an empty struct with no Frame
// conversion implemented; respkit completes it here.
type Publish struct {
	Channel string
	Message []byte
}

func (c Publish) Frame() *respkit.Frame {
	return array("PUBLISH", []byte(c.Channel), c.Message)
}

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package command

import (
	"strconv"

	"code.hybscloud.com/respkit"
)

// ExpiryKind selects GetEx's optional expiration clause.
type ExpiryKind uint8

const (
	// ExpiryNone omits the expiration clause entirely.
	ExpiryNone ExpiryKind = iota
	ExpiryEX
	ExpiryPX
	ExpiryEXAT
	ExpiryPXAT
	ExpiryPersist
)

// Expiry is GetEx's optional expiration clause. Kind selects how Value is
// interpreted; ExpiryNone and ExpiryPersist ignore Value.
type Expiry struct {
	Kind  ExpiryKind
	Value int64
}

// GetEx is a Redis GETEX command: GET with an optional expiration update.
type GetEx struct {
	Key    string
	Expiry Expiry
}

func (c GetEx) Frame() *respkit.Frame {
	switch c.Expiry.Kind {
	case ExpiryEX:
		return array("GETEX", []byte(c.Key), []byte("EX"), []byte(strconv.FormatInt(c.Expiry.Value, 10)))
	case ExpiryPX:
		return array("GETEX", []byte(c.Key), []byte("PX"), []byte(strconv.FormatInt(c.Expiry.Value, 10)))
	case ExpiryEXAT:
		return array("GETEX", []byte(c.Key), []byte("EXAT"), []byte(strconv.FormatInt(c.Expiry.Value, 10)))
	case ExpiryPXAT:
		return array("GETEX", []byte(c.Key), []byte("PXAT"), []byte(strconv.FormatInt(c.Expiry.Value, 10)))
	case ExpiryPersist:
		return array("GETEX", []byte(c.Key), []byte("PERSIST"))
	default:
		return array("GETEX", []byte(c.Key))
	}
}

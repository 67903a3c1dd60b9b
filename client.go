// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respkit

import (
	"context"

	"code.hybscloud.com/respkit/command"
)

// Client is a façade over a single Connection exposing one typed method
// per supported command, plus the generic Do escape hatch for anything
// else. Like Connection, a Client is single-owner: it issues one request
// and waits for its one response before the next call may begin. Callers
// that need to share a Client across goroutines should serialize their
// own access, or use package pool.
type Client struct {
	conn *Connection
}

// NewClient wraps an existing Connection.
func NewClient(conn *Connection) *Client { return &Client{conn: conn} }

// Dial opens a connection to addr and wraps it in a Client. Use
// DialConnection instead for direct frame-level access.
func Dial(ctx context.Context, addr string, opts ...Option) (*Client, error) {
	conn, err := DialConnection(ctx, addr, opts...)
	if err != nil {
		return nil, err
	}
	return NewClient(conn), nil
}

// Close closes the underlying connection.
func (c *Client) Close() error { return c.conn.Close() }

// Conn exposes the underlying Connection for callers that need to issue a
// command this façade has no typed method for.
func (c *Client) Conn() *Connection { return c.conn }

// Do sends cmd and returns its raw response frame, without any coercion.
// Every typed method on Client is built on top of Do.
func (c *Client) Do(cmd command.Command) (*Frame, error) {
	if err := c.conn.WriteFrame(cmd.Frame()); err != nil {
		return nil, err
	}
	return c.conn.ReadFrame()
}

// Ping issues PING, optionally with a message the server echoes back.
func (c *Client) Ping(msg []byte) ([]byte, error) {
	resp, err := c.Do(command.Ping{Msg: msg})
	if err != nil {
		return nil, err
	}
	b, _, err := ToBytes(resp)
	if err == nil {
		return b, nil
	}
	// RESP2 servers answer a bare PING with +PONG, a SimpleString; accept it.
	if resp.Kind == KindSimpleString {
		return resp.Str, nil
	}
	return nil, err
}

// Get issues GET. ok is false when the key does not exist.
func (c *Client) Get(key string) (value []byte, ok bool, err error) {
	resp, err := c.Do(command.Get{Key: key})
	if err != nil {
		return nil, false, err
	}
	return ToBytes(resp)
}

// Set issues SET.
func (c *Client) Set(key string, value []byte) error {
	resp, err := c.Do(command.Set{Key: key, Value: value})
	if err != nil {
		return err
	}
	return ToOK(resp)
}

// Del issues DEL and returns the number of keys removed.
func (c *Client) Del(keys ...string) (int64, error) {
	resp, err := c.Do(command.Del{Keys: keys})
	if err != nil {
		return 0, err
	}
	return ToInt64(resp)
}

// Exists issues EXISTS and returns the number of given keys that exist.
func (c *Client) Exists(keys ...string) (int64, error) {
	resp, err := c.Do(command.Exists{Keys: keys})
	if err != nil {
		return 0, err
	}
	return ToInt64(resp)
}

// Incr issues INCR and returns the key's value after incrementing.
func (c *Client) Incr(key string) (int64, error) {
	resp, err := c.Do(command.Incr{Key: key})
	if err != nil {
		return 0, err
	}
	return ToInt64(resp)
}

// Decr issues DECR and returns the key's value after decrementing.
func (c *Client) Decr(key string) (int64, error) {
	resp, err := c.Do(command.Decr{Key: key})
	if err != nil {
		return 0, err
	}
	return ToInt64(resp)
}

// Expire issues EXPIRE and reports whether the timeout was set.
func (c *Client) Expire(key string, seconds int64) (bool, error) {
	resp, err := c.Do(command.Expire{Key: key, Seconds: seconds})
	if err != nil {
		return false, err
	}
	return ToBool(resp)
}

// TTL issues TTL and returns the key's remaining time to live in seconds
// (-1 if the key has no expiry, -2 if the key does not exist).
func (c *Client) TTL(key string) (int64, error) {
	resp, err := c.Do(command.TTL{Key: key})
	if err != nil {
		return 0, err
	}
	return ToInt64(resp)
}

// GetEx issues GETEX.
func (c *Client) GetEx(key string, expiry command.Expiry) (value []byte, ok bool, err error) {
	resp, err := c.Do(command.GetEx{Key: key, Expiry: expiry})
	if err != nil {
		return nil, false, err
	}
	return ToBytes(resp)
}

// Hello issues HELLO and returns the server's greeting as a string-keyed map.
func (c *Client) Hello(proto uint8, username, password string) (map[string]*Frame, error) {
	resp, err := c.Do(command.Hello{Proto: proto, Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	return ToStringMap(resp)
}

// LPush issues LPUSH and returns the list's length after the push.
func (c *Client) LPush(key string, values ...[]byte) (int64, error) {
	resp, err := c.Do(command.LPush{Key: key, Values: values})
	if err != nil {
		return 0, err
	}
	return ToInt64(resp)
}

// RPush issues RPUSH and returns the list's length after the push.
func (c *Client) RPush(key string, values ...[]byte) (int64, error) {
	resp, err := c.Do(command.RPush{Key: key, Values: values})
	if err != nil {
		return 0, err
	}
	return ToInt64(resp)
}

// LPop issues LPOP. A zero count pops at most one element and returns it
// directly; a positive count pops up to that many and returns them all.
func (c *Client) LPop(key string, count int64) ([][]byte, error) {
	resp, err := c.Do(command.LPop{Key: key, Count: count})
	if err != nil {
		return nil, err
	}
	if count == 0 {
		b, ok, err := ToBytes(resp)
		if err != nil || !ok {
			return nil, err
		}
		return [][]byte{b}, nil
	}
	return ToBytesSlice(resp)
}

// RPop issues RPOP with the same calling convention as LPop.
func (c *Client) RPop(key string, count int64) ([][]byte, error) {
	resp, err := c.Do(command.RPop{Key: key, Count: count})
	if err != nil {
		return nil, err
	}
	if count == 0 {
		b, ok, err := ToBytes(resp)
		if err != nil || !ok {
			return nil, err
		}
		return [][]byte{b}, nil
	}
	return ToBytesSlice(resp)
}

// LRange issues LRANGE.
func (c *Client) LRange(key string, start, stop int64) ([][]byte, error) {
	resp, err := c.Do(command.LRange{Key: key, Start: start, Stop: stop})
	if err != nil {
		return nil, err
	}
	return ToBytesSlice(resp)
}

// Publish issues PUBLISH and returns the number of subscribers that
// received the message.
func (c *Client) Publish(channel string, message []byte) (int64, error) {
	resp, err := c.Do(command.Publish{Channel: channel, Message: message})
	if err != nil {
		return 0, err
	}
	return ToInt64(resp)
}

// Subscribe issues SUBSCRIBE. Once subscribed, the connection is no
// longer usable for ordinary request/response commands: callers must
// drive Conn().ReadFrame in a loop to receive Push frames until
// Unsubscribe is issued.
func (c *Client) Subscribe(channels ...string) error {
	return c.conn.WriteFrame(command.Subscribe{Channels: channels}.Frame())
}

// Unsubscribe issues UNSUBSCRIBE. An empty channels list unsubscribes
// from all channels.
func (c *Client) Unsubscribe(channels ...string) error {
	return c.conn.WriteFrame(command.Unsubscribe{Channels: channels}.Frame())
}


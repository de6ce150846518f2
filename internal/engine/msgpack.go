// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// msgpack.go — binary engine using MessagePack encoding. Implements Engine
// but not JSONEngine: its output is not JSON, so reformatting and validation
// of raw documents are unavailable.

package engine

import "github.com/vmihailenco/msgpack/v5"

// MsgPack is a high-performance binary codec using MessagePack encoding.
type MsgPack struct{}

// Marshal serializes v to MessagePack bytes.
func (MsgPack) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal deserializes MessagePack bytes into v.
func (MsgPack) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}

// Name returns "msgpack".
func (MsgPack) Name() string { return "msgpack" }

func init() {
	if err := Register("msgpack", MsgPack{}); err != nil {
		panic(err)
	}
}

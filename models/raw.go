// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// RawData is a JSON payload whose shape depends on the message type. It is
// decoded lazily with Decode.
type RawData []byte

// MarshalJSON implements json.Marshaler.
func (r RawData) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *RawData) UnmarshalJSON(b []byte) error {
	*r = append((*r)[:0], b...)
	return nil
}

// Empty reports whether the payload is absent or JSON null.
func (r RawData) Empty() bool {
	trimmed := bytes.TrimSpace(r)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// Decode unmarshals the payload into v. An empty payload leaves v untouched.
func (r RawData) Decode(v any) error {
	if r.Empty() {
		return nil
	}
	return json.Unmarshal(r, v)
}

func marshalRaw(v any) (RawData, error) {
	if raw, ok := v.(RawData); ok {
		return raw, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return RawData(b), nil
}

// ItemID identifies a clipboard item. The service may encode ids as JSON
// strings or numbers; both decode into the same value.
type ItemID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *ItemID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ItemID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ItemID(n.String())
	return nil
}

// String implements fmt.Stringer.
func (id ItemID) String() string {
	return string(id)
}

// Int64 returns the numeric form of the id when it has one.
func (id ItemID) Int64() (int64, bool) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	return n, err == nil
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Option and its ordered Attributes.
package model

import "bytes"

// Attribute is one captured keyword argument of a declaration.
type Attribute struct {
	Name  string
	Value string
}

// Attributes is the ordered attribute name to text mapping of an Option.
type Attributes []Attribute

// Get returns the value stored under name.
func (a Attributes) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Set stores value under name, replacing an existing entry in place.
func (a *Attributes) Set(name, value string) {
	for i := range *a {
		if (*a)[i].Name == name {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, Attribute{Name: name, Value: value})
}

// Map returns an unordered copy of the attributes.
func (a Attributes) Map() map[string]string {
	out := make(map[string]string, len(a))
	for _, attr := range a {
		out[attr.Name] = attr.Value
	}
	return out
}

// MarshalJSON encodes the attributes as a JSON object in declaration order.
func (a Attributes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := a.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (a Attributes) writeJSON(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	for i, attr := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(buf, attr.Name); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := writeString(buf, attr.Value); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

// Option is one declared option.
type Option struct {
	Identifier string
	Attributes Attributes
}

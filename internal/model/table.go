// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Table that accumulates Options over a single run of a
// declaration routine. A Table is owned by one run and is not safe for
// concurrent use.
package model

import (
	"bytes"
	"encoding/json"
)

// Table maps option identifiers to Options, keeping first-declaration order.
type Table struct {
	order   []string
	options map[string]Option
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{options: make(map[string]Option)}
}

// Put stores opt under its identifier. An existing entry is replaced and keeps
// its position; replaced reports whether that happened.
func (t *Table) Put(opt Option) (replaced bool) {
	if _, replaced = t.options[opt.Identifier]; !replaced {
		t.order = append(t.order, opt.Identifier)
	}
	t.options[opt.Identifier] = opt
	return replaced
}

// Get returns the Option stored under identifier.
func (t *Table) Get(identifier string) (Option, bool) {
	opt, ok := t.options[identifier]
	return opt, ok
}

// Len returns the number of distinct identifiers.
func (t *Table) Len() int {
	return len(t.order)
}

// Identifiers returns the identifiers in table order.
func (t *Table) Identifiers() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Map returns an unordered identifier -> attribute map copy of the table.
func (t *Table) Map() map[string]map[string]string {
	out := make(map[string]map[string]string, len(t.order))
	for _, id := range t.order {
		out[id] = t.options[id].Attributes.Map()
	}
	return out
}

// MarshalJSON encodes the table as
// {"<identifier>": {"<attribute>": "<value>", ...}, ...} in table order.
func (t *Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range t.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(&buf, id); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := t.options[id].Attributes.writeJSON(&buf); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeString appends s as a JSON string without HTML escaping; help texts
// routinely contain '<' and '&'.
func writeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}

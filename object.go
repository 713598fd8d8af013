// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonld

package jsonld

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/goccy/go-json"
)

// Object is an insertion-ordered property map serialized as a JSON object.
//
// Values are one of string, int, float64, []string, *Object, []*Object or *Cell.
// Overwriting an existing key keeps its original position.
type Object struct {
	values map[string]any
	keys   []string
}

// NewObject returns an empty property map.
func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

// newTypedObject returns a property map seeded with @type.
func newTypedObject(schemaType string) *Object {
	object := NewObject()
	object.Set("@type", schemaType)
	return object
}

// Set stores value under key.
func (o *Object) Set(key string, value any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}

	o.values[key] = value
}

// Get returns value stored under key.
func (o *Object) Get(key string) (any, bool) {
	value, ok := o.values[key]
	return value, ok
}

// Has reports whether key is set.
func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Text returns string value stored under key or empty string.
func (o *Object) Text(key string) string {
	value, _ := o.values[key].(string)
	return value
}

// Delete removes key and its value.
func (o *Object) Delete(key string) {
	if _, ok := o.values[key]; !ok {
		return
	}

	delete(o.values, key)
	for i, existing := range o.keys {
		if existing == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Keys returns property names in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Len returns number of properties.
func (o *Object) Len() int {
	return len(o.keys)
}

// Clone returns a deep copy detached from the receiver.
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}

	out := &Object{
		values: make(map[string]any, len(o.values)),
		keys:   make([]string, len(o.keys)),
	}
	copy(out.keys, o.keys)
	for key, value := range o.values {
		out.values[key] = cloneValue(value)
	}

	return out
}

// merge copies every property of other into the receiver, other's values winning.
func (o *Object) merge(other *Object) {
	for _, key := range other.keys {
		o.Set(key, other.values[key])
	}
}

// childObject returns nested object under key, creating {"@type": schemaType}
// when the key is absent or holds a non-object value.
func (o *Object) childObject(key, schemaType string) *Object {
	if child, ok := o.values[key].(*Object); ok {
		return child
	}

	child := newTypedObject(schemaType)
	o.Set(key, child)
	return child
}

// appendObject appends value to the object list under key and returns its index.
func (o *Object) appendObject(key string, value *Object) int {
	list, _ := o.values[key].([]*Object)
	list = append(list, value)
	o.Set(key, list)
	return len(list) - 1
}

// appendString appends value to the string list under key.
func (o *Object) appendString(key, value string) {
	list, _ := o.values[key].([]string)
	o.Set(key, append(list, value))
}

// appendPromoting stores the first value as a single object and promotes the
// property to a list on the second insert.
func (o *Object) appendPromoting(key string, value *Object) {
	if cell, ok := o.values[key].(*Cell); ok {
		cell.Append(value)
		return
	}

	o.Set(key, SingleCell(value))
}

// MarshalJSON encodes properties in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if !utf8.ValidString(key) {
			return nil, fmt.Errorf("%w: key %q", ErrInvalidUTF8, key)
		}

		value := o.values[key]
		if err := checkUTF8(value); err != nil {
			return nil, fmt.Errorf("%w: property %q", err, key)
		}

		keyData, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}

		valueData, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}

		if i > 0 {
			buf.WriteByte(',')
		}

		buf.Write(keyData)
		buf.WriteByte(':')
		buf.Write(valueData)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Cell holds a property that is a single object or, after promotion, a list of objects.
type Cell struct {
	items []*Object
	many  bool
}

// SingleCell returns a cell holding one object.
func SingleCell(value *Object) *Cell {
	return &Cell{items: []*Object{value}}
}

// ManyCell returns a cell holding a list of objects.
func ManyCell(values ...*Object) *Cell {
	items := make([]*Object, len(values))
	copy(items, values)
	return &Cell{items: items, many: true}
}

// Append adds value, promoting a single object cell to a list.
func (c *Cell) Append(value *Object) {
	c.items = append(c.items, value)
	c.many = true
}

// IsMany reports whether the cell serializes as a list.
func (c *Cell) IsMany() bool {
	return c.many
}

// Single returns the object of a single cell, nil for lists.
func (c *Cell) Single() *Object {
	if c.many || len(c.items) == 0 {
		return nil
	}

	return c.items[0]
}

// Items returns stored objects in insertion order.
func (c *Cell) Items() []*Object {
	items := make([]*Object, len(c.items))
	copy(items, c.items)
	return items
}

// Last returns the most recently stored object.
func (c *Cell) Last() *Object {
	if len(c.items) == 0 {
		return nil
	}

	return c.items[len(c.items)-1]
}

// Len returns number of stored objects.
func (c *Cell) Len() int {
	return len(c.items)
}

// MarshalJSON encodes a single cell as an object and a promoted cell as a list.
func (c *Cell) MarshalJSON() ([]byte, error) {
	if !c.many && len(c.items) == 1 {
		return json.Marshal(c.items[0])
	}

	return json.Marshal(c.items)
}

// checkUTF8 validates string payloads stored directly in a property.
// Nested objects validate themselves while marshaling.
func checkUTF8(value any) error {
	switch typed := value.(type) {
	case string:
		if !utf8.ValidString(typed) {
			return ErrInvalidUTF8
		}
	case []string:
		for _, item := range typed {
			if !utf8.ValidString(item) {
				return ErrInvalidUTF8
			}
		}
	}

	return nil
}

// cloneValue deep-copies one property value.
func cloneValue(value any) any {
	switch typed := value.(type) {
	case *Object:
		return typed.Clone()
	case []*Object:
		out := make([]*Object, len(typed))
		for i, item := range typed {
			out[i] = item.Clone()
		}

		return out
	case *Cell:
		out := &Cell{items: make([]*Object, len(typed.items)), many: typed.many}
		for i, item := range typed.items {
			out.items[i] = item.Clone()
		}

		return out
	case []string:
		out := make([]string, len(typed))
		copy(out, typed)
		return out
	default:
		return value
	}
}

/*
 (c) Copyright [2023] Open Text.
 Licensed under the Apache License, Version 2.0 (the "License");
 You may not use this file except in compliance with the License.
 You may obtain a copy of the License at

 http://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package qsops

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// OrderedMap is a map of string to string list that remembers the order in
// which keys were first added.
type OrderedMap struct {
	keys   []string
	values map[string][]string
}

func NewOrderedMap() *OrderedMap {
	return &OrderedMap{values: make(map[string][]string)}
}

// Add appends values to key. A key seen for the first time goes last.
func (m *OrderedMap) Add(key string, values ...string) {
	if m.values == nil {
		m.values = make(map[string][]string)
	}
	if _, found := m.values[key]; !found {
		m.keys = append(m.keys, key)
		m.values[key] = []string{}
	}
	m.values[key] = append(m.values[key], values...)
}

func (m *OrderedMap) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

func (m *OrderedMap) Get(key string) ([]string, bool) {
	if m == nil {
		return nil, false
	}
	v, found := m.values[key]
	if !found {
		return nil, false
	}
	return append([]string{}, v...), true
}

// First returns the first value of key, or "" if there is none.
func (m *OrderedMap) First(key string) string {
	v, _ := m.Get(key)
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

func (m *OrderedMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

func (m *OrderedMap) Clone() *OrderedMap {
	if m == nil {
		return nil
	}
	c := NewOrderedMap()
	for _, k := range m.keys {
		c.Add(k, m.values[k]...)
	}
	return c
}

// MarshalJSON writes the map as a JSON object with keys in insertion order.
func (m *OrderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ParseKeyValuePairs builds an OrderedMap out of key=value strings. An empty
// string adds nothing, so [""] yields an explicitly empty map.
func ParseKeyValuePairs(pairs []string) (*OrderedMap, error) {
	m := NewOrderedMap()
	for _, pair := range pairs {
		if pair == "" {
			continue
		}
		key, value, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("%q is not in key=value form", pair)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("%q has an empty key", pair)
		}
		m.Add(key, value)
	}
	return m, nil
}

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

// Tag is a key/value pair attached to a resource.
type Tag struct {
	Key   *string `json:"Key"`
	Value *string `json:"Value"`
}

// ResponseMetadata is carried by every response. Status is the HTTP status
// code of the response.
type ResponseMetadata struct {
	RequestID *string `json:"RequestId,omitempty"`
	Status    int32   `json:"Status"`
}

func (m *ResponseMetadata) metadata() *ResponseMetadata {
	return m
}

func (m *ResponseMetadata) fieldValue(name string) (any, bool) {
	switch name {
	case "RequestId":
		return m.RequestID, true
	case "Status":
		return m.Status, true
	}
	return nil, false
}

// response is implemented by every <Op>Output type. fieldValue is the static
// table of top-level fields a caller may select.
type response interface {
	metadata() *ResponseMetadata
	fieldValue(name string) (any, bool)
}

// tagsFromMap turns a bound tag map into request tags in the caller's order.
func tagsFromMap(m *OrderedMap) []Tag {
	if m == nil {
		return nil
	}
	tags := make([]Tag, 0, m.Len())
	for _, k := range m.Keys() {
		key, value := k, m.First(k)
		tags = append(tags, Tag{Key: &key, Value: &value})
	}
	return tags
}

// stringMap flattens a bound map to its first value per key. A bound empty
// map stays non-nil.
func stringMap(m *OrderedMap) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, m.Len())
	for _, k := range m.Keys() {
		out[k] = m.First(k)
	}
	return out
}

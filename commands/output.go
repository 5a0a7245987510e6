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

package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
	outputText = "text"
)

// renderOutput formats the selected value of an invocation. The value is
// always encoded to JSON first so every format shows the wire field names.
func renderOutput(value any, format string) ([]byte, error) {
	raw, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("fail to encode the result: %w", err)
	}
	switch format {
	case outputJSON:
		return append(raw, '\n'), nil
	case outputYAML, outputText:
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}

	// JSON is valid YAML, so the node tree keeps the field order of the
	// encoded value
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("fail to convert the result: %w", err)
	}
	clearStyle(&doc)
	if format == outputText {
		var b bytes.Buffer
		writeText(&b, "", &doc)
		return b.Bytes(), nil
	}
	var b bytes.Buffer
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("fail to encode the result as yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// clearStyle drops the flow and quoting styles that come from the JSON text
func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}

// writeText prints one "path<TAB>value" line per scalar. A scalar result is
// printed alone.
func writeText(b *bytes.Buffer, path string, n *yaml.Node) {
	switch n.Kind {
	case yaml.DocumentNode:
		for _, c := range n.Content {
			writeText(b, path, c)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			writeText(b, joinPath(path, n.Content[i].Value), n.Content[i+1])
		}
	case yaml.SequenceNode:
		for i, c := range n.Content {
			writeText(b, path+"["+strconv.Itoa(i)+"]", c)
		}
	case yaml.ScalarNode:
		value := n.Value
		if n.Tag == "!!null" {
			value = ""
		}
		if path == "" {
			b.WriteString(value + "\n")
			return
		}
		b.WriteString(path + "\t" + value + "\n")
	case yaml.AliasNode:
		if n.Alias != nil {
			writeText(b, path, n.Alias)
		}
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return strings.Join([]string{prefix, key}, ".")
}

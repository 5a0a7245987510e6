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
	"sort"

	"golang.org/x/exp/slices"
)

// ParamKind is the type a parameter value is coerced to when bound.
type ParamKind int

const (
	KindString ParamKind = iota
	KindBool
	KindInt64
	KindEnum
	// KindMap is an ordered map of string to string list, e.g. tags.
	KindMap
	KindList
)

func (k ParamKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt64:
		return "int64"
	case KindEnum:
		return "enum"
	case KindMap:
		return "map"
	case KindList:
		return "list"
	}
	return "unknown"
}

// ParamSpec declares one parameter of an operation.
type ParamSpec struct {
	// Name is the parameter name used for binding and for echo selectors.
	Name string
	// Flag is the command line flag the parameter is exposed as.
	Flag     string
	Kind     ParamKind
	Required bool
	// EnumValues lists the accepted spellings of a KindEnum parameter.
	EnumValues []string
	// SingleValued restricts a KindMap parameter to one value per key.
	SingleValued bool
	Help         string
}

// OperationDescriptor is the static metadata of one remote operation.
type OperationDescriptor struct {
	// Name is the service operation name, e.g. CreateTopic.
	Name string
	// Command is the CLI command, e.g. create-topic.
	Command  string
	Short    string
	Mutating bool
	Params   []ParamSpec
	// PrimaryField is the response field returned when the caller does not
	// select one. Empty means the whole response.
	PrimaryField string
	// PassThruParam is the parameter echoed by the legacy pass-thru mode. Its
	// value is also what the confirmation prompt names.
	PassThruParam string
	// Fields are the top-level response fields a caller may select.
	Fields []string
}

// Param returns the declaration of the named parameter.
func (d *OperationDescriptor) Param(name string) (*ParamSpec, bool) {
	for i := range d.Params {
		if d.Params[i].Name == name {
			return &d.Params[i], true
		}
	}
	return nil, false
}

// HasField tells if name is a selectable response field.
func (d *OperationDescriptor) HasField(name string) bool {
	return slices.Contains(d.Fields, name)
}

// RequiredParams returns the names of the required parameters in declaration order.
func (d *OperationDescriptor) RequiredParams() []string {
	var names []string
	for i := range d.Params {
		if d.Params[i].Required {
			names = append(names, d.Params[i].Name)
		}
	}
	return names
}

var operationRegistry = map[string]*OperationDescriptor{}

func registerOperation(d *OperationDescriptor) *OperationDescriptor {
	if _, found := operationRegistry[d.Name]; found {
		panic("[Programmer error] operation " + d.Name + " registered twice")
	}
	operationRegistry[d.Name] = d
	return d
}

// Operations returns every known operation sorted by command name.
func Operations() []*OperationDescriptor {
	ops := make([]*OperationDescriptor, 0, len(operationRegistry))
	for _, d := range operationRegistry {
		ops = append(ops, d)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].Command < ops[j].Command })
	return ops
}

// LookupOperation finds an operation by its service name, e.g. CreateTopic,
// or by its command, e.g. create-topic.
func LookupOperation(name string) (*OperationDescriptor, bool) {
	if d, ok := operationRegistry[name]; ok {
		return d, true
	}
	for _, d := range operationRegistry {
		if d.Command == name {
			return d, true
		}
	}
	return nil, false
}

// parameters shared by many operations
var (
	awsAccountIDParam = ParamSpec{
		Name: "AwsAccountId", Flag: "aws-account-id", Kind: KindString, Required: true,
		Help: "The ID of the AWS account",
	}
	maxResultsParam = ParamSpec{
		Name: "MaxResults", Flag: "max-results", Kind: KindInt64,
		Help: "The maximum number of results to return per request",
	}
	nextTokenParam = ParamSpec{
		Name: "NextToken", Flag: "next-token", Kind: KindString,
		Help: "The token for the next set of results",
	}
	tagParam = ParamSpec{
		Name: "Tag", Flag: "tag", Kind: KindMap, SingleValued: true,
		Help: "A tag to assign to the resource, as key=value. Repeat for more tags",
	}
)

// response fields every output carries
var metadataFields = []string{"RequestId", "Status"}

func withMetadata(fields ...string) []string {
	return append(fields, metadataFields...)
}

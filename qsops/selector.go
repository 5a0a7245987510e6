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
	"strings"

	"k8s.io/apimachinery/pkg/util/validation/field"
)

const (
	selectWholeResponse = "*"
	selectEchoPrefix    = "^"
)

// SelectorKind is what an invocation returns to its caller.
type SelectorKind int

const (
	SelectWhole SelectorKind = iota
	SelectField
	// SelectEcho returns an input parameter instead of the response. Deprecated.
	SelectEcho
)

// OutputSelector is the resolved output choice of one invocation.
type OutputSelector struct {
	Kind SelectorKind
	// Name is the response field for SelectField and the parameter for SelectEcho.
	Name string
}

func (s OutputSelector) String() string {
	switch s.Kind {
	case SelectField:
		return s.Name
	case SelectEcho:
		return selectEchoPrefix + s.Name
	}
	return selectWholeResponse
}

// SelectorInput is the caller's raw output choice.
type SelectorInput struct {
	// Select is "*", a response field name, or "^" followed by a parameter name.
	Select string
	// PassThru echoes the operation's pass-thru parameter. It may be combined
	// with Select "*" only. Deprecated, use Select "^Param" instead.
	PassThru bool
}

func resolveSelector(desc *OperationDescriptor, in SelectorInput) (OutputSelector, field.ErrorList) {
	var allErrs field.ErrorList
	selectPath := field.NewPath("Select")
	sel := strings.TrimSpace(in.Select)

	if in.PassThru {
		// "*" names no field, so it does not conflict with the echo
		if sel != "" && sel != selectWholeResponse {
			allErrs = append(allErrs, field.Forbidden(field.NewPath("PassThru"),
				"cannot be combined with a Select field or parameter"))
			return OutputSelector{}, allErrs
		}
		if desc.PassThruParam == "" {
			allErrs = append(allErrs, field.Forbidden(field.NewPath("PassThru"),
				desc.Name+" has no pass-thru parameter"))
			return OutputSelector{}, allErrs
		}
		return OutputSelector{Kind: SelectEcho, Name: desc.PassThruParam}, nil
	}

	switch {
	case sel == "":
		if desc.PrimaryField == "" || desc.PrimaryField == selectWholeResponse {
			return OutputSelector{Kind: SelectWhole}, nil
		}
		return OutputSelector{Kind: SelectField, Name: desc.PrimaryField}, nil
	case sel == selectWholeResponse:
		return OutputSelector{Kind: SelectWhole}, nil
	case strings.HasPrefix(sel, selectEchoPrefix):
		name := strings.TrimPrefix(sel, selectEchoPrefix)
		if _, found := desc.Param(name); !found {
			allErrs = append(allErrs, field.Invalid(selectPath, sel,
				"^ must be followed by a parameter of "+desc.Name))
			return OutputSelector{}, allErrs
		}
		return OutputSelector{Kind: SelectEcho, Name: name}, nil
	}

	if !desc.HasField(sel) {
		allErrs = append(allErrs, field.NotSupported(selectPath, sel,
			append([]string{selectWholeResponse}, desc.Fields...)))
		return OutputSelector{}, allErrs
	}
	return OutputSelector{Kind: SelectField, Name: sel}, nil
}

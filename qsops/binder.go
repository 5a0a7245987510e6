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
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/qsadmin/qsadmin/qsops/util"
)

// BindParams checks values against the operation's declared parameters and
// copies them, coerced to their declared kind, into a new InvocationContext.
// It also resolves the output selector. All problems found are returned
// together as a *ValidationError.
func BindParams(desc *OperationDescriptor, values map[string]any, sel SelectorInput) (*InvocationContext, error) {
	ctx := newInvocationContext(desc)
	var allErrs field.ErrorList

	declared := mapset.NewThreadUnsafeSet[string]()
	for i := range desc.Params {
		declared.Add(desc.Params[i].Name)
	}
	for _, name := range util.SortedKeys(values) {
		if !declared.Contains(name) {
			allErrs = append(allErrs, field.Forbidden(field.NewPath(name),
				"not a parameter of "+desc.Name))
		}
	}

	for i := range desc.Params {
		p := &desc.Params[i]
		path := field.NewPath(p.Name)
		raw, found := values[p.Name]
		if !found || isAbsent(raw) {
			if p.Required {
				allErrs = append(allErrs, field.Required(path, ""))
			}
			continue
		}
		v, err := coerce(p, path, raw)
		if err != nil {
			allErrs = append(allErrs, err)
			continue
		}
		if p.Required && isEmptyRequired(v) {
			allErrs = append(allErrs, field.Required(path, "must not be empty"))
			continue
		}
		ctx.values[p.Name] = v
	}

	selector, errs := resolveSelector(desc, sel)
	allErrs = append(allErrs, errs...)

	if len(allErrs) > 0 {
		return nil, &ValidationError{Operation: desc.Name, Errs: allErrs}
	}

	ctx.Selector = selector
	if selector.Kind == SelectEcho {
		ctx.echo = ctx.values[selector.Name]
		if m, ok := ctx.echo.(*OrderedMap); ok {
			ctx.echo = m.Clone()
		}
	}
	if err := ctx.advance(StateBound); err != nil {
		return nil, err
	}
	return ctx, nil
}

// isAbsent treats nil and typed nil values as not supplied.
func isAbsent(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case *string:
		return t == nil
	case *bool:
		return t == nil
	case *int64:
		return t == nil
	case *OrderedMap:
		return t == nil
	case []string:
		return t == nil
	case map[string]string:
		return t == nil
	case map[string][]string:
		return t == nil
	case map[string]any:
		return t == nil
	case fmt.Stringer:
		return isNilPointer(t)
	}
	return false
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func isEmptyRequired(v any) bool {
	switch t := v.(type) {
	case string:
		return t == ""
	case []string:
		return len(t) == 0
	case *OrderedMap:
		return t.Len() == 0
	}
	return false
}

func coerce(p *ParamSpec, path *field.Path, raw any) (any, *field.Error) {
	switch p.Kind {
	case KindString:
		return coerceString(path, raw)
	case KindBool:
		return coerceBool(path, raw)
	case KindInt64:
		return coerceInt64(path, raw)
	case KindEnum:
		s, err := coerceString(path, raw)
		if err != nil {
			return nil, err
		}
		match, found := util.StringInArrayFold(s, p.EnumValues)
		if !found {
			return nil, field.NotSupported(path, s, p.EnumValues)
		}
		return match, nil
	case KindMap:
		m, err := coerceMap(path, raw)
		if err != nil {
			return nil, err
		}
		if p.SingleValued {
			for _, k := range m.Keys() {
				if vals, _ := m.Get(k); len(vals) > 1 {
					return nil, field.Invalid(path.Key(k), vals, "only one value is allowed per key")
				}
			}
		}
		return m, nil
	case KindList:
		return coerceList(path, raw)
	}
	return nil, field.InternalError(path, fmt.Errorf("unknown parameter kind %s", p.Kind))
}

func coerceString(path *field.Path, raw any) (string, *field.Error) {
	switch t := raw.(type) {
	case string:
		return t, nil
	case *string:
		return *t, nil
	case fmt.Stringer:
		if isNilPointer(t) {
			return "", field.Required(path, "")
		}
		return t.String(), nil
	}
	return "", field.TypeInvalid(path, raw, "must be a string")
}

func coerceBool(path *field.Path, raw any) (bool, *field.Error) {
	switch t := raw.(type) {
	case bool:
		return t, nil
	case *bool:
		return *t, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		if err != nil {
			return false, field.Invalid(path, t, "must be true or false")
		}
		return b, nil
	}
	return false, field.TypeInvalid(path, raw, "must be a boolean")
}

func coerceInt64(path *field.Path, raw any) (int64, *field.Error) {
	switch t := raw.(type) {
	case int:
		return int64(t), nil
	case int8:
		return int64(t), nil
	case int16:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case int64:
		return t, nil
	case *int64:
		return *t, nil
	case uint8:
		return int64(t), nil
	case uint16:
		return int64(t), nil
	case uint32:
		return int64(t), nil
	case uint:
		return uintToInt64(path, uint64(t))
	case uint64:
		return uintToInt64(path, t)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, field.Invalid(path, t, "must be a 64-bit integer")
		}
		return n, nil
	}
	return 0, field.TypeInvalid(path, raw, "must be an integer")
}

func uintToInt64(path *field.Path, v uint64) (int64, *field.Error) {
	if v > math.MaxInt64 {
		return 0, field.Invalid(path, v, "must fit in a 64-bit signed integer")
	}
	return int64(v), nil
}

func coerceMap(path *field.Path, raw any) (*OrderedMap, *field.Error) {
	switch t := raw.(type) {
	case *OrderedMap:
		return t.Clone(), nil
	case map[string]string:
		m := NewOrderedMap()
		for _, k := range util.SortedKeys(t) {
			m.Add(k, t[k])
		}
		return m, nil
	case map[string][]string:
		m := NewOrderedMap()
		for _, k := range util.SortedKeys(t) {
			m.Add(k, t[k]...)
		}
		return m, nil
	case map[string]any:
		m := NewOrderedMap()
		for _, k := range util.SortedKeys(t) {
			switch v := t[k].(type) {
			case string:
				m.Add(k, v)
			case []string:
				m.Add(k, v...)
			case nil:
				m.Add(k)
			default:
				m.Add(k, fmt.Sprint(v))
			}
		}
		return m, nil
	case []string:
		m, err := ParseKeyValuePairs(t)
		if err != nil {
			return nil, field.Invalid(path, t, err.Error())
		}
		return m, nil
	}
	return nil, field.TypeInvalid(path, raw, "must be a map of string to string list")
}

func coerceList(path *field.Path, raw any) ([]string, *field.Error) {
	switch t := raw.(type) {
	case []string:
		return append([]string{}, t...), nil
	case string:
		var list []string
		for _, s := range strings.Split(t, ",") {
			if s = strings.TrimSpace(s); s != "" {
				list = append(list, s)
			}
		}
		if list == nil {
			list = []string{}
		}
		return list, nil
	}
	return nil, field.TypeInvalid(path, raw, "must be a list of strings")
}

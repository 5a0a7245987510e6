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

	"github.com/google/uuid"
)

// InvocationState is the progress of one invocation. States are entered in
// declaration order; the last three are terminal.
type InvocationState int

const (
	StateUnbound InvocationState = iota
	StateBound
	StateRequestBuilt
	StateInFlight
	StateCompleted
	StateFailed
	StateCancelled
)

func (s InvocationState) String() string {
	switch s {
	case StateUnbound:
		return "unbound"
	case StateBound:
		return "bound"
	case StateRequestBuilt:
		return "request-built"
	case StateInFlight:
		return "in-flight"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	case StateCancelled:
		return "cancelled"
	}
	return fmt.Sprintf("InvocationState(%d)", int(s))
}

func (s InvocationState) Terminal() bool {
	return s >= StateCompleted
}

// InvocationContext holds the bound parameter values of one invocation.
type InvocationContext struct {
	ID        string
	Operation *OperationDescriptor
	Selector  OutputSelector

	// coerced values: string, bool, int64, *OrderedMap or []string
	values map[string]any
	// captured at bind time for SelectEcho
	echo  any
	state InvocationState
}

func newInvocationContext(desc *OperationDescriptor) *InvocationContext {
	return &InvocationContext{
		ID:        uuid.NewString(),
		Operation: desc,
		values:    make(map[string]any),
	}
}

func (c *InvocationContext) State() InvocationState {
	return c.state
}

// advance moves the invocation to the next state. Completed is only reachable
// from in-flight. Failed and cancelled may end the invocation at any point
// after binding.
func (c *InvocationContext) advance(next InvocationState) error {
	cur := c.state
	ok := false
	switch {
	case cur.Terminal():
	case next == StateFailed || next == StateCancelled:
		ok = cur >= StateBound
	default:
		ok = next == cur+1
	}
	if !ok {
		return fmt.Errorf("[Programmer error] invocation %s cannot move from %s to %s", c.ID, cur, next)
	}
	c.state = next
	return nil
}

func (c *InvocationContext) mustAdvance(next InvocationState) {
	if err := c.advance(next); err != nil {
		panic(err)
	}
}

func (c *InvocationContext) IsSet(name string) bool {
	_, found := c.values[name]
	return found
}

// Echo returns the input value captured for an echo selector.
func (c *InvocationContext) Echo() any {
	return c.echo
}

// The getters below return nil for unset parameters. Returned values are
// copies the caller may keep.

func (c *InvocationContext) String(name string) *string {
	v, ok := c.values[name].(string)
	if !ok {
		return nil
	}
	return &v
}

func (c *InvocationContext) Bool(name string) *bool {
	v, ok := c.values[name].(bool)
	if !ok {
		return nil
	}
	return &v
}

func (c *InvocationContext) Int64(name string) *int64 {
	v, ok := c.values[name].(int64)
	if !ok {
		return nil
	}
	return &v
}

func (c *InvocationContext) Map(name string) *OrderedMap {
	v, ok := c.values[name].(*OrderedMap)
	if !ok {
		return nil
	}
	return v.Clone()
}

func (c *InvocationContext) List(name string) []string {
	v, ok := c.values[name].([]string)
	if !ok {
		return nil
	}
	return append([]string{}, v...)
}

// SetNames returns the names of the bound parameters in declaration order.
func (c *InvocationContext) SetNames() []string {
	var names []string
	for i := range c.Operation.Params {
		if c.IsSet(c.Operation.Params[i].Name) {
			names = append(names, c.Operation.Params[i].Name)
		}
	}
	return names
}

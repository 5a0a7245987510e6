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
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/aws/smithy-go"

	"github.com/qsadmin/qsadmin/qsops/vlog"
	"github.com/qsadmin/qsadmin/svcfault"
)

// QSCommands runs operations against the service. Every operation goes
// through the same steps: bind parameters, build the request, confirm if the
// operation mutates state, call the client once, then project the response.
type QSCommands struct {
	Log vlog.Printer
	// Confirmer is asked before a mutating operation is sent. A nil
	// Confirmer declines, so mutating operations need Force.
	Confirmer Confirmer
}

// Confirmer approves a mutating operation on a target before it is sent.
// Confirm must return once ctx is done.
type Confirmer interface {
	Confirm(ctx context.Context, operation, target string) (bool, error)
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(ctx context.Context, operation, target string) (bool, error)

func (f ConfirmerFunc) Confirm(ctx context.Context, operation, target string) (bool, error) {
	return f(ctx, operation, target)
}

// InvocationOptions are the caller's inputs for one invocation.
type InvocationOptions struct {
	// Params maps parameter names to values. See BindParams for the accepted
	// value types.
	Params map[string]any
	// Select is "*", a response field, or "^" and a parameter name.
	Select string
	// PassThru echoes the pass-thru parameter instead of the response. Deprecated.
	PassThru bool
	// Force skips the confirmation of mutating operations.
	Force bool
}

// Outcome is the result of a successful invocation.
type Outcome[R any] struct {
	InvocationID string
	Operation    string
	// Value is what the output selector picked: the response, one of its
	// fields, or an echoed parameter.
	Value    any
	Response R
}

// invoke runs one operation. call is the Client method for the operation,
// given as a method expression such as Client.CreateTopic.
func invoke[Req any, Resp response](
	ctx context.Context,
	vcc *QSCommands,
	client Client,
	desc *OperationDescriptor,
	opts *InvocationOptions,
	build func(*InvocationContext) Req,
	call func(Client, context.Context, Req) (Resp, error),
) (*Outcome[Resp], error) {
	if opts == nil {
		opts = &InvocationOptions{}
	}
	ictx, err := BindParams(desc, opts.Params, SelectorInput{Select: opts.Select, PassThru: opts.PassThru})
	if err != nil {
		vcc.Log.Info("Parameter validation failed", "operation", desc.Name, "error", err.Error())
		return nil, err
	}

	log := vcc.Log.WithName(desc.Name)
	log = log.WithValues("invocation", ictx.ID)
	log.V(1).Info("Parameters bound", "params", ictx.SetNames(), "select", ictx.Selector.String())
	if ictx.Selector.Kind == SelectEcho {
		log.PrintWarning("Echoing parameter %s instead of the response is deprecated. "+
			"Select the response field you need instead.", ictx.Selector.Name)
	}

	req := build(ictx)
	ictx.mustAdvance(StateRequestBuilt)

	if desc.Mutating && !opts.Force {
		if err := confirm(ctx, vcc.Confirmer, desc, ictx); err != nil {
			if errors.Is(err, ErrInvocationCancelled) {
				ictx.mustAdvance(StateCancelled)
			} else {
				ictx.mustAdvance(StateFailed)
			}
			log.Info("Operation not confirmed", "state", ictx.State().String())
			return nil, err
		}
	}

	if client == nil {
		ictx.mustAdvance(StateFailed)
		return nil, fmt.Errorf("%s: %w", desc.Name, ErrNoClient)
	}
	endpoint := client.Endpoint()

	if err := ctx.Err(); err != nil {
		ictx.mustAdvance(StateCancelled)
		log.Info("Invocation cancelled before dispatch", "state", ictx.State().String())
		return nil, &CancelledError{Operation: desc.Name, Err: err}
	}

	ictx.mustAdvance(StateInFlight)
	log.V(1).Info("Calling service", "endpoint", endpoint)
	resp, err := call(client, ctx, req)
	if err != nil {
		err = translateError(desc.Name, endpoint, err)
		if errors.Is(err, ErrInvocationCancelled) {
			ictx.mustAdvance(StateCancelled)
			log.Info("Invocation cancelled", "state", ictx.State().String())
		} else {
			ictx.mustAdvance(StateFailed)
			keysAndValues := []any{"state", ictx.State().String()}
			if id, ok := svcfault.Classify(err); ok {
				keysAndValues = append(keysAndValues, "fault", id.Code)
			}
			log.Error(err, "Invocation failed", keysAndValues...)
		}
		return nil, err
	}

	value, err := project(ictx, resp)
	if err != nil {
		ictx.mustAdvance(StateFailed)
		return nil, err
	}
	ictx.mustAdvance(StateCompleted)
	log.Info("Invocation completed", "state", ictx.State().String())

	return &Outcome[Resp]{
		InvocationID: ictx.ID,
		Operation:    desc.Name,
		Value:        value,
		Response:     resp,
	}, nil
}

// confirm asks c about the invocation. A caller cancellation while waiting
// for the answer is a CancelledError.
func confirm(ctx context.Context, c Confirmer, desc *OperationDescriptor, ictx *InvocationContext) error {
	if c == nil {
		return fmt.Errorf("%s: %w", desc.Name, ErrConfirmationDeclined)
	}
	target := ""
	if t := ictx.String(desc.PassThruParam); t != nil {
		target = *t
	}
	ok, err := c.Confirm(ctx, desc.Name, target)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return &CancelledError{Operation: desc.Name, Err: err}
		}
		return fmt.Errorf("%s: %w", desc.Name, err)
	}
	if !ok {
		return fmt.Errorf("%s: %w", desc.Name, ErrConfirmationDeclined)
	}
	return nil
}

// translateError maps a caller cancellation to CancelledError and adds the
// endpoint to name resolution failures. Every other error is returned as is.
func translateError(operation, endpoint string, err error) error {
	var canceled *smithy.CanceledError
	if errors.Is(err, context.Canceled) ||
		(errors.As(err, &canceled) && !errors.Is(err, context.DeadlineExceeded)) {
		return &CancelledError{Operation: operation, Err: err}
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &EndpointResolutionError{Operation: operation, Endpoint: endpoint, Err: err}
	}
	return err
}

func project[Resp response](ictx *InvocationContext, resp Resp) (any, error) {
	switch ictx.Selector.Kind {
	case SelectWhole:
		return resp, nil
	case SelectEcho:
		return ictx.Echo(), nil
	case SelectField:
	}
	v, ok := resp.fieldValue(ictx.Selector.Name)
	if !ok {
		return nil, fmt.Errorf("%s response has no field %s", ictx.Operation.Name, ictx.Selector.Name)
	}
	return v, nil
}

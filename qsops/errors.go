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
	"errors"
	"fmt"

	"k8s.io/apimachinery/pkg/util/validation/field"
)

var (
	// ErrValidation is matched by every local validation failure.
	ErrValidation = errors.New("invalid invocation")
	// ErrConfirmationDeclined is returned when a mutating operation was not
	// confirmed. No remote call is made.
	ErrConfirmationDeclined = errors.New("operation was not confirmed")
	// ErrInvocationCancelled is matched when the caller cancelled the invocation.
	ErrInvocationCancelled = errors.New("invocation cancelled")
	// ErrNoClient is returned when an invocation is given a nil client.
	ErrNoClient = errors.New("no service client")
)

// ValidationError lists every local problem found with an invocation's
// parameters or output selector.
type ValidationError struct {
	Operation string
	Errs      field.ErrorList
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameters for %s: %v", e.Operation, e.Errs.ToAggregate())
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// CancelledError ends an invocation that was cancelled by its caller.
type CancelledError struct {
	Operation string
	Err       error
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("%s was cancelled: %v", e.Operation, e.Err)
}

func (e *CancelledError) Unwrap() error {
	return e.Err
}

func (e *CancelledError) Is(target error) bool {
	return target == ErrInvocationCancelled
}

// EndpointResolutionError is a remote fault caused by failing to resolve the
// service endpoint's host name.
type EndpointResolutionError struct {
	Operation string
	Endpoint  string
	Err       error
}

func (e *EndpointResolutionError) Error() string {
	return fmt.Sprintf("%s: could not resolve the service endpoint %s. "+
		"Check the region and endpoint settings and your network: %v", e.Operation, e.Endpoint, e.Err)
}

func (e *EndpointResolutionError) Unwrap() error {
	return e.Err
}

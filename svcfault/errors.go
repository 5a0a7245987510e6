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

package svcfault

import (
	"net/http"

	"github.com/aws/smithy-go"
)

// List of all known service faults that qsadmin may see. The code is the
// exception name the service puts in the X-Amzn-ErrorType header or in the
// __type field of the error body.
//
// Treat each fault's code as immutable. The title is a fallback message for
// when the service sends an error without one.
var (
	AccessDenied = newFaultID(
		"AccessDeniedException",
		"You don't have access to this item",
		http.StatusUnauthorized,
	)
	Conflict = newFaultID(
		"ConflictException",
		"Updating or deleting a resource can cause an inconsistent state",
		http.StatusConflict,
	)
	InternalFailure = newFaultID(
		"InternalFailureException",
		"An internal failure occurred",
		http.StatusInternalServerError,
	)
	InvalidNextToken = newFaultID(
		"InvalidNextTokenException",
		"The NextToken value isn't valid",
		http.StatusBadRequest,
	)
	InvalidParameterValue = newFaultID(
		"InvalidParameterValueException",
		"One or more parameters has a value that isn't valid",
		http.StatusBadRequest,
	)
	LimitExceeded = newFaultID(
		"LimitExceededException",
		"A limit is exceeded",
		http.StatusConflict,
	)
	PreconditionNotMet = newFaultID(
		"PreconditionNotMetException",
		"One or more preconditions aren't met",
		http.StatusBadRequest,
	)
	ResourceExists = newFaultID(
		"ResourceExistsException",
		"The resource specified already exists",
		http.StatusConflict,
	)
	ResourceNotFound = newFaultID(
		"ResourceNotFoundException",
		"One or more resources can't be found",
		http.StatusNotFound,
	)
	ResourceUnavailable = newFaultID(
		"ResourceUnavailableException",
		"This resource is currently unavailable",
		http.StatusServiceUnavailable,
	)
	Throttling = newFaultID(
		"ThrottlingException",
		"Access is throttled",
		http.StatusTooManyRequests,
	)
	UnsupportedUserEdition = newFaultID(
		"UnsupportedUserEditionException",
		"This error indicates that you are calling an operation on an edition that doesn't support it",
		http.StatusForbidden,
	)
	// Unknown is used when the service returns a code that is not listed here.
	Unknown = FaultID{Code: "UnknownError", Title: "Unknown error", Status: http.StatusInternalServerError, Fault: smithy.FaultUnknown}
)

var knownFaults = map[string]FaultID{}

func newFaultID(code, title string, status int) FaultID {
	fault := smithy.FaultClient
	if status >= http.StatusInternalServerError {
		fault = smithy.FaultServer
	}
	id := FaultID{Code: code, Title: title, Status: status, Fault: fault}
	knownFaults[code] = id
	return id
}

// Lookup returns the registered fault for a code.
func Lookup(code string) (FaultID, bool) {
	id, ok := knownFaults[code]
	return id, ok
}

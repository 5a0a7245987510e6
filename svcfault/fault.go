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

// Package svcfault is the registry of faults the QuickSight API reports.
// Errors from the SDK client are classified by their smithy.APIError code.
// A Fault writes an error document the way the service does, for servers
// that stand in for it.
package svcfault

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/smithy-go"
)

const (
	ContentType     = "application/json"
	errorTypeHeader = "X-Amzn-Errortype"
	requestIDHeader = "X-Amzn-Requestid"
)

// FaultID identifies a kind of service fault.
type FaultID struct {
	Code   string
	Title  string
	Status int
	Fault  smithy.ErrorFault
}

// Fault is one error reported by the service.
type Fault struct {
	FaultID
	Message   string
	RequestID string
}

// New creates a fault of the given kind. The status and message default to
// what the kind defines.
func New(id FaultID) *Fault {
	return &Fault{FaultID: id}
}

func (f *Fault) WithMessage(msg string) *Fault {
	f.Message = msg
	return f
}

func (f *Fault) WithStatus(status int) *Fault {
	f.Status = status
	return f
}

func (f *Fault) WithRequestID(id string) *Fault {
	f.RequestID = id
	return f
}

func (f *Fault) Error() string {
	msg := f.ErrorMessage()
	if f.RequestID != "" {
		return fmt.Sprintf("%s: %s (request id %s)", f.Code, msg, f.RequestID)
	}
	return fmt.Sprintf("%s: %s", f.Code, msg)
}

func (f *Fault) ErrorCode() string {
	return f.Code
}

func (f *Fault) ErrorMessage() string {
	if f.Message == "" {
		return f.Title
	}
	return f.Message
}

func (f *Fault) ErrorFault() smithy.ErrorFault {
	return f.Fault
}

// SendError writes the fault to w the way the service does.
func (f *Fault) SendError(w http.ResponseWriter) {
	body, err := json.Marshal(map[string]string{
		"Message":   f.ErrorMessage(),
		"RequestId": f.RequestID,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", ContentType)
	w.Header().Set(errorTypeHeader, f.Code)
	if f.RequestID != "" {
		w.Header().Set(requestIDHeader, f.RequestID)
	}
	w.WriteHeader(f.Status)
	_, _ = w.Write(body)
}

// Classify returns the registered fault for the code of the first
// smithy.APIError in err's chain.
func Classify(err error) (FaultID, bool) {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return FaultID{}, false
	}
	return Lookup(apiErr.ErrorCode())
}

// IsInstanceOf will return true if err carries a fault of the given kind.
func IsInstanceOf(err error, id FaultID) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == id.Code
}

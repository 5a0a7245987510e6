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
	"fmt"
	"math"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	"github.com/aws/aws-sdk-go-v2/service/quicksight"
	"github.com/aws/smithy-go"
	"github.com/aws/smithy-go/middleware"
	smithyhttp "github.com/aws/smithy-go/transport/http"

	"github.com/qsadmin/qsadmin/qsops/util"
	"github.com/qsadmin/qsadmin/qsops/vlog"
)

// QuickSightClient implements Client on top of the AWS SDK service client.
// It converts requests and responses between the shim's types and the
// SDK's. Requests are never retried.
type QuickSightClient struct {
	api      *quicksight.Client
	endpoint string
}

var _ Client = (*QuickSightClient)(nil)

// NewQuickSightClient builds a client from cfg. A non-empty endpoint
// overrides the regional one.
func NewQuickSightClient(cfg aws.Config, endpoint string, logger vlog.Printer) *QuickSightClient {
	if cfg.Region == "" {
		cfg.Region = util.DefaultRegion
	}
	log := logger.WithName("QuickSightClient")
	api := quicksight.NewFromConfig(cfg, func(o *quicksight.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.Retryer = aws.NopRetryer{}
		o.APIOptions = append(o.APIOptions, logExchange(log))
	})

	resolved := endpoint
	if resolved == "" && cfg.BaseEndpoint != nil {
		resolved = *cfg.BaseEndpoint
	}
	if resolved == "" {
		resolved = util.Endpoint(cfg.Region)
	}
	return &QuickSightClient{api: api, endpoint: strings.TrimRight(resolved, "/")}
}

func (c *QuickSightClient) Endpoint() string {
	return c.endpoint
}

// logExchange logs each request and the status of its response at debug level.
func logExchange(log vlog.Printer) func(*middleware.Stack) error {
	return func(stack *middleware.Stack) error {
		return stack.Deserialize.Add(middleware.DeserializeMiddlewareFunc("QSAdminLogExchange",
			func(ctx context.Context, in middleware.DeserializeInput, next middleware.DeserializeHandler) (
				middleware.DeserializeOutput, middleware.Metadata, error) {
				op := awsmiddleware.GetOperationName(ctx)
				if req, ok := in.Request.(*smithyhttp.Request); ok {
					log.V(1).Info("Sending request", "operation", op, "method", req.Method, "path", req.URL.Path)
				}
				out, md, err := next.HandleDeserialize(ctx, in)
				if resp, ok := out.RawResponse.(*smithyhttp.Response); ok {
					log.V(1).Info("Received response", "operation", op, "status", resp.StatusCode)
				}
				return out, md, err
			}), middleware.After)
	}
}

// responseMetadata fills in the request id from the response headers when
// the body did not carry one.
func responseMetadata(requestID *string, status int32, md middleware.Metadata) ResponseMetadata {
	if requestID == nil {
		if id, ok := awsmiddleware.GetRequestIDMetadata(md); ok && id != "" {
			requestID = aws.String(id)
		}
	}
	return ResponseMetadata{RequestID: requestID, Status: status}
}

// pageSize narrows a bound MaxResults to what the SDK accepts.
func pageSize(op string, v *int64) (*int32, error) {
	if v == nil {
		return nil, nil
	}
	if *v < math.MinInt32 || *v > math.MaxInt32 {
		return nil, &smithy.OperationError{
			ServiceID:     quicksight.ServiceID,
			OperationName: op,
			Err:           fmt.Errorf("MaxResults %d is out of range", *v),
		}
	}
	return aws.Int32(int32(*v)), nil
}

// enumPtr returns nil for the zero value of an SDK enum.
func enumPtr[E ~string](v E) *string {
	if v == "" {
		return nil
	}
	s := string(v)
	return &s
}

// enumValue turns an optional bound enum into the SDK's enum type.
func enumValue[E ~string](v *string) E {
	if v == nil {
		return ""
	}
	return E(*v)
}

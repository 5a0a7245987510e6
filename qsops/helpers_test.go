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
	"bytes"
	"context"
	"sync"

	"github.com/aws/smithy-go"
	"github.com/tonglil/buflogr"

	"github.com/qsadmin/qsadmin/qsops/vlog"
)

const testEndpoint = "https://quicksight.us-west-2.amazonaws.com"

// fakeClient counts calls and hands back canned responses.
type fakeClient struct {
	mu        sync.Mutex
	calls     map[string]int
	requests  map[string][]any
	responses map[string]any
	err       error
	// block makes calls wait until their context is done
	block   bool
	started chan struct{}
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		calls:     make(map[string]int),
		requests:  make(map[string][]any),
		responses: make(map[string]any),
		started:   make(chan struct{}, 1),
	}
}

func (f *fakeClient) Endpoint() string {
	return testEndpoint
}

func (f *fakeClient) callCount(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeClient) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func (f *fakeClient) lastRequest(op string) any {
	f.mu.Lock()
	defer f.mu.Unlock()
	reqs := f.requests[op]
	if len(reqs) == 0 {
		return nil
	}
	return reqs[len(reqs)-1]
}

func (f *fakeClient) record(ctx context.Context, op string, in any) (any, error) {
	f.mu.Lock()
	f.calls[op]++
	f.requests[op] = append(f.requests[op], in)
	resp, err, block := f.responses[op], f.err, f.block
	f.mu.Unlock()

	if block {
		select {
		case f.started <- struct{}{}:
		default:
		}
		<-ctx.Done()
		return nil, &smithy.OperationError{ServiceID: "QuickSight", OperationName: op,
			Err: &smithy.CanceledError{Err: ctx.Err()}}
	}
	return resp, err
}

func respond[T any](ctx context.Context, f *fakeClient, op string, in any) (*T, error) {
	resp, err := f.record(ctx, op, in)
	if err != nil {
		return nil, err
	}
	if out, ok := resp.(*T); ok {
		return out, nil
	}
	return new(T), nil
}

func (f *fakeClient) CreateTopic(ctx context.Context, in *CreateTopicInput) (*CreateTopicOutput, error) {
	return respond[CreateTopicOutput](ctx, f, "CreateTopic", in)
}

func (f *fakeClient) DescribeTopic(ctx context.Context, in *DescribeTopicInput) (*DescribeTopicOutput, error) {
	return respond[DescribeTopicOutput](ctx, f, "DescribeTopic", in)
}

func (f *fakeClient) UpdateTopic(ctx context.Context, in *UpdateTopicInput) (*UpdateTopicOutput, error) {
	return respond[UpdateTopicOutput](ctx, f, "UpdateTopic", in)
}

func (f *fakeClient) DeleteTopic(ctx context.Context, in *DeleteTopicInput) (*DeleteTopicOutput, error) {
	return respond[DeleteTopicOutput](ctx, f, "DeleteTopic", in)
}

func (f *fakeClient) ListTopics(ctx context.Context, in *ListTopicsInput) (*ListTopicsOutput, error) {
	return respond[ListTopicsOutput](ctx, f, "ListTopics", in)
}

func (f *fakeClient) CreateFolder(ctx context.Context, in *CreateFolderInput) (*CreateFolderOutput, error) {
	return respond[CreateFolderOutput](ctx, f, "CreateFolder", in)
}

func (f *fakeClient) DescribeFolder(ctx context.Context, in *DescribeFolderInput) (*DescribeFolderOutput, error) {
	return respond[DescribeFolderOutput](ctx, f, "DescribeFolder", in)
}

func (f *fakeClient) DeleteFolder(ctx context.Context, in *DeleteFolderInput) (*DeleteFolderOutput, error) {
	return respond[DeleteFolderOutput](ctx, f, "DeleteFolder", in)
}

func (f *fakeClient) ListFolders(ctx context.Context, in *ListFoldersInput) (*ListFoldersOutput, error) {
	return respond[ListFoldersOutput](ctx, f, "ListFolders", in)
}

func (f *fakeClient) CreateNamespace(ctx context.Context, in *CreateNamespaceInput) (*CreateNamespaceOutput, error) {
	return respond[CreateNamespaceOutput](ctx, f, "CreateNamespace", in)
}

func (f *fakeClient) DescribeNamespace(ctx context.Context, in *DescribeNamespaceInput) (*DescribeNamespaceOutput, error) {
	return respond[DescribeNamespaceOutput](ctx, f, "DescribeNamespace", in)
}

func (f *fakeClient) DeleteNamespace(ctx context.Context, in *DeleteNamespaceInput) (*DeleteNamespaceOutput, error) {
	return respond[DeleteNamespaceOutput](ctx, f, "DeleteNamespace", in)
}

func (f *fakeClient) ListNamespaces(ctx context.Context, in *ListNamespacesInput) (*ListNamespacesOutput, error) {
	return respond[ListNamespacesOutput](ctx, f, "ListNamespaces", in)
}

func (f *fakeClient) DescribeAccountSettings(ctx context.Context, in *DescribeAccountSettingsInput) (*DescribeAccountSettingsOutput, error) {
	return respond[DescribeAccountSettingsOutput](ctx, f, "DescribeAccountSettings", in)
}

func (f *fakeClient) UpdateAccountSettings(ctx context.Context, in *UpdateAccountSettingsInput) (*UpdateAccountSettingsOutput, error) {
	return respond[UpdateAccountSettingsOutput](ctx, f, "UpdateAccountSettings", in)
}

func (f *fakeClient) DescribeIPRestriction(ctx context.Context, in *DescribeIPRestrictionInput) (*DescribeIPRestrictionOutput, error) {
	return respond[DescribeIPRestrictionOutput](ctx, f, "DescribeIpRestriction", in)
}

func (f *fakeClient) UpdateIPRestriction(ctx context.Context, in *UpdateIPRestrictionInput) (*UpdateIPRestrictionOutput, error) {
	return respond[UpdateIPRestrictionOutput](ctx, f, "UpdateIpRestriction", in)
}

func (f *fakeClient) TagResource(ctx context.Context, in *TagResourceInput) (*TagResourceOutput, error) {
	return respond[TagResourceOutput](ctx, f, "TagResource", in)
}

func (f *fakeClient) UntagResource(ctx context.Context, in *UntagResourceInput) (*UntagResourceOutput, error) {
	return respond[UntagResourceOutput](ctx, f, "UntagResource", in)
}

func (f *fakeClient) ListTagsForResource(ctx context.Context, in *ListTagsForResourceInput) (*ListTagsForResourceOutput, error) {
	return respond[ListTagsForResourceOutput](ctx, f, "ListTagsForResource", in)
}

type opRunner func(ctx context.Context, vcc *QSCommands, c Client, opts *InvocationOptions) (any, error)

// runners maps each operation name to its QSCommands method
var runners = map[string]opRunner{
	"CreateTopic": func(ctx context.Context, vcc *QSCommands, c Client, opts *InvocationOptions) (any, error) {
		return vcc.VCreateTopic(ctx, c, opts)
	},
	"DescribeTopic": func(ctx context.Context, vcc *QSCommands, c Client, opts *InvocationOptions) (any, error) {
		return vcc.VDescribeTopic(ctx, c, opts)
	},
	"UpdateTopic": func(ctx context.Context, vcc *QSCommands, c Client, opts *InvocationOptions) (any, error) {
		return vcc.VUpdateTopic(ctx, c, opts)
	},
	"DeleteTopic": func(ctx context.Context, vcc *QSCommands, c Client, opts *InvocationOptions) (any, error) {
		return vcc.VDeleteTopic(ctx, c, opts)
	},
	"ListTopics": func(ctx context.Context, vcc *QSCommands, c Client, opts *InvocationOptions) (any, error) {
		return vcc.VListTopics(ctx, c, opts)
	},
	"CreateFolder": func(ctx context.Context, vcc *QSCommands, c Client, opts *InvocationOptions) (any, error) {
		return vcc.VCreateFolder(ctx, c, opts)
	},
	"DescribeFolder": func(ctx context.Context, vcc *QSCommands, c Client, opts *InvocationOptions) (any, error) {
		return vcc.VDescribeFolder(ctx, c, opts)
	},
	"DeleteFolder": func(ctx context.Context, vcc *QSCommands, c Client, opts *InvocationOptions) (any, error) {
		return vcc.VDeleteFolder(ctx, c, opts)
	},
	"ListFolders": func(ctx context.Context, vcc *QSCommands, c Client, opts *InvocationOptions) (any, error) {
		return vcc.VListFolders(ctx, c, opts)
	},
	"CreateNamespace": func(ctx context.Context, vcc *QSCommands, c Client, opts *InvocationOptions) (any, error) {
		return vcc.VCreateNamespace(ctx, c, opts)
	},
	"DescribeNamespace": func(ctx context.Context, vcc *QSCommands, c Client, opts *InvocationOptions) (any, error) {
		return vcc.VDescribeNamespace(ctx, c, opts)
	},
	"DeleteNamespace": func(ctx context.Context, vcc *QSCommands, c Client, opts *InvocationOptions) (any, error) {
		return vcc.VDeleteNamespace(ctx, c, opts)
	},
	"ListNamespaces": func(ctx context.Context, vcc *QSCommands, c Client, opts *InvocationOptions) (any, error) {
		return vcc.VListNamespaces(ctx, c, opts)
	},
	"DescribeAccountSettings": func(ctx context.Context, vcc *QSCommands, c Client, opts *InvocationOptions) (any, error) {
		return vcc.VDescribeAccountSettings(ctx, c, opts)
	},
	"UpdateAccountSettings": func(ctx context.Context, vcc *QSCommands, c Client, opts *InvocationOptions) (any, error) {
		return vcc.VUpdateAccountSettings(ctx, c, opts)
	},
	"DescribeIpRestriction": func(ctx context.Context, vcc *QSCommands, c Client, opts *InvocationOptions) (any, error) {
		return vcc.VDescribeIPRestriction(ctx, c, opts)
	},
	"UpdateIpRestriction": func(ctx context.Context, vcc *QSCommands, c Client, opts *InvocationOptions) (any, error) {
		return vcc.VUpdateIPRestriction(ctx, c, opts)
	},
	"TagResource": func(ctx context.Context, vcc *QSCommands, c Client, opts *InvocationOptions) (any, error) {
		return vcc.VTagResource(ctx, c, opts)
	},
	"UntagResource": func(ctx context.Context, vcc *QSCommands, c Client, opts *InvocationOptions) (any, error) {
		return vcc.VUntagResource(ctx, c, opts)
	},
	"ListTagsForResource": func(ctx context.Context, vcc *QSCommands, c Client, opts *InvocationOptions) (any, error) {
		return vcc.VListTagsForResource(ctx, c, opts)
	},
}

// requiredParams returns a value for every required parameter of desc.
func requiredParams(desc *OperationDescriptor) map[string]any {
	params := map[string]any{}
	for i := range desc.Params {
		p := &desc.Params[i]
		if !p.Required {
			continue
		}
		switch p.Kind {
		case KindString:
			params[p.Name] = "value-of-" + p.Name
		case KindEnum:
			params[p.Name] = p.EnumValues[0]
		case KindBool:
			params[p.Name] = true
		case KindInt64:
			params[p.Name] = int64(1)
		case KindMap:
			params[p.Name] = map[string]string{"team": "bi"}
		case KindList:
			params[p.Name] = []string{"team"}
		}
	}
	return params
}

func makeTestCommands(logStr *bytes.Buffer) *QSCommands {
	return &QSCommands{
		Log: vlog.Printer{Log: buflogr.NewWithBuffer(logStr)},
	}
}

func ptr[T any](v T) *T {
	return &v
}

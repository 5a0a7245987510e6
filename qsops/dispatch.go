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
)

// Result is an Outcome without its typed response, for callers that pick
// the operation at run time.
type Result struct {
	InvocationID string
	Operation    string
	Value        any
}

type dispatchFunc func(ctx context.Context, vcc *QSCommands, client Client, opts *InvocationOptions) (*Result, error)

func erase[R any](o *Outcome[R], err error) (*Result, error) {
	if err != nil {
		return nil, err
	}
	return &Result{InvocationID: o.InvocationID, Operation: o.Operation, Value: o.Value}, nil
}

var dispatchTable = map[string]dispatchFunc{
	CreateTopicOperation.Name: func(ctx context.Context, vcc *QSCommands, c Client, o *InvocationOptions) (*Result, error) {
		return erase(vcc.VCreateTopic(ctx, c, o))
	},
	DescribeTopicOperation.Name: func(ctx context.Context, vcc *QSCommands, c Client, o *InvocationOptions) (*Result, error) {
		return erase(vcc.VDescribeTopic(ctx, c, o))
	},
	UpdateTopicOperation.Name: func(ctx context.Context, vcc *QSCommands, c Client, o *InvocationOptions) (*Result, error) {
		return erase(vcc.VUpdateTopic(ctx, c, o))
	},
	DeleteTopicOperation.Name: func(ctx context.Context, vcc *QSCommands, c Client, o *InvocationOptions) (*Result, error) {
		return erase(vcc.VDeleteTopic(ctx, c, o))
	},
	ListTopicsOperation.Name: func(ctx context.Context, vcc *QSCommands, c Client, o *InvocationOptions) (*Result, error) {
		return erase(vcc.VListTopics(ctx, c, o))
	},
	CreateFolderOperation.Name: func(ctx context.Context, vcc *QSCommands, c Client, o *InvocationOptions) (*Result, error) {
		return erase(vcc.VCreateFolder(ctx, c, o))
	},
	DescribeFolderOperation.Name: func(ctx context.Context, vcc *QSCommands, c Client, o *InvocationOptions) (*Result, error) {
		return erase(vcc.VDescribeFolder(ctx, c, o))
	},
	DeleteFolderOperation.Name: func(ctx context.Context, vcc *QSCommands, c Client, o *InvocationOptions) (*Result, error) {
		return erase(vcc.VDeleteFolder(ctx, c, o))
	},
	ListFoldersOperation.Name: func(ctx context.Context, vcc *QSCommands, c Client, o *InvocationOptions) (*Result, error) {
		return erase(vcc.VListFolders(ctx, c, o))
	},
	CreateNamespaceOperation.Name: func(ctx context.Context, vcc *QSCommands, c Client, o *InvocationOptions) (*Result, error) {
		return erase(vcc.VCreateNamespace(ctx, c, o))
	},
	DescribeNamespaceOperation.Name: func(ctx context.Context, vcc *QSCommands, c Client, o *InvocationOptions) (*Result, error) {
		return erase(vcc.VDescribeNamespace(ctx, c, o))
	},
	DeleteNamespaceOperation.Name: func(ctx context.Context, vcc *QSCommands, c Client, o *InvocationOptions) (*Result, error) {
		return erase(vcc.VDeleteNamespace(ctx, c, o))
	},
	ListNamespacesOperation.Name: func(ctx context.Context, vcc *QSCommands, c Client, o *InvocationOptions) (*Result, error) {
		return erase(vcc.VListNamespaces(ctx, c, o))
	},
	DescribeAccountSettingsOperation.Name: func(ctx context.Context, vcc *QSCommands, c Client, o *InvocationOptions) (*Result, error) {
		return erase(vcc.VDescribeAccountSettings(ctx, c, o))
	},
	UpdateAccountSettingsOperation.Name: func(ctx context.Context, vcc *QSCommands, c Client, o *InvocationOptions) (*Result, error) {
		return erase(vcc.VUpdateAccountSettings(ctx, c, o))
	},
	DescribeIPRestrictionOperation.Name: func(ctx context.Context, vcc *QSCommands, c Client, o *InvocationOptions) (*Result, error) {
		return erase(vcc.VDescribeIPRestriction(ctx, c, o))
	},
	UpdateIPRestrictionOperation.Name: func(ctx context.Context, vcc *QSCommands, c Client, o *InvocationOptions) (*Result, error) {
		return erase(vcc.VUpdateIPRestriction(ctx, c, o))
	},
	TagResourceOperation.Name: func(ctx context.Context, vcc *QSCommands, c Client, o *InvocationOptions) (*Result, error) {
		return erase(vcc.VTagResource(ctx, c, o))
	},
	UntagResourceOperation.Name: func(ctx context.Context, vcc *QSCommands, c Client, o *InvocationOptions) (*Result, error) {
		return erase(vcc.VUntagResource(ctx, c, o))
	},
	ListTagsForResourceOperation.Name: func(ctx context.Context, vcc *QSCommands, c Client, o *InvocationOptions) (*Result, error) {
		return erase(vcc.VListTagsForResource(ctx, c, o))
	},
}

// Run invokes the operation with the given service or command name.
func (vcc *QSCommands) Run(ctx context.Context, client Client, operation string, opts *InvocationOptions) (*Result, error) {
	desc, ok := LookupOperation(operation)
	if !ok {
		return nil, fmt.Errorf("unknown operation %q", operation)
	}
	run, ok := dispatchTable[desc.Name]
	if !ok {
		return nil, fmt.Errorf("[Programmer error] operation %s has no runner", desc.Name)
	}
	return run(ctx, vcc, client, opts)
}

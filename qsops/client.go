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

import "context"

// Client is a handle on the remote service with one method per operation.
// Implementations must be safe for concurrent use.
type Client interface {
	// Endpoint is the service endpoint the client talks to.
	Endpoint() string

	CreateTopic(ctx context.Context, in *CreateTopicInput) (*CreateTopicOutput, error)
	DescribeTopic(ctx context.Context, in *DescribeTopicInput) (*DescribeTopicOutput, error)
	UpdateTopic(ctx context.Context, in *UpdateTopicInput) (*UpdateTopicOutput, error)
	DeleteTopic(ctx context.Context, in *DeleteTopicInput) (*DeleteTopicOutput, error)
	ListTopics(ctx context.Context, in *ListTopicsInput) (*ListTopicsOutput, error)

	CreateFolder(ctx context.Context, in *CreateFolderInput) (*CreateFolderOutput, error)
	DescribeFolder(ctx context.Context, in *DescribeFolderInput) (*DescribeFolderOutput, error)
	DeleteFolder(ctx context.Context, in *DeleteFolderInput) (*DeleteFolderOutput, error)
	ListFolders(ctx context.Context, in *ListFoldersInput) (*ListFoldersOutput, error)

	CreateNamespace(ctx context.Context, in *CreateNamespaceInput) (*CreateNamespaceOutput, error)
	DescribeNamespace(ctx context.Context, in *DescribeNamespaceInput) (*DescribeNamespaceOutput, error)
	DeleteNamespace(ctx context.Context, in *DeleteNamespaceInput) (*DeleteNamespaceOutput, error)
	ListNamespaces(ctx context.Context, in *ListNamespacesInput) (*ListNamespacesOutput, error)

	DescribeAccountSettings(ctx context.Context, in *DescribeAccountSettingsInput) (*DescribeAccountSettingsOutput, error)
	UpdateAccountSettings(ctx context.Context, in *UpdateAccountSettingsInput) (*UpdateAccountSettingsOutput, error)

	DescribeIPRestriction(ctx context.Context, in *DescribeIPRestrictionInput) (*DescribeIPRestrictionOutput, error)
	UpdateIPRestriction(ctx context.Context, in *UpdateIPRestrictionInput) (*UpdateIPRestrictionOutput, error)

	TagResource(ctx context.Context, in *TagResourceInput) (*TagResourceOutput, error)
	UntagResource(ctx context.Context, in *UntagResourceInput) (*UntagResourceOutput, error)
	ListTagsForResource(ctx context.Context, in *ListTagsForResourceInput) (*ListTagsForResourceOutput, error)
}

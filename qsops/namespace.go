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

var identityStores = []string{"QUICKSIGHT"}

var namespaceParam = ParamSpec{
	Name: "Namespace", Flag: "namespace", Kind: KindString, Required: true,
	Help: "The name of the namespace",
}

// NamespaceInfoV2 describes a namespace and, while it is being created, any
// error hit along the way.
type NamespaceInfoV2 struct {
	Name           *string         `json:"Name,omitempty"`
	Arn            *string         `json:"Arn,omitempty"`
	CapacityRegion *string         `json:"CapacityRegion,omitempty"`
	CreationStatus *string         `json:"CreationStatus,omitempty"`
	IdentityStore  *string         `json:"IdentityStore,omitempty"`
	NamespaceError *NamespaceError `json:"NamespaceError,omitempty"`
}

type NamespaceError struct {
	Type    *string `json:"Type,omitempty"`
	Message *string `json:"Message,omitempty"`
}

type CreateNamespaceInput struct {
	AwsAccountID  *string
	Namespace     *string
	IdentityStore *string
	Tags          []Tag
}

type CreateNamespaceOutput struct {
	ResponseMetadata
	Arn            *string `json:"Arn,omitempty"`
	Name           *string `json:"Name,omitempty"`
	CapacityRegion *string `json:"CapacityRegion,omitempty"`
	CreationStatus *string `json:"CreationStatus,omitempty"`
	IdentityStore  *string `json:"IdentityStore,omitempty"`
}

func (o *CreateNamespaceOutput) fieldValue(name string) (any, bool) {
	if o == nil {
		return nil, false
	}
	switch name {
	case "Arn":
		return o.Arn, true
	case "Name":
		return o.Name, true
	case "CapacityRegion":
		return o.CapacityRegion, true
	case "CreationStatus":
		return o.CreationStatus, true
	case "IdentityStore":
		return o.IdentityStore, true
	}
	return o.ResponseMetadata.fieldValue(name)
}

type DescribeNamespaceInput struct {
	AwsAccountID *string
	Namespace    *string
}

type DescribeNamespaceOutput struct {
	ResponseMetadata
	Namespace *NamespaceInfoV2 `json:"Namespace,omitempty"`
}

func (o *DescribeNamespaceOutput) fieldValue(name string) (any, bool) {
	if o == nil {
		return nil, false
	}
	if name == "Namespace" {
		return o.Namespace, true
	}
	return o.ResponseMetadata.fieldValue(name)
}

type DeleteNamespaceInput struct {
	AwsAccountID *string
	Namespace    *string
}

type DeleteNamespaceOutput struct {
	ResponseMetadata
}

func (o *DeleteNamespaceOutput) fieldValue(name string) (any, bool) {
	if o == nil {
		return nil, false
	}
	return o.ResponseMetadata.fieldValue(name)
}

type ListNamespacesInput struct {
	AwsAccountID *string
	MaxResults   *int64
	NextToken    *string
}

type ListNamespacesOutput struct {
	ResponseMetadata
	Namespaces []NamespaceInfoV2 `json:"Namespaces,omitempty"`
	NextToken  *string           `json:"NextToken,omitempty"`
}

func (o *ListNamespacesOutput) fieldValue(name string) (any, bool) {
	if o == nil {
		return nil, false
	}
	switch name {
	case "Namespaces":
		return o.Namespaces, true
	case "NextToken":
		return o.NextToken, true
	}
	return o.ResponseMetadata.fieldValue(name)
}

var CreateNamespaceOperation = registerOperation(&OperationDescriptor{
	Name:     "CreateNamespace",
	Command:  "create-namespace",
	Short:    "Create a namespace for users and groups",
	Mutating: true,
	Params: []ParamSpec{
		awsAccountIDParam,
		namespaceParam,
		{
			Name: "IdentityStore", Flag: "identity-store", Kind: KindEnum, Required: true,
			EnumValues: identityStores,
			Help:       "The type of user identity directory",
		},
		tagParam,
	},
	PassThruParam: "Namespace",
	Fields:        withMetadata("Arn", "Name", "CapacityRegion", "CreationStatus", "IdentityStore"),
})

var DescribeNamespaceOperation = registerOperation(&OperationDescriptor{
	Name:          "DescribeNamespace",
	Command:       "describe-namespace",
	Short:         "Describe a namespace",
	Params:        []ParamSpec{awsAccountIDParam, namespaceParam},
	PrimaryField:  "Namespace",
	PassThruParam: "Namespace",
	Fields:        withMetadata("Namespace"),
})

var DeleteNamespaceOperation = registerOperation(&OperationDescriptor{
	Name:          "DeleteNamespace",
	Command:       "delete-namespace",
	Short:         "Delete a namespace and the users and groups in it",
	Mutating:      true,
	Params:        []ParamSpec{awsAccountIDParam, namespaceParam},
	PassThruParam: "Namespace",
	Fields:        withMetadata(),
})

var ListNamespacesOperation = registerOperation(&OperationDescriptor{
	Name:          "ListNamespaces",
	Command:       "list-namespaces",
	Short:         "List the namespaces of an account",
	Params:        []ParamSpec{awsAccountIDParam, maxResultsParam, nextTokenParam},
	PrimaryField:  "Namespaces",
	PassThruParam: "AwsAccountId",
	Fields:        withMetadata("Namespaces", "NextToken"),
})

func buildCreateNamespaceInput(ictx *InvocationContext) *CreateNamespaceInput {
	return &CreateNamespaceInput{
		AwsAccountID:  ictx.String("AwsAccountId"),
		Namespace:     ictx.String("Namespace"),
		IdentityStore: ictx.String("IdentityStore"),
		Tags:          tagsFromMap(ictx.Map("Tag")),
	}
}

func buildDescribeNamespaceInput(ictx *InvocationContext) *DescribeNamespaceInput {
	return &DescribeNamespaceInput{
		AwsAccountID: ictx.String("AwsAccountId"),
		Namespace:    ictx.String("Namespace"),
	}
}

func buildDeleteNamespaceInput(ictx *InvocationContext) *DeleteNamespaceInput {
	return &DeleteNamespaceInput{
		AwsAccountID: ictx.String("AwsAccountId"),
		Namespace:    ictx.String("Namespace"),
	}
}

func buildListNamespacesInput(ictx *InvocationContext) *ListNamespacesInput {
	return &ListNamespacesInput{
		AwsAccountID: ictx.String("AwsAccountId"),
		MaxResults:   ictx.Int64("MaxResults"),
		NextToken:    ictx.String("NextToken"),
	}
}

func (vcc *QSCommands) VCreateNamespace(ctx context.Context, client Client,
	opts *InvocationOptions) (*Outcome[*CreateNamespaceOutput], error) {
	return invoke(ctx, vcc, client, CreateNamespaceOperation, opts, buildCreateNamespaceInput, Client.CreateNamespace)
}

func (vcc *QSCommands) VDescribeNamespace(ctx context.Context, client Client,
	opts *InvocationOptions) (*Outcome[*DescribeNamespaceOutput], error) {
	return invoke(ctx, vcc, client, DescribeNamespaceOperation, opts, buildDescribeNamespaceInput, Client.DescribeNamespace)
}

// VDeleteNamespace deletes a namespace. The service removes its users and
// groups asynchronously.
func (vcc *QSCommands) VDeleteNamespace(ctx context.Context, client Client,
	opts *InvocationOptions) (*Outcome[*DeleteNamespaceOutput], error) {
	return invoke(ctx, vcc, client, DeleteNamespaceOperation, opts, buildDeleteNamespaceInput, Client.DeleteNamespace)
}

func (vcc *QSCommands) VListNamespaces(ctx context.Context, client Client,
	opts *InvocationOptions) (*Outcome[*ListNamespacesOutput], error) {
	return invoke(ctx, vcc, client, ListNamespacesOperation, opts, buildListNamespacesInput, Client.ListNamespaces)
}

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
	"time"
)

var (
	folderTypes   = []string{"SHARED", "RESTRICTED"}
	sharingModels = []string{"ACCOUNT", "NAMESPACE"}
)

var folderIDParam = ParamSpec{
	Name: "FolderId", Flag: "folder-id", Kind: KindString, Required: true,
	Help: "The ID of the folder",
}

type Folder struct {
	FolderID        *string    `json:"FolderId,omitempty"`
	Arn             *string    `json:"Arn,omitempty"`
	Name            *string    `json:"Name,omitempty"`
	FolderType      *string    `json:"FolderType,omitempty"`
	FolderPath      []string   `json:"FolderPath,omitempty"`
	CreatedTime     *time.Time `json:"CreatedTime,omitempty"`
	LastUpdatedTime *time.Time `json:"LastUpdatedTime,omitempty"`
	SharingModel    *string    `json:"SharingModel,omitempty"`
}

type FolderSummary struct {
	Arn             *string    `json:"Arn,omitempty"`
	FolderID        *string    `json:"FolderId,omitempty"`
	Name            *string    `json:"Name,omitempty"`
	FolderType      *string    `json:"FolderType,omitempty"`
	CreatedTime     *time.Time `json:"CreatedTime,omitempty"`
	LastUpdatedTime *time.Time `json:"LastUpdatedTime,omitempty"`
	SharingModel    *string    `json:"SharingModel,omitempty"`
}

type CreateFolderInput struct {
	AwsAccountID    *string
	FolderID        *string
	Name            *string
	FolderType      *string
	ParentFolderArn *string
	SharingModel    *string
	Tags            []Tag
}

type CreateFolderOutput struct {
	ResponseMetadata
	Arn      *string `json:"Arn,omitempty"`
	FolderID *string `json:"FolderId,omitempty"`
}

func (o *CreateFolderOutput) fieldValue(name string) (any, bool) {
	if o == nil {
		return nil, false
	}
	switch name {
	case "Arn":
		return o.Arn, true
	case "FolderId":
		return o.FolderID, true
	}
	return o.ResponseMetadata.fieldValue(name)
}

type DescribeFolderInput struct {
	AwsAccountID *string
	FolderID     *string
}

type DescribeFolderOutput struct {
	ResponseMetadata
	Folder *Folder `json:"Folder,omitempty"`
}

func (o *DescribeFolderOutput) fieldValue(name string) (any, bool) {
	if o == nil {
		return nil, false
	}
	if name == "Folder" {
		return o.Folder, true
	}
	return o.ResponseMetadata.fieldValue(name)
}

type DeleteFolderInput struct {
	AwsAccountID *string
	FolderID     *string
}

type DeleteFolderOutput struct {
	ResponseMetadata
	Arn      *string `json:"Arn,omitempty"`
	FolderID *string `json:"FolderId,omitempty"`
}

func (o *DeleteFolderOutput) fieldValue(name string) (any, bool) {
	if o == nil {
		return nil, false
	}
	switch name {
	case "Arn":
		return o.Arn, true
	case "FolderId":
		return o.FolderID, true
	}
	return o.ResponseMetadata.fieldValue(name)
}

type ListFoldersInput struct {
	AwsAccountID *string
	MaxResults   *int64
	NextToken    *string
}

type ListFoldersOutput struct {
	ResponseMetadata
	FolderSummaryList []FolderSummary `json:"FolderSummaryList,omitempty"`
	NextToken         *string         `json:"NextToken,omitempty"`
}

func (o *ListFoldersOutput) fieldValue(name string) (any, bool) {
	if o == nil {
		return nil, false
	}
	switch name {
	case "FolderSummaryList":
		return o.FolderSummaryList, true
	case "NextToken":
		return o.NextToken, true
	}
	return o.ResponseMetadata.fieldValue(name)
}

var CreateFolderOperation = registerOperation(&OperationDescriptor{
	Name:     "CreateFolder",
	Command:  "create-folder",
	Short:    "Create an empty shared folder",
	Mutating: true,
	Params: []ParamSpec{
		awsAccountIDParam,
		folderIDParam,
		{Name: "Name", Flag: "name", Kind: KindString, Help: "The name of the folder"},
		{
			Name: "FolderType", Flag: "folder-type", Kind: KindEnum, EnumValues: folderTypes,
			Help: "The type of folder",
		},
		{
			Name: "ParentFolderArn", Flag: "parent-folder-arn", Kind: KindString,
			Help: "The ARN of the parent folder. Leave unset to create a root-level folder",
		},
		{
			Name: "SharingModel", Flag: "sharing-model", Kind: KindEnum, EnumValues: sharingModels,
			Help: "The sharing scope of the folder",
		},
		tagParam,
	},
	PassThruParam: "FolderId",
	Fields:        withMetadata("Arn", "FolderId"),
})

var DescribeFolderOperation = registerOperation(&OperationDescriptor{
	Name:          "DescribeFolder",
	Command:       "describe-folder",
	Short:         "Describe a folder",
	Params:        []ParamSpec{awsAccountIDParam, folderIDParam},
	PrimaryField:  "Folder",
	PassThruParam: "FolderId",
	Fields:        withMetadata("Folder"),
})

var DeleteFolderOperation = registerOperation(&OperationDescriptor{
	Name:          "DeleteFolder",
	Command:       "delete-folder",
	Short:         "Delete an empty folder",
	Mutating:      true,
	Params:        []ParamSpec{awsAccountIDParam, folderIDParam},
	PrimaryField:  "FolderId",
	PassThruParam: "FolderId",
	Fields:        withMetadata("Arn", "FolderId"),
})

var ListFoldersOperation = registerOperation(&OperationDescriptor{
	Name:          "ListFolders",
	Command:       "list-folders",
	Short:         "List all folders in an account",
	Params:        []ParamSpec{awsAccountIDParam, maxResultsParam, nextTokenParam},
	PrimaryField:  "FolderSummaryList",
	PassThruParam: "AwsAccountId",
	Fields:        withMetadata("FolderSummaryList", "NextToken"),
})

func buildCreateFolderInput(ictx *InvocationContext) *CreateFolderInput {
	return &CreateFolderInput{
		AwsAccountID:    ictx.String("AwsAccountId"),
		FolderID:        ictx.String("FolderId"),
		Name:            ictx.String("Name"),
		FolderType:      ictx.String("FolderType"),
		ParentFolderArn: ictx.String("ParentFolderArn"),
		SharingModel:    ictx.String("SharingModel"),
		Tags:            tagsFromMap(ictx.Map("Tag")),
	}
}

func buildDescribeFolderInput(ictx *InvocationContext) *DescribeFolderInput {
	return &DescribeFolderInput{
		AwsAccountID: ictx.String("AwsAccountId"),
		FolderID:     ictx.String("FolderId"),
	}
}

func buildDeleteFolderInput(ictx *InvocationContext) *DeleteFolderInput {
	return &DeleteFolderInput{
		AwsAccountID: ictx.String("AwsAccountId"),
		FolderID:     ictx.String("FolderId"),
	}
}

func buildListFoldersInput(ictx *InvocationContext) *ListFoldersInput {
	return &ListFoldersInput{
		AwsAccountID: ictx.String("AwsAccountId"),
		MaxResults:   ictx.Int64("MaxResults"),
		NextToken:    ictx.String("NextToken"),
	}
}

func (vcc *QSCommands) VCreateFolder(ctx context.Context, client Client,
	opts *InvocationOptions) (*Outcome[*CreateFolderOutput], error) {
	return invoke(ctx, vcc, client, CreateFolderOperation, opts, buildCreateFolderInput, Client.CreateFolder)
}

func (vcc *QSCommands) VDescribeFolder(ctx context.Context, client Client,
	opts *InvocationOptions) (*Outcome[*DescribeFolderOutput], error) {
	return invoke(ctx, vcc, client, DescribeFolderOperation, opts, buildDescribeFolderInput, Client.DescribeFolder)
}

func (vcc *QSCommands) VDeleteFolder(ctx context.Context, client Client,
	opts *InvocationOptions) (*Outcome[*DeleteFolderOutput], error) {
	return invoke(ctx, vcc, client, DeleteFolderOperation, opts, buildDeleteFolderInput, Client.DeleteFolder)
}

func (vcc *QSCommands) VListFolders(ctx context.Context, client Client,
	opts *InvocationOptions) (*Outcome[*ListFoldersOutput], error) {
	return invoke(ctx, vcc, client, ListFoldersOperation, opts, buildListFoldersInput, Client.ListFolders)
}

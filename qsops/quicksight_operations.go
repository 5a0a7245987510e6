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

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/quicksight"
	"github.com/aws/aws-sdk-go-v2/service/quicksight/types"
)

/* Topic
 */

func (c *QuickSightClient) CreateTopic(ctx context.Context, in *CreateTopicInput) (*CreateTopicOutput, error) {
	if in == nil {
		in = &CreateTopicInput{}
	}
	resp, err := c.api.CreateTopic(ctx, &quicksight.CreateTopicInput{
		AwsAccountId: in.AwsAccountID,
		TopicId:      in.TopicID,
		Topic:        in.Topic.toSDK(),
		Tags:         sdkTags(in.Tags),
		FolderArns:   in.FolderArns,
	})
	if err != nil {
		return nil, err
	}
	return &CreateTopicOutput{
		ResponseMetadata: responseMetadata(resp.RequestId, resp.Status, resp.ResultMetadata),
		Arn:              resp.Arn,
		TopicID:          resp.TopicId,
		RefreshArn:       resp.RefreshArn,
	}, nil
}

func (c *QuickSightClient) DescribeTopic(ctx context.Context, in *DescribeTopicInput) (*DescribeTopicOutput, error) {
	if in == nil {
		in = &DescribeTopicInput{}
	}
	resp, err := c.api.DescribeTopic(ctx, &quicksight.DescribeTopicInput{
		AwsAccountId: in.AwsAccountID,
		TopicId:      in.TopicID,
	})
	if err != nil {
		return nil, err
	}
	return &DescribeTopicOutput{
		ResponseMetadata: responseMetadata(resp.RequestId, resp.Status, resp.ResultMetadata),
		Arn:              resp.Arn,
		TopicID:          resp.TopicId,
		Topic:            topicDetailsFromSDK(resp.Topic),
	}, nil
}

func (c *QuickSightClient) UpdateTopic(ctx context.Context, in *UpdateTopicInput) (*UpdateTopicOutput, error) {
	if in == nil {
		in = &UpdateTopicInput{}
	}
	resp, err := c.api.UpdateTopic(ctx, &quicksight.UpdateTopicInput{
		AwsAccountId: in.AwsAccountID,
		TopicId:      in.TopicID,
		Topic:        in.Topic.toSDK(),
	})
	if err != nil {
		return nil, err
	}
	return &UpdateTopicOutput{
		ResponseMetadata: responseMetadata(resp.RequestId, resp.Status, resp.ResultMetadata),
		Arn:              resp.Arn,
		TopicID:          resp.TopicId,
		RefreshArn:       resp.RefreshArn,
	}, nil
}

func (c *QuickSightClient) DeleteTopic(ctx context.Context, in *DeleteTopicInput) (*DeleteTopicOutput, error) {
	if in == nil {
		in = &DeleteTopicInput{}
	}
	resp, err := c.api.DeleteTopic(ctx, &quicksight.DeleteTopicInput{
		AwsAccountId: in.AwsAccountID,
		TopicId:      in.TopicID,
	})
	if err != nil {
		return nil, err
	}
	return &DeleteTopicOutput{
		ResponseMetadata: responseMetadata(resp.RequestId, resp.Status, resp.ResultMetadata),
		Arn:              resp.Arn,
		TopicID:          resp.TopicId,
	}, nil
}

func (c *QuickSightClient) ListTopics(ctx context.Context, in *ListTopicsInput) (*ListTopicsOutput, error) {
	if in == nil {
		in = &ListTopicsInput{}
	}
	maxResults, err := pageSize("ListTopics", in.MaxResults)
	if err != nil {
		return nil, err
	}
	resp, err := c.api.ListTopics(ctx, &quicksight.ListTopicsInput{
		AwsAccountId: in.AwsAccountID,
		MaxResults:   maxResults,
		NextToken:    in.NextToken,
	})
	if err != nil {
		return nil, err
	}
	out := &ListTopicsOutput{
		ResponseMetadata: responseMetadata(resp.RequestId, resp.Status, resp.ResultMetadata),
		NextToken:        resp.NextToken,
	}
	for i := range resp.TopicsSummaries {
		s := &resp.TopicsSummaries[i]
		out.TopicsSummaries = append(out.TopicsSummaries, TopicSummary{
			Arn:                   s.Arn,
			TopicID:               s.TopicId,
			Name:                  s.Name,
			UserExperienceVersion: enumPtr(s.UserExperienceVersion),
		})
	}
	return out, nil
}

func (t *TopicDetails) toSDK() *types.TopicDetails {
	if t == nil {
		return nil
	}
	topic := &types.TopicDetails{
		Name:                  t.Name,
		Description:           t.Description,
		UserExperienceVersion: enumValue[types.TopicUserExperienceVersion](t.UserExperienceVersion),
	}
	for i := range t.DataSets {
		topic.DataSets = append(topic.DataSets, types.DatasetMetadata{
			DatasetArn:         t.DataSets[i].DatasetArn,
			DatasetName:        t.DataSets[i].DatasetName,
			DatasetDescription: t.DataSets[i].DatasetDescription,
		})
	}
	if t.ConfigOptions != nil {
		topic.ConfigOptions = &types.TopicConfigOptions{
			QBusinessInsightsEnabled: t.ConfigOptions.QBusinessInsightsEnabled,
		}
	}
	return topic
}

func topicDetailsFromSDK(t *types.TopicDetails) *TopicDetails {
	if t == nil {
		return nil
	}
	topic := &TopicDetails{
		Name:                  t.Name,
		Description:           t.Description,
		UserExperienceVersion: enumPtr(t.UserExperienceVersion),
	}
	for i := range t.DataSets {
		topic.DataSets = append(topic.DataSets, DatasetMetadata{
			DatasetArn:         t.DataSets[i].DatasetArn,
			DatasetName:        t.DataSets[i].DatasetName,
			DatasetDescription: t.DataSets[i].DatasetDescription,
		})
	}
	if t.ConfigOptions != nil {
		topic.ConfigOptions = &TopicConfigOptions{
			QBusinessInsightsEnabled: t.ConfigOptions.QBusinessInsightsEnabled,
		}
	}
	return topic
}

/* Folder
 */

func (c *QuickSightClient) CreateFolder(ctx context.Context, in *CreateFolderInput) (*CreateFolderOutput, error) {
	if in == nil {
		in = &CreateFolderInput{}
	}
	resp, err := c.api.CreateFolder(ctx, &quicksight.CreateFolderInput{
		AwsAccountId:    in.AwsAccountID,
		FolderId:        in.FolderID,
		Name:            in.Name,
		FolderType:      enumValue[types.FolderType](in.FolderType),
		ParentFolderArn: in.ParentFolderArn,
		SharingModel:    enumValue[types.SharingModel](in.SharingModel),
		Tags:            sdkTags(in.Tags),
	})
	if err != nil {
		return nil, err
	}
	return &CreateFolderOutput{
		ResponseMetadata: responseMetadata(resp.RequestId, resp.Status, resp.ResultMetadata),
		Arn:              resp.Arn,
		FolderID:         resp.FolderId,
	}, nil
}

func (c *QuickSightClient) DescribeFolder(ctx context.Context, in *DescribeFolderInput) (*DescribeFolderOutput, error) {
	if in == nil {
		in = &DescribeFolderInput{}
	}
	resp, err := c.api.DescribeFolder(ctx, &quicksight.DescribeFolderInput{
		AwsAccountId: in.AwsAccountID,
		FolderId:     in.FolderID,
	})
	if err != nil {
		return nil, err
	}
	out := &DescribeFolderOutput{
		ResponseMetadata: responseMetadata(resp.RequestId, resp.Status, resp.ResultMetadata),
	}
	if f := resp.Folder; f != nil {
		out.Folder = &Folder{
			FolderID:        f.FolderId,
			Arn:             f.Arn,
			Name:            f.Name,
			FolderType:      enumPtr(f.FolderType),
			FolderPath:      f.FolderPath,
			CreatedTime:     f.CreatedTime,
			LastUpdatedTime: f.LastUpdatedTime,
			SharingModel:    enumPtr(f.SharingModel),
		}
	}
	return out, nil
}

func (c *QuickSightClient) DeleteFolder(ctx context.Context, in *DeleteFolderInput) (*DeleteFolderOutput, error) {
	if in == nil {
		in = &DeleteFolderInput{}
	}
	resp, err := c.api.DeleteFolder(ctx, &quicksight.DeleteFolderInput{
		AwsAccountId: in.AwsAccountID,
		FolderId:     in.FolderID,
	})
	if err != nil {
		return nil, err
	}
	return &DeleteFolderOutput{
		ResponseMetadata: responseMetadata(resp.RequestId, resp.Status, resp.ResultMetadata),
		Arn:              resp.Arn,
		FolderID:         resp.FolderId,
	}, nil
}

func (c *QuickSightClient) ListFolders(ctx context.Context, in *ListFoldersInput) (*ListFoldersOutput, error) {
	if in == nil {
		in = &ListFoldersInput{}
	}
	maxResults, err := pageSize("ListFolders", in.MaxResults)
	if err != nil {
		return nil, err
	}
	resp, err := c.api.ListFolders(ctx, &quicksight.ListFoldersInput{
		AwsAccountId: in.AwsAccountID,
		MaxResults:   maxResults,
		NextToken:    in.NextToken,
	})
	if err != nil {
		return nil, err
	}
	out := &ListFoldersOutput{
		ResponseMetadata: responseMetadata(resp.RequestId, resp.Status, resp.ResultMetadata),
		NextToken:        resp.NextToken,
	}
	for i := range resp.FolderSummaryList {
		s := &resp.FolderSummaryList[i]
		out.FolderSummaryList = append(out.FolderSummaryList, FolderSummary{
			Arn:             s.Arn,
			FolderID:        s.FolderId,
			Name:            s.Name,
			FolderType:      enumPtr(s.FolderType),
			CreatedTime:     s.CreatedTime,
			LastUpdatedTime: s.LastUpdatedTime,
			SharingModel:    enumPtr(s.SharingModel),
		})
	}
	return out, nil
}

/* Namespace
 */

func (c *QuickSightClient) CreateNamespace(ctx context.Context, in *CreateNamespaceInput) (*CreateNamespaceOutput, error) {
	if in == nil {
		in = &CreateNamespaceInput{}
	}
	resp, err := c.api.CreateNamespace(ctx, &quicksight.CreateNamespaceInput{
		AwsAccountId:  in.AwsAccountID,
		Namespace:     in.Namespace,
		IdentityStore: enumValue[types.IdentityStore](in.IdentityStore),
		Tags:          sdkTags(in.Tags),
	})
	if err != nil {
		return nil, err
	}
	return &CreateNamespaceOutput{
		ResponseMetadata: responseMetadata(resp.RequestId, resp.Status, resp.ResultMetadata),
		Arn:              resp.Arn,
		Name:             resp.Name,
		CapacityRegion:   resp.CapacityRegion,
		CreationStatus:   enumPtr(resp.CreationStatus),
		IdentityStore:    enumPtr(resp.IdentityStore),
	}, nil
}

func (c *QuickSightClient) DescribeNamespace(ctx context.Context, in *DescribeNamespaceInput) (*DescribeNamespaceOutput, error) {
	if in == nil {
		in = &DescribeNamespaceInput{}
	}
	resp, err := c.api.DescribeNamespace(ctx, &quicksight.DescribeNamespaceInput{
		AwsAccountId: in.AwsAccountID,
		Namespace:    in.Namespace,
	})
	if err != nil {
		return nil, err
	}
	out := &DescribeNamespaceOutput{
		ResponseMetadata: responseMetadata(resp.RequestId, resp.Status, resp.ResultMetadata),
	}
	if resp.Namespace != nil {
		ns := namespaceFromSDK(resp.Namespace)
		out.Namespace = &ns
	}
	return out, nil
}

func (c *QuickSightClient) DeleteNamespace(ctx context.Context, in *DeleteNamespaceInput) (*DeleteNamespaceOutput, error) {
	if in == nil {
		in = &DeleteNamespaceInput{}
	}
	resp, err := c.api.DeleteNamespace(ctx, &quicksight.DeleteNamespaceInput{
		AwsAccountId: in.AwsAccountID,
		Namespace:    in.Namespace,
	})
	if err != nil {
		return nil, err
	}
	return &DeleteNamespaceOutput{
		ResponseMetadata: responseMetadata(resp.RequestId, resp.Status, resp.ResultMetadata),
	}, nil
}

func (c *QuickSightClient) ListNamespaces(ctx context.Context, in *ListNamespacesInput) (*ListNamespacesOutput, error) {
	if in == nil {
		in = &ListNamespacesInput{}
	}
	maxResults, err := pageSize("ListNamespaces", in.MaxResults)
	if err != nil {
		return nil, err
	}
	resp, err := c.api.ListNamespaces(ctx, &quicksight.ListNamespacesInput{
		AwsAccountId: in.AwsAccountID,
		MaxResults:   maxResults,
		NextToken:    in.NextToken,
	})
	if err != nil {
		return nil, err
	}
	out := &ListNamespacesOutput{
		ResponseMetadata: responseMetadata(resp.RequestId, resp.Status, resp.ResultMetadata),
		NextToken:        resp.NextToken,
	}
	for i := range resp.Namespaces {
		out.Namespaces = append(out.Namespaces, namespaceFromSDK(&resp.Namespaces[i]))
	}
	return out, nil
}

func namespaceFromSDK(ns *types.NamespaceInfoV2) NamespaceInfoV2 {
	info := NamespaceInfoV2{
		Name:           ns.Name,
		Arn:            ns.Arn,
		CapacityRegion: ns.CapacityRegion,
		CreationStatus: enumPtr(ns.CreationStatus),
		IdentityStore:  enumPtr(ns.IdentityStore),
	}
	if ns.NamespaceError != nil {
		info.NamespaceError = &NamespaceError{
			Type:    enumPtr(ns.NamespaceError.Type),
			Message: ns.NamespaceError.Message,
		}
	}
	return info
}

/* Account settings
 */

func (c *QuickSightClient) DescribeAccountSettings(ctx context.Context,
	in *DescribeAccountSettingsInput) (*DescribeAccountSettingsOutput, error) {
	if in == nil {
		in = &DescribeAccountSettingsInput{}
	}
	resp, err := c.api.DescribeAccountSettings(ctx, &quicksight.DescribeAccountSettingsInput{
		AwsAccountId: in.AwsAccountID,
	})
	if err != nil {
		return nil, err
	}
	out := &DescribeAccountSettingsOutput{
		ResponseMetadata: responseMetadata(resp.RequestId, resp.Status, resp.ResultMetadata),
	}
	if s := resp.AccountSettings; s != nil {
		out.AccountSettings = &AccountSettings{
			AccountName:                  s.AccountName,
			Edition:                      enumPtr(s.Edition),
			DefaultNamespace:             s.DefaultNamespace,
			NotificationEmail:            s.NotificationEmail,
			PublicSharingEnabled:         aws.Bool(s.PublicSharingEnabled),
			TerminationProtectionEnabled: aws.Bool(s.TerminationProtectionEnabled),
		}
	}
	return out, nil
}

func (c *QuickSightClient) UpdateAccountSettings(ctx context.Context,
	in *UpdateAccountSettingsInput) (*UpdateAccountSettingsOutput, error) {
	if in == nil {
		in = &UpdateAccountSettingsInput{}
	}
	resp, err := c.api.UpdateAccountSettings(ctx, &quicksight.UpdateAccountSettingsInput{
		AwsAccountId:                 in.AwsAccountID,
		DefaultNamespace:             in.DefaultNamespace,
		NotificationEmail:            in.NotificationEmail,
		TerminationProtectionEnabled: aws.ToBool(in.TerminationProtectionEnabled),
	})
	if err != nil {
		return nil, err
	}
	return &UpdateAccountSettingsOutput{
		ResponseMetadata: responseMetadata(resp.RequestId, resp.Status, resp.ResultMetadata),
	}, nil
}

/* IP restriction
 */

func (c *QuickSightClient) DescribeIPRestriction(ctx context.Context,
	in *DescribeIPRestrictionInput) (*DescribeIPRestrictionOutput, error) {
	if in == nil {
		in = &DescribeIPRestrictionInput{}
	}
	resp, err := c.api.DescribeIpRestriction(ctx, &quicksight.DescribeIpRestrictionInput{
		AwsAccountId: in.AwsAccountID,
	})
	if err != nil {
		return nil, err
	}
	return &DescribeIPRestrictionOutput{
		ResponseMetadata:                responseMetadata(resp.RequestId, resp.Status, resp.ResultMetadata),
		AwsAccountID:                    resp.AwsAccountId,
		IPRestrictionRuleMap:            resp.IpRestrictionRuleMap,
		VpcIDRestrictionRuleMap:         resp.VpcIdRestrictionRuleMap,
		VpcEndpointIDRestrictionRuleMap: resp.VpcEndpointIdRestrictionRuleMap,
		Enabled:                         resp.Enabled,
	}, nil
}

// UpdateIPRestriction sends empty rule maps as they are. The SDK leaves out
// nil maps only.
func (c *QuickSightClient) UpdateIPRestriction(ctx context.Context,
	in *UpdateIPRestrictionInput) (*UpdateIPRestrictionOutput, error) {
	if in == nil {
		in = &UpdateIPRestrictionInput{}
	}
	resp, err := c.api.UpdateIpRestriction(ctx, &quicksight.UpdateIpRestrictionInput{
		AwsAccountId:                    in.AwsAccountID,
		IpRestrictionRuleMap:            in.IPRestrictionRuleMap,
		VpcIdRestrictionRuleMap:         in.VpcIDRestrictionRuleMap,
		VpcEndpointIdRestrictionRuleMap: in.VpcEndpointIDRestrictionRuleMap,
		Enabled:                         in.Enabled,
	})
	if err != nil {
		return nil, err
	}
	return &UpdateIPRestrictionOutput{
		ResponseMetadata: responseMetadata(resp.RequestId, resp.Status, resp.ResultMetadata),
		AwsAccountID:     resp.AwsAccountId,
	}, nil
}

/* Tags
 */

func (c *QuickSightClient) TagResource(ctx context.Context, in *TagResourceInput) (*TagResourceOutput, error) {
	if in == nil {
		in = &TagResourceInput{}
	}
	resp, err := c.api.TagResource(ctx, &quicksight.TagResourceInput{
		ResourceArn: in.ResourceArn,
		Tags:        sdkTags(in.Tags),
	})
	if err != nil {
		return nil, err
	}
	return &TagResourceOutput{
		ResponseMetadata: responseMetadata(resp.RequestId, resp.Status, resp.ResultMetadata),
	}, nil
}

func (c *QuickSightClient) UntagResource(ctx context.Context, in *UntagResourceInput) (*UntagResourceOutput, error) {
	if in == nil {
		in = &UntagResourceInput{}
	}
	resp, err := c.api.UntagResource(ctx, &quicksight.UntagResourceInput{
		ResourceArn: in.ResourceArn,
		TagKeys:     in.TagKeys,
	})
	if err != nil {
		return nil, err
	}
	return &UntagResourceOutput{
		ResponseMetadata: responseMetadata(resp.RequestId, resp.Status, resp.ResultMetadata),
	}, nil
}

func (c *QuickSightClient) ListTagsForResource(ctx context.Context,
	in *ListTagsForResourceInput) (*ListTagsForResourceOutput, error) {
	if in == nil {
		in = &ListTagsForResourceInput{}
	}
	resp, err := c.api.ListTagsForResource(ctx, &quicksight.ListTagsForResourceInput{
		ResourceArn: in.ResourceArn,
	})
	if err != nil {
		return nil, err
	}
	out := &ListTagsForResourceOutput{
		ResponseMetadata: responseMetadata(resp.RequestId, resp.Status, resp.ResultMetadata),
	}
	for i := range resp.Tags {
		out.Tags = append(out.Tags, Tag{Key: resp.Tags[i].Key, Value: resp.Tags[i].Value})
	}
	return out, nil
}

func sdkTags(tags []Tag) []types.Tag {
	if tags == nil {
		return nil
	}
	out := make([]types.Tag, 0, len(tags))
	for _, t := range tags {
		out = append(out, types.Tag{Key: t.Key, Value: t.Value})
	}
	return out
}

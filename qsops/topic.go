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

var topicUserExperienceVersions = []string{"LEGACY", "NEW_READER_EXPERIENCE"}

var topicIDParam = ParamSpec{
	Name: "TopicId", Flag: "topic-id", Kind: KindString, Required: true,
	Help: "The ID of the topic, unique per AWS Region for each AWS account",
}

// parameters of the nested Topic object
var topicDetailParams = []ParamSpec{
	{Name: "Topic_Name", Flag: "topic-name", Kind: KindString, Help: "The name of the topic"},
	{Name: "Topic_Description", Flag: "topic-description", Kind: KindString, Help: "The description of the topic"},
	{
		Name: "Topic_UserExperienceVersion", Flag: "topic-user-experience-version", Kind: KindEnum,
		EnumValues: topicUserExperienceVersions,
		Help:       "The user experience version of the topic",
	},
	{
		Name: "Topic_DataSetArn", Flag: "topic-dataset-arn", Kind: KindList,
		Help: "The ARN of a dataset to include in the topic. Repeat for more datasets",
	},
	{
		Name: "ConfigOptions_QBusinessInsightsEnabled", Flag: "q-business-insights-enabled", Kind: KindBool,
		Help: "Whether Amazon Q Business insights are enabled for the topic",
	},
}

/* Topic types
 */

type TopicDetails struct {
	Name                  *string             `json:"Name,omitempty"`
	Description           *string             `json:"Description,omitempty"`
	UserExperienceVersion *string             `json:"UserExperienceVersion,omitempty"`
	DataSets              []DatasetMetadata   `json:"DataSets,omitempty"`
	ConfigOptions         *TopicConfigOptions `json:"ConfigOptions,omitempty"`
}

type DatasetMetadata struct {
	DatasetArn         *string `json:"DatasetArn"`
	DatasetName        *string `json:"DatasetName,omitempty"`
	DatasetDescription *string `json:"DatasetDescription,omitempty"`
}

type TopicConfigOptions struct {
	QBusinessInsightsEnabled *bool `json:"QBusinessInsightsEnabled,omitempty"`
}

type TopicSummary struct {
	Arn                   *string `json:"Arn,omitempty"`
	TopicID               *string `json:"TopicId,omitempty"`
	Name                  *string `json:"Name,omitempty"`
	UserExperienceVersion *string `json:"UserExperienceVersion,omitempty"`
}

type CreateTopicInput struct {
	AwsAccountID *string
	TopicID      *string
	Topic        *TopicDetails
	Tags         []Tag
	FolderArns   []string
}

type CreateTopicOutput struct {
	ResponseMetadata
	Arn        *string `json:"Arn,omitempty"`
	TopicID    *string `json:"TopicId,omitempty"`
	RefreshArn *string `json:"RefreshArn,omitempty"`
}

func (o *CreateTopicOutput) fieldValue(name string) (any, bool) {
	if o == nil {
		return nil, false
	}
	switch name {
	case "Arn":
		return o.Arn, true
	case "TopicId":
		return o.TopicID, true
	case "RefreshArn":
		return o.RefreshArn, true
	}
	return o.ResponseMetadata.fieldValue(name)
}

type DescribeTopicInput struct {
	AwsAccountID *string
	TopicID      *string
}

type DescribeTopicOutput struct {
	ResponseMetadata
	Arn     *string       `json:"Arn,omitempty"`
	TopicID *string       `json:"TopicId,omitempty"`
	Topic   *TopicDetails `json:"Topic,omitempty"`
}

func (o *DescribeTopicOutput) fieldValue(name string) (any, bool) {
	if o == nil {
		return nil, false
	}
	switch name {
	case "Arn":
		return o.Arn, true
	case "TopicId":
		return o.TopicID, true
	case "Topic":
		return o.Topic, true
	}
	return o.ResponseMetadata.fieldValue(name)
}

type UpdateTopicInput struct {
	AwsAccountID *string
	TopicID      *string
	Topic        *TopicDetails
}

type UpdateTopicOutput struct {
	ResponseMetadata
	Arn        *string `json:"Arn,omitempty"`
	TopicID    *string `json:"TopicId,omitempty"`
	RefreshArn *string `json:"RefreshArn,omitempty"`
}

func (o *UpdateTopicOutput) fieldValue(name string) (any, bool) {
	if o == nil {
		return nil, false
	}
	switch name {
	case "Arn":
		return o.Arn, true
	case "TopicId":
		return o.TopicID, true
	case "RefreshArn":
		return o.RefreshArn, true
	}
	return o.ResponseMetadata.fieldValue(name)
}

type DeleteTopicInput struct {
	AwsAccountID *string
	TopicID      *string
}

type DeleteTopicOutput struct {
	ResponseMetadata
	Arn     *string `json:"Arn,omitempty"`
	TopicID *string `json:"TopicId,omitempty"`
}

func (o *DeleteTopicOutput) fieldValue(name string) (any, bool) {
	if o == nil {
		return nil, false
	}
	switch name {
	case "Arn":
		return o.Arn, true
	case "TopicId":
		return o.TopicID, true
	}
	return o.ResponseMetadata.fieldValue(name)
}

type ListTopicsInput struct {
	AwsAccountID *string
	MaxResults   *int64
	NextToken    *string
}

type ListTopicsOutput struct {
	ResponseMetadata
	TopicsSummaries []TopicSummary `json:"TopicsSummaries,omitempty"`
	NextToken       *string        `json:"NextToken,omitempty"`
}

func (o *ListTopicsOutput) fieldValue(name string) (any, bool) {
	if o == nil {
		return nil, false
	}
	switch name {
	case "TopicsSummaries":
		return o.TopicsSummaries, true
	case "NextToken":
		return o.NextToken, true
	}
	return o.ResponseMetadata.fieldValue(name)
}

/* Topic operations
 */

var CreateTopicOperation = registerOperation(&OperationDescriptor{
	Name:     "CreateTopic",
	Command:  "create-topic",
	Short:    "Create a new Q topic",
	Mutating: true,
	Params: append(append([]ParamSpec{awsAccountIDParam, topicIDParam}, topicDetailParams...),
		tagParam,
		ParamSpec{
			Name: "FolderArn", Flag: "folder-arn", Kind: KindList,
			Help: "The ARN of a folder to add the topic to. Repeat for more folders",
		},
	),
	PassThruParam: "TopicId",
	Fields:        withMetadata("Arn", "TopicId", "RefreshArn"),
})

var DescribeTopicOperation = registerOperation(&OperationDescriptor{
	Name:          "DescribeTopic",
	Command:       "describe-topic",
	Short:         "Describe a topic",
	Params:        []ParamSpec{awsAccountIDParam, topicIDParam},
	PrimaryField:  "Topic",
	PassThruParam: "TopicId",
	Fields:        withMetadata("Arn", "TopicId", "Topic"),
})

var UpdateTopicOperation = registerOperation(&OperationDescriptor{
	Name:          "UpdateTopic",
	Command:       "update-topic",
	Short:         "Update a topic",
	Mutating:      true,
	Params:        append([]ParamSpec{awsAccountIDParam, topicIDParam}, topicDetailParams...),
	PrimaryField:  "TopicId",
	PassThruParam: "TopicId",
	Fields:        withMetadata("Arn", "TopicId", "RefreshArn"),
})

var DeleteTopicOperation = registerOperation(&OperationDescriptor{
	Name:          "DeleteTopic",
	Command:       "delete-topic",
	Short:         "Delete a topic",
	Mutating:      true,
	Params:        []ParamSpec{awsAccountIDParam, topicIDParam},
	PrimaryField:  "TopicId",
	PassThruParam: "TopicId",
	Fields:        withMetadata("Arn", "TopicId"),
})

var ListTopicsOperation = registerOperation(&OperationDescriptor{
	Name:          "ListTopics",
	Command:       "list-topics",
	Short:         "List all of the topics within an account",
	Params:        []ParamSpec{awsAccountIDParam, maxResultsParam, nextTokenParam},
	PrimaryField:  "TopicsSummaries",
	PassThruParam: "AwsAccountId",
	Fields:        withMetadata("TopicsSummaries", "NextToken"),
})

// buildTopicDetails returns nil when no Topic or ConfigOptions field was set,
// so the nested objects are left out of the request entirely.
func buildTopicDetails(ictx *InvocationContext) *TopicDetails {
	topic := &TopicDetails{}
	topicIsNull := true

	if v := ictx.String("Topic_Name"); v != nil {
		topic.Name = v
		topicIsNull = false
	}
	if v := ictx.String("Topic_Description"); v != nil {
		topic.Description = v
		topicIsNull = false
	}
	if v := ictx.String("Topic_UserExperienceVersion"); v != nil {
		topic.UserExperienceVersion = v
		topicIsNull = false
	}
	if arns := ictx.List("Topic_DataSetArn"); arns != nil {
		topic.DataSets = make([]DatasetMetadata, 0, len(arns))
		for i := range arns {
			topic.DataSets = append(topic.DataSets, DatasetMetadata{DatasetArn: &arns[i]})
		}
		topicIsNull = false
	}

	configOptions := &TopicConfigOptions{}
	configOptionsIsNull := true
	if v := ictx.Bool("ConfigOptions_QBusinessInsightsEnabled"); v != nil {
		configOptions.QBusinessInsightsEnabled = v
		configOptionsIsNull = false
	}
	if !configOptionsIsNull {
		topic.ConfigOptions = configOptions
		topicIsNull = false
	}

	if topicIsNull {
		return nil
	}
	return topic
}

func buildCreateTopicInput(ictx *InvocationContext) *CreateTopicInput {
	return &CreateTopicInput{
		AwsAccountID: ictx.String("AwsAccountId"),
		TopicID:      ictx.String("TopicId"),
		Topic:        buildTopicDetails(ictx),
		Tags:         tagsFromMap(ictx.Map("Tag")),
		FolderArns:   ictx.List("FolderArn"),
	}
}

func buildDescribeTopicInput(ictx *InvocationContext) *DescribeTopicInput {
	return &DescribeTopicInput{
		AwsAccountID: ictx.String("AwsAccountId"),
		TopicID:      ictx.String("TopicId"),
	}
}

func buildUpdateTopicInput(ictx *InvocationContext) *UpdateTopicInput {
	return &UpdateTopicInput{
		AwsAccountID: ictx.String("AwsAccountId"),
		TopicID:      ictx.String("TopicId"),
		Topic:        buildTopicDetails(ictx),
	}
}

func buildDeleteTopicInput(ictx *InvocationContext) *DeleteTopicInput {
	return &DeleteTopicInput{
		AwsAccountID: ictx.String("AwsAccountId"),
		TopicID:      ictx.String("TopicId"),
	}
}

func buildListTopicsInput(ictx *InvocationContext) *ListTopicsInput {
	return &ListTopicsInput{
		AwsAccountID: ictx.String("AwsAccountId"),
		MaxResults:   ictx.Int64("MaxResults"),
		NextToken:    ictx.String("NextToken"),
	}
}

// VCreateTopic creates a topic. With no Topic_* or ConfigOptions_*
// parameters the request carries no Topic object.
func (vcc *QSCommands) VCreateTopic(ctx context.Context, client Client,
	opts *InvocationOptions) (*Outcome[*CreateTopicOutput], error) {
	return invoke(ctx, vcc, client, CreateTopicOperation, opts, buildCreateTopicInput, Client.CreateTopic)
}

func (vcc *QSCommands) VDescribeTopic(ctx context.Context, client Client,
	opts *InvocationOptions) (*Outcome[*DescribeTopicOutput], error) {
	return invoke(ctx, vcc, client, DescribeTopicOperation, opts, buildDescribeTopicInput, Client.DescribeTopic)
}

func (vcc *QSCommands) VUpdateTopic(ctx context.Context, client Client,
	opts *InvocationOptions) (*Outcome[*UpdateTopicOutput], error) {
	return invoke(ctx, vcc, client, UpdateTopicOperation, opts, buildUpdateTopicInput, Client.UpdateTopic)
}

func (vcc *QSCommands) VDeleteTopic(ctx context.Context, client Client,
	opts *InvocationOptions) (*Outcome[*DeleteTopicOutput], error) {
	return invoke(ctx, vcc, client, DeleteTopicOperation, opts, buildDeleteTopicInput, Client.DeleteTopic)
}

func (vcc *QSCommands) VListTopics(ctx context.Context, client Client,
	opts *InvocationOptions) (*Outcome[*ListTopicsOutput], error) {
	return invoke(ctx, vcc, client, ListTopicsOperation, opts, buildListTopicsInput, Client.ListTopics)
}

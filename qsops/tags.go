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

	mapset "github.com/deckarep/golang-set/v2"
)

var resourceArnParam = ParamSpec{
	Name: "ResourceArn", Flag: "resource-arn", Kind: KindString, Required: true,
	Help: "The ARN of the resource",
}

type TagResourceInput struct {
	ResourceArn *string
	Tags        []Tag
}

type TagResourceOutput struct {
	ResponseMetadata
}

func (o *TagResourceOutput) fieldValue(name string) (any, bool) {
	if o == nil {
		return nil, false
	}
	return o.ResponseMetadata.fieldValue(name)
}

type UntagResourceInput struct {
	ResourceArn *string
	TagKeys     []string
}

type UntagResourceOutput struct {
	ResponseMetadata
}

func (o *UntagResourceOutput) fieldValue(name string) (any, bool) {
	if o == nil {
		return nil, false
	}
	return o.ResponseMetadata.fieldValue(name)
}

type ListTagsForResourceInput struct {
	ResourceArn *string
}

type ListTagsForResourceOutput struct {
	ResponseMetadata
	Tags []Tag `json:"Tags,omitempty"`
}

func (o *ListTagsForResourceOutput) fieldValue(name string) (any, bool) {
	if o == nil {
		return nil, false
	}
	if name == "Tags" {
		return o.Tags, true
	}
	return o.ResponseMetadata.fieldValue(name)
}

var TagResourceOperation = registerOperation(&OperationDescriptor{
	Name:     "TagResource",
	Command:  "tag-resource",
	Short:    "Assign tags to a resource",
	Mutating: true,
	Params: []ParamSpec{
		resourceArnParam,
		{
			Name: "Tag", Flag: "tag", Kind: KindMap, SingleValued: true, Required: true,
			Help: "A tag to assign, as key=value. Repeat for more tags",
		},
	},
	PassThruParam: "ResourceArn",
	Fields:        withMetadata(),
})

var UntagResourceOperation = registerOperation(&OperationDescriptor{
	Name:     "UntagResource",
	Command:  "untag-resource",
	Short:    "Remove tags from a resource",
	Mutating: true,
	Params: []ParamSpec{
		resourceArnParam,
		{
			Name: "TagKey", Flag: "tag-key", Kind: KindList, Required: true,
			Help: "The key of a tag to remove. Repeat for more keys",
		},
	},
	PassThruParam: "ResourceArn",
	Fields:        withMetadata(),
})

var ListTagsForResourceOperation = registerOperation(&OperationDescriptor{
	Name:          "ListTagsForResource",
	Command:       "list-tags-for-resource",
	Short:         "List the tags assigned to a resource",
	Params:        []ParamSpec{resourceArnParam},
	PrimaryField:  "Tags",
	PassThruParam: "ResourceArn",
	Fields:        withMetadata("Tags"),
})

func buildTagResourceInput(ictx *InvocationContext) *TagResourceInput {
	return &TagResourceInput{
		ResourceArn: ictx.String("ResourceArn"),
		Tags:        tagsFromMap(ictx.Map("Tag")),
	}
}

// buildUntagResourceInput drops repeated keys, keeping the first occurrence.
func buildUntagResourceInput(ictx *InvocationContext) *UntagResourceInput {
	in := &UntagResourceInput{ResourceArn: ictx.String("ResourceArn")}
	keys := ictx.List("TagKey")
	if keys == nil {
		return in
	}
	seen := mapset.NewThreadUnsafeSet[string]()
	in.TagKeys = make([]string, 0, len(keys))
	for _, k := range keys {
		if seen.Add(k) {
			in.TagKeys = append(in.TagKeys, k)
		}
	}
	return in
}

func buildListTagsForResourceInput(ictx *InvocationContext) *ListTagsForResourceInput {
	return &ListTagsForResourceInput{ResourceArn: ictx.String("ResourceArn")}
}

func (vcc *QSCommands) VTagResource(ctx context.Context, client Client,
	opts *InvocationOptions) (*Outcome[*TagResourceOutput], error) {
	return invoke(ctx, vcc, client, TagResourceOperation, opts, buildTagResourceInput, Client.TagResource)
}

func (vcc *QSCommands) VUntagResource(ctx context.Context, client Client,
	opts *InvocationOptions) (*Outcome[*UntagResourceOutput], error) {
	return invoke(ctx, vcc, client, UntagResourceOperation, opts, buildUntagResourceInput, Client.UntagResource)
}

func (vcc *QSCommands) VListTagsForResource(ctx context.Context, client Client,
	opts *InvocationOptions) (*Outcome[*ListTagsForResourceOutput], error) {
	return invoke(ctx, vcc, client, ListTagsForResourceOperation, opts,
		buildListTagsForResourceInput, Client.ListTagsForResource)
}

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

type DescribeIPRestrictionInput struct {
	AwsAccountID *string
}

type DescribeIPRestrictionOutput struct {
	ResponseMetadata
	AwsAccountID                    *string           `json:"AwsAccountId,omitempty"`
	IPRestrictionRuleMap            map[string]string `json:"IpRestrictionRuleMap,omitempty"`
	VpcIDRestrictionRuleMap         map[string]string `json:"VpcIdRestrictionRuleMap,omitempty"`
	VpcEndpointIDRestrictionRuleMap map[string]string `json:"VpcEndpointIdRestrictionRuleMap,omitempty"`
	Enabled                         *bool             `json:"Enabled,omitempty"`
}

func (o *DescribeIPRestrictionOutput) fieldValue(name string) (any, bool) {
	if o == nil {
		return nil, false
	}
	switch name {
	case "AwsAccountId":
		return o.AwsAccountID, true
	case "IpRestrictionRuleMap":
		return o.IPRestrictionRuleMap, true
	case "VpcIdRestrictionRuleMap":
		return o.VpcIDRestrictionRuleMap, true
	case "VpcEndpointIdRestrictionRuleMap":
		return o.VpcEndpointIDRestrictionRuleMap, true
	case "Enabled":
		return o.Enabled, true
	}
	return o.ResponseMetadata.fieldValue(name)
}

// UpdateIPRestrictionInput replaces the restriction rules of an account. A
// nil rule map is left unchanged by the service while an empty one clears
// the rules.
type UpdateIPRestrictionInput struct {
	AwsAccountID                    *string
	IPRestrictionRuleMap            map[string]string
	VpcIDRestrictionRuleMap         map[string]string
	VpcEndpointIDRestrictionRuleMap map[string]string
	Enabled                         *bool
}

type UpdateIPRestrictionOutput struct {
	ResponseMetadata
	AwsAccountID *string `json:"AwsAccountId,omitempty"`
}

func (o *UpdateIPRestrictionOutput) fieldValue(name string) (any, bool) {
	if o == nil {
		return nil, false
	}
	if name == "AwsAccountId" {
		return o.AwsAccountID, true
	}
	return o.ResponseMetadata.fieldValue(name)
}

var DescribeIPRestrictionOperation = registerOperation(&OperationDescriptor{
	Name:          "DescribeIpRestriction",
	Command:       "describe-ip-restriction",
	Short:         "Describe the IP and VPC restrictions of an account",
	Params:        []ParamSpec{awsAccountIDParam},
	PassThruParam: "AwsAccountId",
	Fields: withMetadata("AwsAccountId", "IpRestrictionRuleMap", "VpcIdRestrictionRuleMap",
		"VpcEndpointIdRestrictionRuleMap", "Enabled"),
})

var UpdateIPRestrictionOperation = registerOperation(&OperationDescriptor{
	Name:     "UpdateIpRestriction",
	Command:  "update-ip-restriction",
	Short:    "Update the IP and VPC restrictions of an account",
	Mutating: true,
	Params: []ParamSpec{
		awsAccountIDParam,
		{
			Name: "IpRestrictionRuleMap", Flag: "ip-restriction-rule", Kind: KindMap, SingleValued: true,
			Help: `An allowed CIDR range as cidr=description. Pass "" to remove every rule`,
		},
		{
			Name: "VpcIdRestrictionRuleMap", Flag: "vpc-id-restriction-rule", Kind: KindMap, SingleValued: true,
			Help: `An allowed VPC as vpc-id=description. Pass "" to remove every rule`,
		},
		{
			Name: "VpcEndpointIdRestrictionRuleMap", Flag: "vpc-endpoint-id-restriction-rule", Kind: KindMap,
			SingleValued: true,
			Help:         `An allowed VPC endpoint as endpoint-id=description. Pass "" to remove every rule`,
		},
		{
			Name: "Enabled", Flag: "enabled", Kind: KindBool,
			Help: "Whether IP rules are turned on",
		},
	},
	PassThruParam: "AwsAccountId",
	Fields:        withMetadata("AwsAccountId"),
})

func buildDescribeIPRestrictionInput(ictx *InvocationContext) *DescribeIPRestrictionInput {
	return &DescribeIPRestrictionInput{AwsAccountID: ictx.String("AwsAccountId")}
}

func buildUpdateIPRestrictionInput(ictx *InvocationContext) *UpdateIPRestrictionInput {
	return &UpdateIPRestrictionInput{
		AwsAccountID:                    ictx.String("AwsAccountId"),
		IPRestrictionRuleMap:            stringMap(ictx.Map("IpRestrictionRuleMap")),
		VpcIDRestrictionRuleMap:         stringMap(ictx.Map("VpcIdRestrictionRuleMap")),
		VpcEndpointIDRestrictionRuleMap: stringMap(ictx.Map("VpcEndpointIdRestrictionRuleMap")),
		Enabled:                         ictx.Bool("Enabled"),
	}
}

func (vcc *QSCommands) VDescribeIPRestriction(ctx context.Context, client Client,
	opts *InvocationOptions) (*Outcome[*DescribeIPRestrictionOutput], error) {
	return invoke(ctx, vcc, client, DescribeIPRestrictionOperation, opts,
		buildDescribeIPRestrictionInput, Client.DescribeIPRestriction)
}

func (vcc *QSCommands) VUpdateIPRestriction(ctx context.Context, client Client,
	opts *InvocationOptions) (*Outcome[*UpdateIPRestrictionOutput], error) {
	return invoke(ctx, vcc, client, UpdateIPRestrictionOperation, opts,
		buildUpdateIPRestrictionInput, Client.UpdateIPRestriction)
}

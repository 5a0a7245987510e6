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

type AccountSettings struct {
	AccountName                  *string `json:"AccountName,omitempty"`
	Edition                      *string `json:"Edition,omitempty"`
	DefaultNamespace             *string `json:"DefaultNamespace,omitempty"`
	NotificationEmail            *string `json:"NotificationEmail,omitempty"`
	PublicSharingEnabled         *bool   `json:"PublicSharingEnabled,omitempty"`
	TerminationProtectionEnabled *bool   `json:"TerminationProtectionEnabled,omitempty"`
}

type DescribeAccountSettingsInput struct {
	AwsAccountID *string
}

type DescribeAccountSettingsOutput struct {
	ResponseMetadata
	AccountSettings *AccountSettings `json:"AccountSettings,omitempty"`
}

func (o *DescribeAccountSettingsOutput) fieldValue(name string) (any, bool) {
	if o == nil {
		return nil, false
	}
	if name == "AccountSettings" {
		return o.AccountSettings, true
	}
	return o.ResponseMetadata.fieldValue(name)
}

type UpdateAccountSettingsInput struct {
	AwsAccountID                 *string
	DefaultNamespace             *string
	NotificationEmail            *string
	TerminationProtectionEnabled *bool
}

type UpdateAccountSettingsOutput struct {
	ResponseMetadata
}

func (o *UpdateAccountSettingsOutput) fieldValue(name string) (any, bool) {
	if o == nil {
		return nil, false
	}
	return o.ResponseMetadata.fieldValue(name)
}

var DescribeAccountSettingsOperation = registerOperation(&OperationDescriptor{
	Name:          "DescribeAccountSettings",
	Command:       "describe-account-settings",
	Short:         "Describe the settings of an account",
	Params:        []ParamSpec{awsAccountIDParam},
	PrimaryField:  "AccountSettings",
	PassThruParam: "AwsAccountId",
	Fields:        withMetadata("AccountSettings"),
})

var UpdateAccountSettingsOperation = registerOperation(&OperationDescriptor{
	Name:     "UpdateAccountSettings",
	Command:  "update-account-settings",
	Short:    "Update the settings of an account",
	Mutating: true,
	Params: []ParamSpec{
		awsAccountIDParam,
		{
			Name: "DefaultNamespace", Flag: "default-namespace", Kind: KindString, Required: true,
			Help: "The default namespace for the account",
		},
		{
			Name: "NotificationEmail", Flag: "notification-email", Kind: KindString,
			Help: "The email address that receives notifications about the subscription",
		},
		{
			Name: "TerminationProtectionEnabled", Flag: "termination-protection-enabled", Kind: KindBool,
			Help: "Whether the account is protected from being deleted",
		},
	},
	PassThruParam: "DefaultNamespace",
	Fields:        withMetadata(),
})

func buildDescribeAccountSettingsInput(ictx *InvocationContext) *DescribeAccountSettingsInput {
	return &DescribeAccountSettingsInput{AwsAccountID: ictx.String("AwsAccountId")}
}

func buildUpdateAccountSettingsInput(ictx *InvocationContext) *UpdateAccountSettingsInput {
	return &UpdateAccountSettingsInput{
		AwsAccountID:                 ictx.String("AwsAccountId"),
		DefaultNamespace:             ictx.String("DefaultNamespace"),
		NotificationEmail:            ictx.String("NotificationEmail"),
		TerminationProtectionEnabled: ictx.Bool("TerminationProtectionEnabled"),
	}
}

func (vcc *QSCommands) VDescribeAccountSettings(ctx context.Context, client Client,
	opts *InvocationOptions) (*Outcome[*DescribeAccountSettingsOutput], error) {
	return invoke(ctx, vcc, client, DescribeAccountSettingsOperation, opts,
		buildDescribeAccountSettingsInput, Client.DescribeAccountSettings)
}

func (vcc *QSCommands) VUpdateAccountSettings(ctx context.Context, client Client,
	opts *InvocationOptions) (*Outcome[*UpdateAccountSettingsOutput], error) {
	return invoke(ctx, vcc, client, UpdateAccountSettingsOperation, opts,
		buildUpdateAccountSettingsInput, Client.UpdateAccountSettings)
}

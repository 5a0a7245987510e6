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
	"errors"
	"net"
	"testing"
	"time"

	"github.com/aws/smithy-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qsadmin/qsadmin/svcfault"
)

func TestEveryOperationHasARunner(t *testing.T) {
	ops := Operations()
	assert.Len(t, ops, len(runners))
	for _, desc := range ops {
		_, found := runners[desc.Name]
		assert.True(t, found, "no runner for %s", desc.Name)
	}
}

func TestMissingRequiredParamIssuesNoCall(t *testing.T) {
	var logStr bytes.Buffer
	vcc := makeTestCommands(&logStr)
	for _, desc := range Operations() {
		for _, name := range desc.RequiredParams() {
			client := newFakeClient()
			params := requiredParams(desc)
			delete(params, name)

			_, err := runners[desc.Name](context.Background(), vcc, client,
				&InvocationOptions{Params: params, Force: true})
			require.Error(t, err, "%s without %s", desc.Name, name)
			assert.ErrorIs(t, err, ErrValidation)
			assert.ErrorContains(t, err, name+": Required value")
			assert.Equal(t, 0, client.totalCalls(), "%s without %s", desc.Name, name)
		}
	}
}

func TestRequiredOnlyInvocationSucceeds(t *testing.T) {
	var logStr bytes.Buffer
	vcc := makeTestCommands(&logStr)
	for _, desc := range Operations() {
		client := newFakeClient()
		_, err := runners[desc.Name](context.Background(), vcc, client,
			&InvocationOptions{Params: requiredParams(desc), Force: true})
		assert.NoError(t, err, desc.Name)
		assert.Equal(t, 1, client.callCount(desc.Name), desc.Name)
	}
}

func TestCreateTopicRequestIsSparse(t *testing.T) {
	var logStr bytes.Buffer
	vcc := makeTestCommands(&logStr)

	// only the required parameters: no Topic object at all
	client := newFakeClient()
	_, err := vcc.VCreateTopic(context.Background(), client, &InvocationOptions{
		Params: map[string]any{"AwsAccountId": "111122223333", "TopicId": "sales"},
		Force:  true,
	})
	require.NoError(t, err)
	expected := &CreateTopicInput{AwsAccountID: ptr("111122223333"), TopicID: ptr("sales")}
	got := client.lastRequest("CreateTopic").(*CreateTopicInput)
	assert.Empty(t, cmp.Diff(expected, got))
	assert.Nil(t, got.Topic)

	// a Topic field without any ConfigOptions field
	client = newFakeClient()
	_, err = vcc.VCreateTopic(context.Background(), client, &InvocationOptions{
		Params: map[string]any{"AwsAccountId": "111122223333", "TopicId": "sales", "Topic_Name": "Sales"},
		Force:  true,
	})
	require.NoError(t, err)
	got = client.lastRequest("CreateTopic").(*CreateTopicInput)
	require.NotNil(t, got.Topic)
	assert.Nil(t, got.Topic.ConfigOptions)
	assert.Empty(t, cmp.Diff(&TopicDetails{Name: ptr("Sales")}, got.Topic))

	// a ConfigOptions field alone still creates the enclosing Topic
	client = newFakeClient()
	_, err = vcc.VCreateTopic(context.Background(), client, &InvocationOptions{
		Params: map[string]any{
			"AwsAccountId": "111122223333", "TopicId": "sales",
			"ConfigOptions_QBusinessInsightsEnabled": false,
		},
		Force: true,
	})
	require.NoError(t, err)
	got = client.lastRequest("CreateTopic").(*CreateTopicInput)
	expectedTopic := &TopicDetails{ConfigOptions: &TopicConfigOptions{QBusinessInsightsEnabled: ptr(false)}}
	assert.Empty(t, cmp.Diff(expectedTopic, got.Topic))
}

func TestCreateTopicRequestWithEverything(t *testing.T) {
	var logStr bytes.Buffer
	vcc := makeTestCommands(&logStr)
	client := newFakeClient()
	tags := NewOrderedMap()
	tags.Add("team", "bi")
	tags.Add("env", "prod")

	_, err := vcc.VCreateTopic(context.Background(), client, &InvocationOptions{
		Params: map[string]any{
			"AwsAccountId":                "111122223333",
			"TopicId":                     "sales",
			"Topic_Name":                  "Sales",
			"Topic_Description":           "Sales questions",
			"Topic_UserExperienceVersion": "new_reader_experience",
			"Topic_DataSetArn":            "arn:ds1, arn:ds2",
			"Tag":                         tags,
			"FolderArn":                   []string{"arn:folder"},
		},
		Force: true,
	})
	require.NoError(t, err)

	expected := &CreateTopicInput{
		AwsAccountID: ptr("111122223333"),
		TopicID:      ptr("sales"),
		Topic: &TopicDetails{
			Name:                  ptr("Sales"),
			Description:           ptr("Sales questions"),
			UserExperienceVersion: ptr("NEW_READER_EXPERIENCE"),
			DataSets: []DatasetMetadata{
				{DatasetArn: ptr("arn:ds1")},
				{DatasetArn: ptr("arn:ds2")},
			},
		},
		Tags: []Tag{
			{Key: ptr("team"), Value: ptr("bi")},
			{Key: ptr("env"), Value: ptr("prod")},
		},
		FolderArns: []string{"arn:folder"},
	}
	assert.Empty(t, cmp.Diff(expected, client.lastRequest("CreateTopic")))
}

func TestSelectAndPassThruAreExclusive(t *testing.T) {
	var logStr bytes.Buffer
	vcc := makeTestCommands(&logStr)
	for _, desc := range Operations() {
		client := newFakeClient()
		_, err := runners[desc.Name](context.Background(), vcc, client, &InvocationOptions{
			Params:   requiredParams(desc),
			Select:   "RequestId",
			PassThru: true,
			Force:    true,
		})
		assert.ErrorIs(t, err, ErrValidation, desc.Name)
		assert.ErrorContains(t, err, "PassThru: Forbidden", desc.Name)
		assert.Equal(t, 0, client.totalCalls(), desc.Name)
	}
}

func TestPassThruWithSelectAll(t *testing.T) {
	var logStr bytes.Buffer
	vcc := makeTestCommands(&logStr)
	client := newFakeClient()
	params := map[string]any{"AwsAccountId": "111122223333", "TopicId": "sales"}

	outcome, err := vcc.VDeleteTopic(context.Background(), client,
		&InvocationOptions{Params: params, Select: "*", PassThru: true, Force: true})
	require.NoError(t, err)
	assert.Equal(t, "sales", outcome.Value)
	assert.Equal(t, 1, client.callCount("DeleteTopic"))
}

func TestProjectWholeResponseAndField(t *testing.T) {
	var logStr bytes.Buffer
	vcc := makeTestCommands(&logStr)
	client := newFakeClient()
	resp := &DescribeTopicOutput{
		Arn:     ptr("arn:aws:quicksight:us-west-2:111122223333:topic/sales"),
		TopicID: ptr("sales"),
		Topic:   &TopicDetails{Name: ptr("Sales")},
	}
	client.responses["DescribeTopic"] = resp
	params := map[string]any{"AwsAccountId": "111122223333", "TopicId": "sales"}

	outcome, err := vcc.VDescribeTopic(context.Background(), client,
		&InvocationOptions{Params: params, Select: "*"})
	require.NoError(t, err)
	assert.Same(t, resp, outcome.Value)
	assert.Same(t, resp, outcome.Response)
	assert.NotEmpty(t, outcome.InvocationID)

	outcome, err = vcc.VDescribeTopic(context.Background(), client,
		&InvocationOptions{Params: params, Select: "Arn"})
	require.NoError(t, err)
	assert.Same(t, resp.Arn, outcome.Value)

	// the primary field is used when nothing is selected
	outcome, err = vcc.VDescribeTopic(context.Background(), client, &InvocationOptions{Params: params})
	require.NoError(t, err)
	assert.Same(t, resp.Topic, outcome.Value)

	// an unknown field is refused before the call
	calls := client.callCount("DescribeTopic")
	_, err = vcc.VDescribeTopic(context.Background(), client,
		&InvocationOptions{Params: params, Select: "Nope"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorContains(t, err, `Select: Unsupported value: "Nope"`)
	assert.Equal(t, calls, client.callCount("DescribeTopic"))
}

func TestEchoSelector(t *testing.T) {
	var logStr bytes.Buffer
	vcc := makeTestCommands(&logStr)
	client := newFakeClient()
	params := map[string]any{"AwsAccountId": "111122223333", "TopicId": "sales"}

	outcome, err := vcc.VDeleteTopic(context.Background(), client,
		&InvocationOptions{Params: params, PassThru: true, Force: true})
	require.NoError(t, err)
	assert.Equal(t, "sales", outcome.Value)
	assert.Contains(t, logStr.String(), "deprecated")
	assert.Equal(t, 1, client.callCount("DeleteTopic"))

	outcome, err = vcc.VDeleteTopic(context.Background(), client,
		&InvocationOptions{Params: params, Select: "^AwsAccountId", Force: true})
	require.NoError(t, err)
	assert.Equal(t, "111122223333", outcome.Value)

	_, err = vcc.VDeleteTopic(context.Background(), client,
		&InvocationOptions{Params: params, Select: "^Missing", Force: true})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 2, client.callCount("DeleteTopic"))
}

func TestNameResolutionFaultIsRewrapped(t *testing.T) {
	var logStr bytes.Buffer
	vcc := makeTestCommands(&logStr)
	client := newFakeClient()
	dnsErr := &net.DNSError{Err: "no such host", Name: "quicksight.us-west-2.amazonaws.com", IsNotFound: true}
	cause := &smithy.OperationError{ServiceID: "QuickSight", OperationName: "ListFolders", Err: dnsErr}
	client.err = cause

	_, err := vcc.VListFolders(context.Background(), client,
		&InvocationOptions{Params: map[string]any{"AwsAccountId": "111122223333"}})
	require.Error(t, err)

	var resolutionErr *EndpointResolutionError
	require.True(t, errors.As(err, &resolutionErr))
	assert.Equal(t, "ListFolders", resolutionErr.Operation)
	assert.Equal(t, testEndpoint, resolutionErr.Endpoint)
	assert.Same(t, cause, resolutionErr.Err)
	assert.Contains(t, err.Error(), "ListFolders")
	assert.Contains(t, err.Error(), testEndpoint)

	var gotDNS *net.DNSError
	assert.True(t, errors.As(err, &gotDNS))
	assert.Same(t, dnsErr, gotDNS)
}

func TestOtherFaultsPassThroughUnchanged(t *testing.T) {
	var logStr bytes.Buffer
	vcc := makeTestCommands(&logStr)
	client := newFakeClient()
	fault := svcfault.New(svcfault.ResourceNotFound).WithMessage("no topic sales")
	client.err = fault

	_, err := vcc.VDescribeTopic(context.Background(), client,
		&InvocationOptions{Params: map[string]any{"AwsAccountId": "111122223333", "TopicId": "sales"}})
	assert.Same(t, fault, err)
	assert.Contains(t, logStr.String(), "Invocation failed")
	assert.Contains(t, logStr.String(), "ResourceNotFoundException")
}

func TestSameRequestTwiceCallsTwice(t *testing.T) {
	var logStr bytes.Buffer
	vcc := makeTestCommands(&logStr)
	client := newFakeClient()
	opts := &InvocationOptions{Params: map[string]any{"AwsAccountId": "111122223333"}}

	_, err := vcc.VDescribeAccountSettings(context.Background(), client, opts)
	require.NoError(t, err)
	_, err = vcc.VDescribeAccountSettings(context.Background(), client, opts)
	require.NoError(t, err)
	assert.Equal(t, 2, client.callCount("DescribeAccountSettings"))
}

func TestConfirmationGate(t *testing.T) {
	var logStr bytes.Buffer
	vcc := makeTestCommands(&logStr)
	params := map[string]any{"AwsAccountId": "111122223333", "FolderId": "reports"}

	// no confirmer and no force
	client := newFakeClient()
	_, err := vcc.VDeleteFolder(context.Background(), client, &InvocationOptions{Params: params})
	assert.ErrorIs(t, err, ErrConfirmationDeclined)
	assert.Equal(t, 0, client.totalCalls())

	// declined
	var askedOp, askedTarget string
	vcc.Confirmer = ConfirmerFunc(func(_ context.Context, operation, target string) (bool, error) {
		askedOp, askedTarget = operation, target
		return false, nil
	})
	_, err = vcc.VDeleteFolder(context.Background(), client, &InvocationOptions{Params: params})
	assert.ErrorIs(t, err, ErrConfirmationDeclined)
	assert.Equal(t, "DeleteFolder", askedOp)
	assert.Equal(t, "reports", askedTarget)
	assert.Equal(t, 0, client.totalCalls())

	// confirmer failure
	vcc.Confirmer = ConfirmerFunc(func(context.Context, string, string) (bool, error) {
		return false, errors.New("stdin is closed")
	})
	_, err = vcc.VDeleteFolder(context.Background(), client, &InvocationOptions{Params: params})
	assert.ErrorContains(t, err, "stdin is closed")
	assert.Equal(t, 0, client.totalCalls())

	// accepted
	vcc.Confirmer = ConfirmerFunc(func(context.Context, string, string) (bool, error) { return true, nil })
	_, err = vcc.VDeleteFolder(context.Background(), client, &InvocationOptions{Params: params})
	assert.NoError(t, err)
	assert.Equal(t, 1, client.callCount("DeleteFolder"))

	// read-only operations never ask
	vcc.Confirmer = ConfirmerFunc(func(context.Context, string, string) (bool, error) {
		t.Fatal("confirmation asked for a read-only operation")
		return false, nil
	})
	_, err = vcc.VDescribeFolder(context.Background(), client, &InvocationOptions{Params: params})
	assert.NoError(t, err)
}

func TestCancelWhileConfirming(t *testing.T) {
	var logStr bytes.Buffer
	vcc := makeTestCommands(&logStr)
	client := newFakeClient()
	ctx, cancel := context.WithCancel(context.Background())
	vcc.Confirmer = ConfirmerFunc(func(ctx context.Context, _, _ string) (bool, error) {
		cancel()
		<-ctx.Done()
		return false, ctx.Err()
	})

	_, err := vcc.VDeleteTopic(ctx, client, &InvocationOptions{
		Params: map[string]any{"AwsAccountId": "111122223333", "TopicId": "sales"},
	})
	assert.ErrorIs(t, err, ErrInvocationCancelled)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrConfirmationDeclined)
	var cancelled *CancelledError
	require.True(t, errors.As(err, &cancelled))
	assert.Equal(t, "DeleteTopic", cancelled.Operation)
	assert.Equal(t, 0, client.totalCalls())
	assert.Contains(t, logStr.String(), StateCancelled.String())
}

func TestCancelBeforeDispatch(t *testing.T) {
	var logStr bytes.Buffer
	vcc := makeTestCommands(&logStr)
	client := newFakeClient()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := vcc.VListTopics(ctx, client,
		&InvocationOptions{Params: map[string]any{"AwsAccountId": "111122223333"}})
	assert.ErrorIs(t, err, ErrInvocationCancelled)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, client.totalCalls())
}

func TestCancelInFlight(t *testing.T) {
	var logStr bytes.Buffer
	vcc := makeTestCommands(&logStr)
	client := newFakeClient()
	client.block = true
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		select {
		case <-client.started:
		case <-time.After(5 * time.Second):
		}
		cancel()
	}()

	outcome, err := vcc.VListTopics(ctx, client,
		&InvocationOptions{Params: map[string]any{"AwsAccountId": "111122223333"}})
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, ErrInvocationCancelled)
	var canceled *smithy.CanceledError
	assert.True(t, errors.As(err, &canceled))
	assert.Equal(t, 1, client.callCount("ListTopics"))
	assert.Contains(t, logStr.String(), "Invocation cancelled")
}

func TestDeadlineIsAFailure(t *testing.T) {
	var logStr bytes.Buffer
	vcc := makeTestCommands(&logStr)
	client := newFakeClient()
	client.err = &smithy.CanceledError{Err: context.DeadlineExceeded}

	_, err := vcc.VListTopics(context.Background(), client,
		&InvocationOptions{Params: map[string]any{"AwsAccountId": "111122223333"}})
	assert.NotErrorIs(t, err, ErrInvocationCancelled)
	assert.Same(t, client.err, err)
}

func TestNilClient(t *testing.T) {
	var logStr bytes.Buffer
	vcc := makeTestCommands(&logStr)
	_, err := vcc.VListTopics(context.Background(), nil,
		&InvocationOptions{Params: map[string]any{"AwsAccountId": "111122223333"}})
	assert.ErrorIs(t, err, ErrNoClient)
}

func TestUntagDropsRepeatedKeys(t *testing.T) {
	var logStr bytes.Buffer
	vcc := makeTestCommands(&logStr)
	client := newFakeClient()
	_, err := vcc.VUntagResource(context.Background(), client, &InvocationOptions{
		Params: map[string]any{"ResourceArn": "arn:topic", "TagKey": []string{"team", "env", "team"}},
		Force:  true,
	})
	require.NoError(t, err)
	got := client.lastRequest("UntagResource").(*UntagResourceInput)
	assert.Equal(t, []string{"team", "env"}, got.TagKeys)
}

func TestUpdateIPRestrictionSendsEmptyRules(t *testing.T) {
	var logStr bytes.Buffer
	vcc := makeTestCommands(&logStr)
	client := newFakeClient()
	_, err := vcc.VUpdateIPRestriction(context.Background(), client, &InvocationOptions{
		Params: map[string]any{"AwsAccountId": "111122223333", "IpRestrictionRuleMap": []string{""}},
		Force:  true,
	})
	require.NoError(t, err)
	got := client.lastRequest("UpdateIpRestriction").(*UpdateIPRestrictionInput)
	require.NotNil(t, got.IPRestrictionRuleMap)
	assert.Empty(t, got.IPRestrictionRuleMap)
	assert.Nil(t, got.VpcIDRestrictionRuleMap)
}

func TestEveryFieldIsProjectable(t *testing.T) {
	outputs := map[string]response{
		"CreateTopic":             &CreateTopicOutput{},
		"DescribeTopic":           &DescribeTopicOutput{},
		"UpdateTopic":             &UpdateTopicOutput{},
		"DeleteTopic":             &DeleteTopicOutput{},
		"ListTopics":              &ListTopicsOutput{},
		"CreateFolder":            &CreateFolderOutput{},
		"DescribeFolder":          &DescribeFolderOutput{},
		"DeleteFolder":            &DeleteFolderOutput{},
		"ListFolders":             &ListFoldersOutput{},
		"CreateNamespace":         &CreateNamespaceOutput{},
		"DescribeNamespace":       &DescribeNamespaceOutput{},
		"DeleteNamespace":         &DeleteNamespaceOutput{},
		"ListNamespaces":          &ListNamespacesOutput{},
		"DescribeAccountSettings": &DescribeAccountSettingsOutput{},
		"UpdateAccountSettings":   &UpdateAccountSettingsOutput{},
		"DescribeIpRestriction":   &DescribeIPRestrictionOutput{},
		"UpdateIpRestriction":     &UpdateIPRestrictionOutput{},
		"TagResource":             &TagResourceOutput{},
		"UntagResource":           &UntagResourceOutput{},
		"ListTagsForResource":     &ListTagsForResourceOutput{},
	}
	for _, desc := range Operations() {
		out, found := outputs[desc.Name]
		require.True(t, found, desc.Name)
		for _, name := range desc.Fields {
			_, ok := out.fieldValue(name)
			assert.True(t, ok, "%s has no field %s", desc.Name, name)
		}
		if desc.PrimaryField != "" {
			assert.True(t, desc.HasField(desc.PrimaryField), desc.Name)
		}
		if desc.PassThruParam != "" {
			_, found := desc.Param(desc.PassThruParam)
			assert.True(t, found, desc.Name)
		}
	}
}

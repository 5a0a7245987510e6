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
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/tonglil/buflogr"
	"go.uber.org/goleak"

	"github.com/qsadmin/qsadmin/qsops/util"
	"github.com/qsadmin/qsadmin/qsops/vlog"
	"github.com/qsadmin/qsadmin/svcfault"
)

type recordedRequest struct {
	method  string
	path    string
	escaped string
	query   string
	body    []byte
	header  http.Header
}

// fakeService is an httptest server that records requests and replies with
// the configured handler.
type fakeService struct {
	srv      *httptest.Server
	mu       sync.Mutex
	requests []recordedRequest
	reply    func(w http.ResponseWriter, r *http.Request)
}

func newFakeService(t *testing.T) *fakeService {
	f := &fakeService{}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.requests = append(f.requests, recordedRequest{
			method:  r.Method,
			path:    r.URL.Path,
			escaped: r.URL.EscapedPath(),
			query:   r.URL.RawQuery,
			body:    body,
			header:  r.Header.Clone(),
		})
		reply := f.reply
		f.mu.Unlock()
		if reply != nil {
			reply(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Amzn-RequestId", "req-from-header")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeService) last() recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func (f *fakeService) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeService) client(logStr *bytes.Buffer) *QuickSightClient {
	cfg := aws.Config{
		Region:      "us-west-2",
		Credentials: credentials.NewStaticCredentialsProvider("AKIDEXAMPLE", "SECRET", ""),
		HTTPClient:  f.srv.Client(),
	}
	return NewQuickSightClient(cfg, f.srv.URL, vlog.Printer{Log: buflogr.NewWithBuffer(logStr)})
}

func TestQuickSightClientRoutes(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	var logStr bytes.Buffer
	svc := newFakeService(t)
	defer svc.srv.Close()
	c := svc.client(&logStr)
	ctx := context.Background()
	account := ptr("111122223333")

	tests := []struct {
		name   string
		call   func() error
		method string
		path   string
		query  string
		body   string
	}{
		{
			name: "CreateTopic",
			call: func() error {
				_, err := c.CreateTopic(ctx, &CreateTopicInput{AwsAccountID: account, TopicID: ptr("sales"),
					Topic: &TopicDetails{Name: ptr("Sales")}, FolderArns: []string{"arn:folder"}})
				return err
			},
			method: http.MethodPost, path: "/accounts/111122223333/topics",
			body: `{"TopicId":"sales","Topic":{"Name":"Sales"},"FolderArns":["arn:folder"]}`,
		},
		{
			name: "UpdateTopic",
			call: func() error {
				_, err := c.UpdateTopic(ctx, &UpdateTopicInput{AwsAccountID: account, TopicID: ptr("sales"),
					Topic: &TopicDetails{Name: ptr("Sales")}})
				return err
			},
			method: http.MethodPut, path: "/accounts/111122223333/topics/sales", body: `{"Topic":{"Name":"Sales"}}`,
		},
		{
			name: "ListTopics",
			call: func() error {
				_, err := c.ListTopics(ctx, &ListTopicsInput{AwsAccountID: account, MaxResults: ptr(int64(10)),
					NextToken: ptr("abc")})
				return err
			},
			method: http.MethodGet, path: "/accounts/111122223333/topics", query: "max-results=10&next-token=abc",
		},
		{
			name: "CreateFolder",
			call: func() error {
				_, err := c.CreateFolder(ctx, &CreateFolderInput{AwsAccountID: account, FolderID: ptr("reports"),
					Name: ptr("Reports")})
				return err
			},
			method: http.MethodPost, path: "/accounts/111122223333/folders/reports", body: `{"Name":"Reports"}`,
		},
		{
			name: "CreateNamespace",
			call: func() error {
				_, err := c.CreateNamespace(ctx, &CreateNamespaceInput{AwsAccountID: account, Namespace: ptr("emea"),
					IdentityStore: ptr("QUICKSIGHT")})
				return err
			},
			method: http.MethodPost, path: "/accounts/111122223333",
			body: `{"Namespace":"emea","IdentityStore":"QUICKSIGHT"}`,
		},
		{
			name: "DeleteNamespace",
			call: func() error {
				_, err := c.DeleteNamespace(ctx, &DeleteNamespaceInput{AwsAccountID: account, Namespace: ptr("emea")})
				return err
			},
			method: http.MethodDelete, path: "/accounts/111122223333/namespaces/emea",
		},
		{
			name: "UpdateAccountSettings",
			call: func() error {
				_, err := c.UpdateAccountSettings(ctx, &UpdateAccountSettingsInput{AwsAccountID: account,
					DefaultNamespace: ptr("default")})
				return err
			},
			method: http.MethodPut, path: "/accounts/111122223333/settings", body: `{"DefaultNamespace":"default"}`,
		},
		{
			name: "UpdateIpRestriction",
			call: func() error {
				_, err := c.UpdateIPRestriction(ctx, &UpdateIPRestrictionInput{AwsAccountID: account,
					IPRestrictionRuleMap: map[string]string{}, Enabled: ptr(true)})
				return err
			},
			method: http.MethodPost, path: "/accounts/111122223333/ip-restriction",
			body: `{"IpRestrictionRuleMap":{},"Enabled":true}`,
		},
		{
			name: "TagResource",
			call: func() error {
				_, err := c.TagResource(ctx, &TagResourceInput{ResourceArn: ptr("arn:aws:quicksight:us-west-2:1:topic/sales"),
					Tags: []Tag{{Key: ptr("team"), Value: ptr("bi")}}})
				return err
			},
			method: http.MethodPost, path: "/resources/arn:aws:quicksight:us-west-2:1:topic/sales/tags",
			body: `{"Tags":[{"Key":"team","Value":"bi"}]}`,
		},
		{
			name: "UntagResource",
			call: func() error {
				_, err := c.UntagResource(ctx, &UntagResourceInput{ResourceArn: ptr("arn:r"),
					TagKeys: []string{"team", "env"}})
				return err
			},
			method: http.MethodDelete, path: "/resources/arn:r/tags", query: "keys=team&keys=env",
		},
	}

	for _, tt := range tests {
		require.NoError(t, tt.call(), tt.name)
		got := svc.last()
		assert.Equal(t, tt.method, got.method, tt.name)
		assert.Equal(t, tt.path, got.path, tt.name)
		assert.Equal(t, tt.query, got.query, tt.name)
		if tt.body == "" {
			assert.Empty(t, got.body, tt.name)
		} else {
			assert.JSONEq(t, tt.body, string(got.body), tt.name)
			assert.Equal(t, "application/json", got.header.Get("Content-Type"), tt.name)
		}
		auth := got.header.Get("Authorization")
		assert.True(t, strings.HasPrefix(auth, "AWS4-HMAC-SHA256 Credential=AKIDEXAMPLE/"), tt.name)
		assert.Contains(t, auth, "/us-west-2/quicksight/aws4_request", tt.name)
		assert.NotEmpty(t, got.header.Get("X-Amz-Date"), tt.name)
	}
	assert.Contains(t, logStr.String(), "Sending request")
	assert.Contains(t, logStr.String(), "UntagResource")
}

func TestQuickSightClientEscapesLabels(t *testing.T) {
	var logStr bytes.Buffer
	svc := newFakeService(t)
	c := svc.client(&logStr)

	_, err := c.ListTagsForResource(context.Background(),
		&ListTagsForResourceInput{ResourceArn: ptr("arn:aws:quicksight:us-west-2:1:folder/a b")})
	require.NoError(t, err)
	got := svc.last()
	assert.Equal(t, "/resources/arn:aws:quicksight:us-west-2:1:folder/a b/tags", got.path)
	assert.Contains(t, got.escaped, "folder%2Fa%20b/tags")
}

func TestQuickSightClientBodies(t *testing.T) {
	var logStr bytes.Buffer
	svc := newFakeService(t)
	c := svc.client(&logStr)
	ctx := context.Background()

	_, err := c.UpdateTopic(ctx, &UpdateTopicInput{
		AwsAccountID: ptr("1"),
		TopicID:      ptr("sales"),
		Topic: &TopicDetails{
			Name:                  ptr("Sales"),
			UserExperienceVersion: ptr("NEW_READER_EXPERIENCE"),
			ConfigOptions:         &TopicConfigOptions{QBusinessInsightsEnabled: ptr(false)},
		},
	})
	require.NoError(t, err)
	body := svc.last().body
	assert.Equal(t, "NEW_READER_EXPERIENCE", gjson.GetBytes(body, "Topic.UserExperienceVersion").String())
	assert.True(t, gjson.GetBytes(body, "Topic.ConfigOptions.QBusinessInsightsEnabled").Exists())
	assert.False(t, gjson.GetBytes(body, "Topic.ConfigOptions.QBusinessInsightsEnabled").Bool())
	assert.False(t, gjson.GetBytes(body, "Topic.Description").Exists())

	_, err = c.UpdateAccountSettings(ctx, &UpdateAccountSettingsInput{
		AwsAccountID:                 ptr("1"),
		DefaultNamespace:             ptr("default"),
		NotificationEmail:            ptr("bi@example.com"),
		TerminationProtectionEnabled: ptr(true),
	})
	require.NoError(t, err)
	body = svc.last().body
	assert.Equal(t, "bi@example.com", gjson.GetBytes(body, "NotificationEmail").String())
	assert.True(t, gjson.GetBytes(body, "TerminationProtectionEnabled").Bool())
}

func TestQuickSightClientDecodesResponse(t *testing.T) {
	var logStr bytes.Buffer
	svc := newFakeService(t)
	svc.reply = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"Folder": {
				"FolderId": "reports",
				"Name": "Reports",
				"FolderType": "SHARED",
				"FolderPath": ["arn:root"],
				"CreatedTime": 1700000000.5
			},
			"RequestId": "req-in-body",
			"Status": 200
		}`))
	}
	c := svc.client(&logStr)

	out, err := c.DescribeFolder(context.Background(),
		&DescribeFolderInput{AwsAccountID: ptr("1"), FolderID: ptr("reports")})
	require.NoError(t, err)
	assert.Equal(t, int32(http.StatusOK), out.Status)
	assert.Equal(t, "req-in-body", *out.RequestID)
	require.NotNil(t, out.Folder)
	assert.Equal(t, "Reports", *out.Folder.Name)
	assert.Equal(t, "SHARED", *out.Folder.FolderType)
	assert.Nil(t, out.Folder.SharingModel)
	assert.Equal(t, []string{"arn:root"}, out.Folder.FolderPath)
	require.NotNil(t, out.Folder.CreatedTime)
	assert.True(t, time.Unix(1700000000, 500*int64(time.Millisecond)).Equal(*out.Folder.CreatedTime))
	assert.Nil(t, out.Folder.LastUpdatedTime)

	// request id falls back to the header
	svc.reply = nil
	acct, err := c.DescribeAccountSettings(context.Background(), &DescribeAccountSettingsInput{AwsAccountID: ptr("1")})
	require.NoError(t, err)
	require.NotNil(t, acct.RequestID)
	assert.Equal(t, "req-from-header", *acct.RequestID)
	assert.Contains(t, logStr.String(), "Received response")
}

func TestQuickSightClientServiceFault(t *testing.T) {
	var logStr bytes.Buffer
	svc := newFakeService(t)
	svc.reply = func(w http.ResponseWriter, r *http.Request) {
		svcfault.New(svcfault.ResourceNotFound).
			WithMessage("Topic sales not found").
			WithRequestID("req-404").
			SendError(w)
	}
	c := svc.client(&logStr)

	_, err := c.DescribeTopic(context.Background(), &DescribeTopicInput{AwsAccountID: ptr("1"), TopicID: ptr("sales")})
	require.Error(t, err)

	var opErr *smithy.OperationError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "QuickSight", opErr.Service())
	assert.Equal(t, "DescribeTopic", opErr.Operation())

	var respErr *awshttp.ResponseError
	require.True(t, errors.As(err, &respErr))
	assert.Equal(t, http.StatusNotFound, respErr.HTTPStatusCode())
	assert.Equal(t, "req-404", respErr.ServiceRequestID())

	var apiErr smithy.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "ResourceNotFoundException", apiErr.ErrorCode())
	assert.Equal(t, "Topic sales not found", apiErr.ErrorMessage())

	assert.True(t, svcfault.IsInstanceOf(err, svcfault.ResourceNotFound))
	id, ok := svcfault.Classify(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, id.Status)

	// faults pass through the shim untouched
	assert.Same(t, err, translateError("DescribeTopic", c.Endpoint(), err))
}

func TestQuickSightClientDoesNotRetry(t *testing.T) {
	var logStr bytes.Buffer
	svc := newFakeService(t)
	svc.reply = func(w http.ResponseWriter, r *http.Request) {
		svcfault.New(svcfault.InternalFailure).SendError(w)
	}
	c := svc.client(&logStr)

	_, err := c.ListNamespaces(context.Background(), &ListNamespacesInput{AwsAccountID: ptr("1")})
	assert.True(t, svcfault.IsInstanceOf(err, svcfault.InternalFailure))
	assert.Equal(t, 1, svc.count())
}

func TestQuickSightClientBadBody(t *testing.T) {
	var logStr bytes.Buffer
	svc := newFakeService(t)
	svc.reply = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"TopicsSummaries": "not a list"}`))
	}
	c := svc.client(&logStr)

	_, err := c.ListTopics(context.Background(), &ListTopicsInput{AwsAccountID: ptr("1")})
	var deserErr *smithy.DeserializationError
	require.True(t, errors.As(err, &deserErr))
	assert.Contains(t, string(deserErr.Snapshot), "not a list")
}

func TestQuickSightClientRejectsBeforeSending(t *testing.T) {
	var logStr bytes.Buffer
	svc := newFakeService(t)
	c := svc.client(&logStr)

	// the SDK refuses requests without their path labels
	_, err := c.DeleteFolder(context.Background(), &DeleteFolderInput{AwsAccountID: ptr("1")})
	var invalid smithy.InvalidParamsError
	require.True(t, errors.As(err, &invalid))
	assert.ErrorContains(t, err, "FolderId")

	_, err = c.ListTagsForResource(context.Background(), nil)
	assert.True(t, errors.As(err, &invalid))

	// page sizes beyond what the service takes never leave the client
	_, err = c.ListTopics(context.Background(),
		&ListTopicsInput{AwsAccountID: ptr("1"), MaxResults: ptr(int64(1) << 40)})
	var opErr *smithy.OperationError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "ListTopics", opErr.Operation())
	assert.ErrorContains(t, err, "MaxResults 1099511627776 is out of range")

	assert.Equal(t, 0, svc.count())
}

func TestQuickSightClientCancel(t *testing.T) {
	var logStr bytes.Buffer
	svc := newFakeService(t)
	release := make(chan struct{})
	arrived := make(chan struct{}, 1)
	svc.reply = func(w http.ResponseWriter, r *http.Request) {
		arrived <- struct{}{}
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}
	defer close(release)
	c := svc.client(&logStr)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-arrived
		cancel()
	}()
	_, err := c.ListFolders(ctx, &ListFoldersInput{AwsAccountID: ptr("1")})
	var canceled *smithy.CanceledError
	require.True(t, errors.As(err, &canceled))
	assert.ErrorIs(t, err, context.Canceled)

	// the shim reports it as a cancellation
	assert.ErrorIs(t, translateError("ListFolders", c.Endpoint(), err), ErrInvocationCancelled)
}

func TestQuickSightClientUnresolvableEndpoint(t *testing.T) {
	var logStr bytes.Buffer
	dnsErr := &net.DNSError{Err: "no such host", Name: "quicksight.invalid", IsNotFound: true}
	cfg := aws.Config{
		Region:      "us-west-2",
		Credentials: credentials.NewStaticCredentialsProvider("AKIDEXAMPLE", "SECRET", ""),
		HTTPClient: &http.Client{Transport: &http.Transport{
			DialContext: func(context.Context, string, string) (net.Conn, error) {
				return nil, dnsErr
			},
		}},
	}
	c := NewQuickSightClient(cfg, "https://quicksight.invalid", vlog.Printer{Log: buflogr.NewWithBuffer(&logStr)})
	vcc := makeTestCommands(&logStr)

	_, err := vcc.VListNamespaces(context.Background(), c,
		&InvocationOptions{Params: map[string]any{"AwsAccountId": "1"}})
	var resolutionErr *EndpointResolutionError
	require.True(t, errors.As(err, &resolutionErr))
	assert.Equal(t, "https://quicksight.invalid", resolutionErr.Endpoint)
	assert.Contains(t, err.Error(), "ListNamespaces")
	var gotDNS *net.DNSError
	require.True(t, errors.As(err, &gotDNS))
	assert.Same(t, dnsErr, gotDNS)
}

func TestNewQuickSightClientEndpoint(t *testing.T) {
	var logStr bytes.Buffer
	logger := vlog.Printer{Log: buflogr.NewWithBuffer(&logStr)}

	c := NewQuickSightClient(aws.Config{Region: "eu-west-1"}, "", logger)
	assert.Equal(t, "https://quicksight.eu-west-1.amazonaws.com", c.Endpoint())

	c = NewQuickSightClient(aws.Config{}, "", logger)
	assert.Equal(t, util.Endpoint(util.DefaultRegion), c.Endpoint())

	c = NewQuickSightClient(aws.Config{BaseEndpoint: aws.String("https://vpce.example.com/")}, "", logger)
	assert.Equal(t, "https://vpce.example.com", c.Endpoint())

	// the argument wins over the shared config
	c = NewQuickSightClient(aws.Config{BaseEndpoint: aws.String("https://vpce.example.com")},
		"http://127.0.0.1:8443/", logger)
	assert.Equal(t, "http://127.0.0.1:8443", c.Endpoint())
}

/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package submission

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/dashcore/internal/system/database/client"
	"github.com/asgardeo/dashcore/internal/system/database/model"
	"github.com/asgardeo/dashcore/internal/system/error/apierror"
	"github.com/asgardeo/dashcore/tests/mocks/databasemock"
)

var fixedNow = time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)

type SubmissionTestSuite struct {
	suite.Suite
	dbClient   *databasemock.MockDBClient
	dbProvider *databasemock.MockDBProvider
	service    *submissionService
}

func TestSubmissionSuite(t *testing.T) {
	suite.Run(t, new(SubmissionTestSuite))
}

func (suite *SubmissionTestSuite) SetupTest() {
	suite.dbClient = &databasemock.MockDBClient{}
	suite.dbProvider = &databasemock.MockDBProvider{Client: suite.dbClient}
	suite.service = &submissionService{
		store: newSubmissionStore(suite.dbProvider),
		now:   func() time.Time { return fixedNow },
	}
}

func submissionRow(id, wizardName, payload, createdAt string) map[string]interface{} {
	return map[string]interface{}{
		"submission_id": id,
		"wizard_name":   wizardName,
		"payload":       []byte(payload),
		"created_at":    createdAt,
	}
}

func (suite *SubmissionTestSuite) TestRecordSubmission() {
	values := map[string]any{"title": "Grant program", "quorum": 20}

	submission, svcErr := suite.service.RecordSubmission(context.Background(), "create-proposal", values)

	require.Nil(suite.T(), svcErr)
	_, err := uuid.Parse(submission.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "create-proposal", submission.WizardName)
	assert.Equal(suite.T(), fixedNow, submission.CreatedAt)

	require.Len(suite.T(), suite.dbClient.ExecuteCalls, 1)
	call := suite.dbClient.ExecuteCalls[0]
	assert.Equal(suite.T(), queryCreateSubmission.ID, call.Query.ID)
	require.Len(suite.T(), call.Args, 4)
	assert.Equal(suite.T(), submission.ID, call.Args[0])
	assert.Equal(suite.T(), "create-proposal", call.Args[1])
	assert.JSONEq(suite.T(), `{"title":"Grant program","quorum":20}`, call.Args[2].(string))
	assert.Equal(suite.T(), "2024-03-10T14:30:00.000000000Z", call.Args[3])
	assert.Equal(suite.T(), []string{"runtime"}, suite.dbProvider.GetDBClientCalls)
}

func (suite *SubmissionTestSuite) TestRecordSubmissionNilValues() {
	submission, svcErr := suite.service.RecordSubmission(context.Background(), "receive", nil)

	require.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), map[string]any{}, submission.Payload)
	assert.Equal(suite.T(), "{}", suite.dbClient.ExecuteCalls[0].Args[2])
}

func (suite *SubmissionTestSuite) TestRecordSubmissionErrors() {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	testCases := []struct {
		name       string
		ctx        context.Context
		wizardName string
		values     map[string]any
		execErr    error
		clientErr  error
		wantCode   string
	}{
		{name: "EmptyWizardName", ctx: context.Background(), wantCode: ErrorInvalidWizardName.Code},
		{name: "Cancelled", ctx: cancelled, wizardName: "send", wantCode: ErrorRequestCancelled.Code},
		{name: "UnencodablePayload", ctx: context.Background(), wizardName: "send",
			values: map[string]any{"file": make(chan int)}, wantCode: ErrorInvalidPayload.Code},
		{name: "ExecuteFailure", ctx: context.Background(), wizardName: "send",
			execErr: errors.New("disk full"), wantCode: ErrorInternalServerError.Code},
		{name: "ClientFailure", ctx: context.Background(), wizardName: "send",
			clientErr: errors.New("no database"), wantCode: ErrorInternalServerError.Code},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			dbClient := &databasemock.MockDBClient{
				MockExecute: func(model.DBQuery, ...interface{}) (int64, error) { return 0, tc.execErr },
			}
			dbProvider := &databasemock.MockDBProvider{
				MockGetDBClient: func(string) (client.DBClientInterface, error) {
					if tc.clientErr != nil {
						return nil, tc.clientErr
					}
					return dbClient, nil
				},
			}
			service := newSubmissionService(newSubmissionStore(dbProvider))

			submission, svcErr := service.RecordSubmission(tc.ctx, tc.wizardName, tc.values)

			assert.Nil(t, submission)
			require.NotNil(t, svcErr)
			assert.Equal(t, tc.wantCode, svcErr.Code)
		})
	}
}

func (suite *SubmissionTestSuite) TestGetSubmission() {
	suite.dbClient.MockQuery = func(query model.DBQuery, args ...interface{}) ([]map[string]interface{}, error) {
		assert.Equal(suite.T(), queryGetSubmissionByID.ID, query.ID)
		assert.Equal(suite.T(), []interface{}{"sub-1"}, args)
		return []map[string]interface{}{
			submissionRow("sub-1", "create-token", `{"symbol":"DASH"}`, "2024-03-10T14:30:00.000000000Z"),
		}, nil
	}

	submission, svcErr := suite.service.GetSubmission("sub-1")

	require.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), &Submission{
		ID:         "sub-1",
		WizardName: "create-token",
		Payload:    map[string]any{"symbol": "DASH"},
		CreatedAt:  fixedNow,
	}, submission)
}

func (suite *SubmissionTestSuite) TestGetSubmissionErrors() {
	_, svcErr := suite.service.GetSubmission("")
	assert.Equal(suite.T(), ErrorInvalidSubmissionID.Code, svcErr.Code)

	_, svcErr = suite.service.GetSubmission("missing")
	assert.Equal(suite.T(), ErrorSubmissionNotFound.Code, svcErr.Code)

	suite.dbClient.MockQuery = func(model.DBQuery, ...interface{}) ([]map[string]interface{}, error) {
		return []map[string]interface{}{submissionRow("sub-1", "send", "{not json", "")}, nil
	}
	_, svcErr = suite.service.GetSubmission("sub-1")
	assert.Equal(suite.T(), ErrorInternalServerError.Code, svcErr.Code)
}

func (suite *SubmissionTestSuite) TestGetSubmissionList() {
	suite.dbClient.MockQuery = func(query model.DBQuery, args ...interface{}) ([]map[string]interface{}, error) {
		if len(args) == 0 {
			assert.Equal(suite.T(), queryGetSubmissionList.ID, query.ID)
		} else {
			assert.Equal(suite.T(), queryGetSubmissionsByWizard.ID, query.ID)
		}
		return []map[string]interface{}{
			submissionRow("sub-2", "send", `{"amount":"5"}`, "2024-03-11T09:00:00.000000000Z"),
			submissionRow("sub-1", "send", `{"amount":"2"}`, "2024-03-10T14:30:00.000000000Z"),
		}, nil
	}

	all, svcErr := suite.service.GetSubmissionList("")
	require.Nil(suite.T(), svcErr)
	assert.Len(suite.T(), all, 2)

	filtered, svcErr := suite.service.GetSubmissionList("send")
	require.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), "sub-2", filtered[0].ID)
	assert.Equal(suite.T(), "5", filtered[0].Payload["amount"])
}

func (suite *SubmissionTestSuite) TestGetSubmissionListFailure() {
	suite.dbClient.MockQuery = func(model.DBQuery, ...interface{}) ([]map[string]interface{}, error) {
		return nil, errors.New("connection reset")
	}

	submissions, svcErr := suite.service.GetSubmissionList("send")

	assert.Nil(suite.T(), submissions)
	assert.Equal(suite.T(), ErrorInternalServerError.Code, svcErr.Code)
}

func (suite *SubmissionTestSuite) TestHandlers() {
	suite.dbClient.MockQuery = func(query model.DBQuery, args ...interface{}) ([]map[string]interface{}, error) {
		if query.ID == queryGetSubmissionByID.ID && args[0] == "sub-1" {
			return []map[string]interface{}{
				submissionRow("sub-1", "send", `{"amount":"2"}`, "2024-03-10T14:30:00.000000000Z"),
			}, nil
		}
		return []map[string]interface{}{}, nil
	}
	mux := http.NewServeMux()
	Initialize(mux, suite.dbProvider)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/submissions/sub-1", nil))
	assert.Equal(suite.T(), http.StatusOK, rr.Code)
	var submission Submission
	require.NoError(suite.T(), json.Unmarshal(rr.Body.Bytes(), &submission))
	assert.Equal(suite.T(), "send", submission.WizardName)

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/submissions/unknown", nil))
	assert.Equal(suite.T(), http.StatusNotFound, rr.Code)
	var errResp apierror.ErrorResponse
	require.NoError(suite.T(), json.Unmarshal(rr.Body.Bytes(), &errResp))
	assert.Equal(suite.T(), ErrorSubmissionNotFound.Code, errResp.Code)

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/submissions?wizard=send", nil))
	assert.Equal(suite.T(), http.StatusOK, rr.Code)
	assert.JSONEq(suite.T(), `{"totalResults":0,"submissions":[]}`, rr.Body.String())
}

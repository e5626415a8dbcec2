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

package wizardexec

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"

	"github.com/asgardeo/dashcore/internal/submission"
	"github.com/asgardeo/dashcore/internal/system/cache"
	"github.com/asgardeo/dashcore/internal/system/config"
	"github.com/asgardeo/dashcore/internal/system/error/apierror"
	"github.com/asgardeo/dashcore/internal/validation"
	"github.com/asgardeo/dashcore/internal/wizard"
	"github.com/asgardeo/dashcore/tests/mocks/submissionmock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const sendDefinition = `
name: send-tokens
display_name: Send Tokens
steps:
  - name: recipient
    title: Recipient
    fields:
      - key: address
        label: Recipient address
        rules:
          - type: required
          - type: pattern
            value: "^0x[0-9a-fA-F]{4,}$"
            message: Enter a valid address
  - name: amount
    title: Amount
    fields:
      - key: amount
        label: Amount
        type: number
        rules:
          - type: required
          - type: positive
            message: Amount must be greater than zero
      - key: memo
        label: Memo
`

type WizardExecTestSuite struct {
	suite.Suite
	submissions *submissionmock.SubmissionServiceInterfaceMock
	service     *wizardExecService
	clock       time.Time
}

func TestWizardExecSuite(t *testing.T) {
	suite.Run(t, new(WizardExecTestSuite))
}

func (suite *WizardExecTestSuite) SetupTest() {
	def, err := wizard.ParseDefinition([]byte(sendDefinition))
	require.NoError(suite.T(), err)

	suite.submissions = &submissionmock.SubmissionServiceInterfaceMock{}
	suite.clock = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	suite.service = suite.newService(def, config.WizardConfig{SessionTimeout: 600})
}

func (suite *WizardExecTestSuite) newService(def *wizard.Definition, cfg config.WizardConfig) *wizardExecService {
	sessions := newSessionCache(cfg, cache.WithClock(func() time.Time { return suite.clock }))
	return newWizardExecService(map[string]*wizard.Definition{def.Name: def}, suite.submissions, sessions)
}

func (suite *WizardExecTestSuite) startSession() string {
	state, svcErr := suite.service.StartSession("send-tokens")
	require.Nil(suite.T(), svcErr)
	return state.SessionID
}

func (suite *WizardExecTestSuite) completeSteps(id string) {
	_, svcErr := suite.service.SetFields(id, map[string]any{"address": "0xAbCd1234"})
	require.Nil(suite.T(), svcErr)
	state, svcErr := suite.service.NextStep(id)
	require.Nil(suite.T(), svcErr)
	require.Equal(suite.T(), 2, state.CurrentStep)
	_, svcErr = suite.service.SetFields(id, map[string]any{"amount": 2.5, "memo": "rent"})
	require.Nil(suite.T(), svcErr)
}

func (suite *WizardExecTestSuite) TestStartSession() {
	state, svcErr := suite.service.StartSession("send-tokens")

	require.Nil(suite.T(), svcErr)
	assert.NotEmpty(suite.T(), state.SessionID)
	assert.Equal(suite.T(), "send-tokens", state.Wizard)
	assert.Equal(suite.T(), 1, state.CurrentStep)
	assert.Equal(suite.T(), 2, state.StepCount)
	assert.Equal(suite.T(), "recipient", state.StepName)
	assert.Equal(suite.T(), "Recipient", state.StepTitle)
	require.Len(suite.T(), state.Fields, 1)
	assert.Equal(suite.T(), "address", state.Fields[0].Key)
	assert.Empty(suite.T(), state.Values)
	assert.Empty(suite.T(), state.Errors)

	_, svcErr = suite.service.StartSession("stake")
	assert.Equal(suite.T(), ErrorWizardNotFound.Code, svcErr.Code)
}

func (suite *WizardExecTestSuite) TestNextStepValidationFailure() {
	id := suite.startSession()
	_, svcErr := suite.service.SetFields(id, map[string]any{"address": "bob"})
	require.Nil(suite.T(), svcErr)

	state, svcErr := suite.service.NextStep(id)

	require.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), 1, state.CurrentStep)
	assert.Equal(suite.T(), validation.ErrorMap{"address": "Enter a valid address"}, state.Errors)
}

func (suite *WizardExecTestSuite) TestSetFieldsRejectsUnknownKeyAtomically() {
	id := suite.startSession()

	state, svcErr := suite.service.SetFields(id, map[string]any{"address": "0xAbCd1234", "wallet": "x"})

	assert.Nil(suite.T(), state)
	require.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorUnknownField.Code, svcErr.Code)
	assert.Contains(suite.T(), svcErr.ErrorDescription, "wallet")

	current, _ := suite.service.GetSession(id)
	assert.Empty(suite.T(), current.Values)
}

func (suite *WizardExecTestSuite) TestSubmitSuccess() {
	id := suite.startSession()
	suite.completeSteps(id)
	suite.submissions.On("RecordSubmission", mock.Anything, "send-tokens",
		map[string]any{"address": "0xAbCd1234", "amount": 2.5, "memo": "rent"}).
		Return(&submission.Submission{ID: "sub-1"}, nil).Once()

	state, svcErr := suite.service.Submit(context.Background(), id)

	require.Nil(suite.T(), svcErr)
	assert.True(suite.T(), state.Completed)
	assert.False(suite.T(), state.IsSubmitting)
	assert.Equal(suite.T(), "sub-1", state.SubmissionID)

	again, svcErr := suite.service.Submit(context.Background(), id)
	require.Nil(suite.T(), svcErr)
	assert.True(suite.T(), again.Completed)

	_, svcErr = suite.service.SetFields(id, map[string]any{"memo": "late"})
	assert.Equal(suite.T(), ErrorWizardCompleted.Code, svcErr.Code)
	suite.submissions.AssertExpectations(suite.T())
}

func (suite *WizardExecTestSuite) TestSubmitFailureKeepsSessionOpen() {
	id := suite.startSession()
	suite.completeSteps(id)
	suite.submissions.On("RecordSubmission", mock.Anything, "send-tokens", mock.Anything).
		Return(nil, &submission.ErrorInternalServerError).Once()

	state, svcErr := suite.service.Submit(context.Background(), id)

	assert.Nil(suite.T(), state)
	require.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), "WZS-65001", svcErr.Code)
	assert.Contains(suite.T(), svcErr.ErrorDescription, "Internal server error")

	current, svcErr := suite.service.GetSession(id)
	require.Nil(suite.T(), svcErr)
	assert.False(suite.T(), current.Completed)
	assert.False(suite.T(), current.IsSubmitting)
	assert.Equal(suite.T(), 2, current.CurrentStep)

	suite.submissions.On("RecordSubmission", mock.Anything, "send-tokens", mock.Anything).
		Return(&submission.Submission{ID: "sub-2"}, nil).Once()
	state, svcErr = suite.service.Submit(context.Background(), id)
	require.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), "sub-2", state.SubmissionID)
}

func (suite *WizardExecTestSuite) TestSubmitBeforeLastStep() {
	id := suite.startSession()

	_, svcErr := suite.service.Submit(context.Background(), id)

	assert.Equal(suite.T(), ErrorNotOnLastStep.Code, svcErr.Code)
	suite.submissions.AssertNotCalled(suite.T(), "RecordSubmission", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WizardExecTestSuite) TestConcurrentRequestDuringSubmit() {
	id := suite.startSession()
	suite.completeSteps(id)

	started := make(chan struct{})
	release := make(chan struct{})
	suite.submissions.On("RecordSubmission", mock.Anything, "send-tokens", mock.Anything).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(&submission.Submission{ID: "sub-3"}, nil).Once()

	done := make(chan *SessionState)
	go func() {
		state, _ := suite.service.Submit(context.Background(), id)
		done <- state
	}()
	<-started

	current, svcErr := suite.service.GetSession(id)
	require.Nil(suite.T(), svcErr)
	assert.True(suite.T(), current.IsSubmitting)

	_, svcErr = suite.service.Submit(context.Background(), id)
	assert.Equal(suite.T(), ErrorSubmitInProgress.Code, svcErr.Code)
	_, svcErr = suite.service.PreviousStep(id)
	assert.Equal(suite.T(), ErrorSubmitInProgress.Code, svcErr.Code)

	close(release)
	final := <-done
	require.NotNil(suite.T(), final)
	assert.True(suite.T(), final.Completed)
	assert.Equal(suite.T(), "sub-3", final.SubmissionID)
}

func (suite *WizardExecTestSuite) TestPreviousStepAndReset() {
	id := suite.startSession()
	suite.completeSteps(id)

	state, svcErr := suite.service.PreviousStep(id)
	require.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), 1, state.CurrentStep)
	assert.Equal(suite.T(), 2.5, state.Values["amount"])

	state, svcErr = suite.service.Reset(id)
	require.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), 1, state.CurrentStep)
	assert.Empty(suite.T(), state.Values)
}

func (suite *WizardExecTestSuite) TestSessionExpiry() {
	id := suite.startSession()

	suite.clock = suite.clock.Add(11 * time.Minute)

	_, svcErr := suite.service.GetSession(id)
	assert.Equal(suite.T(), ErrorSessionNotFound.Code, svcErr.Code)
}

func (suite *WizardExecTestSuite) TestStartSessionEvictsIdleSessions() {
	stale := suite.startSession()
	suite.clock = suite.clock.Add(11 * time.Minute)

	fresh := suite.startSession()

	assert.Equal(suite.T(), 1, suite.service.sessions.GetStats().Size)
	_, svcErr := suite.service.GetSession(stale)
	assert.Equal(suite.T(), ErrorSessionNotFound.Code, svcErr.Code)
	_, svcErr = suite.service.GetSession(fresh)
	assert.Nil(suite.T(), svcErr)
}

func (suite *WizardExecTestSuite) TestActivityKeepsSessionAlive() {
	id := suite.startSession()

	suite.clock = suite.clock.Add(8 * time.Minute)
	_, svcErr := suite.service.SetFields(id, map[string]any{"address": "0xAbCd1234"})
	require.Nil(suite.T(), svcErr)
	suite.clock = suite.clock.Add(8 * time.Minute)

	state, svcErr := suite.service.GetSession(id)
	require.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), "0xAbCd1234", state.Values["address"])
}

func (suite *WizardExecTestSuite) TestMaxSessionsDropsLeastRecentlyUsed() {
	def, svcErr := suite.service.GetWizard("send-tokens")
	require.Nil(suite.T(), svcErr)
	suite.service = suite.newService(def, config.WizardConfig{SessionTimeout: 600, MaxSessions: 2})

	first := suite.startSession()
	second := suite.startSession()
	_, svcErr = suite.service.NextStep(first)
	require.Nil(suite.T(), svcErr)
	third := suite.startSession()

	_, svcErr = suite.service.GetSession(second)
	assert.Equal(suite.T(), ErrorSessionNotFound.Code, svcErr.Code)
	for _, id := range []string{first, third} {
		_, svcErr = suite.service.GetSession(id)
		assert.Nil(suite.T(), svcErr)
	}
}

func (suite *WizardExecTestSuite) TestDeleteSession() {
	id := suite.startSession()

	assert.Nil(suite.T(), suite.service.DeleteSession(id))
	assert.Equal(suite.T(), ErrorSessionNotFound.Code, suite.service.DeleteSession(id).Code)
	_, svcErr := suite.service.NextStep(id)
	assert.Equal(suite.T(), ErrorSessionNotFound.Code, svcErr.Code)
}

func (suite *WizardExecTestSuite) TestWizardList() {
	list := suite.service.GetWizardList()

	assert.Equal(suite.T(), []WizardSummary{{Name: "send-tokens", DisplayName: "Send Tokens", StepCount: 2}}, list)

	def, svcErr := suite.service.GetWizard("send-tokens")
	require.Nil(suite.T(), svcErr)
	assert.Len(suite.T(), def.Steps, 2)
}

func (suite *WizardExecTestSuite) TestHTTPFlow() {
	dir := suite.T().TempDir()
	require.NoError(suite.T(), os.WriteFile(filepath.Join(dir, "send.yaml"), []byte(sendDefinition), 0600))
	suite.submissions.On("RecordSubmission", mock.Anything, "send-tokens", mock.Anything).
		Return(&submission.Submission{ID: "sub-http"}, nil).Once()

	mux := http.NewServeMux()
	_, err := Initialize(mux, config.WizardConfig{DefinitionDirectory: dir}, suite.submissions)
	require.NoError(suite.T(), err)

	do := func(method, path, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, path, nil)
		} else {
			req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		}
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, req)
		return rr
	}
	decode := func(rr *httptest.ResponseRecorder) SessionState {
		var state SessionState
		require.NoError(suite.T(), json.Unmarshal(rr.Body.Bytes(), &state))
		return state
	}

	rr := do(http.MethodPost, "/wizards/send-tokens/sessions", "")
	require.Equal(suite.T(), http.StatusCreated, rr.Code)
	id := decode(rr).SessionID
	base := "/wizard-sessions/" + id

	rr = do(http.MethodPost, base+"/next", "")
	assert.Equal(suite.T(), http.StatusOK, rr.Code)
	assert.Equal(suite.T(), "Recipient address is required", decode(rr).Errors["address"])

	rr = do(http.MethodPut, base+"/fields", `{"values":{"address":"0xBEEF1234"}}`)
	assert.Equal(suite.T(), http.StatusOK, rr.Code)
	assert.Empty(suite.T(), decode(rr).Errors)

	rr = do(http.MethodPut, base+"/fields", `{"values":`)
	assert.Equal(suite.T(), http.StatusBadRequest, rr.Code)

	rr = do(http.MethodPost, base+"/next", "")
	assert.Equal(suite.T(), 2, decode(rr).CurrentStep)

	rr = do(http.MethodPut, base+"/fields", `{"values":{"amount":-1}}`)
	assert.Equal(suite.T(), http.StatusOK, rr.Code)
	rr = do(http.MethodPost, base+"/submit", "")
	assert.Equal(suite.T(), http.StatusOK, rr.Code)
	assert.Equal(suite.T(), "Amount must be greater than zero", decode(rr).Errors["amount"])

	rr = do(http.MethodPut, base+"/fields", `{"values":{"amount":10}}`)
	assert.Equal(suite.T(), http.StatusOK, rr.Code)
	rr = do(http.MethodPost, base+"/submit", "")
	assert.Equal(suite.T(), http.StatusOK, rr.Code)
	state := decode(rr)
	assert.True(suite.T(), state.Completed)
	assert.Equal(suite.T(), "sub-http", state.SubmissionID)

	rr = do(http.MethodPut, base+"/fields", `{"values":{"memo":"x"}}`)
	assert.Equal(suite.T(), http.StatusConflict, rr.Code)
	var errResp apierror.ErrorResponse
	require.NoError(suite.T(), json.Unmarshal(rr.Body.Bytes(), &errResp))
	assert.Equal(suite.T(), ErrorWizardCompleted.Code, errResp.Code)

	rr = do(http.MethodGet, base, "")
	assert.Equal(suite.T(), http.StatusOK, rr.Code)

	rr = do(http.MethodDelete, base, "")
	assert.Equal(suite.T(), http.StatusNoContent, rr.Code)
	rr = do(http.MethodGet, base, "")
	assert.Equal(suite.T(), http.StatusNotFound, rr.Code)

	rr = do(http.MethodGet, "/wizards", "")
	assert.JSONEq(suite.T(), `[{"name":"send-tokens","displayName":"Send Tokens","stepCount":2}]`, rr.Body.String())
	rr = do(http.MethodGet, "/wizards/unknown", "")
	assert.Equal(suite.T(), http.StatusNotFound, rr.Code)
	suite.submissions.AssertExpectations(suite.T())
}

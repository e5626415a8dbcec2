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

package healthcheck

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/dashcore/internal/system/database/client"
	"github.com/asgardeo/dashcore/internal/system/database/model"
	"github.com/asgardeo/dashcore/tests/mocks/databasemock"
)

type HealthCheckTestSuite struct {
	suite.Suite
	dbClient   *databasemock.MockDBClient
	dbProvider *databasemock.MockDBProvider
	mux        *http.ServeMux
}

func TestHealthCheckSuite(t *testing.T) {
	suite.Run(t, new(HealthCheckTestSuite))
}

func (suite *HealthCheckTestSuite) SetupTest() {
	suite.dbClient = &databasemock.MockDBClient{}
	suite.dbProvider = &databasemock.MockDBProvider{Client: suite.dbClient}
	suite.mux = http.NewServeMux()
	Initialize(suite.mux, suite.dbProvider)
}

func (suite *HealthCheckTestSuite) serve(path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	suite.mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func (suite *HealthCheckTestSuite) TestLiveness() {
	rr := suite.serve("/health/liveness")

	assert.Equal(suite.T(), http.StatusOK, rr.Code)
	assert.Empty(suite.T(), suite.dbProvider.GetDBClientCalls)
}

func (suite *HealthCheckTestSuite) TestReadinessUp() {
	rr := suite.serve("/health/readiness")

	assert.Equal(suite.T(), http.StatusOK, rr.Code)
	var status ServerStatus
	require.NoError(suite.T(), json.Unmarshal(rr.Body.Bytes(), &status))
	assert.Equal(suite.T(), StatusUp, status.Status)
	assert.Equal(suite.T(), []ServiceStatus{{ServiceName: "RuntimeDB", Status: StatusUp}}, status.ServiceStatus)
	require.Len(suite.T(), suite.dbClient.QueryCalls, 1)
	assert.Equal(suite.T(), "HLC-00001", suite.dbClient.QueryCalls[0].Query.ID)
}

func (suite *HealthCheckTestSuite) TestReadinessQueryFailure() {
	suite.dbClient.MockQuery = func(query model.DBQuery, args ...interface{}) ([]map[string]interface{}, error) {
		return nil, errors.New("no such table: SUBMISSION")
	}

	rr := suite.serve("/health/readiness")

	assert.Equal(suite.T(), http.StatusServiceUnavailable, rr.Code)
	assert.JSONEq(suite.T(),
		`{"status":"DOWN","service_status":[{"service_name":"RuntimeDB","status":"DOWN"}]}`, rr.Body.String())
}

func (suite *HealthCheckTestSuite) TestReadinessClientFailure() {
	suite.dbProvider.MockGetDBClient = func(dbName string) (client.DBClientInterface, error) {
		return nil, errors.New("connection refused")
	}

	status := newHealthCheckService(suite.dbProvider).CheckReadiness()

	assert.Equal(suite.T(), StatusDown, status.Status)
}

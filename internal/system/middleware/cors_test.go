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

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/dashcore/internal/system/config"
)

type CORSMiddlewareTestSuite struct {
	suite.Suite
	opts CORSOptions
}

func TestCORSMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(CORSMiddlewareTestSuite))
}

func (suite *CORSMiddlewareTestSuite) SetupTest() {
	config.ResetServerRuntime()
	cfg := &config.Config{
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"https://dash.example.com", "https://localhost:3000"},
		},
	}
	_ = config.InitializeServerRuntime("/tmp", cfg)

	suite.opts = CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type",
		AllowCredentials: true,
	}
}

func (suite *CORSMiddlewareTestSuite) TearDownTest() {
	config.ResetServerRuntime()
}

func (suite *CORSMiddlewareTestSuite) serve(origin string) *httptest.ResponseRecorder {
	pattern, handler := WithCORS("GET /collections", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, suite.opts)
	assert.Equal(suite.T(), "GET /collections", pattern)

	req := httptest.NewRequest(http.MethodGet, "/collections", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func (suite *CORSMiddlewareTestSuite) TestAllowedOrigin() {
	rr := suite.serve("https://localhost:3000")

	assert.Equal(suite.T(), http.StatusOK, rr.Code)
	assert.Equal(suite.T(), "https://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(suite.T(), "GET, POST", rr.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(suite.T(), "Content-Type", rr.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(suite.T(), "true", rr.Header().Get("Access-Control-Allow-Credentials"))
}

func (suite *CORSMiddlewareTestSuite) TestDisallowedOrigin() {
	rr := suite.serve("https://evil.example.com")

	assert.Equal(suite.T(), http.StatusOK, rr.Code)
	assert.Empty(suite.T(), rr.Header().Get("Access-Control-Allow-Origin"))
}

func (suite *CORSMiddlewareTestSuite) TestNoOriginHeader() {
	rr := suite.serve("")

	assert.Empty(suite.T(), rr.Header().Get("Access-Control-Allow-Origin"))
}

func (suite *CORSMiddlewareTestSuite) TestNoContent() {
	rr := httptest.NewRecorder()

	NoContent(rr, httptest.NewRequest(http.MethodOptions, "/collections", nil))

	assert.Equal(suite.T(), http.StatusNoContent, rr.Code)
}

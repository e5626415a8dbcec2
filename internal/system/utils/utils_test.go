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

package utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type UtilsTestSuite struct {
	suite.Suite
}

func TestUtilsSuite(t *testing.T) {
	suite.Run(t, new(UtilsTestSuite))
}

type testStruct struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func (suite *UtilsTestSuite) TestDecodeJSONBody() {
	testCases := []struct {
		name        string
		jsonBody    string
		expected    testStruct
		expectError bool
	}{
		{name: "ValidJSON", jsonBody: `{"name":"test","value":123}`, expected: testStruct{Name: "test", Value: 123}},
		{name: "EmptyJSON", jsonBody: `{}`, expected: testStruct{}},
		{name: "InvalidJSON", jsonBody: `{"name":"test","value":}`, expectError: true},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tc.jsonBody))

			result, err := DecodeJSONBody[testStruct](req)

			if tc.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, *result)
			}
		})
	}
}

func (suite *UtilsTestSuite) TestWriteJSONError() {
	rr := httptest.NewRecorder()

	WriteJSONError(rr, "invalid_request", "bad input", http.StatusBadRequest,
		[]map[string]string{{"Cache-Control": "no-store"}})

	assert.Equal(suite.T(), http.StatusBadRequest, rr.Code)
	assert.Equal(suite.T(), "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(suite.T(), "no-store", rr.Header().Get("Cache-Control"))

	var body map[string]string
	require.NoError(suite.T(), json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(suite.T(), "invalid_request", body["error"])
	assert.Equal(suite.T(), "bad input", body["error_description"])
}

func (suite *UtilsTestSuite) TestWriteJSONResponse() {
	rr := httptest.NewRecorder()

	WriteJSONResponse(rr, http.StatusCreated, testStruct{Name: "pool", Value: 7})

	assert.Equal(suite.T(), http.StatusCreated, rr.Code)
	assert.JSONEq(suite.T(), `{"name":"pool","value":7}`, rr.Body.String())
}

func (suite *UtilsTestSuite) TestSanitizeString() {
	assert.Equal(suite.T(), "&lt;b&gt;Grant&lt;/b&gt;", SanitizeString("  <b>Grant</b> "))
	assert.Equal(suite.T(), "", SanitizeString("   "))
}

func (suite *UtilsTestSuite) TestGetAllowedOrigin() {
	origins := []string{"https://dash.example.com", "https://localhost:3000"}

	assert.Equal(suite.T(), "https://localhost:3000", GetAllowedOrigin(origins, "https://localhost:3000"))
	assert.Equal(suite.T(), "", GetAllowedOrigin(origins, "https://evil.example.com"))
	assert.Equal(suite.T(), "", GetAllowedOrigin(nil, "https://localhost:3000"))
	assert.Equal(suite.T(), "*", GetAllowedOrigin([]string{"*"}, "https://any.example.com"))
}

func (suite *UtilsTestSuite) TestParseKeyValue() {
	key, value, ok := ParseKeyValue("status=Active")
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), "status", key)
	assert.Equal(suite.T(), "Active", value)

	key, value, ok = ParseKeyValue(" expr = a=b ")
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), "expr", key)
	assert.Equal(suite.T(), "a=b", value)

	_, _, ok = ParseKeyValue("novalue")
	assert.False(suite.T(), ok)
	_, _, ok = ParseKeyValue("=x")
	assert.False(suite.T(), ok)
}

func (suite *UtilsTestSuite) TestListYAMLFiles() {
	dir := suite.T().TempDir()
	for _, name := range []string{"b.yml", "a.yaml", "notes.txt", "C.YAML"} {
		require.NoError(suite.T(), os.WriteFile(filepath.Join(dir, name), []byte("x: 1"), 0600))
	}
	require.NoError(suite.T(), os.Mkdir(filepath.Join(dir, "nested.yaml"), 0700))

	files, err := ListYAMLFiles(dir)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{
		filepath.Join(dir, "C.YAML"),
		filepath.Join(dir, "a.yaml"),
		filepath.Join(dir, "b.yml"),
	}, files)
}

func (suite *UtilsTestSuite) TestListYAMLFilesMissingDirectory() {
	files, err := ListYAMLFiles(filepath.Join(suite.T().TempDir(), "absent"))

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), files)
}

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

package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// ServerURLEnvironmentVariable overrides the base URL of the server under test.
const ServerURLEnvironmentVariable = "DASHCORE_TEST_URL"

// ServerURL returns the base URL of the server under test.
func ServerURL() string {
	if url := os.Getenv(ServerURLEnvironmentVariable); url != "" {
		return url
	}
	return fmt.Sprintf("http://localhost:%d", ServerPort)
}

func getHTTPClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}

// Call sends a request with an optional JSON body and decodes the JSON response into out
// when out is not nil. It returns the response status code.
func Call(method, path string, body any, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, ServerURL()+path, reader)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := getHTTPClient().Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}
	if out != nil && len(content) > 0 {
		if err := json.Unmarshal(content, out); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode response %s: %w", string(content), err)
		}
	}
	return resp.StatusCode, nil
}

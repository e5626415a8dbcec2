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

package log

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAccessLogHandler(t *testing.T) {
	testCases := []struct {
		name     string
		handler  http.HandlerFunc
		contains string
	}{
		{
			name: "ExplicitStatus",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte("created"))
			},
			contains: `"POST /wizards/create-token/sessions HTTP/1.1" 201 7 `,
		},
		{
			name: "ImplicitStatus",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("ok"))
			},
			contains: `"POST /wizards/create-token/sessions HTTP/1.1" 200 2 `,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			core, recorded := observer.New(zapcore.InfoLevel)
			handler := AccessLogHandler(NewLogger(zap.New(core)), tc.handler)

			req := httptest.NewRequest(http.MethodPost, "/wizards/create-token/sessions", nil)
			req.RemoteAddr = "10.0.0.7:51234"
			handler.ServeHTTP(httptest.NewRecorder(), req)

			entries := recorded.All()
			require.Len(t, entries, 1)
			assert.True(t, strings.HasPrefix(entries[0].Message, "10.0.0.7 - - ["))
			assert.Contains(t, entries[0].Message, tc.contains)
		})
	}
}

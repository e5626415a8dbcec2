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

// Package submission records the payloads of completed wizards.
package submission

import (
	"net/http"

	"github.com/asgardeo/dashcore/internal/system/database/provider"
	"github.com/asgardeo/dashcore/internal/system/middleware"
)

// Initialize initializes the submission service and registers its routes.
func Initialize(mux *http.ServeMux, dbProvider provider.DBProviderInterface) SubmissionServiceInterface {
	submissionService := newSubmissionService(newSubmissionStore(dbProvider))
	submissionHandler := newSubmissionHandler(submissionService)
	registerRoutes(mux, submissionHandler)
	return submissionService
}

// registerRoutes registers the routes for submission operations.
func registerRoutes(mux *http.ServeMux, submissionHandler *submissionHandler) {
	opts := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /submissions",
		submissionHandler.HandleSubmissionListRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /submissions", middleware.NoContent, opts))
	mux.HandleFunc(middleware.WithCORS("GET /submissions/{id}",
		submissionHandler.HandleSubmissionGetRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /submissions/{id}", middleware.NoContent, opts))
}

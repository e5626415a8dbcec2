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

// Package wizardexec runs wizard sessions over HTTP and records completed payloads.
package wizardexec

import (
	"net/http"

	"github.com/asgardeo/dashcore/internal/submission"
	"github.com/asgardeo/dashcore/internal/system/config"
	"github.com/asgardeo/dashcore/internal/system/middleware"
	"github.com/asgardeo/dashcore/internal/wizard"
)

// Initialize loads the wizard definitions, creates the session service and registers its routes.
func Initialize(mux *http.ServeMux, cfg config.WizardConfig,
	submissionService submission.SubmissionServiceInterface) (WizardExecServiceInterface, error) {
	definitions, err := wizard.LoadDefinitions(cfg.DefinitionDirectory)
	if err != nil {
		return nil, err
	}

	wizardExecService := newWizardExecService(definitions, submissionService, newSessionCache(cfg))
	wizardExecHandler := newWizardExecHandler(wizardExecService)
	registerRoutes(mux, wizardExecHandler)
	return wizardExecService, nil
}

// registerRoutes registers the routes for wizard session operations.
func registerRoutes(mux *http.ServeMux, wh *wizardExecHandler) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /wizards", wh.HandleWizardListRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /wizards", middleware.NoContent, opts1))
	mux.HandleFunc(middleware.WithCORS("GET /wizards/{name}", wh.HandleWizardGetRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /wizards/{name}", middleware.NoContent, opts1))
	mux.HandleFunc(middleware.WithCORS("POST /wizards/{name}/sessions", wh.HandleSessionStartRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /wizards/{name}/sessions", middleware.NoContent, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /wizard-sessions/{id}", wh.HandleSessionGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /wizard-sessions/{id}", wh.HandleSessionDeleteRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /wizard-sessions/{id}", middleware.NoContent, opts2))

	opts3 := middleware.CORSOptions{
		AllowedMethods:   "PUT",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("PUT /wizard-sessions/{id}/fields", wh.HandleSetFieldsRequest, opts3))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /wizard-sessions/{id}/fields", middleware.NoContent, opts3))

	opts4 := middleware.CORSOptions{
		AllowedMethods:   "POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	actions := map[string]http.HandlerFunc{
		"next":     wh.HandleNextStepRequest,
		"previous": wh.HandlePreviousStepRequest,
		"submit":   wh.HandleSubmitRequest,
		"reset":    wh.HandleResetRequest,
	}
	for action, handler := range actions {
		path := "/wizard-sessions/{id}/" + action
		mux.HandleFunc(middleware.WithCORS("POST "+path, handler, opts4))
		mux.HandleFunc(middleware.WithCORS("OPTIONS "+path, middleware.NoContent, opts4))
	}
}

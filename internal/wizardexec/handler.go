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
	"net/http"
	"strings"

	"github.com/asgardeo/dashcore/internal/system/error/apierror"
	"github.com/asgardeo/dashcore/internal/system/error/serviceerror"
	"github.com/asgardeo/dashcore/internal/system/log"
	sysutils "github.com/asgardeo/dashcore/internal/system/utils"
)

// wizardExecHandler is the handler for wizard session operations.
type wizardExecHandler struct {
	wizardExecService WizardExecServiceInterface
}

// newWizardExecHandler creates a new instance of wizardExecHandler.
func newWizardExecHandler(wizardExecService WizardExecServiceInterface) *wizardExecHandler {
	return &wizardExecHandler{
		wizardExecService: wizardExecService,
	}
}

// HandleWizardListRequest handles the list wizards request.
func (wh *wizardExecHandler) HandleWizardListRequest(w http.ResponseWriter, r *http.Request) {
	sysutils.WriteJSONResponse(w, http.StatusOK, wh.wizardExecService.GetWizardList())
}

// HandleWizardGetRequest handles the get wizard definition request.
func (wh *wizardExecHandler) HandleWizardGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "WizardExecHandler"))

	def, svcErr := wh.wizardExecService.GetWizard(strings.TrimSpace(r.PathValue("name")))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}
	sysutils.WriteJSONResponse(w, http.StatusOK, def)
}

// HandleSessionStartRequest handles the start wizard session request.
func (wh *wizardExecHandler) HandleSessionStartRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "WizardExecHandler"))

	state, svcErr := wh.wizardExecService.StartSession(strings.TrimSpace(r.PathValue("name")))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}
	sysutils.WriteJSONResponse(w, http.StatusCreated, state)
}

// HandleSessionGetRequest handles the get wizard session request.
func (wh *wizardExecHandler) HandleSessionGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "WizardExecHandler"))

	state, svcErr := wh.wizardExecService.GetSession(r.PathValue("id"))
	writeSessionResponse(w, state, svcErr, logger)
}

// HandleSetFieldsRequest handles the set fields request.
func (wh *wizardExecHandler) HandleSetFieldsRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "WizardExecHandler"))

	req, err := sysutils.DecodeJSONBody[setFieldsRequest](r)
	if err != nil {
		logger.Debug("Failed to decode set fields request", log.Error(err))
		writeServiceErrorResponse(w, &ErrorInvalidRequestFormat, logger)
		return
	}

	state, svcErr := wh.wizardExecService.SetFields(r.PathValue("id"), req.Values)
	writeSessionResponse(w, state, svcErr, logger)
}

// HandleNextStepRequest handles the next step request.
func (wh *wizardExecHandler) HandleNextStepRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "WizardExecHandler"))

	state, svcErr := wh.wizardExecService.NextStep(r.PathValue("id"))
	writeSessionResponse(w, state, svcErr, logger)
}

// HandlePreviousStepRequest handles the previous step request.
func (wh *wizardExecHandler) HandlePreviousStepRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "WizardExecHandler"))

	state, svcErr := wh.wizardExecService.PreviousStep(r.PathValue("id"))
	writeSessionResponse(w, state, svcErr, logger)
}

// HandleSubmitRequest handles the submit request.
func (wh *wizardExecHandler) HandleSubmitRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "WizardExecHandler"))

	state, svcErr := wh.wizardExecService.Submit(r.Context(), r.PathValue("id"))
	writeSessionResponse(w, state, svcErr, logger)
}

// HandleResetRequest handles the reset request.
func (wh *wizardExecHandler) HandleResetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "WizardExecHandler"))

	state, svcErr := wh.wizardExecService.Reset(r.PathValue("id"))
	writeSessionResponse(w, state, svcErr, logger)
}

// HandleSessionDeleteRequest handles the delete wizard session request.
func (wh *wizardExecHandler) HandleSessionDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "WizardExecHandler"))

	if svcErr := wh.wizardExecService.DeleteSession(r.PathValue("id")); svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeSessionResponse writes a session state, or the service error when one occurred.
func writeSessionResponse(w http.ResponseWriter, state *SessionState, svcErr *serviceerror.ServiceError,
	logger *log.Logger) {
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}
	sysutils.WriteJSONResponse(w, http.StatusOK, state)
}

// writeServiceErrorResponse writes a service error as an API error response.
func writeServiceErrorResponse(w http.ResponseWriter, svcErr *serviceerror.ServiceError, logger *log.Logger) {
	var statusCode int
	if svcErr.Type == serviceerror.ClientErrorType {
		statusCode = getClientErrorStatusCode(svcErr.Code)
	} else {
		statusCode = http.StatusInternalServerError
		logger.Error("Wizard session request failed", log.String("code", svcErr.Code),
			log.String("description", svcErr.ErrorDescription))
	}

	sysutils.WriteJSONResponse(w, statusCode, apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	})
}

// getClientErrorStatusCode returns the appropriate HTTP status code for client errors.
func getClientErrorStatusCode(errorCode string) int {
	switch errorCode {
	case ErrorWizardNotFound.Code, ErrorSessionNotFound.Code:
		return http.StatusNotFound
	case ErrorSubmitInProgress.Code, ErrorSessionBusy.Code, ErrorWizardCompleted.Code:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

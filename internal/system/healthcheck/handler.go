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
	"net/http"

	"github.com/asgardeo/dashcore/internal/system/log"
	sysutils "github.com/asgardeo/dashcore/internal/system/utils"
)

// healthCheckHandler is the handler for health check requests.
type healthCheckHandler struct {
	healthCheckService HealthCheckServiceInterface
}

// newHealthCheckHandler creates a new instance of healthCheckHandler.
func newHealthCheckHandler(healthCheckService HealthCheckServiceInterface) *healthCheckHandler {
	return &healthCheckHandler{
		healthCheckService: healthCheckService,
	}
}

// HandleLivenessRequest handles the health check liveness request.
func (hch *healthCheckHandler) HandleLivenessRequest(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// HandleReadinessRequest handles the health check readiness request.
func (hch *healthCheckHandler) HandleReadinessRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckHandler"))

	serverStatus := hch.healthCheckService.CheckReadiness()
	if serverStatus.Status != StatusUp {
		logger.Error("Readiness check failed", log.String("serverStatus", string(serverStatus.Status)))
		sysutils.WriteJSONResponse(w, http.StatusServiceUnavailable, serverStatus)
		return
	}

	logger.Debug("Readiness check passed")
	sysutils.WriteJSONResponse(w, http.StatusOK, serverStatus)
}

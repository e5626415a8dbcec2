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
	dbmodel "github.com/asgardeo/dashcore/internal/system/database/model"
	"github.com/asgardeo/dashcore/internal/system/database/provider"
	"github.com/asgardeo/dashcore/internal/system/log"
)

// HealthCheckServiceInterface defines the interface for the health check service.
type HealthCheckServiceInterface interface {
	CheckReadiness() ServerStatus
}

// healthCheckService checks the dependencies the server needs to serve requests.
type healthCheckService struct {
	dbProvider provider.DBProviderInterface
}

// newHealthCheckService creates a new instance of healthCheckService.
func newHealthCheckService(dbProvider provider.DBProviderInterface) HealthCheckServiceInterface {
	return &healthCheckService{
		dbProvider: dbProvider,
	}
}

// CheckReadiness checks the readiness of the server and its dependencies.
func (hcs *healthCheckService) CheckReadiness() ServerStatus {
	runtimeDBStatus := ServiceStatus{
		ServiceName: "RuntimeDB",
		Status:      hcs.checkDatabaseStatus(provider.RuntimeDB, queryRuntimeDBTable),
	}

	return ServerStatus{
		Status:        runtimeDBStatus.Status,
		ServiceStatus: []ServiceStatus{runtimeDBStatus},
	}
}

// checkDatabaseStatus checks the status of the specified database with the specified query.
func (hcs *healthCheckService) checkDatabaseStatus(dbName string, query dbmodel.DBQuery) Status {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckService"))

	dbClient, err := hcs.dbProvider.GetDBClient(dbName)
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return StatusDown
	}

	if _, err := dbClient.Query(query); err != nil {
		logger.Error("Failed to execute query", log.String("queryID", query.ID), log.Error(err))
		return StatusDown
	}
	return StatusUp
}

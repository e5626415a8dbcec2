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

// Package managers wires the server services onto the HTTP multiplexer.
package managers

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/asgardeo/dashcore/internal/collection"
	"github.com/asgardeo/dashcore/internal/submission"
	"github.com/asgardeo/dashcore/internal/system/config"
	"github.com/asgardeo/dashcore/internal/system/database/provider"
	"github.com/asgardeo/dashcore/internal/system/healthcheck"
	"github.com/asgardeo/dashcore/internal/system/log"
	"github.com/asgardeo/dashcore/internal/wizardexec"
)

// ServiceManagerInterface defines the interface for registering the server services.
type ServiceManagerInterface interface {
	RegisterServices() error
}

// ServiceManager registers the services of the server on a multiplexer.
type ServiceManager struct {
	mux        *http.ServeMux
	config     *config.Config
	serverHome string
	dbProvider provider.DBProviderInterface
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux, cfg *config.Config, serverHome string,
	dbProvider provider.DBProviderInterface) ServiceManagerInterface {
	return &ServiceManager{
		mux:        mux,
		config:     cfg,
		serverHome: serverHome,
		dbProvider: dbProvider,
	}
}

// RegisterServices registers the health check, submission, collection and wizard session services.
func (sm *ServiceManager) RegisterServices() error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ServiceManager"))

	// Register the health check service.
	healthcheck.Initialize(sm.mux, sm.dbProvider)

	// Register the submission service.
	submissionService := submission.Initialize(sm.mux, sm.dbProvider)

	// Register the collection service.
	collectionCfg := sm.config.Collection
	collectionCfg.DefinitionDirectory = sm.resolve(collectionCfg.DefinitionDirectory)
	if _, err := collection.Initialize(sm.mux, collectionCfg, sm.config.Cache, sm.dbProvider); err != nil {
		return fmt.Errorf("failed to initialize the collection service: %w", err)
	}

	// Register the wizard session service.
	wizardCfg := sm.config.Wizard
	wizardCfg.DefinitionDirectory = sm.resolve(wizardCfg.DefinitionDirectory)
	if _, err := wizardexec.Initialize(sm.mux, wizardCfg, submissionService); err != nil {
		return fmt.Errorf("failed to initialize the wizard session service: %w", err)
	}

	logger.Debug("Registered services", log.String("collectionDirectory", collectionCfg.DefinitionDirectory),
		log.String("wizardDirectory", wizardCfg.DefinitionDirectory))
	return nil
}

// resolve makes a configured directory absolute against the server home.
func (sm *ServiceManager) resolve(dir string) string {
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(sm.serverHome, dir)
}

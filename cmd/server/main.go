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

// Package main is the entry point of the dashcore server.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/asgardeo/dashcore/internal/cert"
	"github.com/asgardeo/dashcore/internal/managers"
	"github.com/asgardeo/dashcore/internal/system/config"
	"github.com/asgardeo/dashcore/internal/system/constants"
	"github.com/asgardeo/dashcore/internal/system/database/provider"
	"github.com/asgardeo/dashcore/internal/system/log"
)

func main() {
	logger := log.GetLogger()
	defer logger.Sync()

	// Get the server home directory.
	serverHome := getServerHome(logger)

	// Initialize the server configurations.
	cfg := initServerConfigurations(logger, serverHome)
	if cfg == nil {
		logger.Fatal("Failed to initialize configurations")
	}

	// Initialize the multiplexer and register services.
	mux := initMultiPlexer(logger, cfg, serverHome)
	if mux == nil {
		logger.Fatal("Failed to initialize multiplexer")
	}

	startServer(logger, cfg, mux, serverHome)
}

// getServerHome resolves the server home from the command line, the environment or the working directory.
func getServerHome(logger *log.Logger) string {
	projectHomeFlag := flag.String("home", "", "Path to the dashcore home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		logger.Info("Using server home from command line argument", log.String("home", *projectHomeFlag))
		return *projectHomeFlag
	}
	if envHome := os.Getenv(constants.ServerHomeEnvironmentVariable); envHome != "" {
		logger.Info("Using server home from environment", log.String("home", envHome))
		return envHome
	}

	dir, err := os.Getwd()
	if err != nil {
		logger.Fatal("Failed to get current working directory", log.Error(err))
	}
	return dir
}

// initServerConfigurations loads the deployment configuration and initializes the server runtime.
func initServerConfigurations(logger *log.Logger, serverHome string) *config.Config {
	configFilePath := path.Join(serverHome, constants.DeploymentConfigPath)
	cfg, err := config.LoadConfig(configFilePath)
	if err != nil {
		logger.Fatal("Failed to load configurations", log.Error(err))
	}

	if err := config.InitializeServerRuntime(serverHome, cfg); err != nil {
		logger.Fatal("Failed to initialize server runtime", log.Error(err))
	}
	return cfg
}

// initMultiPlexer initializes the HTTP multiplexer and registers the services.
func initMultiPlexer(logger *log.Logger, cfg *config.Config, serverHome string) *http.ServeMux {
	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux, cfg, serverHome, provider.GetDBProvider())

	if err := serviceManager.RegisterServices(); err != nil {
		logger.Fatal("Failed to register the services", log.Error(err))
	}
	return mux
}

// startServer starts the HTTP server with the given configurations and multiplexer.
func startServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux, serverHome string) {
	tlsConfig, err := cert.GetTLSConfig(cfg, serverHome)
	if err != nil {
		logger.Fatal("Failed to load TLS configuration", log.Error(err))
	}

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)
	server := &http.Server{
		Addr:              serverAddr,
		Handler:           log.AccessLogHandler(logger, mux),
		TLSConfig:         tlsConfig,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	if tlsConfig == nil {
		logger.Info("Starting dashcore server over HTTP", log.String("address", serverAddr))
		err = server.ListenAndServe()
	} else {
		logger.Info("Starting dashcore server over HTTPS", log.String("address", serverAddr))
		err = server.ListenAndServeTLS("", "")
	}
	if err != nil {
		logger.Fatal("Server failed to start", log.Error(err))
	}
}

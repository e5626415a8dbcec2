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

// Package provider provides functionality for managing database connections and clients.
package provider

import (
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"path"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/asgardeo/dashcore/internal/system/config"
	"github.com/asgardeo/dashcore/internal/system/database/client"
	"github.com/asgardeo/dashcore/internal/system/database/model"
	"github.com/asgardeo/dashcore/internal/system/log"
)

const (
	dataSourceTypePostgres = "postgres"
	dataSourceTypeSQLite   = "sqlite"

	// RuntimeDB is the name of the runtime database holding submissions and collection items.
	RuntimeDB = "runtime"
)

// dbConfig represents the local database configuration.
type dbConfig struct {
	dsn        string
	driverName string
}

// DBProviderInterface defines the interface for getting database clients.
type DBProviderInterface interface {
	GetDBClient(dbName string) (client.DBClientInterface, error)
}

// DBProvider is the implementation of DBProviderInterface.
type DBProvider struct {
	runtimeClient client.DBClientInterface
	runtimeDB     model.DBInterface
	runtimeMutex  sync.RWMutex
}

var (
	instance *DBProvider
	once     sync.Once
)

// GetDBProvider returns the instance of DBProvider.
func GetDBProvider() DBProviderInterface {
	once.Do(func() {
		instance = &DBProvider{}
		instance.closeOnInterrupt()
	})
	return instance
}

// GetDBClient returns a database client based on the provided database name.
// Not required to close the returned client manually since it manages its own connection pool.
func (d *DBProvider) GetDBClient(dbName string) (client.DBClientInterface, error) {
	switch dbName {
	case RuntimeDB:
		return d.getOrInitClient(config.GetServerRuntime().Config.Database.Runtime)
	default:
		return nil, fmt.Errorf("unsupported database name: %s", dbName)
	}
}

// getOrInitClient gets or initializes the runtime DB client with locking.
func (d *DBProvider) getOrInitClient(dataSource config.DataSource) (client.DBClientInterface, error) {
	d.runtimeMutex.RLock()
	if d.runtimeClient != nil {
		dbClient := d.runtimeClient
		d.runtimeMutex.RUnlock()
		return dbClient, nil
	}
	d.runtimeMutex.RUnlock()

	d.runtimeMutex.Lock()
	defer d.runtimeMutex.Unlock()

	if d.runtimeClient != nil {
		return d.runtimeClient, nil
	}

	if err := d.initializeClient(dataSource); err != nil {
		return nil, err
	}

	return d.runtimeClient, nil
}

// initializeClient opens the database connection pool and creates the client.
func (d *DBProvider) initializeClient(dataSource config.DataSource) error {
	dbConfig, err := getDBConfig(dataSource)
	if err != nil {
		return err
	}
	dbName := dataSource.Name

	db, err := sql.Open(dbConfig.driverName, dbConfig.dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database %s: %w", dbName, err)
	}

	if dataSource.MaxOpenConns > 0 {
		db.SetMaxOpenConns(dataSource.MaxOpenConns)
	}
	if dataSource.MaxIdleConns > 0 {
		db.SetMaxIdleConns(dataSource.MaxIdleConns)
	}
	if dataSource.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(dataSource.ConnMaxLifetime) * time.Second)
	}

	if err := db.Ping(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return fmt.Errorf("failed to ping database %s: %w (close error: %w)", dbName, err, closeErr)
		}
		return fmt.Errorf("failed to ping database %s: %w", dbName, err)
	}

	if dataSource.InitScript != "" {
		if err := runInitScript(db, dataSource.InitScript); err != nil {
			if closeErr := db.Close(); closeErr != nil {
				return fmt.Errorf("%w (close error: %w)", err, closeErr)
			}
			return err
		}
	}

	d.runtimeDB = model.NewDB(db)
	d.runtimeClient = client.NewDBClient(d.runtimeDB, dbConfig.driverName)
	return nil
}

// runInitScript executes the schema script of a data source. Scripts are expected to be idempotent.
func runInitScript(db *sql.DB, script string) error {
	scriptPath := path.Join(config.GetServerRuntime().ServerHome, script)
	content, err := os.ReadFile(filepath.Clean(scriptPath))
	if err != nil {
		return fmt.Errorf("failed to read database init script %s: %w", scriptPath, err)
	}
	if _, err := db.Exec(string(content)); err != nil {
		return fmt.Errorf("failed to run database init script %s: %w", scriptPath, err)
	}
	log.GetLogger().Debug("Executed database init script", log.String("script", scriptPath))
	return nil
}

// getDBConfig returns the database configuration based on the provided data source.
func getDBConfig(dataSource config.DataSource) (dbConfig, error) {
	var cfg dbConfig

	switch dataSource.Type {
	case dataSourceTypePostgres:
		cfg.driverName = dataSourceTypePostgres
		cfg.dsn = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			dataSource.Hostname, dataSource.Port, dataSource.Username, dataSource.Password,
			dataSource.Name, dataSource.SSLMode)
	case dataSourceTypeSQLite:
		cfg.driverName = dataSourceTypeSQLite
		options := dataSource.Options
		if options != "" && options[0] != '?' {
			options = "?" + options
		}
		cfg.dsn = fmt.Sprintf("%s%s", path.Join(config.GetServerRuntime().ServerHome, dataSource.Path), options)
	default:
		return cfg, fmt.Errorf("unsupported data source type: %s", dataSource.Type)
	}

	return cfg, nil
}

// closeOnInterrupt sets up signal handling for graceful shutdown.
func (d *DBProvider) closeOnInterrupt() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger := log.GetLogger()
		if err := d.close(); err != nil {
			logger.Error("Error closing database connections", log.Error(err))
		} else {
			logger.Debug("Database connections closed successfully")
		}
	}()
}

// close closes the runtime database connection pool.
func (d *DBProvider) close() error {
	d.runtimeMutex.Lock()
	defer d.runtimeMutex.Unlock()

	if d.runtimeDB != nil {
		if err := d.runtimeDB.Close(); err != nil {
			return fmt.Errorf("failed to close %s client: %w", RuntimeDB, err)
		}
	}
	d.runtimeDB = nil
	d.runtimeClient = nil
	return nil
}

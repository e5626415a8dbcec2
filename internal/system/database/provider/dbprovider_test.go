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

package provider

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/dashcore/internal/system/config"
	"github.com/asgardeo/dashcore/internal/system/database/model"
)

type DBProviderTestSuite struct {
	suite.Suite
	home string
}

func TestDBProviderSuite(t *testing.T) {
	suite.Run(t, new(DBProviderTestSuite))
}

func (suite *DBProviderTestSuite) SetupTest() {
	config.ResetServerRuntime()
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Runtime: config.DataSource{
				Type:    dataSourceTypeSQLite,
				Path:    "runtime.db",
				Options: "_pragma=busy_timeout(5000)",
			},
		},
	}
	suite.home = suite.T().TempDir()
	require.NoError(suite.T(), config.InitializeServerRuntime(suite.home, cfg))
}

func (suite *DBProviderTestSuite) TearDownTest() {
	config.ResetServerRuntime()
}

func (suite *DBProviderTestSuite) TestGetDBConfigPostgres() {
	cfg, err := getDBConfig(config.DataSource{
		Type:     dataSourceTypePostgres,
		Hostname: "localhost",
		Port:     5432,
		Name:     "dashcore",
		Username: "dash",
		Password: "secret",
		SSLMode:  "disable",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "postgres", cfg.driverName)
	assert.Equal(suite.T(),
		"host=localhost port=5432 user=dash password=secret dbname=dashcore sslmode=disable", cfg.dsn)
}

func (suite *DBProviderTestSuite) TestGetDBConfigSQLite() {
	cfg, err := getDBConfig(config.GetServerRuntime().Config.Database.Runtime)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "sqlite", cfg.driverName)
	assert.Contains(suite.T(), cfg.dsn, "runtime.db?_pragma=busy_timeout(5000)")
}

func (suite *DBProviderTestSuite) TestGetDBConfigUnsupported() {
	_, err := getDBConfig(config.DataSource{Type: "oracle"})

	assert.ErrorContains(suite.T(), err, "unsupported data source type")
}

func (suite *DBProviderTestSuite) TestGetDBClientSQLite() {
	provider := &DBProvider{}

	dbClient, err := provider.GetDBClient(RuntimeDB)
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), dbClient)

	_, err = dbClient.Execute(model.DBQuery{ID: "TST-CREATE", Query: "CREATE TABLE T (ID TEXT)"})
	assert.NoError(suite.T(), err)

	again, err := provider.GetDBClient(RuntimeDB)
	assert.NoError(suite.T(), err)
	assert.Same(suite.T(), dbClient, again)

	assert.NoError(suite.T(), provider.close())
}

func (suite *DBProviderTestSuite) TestGetDBClientUnknownName() {
	provider := &DBProvider{}

	dbClient, err := provider.GetDBClient("identity")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), dbClient)
}

func (suite *DBProviderTestSuite) TestInitScriptCreatesSchema() {
	script := "CREATE TABLE IF NOT EXISTS SUBMISSION (SUBMISSION_ID TEXT PRIMARY KEY);\n" +
		"CREATE TABLE IF NOT EXISTS COLLECTION_ITEM (ITEM_ID TEXT);\n"
	require.NoError(suite.T(), os.WriteFile(filepath.Join(suite.home, "schema.sql"), []byte(script), 0600))

	provider := &DBProvider{}
	err := provider.initializeClient(config.DataSource{
		Type:       dataSourceTypeSQLite,
		Path:       "schema.db",
		InitScript: "schema.sql",
	})
	require.NoError(suite.T(), err)

	rows, err := provider.runtimeClient.Query(model.DBQuery{
		ID:    "TST-TABLES",
		Query: "SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name",
	})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), rows, 2)
	assert.Equal(suite.T(), "COLLECTION_ITEM", rows[0]["name"])
	assert.Equal(suite.T(), "SUBMISSION", rows[1]["name"])

	assert.NoError(suite.T(), provider.close())
}

func (suite *DBProviderTestSuite) TestInitScriptMissing() {
	provider := &DBProvider{}

	err := provider.initializeClient(config.DataSource{
		Type:       dataSourceTypeSQLite,
		Path:       "missing.db",
		InitScript: "absent.sql",
	})

	assert.ErrorContains(suite.T(), err, "failed to read database init script")
	assert.Nil(suite.T(), provider.runtimeClient)
}

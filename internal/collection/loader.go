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

package collection

import (
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"

	"github.com/asgardeo/dashcore/internal/system/log"
	sysutils "github.com/asgardeo/dashcore/internal/system/utils"
)

// ParseDefinition decodes and checks a YAML collection definition.
func ParseDefinition(content []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(content, &def); err != nil {
		return nil, fmt.Errorf("failed to parse collection definition: %w", err)
	}
	if def.Name == "" {
		return nil, fmt.Errorf("collection definition has no name")
	}
	if _, err := def.Schema(); err != nil {
		return nil, err
	}
	return &def, nil
}

// LoadDefinition reads and parses a YAML collection definition file.
func LoadDefinition(path string) (*Definition, error) {
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	return ParseDefinition(content)
}

// LoadDefinitions loads every YAML definition in the directory keyed by collection name.
// Invalid files are logged and skipped.
func LoadDefinitions(dir string) (map[string]*Definition, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CollectionDefinitionLoader"))

	files, err := sysutils.ListYAMLFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection definition directory %s: %w", dir, err)
	}
	if len(files) == 0 {
		logger.Info("No collection definitions found", log.String("directory", dir))
	}

	definitions := make(map[string]*Definition, len(files))
	for _, filePath := range files {
		def, err := LoadDefinition(filePath)
		if err != nil {
			logger.Warn("Failed to load collection definition", log.String("filePath", filePath), log.Error(err))
			continue
		}
		if _, exists := definitions[def.Name]; exists {
			logger.Warn("Duplicate collection definition. Keeping the first one.",
				log.String(log.LoggerKeyCollection, def.Name), log.String("filePath", filePath))
			continue
		}
		definitions[def.Name] = def
	}

	logger.Debug("Loaded collection definitions", log.Int("count", len(definitions)))
	return definitions, nil
}

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

package wizard

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"

	"github.com/asgardeo/dashcore/internal/system/log"
	sysutils "github.com/asgardeo/dashcore/internal/system/utils"
	"github.com/asgardeo/dashcore/internal/validation"
)

// Field input types understood by clients rendering a wizard.
const (
	FieldTypeText    = "text"
	FieldTypeNumber  = "number"
	FieldTypeBoolean = "boolean"
	FieldTypeList    = "list"
	FieldTypeFile    = "file"
	FieldTypeSelect  = "select"
)

// Definition is the declarative step table of a wizard.
type Definition struct {
	Name        string           `yaml:"name" json:"name"`
	DisplayName string           `yaml:"display_name" json:"displayName"`
	Description string           `yaml:"description,omitempty" json:"description,omitempty"`
	Steps       []StepDefinition `yaml:"steps" json:"steps"`
}

// StepDefinition declares the fields owned by one step.
type StepDefinition struct {
	Name   string            `yaml:"name" json:"name"`
	Title  string            `yaml:"title,omitempty" json:"title,omitempty"`
	Fields []FieldDefinition `yaml:"fields" json:"fields"`
}

// FieldDefinition declares one input and its validation rules.
type FieldDefinition struct {
	Key     string                `yaml:"key" json:"key"`
	Label   string                `yaml:"label,omitempty" json:"label,omitempty"`
	Type    string                `yaml:"type,omitempty" json:"type,omitempty"`
	Options []string              `yaml:"options,omitempty" json:"options,omitempty"`
	Rules   []validation.RuleSpec `yaml:"rules,omitempty" json:"rules,omitempty"`
}

// label returns the display label of the field, defaulting to its key.
func (f FieldDefinition) label() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Key
}

// BuildSteps compiles the definition into engine steps.
func (d *Definition) BuildSteps() ([]Step, error) {
	if d.Name == "" {
		return nil, errors.New("wizard definition has no name")
	}
	if len(d.Steps) == 0 {
		return nil, fmt.Errorf("wizard '%s' has no steps", d.Name)
	}

	owner := make(map[string]int)
	steps := make([]Step, 0, len(d.Steps))
	for i, stepDef := range d.Steps {
		fields := make([]string, 0, len(stepDef.Fields))
		rules := make(map[string][]validation.FieldRule, len(stepDef.Fields))

		for _, fieldDef := range stepDef.Fields {
			if fieldDef.Key == "" {
				return nil, fmt.Errorf("wizard '%s' step %d has a field without a key", d.Name, i+1)
			}
			if prev, exists := owner[fieldDef.Key]; exists {
				return nil, fmt.Errorf("wizard '%s': field '%s' is declared by both step %d and step %d",
					d.Name, fieldDef.Key, prev+1, i+1)
			}
			owner[fieldDef.Key] = i
			fieldRules, err := validation.CompileRules(fieldDef.label(), fieldDef.Rules)
			if err != nil {
				return nil, fmt.Errorf("wizard '%s' step %d: %w", d.Name, i+1, err)
			}
			fields = append(fields, fieldDef.Key)
			if len(fieldRules) > 0 {
				rules[fieldDef.Key] = fieldRules
			}
		}

		name := stepDef.Name
		if name == "" {
			name = fmt.Sprintf("step-%d", i+1)
		}
		steps = append(steps, Step{
			Name:     name,
			Fields:   fields,
			Validate: validation.FieldRules(rules),
		})
	}
	return steps, nil
}

// NewEngine compiles the definition and creates an engine bound to the submit callback.
func (d *Definition) NewEngine(onSubmit SubmitFunc) (*Engine, error) {
	steps, err := d.BuildSteps()
	if err != nil {
		return nil, err
	}
	return NewEngine(steps, onSubmit)
}

// ParseDefinition decodes a YAML wizard definition.
func ParseDefinition(content []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(content, &def); err != nil {
		return nil, fmt.Errorf("failed to parse wizard definition: %w", err)
	}
	if _, err := def.BuildSteps(); err != nil {
		return nil, err
	}
	return &def, nil
}

// LoadDefinition reads and parses a YAML wizard definition file.
func LoadDefinition(path string) (*Definition, error) {
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	return ParseDefinition(content)
}

// LoadDefinitions loads every YAML definition in the directory keyed by wizard name.
// Unreadable or invalid files are logged and skipped. A missing directory yields no definitions.
func LoadDefinitions(dir string) (map[string]*Definition, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "WizardDefinitionLoader"))

	files, err := sysutils.ListYAMLFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read wizard definition directory %s: %w", dir, err)
	}
	if len(files) == 0 {
		logger.Info("No wizard definitions found", log.String("directory", dir))
	}

	definitions := make(map[string]*Definition, len(files))
	for _, filePath := range files {
		def, err := LoadDefinition(filePath)
		if err != nil {
			logger.Warn("Failed to load wizard definition", log.String("filePath", filePath), log.Error(err))
			continue
		}
		if _, exists := definitions[def.Name]; exists {
			logger.Warn("Duplicate wizard definition. Keeping the first one.",
				log.String(log.LoggerKeyWizardName, def.Name), log.String("filePath", filePath))
			continue
		}
		definitions[def.Name] = def
	}

	logger.Debug("Loaded wizard definitions", log.Int("count", len(definitions)))
	return definitions, nil
}

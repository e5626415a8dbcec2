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

package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v3"

	"github.com/asgardeo/dashcore/internal/wizard"
)

func wizardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wizard <wizard.yaml> <answers.yaml>",
		Short: "Walk a wizard definition with a file of answers and print the submitted payload",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := wizard.LoadDefinition(args[0])
			if err != nil {
				return err
			}
			answers, err := loadAnswers(args[1])
			if err != nil {
				return err
			}

			payload, err := walkWizard(cmd.Context(), def, answers, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			content, err := yaml.Marshal(payload)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(content))
			return nil
		},
	}
}

// loadAnswers reads a flat YAML map of field key to value.
func loadAnswers(path string) (map[string]any, error) {
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	answers := map[string]any{}
	if err := yaml.Unmarshal(content, &answers); err != nil {
		return nil, fmt.Errorf("failed to parse answers: %w", err)
	}
	return answers, nil
}

// walkWizard fills every step from answers, advancing until the last step is submitted.
// It stops at the first step that fails validation.
func walkWizard(ctx context.Context, def *wizard.Definition, answers map[string]any,
	out io.Writer) (map[string]any, error) {
	var payload map[string]any
	engine, err := def.NewEngine(func(_ context.Context, values map[string]any) error {
		payload = values
		return nil
	})
	if err != nil {
		return nil, err
	}

	for key, value := range answers {
		if err := engine.SetField(key, value); err != nil {
			return nil, err
		}
	}

	for {
		current := engine.CurrentStep()
		step, _ := engine.Step(current)

		if engine.IsLastStep() {
			errs, err := engine.Submit(ctx)
			if err != nil {
				return nil, err
			}
			if errs.HasErrors() {
				fmt.Fprintln(out, errorMsg("Step %d (%s) is invalid", current, step.Name))
				fmt.Fprint(out, renderErrors(errs))
				return nil, fmt.Errorf("wizard '%s' failed validation on step %d", def.Name, current)
			}
			fmt.Fprintln(out, successMsg("Step %d (%s) submitted", current, step.Name))
			return payload, nil
		}

		if errs := engine.NextStep(); errs.HasErrors() {
			fmt.Fprintln(out, errorMsg("Step %d (%s) is invalid", current, step.Name))
			fmt.Fprint(out, renderErrors(errs))
			return nil, fmt.Errorf("wizard '%s' failed validation on step %d", def.Name, current)
		}
		fmt.Fprintln(out, successMsg("Step %d (%s) complete", current, step.Name))
	}
}

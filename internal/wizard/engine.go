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

// Package wizard provides a linear multi-step form engine with per-step validation
// and a single asynchronous submission at the end.
package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/asgardeo/dashcore/internal/system/log"
	"github.com/asgardeo/dashcore/internal/validation"
)

// Step is one page of a wizard. Its position is its index in the step list, starting at 1.
type Step struct {
	Name     string
	Fields   []string
	Validate validation.Validator
}

// SubmitFunc receives the assembled values of a wizard once the last step is valid.
// It may block; the engine imposes no timeout of its own.
type SubmitFunc func(ctx context.Context, values map[string]any) error

// FormState is a snapshot of the wizard state.
type FormState struct {
	Values       map[string]any      `json:"values"`
	Errors       validation.ErrorMap `json:"errors"`
	CurrentStep  int                 `json:"currentStep"`
	IsSubmitting bool                `json:"isSubmitting"`
	Completed    bool                `json:"completed"`
}

// Engine drives a wizard through its steps.
// An Engine is owned by a single caller and is not safe for concurrent use.
type Engine struct {
	steps    []Step
	owner    map[string]int
	onSubmit SubmitFunc
	state    FormState
	logger   *log.Logger
}

// NewEngine validates the step table and returns an engine positioned on step 1.
func NewEngine(steps []Step, onSubmit SubmitFunc) (*Engine, error) {
	if len(steps) == 0 {
		return nil, errors.New("wizard requires at least one step")
	}
	if onSubmit == nil {
		return nil, errors.New("wizard requires a submit callback")
	}

	owner := make(map[string]int)
	for i, step := range steps {
		for _, field := range step.Fields {
			if field == "" {
				return nil, fmt.Errorf("step %d declares an empty field key", i+1)
			}
			if prev, exists := owner[field]; exists {
				return nil, fmt.Errorf("field '%s' is declared by both step %d and step %d", field, prev+1, i+1)
			}
			owner[field] = i
		}
	}

	e := &Engine{
		steps:    steps,
		owner:    owner,
		onSubmit: onSubmit,
		logger:   log.GetLogger().With(log.String(log.LoggerKeyComponentName, "WizardEngine")),
	}
	e.Reset()
	return e, nil
}

// SetField stores a value and clears the errors of every field in the owning step.
// Validation does not run here.
func (e *Engine) SetField(key string, value any) error {
	stepIdx, ok := e.owner[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, key)
	}
	if e.state.Completed {
		return ErrWizardCompleted
	}

	e.state.Values[key] = value
	for _, field := range e.steps[stepIdx].Fields {
		delete(e.state.Errors, field)
	}
	return nil
}

// NextStep validates the current step. On failure the errors are stored and returned and
// the step does not change. On success the errors are cleared and the wizard moves one
// step forward, staying put on the last step.
func (e *Engine) NextStep() validation.ErrorMap {
	if e.state.Completed {
		return validation.ErrorMap{}
	}

	errs := e.validateCurrentStep()
	if errs.HasErrors() {
		e.state.Errors = errs
		e.logger.Debug("Step validation failed", log.Int("step", e.state.CurrentStep),
			log.Int("errorCount", len(errs)))
		return errs.Clone()
	}

	e.state.Errors = validation.ErrorMap{}
	if e.state.CurrentStep < len(e.steps) {
		e.state.CurrentStep++
		e.logger.Debug("Moved to next step", log.Int("step", e.state.CurrentStep))
	}
	return validation.ErrorMap{}
}

// PreviousStep moves one step back, staying put on step 1. It never validates and leaves
// values and errors untouched.
func (e *Engine) PreviousStep() {
	if e.state.Completed {
		return
	}
	if e.state.CurrentStep > 1 {
		e.state.CurrentStep--
		e.logger.Debug("Moved to previous step", log.Int("step", e.state.CurrentStep))
	}
}

// Submit validates the last step and hands the assembled values to the submit callback.
// Validation failures are returned as an error map with a nil error. A rejected callback
// is returned as a *SubmissionError and leaves the wizard editable on the last step.
// Calling Submit on a completed wizard is a no-op.
func (e *Engine) Submit(ctx context.Context) (validation.ErrorMap, error) {
	if e.state.Completed {
		return validation.ErrorMap{}, nil
	}
	if e.state.IsSubmitting {
		return nil, ErrSubmitInProgress
	}
	if !e.IsLastStep() {
		return nil, ErrNotOnLastStep
	}

	errs := e.validateCurrentStep()
	if errs.HasErrors() {
		e.state.Errors = errs
		e.logger.Debug("Final step validation failed", log.Int("errorCount", len(errs)))
		return errs.Clone(), nil
	}
	e.state.Errors = validation.ErrorMap{}

	if err := e.runSubmit(ctx); err != nil {
		e.logger.Debug("Submission rejected", log.Error(err))
		return validation.ErrorMap{}, &SubmissionError{Cause: err}
	}

	e.state.Completed = true
	e.logger.Debug("Wizard completed", log.Int("fieldCount", len(e.state.Values)))
	return validation.ErrorMap{}, nil
}

// runSubmit invokes the callback while the submitting flag is raised.
func (e *Engine) runSubmit(ctx context.Context) error {
	e.state.IsSubmitting = true
	defer func() {
		e.state.IsSubmitting = false
	}()
	return e.onSubmit(ctx, e.Values())
}

// Reset returns the wizard to step 1 with no values and no errors.
func (e *Engine) Reset() {
	e.state = FormState{
		Values:      make(map[string]any),
		Errors:      validation.ErrorMap{},
		CurrentStep: 1,
	}
}

// State returns a snapshot of the current state. The maps are copies.
func (e *Engine) State() FormState {
	return FormState{
		Values:       e.Values(),
		Errors:       e.Errors(),
		CurrentStep:  e.state.CurrentStep,
		IsSubmitting: e.state.IsSubmitting,
		Completed:    e.state.Completed,
	}
}

// Values returns a copy of all field values.
func (e *Engine) Values() map[string]any {
	values := make(map[string]any, len(e.state.Values))
	for k, v := range e.state.Values {
		values[k] = v
	}
	return values
}

// Errors returns a copy of the current error map.
func (e *Engine) Errors() validation.ErrorMap {
	return e.state.Errors.Clone()
}

// CurrentStep returns the 1-based index of the current step.
func (e *Engine) CurrentStep() int {
	return e.state.CurrentStep
}

// StepCount returns the number of steps.
func (e *Engine) StepCount() int {
	return len(e.steps)
}

// Step returns the step at the 1-based position k.
func (e *Engine) Step(k int) (Step, bool) {
	if k < 1 || k > len(e.steps) {
		return Step{}, false
	}
	return e.steps[k-1], true
}

// IsLastStep reports whether the current step is the final one.
func (e *Engine) IsLastStep() bool {
	return e.state.CurrentStep == len(e.steps)
}

// IsSubmitting reports whether the submit callback is running.
func (e *Engine) IsSubmitting() bool {
	return e.state.IsSubmitting
}

// Completed reports whether the wizard was submitted successfully.
func (e *Engine) Completed() bool {
	return e.state.Completed
}

// StepValues returns the values of the fields owned by the 1-based step k.
func (e *Engine) StepValues(k int) map[string]any {
	step, ok := e.Step(k)
	if !ok {
		return map[string]any{}
	}
	values := make(map[string]any, len(step.Fields))
	for _, field := range step.Fields {
		if v, exists := e.state.Values[field]; exists {
			values[field] = v
		}
	}
	return values
}

// validateCurrentStep runs the current step validator and keeps only the messages for
// fields the step owns.
func (e *Engine) validateCurrentStep() validation.ErrorMap {
	stepIdx := e.state.CurrentStep - 1
	step := e.steps[stepIdx]

	errs := step.Validate.Run(e.StepValues(e.state.CurrentStep))
	for field := range errs {
		if owner, ok := e.owner[field]; !ok || owner != stepIdx {
			e.logger.Debug("Ignoring validation message for a field outside the step",
				log.String("field", field), log.Int("step", e.state.CurrentStep))
			delete(errs, field)
		}
	}
	return errs
}

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

package wizardexec

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/asgardeo/dashcore/internal/submission"
	"github.com/asgardeo/dashcore/internal/system/cache"
	"github.com/asgardeo/dashcore/internal/system/config"
	"github.com/asgardeo/dashcore/internal/system/error/serviceerror"
	"github.com/asgardeo/dashcore/internal/system/log"
	"github.com/asgardeo/dashcore/internal/wizard"
)

const (
	// sessionCacheName names the cache that holds the live wizard sessions.
	sessionCacheName = "WizardSessionCache"
	// defaultSessionTimeout is used when no session timeout is configured, in seconds.
	defaultSessionTimeout = 1800
)

// WizardExecServiceInterface defines the interface for driving wizard sessions.
type WizardExecServiceInterface interface {
	GetWizardList() []WizardSummary
	GetWizard(name string) (*wizard.Definition, *serviceerror.ServiceError)
	StartSession(name string) (*SessionState, *serviceerror.ServiceError)
	GetSession(id string) (*SessionState, *serviceerror.ServiceError)
	SetFields(id string, values map[string]any) (*SessionState, *serviceerror.ServiceError)
	NextStep(id string) (*SessionState, *serviceerror.ServiceError)
	PreviousStep(id string) (*SessionState, *serviceerror.ServiceError)
	Submit(ctx context.Context, id string) (*SessionState, *serviceerror.ServiceError)
	Reset(id string) (*SessionState, *serviceerror.ServiceError)
	DeleteSession(id string) *serviceerror.ServiceError
}

// wizardExecService keeps wizard sessions in an in-memory cache. A session expires when it
// has not been changed for the session timeout.
type wizardExecService struct {
	definitions       map[string]*wizard.Definition
	submissionService submission.SubmissionServiceInterface
	sessions          cache.CacheInterface[*session]
}

// newWizardExecService creates a new instance of wizardExecService.
func newWizardExecService(definitions map[string]*wizard.Definition,
	submissionService submission.SubmissionServiceInterface,
	sessions cache.CacheInterface[*session]) *wizardExecService {
	return &wizardExecService{
		definitions:       definitions,
		submissionService: submissionService,
		sessions:          sessions,
	}
}

// newSessionCache creates the session cache from the wizard configuration.
func newSessionCache(cfg config.WizardConfig, opts ...cache.Option) cache.CacheInterface[*session] {
	timeout := cfg.SessionTimeout
	if timeout <= 0 {
		timeout = defaultSessionTimeout
	}
	cacheConfig := config.CacheConfig{
		Properties: []config.CacheProperty{
			{Name: sessionCacheName, Size: cfg.MaxSessions, TTL: timeout},
		},
	}
	return cache.NewCache[*session](sessionCacheName, cacheConfig, opts...)
}

// GetWizardList returns the summaries of all wizard definitions ordered by name.
func (ws *wizardExecService) GetWizardList() []WizardSummary {
	summaries := make([]WizardSummary, 0, len(ws.definitions))
	for _, def := range ws.definitions {
		summaries = append(summaries, WizardSummary{
			Name:        def.Name,
			DisplayName: def.DisplayName,
			Description: def.Description,
			StepCount:   len(def.Steps),
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Name < summaries[j].Name
	})
	return summaries
}

// GetWizard returns a wizard definition by name.
func (ws *wizardExecService) GetWizard(name string) (*wizard.Definition, *serviceerror.ServiceError) {
	def, ok := ws.definitions[name]
	if !ok {
		return nil, &ErrorWizardNotFound
	}
	return def, nil
}

// StartSession opens a new session of the named wizard on its first step.
func (ws *wizardExecService) StartSession(name string) (*SessionState, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "WizardExecService"))

	def, ok := ws.definitions[name]
	if !ok {
		return nil, &ErrorWizardNotFound
	}

	s := &session{
		id:     uuid.New().String(),
		def:    def,
		fields: make(map[string]struct{}),
	}
	for _, stepDef := range def.Steps {
		for _, fieldDef := range stepDef.Fields {
			s.fields[fieldDef.Key] = struct{}{}
		}
	}

	engine, err := def.NewEngine(ws.submitFunc(s))
	if err != nil {
		logger.Error("Failed to create wizard engine", log.String(log.LoggerKeyWizardName, name), log.Error(err))
		return nil, &ErrorInternalServerError
	}
	s.engine = engine
	s.publish()

	ws.sessions.CleanupExpired()
	ws.sessions.Set(s.key(), s)

	logger.Debug("Started wizard session", log.String(log.LoggerKeySessionID, s.id),
		log.String(log.LoggerKeyWizardName, name))
	state := s.state()
	return &state, nil
}

// GetSession returns the last published state of a session.
func (ws *wizardExecService) GetSession(id string) (*SessionState, *serviceerror.ServiceError) {
	s, svcErr := ws.lookup(id)
	if svcErr != nil {
		return nil, svcErr
	}
	state := s.state()
	return &state, nil
}

// SetFields stores field values. Every key is checked before any value is applied.
func (ws *wizardExecService) SetFields(id string, values map[string]any) (
	*SessionState, *serviceerror.ServiceError) {
	return ws.withSession(id, func(s *session) *serviceerror.ServiceError {
		keys := make([]string, 0, len(values))
		for key := range values {
			if !s.hasField(key) {
				return serviceerror.CustomServiceError(ErrorUnknownField,
					fmt.Sprintf("The field '%s' is not declared by any step of the wizard", key))
			}
			keys = append(keys, key)
		}
		if s.engine.Completed() && len(keys) > 0 {
			return &ErrorWizardCompleted
		}

		sort.Strings(keys)
		for _, key := range keys {
			if err := s.engine.SetField(key, values[key]); err != nil {
				return mapEngineError(err)
			}
		}
		return nil
	})
}

// NextStep validates the current step and advances when it is valid.
// Validation failures are reported in the returned state.
func (ws *wizardExecService) NextStep(id string) (*SessionState, *serviceerror.ServiceError) {
	return ws.withSession(id, func(s *session) *serviceerror.ServiceError {
		s.engine.NextStep()
		return nil
	})
}

// PreviousStep moves the session one step back.
func (ws *wizardExecService) PreviousStep(id string) (*SessionState, *serviceerror.ServiceError) {
	return ws.withSession(id, func(s *session) *serviceerror.ServiceError {
		s.engine.PreviousStep()
		return nil
	})
}

// Submit validates the last step and records the payload. A rejected submission leaves the
// session on its last step for a retry.
func (ws *wizardExecService) Submit(ctx context.Context, id string) (*SessionState, *serviceerror.ServiceError) {
	return ws.withSession(id, func(s *session) *serviceerror.ServiceError {
		if _, err := s.engine.Submit(ctx); err != nil {
			return mapEngineError(err)
		}
		return nil
	})
}

// Reset returns the session to its first step with no values.
func (ws *wizardExecService) Reset(id string) (*SessionState, *serviceerror.ServiceError) {
	return ws.withSession(id, func(s *session) *serviceerror.ServiceError {
		s.engine.Reset()
		s.submissionID = ""
		return nil
	})
}

// DeleteSession discards a session.
func (ws *wizardExecService) DeleteSession(id string) *serviceerror.ServiceError {
	if !ws.sessions.Delete(cache.CacheKey{Key: id}) {
		return &ErrorSessionNotFound
	}
	return nil
}

// submitFunc records the payload of the session through the submission service.
func (ws *wizardExecService) submitFunc(s *session) wizard.SubmitFunc {
	return func(ctx context.Context, values map[string]any) error {
		s.publish()
		ws.sessions.Set(s.key(), s)

		record, svcErr := ws.submissionService.RecordSubmission(ctx, s.def.Name, values)
		if svcErr != nil {
			return fmt.Errorf("%s: %s", svcErr.Error, svcErr.ErrorDescription)
		}
		s.submissionID = record.ID
		return nil
	}
}

// withSession runs op with exclusive access to the session engine and publishes the result.
func (ws *wizardExecService) withSession(id string, op func(s *session) *serviceerror.ServiceError) (
	*SessionState, *serviceerror.ServiceError) {
	s, svcErr := ws.lookup(id)
	if svcErr != nil {
		return nil, svcErr
	}

	if !s.mu.TryLock() {
		if s.state().IsSubmitting {
			return nil, &ErrorSubmitInProgress
		}
		return nil, &ErrorSessionBusy
	}
	defer s.mu.Unlock()

	opErr := op(s)
	s.publish()
	ws.sessions.Set(s.key(), s)
	if opErr != nil {
		return nil, opErr
	}
	state := s.state()
	return &state, nil
}

// lookup returns a live session.
func (ws *wizardExecService) lookup(id string) (*session, *serviceerror.ServiceError) {
	s, ok := ws.sessions.Get(cache.CacheKey{Key: id})
	if !ok {
		return nil, &ErrorSessionNotFound
	}
	return s, nil
}

// mapEngineError converts wizard engine errors to service errors.
func mapEngineError(err error) *serviceerror.ServiceError {
	var subErr *wizard.SubmissionError
	switch {
	case errors.As(err, &subErr):
		return serviceerror.CustomServiceError(ErrorSubmissionFailed, subErr.Error())
	case errors.Is(err, wizard.ErrUnknownField):
		return serviceerror.CustomServiceError(ErrorUnknownField, err.Error())
	case errors.Is(err, wizard.ErrWizardCompleted):
		return &ErrorWizardCompleted
	case errors.Is(err, wizard.ErrNotOnLastStep):
		return &ErrorNotOnLastStep
	case errors.Is(err, wizard.ErrSubmitInProgress):
		return &ErrorSubmitInProgress
	}
	log.GetLogger().Error("Unexpected wizard engine error", log.Error(err))
	return &ErrorInternalServerError
}

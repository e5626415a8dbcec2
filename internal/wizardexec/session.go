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
	"sync"

	"github.com/asgardeo/dashcore/internal/system/cache"
	"github.com/asgardeo/dashcore/internal/wizard"
)

// session is one running wizard. mu serializes engine operations; snapMu guards the published
// snapshot so reads never wait for a running submission.
type session struct {
	id     string
	def    *wizard.Definition
	fields map[string]struct{}
	engine *wizard.Engine

	mu           sync.Mutex
	submissionID string

	snapMu   sync.RWMutex
	snapshot SessionState
}

// key returns the cache key of the session.
func (s *session) key() cache.CacheKey {
	return cache.CacheKey{Key: s.id}
}

// publish stores a snapshot of the engine state. Callers must hold mu.
func (s *session) publish() {
	state := s.engine.State()
	current := state.CurrentStep

	snapshot := SessionState{
		SessionID:    s.id,
		Wizard:       s.def.Name,
		CurrentStep:  current,
		StepCount:    s.engine.StepCount(),
		Values:       state.Values,
		Errors:       state.Errors,
		IsSubmitting: state.IsSubmitting,
		Completed:    state.Completed,
		SubmissionID: s.submissionID,
		Fields:       []wizard.FieldDefinition{},
	}
	if step, ok := s.engine.Step(current); ok {
		snapshot.StepName = step.Name
	}
	if current >= 1 && current <= len(s.def.Steps) {
		stepDef := s.def.Steps[current-1]
		snapshot.StepTitle = stepDef.Title
		snapshot.Fields = append(snapshot.Fields, stepDef.Fields...)
	}

	s.snapMu.Lock()
	s.snapshot = snapshot
	s.snapMu.Unlock()
}

// state returns the last published snapshot.
func (s *session) state() SessionState {
	s.snapMu.RLock()
	defer s.snapMu.RUnlock()
	return s.snapshot
}

// hasField reports whether any step of the wizard declares the field.
func (s *session) hasField(key string) bool {
	_, ok := s.fields[key]
	return ok
}

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

package submission

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/asgardeo/dashcore/internal/system/error/serviceerror"
	"github.com/asgardeo/dashcore/internal/system/log"
)

// SubmissionServiceInterface defines the interface for the submission service.
type SubmissionServiceInterface interface {
	RecordSubmission(ctx context.Context, wizardName string, values map[string]any) (
		*Submission, *serviceerror.ServiceError)
	GetSubmission(id string) (*Submission, *serviceerror.ServiceError)
	GetSubmissionList(wizardName string) ([]Submission, *serviceerror.ServiceError)
}

// submissionService is the default implementation of SubmissionServiceInterface.
type submissionService struct {
	store submissionStoreInterface
	now   func() time.Time
}

// newSubmissionService creates a new instance of submissionService.
func newSubmissionService(store submissionStoreInterface) SubmissionServiceInterface {
	return &submissionService{
		store: store,
		now:   time.Now,
	}
}

// RecordSubmission stores the assembled values of a completed wizard.
func (ss *submissionService) RecordSubmission(ctx context.Context, wizardName string, values map[string]any) (
	*Submission, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SubmissionService"))

	if wizardName == "" {
		return nil, &ErrorInvalidWizardName
	}
	if err := ctx.Err(); err != nil {
		logger.Debug("Submission cancelled before it was stored", log.Error(err))
		return nil, &ErrorRequestCancelled
	}

	submission := Submission{
		ID:         uuid.New().String(),
		WizardName: wizardName,
		Payload:    values,
		CreatedAt:  ss.now().UTC(),
	}
	if submission.Payload == nil {
		submission.Payload = map[string]any{}
	}

	if err := ss.store.CreateSubmission(submission); err != nil {
		if errors.Is(err, errInvalidPayload) {
			return nil, &ErrorInvalidPayload
		}
		logger.Error("Failed to store submission", log.String(log.LoggerKeyWizardName, wizardName), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	logger.Debug("Recorded submission", log.String("submissionId", submission.ID),
		log.String(log.LoggerKeyWizardName, wizardName))
	return &submission, nil
}

// GetSubmission retrieves a submission by its ID.
func (ss *submissionService) GetSubmission(id string) (*Submission, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SubmissionService"))

	if id == "" {
		return nil, &ErrorInvalidSubmissionID
	}

	submission, err := ss.store.GetSubmission(id)
	if err != nil {
		if errors.Is(err, ErrSubmissionNotFound) {
			return nil, &ErrorSubmissionNotFound
		}
		logger.Error("Failed to get submission", log.String("submissionId", id), log.Error(err))
		return nil, &ErrorInternalServerError
	}
	return submission, nil
}

// GetSubmissionList lists the submissions of a wizard, newest first. An empty name lists all submissions.
func (ss *submissionService) GetSubmissionList(wizardName string) ([]Submission, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SubmissionService"))

	submissions, err := ss.store.GetSubmissionList(wizardName)
	if err != nil {
		logger.Error("Failed to list submissions", log.String(log.LoggerKeyWizardName, wizardName), log.Error(err))
		return nil, &ErrorInternalServerError
	}
	return submissions, nil
}

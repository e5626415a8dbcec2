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
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/asgardeo/dashcore/internal/system/database/provider"
)

// createdAtLayout is the fixed-width UTC layout of CREATED_AT so that text ordering is chronological.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z"

// errInvalidPayload is returned when a payload cannot be encoded as JSON.
var errInvalidPayload = errors.New("payload cannot be encoded as JSON")

// submissionStoreInterface defines the interface for submission store operations.
type submissionStoreInterface interface {
	CreateSubmission(submission Submission) error
	GetSubmission(id string) (*Submission, error)
	GetSubmissionList(wizardName string) ([]Submission, error)
}

// submissionStore is the default implementation of submissionStoreInterface.
type submissionStore struct {
	dbProvider provider.DBProviderInterface
}

// newSubmissionStore creates a new instance of submissionStore.
func newSubmissionStore(dbProvider provider.DBProviderInterface) submissionStoreInterface {
	return &submissionStore{
		dbProvider: dbProvider,
	}
}

// CreateSubmission stores a submission in the database.
func (s *submissionStore) CreateSubmission(submission Submission) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.RuntimeDB)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	payload, err := json.Marshal(submission.Payload)
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidPayload, err)
	}

	_, err = dbClient.Execute(queryCreateSubmission, submission.ID, submission.WizardName, string(payload),
		submission.CreatedAt.UTC().Format(createdAtLayout))
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// GetSubmission retrieves a submission by its ID.
func (s *submissionStore) GetSubmission(id string) (*Submission, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.RuntimeDB)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetSubmissionByID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrSubmissionNotFound
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	return buildSubmissionFromResultRow(results[0])
}

// GetSubmissionList retrieves the submissions of a wizard, or all submissions when wizardName is empty.
func (s *submissionStore) GetSubmissionList(wizardName string) ([]Submission, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.RuntimeDB)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	var results []map[string]interface{}
	if wizardName == "" {
		results, err = dbClient.Query(queryGetSubmissionList)
	} else {
		results, err = dbClient.Query(queryGetSubmissionsByWizard, wizardName)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	submissions := make([]Submission, 0, len(results))
	for _, row := range results {
		submission, err := buildSubmissionFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build submission from result row: %w", err)
		}
		submissions = append(submissions, *submission)
	}
	return submissions, nil
}

// buildSubmissionFromResultRow constructs a Submission from a database result row.
func buildSubmissionFromResultRow(row map[string]interface{}) (*Submission, error) {
	id, ok := textColumn(row["submission_id"])
	if !ok {
		return nil, fmt.Errorf("failed to parse submission_id as string")
	}
	wizardName, ok := textColumn(row["wizard_name"])
	if !ok {
		return nil, fmt.Errorf("failed to parse wizard_name as string")
	}
	payloadJSON, ok := textColumn(row["payload"])
	if !ok {
		return nil, fmt.Errorf("failed to parse payload as string")
	}
	createdAtText, ok := textColumn(row["created_at"])
	if !ok {
		return nil, fmt.Errorf("failed to parse created_at as string")
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(payloadJSON), &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	createdAt, err := time.Parse(createdAtLayout, createdAtText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &Submission{
		ID:         id,
		WizardName: wizardName,
		Payload:    payload,
		CreatedAt:  createdAt,
	}, nil
}

// textColumn reads a text column, which drivers return as either string or []byte.
func textColumn(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	}
	return "", false
}

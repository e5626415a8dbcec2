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

// Package submissionmock provides a mock implementation of the submission service for testing.
package submissionmock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/asgardeo/dashcore/internal/submission"
	"github.com/asgardeo/dashcore/internal/system/error/serviceerror"
)

// SubmissionServiceInterfaceMock is a mock implementation of SubmissionServiceInterface.
type SubmissionServiceInterfaceMock struct {
	mock.Mock
}

// RecordSubmission mocks the RecordSubmission method.
func (m *SubmissionServiceInterfaceMock) RecordSubmission(ctx context.Context, wizardName string,
	values map[string]any) (*submission.Submission, *serviceerror.ServiceError) {
	args := m.Called(ctx, wizardName, values)
	return submissionArg(args, 0), serviceErrorArg(args, 1)
}

// GetSubmission mocks the GetSubmission method.
func (m *SubmissionServiceInterfaceMock) GetSubmission(id string) (
	*submission.Submission, *serviceerror.ServiceError) {
	args := m.Called(id)
	return submissionArg(args, 0), serviceErrorArg(args, 1)
}

// GetSubmissionList mocks the GetSubmissionList method.
func (m *SubmissionServiceInterfaceMock) GetSubmissionList(wizardName string) (
	[]submission.Submission, *serviceerror.ServiceError) {
	args := m.Called(wizardName)
	var list []submission.Submission
	if v := args.Get(0); v != nil {
		list = v.([]submission.Submission)
	}
	return list, serviceErrorArg(args, 1)
}

func submissionArg(args mock.Arguments, index int) *submission.Submission {
	if v := args.Get(index); v != nil {
		return v.(*submission.Submission)
	}
	return nil
}

func serviceErrorArg(args mock.Arguments, index int) *serviceerror.ServiceError {
	if v := args.Get(index); v != nil {
		return v.(*serviceerror.ServiceError)
	}
	return nil
}

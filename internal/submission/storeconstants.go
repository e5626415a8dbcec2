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

import "github.com/asgardeo/dashcore/internal/system/database/model"

var (
	// queryCreateSubmission is the query to store a completed wizard payload.
	queryCreateSubmission = model.DBQuery{
		ID: "SBQ-SUB_MGT-01",
		Query: "INSERT INTO SUBMISSION (SUBMISSION_ID, WIZARD_NAME, PAYLOAD, CREATED_AT) " +
			"VALUES ($1, $2, $3, $4)",
	}
	// queryGetSubmissionByID is the query to get a submission by its ID.
	queryGetSubmissionByID = model.DBQuery{
		ID:    "SBQ-SUB_MGT-02",
		Query: "SELECT SUBMISSION_ID, WIZARD_NAME, PAYLOAD, CREATED_AT FROM SUBMISSION WHERE SUBMISSION_ID = $1",
	}
	// queryGetSubmissionsByWizard is the query to list the submissions of a wizard, newest first.
	queryGetSubmissionsByWizard = model.DBQuery{
		ID: "SBQ-SUB_MGT-03",
		Query: "SELECT SUBMISSION_ID, WIZARD_NAME, PAYLOAD, CREATED_AT FROM SUBMISSION " +
			"WHERE WIZARD_NAME = $1 ORDER BY CREATED_AT DESC",
	}
	// queryGetSubmissionList is the query to list all submissions, newest first.
	queryGetSubmissionList = model.DBQuery{
		ID:    "SBQ-SUB_MGT-04",
		Query: "SELECT SUBMISSION_ID, WIZARD_NAME, PAYLOAD, CREATED_AT FROM SUBMISSION ORDER BY CREATED_AT DESC",
	}
)

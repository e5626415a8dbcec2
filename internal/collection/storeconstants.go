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

import "github.com/asgardeo/dashcore/internal/system/database/model"

var (
	// queryGetCollectionItems is the query to get the items of a collection in their stored order.
	queryGetCollectionItems = model.DBQuery{
		ID: "CLQ-CLS_MGT-01",
		Query: "SELECT ITEM_ID, ATTRIBUTES FROM COLLECTION_ITEM WHERE COLLECTION_NAME = $1 " +
			"ORDER BY POSITION, ITEM_ID",
	}
)

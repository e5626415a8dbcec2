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

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/asgardeo/dashcore/internal/query"
	"github.com/asgardeo/dashcore/internal/system/error/apierror"
	"github.com/asgardeo/dashcore/internal/system/error/serviceerror"
	"github.com/asgardeo/dashcore/internal/system/log"
	sysutils "github.com/asgardeo/dashcore/internal/system/utils"
)

// collectionHandler is the handler for collection query operations.
type collectionHandler struct {
	collectionService CollectionServiceInterface
}

// newCollectionHandler creates a new instance of collectionHandler.
func newCollectionHandler(collectionService CollectionServiceInterface) *collectionHandler {
	return &collectionHandler{
		collectionService: collectionService,
	}
}

// HandleCollectionListRequest handles the list collections request.
func (ch *collectionHandler) HandleCollectionListRequest(w http.ResponseWriter, r *http.Request) {
	sysutils.WriteJSONResponse(w, http.StatusOK, ch.collectionService.GetCollectionList())
}

// HandleCollectionGetRequest handles the get collection details request.
func (ch *collectionHandler) HandleCollectionGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CollectionHandler"))

	details, svcErr := ch.collectionService.GetCollection(strings.TrimSpace(r.PathValue("name")))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}
	sysutils.WriteJSONResponse(w, http.StatusOK, details)
}

// HandleCollectionQueryRequest handles the collection query request.
// Query parameters: q (search text), sort (key or key:direction), direction, and any filter key.
func (ch *collectionHandler) HandleCollectionQueryRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CollectionHandler"))

	name := strings.TrimSpace(r.PathValue("name"))
	criteria := parseCriteria(r.URL.Query())

	result, svcErr := ch.collectionService.QueryCollection(name, criteria)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	if logger.IsDebugEnabled() {
		logger.Debug("Collection queried", log.String(log.LoggerKeyCollection, name),
			log.Int("total", result.Total), log.Int("count", result.Count))
	}
	sysutils.WriteJSONResponse(w, http.StatusOK, result)
}

// parseCriteria builds query criteria from request parameters.
func parseCriteria(params url.Values) query.Criteria {
	criteria := query.Criteria{
		Query:         params.Get(paramQuery),
		Filters:       map[string]string{},
		SortDirection: query.Ascending,
	}

	sortParam := strings.TrimSpace(params.Get(paramSort))
	if key, dir, found := strings.Cut(sortParam, ":"); found {
		criteria.SortKey = strings.TrimSpace(key)
		criteria.SortDirection = query.ParseDirection(dir)
	} else {
		criteria.SortKey = sortParam
	}
	if params.Has(paramDirection) {
		criteria.SortDirection = query.ParseDirection(params.Get(paramDirection))
	}

	for key, values := range params {
		if key == paramQuery || key == paramSort || key == paramDirection || len(values) == 0 {
			continue
		}
		criteria.Filters[key] = values[0]
	}
	return criteria
}

// writeServiceErrorResponse writes a service error as an API error response.
func writeServiceErrorResponse(w http.ResponseWriter, svcErr *serviceerror.ServiceError, logger *log.Logger) {
	var statusCode int
	if svcErr.Type == serviceerror.ClientErrorType {
		statusCode = getClientErrorStatusCode(svcErr.Code)
	} else {
		statusCode = http.StatusInternalServerError
		logger.Debug("Responding with server error", log.String("code", svcErr.Code))
	}

	sysutils.WriteJSONResponse(w, statusCode, apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	})
}

// getClientErrorStatusCode returns the appropriate HTTP status code for client errors.
func getClientErrorStatusCode(errorCode string) int {
	switch errorCode {
	case ErrorCollectionNotFound.Code:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

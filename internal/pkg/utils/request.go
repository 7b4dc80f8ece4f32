package utils

import (
	"mediflow-service/internal/pkg/constvars"
	"mediflow-service/internal/pkg/dto/requests"
	"mediflow-service/internal/pkg/exceptions"
	"net/http"
	"strconv"
	"time"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

// ParseListRecordsQuery reads the shared list filters from the query string.
// Date filters accept RFC3339 or plain yyyy-mm-dd values.
func ParseListRecordsQuery(r *http.Request) (*requests.ListRecordsQuery, error) {
	q := r.URL.Query()

	query := &requests.ListRecordsQuery{
		Search:   q.Get(constvars.URLQueryParamSearch),
		Status:   q.Get(constvars.URLQueryParamStatus),
		Page:     defaultPage,
		PageSize: defaultPageSize,
	}

	if raw := q.Get(constvars.URLQueryParamPage); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLQueryParamPage)
		}
		query.Page = page
	}
	if raw := q.Get(constvars.URLQueryParamPageSize); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil || pageSize < 1 {
			return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLQueryParamPageSize)
		}
		if pageSize > maxPageSize {
			pageSize = maxPageSize
		}
		query.PageSize = pageSize
	}

	if raw := q.Get(constvars.URLQueryParamDateFrom); raw != "" {
		parsed, err := ParseFlexibleDate(raw)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		query.DateFrom = &parsed
	}
	if raw := q.Get(constvars.URLQueryParamDateTo); raw != "" {
		parsed, err := ParseFlexibleDate(raw)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		query.DateTo = &parsed
	}

	return query, nil
}

func ParseFlexibleDate(raw string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, raw)
	if err == nil {
		return parsed, nil
	}
	return time.ParseInLocation("2006-01-02", raw, time.Local)
}

package api

import (
	"net/http"
	"strconv"

	apperrors "github.com/goodbooksapp/goodbooks-server/internal/errors"
	"github.com/goodbooksapp/goodbooks-server/internal/store"
)

// parsePageParams parses pagination parameters from the query string.
// Malformed values fall back to defaults; normalization clamps the range.
func parsePageParams(r *http.Request) store.PageParams {
	params := store.DefaultPageParams()

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			params.Page = page
		}
	}

	if sizeStr := r.URL.Query().Get("page_size"); sizeStr != "" {
		if size, err := strconv.Atoi(sizeStr); err == nil {
			params.PageSize = size
		}
	}

	params.Normalize()

	return params
}

// parseBookQuery parses the book listing parameters from the query string.
func parseBookQuery(r *http.Request) (store.BookQuery, error) {
	query := r.URL.Query()

	q := store.BookQuery{
		Text:  query.Get("q"),
		Sort:  store.SortByAverage,
		Order: "desc",
		Page:  parsePageParams(r),
	}

	if raw := query.Get("min_avg"); raw != "" {
		minAvg, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return q, apperrors.Validation("Invalid min_avg")
		}
		q.MinAvg = &minAvg
	}

	if raw := query.Get("year_from"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return q, apperrors.Validation("Invalid year_from")
		}
		q.YearFrom = &year
	}

	if raw := query.Get("year_to"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return q, apperrors.Validation("Invalid year_to")
		}
		q.YearTo = &year
	}

	if raw := query.Get("sort"); raw != "" {
		if !store.ValidSortKey(raw) {
			return q, apperrors.Validation("Invalid sort key")
		}
		q.Sort = raw
	}

	if raw := query.Get("order"); raw != "" {
		if raw != "asc" && raw != "desc" {
			return q, apperrors.Validation("Invalid sort order")
		}
		q.Order = raw
	}

	return q, nil
}

// parseInt64Param parses a numeric chi URL parameter.
func parseInt64Param(raw, message string) (int64, error) {
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.Validation(message)
	}
	return value, nil
}

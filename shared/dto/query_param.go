package dto

import (
	"net/http"
	"roombooking/shared/constant"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty,min=1"`
	Limit   int    `json:"limit"    validate:"omitempty,min=1,max=100"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates QueryParams from the HTTP request.
// With defaultRequest set, missing Page and Limit fall back to the defaults;
// otherwise a zero Limit means "everything".
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if sortDir := strings.ToUpper(queryParams.Get(constant.RequestParamSortDir)); sortDir == SortDirAsc || sortDir == SortDirDesc {
		q.SortDir = sortDir
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}

// Descending reports whether results should be sorted high to low.
func (q *QueryParams) Descending() bool {
	return q.SortDir == SortDirDesc
}

type Pagination struct {
	Page      int `json:"page"`
	Limit     int `json:"limit"`
	TotalPage int `json:"total_page"`
	TotalData int `json:"total_data"`
}

// Paginate returns the requested page of items. A zero Limit returns every item
// and a nil Pagination.
func Paginate[T any](items []T, q QueryParams) ([]T, *Pagination) {
	if q.Limit <= 0 {
		return items, nil
	}

	page := max(q.Page, constant.DefaultValuePage)
	total := len(items)

	totalPage := total / q.Limit
	if total%q.Limit != 0 {
		totalPage++
	}

	pagination := &Pagination{
		Page:      page,
		Limit:     q.Limit,
		TotalPage: totalPage,
		TotalData: total,
	}

	// Checked before multiplying: page comes straight from user input.
	if page > totalPage {
		return items[:0], pagination
	}

	start := (page - 1) * q.Limit
	end := min(start+q.Limit, total)

	return items[start:end], pagination
}

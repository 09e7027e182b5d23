package paperless

import (
	"net/url"
	"strconv"
)

// QueryParams expresses the common list options. Filters hold raw
// query keys (e.g. "tags__id__in", "correspondent__id") whose values
// are sent as repeated keys in slice order; url.Values encoding sorts
// keys, so the resulting URL is deterministic for a given set of
// parameters.
type QueryParams struct {
	Page     int
	PageSize int
	Ordering string
	Search   string
	Filters  map[string][]string
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// WithPage sets the page number.
func (q *QueryParams) WithPage(page int) *QueryParams {
	q.Page = page

	return q
}

// WithPageSize sets the page size.
func (q *QueryParams) WithPageSize(size int) *QueryParams {
	q.PageSize = size

	return q
}

// WithOrdering sets the ordering field; prefix with "-" for descending.
func (q *QueryParams) WithOrdering(field string) *QueryParams {
	q.Ordering = field

	return q
}

// WithSearch sets the full-text search query.
func (q *QueryParams) WithSearch(query string) *QueryParams {
	q.Search = query

	return q
}

// WithFilter appends values for a filter key; calling it again for the
// same key appends rather than replaces.
func (q *QueryParams) WithFilter(key string, values ...string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[key] = append(q.Filters[key], values...)

	return q
}

// ToValues converts the params to URL query values. Values are
// percent-encoded by url.Values.Encode at request-build time.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q == nil {
		return values
	}

	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}

	if q.PageSize > 0 {
		values.Set("page_size", strconv.Itoa(q.PageSize))
	}

	if q.Ordering != "" {
		values.Set("ordering", q.Ordering)
	}

	if q.Search != "" {
		values.Set("search", q.Search)
	}

	for key, filterValues := range q.Filters {
		for _, value := range filterValues {
			values.Add(key, value)
		}
	}

	return values
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/paperstack-io/paperless-client/internal/http"
	"github.com/paperstack-io/paperless-client/pkg/paperless"
)

// decode parses a 2xx body into v, surfacing failures as decode errors
// that name the expected shape.
func decode(target string, body []byte, v interface{}) error {
	err := json.Unmarshal(body, v)
	if err != nil {
		return paperless.NewDecodeError(target, err)
	}

	return nil
}

// fetchPage fetches the first page of a listing. A single malformed
// item fails the whole page decode; there are no partial pages.
func fetchPage[T any](ctx context.Context, httpClient *http.Client, path string, params *paperless.QueryParams, target string) (*paperless.Page[T], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", target, err)
	}

	var page paperless.Page[T]

	err = decode(target+" page", resp.Body, &page)
	if err != nil {
		return nil, err
	}

	return &page, nil
}

// fetchPageURL fetches a page at an opaque cursor URL.
func fetchPageURL[T any](ctx context.Context, httpClient *http.Client, cursor string, target string) (*paperless.Page[T], error) {
	resp, err := httpClient.GetURL(ctx, cursor)
	if err != nil {
		return nil, fmt.Errorf("fetching %s page: %w", target, err)
	}

	var page paperless.Page[T]

	err = decode(target+" page", resp.Body, &page)
	if err != nil {
		return nil, err
	}

	return &page, nil
}

// newPageIterator wires a listing path into a lazy page iterator. The
// params only apply to the first request; subsequent pages follow the
// server's cursor URLs verbatim.
func newPageIterator[T any](ctx context.Context, httpClient *http.Client, path string, params *paperless.QueryParams, target string) *paperless.PageIterator[T] {
	fetch := func(ctx context.Context, cursor string) (*paperless.Page[T], error) {
		if cursor == "" {
			return fetchPage[T](ctx, httpClient, path, params, target)
		}

		return fetchPageURL[T](ctx, httpClient, cursor, target)
	}

	return paperless.NewPageIterator(ctx, fetch)
}

package paperless_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperstack-io/paperless-client/pkg/paperless"
)

// fakePages builds a fetch func over pre-cut pages keyed by cursor. The
// first page is served for the empty cursor.
func fakePages[T any](pages []*paperless.Page[T]) (paperless.PageFetchFunc[T], *int) {
	cursors := make(map[string]*paperless.Page[T], len(pages))

	for i, page := range pages {
		cursor := ""
		if i > 0 {
			cursor = fmt.Sprintf("https://example.com/api/items/?page=%d", i+1)
		}

		cursors[cursor] = page
	}

	fetches := 0

	return func(ctx context.Context, cursor string) (*paperless.Page[T], error) {
		fetches++

		page, ok := cursors[cursor]
		if !ok {
			return nil, fmt.Errorf("unexpected cursor %q", cursor)
		}

		return page, nil
	}, &fetches
}

func cutPages(items []int, pageSize int) []*paperless.Page[int] {
	var pages []*paperless.Page[int]

	for start := 0; start < len(items); start += pageSize {
		end := start + pageSize
		if end > len(items) {
			end = len(items)
		}

		pages = append(pages, &paperless.Page[int]{
			Count:   len(items),
			Results: items[start:end],
		})
	}

	for i := 0; i < len(pages)-1; i++ {
		next := fmt.Sprintf("https://example.com/api/items/?page=%d", i+2)
		pages[i].Next = &next
	}

	return pages
}

func TestPageIterator_WalksAllPages(t *testing.T) {
	t.Parallel()

	items := make([]int, 60)
	for i := range items {
		items[i] = i
	}

	// 60 items cut 25/25/10.
	fetch, fetches := fakePages(cutPages(items, 25))
	iterator := paperless.NewPageIterator(context.Background(), fetch)

	assert.Equal(t, -1, iterator.Total())

	var got []int

	for iterator.HasNext() {
		item, err := iterator.Next()
		if err != nil {
			require.ErrorIs(t, err, paperless.ErrNoMoreItems)

			break
		}

		got = append(got, *item)
	}

	assert.Equal(t, items, got)
	assert.Equal(t, 60, iterator.Total())
	assert.Equal(t, 3, *fetches)
	assert.False(t, iterator.HasNext())
}

func TestPageIterator_ExhaustedStaysExhausted(t *testing.T) {
	t.Parallel()

	fetch, fetches := fakePages([]*paperless.Page[int]{
		{Count: 2, Results: []int{1, 2}},
	})
	iterator := paperless.NewPageIterator(context.Background(), fetch)

	got, err := iterator.All()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)

	// Repeated Next calls after exhaustion never fetch again.
	for i := 0; i < 3; i++ {
		_, err = iterator.Next()
		assert.ErrorIs(t, err, paperless.ErrNoMoreItems)
	}

	assert.Equal(t, 1, *fetches)
}

func TestPageIterator_EmptyListing(t *testing.T) {
	t.Parallel()

	fetch, _ := fakePages([]*paperless.Page[int]{
		{Count: 0, Results: nil},
	})
	iterator := paperless.NewPageIterator(context.Background(), fetch)

	assert.True(t, iterator.HasNext())

	_, err := iterator.Next()
	assert.ErrorIs(t, err, paperless.ErrNoMoreItems)
	assert.Equal(t, 0, iterator.Total())
	assert.False(t, iterator.HasNext())
}

func TestPageIterator_FetchErrorHaltsIteration(t *testing.T) {
	t.Parallel()

	next := "https://example.com/api/items/?page=2"
	pages := []*paperless.Page[int]{
		{Count: 4, Next: &next, Results: []int{1, 2}},
	}

	fetches := 0
	fetch := func(ctx context.Context, cursor string) (*paperless.Page[int], error) {
		fetches++
		if cursor != "" {
			return nil, &paperless.Error{Code: paperless.ErrorCodeServer, Status: 502}
		}

		return pages[0], nil
	}

	iterator := paperless.NewPageIterator(context.Background(), fetch)

	first, err := iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, *first)

	second, err := iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, *second)

	_, err = iterator.Next()
	require.Error(t, err)
	assert.True(t, paperless.IsTransient(err))

	// The failure is terminal.
	_, err = iterator.Next()
	assert.ErrorIs(t, err, paperless.ErrNoMoreItems)
	assert.Equal(t, 2, fetches)
}

func TestPageIterator_All_PropagatesError(t *testing.T) {
	t.Parallel()

	fetch := func(ctx context.Context, cursor string) (*paperless.Page[int], error) {
		return nil, &paperless.Error{Code: paperless.ErrorCodeUnauthorized, Status: 401}
	}

	iterator := paperless.NewPageIterator(context.Background(), fetch)

	_, err := iterator.All()
	require.Error(t, err)
	assert.True(t, paperless.IsUnauthorized(err))
}

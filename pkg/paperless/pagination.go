package paperless

import (
	"context"
	"errors"
)

// ErrNoMoreItems is returned by Next once the iterator is exhausted.
var ErrNoMoreItems = errors.New("no more items")

// PageFetchFunc fetches one page. An empty cursor means the first page;
// otherwise cursor is the opaque next-page URL from the previous page.
type PageFetchFunc[T any] func(ctx context.Context, cursor string) (*Page[T], error)

type iteratorState int

const (
	iteratorFresh iteratorState = iota
	iteratorPaging
	iteratorExhausted
)

// PageIterator walks a paginated listing lazily, one page at a time.
// It is single-pass and non-restartable: pages are fetched strictly
// sequentially, items preserve server order, and once exhausted no
// further fetches occur. A fetch or decode error halts iteration and
// surfaces unchanged. Not safe for concurrent use; each iterator owns
// its cursor exclusively.
//
// Total is the count reported by the first page and equals the number
// of yielded items unless the server mutates the listing between page
// fetches, an accepted eventual-consistency caveat.
type PageIterator[T any] struct {
	ctx    context.Context
	fetch  PageFetchFunc[T]
	state  iteratorState
	cursor string
	buffer []T
	total  int
}

// NewPageIterator creates an iterator over fetch, starting from the
// first page.
func NewPageIterator[T any](ctx context.Context, fetch PageFetchFunc[T]) *PageIterator[T] {
	return &PageIterator[T]{
		ctx:   ctx,
		fetch: fetch,
		state: iteratorFresh,
		total: -1,
	}
}

// HasNext reports whether another item may be available. Before the
// first fetch it is optimistically true.
func (it *PageIterator[T]) HasNext() bool {
	return len(it.buffer) > 0 || it.state != iteratorExhausted
}

// Next returns the next item, fetching the next page when the current
// one is consumed. It returns ErrNoMoreItems once the listing ends.
func (it *PageIterator[T]) Next() (*T, error) {
	for len(it.buffer) == 0 {
		if it.state == iteratorExhausted {
			return nil, ErrNoMoreItems
		}

		err := it.fetchNext()
		if err != nil {
			return nil, err
		}
	}

	item := it.buffer[0]
	it.buffer = it.buffer[1:]

	return &item, nil
}

// All drains the remaining items into a slice.
func (it *PageIterator[T]) All() ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				break
			}

			return nil, err
		}

		items = append(items, *item)
	}

	return items, nil
}

// Total returns the authoritative item count reported by the first
// page, or -1 before any page was fetched.
func (it *PageIterator[T]) Total() int {
	return it.total
}

func (it *PageIterator[T]) fetchNext() error {
	var cursor string
	if it.state == iteratorPaging {
		cursor = it.cursor
	}

	page, err := it.fetch(it.ctx, cursor)
	if err != nil {
		// A failed page fetch halts iteration.
		it.state = iteratorExhausted

		return err
	}

	if it.state == iteratorFresh {
		it.total = page.Count
	}

	it.buffer = page.Results

	if page.HasNext() {
		it.state = iteratorPaging
		it.cursor = *page.Next
	} else {
		it.state = iteratorExhausted
	}

	return nil
}

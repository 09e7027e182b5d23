package paperless_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paperstack-io/paperless-client/pkg/paperless"
)

func TestQueryParams_ToValues(t *testing.T) {
	t.Parallel()
	t.Run("empty params yield empty values", func(t *testing.T) {
		t.Parallel()

		values := paperless.NewQueryParams().ToValues()
		assert.Empty(t, values.Encode())
	})

	t.Run("nil receiver is safe", func(t *testing.T) {
		t.Parallel()

		var params *paperless.QueryParams

		assert.Empty(t, params.ToValues().Encode())
	})

	t.Run("all options", func(t *testing.T) {
		t.Parallel()

		params := paperless.NewQueryParams().
			WithPage(2).
			WithPageSize(50).
			WithOrdering("-created").
			WithSearch("invoice 2024")

		values := params.ToValues()
		assert.Equal(t, "2", values.Get("page"))
		assert.Equal(t, "50", values.Get("page_size"))
		assert.Equal(t, "-created", values.Get("ordering"))
		assert.Equal(t, "invoice 2024", values.Get("search"))
	})

	t.Run("filters repeat in order", func(t *testing.T) {
		t.Parallel()

		params := paperless.NewQueryParams().
			WithFilter("tags__id__in", "1", "2").
			WithFilter("tags__id__in", "3").
			WithFilter("correspondent__id", "7")

		values := params.ToValues()
		assert.Equal(t, []string{"1", "2", "3"}, values["tags__id__in"])
		assert.Equal(t, []string{"7"}, values["correspondent__id"])
	})

	t.Run("encoding is deterministic", func(t *testing.T) {
		t.Parallel()

		build := func() string {
			return paperless.NewQueryParams().
				WithPage(1).
				WithFilter("b", "2").
				WithFilter("a", "1").
				ToValues().Encode()
		}

		assert.Equal(t, build(), build())
		assert.Equal(t, "a=1&b=2&page=1", build())
	})
}

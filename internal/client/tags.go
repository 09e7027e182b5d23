package client

import (
	"context"
	"fmt"

	"github.com/paperstack-io/paperless-client/internal/constants"
	"github.com/paperstack-io/paperless-client/internal/http"
	"github.com/paperstack-io/paperless-client/pkg/paperless"
)

// TagsClient implements paperless.TagsClient.
type TagsClient struct {
	httpClient *http.Client
}

// NewTagsClient creates a new tags client.
func NewTagsClient(httpClient *http.Client) *TagsClient {
	return &TagsClient{httpClient: httpClient}
}

// List implements paperless.TagsClient.List.
func (c *TagsClient) List(ctx context.Context, params *paperless.QueryParams) (*paperless.Page[paperless.Tag], error) {
	return fetchPage[paperless.Tag](ctx, c.httpClient, constants.APIPathTags, params, "tags")
}

// Iter implements paperless.TagsClient.Iter.
func (c *TagsClient) Iter(ctx context.Context, params *paperless.QueryParams) *paperless.PageIterator[paperless.Tag] {
	return newPageIterator[paperless.Tag](ctx, c.httpClient, constants.APIPathTags, params, "tags")
}

// Get implements paperless.TagsClient.Get.
func (c *TagsClient) Get(ctx context.Context, id int) (*paperless.Tag, error) {
	path := fmt.Sprintf("%s%d/", constants.APIPathTags, id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting tag: %w", err)
	}

	var tag paperless.Tag

	err = decode("tag", resp.Body, &tag)
	if err != nil {
		return nil, err
	}

	return &tag, nil
}

// Create implements paperless.TagsClient.Create.
func (c *TagsClient) Create(ctx context.Context, request *paperless.TagCreateRequest) (*paperless.Tag, error) {
	err := request.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating tag request: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, constants.APIPathTags, request)
	if err != nil {
		return nil, fmt.Errorf("creating tag: %w", err)
	}

	var tag paperless.Tag

	err = decode("tag", resp.Body, &tag)
	if err != nil {
		return nil, err
	}

	return &tag, nil
}

// Update implements paperless.TagsClient.Update.
func (c *TagsClient) Update(ctx context.Context, id int, request *paperless.TagUpdateRequest) (*paperless.Tag, error) {
	path := fmt.Sprintf("%s%d/", constants.APIPathTags, id)

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating tag: %w", err)
	}

	var tag paperless.Tag

	err = decode("tag", resp.Body, &tag)
	if err != nil {
		return nil, err
	}

	return &tag, nil
}

// Delete implements paperless.TagsClient.Delete.
func (c *TagsClient) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("%s%d/", constants.APIPathTags, id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting tag: %w", err)
	}

	return nil
}

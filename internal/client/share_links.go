package client

import (
	"context"
	"fmt"

	"github.com/paperstack-io/paperless-client/internal/constants"
	"github.com/paperstack-io/paperless-client/internal/http"
	"github.com/paperstack-io/paperless-client/pkg/paperless"
)

// ShareLinksClient implements paperless.ShareLinksClient.
type ShareLinksClient struct {
	httpClient *http.Client
}

// NewShareLinksClient creates a new share links client.
func NewShareLinksClient(httpClient *http.Client) *ShareLinksClient {
	return &ShareLinksClient{httpClient: httpClient}
}

// List implements paperless.ShareLinksClient.List.
func (c *ShareLinksClient) List(ctx context.Context, params *paperless.QueryParams) (*paperless.Page[paperless.ShareLink], error) {
	return fetchPage[paperless.ShareLink](ctx, c.httpClient, constants.APIPathShareLinks, params, "share links")
}

// Iter implements paperless.ShareLinksClient.Iter.
func (c *ShareLinksClient) Iter(ctx context.Context, params *paperless.QueryParams) *paperless.PageIterator[paperless.ShareLink] {
	return newPageIterator[paperless.ShareLink](ctx, c.httpClient, constants.APIPathShareLinks, params, "share links")
}

// Get implements paperless.ShareLinksClient.Get.
func (c *ShareLinksClient) Get(ctx context.Context, id int) (*paperless.ShareLink, error) {
	path := fmt.Sprintf("%s%d/", constants.APIPathShareLinks, id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting share link: %w", err)
	}

	var link paperless.ShareLink

	err = decode("share link", resp.Body, &link)
	if err != nil {
		return nil, err
	}

	return &link, nil
}

// Create implements paperless.ShareLinksClient.Create.
func (c *ShareLinksClient) Create(ctx context.Context, request *paperless.ShareLinkCreateRequest) (*paperless.ShareLink, error) {
	err := request.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating share link request: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, constants.APIPathShareLinks, request)
	if err != nil {
		return nil, fmt.Errorf("creating share link: %w", err)
	}

	var link paperless.ShareLink

	err = decode("share link", resp.Body, &link)
	if err != nil {
		return nil, err
	}

	return &link, nil
}

// Update implements paperless.ShareLinksClient.Update.
func (c *ShareLinksClient) Update(ctx context.Context, id int, request *paperless.ShareLinkUpdateRequest) (*paperless.ShareLink, error) {
	path := fmt.Sprintf("%s%d/", constants.APIPathShareLinks, id)

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating share link: %w", err)
	}

	var link paperless.ShareLink

	err = decode("share link", resp.Body, &link)
	if err != nil {
		return nil, err
	}

	return &link, nil
}

// Delete implements paperless.ShareLinksClient.Delete.
func (c *ShareLinksClient) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("%s%d/", constants.APIPathShareLinks, id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting share link: %w", err)
	}

	return nil
}

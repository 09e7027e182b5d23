package client

import (
	"context"
	"fmt"

	"github.com/paperstack-io/paperless-client/internal/constants"
	"github.com/paperstack-io/paperless-client/internal/http"
	"github.com/paperstack-io/paperless-client/pkg/paperless"
)

// CorrespondentsClient implements paperless.CorrespondentsClient.
type CorrespondentsClient struct {
	httpClient *http.Client
}

// NewCorrespondentsClient creates a new correspondents client.
func NewCorrespondentsClient(httpClient *http.Client) *CorrespondentsClient {
	return &CorrespondentsClient{httpClient: httpClient}
}

// List implements paperless.CorrespondentsClient.List.
func (c *CorrespondentsClient) List(ctx context.Context, params *paperless.QueryParams) (*paperless.Page[paperless.Correspondent], error) {
	return fetchPage[paperless.Correspondent](ctx, c.httpClient, constants.APIPathCorrespondents, params, "correspondents")
}

// Iter implements paperless.CorrespondentsClient.Iter.
func (c *CorrespondentsClient) Iter(ctx context.Context, params *paperless.QueryParams) *paperless.PageIterator[paperless.Correspondent] {
	return newPageIterator[paperless.Correspondent](ctx, c.httpClient, constants.APIPathCorrespondents, params, "correspondents")
}

// Get implements paperless.CorrespondentsClient.Get.
func (c *CorrespondentsClient) Get(ctx context.Context, id int) (*paperless.Correspondent, error) {
	path := fmt.Sprintf("%s%d/", constants.APIPathCorrespondents, id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting correspondent: %w", err)
	}

	var correspondent paperless.Correspondent

	err = decode("correspondent", resp.Body, &correspondent)
	if err != nil {
		return nil, err
	}

	return &correspondent, nil
}

// Create implements paperless.CorrespondentsClient.Create.
func (c *CorrespondentsClient) Create(ctx context.Context, request *paperless.CorrespondentCreateRequest) (*paperless.Correspondent, error) {
	err := request.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating correspondent request: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, constants.APIPathCorrespondents, request)
	if err != nil {
		return nil, fmt.Errorf("creating correspondent: %w", err)
	}

	var correspondent paperless.Correspondent

	err = decode("correspondent", resp.Body, &correspondent)
	if err != nil {
		return nil, err
	}

	return &correspondent, nil
}

// Update implements paperless.CorrespondentsClient.Update.
func (c *CorrespondentsClient) Update(ctx context.Context, id int, request *paperless.CorrespondentUpdateRequest) (*paperless.Correspondent, error) {
	path := fmt.Sprintf("%s%d/", constants.APIPathCorrespondents, id)

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating correspondent: %w", err)
	}

	var correspondent paperless.Correspondent

	err = decode("correspondent", resp.Body, &correspondent)
	if err != nil {
		return nil, err
	}

	return &correspondent, nil
}

// Delete implements paperless.CorrespondentsClient.Delete.
func (c *CorrespondentsClient) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("%s%d/", constants.APIPathCorrespondents, id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting correspondent: %w", err)
	}

	return nil
}

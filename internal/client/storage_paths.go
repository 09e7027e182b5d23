package client

import (
	"context"
	"fmt"

	"github.com/paperstack-io/paperless-client/internal/constants"
	"github.com/paperstack-io/paperless-client/internal/http"
	"github.com/paperstack-io/paperless-client/pkg/paperless"
)

// StoragePathsClient implements paperless.StoragePathsClient.
type StoragePathsClient struct {
	httpClient *http.Client
}

// NewStoragePathsClient creates a new storage paths client.
func NewStoragePathsClient(httpClient *http.Client) *StoragePathsClient {
	return &StoragePathsClient{httpClient: httpClient}
}

// List implements paperless.StoragePathsClient.List.
func (c *StoragePathsClient) List(ctx context.Context, params *paperless.QueryParams) (*paperless.Page[paperless.StoragePath], error) {
	return fetchPage[paperless.StoragePath](ctx, c.httpClient, constants.APIPathStoragePaths, params, "storage paths")
}

// Iter implements paperless.StoragePathsClient.Iter.
func (c *StoragePathsClient) Iter(ctx context.Context, params *paperless.QueryParams) *paperless.PageIterator[paperless.StoragePath] {
	return newPageIterator[paperless.StoragePath](ctx, c.httpClient, constants.APIPathStoragePaths, params, "storage paths")
}

// Get implements paperless.StoragePathsClient.Get.
func (c *StoragePathsClient) Get(ctx context.Context, id int) (*paperless.StoragePath, error) {
	path := fmt.Sprintf("%s%d/", constants.APIPathStoragePaths, id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting storage path: %w", err)
	}

	var storagePath paperless.StoragePath

	err = decode("storage path", resp.Body, &storagePath)
	if err != nil {
		return nil, err
	}

	return &storagePath, nil
}

// Create implements paperless.StoragePathsClient.Create.
func (c *StoragePathsClient) Create(ctx context.Context, request *paperless.StoragePathCreateRequest) (*paperless.StoragePath, error) {
	err := request.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating storage path request: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, constants.APIPathStoragePaths, request)
	if err != nil {
		return nil, fmt.Errorf("creating storage path: %w", err)
	}

	var storagePath paperless.StoragePath

	err = decode("storage path", resp.Body, &storagePath)
	if err != nil {
		return nil, err
	}

	return &storagePath, nil
}

// Update implements paperless.StoragePathsClient.Update.
func (c *StoragePathsClient) Update(ctx context.Context, id int, request *paperless.StoragePathUpdateRequest) (*paperless.StoragePath, error) {
	path := fmt.Sprintf("%s%d/", constants.APIPathStoragePaths, id)

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating storage path: %w", err)
	}

	var storagePath paperless.StoragePath

	err = decode("storage path", resp.Body, &storagePath)
	if err != nil {
		return nil, err
	}

	return &storagePath, nil
}

// Delete implements paperless.StoragePathsClient.Delete.
func (c *StoragePathsClient) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("%s%d/", constants.APIPathStoragePaths, id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting storage path: %w", err)
	}

	return nil
}

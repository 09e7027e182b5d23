package client

import (
	"context"
	"fmt"

	"github.com/paperstack-io/paperless-client/internal/constants"
	"github.com/paperstack-io/paperless-client/internal/http"
	"github.com/paperstack-io/paperless-client/pkg/paperless"
)

// DocumentTypesClient implements paperless.DocumentTypesClient.
type DocumentTypesClient struct {
	httpClient *http.Client
}

// NewDocumentTypesClient creates a new document types client.
func NewDocumentTypesClient(httpClient *http.Client) *DocumentTypesClient {
	return &DocumentTypesClient{httpClient: httpClient}
}

// List implements paperless.DocumentTypesClient.List.
func (c *DocumentTypesClient) List(ctx context.Context, params *paperless.QueryParams) (*paperless.Page[paperless.DocumentType], error) {
	return fetchPage[paperless.DocumentType](ctx, c.httpClient, constants.APIPathDocumentTypes, params, "document types")
}

// Iter implements paperless.DocumentTypesClient.Iter.
func (c *DocumentTypesClient) Iter(ctx context.Context, params *paperless.QueryParams) *paperless.PageIterator[paperless.DocumentType] {
	return newPageIterator[paperless.DocumentType](ctx, c.httpClient, constants.APIPathDocumentTypes, params, "document types")
}

// Get implements paperless.DocumentTypesClient.Get.
func (c *DocumentTypesClient) Get(ctx context.Context, id int) (*paperless.DocumentType, error) {
	path := fmt.Sprintf("%s%d/", constants.APIPathDocumentTypes, id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting document type: %w", err)
	}

	var documentType paperless.DocumentType

	err = decode("document type", resp.Body, &documentType)
	if err != nil {
		return nil, err
	}

	return &documentType, nil
}

// Create implements paperless.DocumentTypesClient.Create.
func (c *DocumentTypesClient) Create(ctx context.Context, request *paperless.DocumentTypeCreateRequest) (*paperless.DocumentType, error) {
	err := request.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating document type request: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, constants.APIPathDocumentTypes, request)
	if err != nil {
		return nil, fmt.Errorf("creating document type: %w", err)
	}

	var documentType paperless.DocumentType

	err = decode("document type", resp.Body, &documentType)
	if err != nil {
		return nil, err
	}

	return &documentType, nil
}

// Update implements paperless.DocumentTypesClient.Update.
func (c *DocumentTypesClient) Update(ctx context.Context, id int, request *paperless.DocumentTypeUpdateRequest) (*paperless.DocumentType, error) {
	path := fmt.Sprintf("%s%d/", constants.APIPathDocumentTypes, id)

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating document type: %w", err)
	}

	var documentType paperless.DocumentType

	err = decode("document type", resp.Body, &documentType)
	if err != nil {
		return nil, err
	}

	return &documentType, nil
}

// Delete implements paperless.DocumentTypesClient.Delete.
func (c *DocumentTypesClient) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("%s%d/", constants.APIPathDocumentTypes, id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting document type: %w", err)
	}

	return nil
}

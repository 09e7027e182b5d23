package client

import (
	"context"
	"fmt"

	"github.com/paperstack-io/paperless-client/internal/constants"
	"github.com/paperstack-io/paperless-client/internal/http"
	"github.com/paperstack-io/paperless-client/pkg/paperless"
)

// CustomFieldsClient implements paperless.CustomFieldsClient.
type CustomFieldsClient struct {
	httpClient *http.Client
}

// NewCustomFieldsClient creates a new custom fields client.
func NewCustomFieldsClient(httpClient *http.Client) *CustomFieldsClient {
	return &CustomFieldsClient{httpClient: httpClient}
}

// List implements paperless.CustomFieldsClient.List.
func (c *CustomFieldsClient) List(ctx context.Context, params *paperless.QueryParams) (*paperless.Page[paperless.CustomField], error) {
	return fetchPage[paperless.CustomField](ctx, c.httpClient, constants.APIPathCustomFields, params, "custom fields")
}

// Iter implements paperless.CustomFieldsClient.Iter.
func (c *CustomFieldsClient) Iter(ctx context.Context, params *paperless.QueryParams) *paperless.PageIterator[paperless.CustomField] {
	return newPageIterator[paperless.CustomField](ctx, c.httpClient, constants.APIPathCustomFields, params, "custom fields")
}

// Get implements paperless.CustomFieldsClient.Get.
func (c *CustomFieldsClient) Get(ctx context.Context, id int) (*paperless.CustomField, error) {
	path := fmt.Sprintf("%s%d/", constants.APIPathCustomFields, id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting custom field: %w", err)
	}

	var field paperless.CustomField

	err = decode("custom field", resp.Body, &field)
	if err != nil {
		return nil, err
	}

	return &field, nil
}

// Create implements paperless.CustomFieldsClient.Create.
func (c *CustomFieldsClient) Create(ctx context.Context, request *paperless.CustomFieldCreateRequest) (*paperless.CustomField, error) {
	err := request.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating custom field request: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, constants.APIPathCustomFields, request)
	if err != nil {
		return nil, fmt.Errorf("creating custom field: %w", err)
	}

	var field paperless.CustomField

	err = decode("custom field", resp.Body, &field)
	if err != nil {
		return nil, err
	}

	return &field, nil
}

// Delete implements paperless.CustomFieldsClient.Delete.
func (c *CustomFieldsClient) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("%s%d/", constants.APIPathCustomFields, id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting custom field: %w", err)
	}

	return nil
}

package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/paperstack-io/paperless-client/internal/constants"
	"github.com/paperstack-io/paperless-client/internal/http"
	"github.com/paperstack-io/paperless-client/pkg/paperless"
)

// DocumentsClient implements paperless.DocumentsClient.
type DocumentsClient struct {
	httpClient *http.Client
}

// NewDocumentsClient creates a new documents client.
func NewDocumentsClient(httpClient *http.Client) *DocumentsClient {
	return &DocumentsClient{httpClient: httpClient}
}

// List implements paperless.DocumentsClient.List.
func (c *DocumentsClient) List(ctx context.Context, params *paperless.QueryParams) (*paperless.Page[paperless.Document], error) {
	return fetchPage[paperless.Document](ctx, c.httpClient, constants.APIPathDocuments, params, "documents")
}

// Iter implements paperless.DocumentsClient.Iter.
func (c *DocumentsClient) Iter(ctx context.Context, params *paperless.QueryParams) *paperless.PageIterator[paperless.Document] {
	return newPageIterator[paperless.Document](ctx, c.httpClient, constants.APIPathDocuments, params, "documents")
}

// Get implements paperless.DocumentsClient.Get.
func (c *DocumentsClient) Get(ctx context.Context, id int) (*paperless.Document, error) {
	path := fmt.Sprintf("%s%d/", constants.APIPathDocuments, id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting document: %w", err)
	}

	var document paperless.Document

	err = decode("document", resp.Body, &document)
	if err != nil {
		return nil, err
	}

	return &document, nil
}

// Update implements paperless.DocumentsClient.Update.
func (c *DocumentsClient) Update(ctx context.Context, id int, request *paperless.DocumentUpdateRequest) (*paperless.Document, error) {
	path := fmt.Sprintf("%s%d/", constants.APIPathDocuments, id)

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating document: %w", err)
	}

	var document paperless.Document

	err = decode("document", resp.Body, &document)
	if err != nil {
		return nil, err
	}

	return &document, nil
}

// Delete implements paperless.DocumentsClient.Delete.
func (c *DocumentsClient) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("%s%d/", constants.APIPathDocuments, id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}

	return nil
}

// Upload implements paperless.DocumentsClient.Upload. The file content
// is streamed; the returned UUID identifies the server-side consume
// task, which Tasks().Wait can poll to completion.
func (c *DocumentsClient) Upload(ctx context.Context, upload *paperless.DocumentUpload) (uuid.UUID, error) {
	err := upload.Validate()
	if err != nil {
		return uuid.Nil, fmt.Errorf("validating upload: %w", err)
	}

	body := &http.MultipartBody{
		Fields: uploadFields(upload),
		Files: []http.MultipartFile{
			{
				Name:        "document",
				Filename:    upload.Filename,
				ContentType: upload.ContentType,
				Content:     upload.Content,
			},
		},
	}

	resp, err := c.httpClient.PostMultipart(ctx, constants.APIPathPostDocument, body)
	if err != nil {
		return uuid.Nil, fmt.Errorf("uploading document: %w", err)
	}

	// The ingestion endpoint returns the task UUID as a JSON string.
	var raw string

	err = decode("task id", resp.Body, &raw)
	if err != nil {
		return uuid.Nil, err
	}

	taskID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, paperless.NewDecodeError("task id", err)
	}

	return taskID, nil
}

// uploadFields assembles the metadata fields preceding the file part.
func uploadFields(upload *paperless.DocumentUpload) []http.MultipartField {
	var fields []http.MultipartField

	if upload.Title != "" {
		fields = append(fields, http.MultipartField{Name: "title", Value: upload.Title})
	}

	if upload.Created != nil {
		fields = append(fields, http.MultipartField{Name: "created", Value: upload.Created.Format("2006-01-02")})
	}

	if upload.Correspondent != nil {
		fields = append(fields, http.MultipartField{Name: "correspondent", Value: strconv.Itoa(*upload.Correspondent)})
	}

	if upload.DocumentType != nil {
		fields = append(fields, http.MultipartField{Name: "document_type", Value: strconv.Itoa(*upload.DocumentType)})
	}

	if upload.StoragePath != nil {
		fields = append(fields, http.MultipartField{Name: "storage_path", Value: strconv.Itoa(*upload.StoragePath)})
	}

	if upload.ArchiveSerialNumber != nil {
		fields = append(fields, http.MultipartField{Name: "archive_serial_number", Value: strconv.Itoa(*upload.ArchiveSerialNumber)})
	}

	for _, tag := range upload.Tags {
		fields = append(fields, http.MultipartField{Name: "tags", Value: strconv.Itoa(tag)})
	}

	return fields
}

// Download implements paperless.DocumentsClient.Download, returning the
// stored file's bytes.
func (c *DocumentsClient) Download(ctx context.Context, id int) ([]byte, error) {
	path := fmt.Sprintf("%s%d/download/", constants.APIPathDocuments, id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("downloading document: %w", err)
	}

	return resp.Body, nil
}

// Metadata implements paperless.DocumentsClient.Metadata.
func (c *DocumentsClient) Metadata(ctx context.Context, id int) (*paperless.DocumentMetadata, error) {
	path := fmt.Sprintf("%s%d/metadata/", constants.APIPathDocuments, id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting document metadata: %w", err)
	}

	var metadata paperless.DocumentMetadata

	err = decode("document metadata", resp.Body, &metadata)
	if err != nil {
		return nil, err
	}

	return &metadata, nil
}

// Package client implements paperless.Client on top of the internal
// HTTP pipeline. Every resource client goes through the same fixed
// stages: credentials, optional retry, transport, error mapping,
// decoding. No resource bypasses any stage.
package client

import (
	nethttp "net/http"

	"github.com/paperstack-io/paperless-client/internal/auth"
	"github.com/paperstack-io/paperless-client/internal/constants"
	"github.com/paperstack-io/paperless-client/internal/http"
	"github.com/paperstack-io/paperless-client/pkg/paperless"
)

// Client implements the paperless.Client interface.
type Client struct {
	httpClient  *http.Client
	credentials *auth.Credentials
	logger      paperless.Logger

	documents      *DocumentsClient
	tags           *TagsClient
	correspondents *CorrespondentsClient
	documentTypes  *DocumentTypesClient
	storagePaths   *StoragePathsClient
	customFields   *CustomFieldsClient
	shareLinks     *ShareLinksClient
	tasks          *TasksClient
}

// New creates a client from a validated config.
func New(config *paperless.Config) (*Client, error) {
	if config == nil {
		return nil, paperless.ErrConfigRequired
	}

	err := config.Validate()
	if err != nil {
		return nil, err
	}

	credentials := buildCredentials(config)
	httpClient := http.NewClient(config.BaseURL, credentials, buildHTTPOptions(config)...)

	client := &Client{
		httpClient:  httpClient,
		credentials: credentials,
		logger:      config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// buildCredentials creates the credential store from config input. The
// store owns the only copy of the secret from here on.
func buildCredentials(config *paperless.Config) *auth.Credentials {
	if config.Username != "" {
		return auth.NewBasic(config.Username, config.Password)
	}

	return auth.NewToken(config.Token)
}

// buildHTTPOptions translates config into pipeline options.
func buildHTTPOptions(config *paperless.Config) []http.Option {
	var opts []http.Option

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	switch {
	case config.HTTPClient != nil:
		opts = append(opts, http.WithExecutor(config.HTTPClient))
	case config.HTTPTimeout > 0:
		opts = append(opts, http.WithExecutor(&nethttp.Client{Timeout: config.HTTPTimeout}))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		opts = append(opts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return opts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.documents = NewDocumentsClient(c.httpClient)
	c.tags = NewTagsClient(c.httpClient)
	c.correspondents = NewCorrespondentsClient(c.httpClient)
	c.documentTypes = NewDocumentTypesClient(c.httpClient)
	c.storagePaths = NewStoragePathsClient(c.httpClient)
	c.customFields = NewCustomFieldsClient(c.httpClient)
	c.shareLinks = NewShareLinksClient(c.httpClient)
	c.tasks = NewTasksClient(c.httpClient)
}

// Documents implements paperless.Client.Documents.
func (c *Client) Documents() paperless.DocumentsClient {
	return c.documents
}

// Tags implements paperless.Client.Tags.
func (c *Client) Tags() paperless.TagsClient {
	return c.tags
}

// Correspondents implements paperless.Client.Correspondents.
func (c *Client) Correspondents() paperless.CorrespondentsClient {
	return c.correspondents
}

// DocumentTypes implements paperless.Client.DocumentTypes.
func (c *Client) DocumentTypes() paperless.DocumentTypesClient {
	return c.documentTypes
}

// StoragePaths implements paperless.Client.StoragePaths.
func (c *Client) StoragePaths() paperless.StoragePathsClient {
	return c.storagePaths
}

// CustomFields implements paperless.Client.CustomFields.
func (c *Client) CustomFields() paperless.CustomFieldsClient {
	return c.customFields
}

// ShareLinks implements paperless.Client.ShareLinks.
func (c *Client) ShareLinks() paperless.ShareLinksClient {
	return c.shareLinks
}

// Tasks implements paperless.Client.Tasks.
func (c *Client) Tasks() paperless.TasksClient {
	return c.tasks
}

// Close scrubs the stored credentials. The client must not be used
// afterwards; in-flight calls should have completed.
func (c *Client) Close() error {
	c.credentials.Zero()

	return nil
}

// loggerAdapter adapts paperless.Logger to http.Logger.
type loggerAdapter struct {
	logger paperless.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}

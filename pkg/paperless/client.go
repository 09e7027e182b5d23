package paperless

import (
	"context"
	"errors"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired        = errors.New("config is required")
	ErrBaseURLRequired       = errors.New("base URL is required")
	ErrAmbiguousCredentials  = errors.New("provide either a token or username/password, not both")
	ErrIncompleteCredentials = errors.New("username and password must be provided together")
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a paperless.Client.
//
// Authentication is either token based (Token) or HTTP basic
// (Username/Password), supplied once at construction. Setting both is
// rejected. With neither, requests are sent unauthenticated, which most
// server installations will refuse.
//
// Retry is disabled by default: the client makes a single attempt per
// call. Setting RetryMax > 0 enables retries with jittered exponential
// backoff for transient failures only (connection errors, 429, 5xx).
type Config struct {
	// BaseURL is the root of the server, e.g. "https://paperless.example.com".
	// A trailing slash is trimmed and "https://" is assumed when no
	// scheme is present.
	BaseURL string

	// Token is the API token used for "Authorization: Token ..." auth.
	Token string
	// Username and Password select HTTP basic auth instead of a token.
	Username string
	Password string

	// HTTPTimeout overrides the default per-request timeout. Prefer
	// context deadlines on individual calls.
	HTTPTimeout time.Duration

	// RetryMax is the maximum number of retries for transient failures.
	// Zero disables retry entirely.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug enables request/response logging through Logger.
	Debug bool
	// Logger receives structured log output. When nil, plclient.New
	// installs an hclog-backed default.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// HTTPClient is the injected transport executor. When nil a default
	// http.Client with HTTPTimeout is used. Any executor satisfying the
	// standard Do contract can be substituted, including test doubles.
	HTTPClient *http.Client
}

// Validate checks the config for structural problems before any network
// activity happens.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required, is.URL),
		validation.Field(&c.RetryMax, validation.Min(0)),
	)
	if err != nil {
		return err
	}

	if c.Token != "" && (c.Username != "" || c.Password != "") {
		return ErrAmbiguousCredentials
	}

	if (c.Username == "") != (c.Password == "") {
		return ErrIncompleteCredentials
	}

	return nil
}

// DocumentsClient operates on document records.
type DocumentsClient interface {
	List(ctx context.Context, params *QueryParams) (*Page[Document], error)
	Iter(ctx context.Context, params *QueryParams) *PageIterator[Document]
	Get(ctx context.Context, id int) (*Document, error)
	Update(ctx context.Context, id int, request *DocumentUpdateRequest) (*Document, error)
	Delete(ctx context.Context, id int) error
	Upload(ctx context.Context, upload *DocumentUpload) (uuid.UUID, error)
	Download(ctx context.Context, id int) ([]byte, error)
	Metadata(ctx context.Context, id int) (*DocumentMetadata, error)
}

// TagsClient operates on tags.
type TagsClient interface {
	List(ctx context.Context, params *QueryParams) (*Page[Tag], error)
	Iter(ctx context.Context, params *QueryParams) *PageIterator[Tag]
	Get(ctx context.Context, id int) (*Tag, error)
	Create(ctx context.Context, request *TagCreateRequest) (*Tag, error)
	Update(ctx context.Context, id int, request *TagUpdateRequest) (*Tag, error)
	Delete(ctx context.Context, id int) error
}

// CorrespondentsClient operates on correspondents.
type CorrespondentsClient interface {
	List(ctx context.Context, params *QueryParams) (*Page[Correspondent], error)
	Iter(ctx context.Context, params *QueryParams) *PageIterator[Correspondent]
	Get(ctx context.Context, id int) (*Correspondent, error)
	Create(ctx context.Context, request *CorrespondentCreateRequest) (*Correspondent, error)
	Update(ctx context.Context, id int, request *CorrespondentUpdateRequest) (*Correspondent, error)
	Delete(ctx context.Context, id int) error
}

// DocumentTypesClient operates on document types.
type DocumentTypesClient interface {
	List(ctx context.Context, params *QueryParams) (*Page[DocumentType], error)
	Iter(ctx context.Context, params *QueryParams) *PageIterator[DocumentType]
	Get(ctx context.Context, id int) (*DocumentType, error)
	Create(ctx context.Context, request *DocumentTypeCreateRequest) (*DocumentType, error)
	Update(ctx context.Context, id int, request *DocumentTypeUpdateRequest) (*DocumentType, error)
	Delete(ctx context.Context, id int) error
}

// StoragePathsClient operates on storage paths.
type StoragePathsClient interface {
	List(ctx context.Context, params *QueryParams) (*Page[StoragePath], error)
	Iter(ctx context.Context, params *QueryParams) *PageIterator[StoragePath]
	Get(ctx context.Context, id int) (*StoragePath, error)
	Create(ctx context.Context, request *StoragePathCreateRequest) (*StoragePath, error)
	Update(ctx context.Context, id int, request *StoragePathUpdateRequest) (*StoragePath, error)
	Delete(ctx context.Context, id int) error
}

// CustomFieldsClient operates on custom fields.
type CustomFieldsClient interface {
	List(ctx context.Context, params *QueryParams) (*Page[CustomField], error)
	Iter(ctx context.Context, params *QueryParams) *PageIterator[CustomField]
	Get(ctx context.Context, id int) (*CustomField, error)
	Create(ctx context.Context, request *CustomFieldCreateRequest) (*CustomField, error)
	Delete(ctx context.Context, id int) error
}

// ShareLinksClient operates on share links.
type ShareLinksClient interface {
	List(ctx context.Context, params *QueryParams) (*Page[ShareLink], error)
	Iter(ctx context.Context, params *QueryParams) *PageIterator[ShareLink]
	Get(ctx context.Context, id int) (*ShareLink, error)
	Create(ctx context.Context, request *ShareLinkCreateRequest) (*ShareLink, error)
	Update(ctx context.Context, id int, request *ShareLinkUpdateRequest) (*ShareLink, error)
	Delete(ctx context.Context, id int) error
}

// TasksClient operates on server-side tasks.
type TasksClient interface {
	List(ctx context.Context, params *QueryParams) (*Page[Task], error)
	Get(ctx context.Context, taskID uuid.UUID) (*Task, error)
	Wait(ctx context.Context, taskID uuid.UUID) (*Task, error)
}

// Client is the single entry point resource consumers use. Closing the
// client scrubs the stored credentials; the client must not be used
// afterwards.
type Client interface {
	Documents() DocumentsClient
	Tags() TagsClient
	Correspondents() CorrespondentsClient
	DocumentTypes() DocumentTypesClient
	StoragePaths() StoragePathsClient
	CustomFields() CustomFieldsClient
	ShareLinks() ShareLinksClient
	Tasks() TasksClient

	Close() error
}

package paperless

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// Static errors for strict decoding.
var (
	ErrValueOutOfRange = errors.New("value outside declared domain")
)

// Page is one fetch's worth of a paginated listing. Count is the
// authoritative total across the whole set, not just this page; Next
// and Previous are opaque cursor URLs.
type Page[T any] struct {
	Count    int     `json:"count"              yaml:"count"`
	Next     *string `json:"next,omitempty"     yaml:"next,omitempty"`
	Previous *string `json:"previous,omitempty" yaml:"previous,omitempty"`
	Results  []T     `json:"results"            yaml:"results"`
}

// HasNext reports whether the server advertised another page.
func (p *Page[T]) HasNext() bool {
	return p.Next != nil && *p.Next != ""
}

// MatchingAlgorithm selects how a matching rule is evaluated.
type MatchingAlgorithm int

const (
	MatchNone MatchingAlgorithm = iota
	MatchAny
	MatchAll
	MatchLiteral
	MatchRegex
	MatchFuzzy
	MatchAuto
)

// UnmarshalJSON rejects values outside the declared domain instead of
// silently defaulting.
func (m *MatchingAlgorithm) UnmarshalJSON(data []byte) error {
	var value int

	err := json.Unmarshal(data, &value)
	if err != nil {
		return fmt.Errorf("parsing matching algorithm: %w", err)
	}

	if value < int(MatchNone) || value > int(MatchAuto) {
		return fmt.Errorf("%w: matching algorithm %d", ErrValueOutOfRange, value)
	}

	*m = MatchingAlgorithm(value)

	return nil
}

// TaskStatus is the lifecycle state of a server-side task.
type TaskStatus string

const (
	TaskStatusPending TaskStatus = "PENDING"
	TaskStatusStarted TaskStatus = "STARTED"
	TaskStatusSuccess TaskStatus = "SUCCESS"
	TaskStatusFailure TaskStatus = "FAILURE"
)

// Terminal reports whether the task has finished, successfully or not.
func (s TaskStatus) Terminal() bool {
	return s == TaskStatusSuccess || s == TaskStatusFailure
}

// UnmarshalJSON rejects unknown task states.
func (s *TaskStatus) UnmarshalJSON(data []byte) error {
	var value string

	err := json.Unmarshal(data, &value)
	if err != nil {
		return fmt.Errorf("parsing task status: %w", err)
	}

	switch TaskStatus(value) {
	case TaskStatusPending, TaskStatusStarted, TaskStatusSuccess, TaskStatusFailure:
		*s = TaskStatus(value)

		return nil
	default:
		return fmt.Errorf("%w: task status %q", ErrValueOutOfRange, value)
	}
}

// ShareLinkFileVersion selects which file a share link serves.
type ShareLinkFileVersion string

const (
	ShareLinkFileOriginal ShareLinkFileVersion = "original"
	ShareLinkFileArchive  ShareLinkFileVersion = "archive"
)

// UnmarshalJSON rejects unknown file versions.
func (v *ShareLinkFileVersion) UnmarshalJSON(data []byte) error {
	var value string

	err := json.Unmarshal(data, &value)
	if err != nil {
		return fmt.Errorf("parsing share link file version: %w", err)
	}

	switch ShareLinkFileVersion(value) {
	case ShareLinkFileOriginal, ShareLinkFileArchive:
		*v = ShareLinkFileVersion(value)

		return nil
	default:
		return fmt.Errorf("%w: share link file version %q", ErrValueOutOfRange, value)
	}
}

// Document is one archived document record.
type Document struct {
	ID                  int        `json:"id"                             yaml:"id"`
	Correspondent       *int       `json:"correspondent"                  yaml:"correspondent"`
	DocumentType        *int       `json:"document_type"                  yaml:"document_type"`
	StoragePath         *int       `json:"storage_path"                   yaml:"storage_path"`
	Title               string     `json:"title"                          yaml:"title"`
	Content             string     `json:"content,omitempty"              yaml:"content,omitempty"`
	Tags                []int      `json:"tags"                           yaml:"tags"`
	Created             time.Time  `json:"created"                        yaml:"created"`
	Modified            time.Time  `json:"modified"                       yaml:"modified"`
	Added               time.Time  `json:"added"                          yaml:"added"`
	ArchiveSerialNumber *int       `json:"archive_serial_number"          yaml:"archive_serial_number"`
	OriginalFileName    string     `json:"original_file_name"             yaml:"original_file_name"`
	ArchivedFileName    *string    `json:"archived_file_name"             yaml:"archived_file_name"`
	Owner               *int       `json:"owner"                          yaml:"owner"`
	UserCanChange       bool       `json:"user_can_change,omitempty"      yaml:"user_can_change,omitempty"`
	PageCount           *int       `json:"page_count,omitempty"           yaml:"page_count,omitempty"`
}

// DocumentUpdateRequest carries the mutable document fields; nil fields
// are left unchanged (PATCH semantics).
type DocumentUpdateRequest struct {
	Title               *string `json:"title,omitempty"`
	Correspondent       *int    `json:"correspondent,omitempty"`
	DocumentType        *int    `json:"document_type,omitempty"`
	StoragePath         *int    `json:"storage_path,omitempty"`
	Tags                *[]int  `json:"tags,omitempty"`
	ArchiveSerialNumber *int    `json:"archive_serial_number,omitempty"`
	Owner               *int    `json:"owner,omitempty"`
}

// DocumentUpload describes one streaming multipart ingestion request.
// Content is consumed exactly once while the upload is in flight; it is
// never buffered wholesale.
type DocumentUpload struct {
	Filename    string
	ContentType string
	Content     io.Reader

	Title               string
	Created             *time.Time
	Correspondent       *int
	DocumentType        *int
	StoragePath         *int
	Tags                []int
	ArchiveSerialNumber *int
}

// DocumentMetadata describes the stored files behind a document.
type DocumentMetadata struct {
	OriginalChecksum  string  `json:"original_checksum"            yaml:"original_checksum"`
	OriginalSize      int64   `json:"original_size"                yaml:"original_size"`
	OriginalMimeType  string  `json:"original_mime_type"           yaml:"original_mime_type"`
	MediaFilename     string  `json:"media_filename"               yaml:"media_filename"`
	HasArchiveVersion bool    `json:"has_archive_version"          yaml:"has_archive_version"`
	ArchiveChecksum   *string `json:"archive_checksum,omitempty"   yaml:"archive_checksum,omitempty"`
	ArchiveSize       *int64  `json:"archive_size,omitempty"       yaml:"archive_size,omitempty"`
	ArchiveMediaName  *string `json:"archive_media_filename,omitempty" yaml:"archive_media_filename,omitempty"`
	Language          string  `json:"lang,omitempty"               yaml:"lang,omitempty"`
}

// Tag labels documents and optionally carries a matching rule.
type Tag struct {
	ID                int               `json:"id"                 yaml:"id"`
	Slug              string            `json:"slug"               yaml:"slug"`
	Name              string            `json:"name"               yaml:"name"`
	Color             string            `json:"color"              yaml:"color"`
	TextColor         string            `json:"text_color"         yaml:"text_color"`
	Match             string            `json:"match"              yaml:"match"`
	MatchingAlgorithm MatchingAlgorithm `json:"matching_algorithm" yaml:"matching_algorithm"`
	IsInsensitive     bool              `json:"is_insensitive"     yaml:"is_insensitive"`
	IsInboxTag        bool              `json:"is_inbox_tag"       yaml:"is_inbox_tag"`
	DocumentCount     int               `json:"document_count"     yaml:"document_count"`
	Owner             *int              `json:"owner"              yaml:"owner"`
	UserCanChange     bool              `json:"user_can_change"    yaml:"user_can_change"`
}

// TagCreateRequest creates a tag.
type TagCreateRequest struct {
	Name              string            `json:"name"`
	Color             string            `json:"color,omitempty"`
	Match             string            `json:"match,omitempty"`
	MatchingAlgorithm MatchingAlgorithm `json:"matching_algorithm"`
	IsInsensitive     bool              `json:"is_insensitive"`
	IsInboxTag        bool              `json:"is_inbox_tag"`
	Owner             *int              `json:"owner,omitempty"`
}

// TagUpdateRequest carries the mutable tag fields.
type TagUpdateRequest struct {
	Name              *string            `json:"name,omitempty"`
	Color             *string            `json:"color,omitempty"`
	Match             *string            `json:"match,omitempty"`
	MatchingAlgorithm *MatchingAlgorithm `json:"matching_algorithm,omitempty"`
	IsInsensitive     *bool              `json:"is_insensitive,omitempty"`
	IsInboxTag        *bool              `json:"is_inbox_tag,omitempty"`
	Owner             *int               `json:"owner,omitempty"`
}

// Correspondent is a sender or recipient documents are filed under.
type Correspondent struct {
	ID                 int               `json:"id"                  yaml:"id"`
	Slug               string            `json:"slug"                yaml:"slug"`
	Name               string            `json:"name"                yaml:"name"`
	Match              string            `json:"match"               yaml:"match"`
	MatchingAlgorithm  MatchingAlgorithm `json:"matching_algorithm"  yaml:"matching_algorithm"`
	IsInsensitive      bool              `json:"is_insensitive"      yaml:"is_insensitive"`
	DocumentCount      int               `json:"document_count"      yaml:"document_count"`
	LastCorrespondence *string           `json:"last_correspondence" yaml:"last_correspondence"`
	Owner              *int              `json:"owner"               yaml:"owner"`
	UserCanChange      bool              `json:"user_can_change"     yaml:"user_can_change"`
}

// CorrespondentCreateRequest creates a correspondent.
type CorrespondentCreateRequest struct {
	Name              string            `json:"name"`
	Match             string            `json:"match,omitempty"`
	MatchingAlgorithm MatchingAlgorithm `json:"matching_algorithm"`
	IsInsensitive     bool              `json:"is_insensitive"`
	Owner             *int              `json:"owner,omitempty"`
}

// CorrespondentUpdateRequest carries the mutable correspondent fields.
type CorrespondentUpdateRequest struct {
	Name              *string            `json:"name,omitempty"`
	Match             *string            `json:"match,omitempty"`
	MatchingAlgorithm *MatchingAlgorithm `json:"matching_algorithm,omitempty"`
	IsInsensitive     *bool              `json:"is_insensitive,omitempty"`
	Owner             *int               `json:"owner,omitempty"`
}

// DocumentType classifies documents (invoice, contract, ...).
type DocumentType struct {
	ID                int               `json:"id"                 yaml:"id"`
	Slug              string            `json:"slug"               yaml:"slug"`
	Name              string            `json:"name"               yaml:"name"`
	Match             string            `json:"match"              yaml:"match"`
	MatchingAlgorithm MatchingAlgorithm `json:"matching_algorithm" yaml:"matching_algorithm"`
	IsInsensitive     bool              `json:"is_insensitive"     yaml:"is_insensitive"`
	DocumentCount     int               `json:"document_count"     yaml:"document_count"`
	Owner             *int              `json:"owner"              yaml:"owner"`
	UserCanChange     bool              `json:"user_can_change"    yaml:"user_can_change"`
}

// DocumentTypeCreateRequest creates a document type.
type DocumentTypeCreateRequest struct {
	Name              string            `json:"name"`
	Match             string            `json:"match,omitempty"`
	MatchingAlgorithm MatchingAlgorithm `json:"matching_algorithm"`
	IsInsensitive     bool              `json:"is_insensitive"`
	Owner             *int              `json:"owner,omitempty"`
}

// DocumentTypeUpdateRequest carries the mutable document type fields.
type DocumentTypeUpdateRequest struct {
	Name              *string            `json:"name,omitempty"`
	Match             *string            `json:"match,omitempty"`
	MatchingAlgorithm *MatchingAlgorithm `json:"matching_algorithm,omitempty"`
	IsInsensitive     *bool              `json:"is_insensitive,omitempty"`
	Owner             *int               `json:"owner,omitempty"`
}

// StoragePath controls where a document's files are placed on disk.
type StoragePath struct {
	ID                int               `json:"id"                 yaml:"id"`
	Slug              string            `json:"slug"               yaml:"slug"`
	Name              string            `json:"name"               yaml:"name"`
	Path              string            `json:"path"               yaml:"path"`
	Match             string            `json:"match"              yaml:"match"`
	MatchingAlgorithm MatchingAlgorithm `json:"matching_algorithm" yaml:"matching_algorithm"`
	IsInsensitive     bool              `json:"is_insensitive"     yaml:"is_insensitive"`
	DocumentCount     int               `json:"document_count"     yaml:"document_count"`
	Owner             *int              `json:"owner"              yaml:"owner"`
	UserCanChange     bool              `json:"user_can_change"    yaml:"user_can_change"`
}

// StoragePathCreateRequest creates a storage path.
type StoragePathCreateRequest struct {
	Name              string            `json:"name"`
	Path              string            `json:"path"`
	Match             string            `json:"match,omitempty"`
	MatchingAlgorithm MatchingAlgorithm `json:"matching_algorithm"`
	IsInsensitive     bool              `json:"is_insensitive"`
	Owner             *int              `json:"owner,omitempty"`
}

// StoragePathUpdateRequest carries the mutable storage path fields.
type StoragePathUpdateRequest struct {
	Name              *string            `json:"name,omitempty"`
	Path              *string            `json:"path,omitempty"`
	Match             *string            `json:"match,omitempty"`
	MatchingAlgorithm *MatchingAlgorithm `json:"matching_algorithm,omitempty"`
	IsInsensitive     *bool              `json:"is_insensitive,omitempty"`
	Owner             *int               `json:"owner,omitempty"`
}

// CustomField is a user-defined document attribute.
type CustomField struct {
	ID       int    `json:"id"        yaml:"id"`
	Name     string `json:"name"      yaml:"name"`
	DataType string `json:"data_type" yaml:"data_type"`
}

// CustomFieldCreateRequest creates a custom field.
type CustomFieldCreateRequest struct {
	Name     string `json:"name"`
	DataType string `json:"data_type"`
}

// ShareLink grants unauthenticated access to one document until it
// expires.
type ShareLink struct {
	ID          int                  `json:"id"                   yaml:"id"`
	Created     time.Time            `json:"created"              yaml:"created"`
	Expiration  *time.Time           `json:"expiration"           yaml:"expiration"`
	Slug        string               `json:"slug"                 yaml:"slug"`
	Document    int                  `json:"document"             yaml:"document"`
	FileVersion ShareLinkFileVersion `json:"file_version"         yaml:"file_version"`
}

// ShareLinkCreateRequest creates a share link.
type ShareLinkCreateRequest struct {
	Document    int                  `json:"document"`
	FileVersion ShareLinkFileVersion `json:"file_version,omitempty"`
	Expiration  *time.Time           `json:"expiration,omitempty"`
}

// ShareLinkUpdateRequest carries the mutable share link fields.
type ShareLinkUpdateRequest struct {
	Expiration  *time.Time            `json:"expiration,omitempty"`
	FileVersion *ShareLinkFileVersion `json:"file_version,omitempty"`
}

// Task is one asynchronous server-side job, e.g. consuming an uploaded
// document.
type Task struct {
	ID              int        `json:"id"               yaml:"id"`
	TaskID          uuid.UUID  `json:"task_id"          yaml:"task_id"`
	TaskFileName    *string    `json:"task_file_name"   yaml:"task_file_name"`
	DateCreated     *time.Time `json:"date_created"     yaml:"date_created"`
	DateDone        *time.Time `json:"date_done"        yaml:"date_done"`
	Type            string     `json:"type"             yaml:"type"`
	Status          TaskStatus `json:"status"           yaml:"status"`
	Result          *string    `json:"result"           yaml:"result"`
	Acknowledged    bool       `json:"acknowledged"     yaml:"acknowledged"`
	RelatedDocument *string    `json:"related_document" yaml:"related_document"`
}

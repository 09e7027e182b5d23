package constants

import "time"

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// UploadHTTPTimeout is used for streaming document uploads, which can
	// take considerably longer than regular API calls.
	UploadHTTPTimeout = 10 * time.Minute
)

// Retry limits. Retry is disabled unless the caller opts in via
// Config.RetryMax; these bound the waits once it is enabled.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// Task polling intervals for Tasks().Wait.
const (
	// TaskPollInitialInterval is the initial wait between task status polls.
	TaskPollInitialInterval = 500 * time.Millisecond

	// TaskPollMaxInterval caps the wait between task status polls.
	TaskPollMaxInterval = 10 * time.Second

	// TaskPollMaxElapsed bounds the total time spent waiting for a task.
	TaskPollMaxElapsed = 5 * time.Minute
)

// Response body limits.
const (
	// ErrorBodyReadLimit bounds how much of an error response body is read.
	// Validation bodies must fit within this to be classified.
	ErrorBodyReadLimit = 64 * 1024

	// ErrorBodyExcerptLimit bounds the excerpt carried inside an error value.
	ErrorBodyExcerptLimit = 512
)

// AcceptHeader pins the REST API version so server upgrades cannot
// silently change response shapes.
const AcceptHeader = "application/json; version=9"

// API paths.
const (
	APIPathDocuments      = "/api/documents/"
	APIPathPostDocument   = "/api/documents/post_document/"
	APIPathTags           = "/api/tags/"
	APIPathCorrespondents = "/api/correspondents/"
	APIPathDocumentTypes  = "/api/document_types/"
	APIPathStoragePaths   = "/api/storage_paths/"
	APIPathCustomFields   = "/api/custom_fields/"
	APIPathShareLinks     = "/api/share_links/"
	APIPathTasks          = "/api/tasks/"
)

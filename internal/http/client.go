// Package http implements the request/response pipeline every resource
// client goes through: request construction, credential injection,
// optional retry, transport execution, and error mapping. The actual
// network transport is an injected executor; this package never
// constructs sockets or TLS contexts itself.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/paperstack-io/paperless-client/internal/auth"
	"github.com/paperstack-io/paperless-client/internal/constants"
	"github.com/paperstack-io/paperless-client/pkg/paperless"
)

// Doer executes one HTTP request. *net/http.Client satisfies it, as
// does any test double. Implementations must be safe for concurrent
// invocation.
type Doer interface {
	Do(req *nethttp.Request) (*nethttp.Response, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request describes one API call before it is turned into a transport
// request. Body and Multipart are mutually exclusive.
type Request struct {
	Method    string
	Path      string
	Query     url.Values
	Headers   map[string]string
	Body      interface{}
	Multipart *MultipartBody
}

// Response is the decoded-enough envelope handed back to resource
// clients: status, headers, and the raw body bytes.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// Client is the pipeline implementation shared by all resource clients.
type Client struct {
	baseURL     string
	credentials *auth.Credentials
	executor    Doer
	retry       *retryPolicy
	userAgent   string
	logger      Logger
	debug       bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithExecutor injects the transport executor. Defaults to a net/http
// client with the package default timeout.
func WithExecutor(executor Doer) Option {
	return func(c *Client) {
		c.executor = executor
	}
}

// WithRetryConfig enables retry with exponential backoff for transient
// failures of idempotent requests. Without it every call is a single
// attempt.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retry = &retryPolicy{
			retryMax: retryMax,
			waitMin:  waitMin,
			waitMax:  waitMax,
		}
	}
}

// NewClient creates a pipeline client for the given base URL.
// Credentials may be nil for unauthenticated use.
func NewClient(baseURL string, credentials *auth.Credentials, opts ...Option) *Client {
	client := &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		credentials: credentials,
		userAgent:   defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.executor == nil {
		client.executor = &nethttp.Client{Timeout: constants.DefaultHTTPTimeout}
	}

	if client.retry != nil {
		client.retry.executor = client.executor
	}

	return client
}

const defaultUserAgent = "paperless-client-go"

// Do executes one request through the full pipeline: build, authorize,
// (retry-wrapped) transport execution, error mapping. On a non-2xx
// status it returns both the response envelope and the mapped error.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
		})
	}

	httpResp, err := c.execute(httpReq)
	if err != nil {
		return nil, paperless.NewTransportError(err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	resp, err := c.readResponse(httpResp)

	if c.debug && c.logger != nil {
		fields := map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
		}
		if resp != nil {
			fields["status_code"] = resp.StatusCode
		}

		c.logger.Debug("HTTP Response", fields)
	}

	return resp, err
}

// newRequest assembles the transport request: URL, body, headers, and
// the Authorization header from the credential store.
func (c *Client) newRequest(ctx context.Context, req *Request) (*nethttp.Request, error) {
	if req.Body != nil && req.Multipart != nil {
		return nil, paperless.NewInvalidRequestError("both JSON and multipart body set")
	}

	requestURL, err := c.resolveURL(req)
	if err != nil {
		return nil, err
	}

	var (
		body        io.Reader
		contentType string
	)

	switch {
	case req.Body != nil:
		data, marshalErr := json.Marshal(req.Body)
		if marshalErr != nil {
			return nil, paperless.NewInvalidRequestError("marshaling request body: " + marshalErr.Error())
		}

		// bytes.Reader gives net/http a GetBody, which the retry
		// policy needs to replay attempts.
		body = bytes.NewReader(data)
		contentType = "application/json"
	case req.Multipart != nil:
		reader, multipartType := streamMultipart(req.Multipart)
		body = reader
		contentType = multipartType
	}

	httpReq, err := nethttp.NewRequestWithContext(ctx, req.Method, requestURL, body)
	if err != nil {
		return nil, paperless.NewInvalidRequestError(err.Error())
	}

	httpReq.Header.Set("Accept", constants.AcceptHeader)
	httpReq.Header.Set("User-Agent", c.userAgent)

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.credentials != nil {
		err = c.credentials.Authorize(httpReq)
		if err != nil {
			return nil, err
		}
	}

	return httpReq, nil
}

// resolveURL joins the base URL and path, or accepts an absolute URL
// as-is for cursor fetches.
func (c *Client) resolveURL(req *Request) (string, error) {
	requestURL := req.Path
	if !strings.HasPrefix(requestURL, "http://") && !strings.HasPrefix(requestURL, "https://") {
		requestURL = c.baseURL + req.Path
	}

	parsed, err := url.Parse(requestURL)
	if err != nil {
		return "", paperless.NewInvalidRequestError("parsing request URL: " + err.Error())
	}

	if len(req.Query) > 0 {
		query := parsed.Query()
		for key, values := range req.Query {
			for _, value := range values {
				query.Add(key, value)
			}
		}

		parsed.RawQuery = query.Encode()
	}

	return parsed.String(), nil
}

// execute dispatches through the retry policy when one is configured
// and the request is eligible, otherwise straight to the executor.
func (c *Client) execute(req *nethttp.Request) (*nethttp.Response, error) {
	if c.retry != nil && c.retry.eligible(req) {
		return c.retry.Do(req)
	}

	return c.executor.Do(req)
}

// readResponse drains the body (bounded for error statuses) and maps
// any status outside the 2xx range to the error taxonomy, including
// 3xx the executor did not follow.
func (c *Client) readResponse(httpResp *nethttp.Response) (*Response, error) {
	if httpResp.StatusCode < nethttp.StatusOK || httpResp.StatusCode >= nethttp.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(httpResp.Body, constants.ErrorBodyReadLimit))

		resp := &Response{
			StatusCode: httpResp.StatusCode,
			Headers:    httpResp.Header,
			Body:       body,
		}

		return resp, paperless.MapResponse(httpResp.StatusCode, httpResp.Header, body)
	}

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, paperless.NewTransportError(err)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodGet, Path: path, Query: query})
}

// GetURL performs a GET against an absolute URL, used for pagination
// cursors.
func (c *Client) GetURL(ctx context.Context, rawURL string) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodGet, Path: rawURL})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodDelete, Path: path})
}

// PostMultipart performs a streaming multipart/form-data POST. The file
// contents are piped to the transport as they are read, never buffered
// wholesale, and the request is always a single attempt.
func (c *Client) PostMultipart(ctx context.Context, path string, body *MultipartBody) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPost, Path: path, Multipart: body})
}

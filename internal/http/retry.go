package http

import (
	"context"
	"errors"
	"io"
	nethttp "net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// transientStatuses lists the response codes worth another attempt.
// Kept table-driven so the classification can change without touching
// call sites.
var transientStatuses = map[int]bool{
	nethttp.StatusTooManyRequests:     true,
	nethttp.StatusInternalServerError: true,
	nethttp.StatusBadGateway:          true,
	nethttp.StatusServiceUnavailable:  true,
	nethttp.StatusGatewayTimeout:      true,
}

// idempotentMethods lists the methods eligible for retry. POST is
// excluded: repeating a create or an upload is not safe.
var idempotentMethods = map[string]bool{
	nethttp.MethodGet:    true,
	nethttp.MethodHead:   true,
	nethttp.MethodPut:    true,
	nethttp.MethodDelete: true,
}

// retryPolicy wraps the executor with bounded retries and jittered
// exponential backoff. Backoff durations come from retryablehttp's
// DefaultBackoff, which also honors Retry-After on 429/503 responses.
type retryPolicy struct {
	retryMax int
	waitMin  time.Duration
	waitMax  time.Duration
	executor Doer
}

// eligible reports whether this request may be retried at all. A
// request with a body must be replayable through GetBody.
func (p *retryPolicy) eligible(req *nethttp.Request) bool {
	if !idempotentMethods[req.Method] {
		return false
	}

	return req.Body == nil || req.GetBody != nil
}

// Do runs the request with up to retryMax additional attempts. On
// exhaustion the last response and error are surfaced unchanged.
func (p *retryPolicy) Do(req *nethttp.Request) (*nethttp.Response, error) {
	var (
		resp *nethttp.Response
		err  error
	)

	for attempt := 0; ; attempt++ {
		if attempt > 0 && req.GetBody != nil {
			body, bodyErr := req.GetBody()
			if bodyErr != nil {
				return resp, bodyErr
			}

			req.Body = body
		}

		resp, err = p.executor.Do(req) //nolint:bodyclose // closed below before retrying, or by the caller

		if !p.shouldRetry(resp, err) || attempt >= p.retryMax {
			return resp, err
		}

		if resp != nil {
			// Drain so the connection can be reused.
			_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
			_ = resp.Body.Close()
		}

		wait := retryablehttp.DefaultBackoff(p.waitMin, p.waitMax, attempt, resp)

		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(wait):
		}
	}
}

// shouldRetry classifies one attempt's outcome. Transport errors and
// transient statuses retry; cancellation and permanent client errors
// never do.
func (p *retryPolicy) shouldRetry(resp *nethttp.Response, err error) bool {
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false
		}

		return true
	}

	return transientStatuses[resp.StatusCode]
}

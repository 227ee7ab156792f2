package http

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// ClientOptions configures the client returned by NewRetryableClient.
type ClientOptions struct {
	// Timeout bounds a single request, including reading the response body.
	Timeout time.Duration
	// MaxAttempts caps the number of requests made while the server keeps
	// responding with 404. Zero means no cap.
	MaxAttempts int
	// RetryWait is the constant pause between two attempts.
	RetryWait time.Duration
	// PrepareRetry is invoked with the request right before it is retried.
	PrepareRetry retryablehttp.PrepareRetry
}

// NewRetryableClient returns a new pre-configured instance of retryablehttp.Client.
// Only 404 responses are retried. Transport errors and any other status are
// handed back to the caller on the first occurrence.
func NewRetryableClient(opts ClientOptions) *retryablehttp.Client {
	return &retryablehttp.Client{
		HTTPClient: &http.Client{
			Timeout:   opts.Timeout,
			Transport: &http.Transport{Proxy: http.ProxyFromEnvironment},
		},
		Logger:       NewLeveledLogger(),
		RetryWaitMin: opts.RetryWait,
		RetryWaitMax: opts.RetryWait,
		RetryMax:     retryMax(opts.MaxAttempts),
		CheckRetry:   RetryNotFound,
		Backoff:      ConstantBackoff,
		PrepareRetry: opts.PrepareRetry,
		ErrorHandler: retryablehttp.PassthroughErrorHandler,
	}
}

// RetryNotFound is a retryablehttp.CheckRetry policy that retries 404 and
// nothing else.
func RetryNotFound(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return false, nil
	}
	return resp.StatusCode == http.StatusNotFound, nil
}

// ConstantBackoff always waits min.
func ConstantBackoff(min, _ time.Duration, _ int, _ *http.Response) time.Duration {
	return min
}

// retryMax converts an attempt budget into retryablehttp's retry count.
func retryMax(attempts int) int {
	if attempts <= 0 {
		return math.MaxInt
	}
	return attempts - 1
}

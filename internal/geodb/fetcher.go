// Package geodb downloads geolocation databases.
package geodb

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/meguca/geolocdb/internal/hashio"
	geohttp "github.com/meguca/geolocdb/internal/http"
	"github.com/meguca/geolocdb/internal/progress"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultOutput is the file the database is written to unless told otherwise.
const DefaultOutput = "GeoLite2-City.mmdb"

// Options configures a Fetcher.
type Options struct {
	// URL of the database. May contain {year} and {month} placeholders.
	URL string
	// Output is the destination file. It is replaced as a whole on success.
	Output string
	// Start is the period the first request is made for. Defaults to the
	// current month.
	Start Period
	// MaxAttempts caps the number of 404 responses tolerated. Zero retries
	// indefinitely.
	MaxAttempts int
	// RetryWait is the pause between two attempts.
	RetryWait time.Duration
	// Timeout bounds each request including the body download.
	Timeout time.Duration
	// Progress renders a spinner and a progress bar on stdout.
	Progress bool
}

// Result describes a completed download.
type Result struct {
	// Path the database was written to.
	Path string
	// URL that was requested last.
	URL string
	// Location is the URL the content was served from after redirects.
	Location string
	// Period the successful request was made for.
	Period Period
	// Attempts is the number of requests made, including the successful one.
	Attempts int
	Size     int64
	SHA256   string
}

// Fetcher downloads a geolocation database, stepping back one month on
// every 404 until the server returns something else.
//
// A Fetcher is not safe for concurrent use.
type Fetcher struct {
	opts   Options
	source Source
	now    func() time.Time

	period   Period
	attempts int
}

// New returns a Fetcher for opts.
func New(opts Options) (*Fetcher, error) {
	source, err := NewSource(opts.URL)
	if err != nil {
		return nil, err
	}
	if opts.Output == "" {
		return nil, errors.New("no output file specified")
	}
	if opts.MaxAttempts < 0 {
		return nil, fmt.Errorf("invalid max attempts %d", opts.MaxAttempts)
	}

	return &Fetcher{
		opts:   opts,
		source: source,
		now:    time.Now,
	}, nil
}

// Fetch downloads the database and writes it to the output file.
// Any 4xx or 5xx response other than 404 aborts with a *StatusError, and
// transport errors abort immediately. Redirects net/http does not follow
// (300, 304) are written like a success. The output file is only touched
// once a successful response has been received in full.
func (f *Fetcher) Fetch(ctx context.Context) (Result, error) {
	f.period = f.opts.Start
	if f.period.IsZero() {
		f.period = CurrentPeriod(f.now())
	}
	f.attempts = 1

	client := geohttp.NewRetryableClient(geohttp.ClientOptions{
		Timeout:      f.opts.Timeout,
		MaxAttempts:  f.opts.MaxAttempts,
		RetryWait:    f.opts.RetryWait,
		PrepareRetry: f.prepareRetry,
	})

	target := f.source.URL(f.period)
	req, err := geohttp.NewRetryableRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Result{}, err
	}

	log.Info().Str("url", target).Msg("Downloading geolocation database.")
	if f.opts.Progress {
		progress.Show("Requesting %s", target)
	}
	resp, err := client.Do(req)
	if f.opts.Progress {
		progress.Stop()
	}
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
		}
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		return Result{}, fmt.Errorf("fetch %s: %w", f.source.URL(f.period), err)
	}
	defer resp.Body.Close()

	target = f.source.URL(f.period)
	if resp.StatusCode == http.StatusNotFound {
		return Result{}, fmt.Errorf("%w after %d attempts: %s", ErrNotFound, f.attempts, target)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return Result{}, &StatusError{URL: target, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	size, err := writeFile(ctx, f.opts.Output, resp.Body, resp.ContentLength, f.opts.Progress)
	if err != nil {
		return Result{}, err
	}

	sum, err := hashio.SHA256(f.opts.Output)
	if err != nil {
		return Result{}, fmt.Errorf("failed to compute checksum: %w", err)
	}

	location := target
	if resp.Request != nil && resp.Request.URL != nil {
		location = resp.Request.URL.String()
	}

	return Result{
		Path:     f.opts.Output,
		URL:      target,
		Location: location,
		Period:   f.period,
		Attempts: f.attempts,
		Size:     size,
		SHA256:   sum,
	}, nil
}

// prepareRetry runs before every retry, which only ever follows a 404.
func (f *Fetcher) prepareRetry(req *http.Request) error {
	previous := f.source.URL(f.period)
	f.period = f.period.Prev()
	f.attempts++

	if f.opts.Progress {
		progress.Stop()
		defer progress.Show("Requesting %s", f.source.URL(f.period))
	}

	log.WithLevel(notFoundLevel(f.attempts)).
		Str("url", previous).
		Int("attempt", f.attempts).
		Str("period", f.period.String()).
		Msg("Database not found, retrying.")

	if !f.source.Templated() {
		return nil
	}

	u, err := url.Parse(f.source.URL(f.period))
	if err != nil {
		return fmt.Errorf("invalid URL for period %s: %w", f.period, err)
	}
	req.URL = u
	req.Host = u.Host

	return nil
}

// notFoundLevel keeps an endless 404 loop from flooding the log: the first
// few retries and every 100th are logged at info, the rest at debug.
func notFoundLevel(attempt int) zerolog.Level {
	if attempt <= 3 || attempt%100 == 0 {
		return zerolog.InfoLevel
	}
	return zerolog.DebugLevel
}

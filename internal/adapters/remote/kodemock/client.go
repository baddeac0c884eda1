// Package kodemock provides the outbound client for the remote employee
// directory endpoint. The endpoint selects its dataset with query params:
// __example picks a canned department set, __dynamic generates records on the
// fly, and __code forces a status for failure drills.
package kodemock

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"staffdir/internal/core/directory"
	perr "staffdir/internal/platform/errors"
	"staffdir/internal/platform/logger"
	"staffdir/internal/platform/net/http/bind"
)

const (
	defaultTimeout = 10 * time.Second
	defaultUA      = "staffdir-api"

	// ExampleAll is the dataset selector for the full directory
	ExampleAll = "all"

	maxBody = 4 << 20
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Client is a thin GET client for the directory endpoint
// no retries here, the caller owns retry policy
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// NewClient creates a Client with sane defaults
func NewClient(o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("kodemock"),
	}
}

// FetchAll returns every employee in the directory
func (c *Client) FetchAll(ctx context.Context) ([]directory.RawEmployee, error) {
	return c.fetch(ctx, url.Values{"__example": {ExampleAll}})
}

// FetchByDepartment returns the employees of a single department code
func (c *Client) FetchByDepartment(ctx context.Context, dept string) ([]directory.RawEmployee, error) {
	return c.fetch(ctx, url.Values{"__example": {dept}})
}

// FetchDynamic hits the dynamic path, which the server answers with a
// freshly generated dataset after an artificial delay
func (c *Client) FetchDynamic(ctx context.Context) ([]directory.RawEmployee, error) {
	return c.fetch(ctx, url.Values{"__dynamic": {"true"}})
}

// FetchError500 forces a 500 from the dynamic path, for failure drills
func (c *Client) FetchError500(ctx context.Context) ([]directory.RawEmployee, error) {
	return c.fetch(ctx, url.Values{"__dynamic": {"true"}, "__code": {"500"}})
}

// Ping issues a minimal request so readiness checks can see the endpoint
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.fetch(ctx, url.Values{"__example": {ExampleAll}})
	return err
}

func (c *Client) fetch(ctx context.Context, q url.Values) ([]directory.RawEmployee, error) {
	u := c.opts.BaseURL + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "directory new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("url", u).Msg("directory fetch failed")
		return nil, perr.Unavailablef("directory endpoint unreachable: %v", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("url", u).Msg("directory close body failed")
		}
	}()

	c.log.Debug().
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Str("query", q.Encode()).
		Msg("directory fetch")

	if resp.StatusCode != http.StatusOK {
		return nil, perr.Unavailablef("directory endpoint returned %s", resp.Status)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, perr.Unavailablef("directory read body failed: %v", err)
	}

	var body usersResponse
	if err := json.Unmarshal(b, &body); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "directory decode failed")
	}

	// drop records missing required identity fields rather than failing the batch
	items := body.Items[:0:0]
	for _, it := range body.Items {
		if err := bind.Validate(it); err != nil {
			c.log.Warn().Err(err).Str("id", it.ID).Msg("directory record rejected")
			continue
		}
		items = append(items, it)
	}
	return items, nil
}

// String identifies the remote for logs
func (c *Client) String() string { return fmt.Sprintf("kodemock(%s)", c.opts.BaseURL) }

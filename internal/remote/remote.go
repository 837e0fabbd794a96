// Package remote looks up crate versions on the crates.io API.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Masterminds/semver/v3"
	"github.com/hashicorp/go-retryablehttp"
)

// DefaultBaseURL is the crates.io API root.
const DefaultBaseURL = "https://crates.io/api/v1"

// ErrCrateNotFound indicates the registry has no crate by that name.
var ErrCrateNotFound = errors.New("crate not found")

// Options configures a Client.
type Options struct {
	// BaseURL overrides the API root, mainly for tests.
	BaseURL string

	// UserAgent is sent with every request; crates.io requires one.
	UserAgent string
}

// Client queries the crates.io registry API.
type Client struct {
	base      string
	userAgent string
	http      *http.Client
}

// NewClient creates a registry client with retrying transport.
func NewClient(opts Options) *Client {
	base := opts.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = "cargo-sync"
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.Logger = nil

	return &Client{
		base:      base,
		userAgent: userAgent,
		http:      rc.StandardClient(),
	}
}

// crateResponse is the subset of the crates.io crate payload we read.
type crateResponse struct {
	Crate struct {
		MaxStableVersion string `json:"max_stable_version"`
		MaxVersion       string `json:"max_version"`
	} `json:"crate"`
}

// LatestVersion returns the newest stable version of a crate, falling
// back to the newest version of any kind when no stable release exists.
func (c *Client) LatestVersion(ctx context.Context, name string) (*semver.Version, error) {
	url := fmt.Sprintf("%s/crates/%s", c.base, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %q: %w", name, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying registry for %q: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %q", ErrCrateNotFound, name)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("querying registry for %q: unexpected status %s", name, resp.Status)
	}

	var body crateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding registry response for %q: %w", name, err)
	}

	raw := body.Crate.MaxStableVersion
	if raw == "" {
		raw = body.Crate.MaxVersion
	}
	if raw == "" {
		return nil, fmt.Errorf("registry returned no versions for %q", name)
	}

	version, err := semver.StrictNewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("registry returned invalid version %q for %q: %w", raw, name, err)
	}

	return version, nil
}

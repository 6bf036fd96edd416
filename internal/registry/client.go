package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/agentpack-dev/agentpack/internal/branding"
)

// PackageInfo is the registry's metadata record for a package.
type PackageInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Author      string   `json:"author,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Latest      string   `json:"latest"`
	Versions    []string `json:"versions"`
	Format      string   `json:"format,omitempty"`
	Subtype     string   `json:"subtype,omitempty"`
}

// Client is a thin JSON/HTTP client for the package registry. The zero
// value is not usable; construct with New.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a registry client for the given base URL. An empty base URL
// falls back to the branded default registry.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = branding.RegistryURL()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// GetPackage fetches a package's metadata record.
func (c *Client) GetPackage(ctx context.Context, name string) (*PackageInfo, error) {
	url := fmt.Sprintf("%s/v1/packages/%s", c.baseURL, name)

	body, err := c.get(ctx, url, "application/json")
	if err != nil {
		return nil, err
	}

	var info PackageInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("parsing package metadata: %w", err)
	}
	return &info, nil
}

// GetDocument fetches the raw document content for one package version.
func (c *Client) GetDocument(ctx context.Context, name, version string) (string, error) {
	url := fmt.Sprintf("%s/v1/packages/%s/%s/document", c.baseURL, name, version)

	body, err := c.get(ctx, url, "text/plain")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// ResolveVersion picks the highest published version satisfying constraint.
// An empty constraint resolves to the registry's latest.
func (c *Client) ResolveVersion(ctx context.Context, name, constraint string) (string, error) {
	info, err := c.GetPackage(ctx, name)
	if err != nil {
		return "", err
	}

	if constraint == "" {
		if info.Latest == "" {
			return "", fmt.Errorf("package %s has no published versions", name)
		}
		return info.Latest, nil
	}

	// An exact published version short-circuits constraint matching.
	for _, v := range info.Versions {
		if v == constraint {
			return v, nil
		}
	}

	rng, err := semver.NewConstraint(constraint)
	if err != nil {
		return "", fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}

	var best *semver.Version
	var bestRaw string
	for _, raw := range info.Versions {
		v, err := semver.NewVersion(raw)
		if err != nil {
			continue
		}
		if rng.Check(v) && (best == nil || v.GreaterThan(best)) {
			best = v
			bestRaw = raw
		}
	}

	if best == nil {
		return "", fmt.Errorf("no version of %s satisfies %q", name, constraint)
	}
	return bestRaw, nil
}

// get performs one GET request and returns the response body.
func (c *Client) get(ctx context.Context, url, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", branding.CLIName()+"-client")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("not found: %s", url)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry returned status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}

// Package nitro implements a minimal client for the NITRO REST management
// API exposed by NetScaler appliances. Resources are grouped by object type
// under the "config" (desired state) and "stat" (live statistics) endpoints.
package nitro

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Config holds the connection parameters for one appliance.
type Config struct {
	Host       string
	Port       int
	SSL        bool
	Username   string
	Password   string
	APIVersion string
	Timeout    time.Duration
	Insecure   bool
}

// Client performs authenticated GET requests against one appliance. Each
// request is a single synchronous call with no retries; the configured
// timeout bounds the whole exchange.
type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

// New creates a client. The logger is the diagnostic sink for verbose mode;
// pass nil to discard diagnostics.
func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIVersion == "" {
		cfg.APIVersion = "v1"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	transport := http.DefaultTransport
	if cfg.Insecure {
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		log: logger,
	}
}

// EscapeName percent-encodes an object name twice, as the appliance expects
// for names containing special characters.
func EscapeName(name string) string {
	return url.QueryEscape(url.QueryEscape(name))
}

// URL builds the request URL for one query.
func (c *Client) URL(endpoint, objectType, objectName, urlOpts string) string {
	scheme := "http"
	if c.cfg.SSL {
		scheme = "https"
	}
	host := c.cfg.Host
	if c.cfg.Port != 0 {
		host = net.JoinHostPort(host, strconv.Itoa(c.cfg.Port))
	}
	u := fmt.Sprintf("%s://%s/nitro/%s/%s/%s", scheme, host, c.cfg.APIVersion, endpoint, objectType)
	if objectName != "" {
		u += "/" + url.PathEscape(url.PathEscape(objectName))
	}
	if urlOpts != "" {
		u += "?" + urlOpts
	}
	return u
}

// Get fetches one object type from the given endpoint and decodes the body.
// Non-2xx answers become an *APIError carrying the raw body; a body that is
// not well-formed JSON becomes a *DecodeError.
func (c *Client) Get(ctx context.Context, endpoint, objectType, objectName, urlOpts string) (Document, error) {
	u := c.URL(endpoint, objectType, objectName, urlOpts)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Document{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-NITRO-USER", c.cfg.Username)
	req.Header.Set("X-NITRO-PASS", c.cfg.Password)
	req.Header.Set("Content-Type", "application/vnd.com.citrix.netscaler."+objectType+"+json")

	c.log.Debug("nitro request", "url", u)

	resp, err := c.http.Do(req)
	if err != nil {
		return Document{}, fmt.Errorf("nitro request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Document{}, fmt.Errorf("read response: %w", err)
	}

	c.log.Debug("nitro response", "status", resp.StatusCode, "body", string(body))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Document{}, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	doc, err := Parse(body)
	if err != nil {
		return Document{}, &DecodeError{Err: err}
	}
	return doc, nil
}

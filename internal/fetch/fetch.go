// Package fetch performs single-shot, best-effort reads of small remote or
// local resources such as "latest release" files.
//
// Fetch never returns an error. Any failure is reported as ("", false) and
// logged at debug level; callers fall back to other sources.
package fetch

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/thoreinstein/wdbin/internal/logging"
)

// DefaultTimeout bounds a fetch when the client does not set one.
const DefaultTimeout = 5 * time.Second

// MaxBodySize caps how much of a response or file is read.
const MaxBodySize = 64 << 10

// Client fetches text from http(s) URLs, file:// URLs and plain paths.
type Client struct {
	HTTP    *http.Client
	FS      afero.Fs
	Timeout time.Duration
}

// New returns a Client using the OS filesystem and a default HTTP client.
func New(timeout time.Duration) *Client {
	return &Client{
		HTTP:    &http.Client{},
		FS:      afero.NewOsFs(),
		Timeout: timeout,
	}
}

// Fetch returns the trimmed content of target. The second result is false
// when the target could not be read or is empty.
func (c *Client) Fetch(ctx context.Context, target string) (string, bool) {
	logger := logging.FromContext(ctx).With("target", logging.MaskURL(target))

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var (
		body string
		err  error
	)
	u, perr := url.Parse(target)
	switch {
	case perr == nil && (u.Scheme == "http" || u.Scheme == "https"):
		body, err = c.fetchHTTP(ctx, target)
	case perr == nil && u.Scheme == "file":
		body, err = c.readFile(fileURLPath(u))
	default:
		body, err = c.readFile(target)
	}
	if err != nil {
		logger.Debug("fetch failed", "error", err)
		return "", false
	}

	body = strings.TrimSpace(body)
	if body == "" {
		logger.Debug("fetch returned empty body")
		return "", false
	}
	return body, true
}

func (c *Client) fetchHTTP(ctx context.Context, target string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "wdbin")

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{URL: target, Code: resp.StatusCode}
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (c *Client) readFile(path string) (string, error) {
	fs := c.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}
	f, err := fs.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxBodySize))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// fileURLPath returns the local path of a file URL, keeping Windows drive
// letters intact ("file:///C:/x" is "C:/x").
func fileURLPath(u *url.URL) string {
	p := u.Path
	if u.Host != "" && u.Host != "localhost" {
		p = "//" + u.Host + p
	}
	if len(p) >= 3 && p[0] == '/' && p[2] == ':' {
		p = p[1:]
	}
	return p
}

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return "unexpected status " + http.StatusText(e.Code) + " from " + logging.MaskURL(e.URL)
}

package posterart

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

const (
	userAgent     = "marquee/0.1 (https://github.com/llehouerou/marquee)"
	maxImageBytes = 20 << 20
)

// ErrUnsupportedSource is returned for image URIs that are neither HTTP(S)
// nor local files.
var ErrUnsupportedSource = errors.New("unsupported image source")

// ErrFileURI is returned for file URIs without an absolute path, such as
// file:a.jpg or file://a.jpg.
var ErrFileURI = errors.New("file URI needs an absolute path")

// Fetcher reads poster image bytes from HTTP(S) URLs or local files.
type Fetcher struct {
	httpClient *http.Client
	timeout    time.Duration
	baseDir    string
}

// NewFetcher creates a fetcher. Relative file paths are resolved against
// baseDir (usually the directory of the poster data file).
func NewFetcher(timeout time.Duration, baseDir string) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{Timeout: timeout},
		timeout:    timeout,
		baseDir:    baseDir,
	}
}

// Timeout returns the per-image fetch timeout.
func (f *Fetcher) Timeout() time.Duration {
	return f.timeout
}

// Fetch returns the raw image bytes for uri.
func (f *Fetcher) Fetch(ctx context.Context, uri string) ([]byte, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("parse uri: %w", err)
	}

	switch u.Scheme {
	case "http", "https":
		return f.fetchHTTP(ctx, uri)
	case "file":
		if u.Opaque != "" || u.Host != "" || u.Path == "" {
			return nil, fmt.Errorf("%w: %s", ErrFileURI, uri)
		}
		return f.readFile(ctx, u.Path)
	case "":
		return f.readFile(ctx, uri)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, u.Scheme)
	}
}

func (f *Fetcher) fetchHTTP(ctx context.Context, uri string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	return readLimited(resp.Body)
}

func (f *Fetcher) readFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !filepath.IsAbs(path) && f.baseDir != "" {
		path = filepath.Join(f.baseDir, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return readLimited(file)
}

func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(data) > maxImageBytes {
		return nil, fmt.Errorf("image larger than %d bytes", maxImageBytes)
	}
	return data, nil
}

// Package httputil is the GET client every rate source shares.
package httputil

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultUserAgent = "dhconv/0.1.0"

// maxBodySize caps a rate payload, the largest page a source serves is well under a megabyte
const maxBodySize = 4 << 20

var (
	ErrStatusCode = errors.New("http status != 200")
	// ErrBodyTooLarge body exceeds maxBodySize
	ErrBodyTooLarge = errors.New("response body too large")
)

// DefaultClient returns the HTTP client sources share when nothing else is configured.
// Compression is negotiated by SourceHTTPClient itself
func DefaultClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			MaxIdleConns:          16,
			MaxIdleConnsPerHost:   4,
			DisableCompression:    true,
			IdleConnTimeout:       5 * time.Minute,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
			ResponseHeaderTimeout: 10 * time.Second,
		},
	}
}

// NewHTTPClient wraps client, nil means DefaultClient
func NewHTTPClient(client *http.Client) SourceHTTPClient {
	if client == nil {
		client = DefaultClient()
	}

	return SourceHTTPClient{client: client}
}

type SourceHTTPClient struct {
	client *http.Client
}

func (f SourceHTTPClient) UserAgent() string {
	return defaultUserAgent
}

// Get returns the whole body of a 200 response to GET u, decompressed.
// A body cut short by the peer is an error like any other transport failure
func (f SourceHTTPClient) Get(ctx context.Context, u url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", u.Redacted(), err)
	}

	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s responded %s: %w", u.Host, resp.Status, ErrStatusCode)
	}

	body, err := bodyReader(resp)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	b, err := io.ReadAll(io.LimitReader(body, maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if len(b) > maxBodySize {
		return nil, fmt.Errorf("read body: %w", ErrBodyTooLarge)
	}

	return b, nil
}

func gzipped(resp *http.Response) bool {
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		return true
	}

	contentType := resp.Header.Get("Content-Type")

	return strings.Contains(contentType, "application/gzip") || strings.Contains(contentType, "application/x-gzip")
}

func bodyReader(resp *http.Response) (io.ReadCloser, error) {
	if !gzipped(resp) {
		return io.NopCloser(resp.Body), nil
	}

	gz, err := gzip.NewReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gzip body: %w", err)
	}

	return gz, nil
}

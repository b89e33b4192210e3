package httputil

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHTTPClient_UserAgent(t *testing.T) {
	t.Parallel()
	client := NewHTTPClient(http.DefaultClient)

	if client.UserAgent() != "dhconv/0.1.0" {
		t.Errorf("user agent wrong")
	}
}

func TestHTTPClient_Get(t *testing.T) {
	t.Parallel()

	var gzipped bytes.Buffer
	gz := gzip.NewWriter(&gzipped)
	if _, err := gz.Write([]byte(`{"result":"success"}`)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}

	testCases := []struct {
		name     string
		handler  http.HandlerFunc
		expected string
		err      error
	}{
		{
			name: "test_get_plain",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.Header.Get("User-Agent") != defaultUserAgent {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				_, _ = w.Write([]byte(`{"result":"success"}`))
			},
			expected: `{"result":"success"}`,
		},
		{
			name: "test_get_gzip",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Encoding", "gzip")
				_, _ = w.Write(gzipped.Bytes())
			},
			expected: `{"result":"success"}`,
		},
		{
			name: "test_get_gzip_content_type",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/x-gzip")
				_, _ = w.Write(gzipped.Bytes())
			},
			expected: `{"result":"success"}`,
		},
		{
			name: "test_get_truncated_gzip",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Encoding", "gzip")
				_, _ = w.Write(gzipped.Bytes()[:gzipped.Len()-8])
			},
			err: io.ErrUnexpectedEOF,
		},
		{
			name: "test_get_truncated_body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Length", "100")
				_, _ = w.Write([]byte(`{"result":`))
			},
			err: io.ErrUnexpectedEOF,
		},
		{
			name: "test_get_body_too_large",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write(bytes.Repeat([]byte("a"), maxBodySize+1))
			},
			err: ErrBodyTooLarge,
		},
		{
			name: "test_get_status_not_ok",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			err: ErrStatusCode,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			u, err := url.Parse(srv.URL)
			if err != nil {
				t.Fatalf("url parse: %v", err)
			}

			b, err := NewHTTPClient(srv.Client()).Get(context.Background(), *u)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Errorf("expected error %v, got %v", tc.err, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("get: %v", err)
			}

			if diff := cmp.Diff(tc.expected, string(b)); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

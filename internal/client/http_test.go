package client

import (
	"compress/gzip"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Found int `json:"found"`
}

func TestGetJSONDecodesBodyAndSendsHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("X-Api-App-Id"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`{"found": 7}`))
	}))
	defer srv.Close()

	c := New(Config{UserAgent: "test-agent"})
	header := http.Header{}
	header.Set("X-Api-App-Id", "secret")

	var out payload
	require.NoError(t, c.GetJSON(context.Background(), srv.URL, header, &out))
	assert.Equal(t, 7, out.Found)
}

func TestGetJSONGzipBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		_, _ = gz.Write([]byte(`{"found": 3}`))
		_ = gz.Close()
	}))
	defer srv.Close()

	var out payload
	require.NoError(t, New(Config{}).GetJSON(context.Background(), srv.URL, nil, &out))
	assert.Equal(t, 3, out.Found)
}

func TestGetJSONStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid app id"}`, http.StatusForbidden)
	}))
	defer srv.Close()

	var out payload
	err := New(Config{}).GetJSON(context.Background(), srv.URL, nil, &out)
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "invalid app id")
}

func TestGetJSONMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"found": `))
	}))
	defer srv.Close()

	var out payload
	err := New(Config{}).GetJSON(context.Background(), srv.URL, nil, &out)
	assert.ErrorContains(t, err, "decode response")
}

func TestGetJSONCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out payload
	err := New(Config{RequestsPerSecond: 1}).GetJSON(ctx, srv.URL, nil, &out)
	assert.Error(t, err)
}

func TestCreateProxyHTTPClient(t *testing.T) {
	c := CreateProxyHTTPClient("http://127.0.0.1:8080", 5*time.Second)
	assert.Equal(t, 5*time.Second, c.Timeout)

	transport, ok := c.Transport.(*http.Transport)
	require.True(t, ok)

	req, _ := http.NewRequest(http.MethodGet, "https://api.hh.ru/vacancies", nil)
	proxy, err := transport.Proxy(req)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", proxy.Host)
}

func TestStatusErrorMessage(t *testing.T) {
	assert.Equal(t, "API error (500)", (&StatusError{StatusCode: 500}).Error())
	assert.Equal(t, "API error (400): bad", (&StatusError{StatusCode: 400, Body: "bad"}).Error())
}

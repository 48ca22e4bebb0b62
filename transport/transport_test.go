package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("checkpoint-bytes"))
	}))
	defer srv.Close()

	pool, err := NewPool(4, 2*time.Second)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	body, err := pool.Fetch(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "checkpoint-bytes", string(body))
}

func TestFetchNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	pool, err := NewPool(1, 2*time.Second)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	_, err = pool.Fetch(context.Background(), req)
	assert.Error(t, err)
}

func TestFetchAllConcurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.URL.Path))
	}))
	defer srv.Close()

	pool, err := NewPool(4, 2*time.Second)
	require.NoError(t, err)

	var reqs []*http.Request
	for _, path := range []string{"/a", "/b", "/c"} {
		req, err := http.NewRequest(http.MethodGet, srv.URL+path, nil)
		require.NoError(t, err)
		reqs = append(reqs, req)
	}

	results, err := pool.FetchAll(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "/a", string(results[0]))
	assert.Equal(t, "/b", string(results[1]))
	assert.Equal(t, "/c", string(results[2]))
}

func TestNewPoolRejectsNonPositive(t *testing.T) {
	_, err := NewPool(0, time.Second)
	assert.Error(t, err)
}

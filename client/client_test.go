package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/students", r.URL.Path)
		assert.Equal(t, "k", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer k", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"1"},{"id":"2"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "k")
	got := c.Request("students", http.MethodGet, nil, "?select=*")
	require.NotNil(t, got)
	assert.Len(t, got, 2)
}

// every failure mode resolves to nil — the contract has no error value
func TestRequestFailuresReturnNil(t *testing.T) {
	methods := []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete}

	t.Run("missing credentials", func(t *testing.T) {
		c := New("", "")
		for _, m := range methods {
			assert.Nil(t, c.Request("students", m, nil, ""))
		}
	})

	t.Run("non-2xx", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusInternalServerError)
		}))
		defer srv.Close()
		c := New(srv.URL, "k")
		for _, m := range methods {
			assert.Nil(t, c.Request("students", m, map[string]any{"a": 1}, ""))
		}
	})

	t.Run("transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // refuse connections
		c := New(srv.URL, "k")
		for _, m := range methods {
			assert.Nil(t, c.Request("students", m, nil, ""))
		}
	})

	t.Run("non-json body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>login page</html>"))
		}))
		defer srv.Close()
		c := New(srv.URL, "k")
		assert.Nil(t, c.Request("students", http.MethodGet, nil, ""))
	})
}

func TestRequestDeleteReturnsEmptyMarker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, "k")
	got := c.Request("students", http.MethodDelete, nil, "?id=eq.1")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

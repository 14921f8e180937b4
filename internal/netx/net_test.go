package netx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJSON(t *testing.T) {
	t.Run("decodes body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			_, _ = w.Write([]byte(`[{"id":"0","author":"Alejandro Escamilla"}]`))
		}))
		defer ts.Close()

		var got []map[string]string
		require.NoError(t, GetJSON(context.Background(), ts.Client(), ts.URL, &got))
		require.Len(t, got, 1)
		assert.Equal(t, "Alejandro Escamilla", got[0]["author"])
	})

	t.Run("non-200", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "slow down", http.StatusTooManyRequests)
		}))
		defer ts.Close()

		var got any
		err := GetJSON(context.Background(), ts.Client(), ts.URL, &got)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "request failed: 429")
		assert.Contains(t, err.Error(), "slow down")
	})

	t.Run("bad json", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		}))
		defer ts.Close()

		var got any
		err := GetJSON(context.Background(), nil, ts.URL, &got)
		require.Error(t, err)
		assert.True(t, strings.HasPrefix(err.Error(), "decode "))
	})
}

func TestDownload(t *testing.T) {
	t.Run("returns body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("image-bytes"))
		}))
		defer ts.Close()

		b, err := Download(context.Background(), ts.Client(), ts.URL+"/id/0/5000/3333")
		require.NoError(t, err)
		assert.Equal(t, "image-bytes", string(b))
	})

	t.Run("network error", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		ts.Close()

		_, err := Download(context.Background(), nil, ts.URL)
		require.Error(t, err)
		assert.NotContains(t, err.Error(), "request failed")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("x"))
		}))
		defer ts.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := Download(ctx, ts.Client(), ts.URL)
		require.ErrorIs(t, err, context.Canceled)
	})
}

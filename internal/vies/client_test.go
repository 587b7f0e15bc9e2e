package vies

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRESTClientCheckVat(t *testing.T) {
	t.Run("decodes a conclusive answer", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ms/AT/vat/U12345678", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"countryCode": "AT",
				"vatNumber": "U12345678",
				"requestDate": "2025-06-01T10:00:00Z",
				"valid": true,
				"name": "Test GmbH",
				"address": "Teststrasse 1, 1010 Wien"
			}`))
		}))
		defer srv.Close()

		client := NewRESTClient(srv.URL, 2*time.Second)
		info, err := client.CheckVat(context.Background(), "AT", "U12345678")
		require.NoError(t, err)
		assert.True(t, info.Valid)
		assert.Equal(t, "Test GmbH", info.Name)
		assert.Equal(t, "AT", info.CountryCode)
		assert.False(t, info.CheckedAt.IsZero())
	})

	t.Run("maps the no-data sentinel to empty strings", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"countryCode":"DE","vatNumber":"123456789","valid":true,"name":"---","address":"---"}`))
		}))
		defer srv.Close()

		client := NewRESTClient(srv.URL, 2*time.Second)
		info, err := client.CheckVat(context.Background(), "DE", "123456789")
		require.NoError(t, err)
		assert.True(t, info.Valid)
		assert.Empty(t, info.Name)
		assert.Empty(t, info.Address)
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := NewRESTClient(srv.URL, 2*time.Second)
		_, err := client.CheckVat(context.Background(), "AT", "U12345678")
		assert.Error(t, err)
	})

	t.Run("malformed payload is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"valid": `))
		}))
		defer srv.Close()

		client := NewRESTClient(srv.URL, 2*time.Second)
		_, err := client.CheckVat(context.Background(), "AT", "U12345678")
		assert.Error(t, err)
	})

	t.Run("timeout is an error, not a hang", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer srv.Close()
		defer close(release)

		client := NewRESTClient(srv.URL, 50*time.Millisecond)
		start := time.Now()
		_, err := client.CheckVat(context.Background(), "AT", "U12345678")
		assert.Error(t, err)
		assert.Less(t, time.Since(start), 2*time.Second)
	})
}

package repositories

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocationServer(t *testing.T, status int, body string) *IPLocationRepository {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewIPLocationRepository(srv.URL, newTestLogger(), http.DefaultClient)
}

func TestNewIPLocationRepository_DefaultURL(t *testing.T) {
	assert.Equal(t, IPLocationURL, NewIPLocationRepository("", newTestLogger(), http.DefaultClient).URL)
}

func TestIPLocationRepository_CurrentCity(t *testing.T) {
	repo := newLocationServer(t, http.StatusOK, `{"status": "success", "country": "Canada", "city": " Toronto "}`)

	city, err := repo.CurrentCity(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Toronto", city)
}

func TestIPLocationRepository_Failures(t *testing.T) {
	cases := map[string]struct {
		status int
		body   string
	}{
		"fail status":  {http.StatusOK, `{"status": "fail", "message": "private range"}`},
		"empty city":   {http.StatusOK, `{"status": "success", "city": ""}`},
		"http error":   {http.StatusTooManyRequests, `{}`},
		"invalid json": {http.StatusOK, `nope`},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := newLocationServer(t, tc.status, tc.body).CurrentCity(context.Background())
			assert.Error(t, err)
		})
	}
}

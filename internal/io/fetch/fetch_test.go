package fetch_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/epitools/covidtrends/internal/io/fetch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "location,iso_code,date\nGermany,DEU,2021-01-01\n"

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(sample))
		}))
	defer srv.Close()

	c := fetch.New(5*time.Second, false, discard())
	rc, err := c.Open(context.Background(), srv.URL)
	require.NoError(t, err)
	defer rc.Close()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, sample, string(body))
}

func TestOpenURLBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}))
	defer srv.Close()

	c := fetch.New(5*time.Second, false, discard())
	_, err := c.Open(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestOpenURLUnreachable(t *testing.T) {
	c := fetch.New(time.Second, false, discard())
	_, err := c.Open(context.Background(), "http://127.0.0.1:1/owid.csv")
	require.Error(t, err)
}

func TestOpenLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "owid.csv")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	c := fetch.New(time.Second, false, discard())

	for _, src := range []string{path, "file://" + path} {
		rc, err := c.Open(context.Background(), src)
		require.NoError(t, err, src)
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		assert.Equal(t, sample, string(body), src)
	}
}

func TestOpenMissingFile(t *testing.T) {
	c := fetch.New(time.Second, false, discard())
	_, err := c.Open(context.Background(), "/no/such/file.csv")
	require.Error(t, err)
}

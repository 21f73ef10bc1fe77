// Package fetch retrieves the dataset CSV from an http(s) URL or a local
// file path. This is an impure package: network and file system access
// live here.
package fetch

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
)

// Client opens dataset sources. One acquisition per run; no retries: a
// failed download aborts the run.
type Client struct {
	hc       *http.Client
	logger   *slog.Logger
	progress bool
}

// New creates a Client. The timeout bounds the whole download.
func New(timeout time.Duration, progress bool, logger *slog.Logger) *Client {
	return &Client{
		hc:       &http.Client{Timeout: timeout},
		logger:   logger,
		progress: progress,
	}
}

// Open returns a reader over the dataset at src. Sources starting with
// http:// or https:// are downloaded; everything else (with an optional
// file:// prefix) is treated as a local path. The caller closes the
// returned reader.
func (c *Client) Open(ctx context.Context, src string) (io.ReadCloser, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return c.openURL(ctx, src)
	}
	return c.openFile(strings.TrimPrefix(src, "file://"))
}

func (c *Client) openURL(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, RequestError(url, err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, RequestError(url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, BadStatusError(url, resp.StatusCode)
	}

	size := resp.ContentLength
	if size > 0 {
		c.logger.Info("downloading dataset",
			"url", url, "size", humanize.Bytes(uint64(size)))
	} else {
		c.logger.Info("downloading dataset", "url", url, "size", "unknown")
	}

	if c.progress && size > 0 {
		bar := pb.Full.Start64(size)
		bar.Set(pb.Bytes, true)
		bar.Set(pb.CleanOnFinish, true)
		// The proxy reader closes the response body and finishes the bar.
		return bar.NewProxyReader(resp.Body), nil
	}
	return resp.Body, nil
}

func (c *Client) openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, OpenFileError(path, err)
	}
	if info, err := f.Stat(); err == nil {
		c.logger.Info("reading dataset",
			"path", path, "size", humanize.Bytes(uint64(info.Size())))
	}
	return f, nil
}

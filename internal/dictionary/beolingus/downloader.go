package beolingus

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"
)

// DefaultURL is the upstream location of the German/English dictionary.
const DefaultURL = "https://ftp.tu-chemnitz.de/pub/Local/urz/ding/de-en/de-en.txt.gz"

var gzipMagic = []byte{0x1f, 0x8b}

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("response error %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

type Downloader struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
	retryDelay       time.Duration
	logger           *slog.Logger
}

func NewDownloader(retryAttempts uint, logger *slog.Logger) *Downloader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Downloader{
		httpClient:       resty.New(),
		maxRetryAttempts: retryAttempts,
		retryDelay:       time.Second,
		logger:           logger,
	}
}

func (d *Downloader) Close() error {
	return d.httpClient.Close()
}

// Download fetches url and stores the decompressed dictionary at dest.
// dest is replaced only after the whole file was written.
func (d *Downloader) Download(ctx context.Context, url string, dest string) (int64, error) {
	var body []byte
	if err := retry.Do(
		func() error {
			contents, err := d.fetch(ctx, url)
			if err != nil {
				var statusErr *StatusError
				if errors.As(err, &statusErr) && !statusErr.retryable() {
					return retry.Unrecoverable(err)
				}
				return err
			}
			body = contents
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(d.maxRetryAttempts+1),
		retry.Delay(d.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			d.logger.Warn("retry downloading the dictionary",
				slog.Uint64("attempt", uint64(n+1)),
				slog.Any("error", err),
			)
		}),
	); err != nil {
		return 0, fmt.Errorf("retry.Do(%s) > %w", url, err)
	}

	reader, err := decompress(body)
	if err != nil {
		return 0, fmt.Errorf("decompress() > %w", err)
	}
	size, err := writeAtomically(dest, reader)
	if err != nil {
		return 0, fmt.Errorf("writeAtomically(%s) > %w", dest, err)
	}
	d.logger.Info("downloaded the dictionary",
		slog.String("url", url),
		slog.String("path", dest),
		slog.Int64("bytes", size),
	)
	return size, nil
}

func (d *Downloader) fetch(ctx context.Context, url string) ([]byte, error) {
	response, err := d.httpClient.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return nil, &StatusError{StatusCode: response.StatusCode(), Body: response.String()}
	}
	return response.Bytes(), nil
}

func decompress(body []byte) (io.Reader, error) {
	if !bytes.HasPrefix(body, gzipMagic) {
		return bytes.NewReader(body), nil
	}
	reader, err := gzip.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gzip.NewReader > %w", err)
	}
	return reader, nil
}

func writeAtomically(dest string, r io.Reader) (int64, error) {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}
	file, err := os.CreateTemp(dir, "."+filepath.Base(dest)+".*")
	if err != nil {
		return 0, fmt.Errorf("os.CreateTemp > %w", err)
	}
	tempPath := file.Name()
	defer func() {
		_ = os.Remove(tempPath)
	}()

	size, err := io.Copy(file, r)
	if err != nil {
		_ = file.Close()
		return 0, fmt.Errorf("io.Copy > %w", err)
	}
	if err := file.Close(); err != nil {
		return 0, fmt.Errorf("file.Close > %w", err)
	}
	if err := os.Rename(tempPath, dest); err != nil {
		return 0, fmt.Errorf("os.Rename > %w", err)
	}
	return size, nil
}

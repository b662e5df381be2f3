package downloader

import (
	"archive/zip"
	"book_translator/utils"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

var ErrEmptyArchive = errors.New("empty archive")

type FileDownloader struct {
	client *http.Client
}

// NewFileDownloader builds a downloader; proxyUrl may be empty.
func NewFileDownloader(timeout time.Duration, proxyUrl string) (*FileDownloader, error) {
	client := &http.Client{Timeout: timeout}
	if proxyUrl != "" {
		proxy, err := url.Parse(proxyUrl)
		if err != nil {
			return nil, fmt.Errorf("parse proxy url: %w", err)
		}
		client.Transport = &http.Transport{Proxy: http.ProxyURL(proxy)}
	}
	return &FileDownloader{client: client}, nil
}

// Download fetches url and returns its body together with the response content type.
// Zip archives are unpacked and the first entry is returned.
func (f *FileDownloader) Download(ctx context.Context, url string) (fileBytes []byte, contentType string, err error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "FileDownloader.Download"
	slog.Info("Download start", slog.String("rqID", rqID), slog.String("op", op), slog.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("response status not ok: %d", resp.StatusCode)
	}

	fileBytes, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read body err: %w", err)
	}

	contentType = resp.Header.Get("Content-Type")

	if isZip(contentType, url) {
		fileBytes, err = f.unzip(bytes.NewReader(fileBytes), int64(len(fileBytes)))
		if err != nil {
			return nil, "", fmt.Errorf("unzip err: %w", err)
		}
		contentType = ""
	}

	slog.Info(
		"Download finished",
		slog.String("rqID", rqID),
		slog.String("op", op),
		slog.String("url", url),
		slog.Int("size", len(fileBytes)),
	)

	return fileBytes, contentType, nil
}

func isZip(contentType, rawUrl string) bool {
	if strings.HasPrefix(contentType, "application/zip") {
		return true
	}
	u, err := url.Parse(rawUrl)
	if err != nil {
		return false
	}
	return path.Ext(u.Path) == ".zip"
}

func (f *FileDownloader) unzip(r io.ReaderAt, size int64) (fileBytes []byte, err error) {
	reader, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}

	if len(reader.File) == 0 {
		return nil, ErrEmptyArchive
	}

	file := reader.File[0]
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	fileBytes, err = io.ReadAll(rc)
	if err != nil {
		return nil, err
	}

	return fileBytes, nil
}

package files

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"book_translator/utils"
)

var (
	ErrInvalidFileName = errors.New("invalid file name")
	ErrNotFound        = errors.New("file not found")
)

// Storage keeps generated artifacts as flat files inside one directory.
type Storage struct {
	dir string
}

func NewStorage(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &Storage{dir: dir}, nil
}

func (s *Storage) Dir() string {
	return s.dir
}

// Save writes data under name. A partially written file is removed.
func (s *Storage) Save(ctx context.Context, data []byte, name string) error {
	op := "Storage.Save"
	rqID := utils.GetRequestIDFromCtx(ctx)

	filePath, err := s.path(name)
	if err != nil {
		return err
	}

	outFile, err := os.Create(filePath)
	if err != nil {
		slog.Error("Create file failed", slog.String("op", op), slog.String("rqID", rqID), slog.String("filename", name), slog.String("err", err.Error()))
		return err
	}

	if _, err = outFile.Write(data); err != nil {
		slog.Error("Write file failed", slog.String("op", op), slog.String("rqID", rqID), slog.String("filename", name), slog.String("err", err.Error()))
		_ = outFile.Close()
		if errDelete := os.Remove(filePath); errDelete != nil {
			slog.Error("failed on delete file", slog.String("op", op), slog.String("filePath", filePath), slog.String("err", errDelete.Error()))
		}
		return err
	}

	return outFile.Close()
}

func (s *Storage) Exists(name string) bool {
	filePath, err := s.path(name)
	if err != nil {
		return false
	}

	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}

func (s *Storage) Open(name string) (io.ReadCloser, error) {
	filePath, err := s.path(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return f, nil
}

// DeleteOldFiles removes regular files whose modification time is older than maxAge.
func (s *Storage) DeleteOldFiles(ctx context.Context, maxAge time.Duration) (deleted int, err error) {
	op := "Storage.DeleteOldFiles"
	rqID := utils.GetRequestIDFromCtx(ctx)

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, err
	}

	threshold := time.Now().Add(-maxAge)

	for _, entry := range entries {
		if ctx.Err() != nil {
			return deleted, ctx.Err()
		}

		if !entry.Type().IsRegular() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().After(threshold) {
			continue
		}

		filePath := filepath.Join(s.dir, entry.Name())
		if err = os.Remove(filePath); err != nil {
			slog.Error("failed on delete file", slog.String("op", op), slog.String("rqID", rqID), slog.String("filePath", filePath), slog.String("err", err.Error()))
			continue
		}
		deleted++
	}

	return deleted, nil
}

// path rejects anything that is not a bare file name so callers cannot escape dir.
func (s *Storage) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
		return "", ErrInvalidFileName
	}
	return filepath.Join(s.dir, name), nil
}

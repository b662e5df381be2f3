package scheduler

import (
	"book_translator/internal/metrics"
	"book_translator/utils"
	"context"
	"log/slog"
	"time"
)

type FilesCleaner interface {
	DeleteOldFiles(ctx context.Context, maxAge time.Duration) (deleted int, err error)
}

// DeleteOldFilesJob removes stored artifacts older than maxAge.
func DeleteOldFilesJob(cleaner FilesCleaner, maxAge time.Duration) JobFunc {
	return func(ctx context.Context) error {
		deleted, err := cleaner.DeleteOldFiles(ctx, maxAge)
		metrics.DeletedAudioFilesTotal.Add(float64(deleted))
		if err != nil {
			return err
		}

		if deleted > 0 {
			slog.Info("old files deleted", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.Int("deleted", deleted))
		}
		return nil
	}
}

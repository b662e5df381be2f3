package audioService

import (
	"book_translator/config"
	"book_translator/internal/metrics"
	"book_translator/internal/model"
	"book_translator/internal/service"
	"book_translator/utils"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -source=audioService.go -destination=mocks/audioService.go -package=mocks

type SpeechSynthesizer interface {
	SynthesizeSpeech(ctx context.Context, text string) ([]byte, error)
}

type FileStorage interface {
	Save(ctx context.Context, data []byte, name string) error
	Exists(name string) bool
	Open(name string) (io.ReadCloser, error)
}

type AudioService struct {
	cfg         *config.Config
	synthesizer SpeechSynthesizer
	storage     FileStorage
}

func New(cfg *config.Config, synthesizer SpeechSynthesizer, storage FileStorage) *AudioService {
	return &AudioService{
		cfg:         cfg,
		synthesizer: synthesizer,
		storage:     storage,
	}
}

// GenerateAudio narrates every segment as source followed by translation and stores the mp3.
// Any failure is logged and reported as ok=false.
func (a *AudioService) GenerateAudio(ctx context.Context, segments []model.TranslationSegment) (fileName string, ok bool) {
	op := "AudioService.GenerateAudio"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if len(segments) == 0 {
		return "", false
	}

	audio, err := a.synthesizer.SynthesizeSpeech(ctx, BuildScript(segments))
	if err != nil {
		slog.Warn("audio synthesis failed", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
		metrics.AudioGenerationsTotal.WithLabelValues("synthesis_failed").Inc()
		return "", false
	}
	if len(audio) == 0 {
		slog.Warn("audio synthesis returned no data", slog.String("op", op), slog.String("rqID", rqID))
		metrics.AudioGenerationsTotal.WithLabelValues("synthesis_failed").Inc()
		return "", false
	}

	fileName = fmt.Sprintf("translation-%s.mp3", uuid.NewString())
	if err = a.storage.Save(ctx, audio, fileName); err != nil {
		slog.Error("failed to store audio", slog.String("op", op), slog.String("rqID", rqID), slog.String("fileName", fileName), slog.String("err", err.Error()))
		metrics.AudioGenerationsTotal.WithLabelValues("store_failed").Inc()
		return "", false
	}

	slog.Info("audio generated", slog.String("op", op), slog.String("rqID", rqID), slog.String("fileName", fileName), slog.Int("bytes", len(audio)))
	metrics.AudioGenerationsTotal.WithLabelValues("success").Inc()

	return fileName, true
}

func (a *AudioService) LoadAudio(ctx context.Context, fileName string) (io.ReadCloser, error) {
	op := "AudioService.LoadAudio"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if !a.storage.Exists(fileName) {
		slog.Debug("audio file not found", slog.String("op", op), slog.String("rqID", rqID), slog.String("fileName", fileName))
		return nil, service.ErrNotFound
	}

	rc, err := a.storage.Open(fileName)
	if err != nil {
		slog.Error("failed to open audio file", slog.String("op", op), slog.String("rqID", rqID), slog.String("fileName", fileName), slog.String("err", err.Error()))
		return nil, fmt.Errorf("open audio file: %w", err)
	}

	return rc, nil
}

func BuildScript(segments []model.TranslationSegment) string {
	blocks := make([]string, 0, len(segments))
	for _, segment := range segments {
		blocks = append(blocks, segment.Source+"\n"+segment.Translated)
	}
	return strings.Join(blocks, "\n\n")
}

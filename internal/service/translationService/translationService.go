package translationService

import (
	"book_translator/config"
	"book_translator/internal/metrics"
	"book_translator/internal/model"
	"book_translator/utils"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
)

//go:generate mockgen -source=translationService.go -destination=mocks/translationService.go -package=mocks

var errEmptyTranslation = errors.New("empty translation")

type Translator interface {
	Translate(ctx context.Context, text string, targetLanguage string) (string, error)
}

type TranslationService struct {
	cfg        *config.Config
	translator Translator
	workerPool *ants.Pool
}

func New(cfg *config.Config, translator Translator, workerPool *ants.Pool) *TranslationService {
	return &TranslationService{
		cfg:        cfg,
		translator: translator,
		workerPool: workerPool,
	}
}

// TranslateSegments translates at most cfg.OpenAI.MaxSentences units (all of them when the
// limit is not positive). A unit that cannot be translated keeps its source text, so the
// result always has one entry per processed unit, ordered by Index.
func (t *TranslationService) TranslateSegments(ctx context.Context, segments []string, targetLanguage string) []model.TranslationSegment {
	op := "TranslationService.TranslateSegments"
	rqID := utils.GetRequestIDFromCtx(ctx)

	count := len(segments)
	if limit := t.cfg.OpenAI.MaxSentences; limit > 0 && limit < count {
		count = limit
	}

	slog.Info(
		"translating segments",
		slog.String("op", op),
		slog.String("rqID", rqID),
		slog.Int("segments", count),
		slog.String("targetLanguage", targetLanguage),
	)

	results := make([]model.TranslationSegment, count)
	wg := sync.WaitGroup{}

	for i := 0; i < count; i++ {
		results[i] = model.TranslationSegment{
			Index:      i + 1,
			Source:     segments[i],
			Translated: segments[i],
		}

		wg.Add(1)
		err := t.workerPool.Submit(func() {
			defer wg.Done()
			results[i].Translated = t.translateSegment(ctx, results[i].Index, segments[i], targetLanguage)
		})
		if err != nil {
			wg.Done()
			t.logFallback(ctx, op, results[i].Index, err)
		}
	}

	wg.Wait()

	return results
}

func (t *TranslationService) translateSegment(ctx context.Context, index int, text string, targetLanguage string) string {
	op := "TranslationService.translateSegment"

	if t.cfg.Translation.SegmentTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.cfg.Translation.SegmentTimeout)
		defer cancel()
	}

	start := time.Now()
	translated, err := t.translator.Translate(ctx, text, targetLanguage)
	metrics.SegmentTranslationDuration.Observe(time.Since(start).Seconds())

	if err == nil && strings.TrimSpace(translated) == "" {
		err = errEmptyTranslation
	}
	if err != nil {
		t.logFallback(ctx, op, index, err)
		return text
	}

	return strings.TrimSpace(translated)
}

func (t *TranslationService) logFallback(ctx context.Context, op string, index int, err error) {
	metrics.TranslationFallbacksTotal.Inc()
	slog.Warn(
		"translation failed, using source text",
		slog.String("op", op),
		slog.String("rqID", utils.GetRequestIDFromCtx(ctx)),
		slog.Int("index", index),
		slog.String("err", err.Error()),
	)
}

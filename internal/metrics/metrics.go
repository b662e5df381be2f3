package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess        = "success"
	OutcomeDownloadFailed = "download_failed"
	OutcomeEmptyContent   = "empty_content"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "book_translator_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	HttpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "book_translator_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})

	PipelineRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "book_translator_pipeline_runs_total",
		Help: "Total number of translation pipeline runs by outcome",
	}, []string{"outcome"})

	TranslationFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "book_translator_translation_fallbacks_total",
		Help: "Segments whose translation failed and fell back to the source text",
	})

	SegmentTranslationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "book_translator_segment_translation_duration_seconds",
		Help:    "Duration of a single segment translation in seconds",
		Buckets: prometheus.DefBuckets,
	})

	AudioGenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "book_translator_audio_generations_total",
		Help: "Total number of audio generation attempts by result",
	}, []string{"result"})

	DeletedAudioFilesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "book_translator_deleted_audio_files_total",
		Help: "Audio artifacts removed by the cleanup job",
	})
)

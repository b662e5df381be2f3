package bookTranslatorService

import (
	"book_translator/config"
	"book_translator/data/cache"
	"book_translator/internal/metrics"
	"book_translator/internal/model"
	"book_translator/internal/segmenter"
	"book_translator/internal/service"
	"book_translator/utils"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

//go:generate mockgen -source=bookTranslatorService.go -destination=mocks/bookTranslatorService.go -package=mocks

type Cache interface {
	GetSearchResults(ctx context.Context, query string) ([]model.BookSummary, error)
	SetSearchResults(ctx context.Context, query string, books []model.BookSummary) error
}

type BooksParser interface {
	SearchBooks(ctx context.Context, query string) ([]model.BookSummary, error)
	DownloadBookText(ctx context.Context, id int64, downloadUrl string) (string, error)
}

type TranslationService interface {
	TranslateSegments(ctx context.Context, segments []string, targetLanguage string) []model.TranslationSegment
}

type AudioService interface {
	GenerateAudio(ctx context.Context, segments []model.TranslationSegment) (fileName string, ok bool)
	LoadAudio(ctx context.Context, fileName string) (io.ReadCloser, error)
}

type BookTranslatorService struct {
	cfg                *config.Config
	cache              Cache
	booksParser        BooksParser
	translationService TranslationService
	audioService       AudioService
}

func New(
	cfg *config.Config,
	cache Cache,
	booksParser BooksParser,
	translationService TranslationService,
	audioService AudioService,
) *BookTranslatorService {
	return &BookTranslatorService{
		cfg:                cfg,
		cache:              cache,
		booksParser:        booksParser,
		translationService: translationService,
		audioService:       audioService,
	}
}

// TranslateBook runs download, segmentation, translation and narration for one book.
// Only ErrDownloadFailed and ErrEmptyContent are returned; every later failure degrades the result.
func (s *BookTranslatorService) TranslateBook(ctx context.Context, request model.TranslationRequest) (model.TranslationResult, error) {
	op := "BookTranslatorService.TranslateBook"
	rqID := utils.GetRequestIDFromCtx(ctx)

	book := model.BookSummary{
		ID:          request.BookID,
		Title:       request.Title,
		Author:      request.Author,
		DownloadURL: request.DownloadURL,
	}
	if strings.TrimSpace(book.Author) == "" {
		book.Author = model.UnknownAuthor
	}

	slog.Info(
		"starting translation",
		slog.String("op", op),
		slog.String("rqID", rqID),
		slog.Int64("bookID", book.ID),
		slog.String("title", book.Title),
		slog.Int("segments", request.Segments),
		slog.String("mode", string(request.Mode)),
	)

	text, err := s.booksParser.DownloadBookText(ctx, request.BookID, request.DownloadURL)
	if err != nil {
		slog.Error("failed to download book text", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
		metrics.PipelineRunsTotal.WithLabelValues(metrics.OutcomeDownloadFailed).Inc()
		return model.TranslationResult{}, fmt.Errorf("%w: %w", service.ErrDownloadFailed, err)
	}

	mode := model.ParseSegmentationMode(string(request.Mode))
	units := segmenter.Segment(text, mode, segmenter.ClampSegments(request.Segments))
	if len(units) == 0 {
		slog.Warn("no content extracted from book", slog.String("op", op), slog.String("rqID", rqID), slog.String("mode", string(mode)))
		metrics.PipelineRunsTotal.WithLabelValues(metrics.OutcomeEmptyContent).Inc()
		return model.TranslationResult{}, service.ErrEmptyContent
	}

	translations := s.translationService.TranslateSegments(ctx, units, s.cfg.Translation.TargetLanguage)

	fileName, ok := s.audioService.GenerateAudio(ctx, translations)
	if !ok {
		fileName = ""
	}

	metrics.PipelineRunsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	slog.Info(
		"translation finished",
		slog.String("op", op),
		slog.String("rqID", rqID),
		slog.Int("segments", len(translations)),
		slog.Bool("hasAudio", ok),
	)

	return model.TranslationResult{
		Book:          book,
		Segments:      translations,
		AudioFileName: fileName,
	}, nil
}

// SearchBooks never fails: catalog errors are logged and reported as no results.
func (s *BookTranslatorService) SearchBooks(ctx context.Context, query string) []model.BookSummary {
	op := "BookTranslatorService.SearchBooks"
	rqID := utils.GetRequestIDFromCtx(ctx)

	query = strings.TrimSpace(query)
	if query == "" {
		return []model.BookSummary{}
	}

	books, err := s.cache.GetSearchResults(ctx, query)
	if err == nil {
		return books
	}
	if !errors.Is(err, cache.ErrNotFound) {
		slog.Warn("cache lookup failed", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
	}

	books, err = s.booksParser.SearchBooks(ctx, query)
	if err != nil {
		slog.Error("book search failed", slog.String("op", op), slog.String("rqID", rqID), slog.String("query", query), slog.String("err", err.Error()))
		return []model.BookSummary{}
	}
	if books == nil {
		books = []model.BookSummary{}
	}

	if err = s.cache.SetSearchResults(ctx, query, books); err != nil {
		slog.Warn("failed to cache search results", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
	}

	return books
}

// GetBooksForPage pages search results, page numbers start at 0.
func (s *BookTranslatorService) GetBooksForPage(ctx context.Context, request model.BookSearchRequest) (model.BooksPage, error) {
	if request.Page < 0 {
		return model.BooksPage{}, service.ErrIncorrectPage
	}

	books := s.SearchBooks(ctx, request.Query)

	perPage := s.cfg.BooksPerPage
	if perPage <= 0 {
		perPage = len(books)
	}

	from := request.Page * perPage
	if len(books) == 0 || from >= len(books) {
		return model.BooksPage{}, service.ErrNotFound
	}
	to := min(from+perPage, len(books))

	return model.BooksPage{
		Books:       books[from:to],
		HasNextPage: to < len(books),
		Page:        request.Page,
		Query:       request.Query,
	}, nil
}

func (s *BookTranslatorService) FindBook(ctx context.Context, query string, id int64) (model.BookSummary, error) {
	for _, book := range s.SearchBooks(ctx, query) {
		if book.ID == id {
			return book, nil
		}
	}
	return model.BookSummary{}, service.ErrNotFound
}

func (s *BookTranslatorService) LoadAudio(ctx context.Context, fileName string) (io.ReadCloser, error) {
	return s.audioService.LoadAudio(ctx, fileName)
}

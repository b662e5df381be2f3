package parser

import (
	"book_translator/config"
	"book_translator/internal/model"
	"book_translator/utils"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/gocolly/colly/v2"
)

// formatPriorities lists gutendex format keys in order of preference.
var formatPriorities = []string{
	"text/plain; charset=utf-8",
	"text/plain; charset=us-ascii",
	"text/plain",
	"text/html",
	"application/octet-stream",
}

var ErrEmptyText = errors.New("downloaded text is empty")

type Downloader interface {
	Download(ctx context.Context, url string) (fileBytes []byte, contentType string, err error)
}

type gutendexResponse struct {
	Count   int            `json:"count"`
	Results []gutendexBook `json:"results"`
}

type gutendexBook struct {
	ID      int64             `json:"id"`
	Title   string            `json:"title"`
	Authors []gutendexAuthor  `json:"authors"`
	Formats map[string]string `json:"formats"`
}

type gutendexAuthor struct {
	Name string `json:"name"`
}

type GutendexParser struct {
	cfg        *config.Config
	downloader Downloader
}

func NewGutendexParser(cfg *config.Config, downloader Downloader) *GutendexParser {
	return &GutendexParser{cfg: cfg, downloader: downloader}
}

func (p *GutendexParser) getCollector() (*colly.Collector, error) {
	op := "GutendexParser.getCollector"
	c := colly.NewCollector()

	if p.cfg.BookSource.RequestTimeout > 0 {
		c.SetRequestTimeout(p.cfg.BookSource.RequestTimeout)
	}

	if p.cfg.ProxyUrl != "" {
		err := c.SetProxy(p.cfg.ProxyUrl)
		if err != nil {
			slog.Error(
				"Failed to set proxy",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return nil, err
		}
	}

	return c, nil
}

func (p *GutendexParser) SearchBooks(ctx context.Context, query string) (books []model.BookSummary, err error) {
	op := "GutendexParser.SearchBooks"
	rqID := utils.GetRequestIDFromCtx(ctx)

	c, err := p.getCollector()
	if err != nil {
		return nil, err
	}

	var parseErr error
	c.OnResponse(func(r *colly.Response) {
		var resp gutendexResponse
		if err := json.Unmarshal(r.Body, &resp); err != nil {
			parseErr = fmt.Errorf("unmarshal search response: %w", err)
			return
		}

		books = make([]model.BookSummary, 0, len(resp.Results))
		for _, b := range resp.Results {
			books = append(books, toBookSummary(b))
		}
	})

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept", "application/json")
		slog.Info("Visiting", slog.String("op", op), slog.String("rqID", rqID), slog.String("url", r.URL.String()))
	})

	params := url.Values{}
	params.Set("search", query)
	fullURL := p.cfg.BookSource.SearchUrl + "?" + params.Encode()

	err = c.Visit(fullURL)
	if err != nil {
		slog.Error(
			"Error while visiting url",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("url", fullURL),
			slog.String("err", err.Error()),
		)
		return nil, err
	}

	if parseErr != nil {
		slog.Error("Error parsing search response", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", parseErr.Error()))
		return nil, parseErr
	}

	return books, nil
}

// DownloadBookText downloads a book and returns it as plain text.
// An empty downloadUrl falls back to the catalog's plain text URL for id.
func (p *GutendexParser) DownloadBookText(ctx context.Context, id int64, downloadUrl string) (string, error) {
	op := "GutendexParser.DownloadBookText"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if strings.TrimSpace(downloadUrl) == "" {
		downloadUrl = fmt.Sprintf(p.cfg.BookSource.TextUrlTemplate, id)
	}

	payload, contentType, err := p.downloader.Download(ctx, downloadUrl)
	if err != nil {
		slog.Error(
			"Failed to download book",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.Int64("bookID", id),
			slog.String("url", downloadUrl),
			slog.String("err", err.Error()),
		)
		return "", fmt.Errorf("download book %d: %w", id, err)
	}

	if len(payload) == 0 {
		slog.Error("Downloaded book is empty", slog.String("op", op), slog.String("rqID", rqID), slog.Int64("bookID", id), slog.String("url", downloadUrl))
		return "", ErrEmptyText
	}

	text, err := decodeCharset(payload, contentType)
	if err != nil {
		slog.Error("Failed to decode book payload", slog.String("op", op), slog.String("rqID", rqID), slog.Int64("bookID", id), slog.String("err", err.Error()))
		return "", fmt.Errorf("decode book %d: %w", id, err)
	}

	return cleanPayload(text), nil
}

func toBookSummary(b gutendexBook) model.BookSummary {
	author := model.UnknownAuthor
	if len(b.Authors) > 0 && b.Authors[0].Name != "" {
		author = b.Authors[0].Name
	}

	return model.BookSummary{
		ID:          b.ID,
		Title:       b.Title,
		Author:      author,
		DownloadURL: firstAvailableTextUrl(b.Formats),
	}
}

func firstAvailableTextUrl(formats map[string]string) string {
	for _, format := range formatPriorities {
		if link, ok := formats[format]; ok && link != "" {
			return link
		}
	}
	return ""
}

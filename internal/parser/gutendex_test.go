package parser

import (
	"book_translator/config"
	"book_translator/internal/downloader"
	"book_translator/internal/model"
	"context"
	"testing"
	"time"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type gutendexParserSuite struct {
	suite.Suite

	cfg    *config.Config
	parser *GutendexParser
}

func TestGutendexParserSuite(t *testing.T) {
	suite.Run(t, new(gutendexParserSuite))
}

func (s *gutendexParserSuite) SetupSuite() {
	s.cfg = &config.Config{
		BookSource: config.BookSource{
			SearchUrl:       "https://test.com/books",
			TextUrlTemplate: "https://files.test.com/ebooks/%d.txt.utf-8",
			RequestTimeout:  5 * time.Second,
		},
	}
}

func (s *gutendexParserSuite) SetupTest() {
	fileDownloader, err := downloader.NewFileDownloader(5*time.Second, "")
	s.Require().NoError(err)
	s.parser = NewGutendexParser(s.cfg, fileDownloader)
}

func (s *gutendexParserSuite) Test_SearchBooks_Success() {
	defer gock.Off()

	gock.New("https://test.com").
		Get("/books").
		MatchParam("search", "pride").
		Reply(200).
		JSON(searchSuccessResponse)

	expected := []model.BookSummary{
		{
			ID:          1342,
			Title:       "Pride and Prejudice",
			Author:      "Austen, Jane",
			DownloadURL: "https://www.gutenberg.org/ebooks/1342.txt.utf-8",
		},
		{
			ID:          42671,
			Title:       "Pride and Prejudice (Illustrated)",
			Author:      model.UnknownAuthor,
			DownloadURL: "https://www.gutenberg.org/ebooks/42671.html.images",
		},
		{
			ID:     99999,
			Title:  "Pride, a pamphlet",
			Author: "Anonymous",
		},
	}

	res, err := s.parser.SearchBooks(context.Background(), "pride")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), expected, res)
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *gutendexParserSuite) Test_SearchBooks_NoResults() {
	defer gock.Off()

	gock.New("https://test.com").
		Get("/books").
		MatchParam("search", "zzz").
		Reply(200).
		JSON(map[string]any{"count": 0, "results": []any{}})

	res, err := s.parser.SearchBooks(context.Background(), "zzz")

	assert.Nil(s.T(), err)
	assert.Empty(s.T(), res)
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *gutendexParserSuite) Test_SearchBooks_ServerErr() {
	defer gock.Off()

	gock.New("https://test.com").
		Get("/books").
		MatchParam("search", "pride").
		Reply(502)

	_, err := s.parser.SearchBooks(context.Background(), "pride")

	assert.EqualError(s.T(), err, "Bad Gateway")
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *gutendexParserSuite) Test_SearchBooks_BrokenJSON() {
	defer gock.Off()

	gock.New("https://test.com").
		Get("/books").
		MatchParam("search", "pride").
		Reply(200).
		BodyString("{not json")

	_, err := s.parser.SearchBooks(context.Background(), "pride")

	assert.NotNil(s.T(), err)
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *gutendexParserSuite) Test_DownloadBookText_PlainText() {
	defer gock.Off()

	text := "Chapter 1\n\n  It is a truth universally acknowledged.  \n"

	gock.New("https://www.gutenberg.org").
		Get("/ebooks/1342.txt.utf-8").
		Reply(200).
		SetHeader("Content-Type", "text/plain; charset=utf-8").
		BodyString(text)

	res, err := s.parser.DownloadBookText(context.Background(), 1342, "https://www.gutenberg.org/ebooks/1342.txt.utf-8")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), text, res)
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *gutendexParserSuite) Test_DownloadBookText_FallbackUrl() {
	defer gock.Off()

	gock.New("https://files.test.com").
		Get("/ebooks/84.txt.utf-8").
		Reply(200).
		SetHeader("Content-Type", "text/plain").
		BodyString("You will rejoice to hear.")

	res, err := s.parser.DownloadBookText(context.Background(), 84, "")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "You will rejoice to hear.", res)
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *gutendexParserSuite) Test_DownloadBookText_Html() {
	defer gock.Off()

	gock.New("https://www.gutenberg.org").
		Get("/ebooks/42671.html.images").
		Reply(200).
		SetHeader("Content-Type", "text/html; charset=utf-8").
		BodyString("<html><body>\n<h1>Chapter I</h1>\n<p>Hello&nbsp;world &amp; friends</p>\n<p>Bye</p>\n</body></html>")

	res, err := s.parser.DownloadBookText(context.Background(), 42671, "https://www.gutenberg.org/ebooks/42671.html.images")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "Chapter I Hello world & friends Bye", res)
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *gutendexParserSuite) Test_DownloadBookText_Latin1() {
	defer gock.Off()

	gock.New("https://www.gutenberg.org").
		Get("/ebooks/17989.txt").
		Reply(200).
		SetHeader("Content-Type", "text/plain; charset=iso-8859-1").
		BodyString("caf\xe9")

	res, err := s.parser.DownloadBookText(context.Background(), 17989, "https://www.gutenberg.org/ebooks/17989.txt")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "café", res)
}

func (s *gutendexParserSuite) Test_DownloadBookText_NotFound() {
	defer gock.Off()

	gock.New("https://www.gutenberg.org").
		Get("/ebooks/1.txt").
		Reply(404)

	_, err := s.parser.DownloadBookText(context.Background(), 1, "https://www.gutenberg.org/ebooks/1.txt")

	assert.NotNil(s.T(), err)
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *gutendexParserSuite) Test_DownloadBookText_EmptyBody() {
	defer gock.Off()

	gock.New("https://www.gutenberg.org").
		Get("/ebooks/2.txt").
		Reply(200)

	_, err := s.parser.DownloadBookText(context.Background(), 2, "https://www.gutenberg.org/ebooks/2.txt")

	assert.ErrorIs(s.T(), err, ErrEmptyText)
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *gutendexParserSuite) Test_DownloadBookText_WhitespaceBody() {
	defer gock.Off()

	gock.New("https://www.gutenberg.org").
		Get("/ebooks/3.txt").
		Reply(200).
		BodyString("   \n ")

	res, err := s.parser.DownloadBookText(context.Background(), 3, "https://www.gutenberg.org/ebooks/3.txt")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "   \n ", res)
}

func (s *gutendexParserSuite) Test_DownloadBookText_HtmlWithoutText() {
	defer gock.Off()

	gock.New("https://www.gutenberg.org").
		Get("/ebooks/4.html.images").
		Reply(200).
		SetHeader("Content-Type", "text/html; charset=utf-8").
		BodyString(`<html><body><img src="a.png"/>&nbsp;</body></html>`)

	res, err := s.parser.DownloadBookText(context.Background(), 4, "https://www.gutenberg.org/ebooks/4.html.images")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "", res)
	assert.Equal(s.T(), true, gock.IsDone())
}

var searchSuccessResponse = map[string]any{
	"count": 3,
	"next":  nil,
	"results": []map[string]any{
		{
			"id":      1342,
			"title":   "Pride and Prejudice",
			"authors": []map[string]any{{"name": "Austen, Jane", "birth_year": 1775, "death_year": 1817}},
			"formats": map[string]string{
				"text/html":                 "https://www.gutenberg.org/ebooks/1342.html.images",
				"text/plain; charset=utf-8": "https://www.gutenberg.org/ebooks/1342.txt.utf-8",
				"image/jpeg":                "https://www.gutenberg.org/cache/epub/1342/pg1342.cover.medium.jpg",
			},
		},
		{
			"id":      42671,
			"title":   "Pride and Prejudice (Illustrated)",
			"authors": []map[string]any{},
			"formats": map[string]string{
				"application/epub+zip": "https://www.gutenberg.org/ebooks/42671.epub3.images",
				"text/html":            "https://www.gutenberg.org/ebooks/42671.html.images",
			},
		},
		{
			"id":      99999,
			"title":   "Pride, a pamphlet",
			"authors": []map[string]any{{"name": "Anonymous"}},
			"formats": map[string]string{},
		},
	},
}

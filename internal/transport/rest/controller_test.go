package rest

import (
	"book_translator/config"
	"book_translator/internal/model"
	"book_translator/internal/service"
	"book_translator/internal/transport/rest/middleware"
	"book_translator/internal/transport/rest/mocks"
	"book_translator/utils"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type controllerSuite struct {
	suite.Suite

	mockCtrl *gomock.Controller
	service  *mocks.MockBookTranslatorService
	router   *gin.Engine
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(controllerSuite))
}

func (s *controllerSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *controllerSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.service = mocks.NewMockBookTranslatorService(s.mockCtrl)
	s.router = NewRouter(&config.Config{Env: "local"}, NewController(s.service))
}

func (s *controllerSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *controllerSuite) Test_SearchBooks_Success() {
	books := []model.BookSummary{{ID: 1342, Title: "Pride and Prejudice", Author: "Austen, Jane"}}

	s.service.EXPECT().
		SearchBooks(gomock.Any(), "pride").
		Return(books)

	rec := s.do(http.MethodGet, "/api/books?title=pride", "")

	assert.Equal(s.T(), http.StatusOK, rec.Code)
	assert.JSONEq(s.T(), `{"query":"pride","books":[{"id":1342,"title":"Pride and Prejudice","author":"Austen, Jane"}]}`, rec.Body.String())
	assert.NotEmpty(s.T(), rec.Header().Get(middleware.RequestIDHeader))
}

func (s *controllerSuite) Test_SearchBooks_TitleRequired() {
	rec := s.do(http.MethodGet, "/api/books?title=%20", "")

	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
}

func (s *controllerSuite) Test_SearchBooks_PropagatesRequestID() {
	s.service.EXPECT().
		SearchBooks(gomock.Any(), "emma").
		DoAndReturn(func(ctx context.Context, query string) []model.BookSummary {
			assert.Equal(s.T(), "rq-1", utils.GetRequestIDFromCtx(ctx))
			return []model.BookSummary{}
		})

	req := httptest.NewRequest(http.MethodGet, "/api/books?title=emma", nil)
	req.Header.Set(middleware.RequestIDHeader, "rq-1")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	assert.Equal(s.T(), http.StatusOK, rec.Code)
	assert.Equal(s.T(), "rq-1", rec.Header().Get(middleware.RequestIDHeader))
}

func (s *controllerSuite) Test_CreateTranslation_Success() {
	request := model.TranslationRequest{
		BookID:      1342,
		DownloadURL: "https://www.gutenberg.org/ebooks/1342.txt.utf-8",
		Title:       "Pride and Prejudice",
		Author:      "Austen, Jane",
		Segments:    model.DefaultSegments,
		Mode:        model.ModeChapters,
	}
	result := model.TranslationResult{
		Book:          model.BookSummary{ID: 1342, Title: "Pride and Prejudice", Author: "Austen, Jane"},
		Segments:      []model.TranslationSegment{{Index: 1, Source: "Hello.", Translated: "Hola."}},
		AudioFileName: "translation-1.mp3",
	}

	s.service.EXPECT().
		TranslateBook(gomock.Any(), request).
		Return(result, nil)

	body := `{"bookId":1342,"downloadUrl":"https://www.gutenberg.org/ebooks/1342.txt.utf-8","title":"Pride and Prejudice","author":"Austen, Jane","segmentationMode":"Chapters"}`
	rec := s.do(http.MethodPost, "/api/translations", body)

	assert.Equal(s.T(), http.StatusOK, rec.Code)

	var resp map[string]any
	assert.Nil(s.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(s.T(), "/audio/translation-1.mp3", resp["audioUrl"])
	assert.Equal(s.T(), "/audio/translation-1.mp3/download", resp["downloadUrl"])
	assert.Len(s.T(), resp["segments"], 1)
}

func (s *controllerSuite) Test_CreateTranslation_Errors() {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{fmt.Errorf("%w: %w", service.ErrDownloadFailed, errors.New("Not Found")), http.StatusBadGateway, downloadFailedMsg},
		{service.ErrEmptyContent, http.StatusUnprocessableEntity, emptyContentMsg},
		{errors.New("boom"), http.StatusInternalServerError, internalErrMsg},
	}

	for _, tc := range cases {
		s.service.EXPECT().
			TranslateBook(gomock.Any(), model.TranslationRequest{BookID: 7, Segments: 3, Mode: model.ModeSentences}).
			Return(model.TranslationResult{}, tc.err)

		rec := s.do(http.MethodPost, "/api/translations", `{"bookId":7,"segments":3}`)

		assert.Equal(s.T(), tc.code, rec.Code)
		assert.JSONEq(s.T(), fmt.Sprintf(`{"error":%q}`, tc.msg), rec.Body.String())
	}
}

func (s *controllerSuite) Test_CreateTranslation_ClampsSegments() {
	cases := []struct {
		body     string
		segments int
	}{
		{`{"bookId":7,"segments":-5}`, 1},
		{`{"bookId":7,"segments":1000}`, 200},
	}

	for _, tc := range cases {
		s.service.EXPECT().
			TranslateBook(gomock.Any(), model.TranslationRequest{BookID: 7, Segments: tc.segments, Mode: model.ModeSentences}).
			Return(model.TranslationResult{}, nil)

		rec := s.do(http.MethodPost, "/api/translations", tc.body)

		assert.Equal(s.T(), http.StatusOK, rec.Code, tc.body)
	}
}

func (s *controllerSuite) Test_CreateTranslation_BadRequest() {
	rec := s.do(http.MethodPost, "/api/translations", `{"title":"no id"}`)
	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/translations", `{not json`)
	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
}

func (s *controllerSuite) Test_StreamAudio() {
	s.service.EXPECT().
		LoadAudio(gomock.Any(), "translation-1.mp3").
		Return(io.NopCloser(strings.NewReader("mp3 data")), nil)

	rec := s.do(http.MethodGet, "/audio/translation-1.mp3", "")

	assert.Equal(s.T(), http.StatusOK, rec.Code)
	assert.Equal(s.T(), "audio/mpeg", rec.Header().Get("Content-Type"))
	assert.Equal(s.T(), `inline; filename="translation-1.mp3"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(s.T(), "mp3 data", rec.Body.String())
}

func (s *controllerSuite) Test_DownloadAudio() {
	s.service.EXPECT().
		LoadAudio(gomock.Any(), "translation-1.mp3").
		Return(io.NopCloser(strings.NewReader("mp3 data")), nil)

	rec := s.do(http.MethodGet, "/audio/translation-1.mp3/download", "")

	assert.Equal(s.T(), http.StatusOK, rec.Code)
	assert.Equal(s.T(), "application/octet-stream", rec.Header().Get("Content-Type"))
	assert.Equal(s.T(), `attachment; filename="translation-1.mp3"`, rec.Header().Get("Content-Disposition"))
}

func (s *controllerSuite) Test_StreamAudio_NotFound() {
	s.service.EXPECT().
		LoadAudio(gomock.Any(), "missing.mp3").
		Return(nil, service.ErrNotFound)

	rec := s.do(http.MethodGet, "/audio/missing.mp3", "")

	assert.Equal(s.T(), http.StatusNotFound, rec.Code)
}

func (s *controllerSuite) Test_Metrics() {
	rec := s.do(http.MethodGet, "/metrics", "")

	assert.Equal(s.T(), http.StatusOK, rec.Code)
	assert.Contains(s.T(), rec.Body.String(), "book_translator_translation_fallbacks_total")
}

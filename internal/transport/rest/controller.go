package rest

import (
	"book_translator/internal/model"
	"book_translator/internal/segmenter"
	"book_translator/internal/service"
	"book_translator/internal/transport/rest/dto"
	"book_translator/utils"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=controller.go -destination=mocks/controller.go -package=mocks

const (
	downloadFailedMsg = "Unable to download the selected book. Please try another title."
	emptyContentMsg   = "No content extracted from book for translation."
	titleRequiredMsg  = "title query parameter is required"
	audioNotFoundMsg  = "audio file not found"
	internalErrMsg    = "internal error"
)

type BookTranslatorService interface {
	SearchBooks(ctx context.Context, query string) []model.BookSummary
	TranslateBook(ctx context.Context, request model.TranslationRequest) (model.TranslationResult, error)
	LoadAudio(ctx context.Context, fileName string) (io.ReadCloser, error)
}

type Controller struct {
	bookTranslatorService BookTranslatorService
}

func NewController(bookTranslatorService BookTranslatorService) *Controller {
	return &Controller{bookTranslatorService: bookTranslatorService}
}

func (ctrl *Controller) RegisterRoutes(g *gin.Engine) {
	api := g.Group("/api")
	api.GET("/books", ctrl.SearchBooks)
	api.POST("/translations", ctrl.CreateTranslation)

	g.GET("/audio/:fileName", ctrl.StreamAudio)
	g.GET("/audio/:fileName/download", ctrl.DownloadAudio)
}

func (ctrl *Controller) SearchBooks(c *gin.Context) {
	title := strings.TrimSpace(c.Query("title"))
	if title == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: titleRequiredMsg})
		return
	}

	books := ctrl.bookTranslatorService.SearchBooks(c.Request.Context(), title)

	c.JSON(http.StatusOK, dto.SearchBooksResponse{Query: title, Books: books})
}

func (ctrl *Controller) CreateTranslation(c *gin.Context) {
	op := "Controller.CreateTranslation"
	ctx := c.Request.Context()
	rqID := utils.GetRequestIDFromCtx(ctx)

	var req dto.CreateTranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	segments := req.Segments
	if segments == 0 {
		segments = model.DefaultSegments
	}
	segments = segmenter.ClampSegments(segments)

	result, err := ctrl.bookTranslatorService.TranslateBook(ctx, model.TranslationRequest{
		BookID:      req.BookID,
		DownloadURL: strings.TrimSpace(req.DownloadURL),
		Title:       req.Title,
		Author:      req.Author,
		Segments:    segments,
		Mode:        model.ParseSegmentationMode(req.SegmentationMode),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDownloadFailed):
			c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: downloadFailedMsg})
		case errors.Is(err, service.ErrEmptyContent):
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: emptyContentMsg})
		default:
			slog.Error("got error from bookTranslatorService.TranslateBook", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: internalErrMsg})
		}
		return
	}

	resp := dto.CreateTranslationResponse{
		Book:          result.Book,
		Segments:      result.Segments,
		AudioFileName: result.AudioFileName,
	}
	if result.HasAudio() {
		resp.AudioURL = "/audio/" + result.AudioFileName
		resp.DownloadURL = resp.AudioURL + "/download"
	}

	c.JSON(http.StatusOK, resp)
}

func (ctrl *Controller) StreamAudio(c *gin.Context) {
	ctrl.serveAudio(c, "audio/mpeg", "inline")
}

func (ctrl *Controller) DownloadAudio(c *gin.Context) {
	ctrl.serveAudio(c, "application/octet-stream", "attachment")
}

func (ctrl *Controller) serveAudio(c *gin.Context, contentType string, disposition string) {
	op := "Controller.serveAudio"
	ctx := c.Request.Context()
	rqID := utils.GetRequestIDFromCtx(ctx)
	fileName := c.Param("fileName")

	rc, err := ctrl.bookTranslatorService.LoadAudio(ctx, fileName)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: audioNotFoundMsg})
			return
		}
		slog.Error("got error from bookTranslatorService.LoadAudio", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: internalErrMsg})
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, -1, contentType, rc, map[string]string{
		"Content-Disposition": fmt.Sprintf("%s; filename=%q", disposition, fileName),
	})
}

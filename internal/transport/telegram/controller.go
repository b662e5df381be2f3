package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"book_translator/config"
	"book_translator/data/session"
	"book_translator/internal/converter/telebotConverter"
	"book_translator/internal/model"
	"book_translator/internal/model/tg/tgCallback"
	"book_translator/internal/segmenter"
	"book_translator/internal/service"
	"book_translator/utils"

	tele "gopkg.in/telebot.v4"
)

type BookTranslatorService interface {
	GetBooksForPage(ctx context.Context, request model.BookSearchRequest) (booksPage model.BooksPage, err error)
	FindBook(ctx context.Context, query string, id int64) (model.BookSummary, error)
	TranslateBook(ctx context.Context, request model.TranslationRequest) (model.TranslationResult, error)
	LoadAudio(ctx context.Context, fileName string) (io.ReadCloser, error)
}

type Session interface {
	GetSession(ctx context.Context, chatID int64) (model.Session, error)
	SetSession(ctx context.Context, chatID int64, session model.Session) error
	GetBookSearchRequest(ctx context.Context, chatID int64, msgID int) (request model.BookSearchRequest, err error)
	SetBookSearchRequest(ctx context.Context, chatID int64, msgID int, request model.BookSearchRequest) error
}

type Controller struct {
	cfg                   *config.Config
	session               Session
	bookTranslatorService BookTranslatorService
}

func NewController(cfg *config.Config, bookTranslatorService BookTranslatorService, session Session) *Controller {
	return &Controller{
		cfg:                   cfg,
		bookTranslatorService: bookTranslatorService,
		session:               session,
	}
}

func (ctrl *Controller) getSessionFromTeleCtxOrStorage(ctx context.Context, c tele.Context) (model.Session, error) {
	op := "Controller.getSessionFromTeleCtxOrStorage"
	chatSession, ok := c.Get("session").(model.Session)
	if ok {
		return chatSession, nil
	}

	rqID := utils.GetRequestIDFromCtx(ctx)
	chatSession, err := ctrl.session.GetSession(ctx, c.Chat().ID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return model.Session{}, nil
		}
		slog.Error("got error from session.GetSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.Session{}, err
	}
	return chatSession, nil
}

func (ctrl *Controller) sendAutoDeleteMsg(c tele.Context, text string) error {
	msg, err := c.Bot().Send(c.Chat(), text)
	if err != nil {
		return err
	}

	time.AfterFunc(5*time.Second, func() {
		_ = c.Bot().Delete(msg)
	})
	return nil
}

func (ctrl *Controller) Start(c tele.Context) error {
	return c.Reply(startMsg)
}

func (ctrl *Controller) Help(c tele.Context) error {
	return c.Reply(helpMsg)
}

func (ctrl *Controller) InitSetSegments(c tele.Context) error {
	op := "Controller.InitSetSegments"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	chatSession, err := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	chatSession.Action = model.ExpectingSegmentCount
	if err = ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		slog.Error("got error from session.SetSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send(telebotConverter.SegmentsPrompt(chatSession.SegmentsOrDefault()))
}

func (ctrl *Controller) ProcessSegmentCount(c tele.Context) error {
	op := "Controller.ProcessSegmentCount"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	segments, err := strconv.Atoi(strings.TrimSpace(c.Message().Text))
	if err != nil || segments < segmenter.MinSegments || segments > segmenter.MaxSegments {
		return c.Send(invalidSegmentsMsg)
	}

	chatSession, err := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	chatSession.Segments = segments
	chatSession.Action = model.DefaultAction
	if err = ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		slog.Error("got error from session.SetSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send(telebotConverter.SegmentsSaved(segments))
}

func (ctrl *Controller) ProcessEnteredTitle(c tele.Context) error {
	op := "Controller.ProcessEnteredTitle"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	request := model.BookSearchRequest{
		Query: strings.TrimSpace(c.Message().Text),
		Page:  0,
	}

	booksPage, err := ctrl.bookTranslatorService.GetBooksForPage(ctx, request)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			slog.Warn("books not found", slog.String("rqID", rqID), slog.String("op", op), slog.String("query", request.Query))
			return c.Send(telebotConverter.BooksNotFound(request.Query))
		}
		slog.Error("got error from bookTranslatorService.GetBooksForPage", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return c.Send(internalErrMsg)
	}

	text, markup := telebotConverter.BooksPage(booksPage, ctrl.cfg.BooksPerPage)

	msg, err := c.Bot().Send(c.Recipient(), text, markup)
	if err == nil {
		go ctrl.session.SetBookSearchRequest(context.WithoutCancel(ctx), c.Chat().ID, msg.ID, request)
	}

	return err
}

func (ctrl *Controller) ProcessToBooksPage(c tele.Context) error {
	op := "Controller.ProcessToBooksPage"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	pageStr := strings.TrimPrefix(c.Callback().Data, fmt.Sprintf("\f%s", tgCallback.ToBooksPage))
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		slog.Error(
			"error while converting page from callback",
			slog.String("rqID", rqID),
			slog.String("op", op),
			slog.String("err", err.Error()),
			slog.String("pageStr", pageStr),
		)
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	request, ok := ctrl.getBookSearchRequest(ctx, c)
	if !ok {
		return nil
	}

	request.Page = page

	booksPage, err := ctrl.bookTranslatorService.GetBooksForPage(ctx, request)
	if err != nil {
		return ctrl.handleBooksPageErr(ctx, c, op, request, err)
	}

	go ctrl.session.SetBookSearchRequest(context.WithoutCancel(ctx), c.Chat().ID, c.Message().ID, request)

	return c.Edit(telebotConverter.BooksPage(booksPage, ctrl.cfg.BooksPerPage))
}

func (ctrl *Controller) ProcessToBookDetails(c tele.Context) error {
	op := "Controller.ProcessToBookDetails"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	idStr := strings.TrimPrefix(c.Callback().Data, fmt.Sprintf("\f%s", tgCallback.ToBookDetails))
	bookID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		slog.Error("error while converting book id from callback", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	request, ok := ctrl.getBookSearchRequest(ctx, c)
	if !ok {
		return nil
	}

	book, err := ctrl.bookTranslatorService.FindBook(ctx, request.Query, bookID)
	if err != nil {
		slog.Warn("got error from bookTranslatorService.FindBook", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, booksNotFound)
	}

	chatSession, err := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Edit(telebotConverter.BookDetails(book, chatSession.SegmentsOrDefault()))
}

func (ctrl *Controller) BackToBooksPage(c tele.Context) error {
	op := "Controller.BackToBooksPage"
	ctx := utils.CreateCtxWithRqID(c)

	request, ok := ctrl.getBookSearchRequest(ctx, c)
	if !ok {
		return nil
	}

	booksPage, err := ctrl.bookTranslatorService.GetBooksForPage(ctx, request)
	if err != nil {
		return ctrl.handleBooksPageErr(ctx, c, op, request, err)
	}

	return c.Edit(telebotConverter.BooksPage(booksPage, ctrl.cfg.BooksPerPage))
}

func (ctrl *Controller) TranslateBook(c tele.Context) error {
	op := "Controller.TranslateBook"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	mode, bookID, err := telebotConverter.ParseTranslateData(c.Callback().Data)
	if err != nil {
		slog.Error("error while parsing translate callback", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	request, ok := ctrl.getBookSearchRequest(ctx, c)
	if !ok {
		return nil
	}

	book, err := ctrl.bookTranslatorService.FindBook(ctx, request.Query, bookID)
	if err != nil {
		slog.Warn("got error from bookTranslatorService.FindBook", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, booksNotFound)
	}

	chatSession, err := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	_ = c.Respond()
	if err = c.Send(startTranslating); err != nil {
		return err
	}

	result, err := ctrl.bookTranslatorService.TranslateBook(ctx, model.TranslationRequest{
		BookID:      book.ID,
		DownloadURL: book.DownloadURL,
		Title:       book.Title,
		Author:      book.Author,
		Segments:    chatSession.SegmentsOrDefault(),
		Mode:        mode,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDownloadFailed):
			return c.Send(downloadFailedMsg)
		case errors.Is(err, service.ErrEmptyContent):
			return c.Send(emptyContentMsg)
		default:
			slog.Error("got error from bookTranslatorService.TranslateBook", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
			return c.Send(internalErrMsg)
		}
	}

	for _, text := range telebotConverter.TranslationMessages(result) {
		if err = c.Send(text); err != nil {
			return err
		}
	}

	if !result.HasAudio() {
		return c.Send(audioUnavailableMsg)
	}

	return ctrl.sendAudio(ctx, c, result)
}

func (ctrl *Controller) sendAudio(ctx context.Context, c tele.Context, result model.TranslationResult) error {
	op := "Controller.sendAudio"
	rqID := utils.GetRequestIDFromCtx(ctx)

	rc, err := ctrl.bookTranslatorService.LoadAudio(ctx, result.AudioFileName)
	if err != nil {
		slog.Error("got error from bookTranslatorService.LoadAudio", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return c.Send(audioUnavailableMsg)
	}
	defer rc.Close()

	audio := &tele.Audio{
		File:      tele.FromReader(rc),
		FileName:  result.AudioFileName,
		MIME:      "audio/mpeg",
		Title:     result.Book.Title,
		Performer: result.Book.Author,
	}

	return c.Send(audio)
}

func (ctrl *Controller) getBookSearchRequest(ctx context.Context, c tele.Context) (model.BookSearchRequest, bool) {
	op := "Controller.getBookSearchRequest"
	rqID := utils.GetRequestIDFromCtx(ctx)

	request, err := ctrl.session.GetBookSearchRequest(ctx, c.Chat().ID, c.Message().ID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			_ = ctrl.sendAutoDeleteMsg(c, requestTooOld)
			return model.BookSearchRequest{}, false
		}
		slog.Error("got error from session.GetBookSearchRequest", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		_ = ctrl.sendAutoDeleteMsg(c, internalErrMsg)
		return model.BookSearchRequest{}, false
	}

	return request, true
}

func (ctrl *Controller) handleBooksPageErr(ctx context.Context, c tele.Context, op string, request model.BookSearchRequest, err error) error {
	rqID := utils.GetRequestIDFromCtx(ctx)

	if errors.Is(err, service.ErrNotFound) {
		slog.Warn(
			"books not found",
			slog.String("rqID", rqID),
			slog.String("op", op),
			slog.String("err", err.Error()),
			slog.String("query", request.Query),
		)
		return ctrl.sendAutoDeleteMsg(c, booksNotFound)
	}
	slog.Error("got error from bookTranslatorService.GetBooksForPage", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
	return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
}

package tgbot

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"book_translator/config"
	"book_translator/data/session"
	"book_translator/internal/model"
	"book_translator/internal/model/tg/tgCallback"
	"book_translator/internal/transport/telegram"
	customMW "book_translator/internal/transport/telegram/middleware"
	"book_translator/utils"

	tele "gopkg.in/telebot.v4"
	"gopkg.in/telebot.v4/middleware"
)

type Session interface {
	GetSession(ctx context.Context, chatID int64) (model.Session, error)
}

type TGBot struct {
	bot     *tele.Bot
	ctrl    *telegram.Controller
	session Session
}

func New(cfg *config.Config, ctrl *telegram.Controller, session Session) (*TGBot, error) {
	settings := tele.Settings{
		Token:  cfg.Telegram.Token,
		Poller: &tele.LongPoller{Timeout: cfg.Telegram.UpdTimeout},
		OnError: func(err error, c tele.Context) {
			slog.Error("telebot error", slog.String("err", err.Error()))
		},
	}

	b, err := tele.NewBot(settings)
	if err != nil {
		slog.Error("error while tele.NewBot", slog.String("err", err.Error()))
		return nil, err
	}

	return &TGBot{bot: b, ctrl: ctrl, session: session}, nil
}

func (b *TGBot) Start() {
	b.bot.Use(middleware.Recover(), customMW.Logger())

	b.setupRoutes()

	go b.bot.Start()
	slog.Info("tgbot started!")
}

func (b *TGBot) Stop() {
	slog.Info("start stopping tgbot")
	b.bot.Stop()
	slog.Info("tgbot stopped")
}

func (b *TGBot) setupRoutes() {
	// commands
	b.bot.Handle("/start", b.ctrl.Start)
	b.bot.Handle("/help", b.ctrl.Help)
	b.bot.Handle("/segments", b.ctrl.InitSetSegments)

	// text
	b.bot.Handle(tele.OnText, func(c tele.Context) error {
		ctx := utils.CreateCtxWithRqID(c)
		rqID := utils.GetRequestIDFromCtx(ctx)
		chatSession, err := b.session.GetSession(ctx, c.Chat().ID)
		if err != nil && !errors.Is(err, session.ErrNotFound) {
			slog.Error("got error from session.GetSession", slog.String("rqID", rqID), slog.String("err", err.Error()))
			return c.Send("something went wrong...")
		}

		c.Set("session", chatSession)

		switch chatSession.Action {
		case model.ExpectingSegmentCount:
			return b.ctrl.ProcessSegmentCount(c)
		default:
			return b.ctrl.ProcessEnteredTitle(c)
		}
	})

	// callbacks
	b.bot.Handle(tele.OnCallback, func(c tele.Context) error {
		callbackBtnText := strings.TrimPrefix(c.Callback().Data, "\f")

		switch {
		case callbackBtnText == tgCallback.BackToBooksPage:
			return b.ctrl.BackToBooksPage(c)
		case strings.HasPrefix(callbackBtnText, tgCallback.ToBooksPage):
			return b.ctrl.ProcessToBooksPage(c)
		case strings.HasPrefix(callbackBtnText, tgCallback.ToBookDetails):
			return b.ctrl.ProcessToBookDetails(c)
		case strings.HasPrefix(callbackBtnText, tgCallback.Translate):
			return b.ctrl.TranslateBook(c)
		case callbackBtnText == tgCallback.PageNumber:
			return c.Respond()
		default:
			return c.Send("unknown callback")
		}
	})
}

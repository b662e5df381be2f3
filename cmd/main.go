package main

import (
	"book_translator/config"
	"book_translator/data/cache"
	redisClient "book_translator/data/redis"
	"book_translator/data/session"
	"book_translator/internal/downloader"
	"book_translator/internal/externalApi/openAiApi"
	"book_translator/internal/lib/files"
	"book_translator/internal/parser"
	"book_translator/internal/scheduler"
	"book_translator/internal/service/audioService"
	"book_translator/internal/service/bookTranslatorService"
	"book_translator/internal/service/translationService"
	"book_translator/internal/tgbot"
	"book_translator/internal/transport/rest"
	"book_translator/internal/transport/telegram"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/panjf2000/ants/v2"
)

func main() {
	cfg := config.MustLoad()

	setupLogger(cfg)

	redisClient := redisClient.MustInitRedis(cfg)
	defer redisClient.Close()

	redisSession := session.NewRedisSession(cfg, redisClient)

	redisCache := cache.NewRedisCache(cfg, redisClient)

	fileDownloader, err := downloader.NewFileDownloader(cfg.BookSource.RequestTimeout, cfg.ProxyUrl)
	if err != nil {
		fatal("failed to create file downloader", err)
	}

	booksParser := parser.NewGutendexParser(cfg, fileDownloader)

	openAi := openAiApi.New(cfg)

	audioStorage, err := files.NewStorage(cfg.FilesStorageDir)
	if err != nil {
		fatal("failed to init audio storage", err)
	}

	workerPool, err := ants.NewPool(cfg.MaxGoroutineCnt, ants.WithPanicHandler(func(p any) {
		slog.Error("panic in worker pool", slog.String("panic", fmt.Sprint(p)))
	}))
	if err != nil {
		fatal("failed to create worker pool", err)
	}
	defer workerPool.Release()

	translationSvc := translationService.New(cfg, openAi, workerPool)

	audioSvc := audioService.New(cfg, openAi, audioStorage)

	bookTranslatorSvc := bookTranslatorService.New(
		cfg,
		redisCache,
		booksParser,
		translationSvc,
		audioSvc,
	)

	sched := scheduler.New()
	sched.NewIntervalJob(
		"delete old audio files",
		scheduler.DeleteOldFilesJob(audioStorage, cfg.Jobs.AudioMaxAge),
		cfg.Jobs.DeleteOldFilesInterval,
		true,
	)
	sched.Start()
	defer sched.Stop()

	router := rest.NewRouter(cfg, rest.NewController(bookTranslatorSvc))

	httpServer := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: router,
	}

	go func() {
		slog.Info("http server started", slog.String("addr", cfg.HTTP.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal("http server failed", err)
		}
	}()

	if cfg.Telegram.Token != "" {
		tgController := telegram.NewController(cfg, bookTranslatorSvc, redisSession)

		tgBot, err := tgbot.New(cfg, tgController, redisSession)
		if err != nil {
			fatal("failed to create tgbot", err)
		}

		tgBot.Start()
		defer tgBot.Stop()
	} else {
		slog.Info("TELEGRAM_TOKEN is not set, telegram bot disabled")
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	<-interrupt

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("http server shutdown failed", slog.String("err", err.Error()))
	}
	slog.Info("http server stopped")
}

func fatal(msg string, err error) {
	slog.Error(msg, slog.String("err", err.Error()))
	os.Exit(1)
}

func setupLogger(cfg *config.Config) {
	var logLevel slog.Level

	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)
}

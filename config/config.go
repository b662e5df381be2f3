package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Env               string        `env:"ENV" envDefault:"local"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
	MaxGoroutineCnt   int           `env:"MAX_GOROUTINE_CNT" envDefault:"4"`
	FilesStorageDir   string        `env:"FILES_STORAGE_DIR" envDefault:"audio-output"`
	BooksPerPage      int           `env:"BOOKS_PER_PAGE" envDefault:"5"`
	ProxyUrl          string        `env:"PROXY_URL" envDefault:""`
	SessionExpiration time.Duration `env:"SESSION_EXPIRATION" envDefault:"2h"`
	BookSource        BookSource
	OpenAI            OpenAI
	Translation       Translation
	Redis             Redis
	Telegram          Telegram
	HTTP              HTTP
	Jobs              Jobs
}

type BookSource struct {
	SearchUrl       string        `env:"BOOK_SOURCE_SEARCH_URL" envDefault:"https://gutendex.com/books"`
	TextUrlTemplate string        `env:"BOOK_SOURCE_TEXT_URL_TEMPLATE" envDefault:"https://www.gutenberg.org/ebooks/%d.txt.utf-8"`
	RequestTimeout  time.Duration `env:"BOOK_SOURCE_REQUEST_TIMEOUT" envDefault:"30s"`
}

type OpenAI struct {
	ApiUrl            string        `env:"OPENAI_API_URL" envDefault:"https://api.openai.com/v1"`
	ApiKey            string        `env:"OPENAI_API_KEY" envDefault:""`
	ChatModel         string        `env:"OPENAI_CHAT_MODEL" envDefault:"gpt-4o-mini"`
	AudioModel        string        `env:"OPENAI_AUDIO_MODEL" envDefault:"gpt-4o-mini-tts"`
	Voice             string        `env:"OPENAI_VOICE" envDefault:"alloy"`
	MaxSentences      int           `env:"OPENAI_MAX_SENTENCES" envDefault:"0"`
	RequestTimeout    time.Duration `env:"OPENAI_REQUEST_TIMEOUT" envDefault:"60s"`
	RequestsPerSecond float64       `env:"OPENAI_REQUESTS_PER_SECOND" envDefault:"3"`
}

type Translation struct {
	TargetLanguage string        `env:"TRANSLATION_TARGET_LANGUAGE" envDefault:"Spanish"`
	SegmentTimeout time.Duration `env:"TRANSLATION_SEGMENT_TIMEOUT" envDefault:"90s"`
}

type Redis struct {
	Host            string        `env:"REDIS_HOST"`
	Port            int           `env:"REDIS_PORT"`
	Password        string        `env:"REDIS_PASSWORD" envDefault:""`
	DB              int           `env:"REDIS_DB" envDefault:"0"`
	CacheExpiration time.Duration `env:"REDIS_CACHE_EXPIRATION" envDefault:"1h"`
}

type Telegram struct {
	Token      string        `env:"TELEGRAM_TOKEN" envDefault:""`
	UpdTimeout time.Duration `env:"TELEGRAM_UPD_TIMEOUT" envDefault:"10s"`
}

type HTTP struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type Jobs struct {
	DeleteOldFilesInterval time.Duration `env:"JOBS_DELETE_OLD_FILES_INTERVAL" envDefault:"1h"`
	AudioMaxAge            time.Duration `env:"JOBS_AUDIO_MAX_AGE" envDefault:"24h"`
}

func MustLoad() *Config {
	_ = godotenv.Load(".env")

	cfg := &Config{}

	opts := env.Options{RequiredIfNoDef: true}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		log.Fatalf("parse config error: %s", err)
	}

	return cfg
}

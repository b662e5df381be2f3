package cache

import (
	"book_translator/config"
	"book_translator/internal/model"
	"book_translator/utils"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	redis *redis.Client
	cfg   *config.Config
}

func NewRedisCache(cfg *config.Config, redisClient *redis.Client) *RedisCache {
	return &RedisCache{redis: redisClient, cfg: cfg}
}

func (r *RedisCache) createSearchResultsKey(query string) string {
	return fmt.Sprintf("search:%s", strings.ToLower(strings.TrimSpace(query)))
}

func (r *RedisCache) GetSearchResults(ctx context.Context, query string) ([]model.BookSummary, error) {
	op := "RedisCache.GetSearchResults"
	rqID := utils.GetRequestIDFromCtx(ctx)
	key := r.createSearchResultsKey(query)

	res, err := r.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			slog.Debug("search results not found in cache", slog.String("rqID", rqID), slog.String("op", op), slog.String("key", key))
			return nil, ErrNotFound
		}
		slog.Error("failed on redis.Get", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("key", key))
		return nil, err
	}

	var books []model.BookSummary
	err = json.Unmarshal([]byte(res), &books)
	if err != nil {
		slog.Error(
			"error while unmarshalling",
			slog.String("rqID", rqID),
			slog.String("op", op),
			slog.String("err", err.Error()),
			slog.String("resultFromRedis", res),
		)
		return nil, errors.New("unmarshalling error")
	}

	return books, nil
}

func (r *RedisCache) SetSearchResults(ctx context.Context, query string, books []model.BookSummary) error {
	op := "RedisCache.SetSearchResults"
	rqID := utils.GetRequestIDFromCtx(ctx)
	key := r.createSearchResultsKey(query)

	jsonData, err := json.Marshal(books)
	if err != nil {
		slog.Error("error while marshalling", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return errors.New("marshalling error")
	}

	err = r.redis.Set(ctx, key, jsonData, r.cfg.Redis.CacheExpiration).Err()
	if err != nil {
		slog.Error("failed on redis.Set", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("key", key))
		return err
	}

	return nil
}

package session

import (
	"book_translator/config"
	"book_translator/internal/model"
	"book_translator/utils"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "book_translator:chat"

// RedisSession keeps per-chat translation preferences and the search
// request behind every books page message. Both expire after cfg.SessionExpiration.
type RedisSession struct {
	redis *redis.Client
	cfg   *config.Config
}

func NewRedisSession(cfg *config.Config, redisClient *redis.Client) *RedisSession {
	return &RedisSession{redis: redisClient, cfg: cfg}
}

func preferencesKey(chatID int64) string {
	return fmt.Sprintf("%s:%d:preferences", keyPrefix, chatID)
}

func booksPageKey(chatID int64, msgID int) string {
	return fmt.Sprintf("%s:%d:page:%d", keyPrefix, chatID, msgID)
}

func (r *RedisSession) GetSession(ctx context.Context, chatID int64) (model.Session, error) {
	var chatSession model.Session
	if err := r.load(ctx, "RedisSession.GetSession", preferencesKey(chatID), &chatSession); err != nil {
		return model.Session{}, err
	}
	return chatSession, nil
}

func (r *RedisSession) SetSession(ctx context.Context, chatID int64, chatSession model.Session) error {
	return r.store(ctx, "RedisSession.SetSession", preferencesKey(chatID), chatSession)
}

// GetBookSearchRequest returns the query and page shown by the books page message msgID.
func (r *RedisSession) GetBookSearchRequest(ctx context.Context, chatID int64, msgID int) (model.BookSearchRequest, error) {
	var request model.BookSearchRequest
	if err := r.load(ctx, "RedisSession.GetBookSearchRequest", booksPageKey(chatID, msgID), &request); err != nil {
		return model.BookSearchRequest{}, err
	}
	return request, nil
}

func (r *RedisSession) SetBookSearchRequest(ctx context.Context, chatID int64, msgID int, request model.BookSearchRequest) error {
	return r.store(ctx, "RedisSession.SetBookSearchRequest", booksPageKey(chatID, msgID), request)
}

func (r *RedisSession) store(ctx context.Context, op string, key string, value any) error {
	rqID := utils.GetRequestIDFromCtx(ctx)

	payload, err := encode(value)
	if err != nil {
		slog.Error("can't encode session value", slog.String("rqID", rqID), slog.String("op", op), slog.String("key", key), slog.String("err", err.Error()))
		return err
	}

	if err = r.redis.Set(ctx, key, payload, r.cfg.SessionExpiration).Err(); err != nil {
		slog.Error("failed on redis.Set", slog.String("rqID", rqID), slog.String("op", op), slog.String("key", key), slog.String("err", err.Error()))
		return err
	}

	slog.Debug("session value stored", slog.String("rqID", rqID), slog.String("op", op), slog.String("key", key))
	return nil
}

func (r *RedisSession) load(ctx context.Context, op string, key string, dst any) error {
	rqID := utils.GetRequestIDFromCtx(ctx)

	res, err := r.redis.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		slog.Debug("session value not found", slog.String("rqID", rqID), slog.String("op", op), slog.String("key", key))
		return ErrNotFound
	}
	if err != nil {
		slog.Error("failed on redis.Get", slog.String("rqID", rqID), slog.String("op", op), slog.String("key", key), slog.String("err", err.Error()))
		return err
	}

	if err = decode(res, dst); err != nil {
		slog.Error("can't decode session value", slog.String("rqID", rqID), slog.String("op", op), slog.String("key", key), slog.String("err", err.Error()))
		return err
	}

	return nil
}

func encode(value any) ([]byte, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupted, err)
	}
	return payload, nil
}

// decode treats anything that is not a JSON object as corrupted, so a stale
// value written under an old key layout never turns into a zero session.
func decode(payload []byte, dst any) error {
	if len(payload) == 0 || payload[0] != '{' {
		return ErrCorrupted
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrCorrupted, err)
	}
	return nil
}

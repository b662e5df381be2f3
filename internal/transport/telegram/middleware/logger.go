package middleware

import (
	"book_translator/utils"
	"log/slog"
	"time"

	tele "gopkg.in/telebot.v4"
)

// Logger assigns a request id to every update and logs how it was handled.
func Logger() tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			rqID := utils.NewRequestID()
			c.Set(utils.RqIDTeleKey, rqID)

			attrs := []any{slog.String("rqID", rqID)}
			if chat := c.Chat(); chat != nil {
				attrs = append(attrs, slog.Int64("chatID", chat.ID))
			}
			if cb := c.Callback(); cb != nil {
				attrs = append(attrs, slog.String("callback", cb.Data))
			} else if msg := c.Message(); msg != nil {
				attrs = append(attrs, slog.String("text", msg.Text))
			}

			start := time.Now()
			err := next(c)

			attrs = append(attrs, slog.Duration("took", time.Since(start)))
			if err != nil {
				attrs = append(attrs, slog.String("err", err.Error()))
				slog.Error("update handled with error", attrs...)
				return err
			}

			slog.Info("update handled", attrs...)
			return nil
		}
	}
}

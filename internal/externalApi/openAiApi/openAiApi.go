package openAiApi

import (
	"book_translator/config"
	"book_translator/utils"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/time/rate"
)

const translatePrompt = "You translate English literary text to %s. Maintain sentence boundaries and do not add commentary."

var (
	ErrNotConfigured = errors.New("openai api key not configured")
	ErrEmptyResponse = errors.New("empty response from openai")
)

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type speechRequest struct {
	Model          string `json:"model"`
	Voice          string `json:"voice"`
	Input          string `json:"input"`
	ResponseFormat string `json:"response_format"`
}

type OpenAiApi struct {
	cfg        *config.Config
	client     *http.Client
	limiter    *rate.Limiter
	configured bool
}

func New(cfg *config.Config) *OpenAiApi {
	limit := rate.Inf
	if cfg.OpenAI.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.OpenAI.RequestsPerSecond)
	}

	configured := strings.TrimSpace(cfg.OpenAI.ApiKey) != ""
	if !configured {
		slog.Warn("OpenAI API key not configured. Set OPENAI_API_KEY environment variable; translations fall back to source text and audio is disabled.")
	}

	return &OpenAiApi{
		cfg:        cfg,
		client:     &http.Client{Timeout: cfg.OpenAI.RequestTimeout},
		limiter:    rate.NewLimiter(limit, 1),
		configured: configured,
	}
}

func (o *OpenAiApi) IsConfigured() bool {
	return o.configured
}

func (o *OpenAiApi) Translate(ctx context.Context, text string, targetLanguage string) (string, error) {
	op := "OpenAiApi.Translate"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if !o.configured {
		return "", ErrNotConfigured
	}

	reqBody := chatRequest{
		Model: o.cfg.OpenAI.ChatModel,
		Messages: []chatMessage{
			{Role: "system", Content: fmt.Sprintf(translatePrompt, targetLanguage)},
			{Role: "user", Content: text},
		},
		Temperature: 0.2,
	}

	payload, err := o.post(ctx, "/chat/completions", "application/json", reqBody)
	if err != nil {
		slog.Error("OpenAI translation request failed", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
		return "", err
	}

	var resp chatResponse
	if err = json.Unmarshal(payload, &resp); err != nil {
		slog.Error("Failed to unmarshal chat response", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
		return "", fmt.Errorf("unmarshal chat response: %w", err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}

func (o *OpenAiApi) SynthesizeSpeech(ctx context.Context, text string) ([]byte, error) {
	op := "OpenAiApi.SynthesizeSpeech"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if !o.configured {
		return nil, ErrNotConfigured
	}

	reqBody := speechRequest{
		Model:          o.cfg.OpenAI.AudioModel,
		Voice:          o.cfg.OpenAI.Voice,
		Input:          text,
		ResponseFormat: "mp3",
	}

	payload, err := o.post(ctx, "/audio/speech", "audio/mpeg", reqBody)
	if err != nil {
		slog.Error("OpenAI text-to-speech request failed", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
		return nil, err
	}

	if len(payload) == 0 {
		return nil, ErrEmptyResponse
	}

	return payload, nil
}

func (o *OpenAiApi) post(ctx context.Context, path string, accept string, body any) ([]byte, error) {
	if err := o.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	jsonPayload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.cfg.OpenAI.ApiUrl+path, bytes.NewReader(jsonPayload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+o.cfg.OpenAI.ApiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", accept)

	res, err := o.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai returned non-OK status code: %d", res.StatusCode)
	}

	return payload, nil
}

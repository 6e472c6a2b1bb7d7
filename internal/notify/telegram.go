package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"quanngon-be/internal/logger"

	"go.uber.org/zap"
)

const telegramBaseURL = "https://api.telegram.org"

// Notifier sends a plain-text message to the restaurant's staff chat.
type Notifier interface {
	Send(ctx context.Context, token, chatID, text string) error
}

type telegramNotifier struct {
	baseURL    string
	httpClient *http.Client
}

func NewTelegramNotifier() Notifier {
	return &telegramNotifier{
		baseURL: telegramBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (t *telegramNotifier) Send(ctx context.Context, token, chatID, text string) error {
	log := logger.L().With(
		zap.String("chat_id", chatID),
		zap.Int("text_len", len(text)),
	)

	body := map[string]string{
		"chat_id": chatID,
		"text":    text,
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("failed creating request", zap.Error(err))
		return err
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		log.Error("telegram request failed", zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read telegram response: %w", err)
	}

	var res struct {
		OK          bool   `json:"ok"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		log.Error("failed decoding telegram response",
			zap.Int("status", resp.StatusCode),
			zap.Error(err),
		)
		return err
	}

	if !res.OK {
		log.Error("telegram returned non-ok response",
			zap.Int("status", resp.StatusCode),
			zap.String("description", res.Description),
		)
		return fmt.Errorf("telegram error: %s", res.Description)
	}

	log.Debug("telegram message sent")
	return nil
}

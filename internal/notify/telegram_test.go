package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNotifier(baseURL string) *telegramNotifier {
	return &telegramNotifier{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 2 * time.Second},
	}
}

func TestTelegramNotifier_Send(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotPath string
		var gotBody map[string]string

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
		}))
		defer srv.Close()

		n := newTestNotifier(srv.URL)
		err := n.Send(context.Background(), "bot-token", "chat-42", "hello kitchen")

		assert.NoError(t, err)
		assert.Equal(t, "/botbot-token/sendMessage", gotPath)
		assert.Equal(t, "chat-42", gotBody["chat_id"])
		assert.Equal(t, "hello kitchen", gotBody["text"])
	})

	t.Run("APIError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"ok":          false,
				"description": "chat not found",
			})
		}))
		defer srv.Close()

		n := newTestNotifier(srv.URL)
		err := n.Send(context.Background(), "bot-token", "bad-chat", "hello")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "chat not found")
	})

	t.Run("Unreachable", func(t *testing.T) {
		n := newTestNotifier("http://127.0.0.1:1")
		err := n.Send(context.Background(), "bot-token", "chat-42", "hello")
		assert.Error(t, err)
	})
}

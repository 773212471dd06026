package llm

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

func TestNewGroqClient_Validation(t *testing.T) {
	_, err := NewGroqClient(Options{Model: "llama-3.3-70b-versatile"})
	assert.Error(t, err, "missing API key")

	_, err = NewGroqClient(Options{APIKey: "gsk_test"})
	assert.Error(t, err, "missing model")

	c, err := NewGroqClient(Options{APIKey: "gsk_test", Model: "llama-3.3-70b-versatile"})
	require.NoError(t, err)
	assert.Equal(t, "llama-3.3-70b-versatile", c.ModelID())
}

func completionHandler(t *testing.T, content string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t.Helper()
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer gsk_test", r.Header.Get("Authorization"))

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func TestComplete_ReturnsFirstChoice(t *testing.T) {
	srv := httptest.NewServer(completionHandler(t, "olá, aluno"))
	defer srv.Close()

	c, err := NewGroqClient(Options{
		APIKey:  "gsk_test",
		BaseURL: srv.URL,
		Model:   "llama-3.3-70b-versatile",
		Timeout: 5 * time.Second,
	})
	require.NoError(t, err)

	out, err := c.Complete(context.Background(), "sistema", "usuário")
	require.NoError(t, err)
	assert.Equal(t, "olá, aluno", out)
}

func TestComplete_EmptyContent(t *testing.T) {
	srv := httptest.NewServer(completionHandler(t, ""))
	defer srv.Close()

	c, err := NewGroqClient(Options{
		APIKey:  "gsk_test",
		BaseURL: srv.URL,
		Model:   "llama-3.3-70b-versatile",
	})
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "sistema", "usuário")
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestComplete_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error": {"message": "rate limit reached"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c, err := NewGroqClient(Options{
		APIKey:  "gsk_test",
		BaseURL: srv.URL,
		Model:   "llama-3.3-70b-versatile",
	})
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "sistema", "usuário")
	assert.ErrorIs(t, err, ErrUnavailable)
}

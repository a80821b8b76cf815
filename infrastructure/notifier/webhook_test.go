package notifier

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/nps-survey-api/internal/config"
	"github.com/vfg2006/nps-survey-api/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		Webhook: config.Webhook{
			TimeoutSeconds: 2,
			UserAgent:      "nps-survey-api/test",
		},
	}
}

func TestNotifySubmissionPostsJSON(t *testing.T) {
	received := make(chan []byte, 1)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "nps-survey-api/test", r.Header.Get("User-Agent"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		received <- body

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	n := NewWebhookNotifier(testConfig())
	n.NotifySubmission(context.Background(), server.URL, &domain.Response{
		ID:         "resp1",
		Timestamp:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		CampaignID: "cmp1",
		Score:      9,
		Email:      "ana@example.com",
	})

	select {
	case body := <-received:
		assert.Contains(t, string(body), `"id":"resp1"`)
		assert.Contains(t, string(body), `"score":9`)
	case <-time.After(2 * time.Second):
		t.Fatal("webhook não recebeu a notificação")
	}
}

func TestNotifySubmissionSwallowsFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	n := NewWebhookNotifier(testConfig())

	// Status de erro e destino inalcançável: nenhum panic, nenhum retorno de erro
	n.NotifySubmission(context.Background(), server.URL, &domain.Response{ID: "resp2", Score: 3})
	n.NotifySubmission(context.Background(), "http://127.0.0.1:1/unreachable", &domain.Response{ID: "resp3", Score: 5})
}

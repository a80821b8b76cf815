// Package notifier entrega notificações de submissão para o webhook configurado
// na campanha. A entrega é melhor-esforço: status e corpo da resposta são
// ignorados e falhas nunca afetam a submissão.
package notifier

import (
	"bytes"
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/nps-survey-api/internal/config"
	"github.com/vfg2006/nps-survey-api/internal/domain"
	"github.com/vfg2006/nps-survey-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Notifier interface {
	NotifySubmission(ctx context.Context, webhookURL string, response *domain.Response)
}

type WebhookNotifier struct {
	httpClient *http.Client
	userAgent  string
}

func NewWebhookNotifier(cfg *config.Config) Notifier {
	timeout := time.Duration(cfg.Webhook.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &WebhookNotifier{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: cfg.Webhook.UserAgent,
	}
}

// NotifySubmission envia a resposta completa como JSON via POST.
// Qualquer falha (rede, status de erro) é registrada e descartada.
func (n *WebhookNotifier) NotifySubmission(ctx context.Context, webhookURL string, response *domain.Response) {
	logger := log.L.WithFields(log.Fields{
		"webhook_url": webhookURL,
		"response_id": response.ID,
		"campaign_id": response.CampaignID,
	})

	payload, err := json.Marshal(response)
	if err != nil {
		logger.WithError(err).Warn("Erro ao serializar resposta para o webhook")
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(payload))
	if err != nil {
		logger.WithError(err).Warn("Erro ao montar requisição do webhook")
		return
	}

	req.Header.Set("Content-Type", "application/json")
	if n.userAgent != "" {
		req.Header.Set("User-Agent", n.userAgent)
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		logger.WithError(err).Warn("Falha ao notificar webhook")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		logger.WithField("status_code", resp.StatusCode).Warn("Webhook rejeitou a notificação")
		return
	}

	logger.Debug("Webhook notificado com sucesso")
}

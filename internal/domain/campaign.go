package domain

import (
	"github.com/vfg2006/nps-survey-api/pkg/utils"
)

// Audience define o público-alvo de uma campanha
type Audience string

const (
	AudienceCustomers Audience = "customers"
	AudienceEmployees Audience = "employees"
)

// PortableTokenParam é a chave de consulta reservada que transporta uma campanha
// codificada em um link portátil. Nunca é repassada em redirecionamentos.
const PortableTokenParam = "c"

// Campaign é a configuração de uma pesquisa NPS compartilhável por link
type Campaign struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Audience        Audience `json:"audience"`
	BrandName       string   `json:"brand_name"`
	AccentColor     string   `json:"accent_color"`
	ThankYouMessage string   `json:"thank_you_message"`
	PromoterURL     string   `json:"promoter_url"`
	PassiveURL      string   `json:"passive_url"`
	DetractorURL    string   `json:"detractor_url"`
	WebhookURL      string   `json:"webhook_url"`
	IsActive        bool     `json:"is_active"`

	// Ephemeral marca campanhas reconstruídas de um token portátil.
	// Nunca são gravadas na coleção persistida.
	Ephemeral bool `json:"ephemeral,omitempty"`
}

// NewCampaign é a factory padrão: gera um ID novo e preenche valores de exemplo
func NewCampaign() *Campaign {
	return &Campaign{
		ID:              utils.MustGenerateID(),
		Name:            "Pesquisa de satisfação",
		Audience:        AudienceCustomers,
		BrandName:       "Minha Marca",
		AccentColor:     "#4F46E5",
		ThankYouMessage: "Obrigado pelo seu feedback!",
		PromoterURL:     "",
		PassiveURL:      "",
		DetractorURL:    "",
		WebhookURL:      "",
		IsActive:        true,
	}
}

// URLForBand retorna a URL de destino configurada para a faixa de nota.
// Uma URL vazia significa "sem redirecionamento para esta faixa".
func (c *Campaign) URLForBand(band ScoreBand) string {
	switch band {
	case BandPromoter:
		return c.PromoterURL
	case BandPassive:
		return c.PassiveURL
	default:
		return c.DetractorURL
	}
}

package domain

import (
	"encoding/base64"
	"errors"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrInvalidPortableToken sinaliza um token portátil que não pôde ser decodificado.
// Quem chama deve tratar como "nenhuma campanha portátil disponível", nunca como falha.
var ErrInvalidPortableToken = errors.New("token portátil inválido")

// PortableCampaign é o subconjunto público de uma campanha que viaja dentro de um
// link portátil. ID, nome e público ficam de fora: o link carrega apenas a
// configuração necessária para apresentar a pesquisa e redirecionar o respondente.
// Campos omitidos no token caem nos valores da factory padrão.
type PortableCampaign struct {
	BrandName       *string `json:"b,omitempty"`
	AccentColor     *string `json:"a,omitempty"`
	ThankYouMessage *string `json:"t,omitempty"`
	PromoterURL     *string `json:"p,omitempty"`
	PassiveURL      *string `json:"n,omitempty"`
	DetractorURL    *string `json:"d,omitempty"`
	WebhookURL      *string `json:"w,omitempty"`
	IsActive        *bool   `json:"x,omitempty"`
}

// EncodePortable serializa a configuração pública da campanha em um token
// opaco e seguro para URL. Determinístico e reversível via DecodePortable.
func EncodePortable(c *Campaign) (string, error) {
	portable := PortableCampaign{
		BrandName:       &c.BrandName,
		AccentColor:     &c.AccentColor,
		ThankYouMessage: &c.ThankYouMessage,
		PromoterURL:     &c.PromoterURL,
		PassiveURL:      &c.PassiveURL,
		DetractorURL:    &c.DetractorURL,
		WebhookURL:      &c.WebhookURL,
		IsActive:        &c.IsActive,
	}

	payload, err := json.Marshal(portable)
	if err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(payload), nil
}

// DecodePortable reconstrói os campos de campanha a partir de um token portátil.
// Token malformado (base64 inválido ou JSON irreconhecível) retorna
// ErrInvalidPortableToken; a decodificação nunca propaga panic.
func DecodePortable(token string) (*PortableCampaign, error) {
	if token == "" {
		return nil, ErrInvalidPortableToken
	}

	payload, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrInvalidPortableToken
	}

	portable := &PortableCampaign{}
	if err := json.Unmarshal(payload, portable); err != nil {
		return nil, ErrInvalidPortableToken
	}

	return portable, nil
}

// Apply sobrepõe os campos presentes no token sobre a campanha informada.
// Campos ausentes preservam o valor atual (tipicamente o da factory padrão).
func (p *PortableCampaign) Apply(c *Campaign) {
	if p.BrandName != nil {
		c.BrandName = *p.BrandName
	}
	if p.AccentColor != nil {
		c.AccentColor = *p.AccentColor
	}
	if p.ThankYouMessage != nil {
		c.ThankYouMessage = *p.ThankYouMessage
	}
	if p.PromoterURL != nil {
		c.PromoterURL = *p.PromoterURL
	}
	if p.PassiveURL != nil {
		c.PassiveURL = *p.PassiveURL
	}
	if p.DetractorURL != nil {
		c.DetractorURL = *p.DetractorURL
	}
	if p.WebhookURL != nil {
		c.WebhookURL = *p.WebhookURL
	}
	if p.IsActive != nil {
		c.IsActive = *p.IsActive
	}
}

package domain

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodePortableRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		campaign *Campaign
	}{
		{
			name: "Campanha completa",
			campaign: &Campaign{
				ID:              "abc123",
				Name:            "Pós-venda",
				Audience:        AudienceCustomers,
				BrandName:       "Loja Exemplo",
				AccentColor:     "#FF0000",
				ThankYouMessage: "Valeu!",
				PromoterURL:     "https://reviews.example/leave",
				PassiveURL:      "example.com/feedback",
				DetractorURL:    "/recover",
				WebhookURL:      "https://hooks.example/nps",
				IsActive:        true,
			},
		},
		{
			name: "Campanha com campos vazios",
			campaign: &Campaign{
				ID:       "empty1",
				Name:     "Vazia",
				IsActive: false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := EncodePortable(tt.campaign)
			require.NoError(t, err)
			require.NotEmpty(t, token)

			decoded, err := DecodePortable(token)
			require.NoError(t, err)

			// Todos os campos codificados devem ser reproduzidos
			assert.Equal(t, tt.campaign.BrandName, *decoded.BrandName)
			assert.Equal(t, tt.campaign.AccentColor, *decoded.AccentColor)
			assert.Equal(t, tt.campaign.ThankYouMessage, *decoded.ThankYouMessage)
			assert.Equal(t, tt.campaign.PromoterURL, *decoded.PromoterURL)
			assert.Equal(t, tt.campaign.PassiveURL, *decoded.PassiveURL)
			assert.Equal(t, tt.campaign.DetractorURL, *decoded.DetractorURL)
			assert.Equal(t, tt.campaign.WebhookURL, *decoded.WebhookURL)
			assert.Equal(t, tt.campaign.IsActive, *decoded.IsActive)
		})
	}
}

func TestDecodePortableMalformed(t *testing.T) {
	// Tokens corrompidos retornam falha sem panic
	tests := []struct {
		name  string
		token string
	}{
		{name: "Token vazio", token: ""},
		{name: "Base64 inválido", token: "!!!não-é-base64!!!"},
		{name: "Base64 válido com JSON inválido", token: "bm90LWpzb24"},
		{name: "Token truncado", token: "eyJiIjoiTG9qYSBFeGVtcGxv"},
		{name: "JSON com tipo errado", token: "eyJ4IjoibmFvLWJvb2wifQ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := DecodePortable(tt.token)
			assert.Nil(t, decoded)
			assert.ErrorIs(t, err, ErrInvalidPortableToken)
		})
	}
}

func TestPortableApplyDefaults(t *testing.T) {
	// Token sem isActive: campanha sintetizada permanece ativa (valor da factory)
	decoded, err := DecodePortable(mustEncode(t, &PortableCampaign{
		BrandName: ptr("Só Marca"),
	}))
	require.NoError(t, err)

	campaign := NewCampaign()
	decoded.Apply(campaign)

	assert.Equal(t, "Só Marca", campaign.BrandName)
	assert.True(t, campaign.IsActive)
	// Campos ausentes preservam os valores padrão
	assert.Equal(t, "Obrigado pelo seu feedback!", campaign.ThankYouMessage)
}

func mustEncode(t *testing.T, p *PortableCampaign) string {
	t.Helper()

	payload, err := json.Marshal(p)
	require.NoError(t, err)

	return base64.RawURLEncoding.EncodeToString(payload)
}

func ptr(s string) *string {
	return &s
}

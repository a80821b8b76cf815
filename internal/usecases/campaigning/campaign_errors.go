package campaigning

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de campanhas
var (
	ErrCampaignIDRequired = errors.New("campaign ID is required")
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrCampaignConflict   = errors.New("campaign already exists with this ID")

	// Erros de armazenamento
	ErrStorageOperation = errors.New("storage operation error")

	// Erros de geração
	ErrGenerateID     = errors.New("error generating campaign ID")
	ErrEncodeCampaign = errors.New("error encoding portable campaign")
)

// CampaignError é um erro com contexto adicional para campanhas
type CampaignError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	CampaignID string // ID da campanha envolvida (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *CampaignError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *CampaignError) Unwrap() error {
	return e.Err
}

// NewCampaignError cria um novo CampaignError
func NewCampaignError(err error, code string, campaignID string, details string) *CampaignError {
	return &CampaignError{
		Err:        err,
		Code:       code,
		CampaignID: campaignID,
		Details:    details,
	}
}

package surveying

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de pesquisas
var (
	// A pesquisa não existe, não pôde ser sintetizada de um token portátil,
	// ou está inativa. A superfície consumidora trata os três casos da mesma
	// forma: estado neutro de "pesquisa indisponível".
	ErrSurveyUnavailable = errors.New("survey unavailable")

	// Erros de validação da submissão
	ErrScoreRequired = errors.New("score is required")
	ErrInvalidScore  = errors.New("score must be an integer between 0 and 10")

	// Erros de armazenamento
	ErrStorageOperation = errors.New("storage operation error")

	// Erros de geração
	ErrGenerateID = errors.New("error generating response ID")
)

// SurveyError é um erro com contexto adicional para pesquisas
type SurveyError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	CampaignID string // ID da campanha envolvida (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *SurveyError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *SurveyError) Unwrap() error {
	return e.Err
}

// IsValidationError verifica se o erro bloqueia a transição de submissão
func IsValidationError(err error) bool {
	return errors.Is(err, ErrScoreRequired) || errors.Is(err, ErrInvalidScore)
}

package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro padronizados da API
const (
	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidScore        = "VAL_004" // Nota fora do intervalo 0-10

	// Erros de campanha (CMP)
	ErrCampaignNotFound = "CMP_001" // Campanha não encontrada
	ErrCampaignConflict = "CMP_002" // Campanha já existe com este ID

	// Erros de pesquisa (SRY)
	ErrSurveyUnavailable = "SRY_001" // Pesquisa indisponível (inexistente ou inativa)

	// Erros do servidor (SRV)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrStorageOperation  = "SRV_002" // Erro de operação no armazenamento
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrSchedulerDisabled = "SRV_004" // Agendador não disponível
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidScore:        http.StatusBadRequest,
	ErrCampaignNotFound:    http.StatusNotFound,
	ErrCampaignConflict:    http.StatusConflict,
	ErrSurveyUnavailable:   http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrStorageOperation:    http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrSchedulerDisabled:   http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}

package surveying

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/vfg2006/nps-survey-api/pkg/log"
)

// forwardedTrackingParams é a lista fixa de chaves de rastreamento repassadas
// para destinos internos, preservando a cadeia de atribuição
var forwardedTrackingParams = []string{
	"source",
	"utm_source",
	"utm_medium",
	"utm_campaign",
	"utm_term",
	"utm_content",
}

// buildRedirectURL normaliza a URL de destino da faixa e aplica a política de
// repasse de parâmetros. Destino vazio retorna vazio (sem redirecionamento).
//
// Política: o email do respondente sempre é incluído; a chave reservada do
// token portátil nunca é repassada; destinos internos recebem também a nota e
// as chaves de rastreamento da lista fixa, sem sobrescrever parâmetros já
// presentes no destino. Destinos externos recebem apenas o email — nada de
// metadados internos vaza para terceiros.
func (s *Service) buildRedirectURL(ctx context.Context, destination string, routeParams map[string]string, email string, score int) string {
	if destination == "" {
		return ""
	}

	normalized, internal := s.normalizeDestination(destination)

	target, err := url.Parse(normalized)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("destination", destination).Warn("URL de destino inválida, permanecendo na tela de agradecimento")
		return ""
	}

	query := target.Query()

	if email != "" {
		query.Set("email", email)
	}

	if internal {
		query.Set("score", strconv.Itoa(score))

		for _, key := range forwardedTrackingParams {
			value, ok := routeParams[key]
			if !ok {
				continue
			}
			// Parâmetro já presente no destino tem precedência
			if _, exists := query[key]; exists {
				continue
			}
			query.Set(key, value)
		}
	}

	target.RawQuery = query.Encode()

	return target.String()
}

// normalizeDestination garante um esquema reconhecido e classifica o destino.
// Externo é somente o destino configurado com esquema explícito e host de
// terceiro; entrada sem esquema (host simples ou caminho relativo) é tratada
// como interna e recebe o prefixo seguro.
func (s *Service) normalizeDestination(destination string) (string, bool) {
	if strings.HasPrefix(destination, "/") {
		base := strings.TrimSuffix(s.cfg.App.BaseURL, "/")
		return base + destination, true
	}

	if !strings.HasPrefix(destination, "http://") && !strings.HasPrefix(destination, "https://") {
		return "https://" + destination, true
	}

	return destination, s.sameOrigin(destination)
}

// sameOrigin verifica se o destino aponta para o host da própria aplicação
func (s *Service) sameOrigin(destination string) bool {
	base, err := url.Parse(s.cfg.App.BaseURL)
	if err != nil || base.Host == "" {
		return false
	}

	target, err := url.Parse(destination)
	if err != nil {
		return false
	}

	return strings.EqualFold(target.Host, base.Host)
}

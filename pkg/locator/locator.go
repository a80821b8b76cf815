// Package locator interpreta o localizador de navegação usado pelos links de pesquisa
// (um fragmento no estilo hash, ex.: "#/survey/abc123?utm_source=email").
package locator

import (
	"net/url"
	"strings"
)

// Route é o resultado da interpretação de um localizador
type Route struct {
	Path   string
	Params map[string]string
}

// Parse decodifica um localizador em caminho lógico e parâmetros de consulta.
// É uma função pura e tolerante: entrada malformada nunca gera erro, apenas
// valores parciais ou vazios. Em chaves repetidas, a última ocorrência vence.
func Parse(raw string) Route {
	fragment := strings.TrimPrefix(raw, "#")
	fragment = strings.TrimPrefix(fragment, "/")

	path := fragment
	query := ""

	if idx := strings.Index(fragment, "?"); idx >= 0 {
		path = fragment[:idx]
		query = fragment[idx+1:]
	}

	return Route{
		Path:   path,
		Params: parseQuery(query),
	}
}

// parseQuery interpreta pares chave=valor sem propagar erros de escape.
// Percent-encoding inválido mantém o valor bruto em vez de falhar.
func parseQuery(query string) map[string]string {
	params := make(map[string]string)

	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}

		key := pair
		value := ""
		if idx := strings.Index(pair, "="); idx >= 0 {
			key = pair[:idx]
			value = pair[idx+1:]
		}

		key = unescape(key)
		if key == "" {
			continue
		}

		params[key] = unescape(value)
	}

	return params
}

func unescape(s string) string {
	unescaped, err := url.QueryUnescape(s)
	if err != nil {
		// Escape malformado: mantém o valor bruto
		return s
	}
	return unescaped
}

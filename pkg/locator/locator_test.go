package locator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name           string
		raw            string
		expectedPath   string
		expectedParams map[string]string
	}{
		{
			name:           "Localizador de pesquisa com parâmetros",
			raw:            "#/survey/abc123?utm_source=email&email=ana%40example.com",
			expectedPath:   "survey/abc123",
			expectedParams: map[string]string{"utm_source": "email", "email": "ana@example.com"},
		},
		{
			name:           "Localizador sem hash",
			raw:            "survey/abc123",
			expectedPath:   "survey/abc123",
			expectedParams: map[string]string{},
		},
		{
			name:           "Localizador vazio resolve para o dashboard",
			raw:            "",
			expectedPath:   "",
			expectedParams: map[string]string{},
		},
		{
			name:           "Chave repetida: última ocorrência vence",
			raw:            "#/survey/x?utm_source=a&utm_source=b",
			expectedPath:   "survey/x",
			expectedParams: map[string]string{"utm_source": "b"},
		},
		{
			name:           "Par sem sinal de igual vira valor vazio",
			raw:            "#/survey/x?flag&k=v",
			expectedPath:   "survey/x",
			expectedParams: map[string]string{"flag": "", "k": "v"},
		},
		{
			name:           "Percent-encoding malformado mantém valor bruto",
			raw:            "#/survey/x?k=%zz",
			expectedPath:   "survey/x",
			expectedParams: map[string]string{"k": "%zz"},
		},
		{
			name:           "Sinal de mais decodifica para espaço",
			raw:            "#/survey/x?msg=muito+bom",
			expectedPath:   "survey/x",
			expectedParams: map[string]string{"msg": "muito bom"},
		},
		{
			name:           "Separadores vazios são ignorados",
			raw:            "#/survey/x?&&a=1&",
			expectedPath:   "survey/x",
			expectedParams: map[string]string{"a": "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route := Parse(tt.raw)
			assert.Equal(t, tt.expectedPath, route.Path)
			assert.Equal(t, tt.expectedParams, route.Params)
		})
	}
}

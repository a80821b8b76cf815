package domain

import "time"

// ScoreBand é a classificação derivada da nota de 0 a 10
type ScoreBand string

const (
	BandPromoter  ScoreBand = "promoter"
	BandPassive   ScoreBand = "passive"
	BandDetractor ScoreBand = "detractor"
)

// MinScore e MaxScore delimitam o intervalo aceito de notas
const (
	MinScore = 0
	MaxScore = 10
)

// ClassifyScore aplica os limiares do NPS: 9-10 promotor, 7-8 neutro, 0-6 detrator.
// A mesma classificação alimenta o agregado e a escolha da URL de redirecionamento.
func ClassifyScore(score int) ScoreBand {
	switch {
	case score >= 9:
		return BandPromoter
	case score >= 7:
		return BandPassive
	default:
		return BandDetractor
	}
}

// ValidScore verifica se a nota está no intervalo [0, 10]
func ValidScore(score int) bool {
	return score >= MinScore && score <= MaxScore
}

// Response é a submissão de um respondente, imutável depois de criada
type Response struct {
	ID          string            `json:"id"`
	Timestamp   time.Time         `json:"timestamp"`
	CampaignID  string            `json:"campaign_id"`
	Score       int               `json:"score"`
	Comment     string            `json:"comment,omitempty"`
	Email       string            `json:"email,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	RouteParams map[string]string `json:"route_params,omitempty"`
}

// Band devolve a faixa de nota desta resposta
func (r *Response) Band() ScoreBand {
	return ClassifyScore(r.Score)
}

package calculator

import (
	"math"
	"time"

	"github.com/v1ctorsales/QuoVadis/models"
)

// Situações de uma parcela individual do cronograma.
const (
	ParcelaPaga     = "Paga"
	ParcelaAtrasada = "Atrasada"
	ParcelaEmAberto = "Em aberto"
)

// Situações agregadas do registro pessoa-viagem.
const (
	RegistroPago     = "Viagem Paga"
	RegistroAtrasado = "Atrasado"
	RegistroEmDia    = "Em dia"
)

// Parcela é uma linha do cronograma de cobrança derivado do mês de início.
type Parcela struct {
	Numero     int       `json:"parcela"`
	Vencimento time.Time `json:"vencimento"`
	Situacao   string    `json:"situacao"`
}

// SituacaoParcela classifica a parcela de índice i (0-based): paga quando
// i < pagas; senão atrasada quando o vencimento já passou; senão em aberto.
func SituacaoParcela(i, pagas int, vencimento, hoje time.Time) string {
	if i < pagas {
		return ParcelaPaga
	}
	if vencimento.Before(hoje) {
		return ParcelaAtrasada
	}
	return ParcelaEmAberto
}

// GerarParcelas produz o cronograma completo: o vencimento da parcela i é o
// mês de início mais i meses.
func GerarParcelas(mesInicio time.Time, total, pagas int, hoje time.Time) []Parcela {
	if total < 1 {
		total = 1
	}
	parcelas := make([]Parcela, 0, total)
	for i := 0; i < total; i++ {
		vencimento := mesInicio.AddDate(0, i, 0)
		parcelas = append(parcelas, Parcela{
			Numero:     i + 1,
			Vencimento: vencimento,
			Situacao:   SituacaoParcela(i, pagas, vencimento, hoje),
		})
	}
	return parcelas
}

// SituacaoRegistro agrega o cronograma: "Viagem Paga" quando todas as parcelas
// foram quitadas, "Atrasado" quando alguma parcela em aberto já venceu,
// "Em dia" caso contrário.
func SituacaoRegistro(mesInicio time.Time, total, pagas int, hoje time.Time) string {
	if total < 1 {
		total = 1
	}
	if pagas >= total {
		return RegistroPago
	}
	for i := pagas; i < total; i++ {
		if mesInicio.AddDate(0, i, 0).Before(hoje) {
			return RegistroAtrasado
		}
	}
	return RegistroEmDia
}

// ValorPago soma o extrato de pagamentos do registro.
func ValorPago(pagamentos []models.Pagamento) float64 {
	var total float64
	for _, p := range pagamentos {
		total += p.Valor
	}
	return total
}

// PercentualPago devolve o percentual quitado em duas casas, limitado a 100.
// Preço zero resulta em 0, sem divisão por zero.
func PercentualPago(valorPago, preco float64) float64 {
	if preco == 0 {
		return 0
	}
	pct := math.Round(valorPago/preco*100*100) / 100
	if pct > 100 {
		return 100
	}
	return pct
}

// RenumerarParcelas reatribui os índices de sequência 1..n preservando a ordem
// relativa. Usada após exclusão de uma parcela e na substituição do extrato.
func RenumerarParcelas(pagamentos []models.Pagamento) []models.Pagamento {
	for i := range pagamentos {
		pagamentos[i].Parcela = i + 1
	}
	return pagamentos
}

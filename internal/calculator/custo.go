// Package calculator concentra a aritmética de custos, preços e parcelas.
// Os handlers só montam entradas e persistem saídas; toda regra numérica
// testável mora aqui.
package calculator

import (
	"math"

	"github.com/v1ctorsales/QuoVadis/models"
)

// ItemCusto é uma categoria de gasto da viagem. Quando PorPessoa é falso o
// valor é o total do grupo e entra no rateio dividido pela quantidade de
// pessoas.
type ItemCusto struct {
	Categoria string
	Valor     float64
	PorPessoa bool
}

// ItensViagem monta a lista ordenada de categorias de uma viagem.
func ItensViagem(v models.Viagem) []ItemCusto {
	return []ItemCusto{
		{Categoria: "transporte", Valor: v.ValorTransporte, PorPessoa: v.CalculoValorTransportePorPessoa},
		{Categoria: "hospedagem", Valor: v.ValorHotel, PorPessoa: v.CalculoValorHotelPorPessoa},
		{Categoria: "passeios", Valor: v.GastosPasseios, PorPessoa: v.GastosPasseiosPorPessoa},
		{Categoria: "alimentacao", Valor: v.GastosAlimentacao, PorPessoa: v.GastosAlimentacaoPorPessoa},
		{Categoria: "outros", Valor: v.OutrosGastos, PorPessoa: v.OutrosGastosPorPessoa},
	}
}

// CustoPorPessoa reduz as categorias a um único custo por passageiro.
// Quantidade menor que 1 é tratada como 1 para nunca dividir por zero.
func CustoPorPessoa(itens []ItemCusto, quantidadePessoas int) float64 {
	if quantidadePessoas < 1 {
		quantidadePessoas = 1
	}
	var total float64
	for _, item := range itens {
		if item.PorPessoa {
			total += item.Valor
		} else {
			total += item.Valor / float64(quantidadePessoas)
		}
	}
	return total
}

// PrecoSugerido aplica a margem padrão de 30% sobre o custo por pessoa,
// arredondado para centavos.
func PrecoSugerido(custoPorPessoa float64) float64 {
	return math.Round(custoPorPessoa*1.3*100) / 100
}

// LucroPrevisto projeta o resultado da viagem: arrecadação dos pagantes menos
// o custo de todos os passageiros (inclusive os que não pagam).
func LucroPrevisto(precoDefinido, custoPorPessoa float64, pagantes, totalPassageiros int) float64 {
	return precoDefinido*float64(pagantes) - custoPorPessoa*float64(totalPassageiros)
}

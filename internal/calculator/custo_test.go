package calculator

import (
	"math"
	"testing"

	"github.com/v1ctorsales/QuoVadis/models"
)

func TestCustoPorPessoa(t *testing.T) {
	tests := []struct {
		name       string
		itens      []ItemCusto
		quantidade int
		want       float64
	}{
		{
			name: "valor total dividido pelo grupo",
			itens: []ItemCusto{
				{Categoria: "hospedagem", Valor: 1000, PorPessoa: false},
			},
			quantidade: 4,
			want:       250,
		},
		{
			name: "valor por pessoa entra inalterado",
			itens: []ItemCusto{
				{Categoria: "transporte", Valor: 400, PorPessoa: true},
			},
			quantidade: 4,
			want:       400,
		},
		{
			name: "cenario misto hospedagem total e transporte por pessoa",
			itens: []ItemCusto{
				{Categoria: "hospedagem", Valor: 1000, PorPessoa: false},
				{Categoria: "transporte", Valor: 400, PorPessoa: true},
			},
			quantidade: 4,
			want:       650,
		},
		{
			name: "quantidade zero tratada como um",
			itens: []ItemCusto{
				{Categoria: "hospedagem", Valor: 300, PorPessoa: false},
			},
			quantidade: 0,
			want:       300,
		},
		{
			name:       "sem categorias o custo é zero",
			itens:      nil,
			quantidade: 10,
			want:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CustoPorPessoa(tt.itens, tt.quantidade)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("CustoPorPessoa() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestItensViagem(t *testing.T) {
	v := models.Viagem{
		ValorTransporte:                 400,
		CalculoValorTransportePorPessoa: true,
		ValorHotel:                      1000,
		GastosPasseios:                  50,
		GastosPasseiosPorPessoa:         true,
	}

	itens := ItensViagem(v)
	if len(itens) != 5 {
		t.Fatalf("ItensViagem() retornou %d itens, want 5", len(itens))
	}
	if got := CustoPorPessoa(itens, 4); math.Abs(got-700) > 0.001 {
		t.Errorf("CustoPorPessoa(ItensViagem) = %v, want 700", got)
	}
}

func TestPrecoSugerido(t *testing.T) {
	tests := []struct {
		custo float64
		want  float64
	}{
		{650, 845},
		{0, 0},
		{100.33, 130.43}, // 130.429 arredonda para centavos
	}
	for _, tt := range tests {
		if got := PrecoSugerido(tt.custo); math.Abs(got-tt.want) > 0.001 {
			t.Errorf("PrecoSugerido(%v) = %v, want %v", tt.custo, got, tt.want)
		}
	}
}

func TestLucroPrevisto(t *testing.T) {
	// 10 passageiros, 2 não pagam: arrecada 8×900, gasta 10×650.
	got := LucroPrevisto(900, 650, 8, 10)
	if math.Abs(got-700) > 0.001 {
		t.Errorf("LucroPrevisto() = %v, want 700", got)
	}
}

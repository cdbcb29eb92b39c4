package models

import "gorm.io/gorm"

// Viagem é uma excursão agendada com seus parâmetros de custo e preço.
// Cada categoria de gasto carrega a flag "por pessoa": quando falsa, o valor é
// total e precisa ser dividido pelo número de pessoas no cálculo do custo.
type Viagem struct {
	gorm.Model
	Viagem    string `json:"viagem" gorm:"not null;uniqueIndex:idx_viagem_datas"`
	DataIda   string `json:"data_ida" gorm:"uniqueIndex:idx_viagem_datas"`
	DataVolta string `json:"data_volta" gorm:"uniqueIndex:idx_viagem_datas"`

	Transporte                      string  `json:"transporte"`
	ValorTransporte                 float64 `json:"valor_transporte"`
	CalculoValorTransportePorPessoa bool    `json:"calculo_valor_transporte_por_pessoa"`

	Hotel                      string  `json:"hotel"`
	ValorHotel                 float64 `json:"valor_hotel"`
	CalculoValorHotelPorPessoa bool    `json:"calculo_valor_hotel_por_pessoa"`

	GastosPasseios          float64 `json:"gastos_passeios"`
	GastosPasseiosPorPessoa bool    `json:"gastos_passeios_por_pessoa"`

	GastosAlimentacao          float64 `json:"gastos_alimentacao"`
	GastosAlimentacaoPorPessoa bool    `json:"gastos_alimentacao_por_pessoa"`

	OutrosGastos          float64 `json:"outros_gastos"`
	OutrosGastosPorPessoa bool    `json:"outros_gastos_por_pessoa"`

	QuantidadePessoas int     `json:"quantidade_pessoas" gorm:"default:1"`
	PrecoDefinido     float64 `json:"preco_definido"`
	LimiteParcelas    int     `json:"limite_parcelas" gorm:"default:1"`

	// Derivado pela redução de custos; recalculado a cada create/update.
	CustoPorPessoa float64 `json:"custo_por_pessoa"`
}

func (Viagem) TableName() string { return "viagens" }

package models

import "gorm.io/gorm"

// PessoaViagem vincula uma Pessoa a uma Viagem. O par (pessoa, viagem) é único:
// o índice composto é a fonte de verdade contra inscrição duplicada, o
// pré-check no handler existe só para devolver uma mensagem melhor.
//
// Parcelas e ParcelasPagas são colunas do modelo antigo de contagem fixa,
// mantidas apenas para linhas migradas. O fluxo atual usa o extrato aberto de
// Pagamentos.
type PessoaViagem struct {
	gorm.Model
	IDPessoa uint   `json:"idPessoa" gorm:"column:id_pessoa;not null;uniqueIndex:idx_pessoa_viagem"`
	IDViagem uint   `json:"idViagem" gorm:"column:id_viagem;not null;uniqueIndex:idx_pessoa_viagem"`
	Pessoa   Pessoa `json:"pessoa" gorm:"foreignKey:IDPessoa"`
	Viagem   Viagem `json:"-" gorm:"foreignKey:IDViagem"`

	MesInicioPagamento string `json:"mes_inicio_pagamento"`

	Parcelas      int `json:"parcelas,omitempty"`
	ParcelasPagas int `json:"parcelas_pagas,omitempty"`

	Pagamentos []Pagamento `json:"pagamentos" gorm:"foreignKey:IDPessoaViagem"`
}

func (PessoaViagem) TableName() string { return "pessoas_viagens" }

// Pagamento é uma parcela efetivamente recebida de um passageiro.
// Parcela é o índice de sequência, contíguo a partir de 1 dentro do registro.
type Pagamento struct {
	gorm.Model
	IDPessoaViagem uint    `json:"idPessoaViagem" gorm:"column:id_pessoa_viagem;not null;index"`
	Parcela        int     `json:"parcela" gorm:"not null"`
	Valor          float64 `json:"valor" gorm:"type:numeric(12,2);not null"`
	DataPagamento  string  `json:"data_pagamento"`
}

func (Pagamento) TableName() string { return "pagamentos" }

// AutoMigrate cria/atualiza as tabelas na ordem das dependências.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{}, &Pessoa{}, &Viagem{}, &PessoaViagem{}, &Pagamento{})
}

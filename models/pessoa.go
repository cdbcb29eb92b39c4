package models

import "gorm.io/gorm"

// Pessoa representa uma pessoa cadastrada, candidata a passageiro de viagens.
// Datas trafegam e são persistidas no formato do backend de dados: YYYY-MM-DD.
type Pessoa struct {
	gorm.Model
	Nome       string `json:"nome" gorm:"not null"`
	Telefone   string `json:"telefone"`
	CPF        string `json:"cpf" gorm:"column:cpf;unique;not null"`
	RG         string `json:"rg" gorm:"column:rg"`
	Nascimento string `json:"nascimento"`
	NaoPaga    bool   `json:"nao_paga" gorm:"default:false"`
}

func (Pessoa) TableName() string { return "pessoas" }

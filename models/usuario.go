package models

import "gorm.io/gorm"

// Usuario é a credencial compartilhada usada no login do painel.
// Senha aceita tanto hash bcrypt quanto registros legados em texto puro.
type Usuario struct {
	gorm.Model
	Usuario string `json:"usuario" gorm:"unique;not null"`
	Senha   string `json:"-" gorm:"not null"`
}

func (Usuario) TableName() string { return "usuarios" }

package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB abre a conexão com o Postgres. TranslateError faz o GORM converter
// violações de chave única em gorm.ErrDuplicatedKey, que é a fonte de verdade
// para os conflitos de CPF e de passageiro duplicado.
func ConnectDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("variável de ambiente DATABASE_URL não definida")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar no banco: %w", err)
	}
	return db, nil
}

package config

import "os"

// Config reúne toda a configuração lida do ambiente.
type Config struct {
	Port              string
	DatabaseURL       string
	RedisAddr         string
	JWTSecret         string
	NFECompanyID      string
	NFEAPIKey         string
	UnsplashAccessKey string
}

// Load lê as variáveis de ambiente. Campos vazios desligam a funcionalidade
// correspondente, só DATABASE_URL é realmente obrigatória.
func Load() Config {
	cfg := Config{
		Port:              os.Getenv("PORT"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		NFECompanyID:      os.Getenv("NFE_COMPANY_ID"),
		NFEAPIKey:         os.Getenv("NFE_API_KEY"),
		UnsplashAccessKey: os.Getenv("UNSPLASH_ACCESS_KEY"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg
}

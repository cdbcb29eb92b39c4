package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/v1ctorsales/QuoVadis/config"
	"github.com/v1ctorsales/QuoVadis/internal/handlers"
	"github.com/v1ctorsales/QuoVadis/internal/nfe"
	"github.com/v1ctorsales/QuoVadis/internal/routes"
	"github.com/v1ctorsales/QuoVadis/internal/unsplash"
	"github.com/v1ctorsales/QuoVadis/models"
	"github.com/v1ctorsales/QuoVadis/pkg/logging"
)

func main() {
	// .env é opcional, em produção as variáveis vêm do ambiente
	_ = godotenv.Load()
	logging.Setup()

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		slog.Error("DATABASE_URL não configurada")
		os.Exit(1)
	}
	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET não configurada, o login vai falhar")
	}

	db, err := config.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		slog.Error("falha ao conectar no banco", "error", err)
		os.Exit(1)
	}
	if err := models.AutoMigrate(db); err != nil {
		slog.Error("falha ao migrar o banco", "error", err)
		os.Exit(1)
	}

	rdb := config.ConnectRedis(cfg.RedisAddr)

	var nfeClient *nfe.Client
	if cfg.NFECompanyID != "" && cfg.NFEAPIKey != "" {
		nfeClient = nfe.NewClient(cfg.NFECompanyID, cfg.NFEAPIKey)
	}
	var unsplashClient *unsplash.Client
	if cfg.UnsplashAccessKey != "" {
		unsplashClient = unsplash.NewClient(cfg.UnsplashAccessKey)
	}

	r := routes.SetupRoutes(routes.Handlers{
		Pessoas:     handlers.NewPessoaHandler(db),
		Viagens:     handlers.NewViagemHandler(db),
		Passageiros: handlers.NewPassageiroHandler(db),
		Inicio:      handlers.NewInicioHandler(db, unsplashClient, rdb),
		Auth:        handlers.NewAuthHandler(db, cfg.JWTSecret),
		NFE:         handlers.NewNFEHandler(nfeClient),
	}, cfg.JWTSecret)

	slog.Info("servidor iniciado", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("servidor encerrado com erro", "error", err)
		os.Exit(1)
	}
}

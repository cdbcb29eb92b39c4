package config

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis conecta no Redis usado como cache das imagens de capa.
// O cache é opcional: sem REDIS_ADDR ou com o servidor fora do ar o retorno é
// nil e o restante da aplicação segue funcionando sem cache.
func ConnectRedis(addr string) *redis.Client {
	if addr == "" {
		slog.Warn("REDIS_ADDR não definida, cache de imagens desativado")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		slog.Error("não foi possível conectar no Redis, seguindo sem cache", "error", err)
		return nil
	}

	slog.Info("conectado ao Redis", "addr", addr)
	return rdb
}

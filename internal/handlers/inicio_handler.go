package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/v1ctorsales/QuoVadis/internal/calculator"
	"github.com/v1ctorsales/QuoVadis/internal/unsplash"
	"github.com/v1ctorsales/QuoVadis/models"
)

// imagensLocais mapeia trechos do nome do destino para os assets servidos pelo
// front. A busca no Unsplash só acontece quando nenhum trecho casa.
var imagensLocais = []struct {
	trecho string
	url    string
}{
	{"aparecida do norte", "/imgs/destinos/aparecida.jpg"},
	{"caldas novas", "/imgs/destinos/caldas.jpeg"},
	{"campos do jord", "/imgs/destinos/camposdojordao.jpg"},
	{"rio de nazar", "/imgs/destinos/cirio.jpg"},
	{"gramado", "/imgs/destinos/gramado.jpg"},
	{"resende costa", "/imgs/destinos/resende.jpg"},
}

// InicioHandler atende /api/Inicio: o resumo da página inicial com a próxima
// viagem, os números financeiros dela e as listas curtas de viagens.
type InicioHandler struct {
	DB       *gorm.DB
	Unsplash *unsplash.Client
	Cache    *redis.Client

	// Agora permite fixar o relógio nos testes.
	Agora func() time.Time
}

func NewInicioHandler(db *gorm.DB, unsplashClient *unsplash.Client, cache *redis.Client) *InicioHandler {
	return &InicioHandler{
		DB:       db,
		Unsplash: unsplashClient,
		Cache:    cache,
		Agora:    func() time.Time { return time.Now().UTC() },
	}
}

func (h *InicioHandler) Dispatch(c *gin.Context) {
	if c.Request.Method == http.MethodGet && c.Query("action") == "getInicio" {
		h.getInicio(c)
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Ação inválida ou método HTTP não suportado."})
}

func (h *InicioHandler) getInicio(c *gin.Context) {
	hoje := h.Agora().Format("2006-01-02")

	var proxima models.Viagem
	err := h.DB.Where("data_ida >= ?", hoje).Order("data_ida asc").First(&proxima).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Nenhuma viagem futura encontrada."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar próxima viagem."})
		return
	}

	var totalPassageiros int64
	if err := h.DB.Model(&models.PessoaViagem{}).Where("id_viagem = ?", proxima.ID).Count(&totalPassageiros).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar passageiros."})
		return
	}

	var naoPagantes int64
	err = h.DB.Model(&models.PessoaViagem{}).
		Joins("JOIN pessoas ON pessoas.id = pessoas_viagens.id_pessoa").
		Where("pessoas_viagens.id_viagem = ? AND pessoas.nao_paga = ?", proxima.ID, true).
		Count(&naoPagantes).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar passageiros não pagantes."})
		return
	}

	pagantes := int(totalPassageiros - naoPagantes)
	arrecadacao := proxima.PrecoDefinido * float64(pagantes)
	custoTotal := proxima.CustoPorPessoa * float64(totalPassageiros)
	lucro := calculator.LucroPrevisto(proxima.PrecoDefinido, proxima.CustoPorPessoa, pagantes, int(totalPassageiros))

	// Listas curtas são melhor esforço: erro aqui não derruba o resumo.
	var proximas []models.Viagem
	if err := h.DB.Where("data_ida > ?", proxima.DataIda).Order("data_ida asc").Limit(3).Find(&proximas).Error; err != nil {
		slog.Error("erro ao buscar próximas viagens", "error", err)
	}
	var ultimas []models.Viagem
	if err := h.DB.Where("data_ida < ?", hoje).Order("data_ida desc").Limit(3).Find(&ultimas).Error; err != nil {
		slog.Error("erro ao buscar últimas viagens", "error", err)
	}
	if proximas == nil {
		proximas = make([]models.Viagem, 0)
	}
	if ultimas == nil {
		ultimas = make([]models.Viagem, 0)
	}

	proximaViagem := gin.H{
		"id":               proxima.ID,
		"destino":          proxima.Viagem,
		"data_ida":         proxima.DataIda,
		"data_volta":       proxima.DataVolta,
		"passageiros":      fmt.Sprintf("%d/%d", totalPassageiros, proxima.QuantidadePessoas),
		"preco_definido":   proxima.PrecoDefinido,
		"valor_arrecadado": arrecadacao,
		"custoPorPessoa":   proxima.CustoPorPessoa,
		"custo_total":      custoTotal,
		"lucro_previsto":   lucro,
		"nao_paga":         naoPagantes,
	}

	if imagem := h.imagemDeCapa(c.Request.Context(), proxima); imagem != "" {
		proximaViagem["imageUrl"] = imagem
	}

	c.JSON(http.StatusOK, gin.H{
		"proximaViagem":   proximaViagem,
		"proximasViagens": proximas,
		"ultimasViagens":  ultimas,
	})
}

// imagemDeCapa resolve a capa do destino: asset local, cache, e por fim o
// Unsplash. Toda falha é engolida, capa é decoração.
func (h *InicioHandler) imagemDeCapa(ctx context.Context, viagem models.Viagem) string {
	destino := strings.ToLower(viagem.Viagem)
	for _, local := range imagensLocais {
		if strings.Contains(destino, local.trecho) {
			return local.url
		}
	}

	if h.Unsplash == nil || h.Unsplash.AccessKey == "" {
		return ""
	}

	chave := fmt.Sprintf("capa:viagem:%d", viagem.ID)
	if h.Cache != nil {
		if url, err := h.Cache.Get(ctx, chave).Result(); err == nil && url != "" {
			return url
		} else if err != nil && err != redis.Nil {
			slog.Warn("falha ao ler cache de capa", "error", err)
		}
	}

	url, err := h.Unsplash.BuscarImagem("viajar " + viagem.Viagem)
	if err != nil {
		slog.Error("erro ao buscar imagem no Unsplash", "error", err, "destino", viagem.Viagem)
		return ""
	}

	if url != "" && h.Cache != nil {
		if err := h.Cache.Set(ctx, chave, url, 24*time.Hour).Err(); err != nil {
			slog.Warn("falha ao gravar cache de capa", "error", err)
		}
	}
	return url
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/v1ctorsales/QuoVadis/internal/calculator"
	"github.com/v1ctorsales/QuoVadis/models"
)

// ViagemHandler atende o recurso /api/Viagens.
type ViagemHandler struct {
	DB *gorm.DB
}

func NewViagemHandler(db *gorm.DB) *ViagemHandler {
	return &ViagemHandler{DB: db}
}

func (h *ViagemHandler) Dispatch(c *gin.Context) {
	action := c.Query("action")
	method := c.Request.Method

	switch {
	case method == http.MethodGet && action == "getAll":
		h.list(c)
	case method == http.MethodGet && action == "getSearch":
		h.search(c)
	case method == http.MethodGet && (action == "getById" || action == "getFromId"):
		h.getByID(c)
	case method == http.MethodPost && action == "createViagem":
		h.create(c)
	case method == http.MethodPut && action == "updateViagem":
		h.update(c)
	case method == http.MethodDelete && action == "deleteViagem":
		h.delete(c)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ação inválida ou método HTTP não suportado."})
	}
}

// viagemResumo é a projeção usada na listagem, com as colunas que a tabela de
// viagens exibe.
type viagemResumo struct {
	ID            uint    `json:"id"`
	Viagem        string  `json:"viagem"`
	DataIda       string  `json:"data_ida"`
	DataVolta     string  `json:"data_volta"`
	Transporte    string  `json:"transporte"`
	Hotel         string  `json:"hotel"`
	PrecoDefinido float64 `json:"preco_definido"`
}

func (h *ViagemHandler) list(c *gin.Context) {
	var viagens []viagemResumo
	var total int64

	if err := h.DB.Model(&models.Viagem{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar viagens no banco."})
		return
	}

	err := h.DB.Model(&models.Viagem{}).
		Select("id, viagem, data_ida, data_volta, transporte, hotel, preco_definido").
		Order("data_ida asc").
		Scopes(Paginate(c)).
		Scan(&viagens).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar viagens no banco."})
		return
	}
	if viagens == nil {
		viagens = make([]viagemResumo, 0)
	}

	c.JSON(http.StatusOK, gin.H{"data": viagens, "total": total})
}

func (h *ViagemHandler) search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro de pesquisa ausente."})
		return
	}

	padrao := "%" + strings.ToLower(query) + "%"
	base := h.DB.Model(&models.Viagem{}).Where("LOWER(viagem) LIKE ?", padrao).Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar viagens no banco."})
		return
	}

	var viagens []viagemResumo
	err := base.
		Select("id, viagem, data_ida, data_volta, transporte, hotel, preco_definido").
		Order("data_ida asc").
		Scopes(Paginate(c)).
		Scan(&viagens).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar viagens no banco."})
		return
	}
	if viagens == nil {
		viagens = make([]viagemResumo, 0)
	}

	c.JSON(http.StatusOK, gin.H{"data": viagens, "total": total})
}

func (h *ViagemHandler) getByID(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID da viagem é obrigatório."})
		return
	}

	var viagem models.Viagem
	if err := h.DB.First(&viagem, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Viagem não encontrada."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar a viagem no banco."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": []models.Viagem{viagem}})
}

// viagemRequest segue os nomes de campo que o formulário do front envia.
type viagemRequest struct {
	ID        uint   `json:"id"`
	Destino   string `json:"destino"`
	DataIda   string `json:"dataIda"`
	DataVolta string `json:"dataVolta"`

	Transporte          string  `json:"transporte"`
	ValorTransporte     float64 `json:"valorTransporte"`
	TransportePorPessoa bool    `json:"transportePorPessoa"`

	Hospedagem          string  `json:"hospedagem"`
	ValorHospedagem     float64 `json:"valorHospedagem"`
	HospedagemPorPessoa bool    `json:"hospedagemPorPessoa"`

	ValorGastoPasseios     float64 `json:"valorGastoPasseios"`
	GastoPasseiosPorPessoa bool    `json:"gastoPasseiosPorPessoa"`

	ValorGastoAlimentacao     float64 `json:"valorGastoAlimentacao"`
	GastoAlimentacaoPorPessoa bool    `json:"gastoAlimentacaoPorPessoa"`

	ValorOutrosGastos     float64 `json:"valorOutrosGastos"`
	OutrosGastosPorPessoa bool    `json:"outrosGastosPorPessoa"`

	QuantidadePessoas int     `json:"quantidade_pessoas"`
	PrecoSugerido     float64 `json:"preco_sugerido"`
	PrecoDefinido     float64 `json:"preco_definido"`
	LimiteParcelas    int     `json:"limite_parcelas"`
}

func (req *viagemRequest) viagem() models.Viagem {
	quantidade := req.QuantidadePessoas
	if quantidade < 1 {
		quantidade = 1
	}
	limite := req.LimiteParcelas
	if limite < 1 {
		limite = 1
	}

	v := models.Viagem{
		Viagem:    req.Destino,
		DataIda:   req.DataIda,
		DataVolta: req.DataVolta,

		Transporte:                      req.Transporte,
		ValorTransporte:                 req.ValorTransporte,
		CalculoValorTransportePorPessoa: req.TransportePorPessoa,

		Hotel:                      req.Hospedagem,
		ValorHotel:                 req.ValorHospedagem,
		CalculoValorHotelPorPessoa: req.HospedagemPorPessoa,

		GastosPasseios:          req.ValorGastoPasseios,
		GastosPasseiosPorPessoa: req.GastoPasseiosPorPessoa,

		GastosAlimentacao:          req.ValorGastoAlimentacao,
		GastosAlimentacaoPorPessoa: req.GastoAlimentacaoPorPessoa,

		OutrosGastos:          req.ValorOutrosGastos,
		OutrosGastosPorPessoa: req.OutrosGastosPorPessoa,

		QuantidadePessoas: quantidade,
		LimiteParcelas:    limite,
	}
	// O custo derivado é sempre recalculado no servidor, nunca aceito do
	// cliente.
	v.CustoPorPessoa = calculator.CustoPorPessoa(calculator.ItensViagem(v), v.QuantidadePessoas)
	return v
}

func (h *ViagemHandler) create(c *gin.Context) {
	var req viagemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}
	if req.Destino == "" || req.DataIda == "" || req.DataVolta == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Destino, data de ida e data de volta são obrigatórios."})
		return
	}
	if req.Transporte == "" || req.ValorTransporte == 0 || req.Hospedagem == "" || req.ValorHospedagem == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Transporte, valor de transporte, hospedagem e valor da hospedagem são obrigatórios."})
		return
	}

	// Viagem idêntica já existente não é erro, devolve o registro encontrado.
	var existente models.Viagem
	err := h.DB.Select("id").
		Where("viagem = ? AND data_ida = ? AND data_volta = ?", req.Destino, req.DataIda, req.DataVolta).
		First(&existente).Error
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Viagem já existe", "data": []models.Viagem{existente}})
		return
	}

	viagem := req.viagem()
	viagem.PrecoDefinido = req.PrecoSugerido

	if err := h.DB.Create(&viagem).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Corrida entre o pré-check e o insert: trata como duplicada.
			h.DB.Select("id").
				Where("viagem = ? AND data_ida = ? AND data_volta = ?", req.Destino, req.DataIda, req.DataVolta).
				First(&existente)
			c.JSON(http.StatusOK, gin.H{"message": "Viagem já existe", "data": []models.Viagem{existente}})
			return
		}
		slog.Error("erro ao criar viagem", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar viagem no banco."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Viagem criada com sucesso", "data": []models.Viagem{viagem}})
}

func (h *ViagemHandler) update(c *gin.Context) {
	var req viagemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}
	if req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID da viagem é obrigatório para atualização."})
		return
	}

	var atual models.Viagem
	if err := h.DB.First(&atual, req.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Viagem não encontrada."})
		return
	}

	viagem := req.viagem()
	viagem.ID = atual.ID
	viagem.CreatedAt = atual.CreatedAt
	viagem.PrecoDefinido = req.PrecoDefinido

	if err := h.DB.Save(&viagem).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar viagem no banco."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Viagem atualizada com sucesso", "data": []models.Viagem{viagem}})
}

func (h *ViagemHandler) delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID da viagem é obrigatório para exclusão."})
		return
	}

	result := h.DB.Unscoped().Delete(&models.Viagem{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao excluir viagem no banco."})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Viagem não encontrada."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Viagem excluída com sucesso!"})
}

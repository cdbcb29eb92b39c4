package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/v1ctorsales/QuoVadis/models"
)

// PessoaHandler atende o recurso /api/Pessoas. A operação é selecionada pelo
// método HTTP combinado com o parâmetro "action", o contrato que o front
// espera.
type PessoaHandler struct {
	DB *gorm.DB
}

func NewPessoaHandler(db *gorm.DB) *PessoaHandler {
	return &PessoaHandler{DB: db}
}

func (h *PessoaHandler) Dispatch(c *gin.Context) {
	action := c.Query("action")
	method := c.Request.Method

	switch {
	case method == http.MethodGet && action == "getAll":
		h.list(c)
	case method == http.MethodGet && action == "getSearch":
		h.search(c)
	case method == http.MethodGet && action == "checkCPF":
		h.checkCPF(c)
	case method == http.MethodPost && action == "createPessoa":
		h.create(c)
	case method == http.MethodPut && action == "updatePessoa":
		h.update(c)
	case method == http.MethodDelete && action == "deletePessoa":
		h.delete(c)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ação inválida ou método HTTP não suportado."})
	}
}

// ListAll é o endpoint antigo /api/getPessoas: devolve todas as pessoas sem
// paginação, como um array puro. O front novo usa getAll; este fica pelos
// clientes que ainda chamam a rota antiga.
func (h *PessoaHandler) ListAll(c *gin.Context) {
	var pessoas []models.Pessoa
	if err := h.DB.Order("nome").Find(&pessoas).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar dados no banco."})
		return
	}
	if pessoas == nil {
		pessoas = make([]models.Pessoa, 0)
	}
	c.JSON(http.StatusOK, pessoas)
}

func (h *PessoaHandler) list(c *gin.Context) {
	var pessoas []models.Pessoa
	var total int64

	if err := h.DB.Model(&models.Pessoa{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar dados no banco."})
		return
	}
	if err := h.DB.Scopes(Paginate(c)).Order("nome").Find(&pessoas).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar dados no banco."})
		return
	}
	if pessoas == nil {
		pessoas = make([]models.Pessoa, 0)
	}

	c.JSON(http.StatusOK, gin.H{"data": pessoas, "total": total})
}

func (h *PessoaHandler) search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro de pesquisa ausente."})
		return
	}

	padrao := "%" + strings.ToLower(query) + "%"
	base := h.DB.Model(&models.Pessoa{}).Where("LOWER(nome) LIKE ?", padrao).Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar pessoas no banco."})
		return
	}

	var pessoas []models.Pessoa
	if err := base.Scopes(Paginate(c)).Order("nome").Find(&pessoas).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar pessoas no banco."})
		return
	}
	if pessoas == nil {
		pessoas = make([]models.Pessoa, 0)
	}

	c.JSON(http.StatusOK, gin.H{"data": pessoas, "total": total})
}

func (h *PessoaHandler) checkCPF(c *gin.Context) {
	cpf := c.Query("cpf")
	if cpf == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "CPF é obrigatório para verificação."})
		return
	}

	var pessoa models.Pessoa
	err := h.DB.Select("id").Where("cpf = ?", cpf).First(&pessoa).Error
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"exists": true})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusOK, gin.H{"exists": false})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao verificar CPF no banco."})
	}
}

type pessoaRequest struct {
	ID         uint   `json:"id"`
	Nome       string `json:"nome"`
	Telefone   string `json:"telefone"`
	CPF        string `json:"cpf"`
	RG         string `json:"rg"`
	Nascimento string `json:"nascimento"`
	NaoPaga    bool   `json:"nao_paga"`
}

func (h *PessoaHandler) create(c *gin.Context) {
	var req pessoaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}
	if req.Nome == "" || req.Telefone == "" || req.CPF == "" || req.RG == "" || req.Nascimento == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Todos os campos são obrigatórios para criar uma pessoa."})
		return
	}

	// Pré-check de CPF para devolver a mensagem de sempre; a constraint única
	// continua sendo quem garante a unicidade sob concorrência.
	var existente models.Pessoa
	if err := h.DB.Select("id").Where("cpf = ?", req.CPF).First(&existente).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Este CPF já está cadastrado."})
		return
	}

	pessoa := models.Pessoa{
		Nome:       CapitalizarNome(req.Nome),
		Telefone:   FormatarTelefone(req.Telefone),
		CPF:        req.CPF,
		RG:         req.RG,
		Nascimento: req.Nascimento,
		NaoPaga:    req.NaoPaga,
	}

	if err := h.DB.Create(&pessoa).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Este CPF já está cadastrado."})
			return
		}
		slog.Error("erro ao criar pessoa", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar pessoa no banco."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Pessoa criada com sucesso", "data": []models.Pessoa{pessoa}})
}

func (h *PessoaHandler) update(c *gin.Context) {
	var req pessoaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}
	if req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID da pessoa é obrigatório para atualização."})
		return
	}

	var pessoa models.Pessoa
	if err := h.DB.First(&pessoa, req.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pessoa não encontrada."})
		return
	}

	pessoa.Nome = req.Nome
	pessoa.Telefone = req.Telefone
	pessoa.CPF = req.CPF
	pessoa.RG = req.RG
	pessoa.Nascimento = req.Nascimento
	pessoa.NaoPaga = req.NaoPaga

	if err := h.DB.Save(&pessoa).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Este CPF já está cadastrado."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar pessoa no banco."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pessoa atualizada com sucesso", "data": []models.Pessoa{pessoa}})
}

func (h *PessoaHandler) delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID da pessoa é obrigatório para exclusão."})
		return
	}

	// Exclusão definitiva: o CPF precisa voltar a ficar livre para cadastro.
	result := h.DB.Unscoped().Delete(&models.Pessoa{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao excluir pessoa no banco."})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pessoa não encontrada."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pessoa excluída com sucesso!"})
}

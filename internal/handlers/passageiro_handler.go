package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/v1ctorsales/QuoVadis/internal/calculator"
	"github.com/v1ctorsales/QuoVadis/internal/listaspdf"
	"github.com/v1ctorsales/QuoVadis/models"
)

// PassageiroHandler atende o recurso /api/Passageiros: inscrições de pessoas
// em viagens e o extrato de pagamentos de cada inscrição.
type PassageiroHandler struct {
	DB *gorm.DB
}

func NewPassageiroHandler(db *gorm.DB) *PassageiroHandler {
	return &PassageiroHandler{DB: db}
}

func (h *PassageiroHandler) Dispatch(c *gin.Context) {
	action := c.Query("action")
	method := c.Request.Method

	switch {
	case method == http.MethodGet && action == "getByViagemId":
		h.listByViagem(c)
	case method == http.MethodGet && action == "getSearch":
		h.search(c)
	case method == http.MethodGet && action == "PrintListaPassageiros":
		h.printLista(c)
	case method == http.MethodGet && action == "ExportListaPassageiros":
		h.exportLista(c)
	case method == http.MethodPost && action == "createPassageiro":
		h.create(c)
	case method == http.MethodPut && action == "updatePagamento":
		h.updatePagamento(c)
	case method == http.MethodDelete && action == "deleteParcela":
		h.deleteParcela(c)
	case method == http.MethodDelete && action == "deletePassageiro":
		h.delete(c)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ação inválida ou método HTTP não suportado."})
	}
}

// passageiroResponse é a linha da listagem: a inscrição com a pessoa e o
// extrato, mais os campos derivados de reconciliação.
type passageiroResponse struct {
	ID                 uint                 `json:"id"`
	IDPessoa           uint                 `json:"idPessoa"`
	IDViagem           uint                 `json:"idViagem"`
	MesInicioPagamento string               `json:"mes_inicio_pagamento"`
	Pessoa             models.Pessoa        `json:"pessoa"`
	Pagamentos         []models.Pagamento   `json:"pagamentos"`
	ValorPago          float64              `json:"valor_pago"`
	ValorFaltante      float64              `json:"valor_faltante"`
	PercentualPago     float64              `json:"percentual_pago"`
	Situacao           string               `json:"situacao"`
	Cronograma         []calculator.Parcela `json:"cronograma"`
}

func montarResposta(registro models.PessoaViagem, viagem models.Viagem, hoje time.Time) passageiroResponse {
	pago := calculator.ValorPago(registro.Pagamentos)

	situacao := calculator.RegistroEmDia
	var cronograma []calculator.Parcela
	if inicio, err := time.Parse("2006-01-02", registro.MesInicioPagamento); err == nil {
		situacao = calculator.SituacaoRegistro(inicio, viagem.LimiteParcelas, len(registro.Pagamentos), hoje)
		cronograma = calculator.GerarParcelas(inicio, viagem.LimiteParcelas, len(registro.Pagamentos), hoje)
	}

	pagamentos := registro.Pagamentos
	if pagamentos == nil {
		pagamentos = make([]models.Pagamento, 0)
	}

	return passageiroResponse{
		ID:                 registro.ID,
		IDPessoa:           registro.IDPessoa,
		IDViagem:           registro.IDViagem,
		MesInicioPagamento: registro.MesInicioPagamento,
		Pessoa:             registro.Pessoa,
		Pagamentos:         pagamentos,
		ValorPago:          pago,
		ValorFaltante:      viagem.PrecoDefinido - pago,
		PercentualPago:     calculator.PercentualPago(pago, viagem.PrecoDefinido),
		Situacao:           situacao,
		Cronograma:         cronograma,
	}
}

func (h *PassageiroHandler) viagemDoParam(c *gin.Context, param string) (models.Viagem, bool) {
	id := c.Query(param)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID da viagem é obrigatório."})
		return models.Viagem{}, false
	}
	var viagem models.Viagem
	if err := h.DB.First(&viagem, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Viagem não encontrada."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar dados da viagem no banco."})
		}
		return models.Viagem{}, false
	}
	return viagem, true
}

func (h *PassageiroHandler) listByViagem(c *gin.Context) {
	viagem, ok := h.viagemDoParam(c, "id")
	if !ok {
		return
	}

	base := h.DB.Model(&models.PessoaViagem{}).Where("id_viagem = ?", viagem.ID).Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar passageiros no banco."})
		return
	}

	var registros []models.PessoaViagem
	err := h.DB.Where("id_viagem = ?", viagem.ID).
		Preload("Pessoa").
		Preload("Pagamentos", func(db *gorm.DB) *gorm.DB { return db.Order("parcela asc") }).
		Scopes(Paginate(c)).
		Order("id asc").
		Find(&registros).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar passageiros no banco."})
		return
	}

	hoje := time.Now().UTC()
	resposta := make([]passageiroResponse, 0, len(registros))
	for _, registro := range registros {
		resposta = append(resposta, montarResposta(registro, viagem, hoje))
	}

	c.JSON(http.StatusOK, gin.H{
		"data":           resposta,
		"total":          total,
		"preco_definido": viagem.PrecoDefinido,
	})
}

func (h *PassageiroHandler) search(c *gin.Context) {
	viagem, ok := h.viagemDoParam(c, "viagemId")
	if !ok {
		return
	}
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro de pesquisa ausente."})
		return
	}

	padrao := "%" + strings.ToLower(query) + "%"
	base := h.DB.Model(&models.PessoaViagem{}).
		Joins("JOIN pessoas ON pessoas.id = pessoas_viagens.id_pessoa").
		Where("pessoas_viagens.id_viagem = ? AND LOWER(pessoas.nome) LIKE ?", viagem.ID, padrao).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar passageiros no banco."})
		return
	}

	var registros []models.PessoaViagem
	err := base.
		Preload("Pessoa").
		Preload("Pagamentos", func(db *gorm.DB) *gorm.DB { return db.Order("parcela asc") }).
		Scopes(Paginate(c)).
		Order("pessoas.nome asc").
		Find(&registros).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar passageiros no banco."})
		return
	}

	hoje := time.Now().UTC()
	resposta := make([]passageiroResponse, 0, len(registros))
	for _, registro := range registros {
		resposta = append(resposta, montarResposta(registro, viagem, hoje))
	}

	c.JSON(http.StatusOK, gin.H{
		"data":           resposta,
		"total":          total,
		"preco_definido": viagem.PrecoDefinido,
	})
}

type passageiroRequest struct {
	IDPessoa           uint   `json:"idPessoa"`
	IDViagem           uint   `json:"idViagem"`
	MesInicioPagamento string `json:"mes_inicio_pagamento"`
}

func (h *PassageiroHandler) create(c *gin.Context) {
	var req passageiroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}
	if req.IDPessoa == 0 || req.IDViagem == 0 || req.MesInicioPagamento == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Pessoa, viagem e mês de início do pagamento são obrigatórios."})
		return
	}

	// Pré-check para mensagem amigável; o índice único (pessoa, viagem) cobre
	// a corrida entre o check e o insert.
	var existente models.PessoaViagem
	err := h.DB.Select("id").
		Where("id_pessoa = ? AND id_viagem = ?", req.IDPessoa, req.IDViagem).
		First(&existente).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Passageiro já cadastrado para esta viagem."})
		return
	}

	registro := models.PessoaViagem{
		IDPessoa:           req.IDPessoa,
		IDViagem:           req.IDViagem,
		MesInicioPagamento: req.MesInicioPagamento,
	}
	if err := h.DB.Create(&registro).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Passageiro já cadastrado para esta viagem."})
			return
		}
		slog.Error("erro ao inserir passageiro", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao inserir passageiro no banco."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Passageiro inserido com sucesso", "data": []models.PessoaViagem{registro}})
}

type pagamentoRequest struct {
	Parcela       int     `json:"parcela"`
	Valor         float64 `json:"valor"`
	DataPagamento string  `json:"data_pagamento"`
}

type updatePagamentoRequest struct {
	ID         uint               `json:"id"`
	Pagamentos []pagamentoRequest `json:"pagamentos"`
}

// updatePagamento substitui o extrato completo do registro pela lista enviada,
// renumerando a sequência na ordem de submissão.
func (h *PassageiroHandler) updatePagamento(c *gin.Context) {
	var req updatePagamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}
	if req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID do registro é obrigatório para atualização."})
		return
	}

	var registro models.PessoaViagem
	if err := h.DB.First(&registro, req.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Registro do passageiro não encontrado."})
		return
	}

	novos := make([]models.Pagamento, 0, len(req.Pagamentos))
	for _, p := range req.Pagamentos {
		novos = append(novos, models.Pagamento{
			IDPessoaViagem: registro.ID,
			Valor:          p.Valor,
			DataPagamento:  p.DataPagamento,
		})
	}
	novos = calculator.RenumerarParcelas(novos)

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("id_pessoa_viagem = ?", registro.ID).Delete(&models.Pagamento{}).Error; err != nil {
			return err
		}
		if len(novos) == 0 {
			return nil
		}
		return tx.Create(&novos).Error
	})
	if err != nil {
		slog.Error("erro ao atualizar pagamentos", "error", err, "registro", registro.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar pagamento no banco."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pagamento atualizado com sucesso", "data": novos})
}

// deleteParcela exclui um pagamento e renumera as parcelas restantes do mesmo
// registro de forma contígua a partir de 1. As duas escritas rodam na mesma
// transação: ou a parcela some já renumerada, ou nada muda.
func (h *PassageiroHandler) deleteParcela(c *gin.Context) {
	parcelaID := c.Query("parcelaId")
	if parcelaID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID da parcela é obrigatório para exclusão."})
		return
	}

	var pagamento models.Pagamento
	if err := h.DB.First(&pagamento, parcelaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Parcela não encontrada."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar parcela no banco."})
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&pagamento).Error; err != nil {
			return err
		}
		return reordenarParcelas(tx, pagamento.IDPessoaViagem)
	})
	if err != nil {
		slog.Error("erro ao excluir parcela", "error", err, "parcela", pagamento.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao excluir parcela no banco."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Parcela excluída com sucesso"})
}

// reordenarParcelas é a rotina de reordenação do lado do servidor: reatribui a
// sequência 1..n dos pagamentos de um registro preservando a ordem atual.
func reordenarParcelas(tx *gorm.DB, idPessoaViagem uint) error {
	var restantes []models.Pagamento
	if err := tx.Where("id_pessoa_viagem = ?", idPessoaViagem).Order("parcela asc").Find(&restantes).Error; err != nil {
		return err
	}
	for i, p := range restantes {
		if p.Parcela == i+1 {
			continue
		}
		if err := tx.Model(&models.Pagamento{}).Where("id = ?", p.ID).Update("parcela", i+1).Error; err != nil {
			return err
		}
	}
	return nil
}

func (h *PassageiroHandler) delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID do passageiro é obrigatório para exclusão."})
		return
	}

	var registro models.PessoaViagem
	if err := h.DB.First(&registro, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Passageiro não encontrado."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar passageiro no banco."})
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("id_pessoa_viagem = ?", registro.ID).Delete(&models.Pagamento{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&registro).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao excluir passageiro no banco."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Passageiro excluído com sucesso!"})
}

func (h *PassageiroHandler) linhasDaViagem(viagem models.Viagem) ([]listaspdf.Linha, error) {
	var registros []models.PessoaViagem
	err := h.DB.Where("id_viagem = ?", viagem.ID).
		Preload("Pessoa").
		Find(&registros).Error
	if err != nil {
		return nil, err
	}

	linhas := make([]listaspdf.Linha, 0, len(registros))
	for _, registro := range registros {
		linhas = append(linhas, listaspdf.Linha{
			Nome:       registro.Pessoa.Nome,
			CPF:        registro.Pessoa.CPF,
			RG:         registro.Pessoa.RG,
			Telefone:   registro.Pessoa.Telefone,
			Nascimento: formatarDataBR(registro.Pessoa.Nascimento),
		})
	}
	return linhas, nil
}

func (h *PassageiroHandler) printLista(c *gin.Context) {
	viagem, ok := h.viagemDoParam(c, "id")
	if !ok {
		return
	}

	linhas, err := h.linhasDaViagem(viagem)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar passageiros no banco."})
		return
	}

	periodo := fmt.Sprintf("%s a %s", formatarDataBR(viagem.DataIda), formatarDataBR(viagem.DataVolta))
	documento, err := listaspdf.Gerar(viagem.Viagem, periodo, linhas)
	if err != nil {
		slog.Error("erro ao gerar PDF da lista", "error", err, "viagem", viagem.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao gerar a lista de passageiros."})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"passageiros-%d.pdf\"", viagem.ID))
	c.Data(http.StatusOK, "application/pdf", documento)
}

func (h *PassageiroHandler) exportLista(c *gin.Context) {
	viagem, ok := h.viagemDoParam(c, "id")
	if !ok {
		return
	}

	linhas, err := h.linhasDaViagem(viagem)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar passageiros no banco."})
		return
	}

	planilha := excelize.NewFile()
	aba := planilha.GetSheetName(0)
	cabecalho := []string{"Nome", "CPF", "RG", "Telefone", "Nascimento"}
	for i, titulo := range cabecalho {
		celula, _ := excelize.CoordinatesToCellName(i+1, 1)
		planilha.SetCellValue(aba, celula, titulo)
	}
	for linhaIdx, linha := range linhas {
		valores := []string{linha.Nome, linha.CPF, linha.RG, linha.Telefone, linha.Nascimento}
		for colIdx, valor := range valores {
			celula, _ := excelize.CoordinatesToCellName(colIdx+1, linhaIdx+2)
			planilha.SetCellValue(aba, celula, valor)
		}
	}

	conteudo, err := planilha.WriteToBuffer()
	if err != nil {
		slog.Error("erro ao gerar planilha da lista", "error", err, "viagem", viagem.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao gerar a lista de passageiros."})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"passageiros-%d.xlsx\"", viagem.ID))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", conteudo.Bytes())
}

// formatarDataBR converte YYYY-MM-DD para DD/MM/YYYY; outros formatos passam
// inalterados.
func formatarDataBR(data string) string {
	t, err := time.Parse("2006-01-02", data)
	if err != nil {
		return data
	}
	return t.Format("02/01/2006")
}

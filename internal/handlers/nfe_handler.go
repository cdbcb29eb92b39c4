package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/v1ctorsales/QuoVadis/internal/nfe"
)

// NFEHandler atende /api/NFE: valida o payload de emissão e repassa ao
// serviço externo, devolvendo o status da fila.
type NFEHandler struct {
	Client *nfe.Client
}

func NewNFEHandler(client *nfe.Client) *NFEHandler {
	return &NFEHandler{Client: client}
}

func (h *NFEHandler) Dispatch(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.Header("Allow", http.MethodPost)
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Método não permitido."})
		return
	}

	if h.Client == nil || h.Client.CompanyID == "" || h.Client.APIKey == "" {
		slog.Error("NFE_COMPANY_ID ou NFE_APIKEY não definidas")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Configuração da NF-e ausente."})
		return
	}

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}

	// Campos obrigatórios da estrutura completa de emissão.
	obrigatorios := []string{"provider", "borrower", "externalId", "rpsNumber", "description"}
	for _, campo := range obrigatorios {
		if valor, ok := payload[campo]; !ok || valor == nil || valor == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Dados insuficientes para emissão da NF-e. Verifique os dados enviados."})
			return
		}
	}
	if valor, ok := payload["servicesAmount"]; !ok || valor == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados insuficientes para emissão da NF-e. Verifique os dados enviados."})
		return
	}

	resultado, err := h.Client.Emitir(payload)
	if err != nil {
		slog.Error("erro ao emitir NF-e", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno ao emitir NF-e."})
		return
	}

	if resultado.StatusCode < 200 || resultado.StatusCode > 299 {
		// Falha do serviço repassada como veio, sem retry.
		mensagem := "Erro na emissão da NF-e"
		if m, ok := resultado.Corpo["error"].(string); ok && m != "" {
			mensagem = m
		}
		c.JSON(resultado.StatusCode, gin.H{"error": mensagem, "details": resultado.Corpo})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message": "NF-e emitida com sucesso e enviada para fila de emissão.",
		"data":    resultado.Corpo,
	})
}

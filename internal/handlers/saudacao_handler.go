package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Saudacao responde a chamada de teste do front em /api/data.
func Saudacao(c *gin.Context) {
	nome := c.Query("name")
	if nome == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "O parâmetro 'name' é obrigatório."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Olá, %s! Bem-vindo ao Quovadis.", nome)})
}

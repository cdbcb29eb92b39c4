package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/v1ctorsales/QuoVadis/models"
)

// TokenDuration é a validade do token emitido no login.
const TokenDuration = 2 * time.Hour

// AuthHandler atende /api/Autenticar.
type AuthHandler struct {
	DB        *gorm.DB
	JWTSecret string
}

func NewAuthHandler(db *gorm.DB, jwtSecret string) *AuthHandler {
	return &AuthHandler{DB: db, JWTSecret: jwtSecret}
}

func (h *AuthHandler) Dispatch(c *gin.Context) {
	if c.Request.Method == http.MethodPost && c.Query("action") == "login" {
		h.login(c)
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Ação inválida ou método HTTP não suportado."})
}

type loginRequest struct {
	Usuario string `json:"usuario"`
	Senha   string `json:"senha"`
}

func (h *AuthHandler) login(c *gin.Context) {
	if h.JWTSecret == "" {
		slog.Error("JWT_SECRET não definida")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno no servidor. Verifique a configuração."})
		return
	}

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Usuario == "" || req.Senha == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Usuário e senha são obrigatórios."})
		return
	}

	var usuario models.Usuario
	if err := h.DB.Where("usuario = ?", req.Usuario).First(&usuario).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			slog.Error("erro ao buscar usuário", "error", err)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuário ou senha inválidos."})
		return
	}

	if !senhaConfere(usuario.Senha, req.Senha) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuário ou senha inválidos."})
		return
	}

	claims := jwt.MapClaims{
		"id":      usuario.ID,
		"usuario": usuario.Usuario,
		"exp":     time.Now().Add(TokenDuration).Unix(),
		"iat":     time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.JWTSecret))
	if err != nil {
		slog.Error("erro ao assinar token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Autenticado com sucesso!", "token": token})
}

// senhaConfere aceita hash bcrypt ou registro legado em texto puro.
func senhaConfere(armazenada, informada string) bool {
	if strings.HasPrefix(armazenada, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(armazenada), []byte(informada)) == nil
	}
	return armazenada == informada
}

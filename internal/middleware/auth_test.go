package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "segredo-de-teste"

func init() {
	gin.SetMode(gin.TestMode)
}

func routerProtegido() *gin.Engine {
	r := gin.New()
	r.GET("/protegido", AuthMiddleware(testSecret), func(c *gin.Context) {
		usuario, _ := c.Get("usuario")
		c.JSON(http.StatusOK, gin.H{"usuario": usuario})
	})
	return r
}

func tokenAssinado(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"id":      uint(1),
		"usuario": "admin",
		"exp":     exp.Unix(),
		"iat":     time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func TestAuthMiddlewareTokenValido(t *testing.T) {
	r := routerProtegido()

	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+tokenAssinado(t, testSecret, time.Now().Add(time.Hour)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, corpo = %s", w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareRejeita(t *testing.T) {
	r := routerProtegido()

	casos := []struct {
		nome   string
		header string
	}{
		{"sem header", ""},
		{"formato errado", "Token abc"},
		{"assinatura errada", "Bearer " + tokenAssinado(t, "outro-segredo", time.Now().Add(time.Hour))},
		{"expirado", "Bearer " + tokenAssinado(t, testSecret, time.Now().Add(-time.Hour))},
	}
	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
			if caso.header != "" {
				req.Header.Set("Authorization", caso.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, esperado 401", w.Code)
			}
		})
	}
}

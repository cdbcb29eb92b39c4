package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/v1ctorsales/QuoVadis/internal/handlers"
	"github.com/v1ctorsales/QuoVadis/models"
)

const testSecret = "segredo-de-teste"

func init() {
	gin.SetMode(gin.TestMode)
}

func routerDeTeste(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("abrindo banco em memória: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrando banco de teste: %v", err)
	}

	r := SetupRoutes(Handlers{
		Pessoas:     handlers.NewPessoaHandler(db),
		Viagens:     handlers.NewViagemHandler(db),
		Passageiros: handlers.NewPassageiroHandler(db),
		Inicio:      handlers.NewInicioHandler(db, nil, nil),
		Auth:        handlers.NewAuthHandler(db, testSecret),
		NFE:         handlers.NewNFEHandler(nil),
	}, testSecret)
	return r, db
}

func TestRotasProtegidasExigemToken(t *testing.T) {
	r, _ := routerDeTeste(t)

	for _, caminho := range []string{"/api/Pessoas", "/api/Viagens", "/api/Passageiros", "/api/Inicio", "/api/Pessoas.js"} {
		req := httptest.NewRequest(http.MethodGet, caminho+"?action=getAll", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s sem token: status = %d, esperado 401", caminho, w.Code)
		}
	}
}

func TestLoginPublicoEDepoisAcessoComToken(t *testing.T) {
	r, db := routerDeTeste(t)
	if err := db.Create(&models.Usuario{Usuario: "admin", Senha: "senha123"}).Error; err != nil {
		t.Fatal(err)
	}

	corpo, _ := json.Marshal(map[string]string{"usuario": "admin", "senha": "senha123"})
	req := httptest.NewRequest(http.MethodPost, "/api/Autenticar?action=login", bytes.NewReader(corpo))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("login: status = %d, corpo = %s", w.Code, w.Body.String())
	}

	var resposta map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resposta); err != nil {
		t.Fatal(err)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/Pessoas?action=getAll", nil)
	req.Header.Set("Authorization", "Bearer "+resposta["token"])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("com token: status = %d, corpo = %s", w.Code, w.Body.String())
	}
}

func TestSaudacao(t *testing.T) {
	r, _ := routerDeTeste(t)

	req := httptest.NewRequest(http.MethodGet, "/api/data?name=Victor", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resposta map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resposta); err != nil {
		t.Fatal(err)
	}
	if resposta["message"] != "Olá, Victor! Bem-vindo ao Quovadis." {
		t.Errorf("message = %q", resposta["message"])
	}

	req = httptest.NewRequest(http.MethodGet, "/api/data", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("sem name: status = %d, esperado 400", w.Code)
	}
}

func TestHealth(t *testing.T) {
	r, _ := routerDeTeste(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
}

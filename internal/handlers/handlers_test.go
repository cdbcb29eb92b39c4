package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/v1ctorsales/QuoVadis/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("abrindo banco em memória: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrando banco de teste: %v", err)
	}
	return db
}

// doRequest executa um handler de dispatch direto, sem roteador completo.
func doRequest(handler gin.HandlerFunc, method, target string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	handler(c)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decodificando resposta %q: %v", w.Body.String(), err)
	}
	return body
}

func criarPessoa(t *testing.T, db *gorm.DB, nome, cpf string, naoPaga bool) models.Pessoa {
	t.Helper()
	pessoa := models.Pessoa{
		Nome:       nome,
		Telefone:   "988887777",
		CPF:        cpf,
		RG:         "MG-12.345.678",
		Nascimento: "1980-05-10",
		NaoPaga:    naoPaga,
	}
	if err := db.Create(&pessoa).Error; err != nil {
		t.Fatalf("criando pessoa de teste: %v", err)
	}
	return pessoa
}

func criarViagem(t *testing.T, db *gorm.DB, destino, ida, volta string, preco float64) models.Viagem {
	t.Helper()
	viagem := models.Viagem{
		Viagem:            destino,
		DataIda:           ida,
		DataVolta:         volta,
		Transporte:        "Ônibus",
		ValorTransporte:   1000,
		Hotel:             "Hotel Central",
		ValorHotel:        400,
		QuantidadePessoas: 4,
		PrecoDefinido:     preco,
		LimiteParcelas:    5,
		CustoPorPessoa:    650,
	}
	if err := db.Create(&viagem).Error; err != nil {
		t.Fatalf("criando viagem de teste: %v", err)
	}
	return viagem
}

func inscrever(t *testing.T, db *gorm.DB, pessoa models.Pessoa, viagem models.Viagem, mesInicio string) models.PessoaViagem {
	t.Helper()
	registro := models.PessoaViagem{
		IDPessoa:           pessoa.ID,
		IDViagem:           viagem.ID,
		MesInicioPagamento: mesInicio,
	}
	if err := db.Create(&registro).Error; err != nil {
		t.Fatalf("inscrevendo passageiro de teste: %v", err)
	}
	return registro
}

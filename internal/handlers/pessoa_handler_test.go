package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
)

func TestPessoaCreateNormalizaCampos(t *testing.T) {
	h := NewPessoaHandler(testDB(t))

	w := doRequest(h.Dispatch, http.MethodPost, "/api/Pessoas?action=createPessoa", map[string]interface{}{
		"nome":       "maria DA silva",
		"telefone":   "31988887777",
		"cpf":        "111.222.333-44",
		"rg":         "MG-11.222.333",
		"nascimento": "1990-01-15",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, corpo = %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	dados := body["data"].([]interface{})
	pessoa := dados[0].(map[string]interface{})
	if pessoa["nome"] != "Maria Da Silva" {
		t.Errorf("nome = %q, esperado capitalizado", pessoa["nome"])
	}
	if pessoa["telefone"] != "988887777" {
		t.Errorf("telefone = %q, esperado sem o prefixo 31", pessoa["telefone"])
	}
}

func TestPessoaCreateCamposObrigatorios(t *testing.T) {
	h := NewPessoaHandler(testDB(t))

	w := doRequest(h.Dispatch, http.MethodPost, "/api/Pessoas?action=createPessoa", map[string]interface{}{
		"nome": "Fulano",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, esperado 400", w.Code)
	}
}

func TestPessoaCreateCPFDuplicado(t *testing.T) {
	db := testDB(t)
	criarPessoa(t, db, "Joana", "111.222.333-44", false)
	h := NewPessoaHandler(db)

	w := doRequest(h.Dispatch, http.MethodPost, "/api/Pessoas?action=createPessoa", map[string]interface{}{
		"nome":       "Outra Joana",
		"telefone":   "999990000",
		"cpf":        "111.222.333-44",
		"rg":         "SP-99.888.777",
		"nascimento": "1985-03-03",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, esperado 400", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Este CPF já está cadastrado." {
		t.Errorf("error = %q", body["error"])
	}
}

func TestPessoaCheckCPF(t *testing.T) {
	db := testDB(t)
	criarPessoa(t, db, "Joana", "111.222.333-44", false)
	h := NewPessoaHandler(db)

	w := doRequest(h.Dispatch, http.MethodGet, "/api/Pessoas?action=checkCPF&cpf=111.222.333-44", nil)
	if w.Code != http.StatusOK || decodeBody(t, w)["exists"] != true {
		t.Errorf("CPF cadastrado deveria existir: status %d corpo %s", w.Code, w.Body.String())
	}

	w = doRequest(h.Dispatch, http.MethodGet, "/api/Pessoas?action=checkCPF&cpf=000.000.000-00", nil)
	if w.Code != http.StatusOK || decodeBody(t, w)["exists"] != false {
		t.Errorf("CPF livre não deveria existir: status %d corpo %s", w.Code, w.Body.String())
	}
}

func TestPessoaGetAllPaginado(t *testing.T) {
	db := testDB(t)
	for i := 0; i < 15; i++ {
		criarPessoa(t, db, fmt.Sprintf("Pessoa %02d", i), fmt.Sprintf("000.000.000-%02d", i), false)
	}
	h := NewPessoaHandler(db)

	w := doRequest(h.Dispatch, http.MethodGet, "/api/Pessoas?action=getAll&page=2&limit=10", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	if total := body["total"].(float64); total != 15 {
		t.Errorf("total = %v, esperado 15", total)
	}
	if dados := body["data"].([]interface{}); len(dados) != 5 {
		t.Errorf("página 2 com %d itens, esperado 5", len(dados))
	}
}

func TestPessoaGetSearchIgnoraCaixa(t *testing.T) {
	db := testDB(t)
	criarPessoa(t, db, "Maria Aparecida", "111.111.111-11", false)
	criarPessoa(t, db, "João Pedro", "222.222.222-22", false)
	h := NewPessoaHandler(db)

	w := doRequest(h.Dispatch, http.MethodGet, "/api/Pessoas?action=getSearch&query=MARIA", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	dados := body["data"].([]interface{})
	if len(dados) != 1 {
		t.Fatalf("busca devolveu %d resultados, esperado 1", len(dados))
	}
	if nome := dados[0].(map[string]interface{})["nome"]; nome != "Maria Aparecida" {
		t.Errorf("nome = %q", nome)
	}
}

func TestPessoaDeleteLiberaCPF(t *testing.T) {
	db := testDB(t)
	pessoa := criarPessoa(t, db, "Joana", "111.222.333-44", false)
	h := NewPessoaHandler(db)

	w := doRequest(h.Dispatch, http.MethodDelete, fmt.Sprintf("/api/Pessoas?action=deletePessoa&id=%d", pessoa.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status = %d, corpo = %s", w.Code, w.Body.String())
	}

	// A exclusão é definitiva, o mesmo CPF pode ser cadastrado de novo.
	w = doRequest(h.Dispatch, http.MethodPost, "/api/Pessoas?action=createPessoa", map[string]interface{}{
		"nome":       "Joana De Novo",
		"telefone":   "988880000",
		"cpf":        "111.222.333-44",
		"rg":         "MG-11.222.333",
		"nascimento": "1990-01-15",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("recadastro: status = %d, corpo = %s", w.Code, w.Body.String())
	}
}

func TestPessoaDeleteInexistente(t *testing.T) {
	h := NewPessoaHandler(testDB(t))

	w := doRequest(h.Dispatch, http.MethodDelete, "/api/Pessoas?action=deletePessoa&id=999", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, esperado 404", w.Code)
	}
}

func TestPessoaListAllDevolveArrayPuro(t *testing.T) {
	db := testDB(t)
	criarPessoa(t, db, "Ana", "111.111.111-11", false)
	criarPessoa(t, db, "Bruno", "222.222.222-22", false)
	h := NewPessoaHandler(db)

	w := doRequest(h.ListAll, http.MethodGet, "/api/getPessoas", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var pessoas []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &pessoas); err != nil {
		t.Fatalf("resposta não é um array: %v", err)
	}
	if len(pessoas) != 2 {
		t.Errorf("%d pessoas, esperado 2", len(pessoas))
	}
}

func TestPessoaAcaoInvalida(t *testing.T) {
	h := NewPessoaHandler(testDB(t))

	w := doRequest(h.Dispatch, http.MethodGet, "/api/Pessoas?action=naoExiste", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, esperado 400", w.Code)
	}
}

package listaspdf

import (
	"fmt"
	"strings"
	"testing"
)

func TestGerar(t *testing.T) {
	linhas := []Linha{
		{Nome: "Joana Prado", CPF: "111.222.333-44", RG: "MG-11.222.333", Telefone: "988887777", Nascimento: "10/05/1980"},
		{Nome: "José Conceição", CPF: "555.666.777-88", RG: "SP-55.666.777", Telefone: "977776666", Nascimento: "01/01/1975"},
	}

	documento, err := Gerar("Gramado", "01/09/2025 a 05/09/2025", linhas)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(documento), "%PDF") {
		t.Error("saída não começa com a assinatura de PDF")
	}
}

func TestGerarListaVazia(t *testing.T) {
	documento, err := Gerar("Gramado", "01/09/2025 a 05/09/2025", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(documento) == 0 {
		t.Error("documento vazio")
	}
}

func TestGerarMuitasPaginas(t *testing.T) {
	linhas := make([]Linha, 200)
	for i := range linhas {
		linhas[i] = Linha{Nome: fmt.Sprintf("Passageiro %03d", i), CPF: "000.000.000-00"}
	}

	documento, err := Gerar("Caravana Grande", "01/09/2025 a 05/09/2025", linhas)
	if err != nil {
		t.Fatal(err)
	}
	if len(documento) == 0 {
		t.Error("documento vazio")
	}
}

// Package listaspdf gera a lista de passageiros em PDF para impressão.
package listaspdf

import (
	"bytes"

	"github.com/go-pdf/fpdf"
)

// Linha é um passageiro na tabela impressa.
type Linha struct {
	Nome       string
	CPF        string
	RG         string
	Telefone   string
	Nascimento string
}

var colunas = []struct {
	titulo  string
	largura float64
}{
	{"Nome", 70},
	{"CPF", 35},
	{"RG", 25},
	{"Telefone", 30},
	{"Nascimento", 30},
}

// Gerar monta o documento: título com o destino, cabeçalho de tabela repetido
// a cada página e uma linha por passageiro, com larguras de coluna fixas.
func Gerar(tituloViagem, periodo string, linhas []Linha) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 15)
	// Fontes core usam cp1252; converte os acentos do português.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	cabecalho := func() {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 8, tr("Lista de Passageiros - "+tituloViagem), "", 1, "C", false, 0, "")
		if periodo != "" {
			pdf.SetFont("Helvetica", "", 10)
			pdf.CellFormat(0, 6, tr(periodo), "", 1, "C", false, 0, "")
		}
		pdf.Ln(3)

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(80, 80, 80)
		pdf.SetTextColor(255, 255, 255)
		for _, col := range colunas {
			pdf.CellFormat(col.largura, 7, tr(col.titulo), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
	}

	cabecalho()
	for _, linha := range linhas {
		if pdf.GetY() > 270 {
			cabecalho()
		}
		valores := []string{linha.Nome, linha.CPF, linha.RG, linha.Telefone, linha.Nascimento}
		for i, col := range colunas {
			pdf.CellFormat(col.largura, 6, tr(valores[i]), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

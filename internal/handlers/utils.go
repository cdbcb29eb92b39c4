package handlers

import (
	"strings"
	"time"
	"unicode"
)

// CapitalizarNome normaliza o nome próprio palavra a palavra
// ("maria DA silva" -> "Maria Da Silva"). Acentos contam como uma letra só.
func CapitalizarNome(nome string) string {
	palavras := strings.Fields(nome)
	for i, palavra := range palavras {
		letras := []rune(strings.ToLower(palavra))
		letras[0] = unicode.ToUpper(letras[0])
		palavras[i] = string(letras)
	}
	return strings.Join(palavras, " ")
}

// FormatarTelefone remove o prefixo de DDD "31" herdado dos cadastros antigos.
func FormatarTelefone(telefone string) string {
	if strings.HasPrefix(telefone, "31") {
		return telefone[2:]
	}
	return telefone
}

// HojeISO devolve a data de hoje no formato do banco (YYYY-MM-DD).
func HojeISO() string {
	return time.Now().UTC().Format("2006-01-02")
}

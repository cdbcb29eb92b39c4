package handlers

import "testing"

func TestCapitalizarNome(t *testing.T) {
	tests := []struct {
		entrada string
		want    string
	}{
		{"maria DA silva", "Maria Da Silva"},
		{"JOSÉ", "José"},
		{"érica maria", "Érica Maria"},
		{"ana", "Ana"},
		{"  ana   clara  ", "Ana Clara"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CapitalizarNome(tt.entrada); got != tt.want {
			t.Errorf("CapitalizarNome(%q) = %q, want %q", tt.entrada, got, tt.want)
		}
	}
}

func TestFormatarTelefone(t *testing.T) {
	tests := []struct {
		entrada string
		want    string
	}{
		{"31988887777", "988887777"},
		{"988887777", "988887777"},
		{"3133334444", "33334444"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FormatarTelefone(tt.entrada); got != tt.want {
			t.Errorf("FormatarTelefone(%q) = %q, want %q", tt.entrada, got, tt.want)
		}
	}
}

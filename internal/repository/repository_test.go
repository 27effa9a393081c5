package repository

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestStringList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want StringList
	}{
		{`["horas extras","adicional noturno"]`, StringList{"horas extras", "adicional noturno"}},
		{`"horas extras"`, StringList{"horas extras"}},
		{`""`, nil},
		{`null`, nil},
		{`[]`, StringList{}},
	}

	for _, tt := range tests {
		var got StringList
		if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
			t.Errorf("Unmarshal(%s): %v", tt.in, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Unmarshal(%s) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestPrecedent_StatusValid(t *testing.T) {
	valid := []string{"", "vigente", "Ativa"}
	for _, s := range valid {
		p := Precedent{Status: s}
		if !p.StatusValid() {
			t.Errorf("status %q should be valid", s)
		}
	}

	invalid := []string{"cancelada", "REVOGADA", "Convertida", "superado", "convertida em súmula", " cancelada "}
	for _, s := range invalid {
		p := Precedent{Status: s}
		if p.StatusValid() {
			t.Errorf("status %q should be invalid", s)
		}
	}
}

func TestIsBindingType(t *testing.T) {
	binding := []string{
		"Súmula Vinculante",
		"tese vinculante",
		"Precedente VINCULANTE",
		"Recurso Repetitivo",
		"Tese Repetitiva",
		"IRR",
	}
	for _, tipo := range binding {
		if !IsBindingType(tipo) {
			t.Errorf("IsBindingType(%q) = false, want true", tipo)
		}
	}

	plain := []string{"Súmula", "OJ", "Acórdão", ""}
	for _, tipo := range plain {
		if IsBindingType(tipo) {
			t.Errorf("IsBindingType(%q) = true, want false", tipo)
		}
	}
}

func TestPrecedent_Holding(t *testing.T) {
	p := Precedent{Tese: "tese", Enunciado: "enunciado"}
	if p.Holding() != "tese" {
		t.Errorf("Holding() = %q, want tese", p.Holding())
	}

	p = Precedent{Enunciado: "enunciado"}
	if p.Holding() != "enunciado" {
		t.Errorf("Holding() = %q, want enunciado", p.Holding())
	}

	p = Precedent{}
	if p.Holding() != "" {
		t.Errorf("Holding() = %q, want empty", p.Holding())
	}
}

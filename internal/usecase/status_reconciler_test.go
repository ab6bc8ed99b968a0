package usecase

import (
	"testing"

	"precad_service/internal/domain/entities"
)

func TestStatusReconciler_Reconcile(t *testing.T) {
	r := NewStatusReconciler()

	t.Run("legacy labels map to canonical", func(t *testing.T) {
		cases := map[string]entities.IntakeStatus{
			"Pré Cadastro":       entities.StatusPreCadastro,
			"Matriculado":        entities.StatusMatriculado,
			"Entrevista":         entities.StatusEntrevista,
			"Cadastro Conferido": entities.StatusEscolhaCurso,
			"":                   entities.StatusInicial,
		}
		for in, want := range cases {
			if got := r.Reconcile(in); got != want {
				t.Fatalf("Reconcile(%q) = %q, want %q", in, got, want)
			}
		}
	})

	t.Run("canonical values pass through", func(t *testing.T) {
		for _, s := range entities.CanonicalStatuses() {
			if got := r.Reconcile(string(s)); got != s {
				t.Fatalf("Reconcile(%q) = %q, want pass-through", s, got)
			}
		}
	})

	t.Run("unknown defaults to pre cadastro", func(t *testing.T) {
		if got := r.Reconcile("garbage"); got != entities.StatusPreCadastro {
			t.Fatalf("Reconcile(garbage) = %q", got)
		}
	})
}

func TestStatusReconciler_Apply(t *testing.T) {
	r := NewStatusReconciler()
	in := entities.Intake{Status: "Matriculado"}

	got := r.Apply(&in)
	if got != entities.StatusMatriculado || in.Status != entities.StatusMatriculado {
		t.Fatalf("Apply left status %q", in.Status)
	}
}

package usecase

import (
	"log"

	"precad_service/internal/domain/entities"
)

// StatusReconciler normalizes an enrollment status against the fixed
// canonical set. It runs on refresh and before every persist, so a
// non-canonical status is never stored.

type StatusReconciler struct {
	legacy map[string]entities.IntakeStatus
}

func NewStatusReconciler() *StatusReconciler {
	return &StatusReconciler{
		legacy: map[string]entities.IntakeStatus{
			"Pré Cadastro":       entities.StatusPreCadastro,
			"Matriculado":        entities.StatusMatriculado,
			"Entrevista":         entities.StatusEntrevista,
			"Cadastro Conferido": entities.StatusEscolhaCurso,
			"":                   entities.StatusInicial,
		},
	}
}

// Reconcile maps requested onto the canonical set: legacy labels are
// translated, canonical values pass through, anything else defaults to
// "1.Pré Cadastro".
func (r *StatusReconciler) Reconcile(requested string) entities.IntakeStatus {
	if mapped, ok := r.legacy[requested]; ok {
		if requested != string(mapped) {
			log.Printf("[status][usecase] legacy status %q normalized to %q", requested, mapped)
		}
		return mapped
	}

	s := entities.IntakeStatus(requested)
	if s.Canonical() {
		return s
	}

	log.Printf("[status][usecase] unknown status %q, defaulting to %q", requested, entities.StatusPreCadastro)
	return entities.StatusPreCadastro
}

// Apply reconciles the intake's own status in place and returns the
// canonical value.
func (r *StatusReconciler) Apply(in *entities.Intake) entities.IntakeStatus {
	in.Status = r.Reconcile(string(in.Status))
	return in.Status
}

package entities

// IntakeStatus is the enrollment status of a pre-registration record.
// Only the canonical values below may be persisted; legacy free-text
// labels are normalized by usecase.StatusReconciler before any save.

type IntakeStatus string

const (
	StatusInicial      IntakeStatus = "0.Inicial"
	StatusPreCadastro  IntakeStatus = "1.Pré Cadastro"
	StatusEscolhaCurso IntakeStatus = "2.Escolha de Curso"
	StatusFichaSenai   IntakeStatus = "3.Ficha Senai"
	StatusEntrevista   IntakeStatus = "4.Entrevista"
	StatusMatriculado  IntakeStatus = "5.Matriculado"
)

// GroupStatusEmInscricao marks a student group currently open for
// enrollment. It is a query filter value, not an intake status.
const GroupStatusEmInscricao = "Em inscrição"

// CanonicalStatuses returns the fixed allowed set, in lifecycle order.
func CanonicalStatuses() []IntakeStatus {
	return []IntakeStatus{
		StatusInicial,
		StatusPreCadastro,
		StatusEscolhaCurso,
		StatusFichaSenai,
		StatusEntrevista,
		StatusMatriculado,
	}
}

func (s IntakeStatus) Canonical() bool {
	for _, v := range CanonicalStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

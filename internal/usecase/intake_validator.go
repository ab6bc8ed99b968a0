package usecase

import (
	"strings"

	"precad_service/internal/domain/entities"

	"github.com/asaskevich/govalidator"
)

// ValidationResult aggregates every intake validation failure; the
// validator never short-circuits so the user sees the full list at once.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// ValidateIntake runs the pure pre-flight checks. No remote call is
// attempted while this fails. Either a mode flag or at least one filled
// course slot makes the intake processable.
func ValidateIntake(in entities.Intake) ValidationResult {
	var errs []string

	if len(strings.TrimSpace(in.FullName)) < 2 {
		errs = append(errs, "Nome completo é obrigatório")
	}

	if in.DateOfBirth.IsZero() {
		errs = append(errs, "Data de nascimento é obrigatória")
	}

	if strings.TrimSpace(in.CPF) != "" && !entities.ValidCPF(in.CPF) {
		errs = append(errs, "CPF deve ter 11 dígitos válidos")
	}

	if !in.HasMode() && !in.HasSlotSelected() {
		errs = append(errs, "Selecione pelo menos um modo de cadastramento ou uma opção de curso")
	}

	if e := strings.TrimSpace(in.Email); e != "" && !govalidator.IsEmail(e) {
		errs = append(errs, "E-mail inválido")
	}

	if p := strings.TrimSpace(in.Phone); p != "" {
		digits := entities.NormalizeCPF(p)
		if !govalidator.IsNumeric(digits) || len(digits) < 10 || len(digits) > 11 {
			errs = append(errs, "Telefone inválido")
		}
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

package request

import (
	"errors"
	"strings"
	"time"

	"precad_service/internal/domain/entities"
)

var (
	ErrInvalidDateOfBirth = errors.New("invalid date of birth")
	ErrInvalidMode        = errors.New("invalid mode")
)

const dateLayout = "2006-01-02"

// IntakeRequest is the form payload accepted by the intake endpoints.
// Mode carries the single program flag ("is_mt", "is_sf", "is_ge",
// "is_ep", "is_cb");
// the five boolean columns are derived from it, never set directly.
type IntakeRequest struct {
	FullName      string `json:"full_name" binding:"required"`
	CPF           string `json:"cpf"`
	DateOfBirth   string `json:"date_of_birth" binding:"required"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	CEP           string `json:"cep"`
	Numero        string `json:"numero"`
	Gender        string `json:"gender"`
	Mode          string `json:"mode"`
	GestanteGroup string `json:"gestante_group"`
	Status        string `json:"status"`
}

// ToEntity translates the payload into the domain record, resolving the
// mode flag and parsing the date of birth.
func (r IntakeRequest) ToEntity() (entities.Intake, error) {
	dob, err := time.Parse(dateLayout, strings.TrimSpace(r.DateOfBirth))
	if err != nil {
		return entities.Intake{}, ErrInvalidDateOfBirth
	}

	in := entities.Intake{
		FullName:      strings.TrimSpace(r.FullName),
		CPF:           r.CPF,
		DateOfBirth:   dob,
		Phone:         r.Phone,
		Email:         r.Email,
		CEP:           r.CEP,
		Numero:        r.Numero,
		Gender:        r.Gender,
		GestanteGroup: r.GestanteGroup,
		Status:        entities.IntakeStatus(r.Status),
	}

	if mode := strings.TrimSpace(r.Mode); mode != "" {
		m := entities.Mode(mode)
		if !validMode(m) {
			return entities.Intake{}, ErrInvalidMode
		}
		in.SetMode(m)
	}
	return in, nil
}

func validMode(m entities.Mode) bool {
	switch m {
	case entities.ModeMundoTrabalho, entities.ModeSocioFamiliar, entities.ModeGestante,
		entities.ModeEmpregabilidade, entities.ModeCestaBasica:
		return true
	}
	return false
}

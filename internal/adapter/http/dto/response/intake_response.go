package response

import (
	"time"

	"precad_service/internal/domain/entities"
)

type CourseSlotResponse struct {
	StudentGroup string    `json:"student_group"`
	StartDate    time.Time `json:"start_date"`
	MinAge       int       `json:"min_age"`
	MaxAge       int       `json:"max_age"`
	AgeOK        bool      `json:"age_ok"`
	Schooling    string    `json:"schooling,omitempty"`
	Segment      string    `json:"segment,omitempty"`
	Interview    bool      `json:"interview"`
	Senai        bool      `json:"senai"`
}

type IntakeResponse struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	CPF         string    `json:"cpf,omitempty"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	CEP         string    `json:"cep,omitempty"`
	Numero      string    `json:"numero,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	Age         int       `json:"age"`

	Mode          string `json:"mode,omitempty"`
	GestanteGroup string `json:"gestante_group,omitempty"`

	Slots map[string]CourseSlotResponse `json:"slots,omitempty"`

	MundoTrabalho bool `json:"mundo_trabalho"`
	SocioFamiliar bool `json:"socio_familiar"`

	Status string `json:"status"`

	CustomerLink string `json:"customer_link,omitempty"`
	StudentLink  string `json:"student_link,omitempty"`
	GestanteLink string `json:"gestante_link,omitempty"`
	CriancaLink  string `json:"crianca_link,omitempty"`

	ProgramEnrollment string    `json:"program_enrollment,omitempty"`
	Program           string    `json:"program,omitempty"`
	EnrollmentDate    time.Time `json:"enrollment_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromIntake(in entities.Intake) IntakeResponse {
	var slots map[string]CourseSlotResponse
	if len(in.Slots) > 0 {
		slots = make(map[string]CourseSlotResponse, len(in.Slots))
		for key, s := range in.Slots {
			slots[string(key)] = CourseSlotResponse{
				StudentGroup: s.StudentGroup,
				StartDate:    s.StartDate,
				MinAge:       s.MinAge,
				MaxAge:       s.MaxAge,
				AgeOK:        s.AgeOK,
				Schooling:    s.Schooling,
				Segment:      s.Segment,
				Interview:    s.Interview,
				Senai:        s.Senai,
			}
		}
	}

	mode := ""
	if m, ok := in.ActiveMode(); ok {
		mode = string(m)
	}

	return IntakeResponse{
		ID:                in.ID,
		FullName:          in.FullName,
		CPF:               in.CPF,
		DateOfBirth:       in.DateOfBirth,
		Phone:             in.Phone,
		Email:             in.Email,
		CEP:               in.CEP,
		Numero:            in.Numero,
		Gender:            in.Gender,
		Age:               in.Age,
		Mode:              mode,
		GestanteGroup:     in.GestanteGroup,
		Slots:             slots,
		MundoTrabalho:     in.MundoTrabalho,
		SocioFamiliar:     in.SocioFamiliar,
		Status:            string(in.Status),
		CustomerLink:      in.CustomerLink,
		StudentLink:       in.StudentLink,
		GestanteLink:      in.GestanteLink,
		CriancaLink:       in.CriancaLink,
		ProgramEnrollment: in.ProgramEnrollment,
		Program:           in.Program,
		EnrollmentDate:    in.EnrollmentDate,
		CreatedAt:         in.CreatedAt,
		UpdatedAt:         in.UpdatedAt,
	}
}

package response

import (
	"precad_service/internal/usecase"
)

// ProcessingResponse summarizes one saga run: which entities were
// produced and how the sibling status cascade went.
type ProcessingResponse struct {
	Intake IntakeResponse `json:"intake"`

	CustomerID          string `json:"customer_id"`
	StudentID           string `json:"student_id,omitempty"`
	GestanteFichaID     string `json:"gestante_ficha_id,omitempty"`
	CriancaFichaID      string `json:"crianca_ficha_id,omitempty"`
	ProgramEnrollmentID string `json:"program_enrollment_id,omitempty"`

	CustomerLinksUpdated bool `json:"customer_links_updated"`
	StatusUpdated        bool `json:"status_updated"`
	CascadeSucceeded     int  `json:"cascade_succeeded"`
	CascadeTotal         int  `json:"cascade_total"`
}

func FromProcessingResult(r usecase.ProcessingResult) ProcessingResponse {
	resp := ProcessingResponse{
		Intake:               FromIntake(r.Intake),
		CustomerID:           r.Customer.ID,
		CustomerLinksUpdated: r.CustomerLinksUpdated,
		StatusUpdated:        r.StatusUpdated,
		CascadeSucceeded:     r.CascadeSucceeded,
		CascadeTotal:         r.CascadeTotal,
	}
	if r.Student != nil {
		resp.StudentID = r.Student.ID
	}
	if r.Gestante != nil {
		resp.GestanteFichaID = r.Gestante.ID
	}
	if r.Crianca != nil {
		resp.CriancaFichaID = r.Crianca.ID
	}
	if r.ProgramEnrollment != nil {
		resp.ProgramEnrollmentID = r.ProgramEnrollment.ID
	}
	return resp
}

package entities

import "time"

// Student is the academic-identity record derived from a Customer,
// uniquely keyed by CPF within this workflow's search scope. Assistido
// is the back-reference to the owning Customer.
type Student struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Title       string    `json:"title"`
	CPF         string    `json:"cpf"`
	Assistido   string    `json:"assistido"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Mobile      string    `json:"mobile_number"`
	Email       string    `json:"student_email_id"`
	Gender      string    `json:"gender"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

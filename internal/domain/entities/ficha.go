package entities

import "time"

// GestanteFicha is the pregnancy-program case record. Turma references
// the student group selected for the Gestantes program, when present.
type GestanteFicha struct {
	ID           string    `json:"id"`
	Assistido    string    `json:"assistido"`
	CustomerLink string    `json:"customer_link"`
	Turma        string    `json:"turma"`
	CPF          string    `json:"cpf"`
	DateOfBirth  time.Time `json:"data_nascimento"`
	Phone        string    `json:"telefone"`
	Email        string    `json:"email"`
	Age          int       `json:"idade"`

	CreatedAt time.Time `json:"created_at"`
}

// CriancaFicha is the child-program case record created for basic-basket
// intakes.
type CriancaFicha struct {
	ID           string    `json:"id"`
	Assistido    string    `json:"assistido"`
	CustomerLink string    `json:"customer_link"`
	CPF          string    `json:"cpf"`
	DateOfBirth  time.Time `json:"data_nascimento"`
	Phone        string    `json:"telefone"`
	Email        string    `json:"email"`
	Age          int       `json:"idade"`

	CreatedAt time.Time `json:"created_at"`
}

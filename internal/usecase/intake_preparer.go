package usecase

import (
	"fmt"
	"strings"
	"time"

	"precad_service/internal/domain/entities"
)

const emailDomain = "@larmeimei.org"

// PreparedIntake is the payload bundle the saga consumes: the Customer
// document to write plus the entity-creation flags resolved from the
// intake's mode.
type PreparedIntake struct {
	Customer       entities.Customer
	CPF            string
	CreateStudent  bool
	CreateGestante bool
	CreateCrianca  bool
	Source         entities.Intake
}

// PrepareIntake maps raw form state into the shapes the entity stages
// need. Missing contact fields fall back to the placeholders the intake
// desk historically used.
func PrepareIntake(in entities.Intake) PreparedIntake {
	cpf := entities.NormalizeCPF(in.CPF)

	dob := in.DateOfBirth
	if dob.IsZero() {
		dob = time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	cep := in.CEP
	if cep == "" {
		cep = "00000-000"
	}
	phone := in.Phone
	if phone == "" {
		phone = "(11) 99999-9999"
	}
	email := in.Email
	if email == "" {
		email = provisionalEmail(cpf)
	}

	customer := entities.Customer{
		Name:         in.FullName,
		TaxID:        cpf,
		CustomerType: "Individual",
		DateOfBirth:  dob,
		CEP:          cep,
		Phone:        phone,
		Email:        email,
		Gender:       in.Gender,
		Age:          in.Age,
		Numero:       in.Numero,
		IsMT:         in.IsMT,
		IsSF:         in.IsSF,
		IsGE:         in.IsGE,
		IsEP:         in.IsEP,
		IsCB:         in.IsCB,
	}

	return PreparedIntake{
		Customer:       customer,
		CPF:            cpf,
		CreateStudent:  in.IsMT || in.IsSF || in.IsGE,
		CreateGestante: in.IsGE,
		CreateCrianca:  in.IsCB,
		Source:         in,
	}
}

// provisionalEmail builds the placeholder address used when the person
// has no e-mail of their own.
func provisionalEmail(cpf string) string {
	if cpf == "" {
		return "sem.email" + emailDomain
	}
	return fmt.Sprintf("cpf%s%s", cpf, emailDomain)
}

// SplitFullName derives the Student first/last name pair: first token,
// then the remainder joined by spaces. An empty name falls back to the
// "Estudante" placeholder.
func SplitFullName(fullName string) (first, last string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "Estudante", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

package handlers

import (
	"errors"
	"log"
	"net/http"

	request "precad_service/internal/adapter/http/dto/request"
	response "precad_service/internal/adapter/http/dto/response"
	"precad_service/internal/usecase"
	"precad_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidIntakePayload = pkg.NewDomainErrorSimple("INVALID_INTAKE_INPUT", "Invalid intake payload", http.StatusBadRequest)
)

// IntakeHandler handles HTTP requests for pre-registration records and
// their enrollment processing.

type IntakeHandler struct {
	intakeUseCase     usecase.IIntakeUseCase
	enrollmentUseCase usecase.IEnrollmentUseCase
}

func NewIntakeHandler(intakeUC usecase.IIntakeUseCase, enrollmentUC usecase.IEnrollmentUseCase) *IntakeHandler {
	return &IntakeHandler{
		intakeUseCase:     intakeUC,
		enrollmentUseCase: enrollmentUC,
	}
}

// CreateIntake registers a new pre-registration record from form data.
func (h *IntakeHandler) CreateIntake(c *gin.Context) {
	var payload request.IntakeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIntakePayload.HTTPStatus, errInvalidIntakePayload.ToHTTPError())
		return
	}

	in, err := payload.ToEntity()
	if err != nil {
		log.Printf("[intake][handler] invalid payload err=%v", err)
		c.JSON(errInvalidIntakePayload.HTTPStatus, errInvalidIntakePayload.ToHTTPError())
		return
	}

	created, err := h.intakeUseCase.Create(c.Request.Context(), in)
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[intake][handler] created intake=%s", created.ID)

	c.JSON(http.StatusCreated, response.FromIntake(created))
}

// GetIntake returns one pre-registration record by id.
func (h *IntakeHandler) GetIntake(c *gin.Context) {
	id := c.Param("id")

	in, err := h.intakeUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromIntake(in))
}

// ProcessIntake runs the enrollment saga for an intake.
func (h *IntakeHandler) ProcessIntake(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[intake][handler] process start intake=%s", id)

	result, err := h.enrollmentUseCase.Process(c.Request.Context(), id, nil)
	if err != nil {
		log.Printf("[intake][handler] process failed intake=%s err=%v", id, err)
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[intake][handler] process success intake=%s customer=%s", id, result.Customer.ID)

	c.JSON(http.StatusOK, response.FromProcessingResult(result))
}

func mapIntakeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidIntakeID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIntakeValidation):
		return pkg.NewDomainError("INTAKE_VALIDATION_FAILED", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrIntakeNotFound):
		return pkg.NewDomainErrorSimple("INTAKE_NOT_FOUND", "Intake not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusConflict)
	case errors.Is(err, usecase.ErrStudentGroupNotFound):
		return pkg.NewDomainErrorSimple("STUDENT_GROUP_NOT_FOUND", "Student group not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGroupMissingProgram),
		errors.Is(err, usecase.ErrGroupMissingAcademicYear),
		errors.Is(err, usecase.ErrProgramNotFound),
		errors.Is(err, usecase.ErrAcademicYearNotFound),
		errors.Is(err, usecase.ErrAcademicTermNotFound):
		return pkg.NewDomainError("ACADEMIC_DATA_INCOMPLETE", err.Error(), err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"errors"
	"log"
	"net/http"

	request "precad_service/internal/adapter/http/dto/request"
	response "precad_service/internal/adapter/http/dto/response"
	"precad_service/internal/domain/entities"
	"precad_service/internal/usecase"
	"precad_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSlotPayload = pkg.NewDomainErrorSimple("INVALID_SLOT_INPUT", "Invalid slot payload", http.StatusBadRequest)
)

// SlotHandler handles HTTP requests for course slot selection.

type SlotHandler struct {
	usecase usecase.ISlotUseCase
}

func NewSlotHandler(uc usecase.ISlotUseCase) *SlotHandler {
	return &SlotHandler{usecase: uc}
}

// SelectGroup assigns a student group to a course slot, running the
// prerequisite and age checks.
func (h *SlotHandler) SelectGroup(c *gin.Context) {
	id := c.Param("id")
	slot := entities.SlotKey(c.Param("slot"))

	var payload request.SlotSelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSlotPayload.HTTPStatus, errInvalidSlotPayload.ToHTTPError())
		return
	}

	selection, err := h.usecase.SelectGroup(c.Request.Context(), id, slot, payload.ResolveGroupID())
	if err != nil {
		appErr := mapSlotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[slot][handler] selection intake=%s slot=%s outcome=%s", id, slot, selection.Outcome)

	c.JSON(http.StatusOK, response.FromSlotSelection(selection))
}

// ClearSlot erases a course slot selection.
func (h *SlotHandler) ClearSlot(c *gin.Context) {
	id := c.Param("id")
	slot := entities.SlotKey(c.Param("slot"))

	in, err := h.usecase.ClearSlot(c.Request.Context(), id, slot)
	if err != nil {
		appErr := mapSlotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[slot][handler] cleared intake=%s slot=%s", id, slot)

	c.JSON(http.StatusOK, response.FromIntake(in))
}

// ListOptions returns the groups still selectable for a slot.
func (h *SlotHandler) ListOptions(c *gin.Context) {
	id := c.Param("id")
	slot := entities.SlotKey(c.Param("slot"))

	groups, err := h.usecase.ListOptions(c.Request.Context(), id, slot)
	if err != nil {
		appErr := mapSlotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStudentGroups(groups))
}

// ListGestanteGroups returns the open groups of the Gestantes program.
func (h *SlotHandler) ListGestanteGroups(c *gin.Context) {
	groups, err := h.usecase.ListGestanteGroups(c.Request.Context())
	if err != nil {
		appErr := mapSlotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStudentGroups(groups))
}

func mapSlotError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidIntakeID), errors.Is(err, usecase.ErrInvalidSlot):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIntakeNotFound):
		return pkg.NewDomainErrorSimple("INTAKE_NOT_FOUND", "Intake not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStudentGroupNotFound):
		return pkg.NewDomainErrorSimple("STUDENT_GROUP_NOT_FOUND", "Student group not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"precad_service/internal/adapter/http/handlers/mocks"
	"precad_service/internal/domain/entities"
	"precad_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSlotHandler_SelectGroup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISlotUseCase(ctrl)
		h := NewSlotHandler(uc)

		r := gin.New()
		r.PUT("/v1/intakes/:id/slots/:slot", h.SelectGroup)

		req := httptest.NewRequest(http.MethodPut, "/v1/intakes/pc-1/slots/sab", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing group", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISlotUseCase(ctrl)
		h := NewSlotHandler(uc)

		r := gin.New()
		r.PUT("/v1/intakes/:id/slots/:slot", h.SelectGroup)

		req := httptest.NewRequest(http.MethodPut, "/v1/intakes/pc-1/slots/sab", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown slot maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISlotUseCase(ctrl)
		h := NewSlotHandler(uc)

		r := gin.New()
		r.PUT("/v1/intakes/:id/slots/:slot", h.SelectGroup)

		uc.EXPECT().SelectGroup(gomock.Any(), "pc-1", entities.SlotKey("qua"), "220-A").
			Return(usecase.SlotSelection{}, usecase.ErrInvalidSlot)

		req := httptest.NewRequest(http.MethodPut, "/v1/intakes/pc-1/slots/qua", bytes.NewBufferString(`{"student_group":"220-A"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("age rejection still returns 200 with outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISlotUseCase(ctrl)
		h := NewSlotHandler(uc)

		r := gin.New()
		r.PUT("/v1/intakes/:id/slots/:slot", h.SelectGroup)

		uc.EXPECT().SelectGroup(gomock.Any(), "pc-1", entities.SlotSaturdayMorning, "220-A").
			Return(usecase.SlotSelection{
				Intake:  entities.Intake{ID: "pc-1", Status: entities.StatusPreCadastro},
				Outcome: usecase.SlotRejectedByAge,
				Age:     8,
				Warning: "A idade do aluno está fora da faixa da turma",
			}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/intakes/pc-1/slots/sab", bytes.NewBufferString(`{"student_group":"220-A"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["outcome"] != string(usecase.SlotRejectedByAge) || body["warning"] == "" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISlotUseCase(ctrl)
		h := NewSlotHandler(uc)

		r := gin.New()
		r.PUT("/v1/intakes/:id/slots/:slot", h.SelectGroup)

		uc.EXPECT().SelectGroup(gomock.Any(), "pc-1", entities.SlotSundaySecond, "255-B").
			Return(usecase.SlotSelection{
				Intake:  entities.Intake{ID: "pc-1", Status: entities.StatusPreCadastro},
				Outcome: usecase.SlotAccepted,
				Age:     17,
			}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/intakes/pc-1/slots/dom_2", bytes.NewBufferString(`{"student_group":"  255-B  "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["outcome"] != string(usecase.SlotAccepted) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestSlotHandler_ClearSlot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISlotUseCase(ctrl)
		h := NewSlotHandler(uc)

		r := gin.New()
		r.DELETE("/v1/intakes/:id/slots/:slot", h.ClearSlot)

		uc.EXPECT().ClearSlot(gomock.Any(), "missing", entities.SlotSunday).
			Return(entities.Intake{}, usecase.ErrIntakeNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/intakes/missing/slots/dom", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISlotUseCase(ctrl)
		h := NewSlotHandler(uc)

		r := gin.New()
		r.DELETE("/v1/intakes/:id/slots/:slot", h.ClearSlot)

		uc.EXPECT().ClearSlot(gomock.Any(), "pc-1", entities.SlotSaturdayMorning).
			Return(entities.Intake{ID: "pc-1", Status: entities.StatusPreCadastro}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/intakes/pc-1/slots/sab", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "pc-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestSlotHandler_ListOptions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISlotUseCase(ctrl)
	h := NewSlotHandler(uc)

	r := gin.New()
	r.GET("/v1/intakes/:id/slots/:slot/options", h.ListOptions)

	uc.EXPECT().ListOptions(gomock.Any(), "pc-1", entities.SlotSunday).Return([]entities.StudentGroup{
		{ID: "310-A", Name: "310-A", Day: "Dom"},
		{ID: "450-B", Name: "450-B", Day: "Dom"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/intakes/pc-1/slots/dom/options", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 2 || body[0]["id"] != "310-A" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestSlotHandler_ListGestanteGroups(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISlotUseCase(ctrl)
	h := NewSlotHandler(uc)

	r := gin.New()
	r.GET("/v1/gestante-groups", h.ListGestanteGroups)

	uc.EXPECT().ListGestanteGroups(gomock.Any()).Return([]entities.StudentGroup{{ID: "115-A", Day: "Dom"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/gestante-groups", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestMapSlotError(t *testing.T) {
	if got := mapSlotError(usecase.ErrInvalidIntakeID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapSlotError(usecase.ErrInvalidSlot); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapSlotError(usecase.ErrIntakeNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapSlotError(usecase.ErrStudentGroupNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapSlotError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}

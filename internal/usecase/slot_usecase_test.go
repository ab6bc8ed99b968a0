package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"precad_service/internal/domain/entities"
	mock_interfaces "precad_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func slotTestIntake() entities.Intake {
	return entities.Intake{
		ID:          "pc-1",
		FullName:    "Maria da Silva",
		DateOfBirth: time.Date(2000, 5, 10, 0, 0, 0, 0, time.UTC),
		Status:      entities.StatusPreCadastro,
	}
}

func TestSlotUseCase_SelectGroup(t *testing.T) {
	t.Run("invalid intake id", func(t *testing.T) {
		uc := NewSlotUseCase(nil, nil, nil)
		_, err := uc.SelectGroup(context.Background(), "  ", entities.SlotSaturdayMorning, "g-1")
		if !errors.Is(err, ErrInvalidIntakeID) {
			t.Fatalf("expected ErrInvalidIntakeID, got %v", err)
		}
	})

	t.Run("invalid slot", func(t *testing.T) {
		uc := NewSlotUseCase(nil, nil, nil)
		_, err := uc.SelectGroup(context.Background(), "pc-1", "qua", "g-1")
		if !errors.Is(err, ErrInvalidSlot) {
			t.Fatalf("expected ErrInvalidSlot, got %v", err)
		}
	})

	t.Run("secondary without primary makes no remote mutation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intakeRepo := mock_interfaces.NewMockIIntakeRepository(ctrl)
		academicRepo := mock_interfaces.NewMockIAcademicRepository(ctrl)
		interviewRepo := mock_interfaces.NewMockIInterviewRepository(ctrl)
		uc := NewSlotUseCase(intakeRepo, academicRepo, interviewRepo)

		// Only the intake read happens: no group fetch, no save, no
		// interview delete.
		intakeRepo.EXPECT().GetByID(gomock.Any(), "pc-1").Return(slotTestIntake(), nil)

		sel, err := uc.SelectGroup(context.Background(), "pc-1", entities.SlotSundaySecond, "g-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sel.Outcome != SlotRejectedByPrerequisite {
			t.Fatalf("expected prerequisite rejection, got %s", sel.Outcome)
		}
		if sel.Warning == "" {
			t.Fatalf("expected warning text")
		}
	})

	t.Run("age below minimum clears slot and deletes pending interview", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intakeRepo := mock_interfaces.NewMockIIntakeRepository(ctrl)
		academicRepo := mock_interfaces.NewMockIAcademicRepository(ctrl)
		interviewRepo := mock_interfaces.NewMockIInterviewRepository(ctrl)
		uc := NewSlotUseCase(intakeRepo, academicRepo, interviewRepo)

		in := slotTestIntake()
		in.DateOfBirth = time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
		in.SetSlot(entities.SlotSunday, entities.CourseSlot{StudentGroup: "g-old", Interview: true})

		group := entities.StudentGroup{
			ID:        "g-1",
			MinAge:    12,
			MaxAge:    17,
			StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		}

		intakeRepo.EXPECT().GetByID(gomock.Any(), "pc-1").Return(in, nil)
		academicRepo.EXPECT().GetStudentGroup(gomock.Any(), "g-1").Return(group, nil)
		interviewRepo.EXPECT().DeleteForSlot(gomock.Any(), "pc-1", entities.SlotSunday).Return(nil)

		var saved entities.Intake
		intakeRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, i entities.Intake) (entities.Intake, error) {
				saved = i
				return i, nil
			})

		sel, err := uc.SelectGroup(context.Background(), "pc-1", entities.SlotSunday, "g-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sel.Outcome != SlotRejectedByAge {
			t.Fatalf("expected age rejection, got %s", sel.Outcome)
		}
		if sel.Warning == "" {
			t.Fatalf("expected warning text")
		}
		if saved.Slot(entities.SlotSunday).Filled() {
			t.Fatalf("slot not cleared: %+v", saved.Slot(entities.SlotSunday))
		}
		if saved.Status != entities.StatusPreCadastro {
			t.Fatalf("status not reset, got %s", saved.Status)
		}
	})

	t.Run("age at maximum is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intakeRepo := mock_interfaces.NewMockIIntakeRepository(ctrl)
		academicRepo := mock_interfaces.NewMockIAcademicRepository(ctrl)
		interviewRepo := mock_interfaces.NewMockIInterviewRepository(ctrl)
		uc := NewSlotUseCase(intakeRepo, academicRepo, interviewRepo)

		// DOB 2000-05-10 against a 2026-03-01 start puts the user at 25.
		group := entities.StudentGroup{
			ID:        "g-1",
			MinAge:    16,
			MaxAge:    25,
			StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		}

		intakeRepo.EXPECT().GetByID(gomock.Any(), "pc-1").Return(slotTestIntake(), nil)
		academicRepo.EXPECT().GetStudentGroup(gomock.Any(), "g-1").Return(group, nil)
		intakeRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, i entities.Intake) (entities.Intake, error) { return i, nil })

		sel, err := uc.SelectGroup(context.Background(), "pc-1", entities.SlotSaturdayMorning, "g-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sel.Outcome != SlotAccepted || sel.Age != 25 {
			t.Fatalf("expected accepted at the boundary, got %s age=%d", sel.Outcome, sel.Age)
		}
	})

	t.Run("age above maximum is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intakeRepo := mock_interfaces.NewMockIIntakeRepository(ctrl)
		academicRepo := mock_interfaces.NewMockIAcademicRepository(ctrl)
		interviewRepo := mock_interfaces.NewMockIInterviewRepository(ctrl)
		uc := NewSlotUseCase(intakeRepo, academicRepo, interviewRepo)

		group := entities.StudentGroup{
			ID:        "g-1",
			MinAge:    16,
			MaxAge:    24,
			StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		}

		intakeRepo.EXPECT().GetByID(gomock.Any(), "pc-1").Return(slotTestIntake(), nil)
		academicRepo.EXPECT().GetStudentGroup(gomock.Any(), "g-1").Return(group, nil)

		var saved entities.Intake
		intakeRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, i entities.Intake) (entities.Intake, error) {
				saved = i
				return i, nil
			})

		sel, err := uc.SelectGroup(context.Background(), "pc-1", entities.SlotSaturdayMorning, "g-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sel.Outcome != SlotRejectedByAge || sel.Age != 25 {
			t.Fatalf("expected age rejection, got %s age=%d", sel.Outcome, sel.Age)
		}
		if !strings.Contains(sel.Warning, "maior") {
			t.Fatalf("expected over-maximum warning, got %q", sel.Warning)
		}
		if saved.Slot(entities.SlotSaturdayMorning).Filled() {
			t.Fatalf("slot not cleared: %+v", saved.Slot(entities.SlotSaturdayMorning))
		}
	})

	t.Run("max age zero means unbounded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intakeRepo := mock_interfaces.NewMockIIntakeRepository(ctrl)
		academicRepo := mock_interfaces.NewMockIAcademicRepository(ctrl)
		interviewRepo := mock_interfaces.NewMockIInterviewRepository(ctrl)
		uc := NewSlotUseCase(intakeRepo, academicRepo, interviewRepo)

		in := slotTestIntake()
		in.DateOfBirth = time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC)

		group := entities.StudentGroup{
			ID:        "g-1",
			MinAge:    16,
			MaxAge:    0,
			StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		}

		intakeRepo.EXPECT().GetByID(gomock.Any(), "pc-1").Return(in, nil)
		academicRepo.EXPECT().GetStudentGroup(gomock.Any(), "g-1").Return(group, nil)
		intakeRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, i entities.Intake) (entities.Intake, error) { return i, nil })

		sel, err := uc.SelectGroup(context.Background(), "pc-1", entities.SlotSaturdayMorning, "g-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sel.Outcome != SlotAccepted {
			t.Fatalf("expected accepted, got %s (warning %q)", sel.Outcome, sel.Warning)
		}
	})

	t.Run("accepted selection caches group data and recomputes segments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intakeRepo := mock_interfaces.NewMockIIntakeRepository(ctrl)
		academicRepo := mock_interfaces.NewMockIAcademicRepository(ctrl)
		interviewRepo := mock_interfaces.NewMockIInterviewRepository(ctrl)
		uc := NewSlotUseCase(intakeRepo, academicRepo, interviewRepo)

		group := entities.StudentGroup{
			ID:        "220-A",
			MinAge:    14,
			MaxAge:    29,
			Schooling: "Fundamental",
			Segment:   entities.SegmentMundoTrabalho,
			StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		}

		intakeRepo.EXPECT().GetByID(gomock.Any(), "pc-1").Return(slotTestIntake(), nil)
		academicRepo.EXPECT().GetStudentGroup(gomock.Any(), "220-A").Return(group, nil)

		var saved entities.Intake
		intakeRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, i entities.Intake) (entities.Intake, error) {
				saved = i
				return i, nil
			})

		sel, err := uc.SelectGroup(context.Background(), "pc-1", entities.SlotSaturdayMorning, "220-A")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sel.Outcome != SlotAccepted {
			t.Fatalf("expected accepted, got %s", sel.Outcome)
		}

		slot := saved.Slot(entities.SlotSaturdayMorning)
		if slot.StudentGroup != "220-A" || !slot.AgeOK || slot.MinAge != 14 || slot.MaxAge != 29 {
			t.Fatalf("slot not cached: %+v", slot)
		}
		if !saved.MundoTrabalho {
			t.Fatalf("segment flag not recomputed")
		}
		if sel.Age != 25 {
			t.Fatalf("expected age 25, got %d", sel.Age)
		}
	})
}

func TestSlotUseCase_ClearSlot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	intakeRepo := mock_interfaces.NewMockIIntakeRepository(ctrl)
	academicRepo := mock_interfaces.NewMockIAcademicRepository(ctrl)
	interviewRepo := mock_interfaces.NewMockIInterviewRepository(ctrl)
	uc := NewSlotUseCase(intakeRepo, academicRepo, interviewRepo)

	in := slotTestIntake()
	in.Status = entities.StatusEscolhaCurso
	in.SetSlot(entities.SlotSaturdayMorning, entities.CourseSlot{
		StudentGroup: "220-A",
		AgeOK:        true,
		Segment:      entities.SegmentMundoTrabalho,
		Senai:        true,
	})
	in.RecomputeSegments()

	intakeRepo.EXPECT().GetByID(gomock.Any(), "pc-1").Return(in, nil)

	var saved entities.Intake
	intakeRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, i entities.Intake) (entities.Intake, error) {
			saved = i
			return i, nil
		})

	_, err := uc.ClearSlot(context.Background(), "pc-1", entities.SlotSaturdayMorning)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	slot := saved.Slot(entities.SlotSaturdayMorning)
	if slot.Filled() || slot.Senai || slot.AgeOK {
		t.Fatalf("slot not fully reset: %+v", slot)
	}
	if saved.Status != entities.StatusPreCadastro {
		t.Fatalf("status not reset, got %s", saved.Status)
	}
	if saved.MundoTrabalho {
		t.Fatalf("segment flag survived clearing")
	}
}

func TestBuildGroupQuery(t *testing.T) {
	t.Run("saturday afternoon filter", func(t *testing.T) {
		q := BuildGroupQuery(slotTestIntake(), entities.SlotSaturdayAfternoon)
		if q.Day != "Sab" || q.Afternoon == nil || !*q.Afternoon {
			t.Fatalf("unexpected query: %+v", q)
		}
		if q.Status != entities.GroupStatusEmInscricao {
			t.Fatalf("expected open-for-enrollment filter, got %q", q.Status)
		}
	})

	t.Run("second saturday excludes chosen groups", func(t *testing.T) {
		in := slotTestIntake()
		in.SetSlot(entities.SlotSaturdayMorning, entities.CourseSlot{StudentGroup: "310-A"})
		q := BuildGroupQuery(in, entities.SlotSaturdaySecond)
		if len(q.ExcludeNames) != 1 || q.ExcludeNames[0] != "310-A" {
			t.Fatalf("unexpected exclusions: %v", q.ExcludeNames)
		}
	})

	t.Run("informatica chosen excludes its department on sunday", func(t *testing.T) {
		in := slotTestIntake()
		in.SetSlot(entities.SlotSaturdayMorning, entities.CourseSlot{StudentGroup: "220-A"})
		q := BuildGroupQuery(in, entities.SlotSunday)
		if q.Department == nil || !q.Department.Exclude || q.Department.Department != entities.DepartmentInformatica {
			t.Fatalf("unexpected department filter: %+v", q.Department)
		}
	})

	t.Run("digitacao on saturday morning restricts sunday to informatica", func(t *testing.T) {
		in := slotTestIntake()
		in.SetSlot(entities.SlotSaturdayMorning, entities.CourseSlot{StudentGroup: "255-B"})
		q := BuildGroupQuery(in, entities.SlotSunday)
		if q.Department == nil || q.Department.Exclude || q.Department.Department != entities.DepartmentInformatica {
			t.Fatalf("unexpected department filter: %+v", q.Department)
		}
	})

	t.Run("no department filter on saturday queries", func(t *testing.T) {
		in := slotTestIntake()
		in.SetSlot(entities.SlotSunday, entities.CourseSlot{StudentGroup: "220-C"})
		q := BuildGroupQuery(in, entities.SlotSaturdayMorning)
		if q.Department != nil {
			t.Fatalf("unexpected department filter: %+v", q.Department)
		}
	})
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"precad_service/internal/domain/entities"
	"precad_service/internal/usecase/interfaces"
)

var (
	ErrInvalidSlot = errors.New("invalid course slot")
)

// SlotOutcome is the terminal state of one selection attempt.
type SlotOutcome string

const (
	SlotAccepted               SlotOutcome = "accepted"
	SlotRejectedByAge          SlotOutcome = "rejected_by_age"
	SlotRejectedByPrerequisite SlotOutcome = "rejected_by_prerequisite"
)

// SlotSelection reports what happened to a selection attempt, carrying
// the intake state after the attempt and the warning text shown to the
// user on rejection.
type SlotSelection struct {
	Intake  entities.Intake
	Outcome SlotOutcome
	Age     int
	Warning string
}

// ISlotUseCase handles the per-slot course selection state machine:
// prerequisite check for secondary slots, age validation against the
// group's limits, interview cleanup on rejection, and the derived
// segment flags.

type ISlotUseCase interface {
	SelectGroup(ctx context.Context, intakeID string, slot entities.SlotKey, groupID string) (SlotSelection, error)
	ClearSlot(ctx context.Context, intakeID string, slot entities.SlotKey) (entities.Intake, error)
	ListOptions(ctx context.Context, intakeID string, slot entities.SlotKey) ([]entities.StudentGroup, error)
	ListGestanteGroups(ctx context.Context) ([]entities.StudentGroup, error)
}

type SlotUseCase struct {
	intakeRepo    interfaces.IIntakeRepository
	academicRepo  interfaces.IAcademicRepository
	interviewRepo interfaces.IInterviewRepository
	reconciler    *StatusReconciler
}

var _ ISlotUseCase = (*SlotUseCase)(nil)

func NewSlotUseCase(
	intakeRepo interfaces.IIntakeRepository,
	academicRepo interfaces.IAcademicRepository,
	interviewRepo interfaces.IInterviewRepository,
) *SlotUseCase {
	return &SlotUseCase{
		intakeRepo:    intakeRepo,
		academicRepo:  academicRepo,
		interviewRepo: interviewRepo,
		reconciler:    NewStatusReconciler(),
	}
}

func validSlot(slot entities.SlotKey) bool {
	for _, k := range entities.SlotKeys() {
		if k == slot {
			return true
		}
	}
	return false
}

// SelectGroup runs the slot state machine for one selection attempt.
// Secondary slots with an empty primary are rejected before any write.
func (u *SlotUseCase) SelectGroup(ctx context.Context, intakeID string, slot entities.SlotKey, groupID string) (SlotSelection, error) {
	intakeID = strings.TrimSpace(intakeID)
	groupID = strings.TrimSpace(groupID)
	if intakeID == "" {
		return SlotSelection{}, ErrInvalidIntakeID
	}
	if !validSlot(slot) {
		return SlotSelection{}, ErrInvalidSlot
	}
	if groupID == "" {
		return SlotSelection{}, fmt.Errorf("%w: empty group", ErrStudentGroupNotFound)
	}

	intake, err := u.intakeRepo.GetByID(ctx, intakeID)
	if err != nil {
		return SlotSelection{}, err
	}
	if intake.ID == "" {
		return SlotSelection{}, ErrIntakeNotFound
	}

	if primaries := slot.PrimarySlots(); len(primaries) > 0 {
		filled := false
		for _, p := range primaries {
			if intake.Slot(p).Filled() {
				filled = true
				break
			}
		}
		if !filled {
			warning := "*** ATENÇÃO! Não foi escolhida a opção principal!"
			if slot == entities.SlotSaturdaySecond {
				warning = "*** ATENÇÃO! Não foram escolhidas as opções para o sábado (manhã ou tarde)!"
			}
			log.Printf("[slot][usecase] selection rejected by prerequisite intake=%s slot=%s", intakeID, slot)
			return SlotSelection{Intake: intake, Outcome: SlotRejectedByPrerequisite, Warning: warning}, nil
		}
	}

	group, err := u.academicRepo.GetStudentGroup(ctx, groupID)
	if err != nil {
		return SlotSelection{}, err
	}
	if group.ID == "" {
		return SlotSelection{}, fmt.Errorf("%w: %s", ErrStudentGroupNotFound, groupID)
	}

	age := entities.AgeAt(intake.DateOfBirth, group.StartDate)
	intake.Age = age
	intake.ApplicationDate = time.Now().UTC()

	if age < group.MinAge || (group.MaxAge > 0 && age > group.MaxAge) {
		kind := "menor"
		if age > group.MaxAge && group.MaxAge > 0 {
			kind = "maior"
		}
		warning := fmt.Sprintf(
			"Validação da Idade do usuário(a): %d<br>Idade mínima: %d | Idade máxima: %d<br>*** ATENÇÃO! Idade do usuário(a) %s que a idade permitida para o curso.",
			age, group.MinAge, group.MaxAge, kind)
		log.Printf("[slot][usecase] selection rejected by age intake=%s slot=%s age=%d min=%d max=%d", intakeID, slot, age, group.MinAge, group.MaxAge)

		if err := u.resetSlot(ctx, &intake, slot); err != nil {
			return SlotSelection{}, err
		}
		saved, err := u.intakeRepo.Save(ctx, intake)
		if err != nil {
			return SlotSelection{}, err
		}
		return SlotSelection{Intake: saved, Outcome: SlotRejectedByAge, Age: age, Warning: warning}, nil
	}

	prior := intake.Slot(slot)
	intake.SetSlot(slot, entities.CourseSlot{
		StudentGroup: group.ID,
		StartDate:    group.StartDate,
		MinAge:       group.MinAge,
		MaxAge:       group.MaxAge,
		AgeOK:        true,
		Schooling:    group.Schooling,
		Segment:      group.Segment,
		Interview:    prior.Interview,
		Senai:        prior.Senai,
	})
	intake.RecomputeSegments()
	u.reconciler.Apply(&intake)

	saved, err := u.intakeRepo.Save(ctx, intake)
	if err != nil {
		return SlotSelection{}, err
	}
	log.Printf("[slot][usecase] selection accepted intake=%s slot=%s group=%s age=%d", intakeID, slot, group.ID, age)
	return SlotSelection{Intake: saved, Outcome: SlotAccepted, Age: age}, nil
}

// ClearSlot is the explicit "apagar opção" action.
func (u *SlotUseCase) ClearSlot(ctx context.Context, intakeID string, slot entities.SlotKey) (entities.Intake, error) {
	intakeID = strings.TrimSpace(intakeID)
	if intakeID == "" {
		return entities.Intake{}, ErrInvalidIntakeID
	}
	if !validSlot(slot) {
		return entities.Intake{}, ErrInvalidSlot
	}

	intake, err := u.intakeRepo.GetByID(ctx, intakeID)
	if err != nil {
		return entities.Intake{}, err
	}
	if intake.ID == "" {
		return entities.Intake{}, ErrIntakeNotFound
	}

	if err := u.resetSlot(ctx, &intake, slot); err != nil {
		return entities.Intake{}, err
	}
	saved, err := u.intakeRepo.Save(ctx, intake)
	if err != nil {
		return entities.Intake{}, err
	}
	log.Printf("[slot][usecase] slot cleared intake=%s slot=%s", intakeID, slot)
	return saved, nil
}

// resetSlot wipes the slot's cached fields, removes a pending interview
// record when one exists, and drops the status back to pre-registration.
func (u *SlotUseCase) resetSlot(ctx context.Context, intake *entities.Intake, slot entities.SlotKey) error {
	current := intake.Slot(slot)
	if current.Interview {
		if err := u.interviewRepo.DeleteForSlot(ctx, intake.ID, slot); err != nil {
			return err
		}
	}
	intake.SetSlot(slot, entities.CourseSlot{})
	intake.Status = u.reconciler.Reconcile(string(entities.StatusPreCadastro))
	intake.RecomputeSegments()
	return nil
}

// ListOptions returns the groups a user may still pick for a slot:
// open for enrollment, on the slot's day, minus groups already chosen,
// honoring the department double-booking exclusion.
func (u *SlotUseCase) ListOptions(ctx context.Context, intakeID string, slot entities.SlotKey) ([]entities.StudentGroup, error) {
	intakeID = strings.TrimSpace(intakeID)
	if intakeID == "" {
		return nil, ErrInvalidIntakeID
	}
	if !validSlot(slot) {
		return nil, ErrInvalidSlot
	}

	intake, err := u.intakeRepo.GetByID(ctx, intakeID)
	if err != nil {
		return nil, err
	}
	if intake.ID == "" {
		return nil, ErrIntakeNotFound
	}

	return u.academicRepo.ListStudentGroups(ctx, BuildGroupQuery(intake, slot))
}

// ListGestanteGroups lists the Sunday groups of the Gestantes program
// currently open for enrollment.
func (u *SlotUseCase) ListGestanteGroups(ctx context.Context) ([]entities.StudentGroup, error) {
	return u.academicRepo.ListStudentGroups(ctx, entities.GroupQuery{
		Day:      "Dom",
		Status:   entities.GroupStatusEmInscricao,
		Program2: entities.GestantesProgram2,
	})
}

// BuildGroupQuery derives the selection filter for a slot from the
// intake's current selections. Choosing an informatics (220) group
// excludes the informatics department from the Sunday options; choosing
// a typing (255) group on the Saturday-morning slot inverts that filter,
// restricting Sunday to the informatics department instead.
func BuildGroupQuery(intake entities.Intake, slot entities.SlotKey) entities.GroupQuery {
	q := entities.GroupQuery{
		Day:    slot.Day(),
		Status: entities.GroupStatusEmInscricao,
	}

	afternoon := slot == entities.SlotSaturdayAfternoon
	if slot.Saturday() {
		q.Afternoon = &afternoon
	}

	switch slot {
	case entities.SlotSaturdaySecond:
		q.ExcludeNames = filledGroups(intake, entities.SlotSaturdayMorning, entities.SlotSaturdayAfternoon)
	case entities.SlotSundaySecond:
		q.ExcludeNames = filledGroups(intake, entities.SlotSunday)
	}

	if slot.Day() == "Dom" {
		if hasCourseCode(intake, entities.CourseCodeInformatica) {
			q.Department = &entities.DepartmentFilter{Department: entities.DepartmentInformatica, Exclude: true}
		} else if code := courseCode(intake.Slot(entities.SlotSaturdayMorning).StudentGroup); code == entities.CourseCodeDigitacao {
			q.Department = &entities.DepartmentFilter{Department: entities.DepartmentInformatica}
		}
	}

	return q
}

func filledGroups(intake entities.Intake, slots ...entities.SlotKey) []string {
	var names []string
	for _, k := range slots {
		if g := intake.Slot(k).StudentGroup; g != "" {
			names = append(names, g)
		}
	}
	return names
}

func courseCode(groupID string) string {
	if len(groupID) < 3 {
		return ""
	}
	return groupID[:3]
}

func hasCourseCode(intake entities.Intake, code string) bool {
	for _, k := range entities.SlotKeys() {
		if courseCode(intake.Slot(k).StudentGroup) == code {
			return true
		}
	}
	return false
}

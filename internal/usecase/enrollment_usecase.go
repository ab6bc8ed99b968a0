package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"precad_service/internal/domain/entities"
	"precad_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidIntakeID          = errors.New("invalid intake id")
	ErrIntakeNotFound           = errors.New("intake not found")
	ErrIntakeValidation         = errors.New("intake validation failed")
	ErrCustomerNotFound         = errors.New("customer not found")
	ErrStudentGroupNotFound     = errors.New("student group not found")
	ErrGroupMissingProgram      = errors.New("student group has no linked program")
	ErrGroupMissingAcademicYear = errors.New("student group has no linked academic year")
	ErrProgramNotFound          = errors.New("program not found")
	ErrAcademicYearNotFound     = errors.New("academic year not found")
	ErrAcademicTermNotFound     = errors.New("academic term not found")
)

// SagaConfig carries the fixed tables the saga consults, built once and
// injected. CustomerLinkFields is the capability descriptor for the
// link-propagation stage: logical link name → the concrete Customer
// field names to attempt, in preference order. A logical link mapped to
// no field names is skipped silently.
type SagaConfig struct {
	CustomerLinkFields map[string][]string
	RetryMaxAttempts   int
	RetryDelay         time.Duration
}

func DefaultSagaConfig() SagaConfig {
	return SagaConfig{
		CustomerLinkFields: map[string][]string{
			"student":  {"link_st", "custom_link_st"},
			"gestante": {"link_ge", "custom_link_ge"},
			"crianca":  {"link_cr", "custom_link_cr"},
		},
		RetryMaxAttempts: 3,
		RetryDelay:       time.Second,
	}
}

// ProcessingResult aggregates what one saga run produced.
type ProcessingResult struct {
	Intake               entities.Intake
	Customer             entities.Customer
	Student              *entities.Student
	Gestante             *entities.GestanteFicha
	Crianca              *entities.CriancaFicha
	ProgramEnrollment    *entities.ProgramEnrollment
	CustomerLinksUpdated bool
	StatusUpdated        bool
	CascadeSucceeded     int
	CascadeTotal         int
}

// IEnrollmentUseCase runs the multi-entity enrollment saga for an
// intake: customer → student → gestante → criança → customer links →
// program enrollment → status cascade.

type IEnrollmentUseCase interface {
	Process(ctx context.Context, intakeID string, prepared *PreparedIntake) (ProcessingResult, error)
}

type EnrollmentUseCase struct {
	intakeRepo     interfaces.IIntakeRepository
	customerRepo   interfaces.ICustomerRepository
	studentRepo    interfaces.IStudentRepository
	fichaRepo      interfaces.IFichaRepository
	academicRepo   interfaces.IAcademicRepository
	enrollmentRepo interfaces.IProgramEnrollmentRepository
	reconciler     *StatusReconciler
	cfg            SagaConfig
}

var _ IEnrollmentUseCase = (*EnrollmentUseCase)(nil)

func NewEnrollmentUseCase(
	intakeRepo interfaces.IIntakeRepository,
	customerRepo interfaces.ICustomerRepository,
	studentRepo interfaces.IStudentRepository,
	fichaRepo interfaces.IFichaRepository,
	academicRepo interfaces.IAcademicRepository,
	enrollmentRepo interfaces.IProgramEnrollmentRepository,
	cfg SagaConfig,
) *EnrollmentUseCase {
	return &EnrollmentUseCase{
		intakeRepo:     intakeRepo,
		customerRepo:   customerRepo,
		studentRepo:    studentRepo,
		fichaRepo:      fichaRepo,
		academicRepo:   academicRepo,
		enrollmentRepo: enrollmentRepo,
		reconciler:     NewStatusReconciler(),
		cfg:            cfg,
	}
}

// Process runs the saga for one intake. When prepared is nil the intake
// is validated and prepared here; callers that already prepared the
// payloads pass them through unchanged.
//
// Stages run in sequence; each payload depends on the ids the previous
// stage produced. A stage failure aborts the run without compensation,
// re-running is safe via find-or-create.
func (u *EnrollmentUseCase) Process(ctx context.Context, intakeID string, prepared *PreparedIntake) (ProcessingResult, error) {
	intakeID = strings.TrimSpace(intakeID)
	if intakeID == "" {
		return ProcessingResult{}, ErrInvalidIntakeID
	}

	log.Printf("[enrollment][usecase] process start intake=%s external_data=%t", intakeID, prepared != nil)

	intake, err := u.intakeRepo.GetByID(ctx, intakeID)
	if err != nil {
		return ProcessingResult{}, err
	}
	if intake.ID == "" {
		return ProcessingResult{}, ErrIntakeNotFound
	}

	if prepared == nil {
		if vr := ValidateIntake(intake); !vr.Valid {
			log.Printf("[enrollment][usecase] validation failed intake=%s errors=%d", intakeID, len(vr.Errors))
			return ProcessingResult{}, fmt.Errorf("%w: %s", ErrIntakeValidation, strings.Join(vr.Errors, "; "))
		}
		p := PrepareIntake(intake)
		prepared = &p
	}

	res := ProcessingResult{}
	stepRetry := retryPolicy{maxAttempts: u.cfg.RetryMaxAttempts, delay: u.cfg.RetryDelay}

	steps := []sagaStep{
		{name: "customer", retry: stepRetry, run: func(ctx context.Context) error {
			return u.processCustomer(ctx, &intake, *prepared, &res)
		}},
		{name: "student", retry: noRetry, run: func(ctx context.Context) error {
			if !prepared.CreateStudent {
				log.Printf("[enrollment][usecase] student stage skipped intake=%s", intakeID)
				return nil
			}
			return u.processStudent(ctx, &intake, *prepared, &res)
		}},
		{name: "gestante", retry: noRetry, run: func(ctx context.Context) error {
			if !prepared.CreateGestante {
				log.Printf("[enrollment][usecase] gestante stage skipped intake=%s", intakeID)
				return nil
			}
			return u.processGestante(ctx, &intake, &res)
		}},
		{name: "crianca", retry: noRetry, run: func(ctx context.Context) error {
			if !prepared.CreateCrianca {
				log.Printf("[enrollment][usecase] crianca stage skipped intake=%s", intakeID)
				return nil
			}
			return u.processCrianca(ctx, &intake, &res)
		}},
		{name: "customer-links", retry: noRetry, run: func(ctx context.Context) error {
			return u.propagateCustomerLinks(ctx, &res)
		}},
		{name: "program-enrollment", retry: noRetry, run: func(ctx context.Context) error {
			return u.processProgramEnrollment(ctx, &intake, &res)
		}},
		{name: "status-cascade", retry: noRetry, run: func(ctx context.Context) error {
			return u.cascadeStatus(ctx, &intake, &res)
		}},
	}

	if err := runSaga(ctx, steps); err != nil {
		log.Printf("[enrollment][usecase] process failed intake=%s err=%v", intakeID, err)
		return ProcessingResult{}, err
	}

	res.Intake = intake
	log.Printf("[enrollment][usecase] process success intake=%s customer=%s student=%t gestante=%t crianca=%t enrollment=%t",
		intakeID, res.Customer.ID, res.Student != nil, res.Gestante != nil, res.Crianca != nil, res.ProgramEnrollment != nil)
	return res, nil
}

// processCustomer is the find-or-create customer stage. An intake that
// already references a customer updates it in place; otherwise the
// normalized tax id is searched before inserting.
func (u *EnrollmentUseCase) processCustomer(ctx context.Context, intake *entities.Intake, prepared PreparedIntake, res *ProcessingResult) error {
	if intake.CustomerLink != "" {
		log.Printf("[enrollment][usecase] updating existing customer %s", intake.CustomerLink)
		existing, err := u.customerRepo.GetByID(ctx, intake.CustomerLink)
		if err != nil {
			return err
		}
		if existing.ID == "" {
			return ErrCustomerNotFound
		}
		existing.Merge(prepared.Customer)
		saved, err := u.customerRepo.Save(ctx, existing)
		if err != nil {
			return err
		}
		res.Customer = saved
		intake.CustomerLink = saved.ID
		return nil
	}

	existing, err := u.customerRepo.GetByTaxID(ctx, prepared.CPF)
	if err != nil {
		return err
	}
	if existing.ID != "" {
		log.Printf("[enrollment][usecase] customer found by tax id, updating %s", existing.ID)
		existing.Merge(prepared.Customer)
		saved, err := u.customerRepo.Save(ctx, existing)
		if err != nil {
			return err
		}
		res.Customer = saved
		intake.CustomerLink = saved.ID
		return nil
	}

	log.Printf("[enrollment][usecase] creating new customer tax_id=%s", prepared.CPF)
	now := time.Now().UTC()
	c := prepared.Customer
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	created, err := u.customerRepo.Insert(ctx, c)
	if err != nil {
		return err
	}
	res.Customer = created
	intake.CustomerLink = created.ID
	return nil
}

// processStudent mirrors the customer stage keyed by CPF, deriving the
// first/last name split from the full name.
func (u *EnrollmentUseCase) processStudent(ctx context.Context, intake *entities.Intake, prepared PreparedIntake, res *ProcessingResult) error {
	first, last := SplitFullName(prepared.Source.FullName)

	existing, err := u.studentRepo.GetByCPF(ctx, prepared.CPF)
	if err != nil {
		return err
	}
	if existing.ID != "" {
		log.Printf("[enrollment][usecase] updating existing student %s", existing.ID)
		existing.FirstName = first
		if last != "" {
			existing.LastName = last
		}
		existing.Title = prepared.Source.FullName
		existing.Assistido = res.Customer.ID
		if !prepared.Source.DateOfBirth.IsZero() {
			existing.DateOfBirth = prepared.Source.DateOfBirth
		}
		if prepared.Source.Phone != "" {
			existing.Mobile = entities.NormalizeCPF(prepared.Source.Phone)
		}
		if prepared.Source.Email != "" {
			existing.Email = prepared.Source.Email
		}
		if prepared.Source.Gender != "" {
			existing.Gender = prepared.Source.Gender
		}
		saved, err := u.studentRepo.Save(ctx, existing)
		if err != nil {
			return err
		}
		res.Student = &saved
		intake.StudentLink = saved.ID
		return nil
	}

	log.Printf("[enrollment][usecase] creating new student cpf=%s", prepared.CPF)
	now := time.Now().UTC()
	s := entities.Student{
		ID:          uuid.NewString(),
		FirstName:   first,
		LastName:    last,
		Title:       prepared.Source.FullName,
		CPF:         prepared.CPF,
		Assistido:   res.Customer.ID,
		DateOfBirth: prepared.Source.DateOfBirth,
		Mobile:      entities.NormalizeCPF(prepared.Source.Phone),
		Email:       prepared.Source.Email,
		Gender:      prepared.Source.Gender,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if s.Title == "" {
		s.Title = s.FirstName
	}
	created, err := u.studentRepo.Insert(ctx, s)
	if err != nil {
		return err
	}
	res.Student = &created
	intake.StudentLink = created.ID
	return nil
}

func (u *EnrollmentUseCase) processGestante(ctx context.Context, intake *entities.Intake, res *ProcessingResult) error {
	log.Printf("[enrollment][usecase] creating gestante ficha customer=%s turma=%s", res.Customer.ID, intake.GestanteGroup)
	f := entities.GestanteFicha{
		ID:           uuid.NewString(),
		Assistido:    intake.FullName,
		CustomerLink: res.Customer.ID,
		Turma:        intake.GestanteGroup,
		CPF:          res.Customer.TaxID,
		DateOfBirth:  intake.DateOfBirth,
		Phone:        intake.Phone,
		Email:        intake.Email,
		Age:          intake.Age,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := u.fichaRepo.InsertGestante(ctx, f)
	if err != nil {
		return err
	}
	res.Gestante = &created
	intake.GestanteLink = created.ID
	return nil
}

func (u *EnrollmentUseCase) processCrianca(ctx context.Context, intake *entities.Intake, res *ProcessingResult) error {
	log.Printf("[enrollment][usecase] creating crianca ficha customer=%s", res.Customer.ID)
	f := entities.CriancaFicha{
		ID:           uuid.NewString(),
		Assistido:    intake.FullName,
		CustomerLink: res.Customer.ID,
		CPF:          res.Customer.TaxID,
		DateOfBirth:  intake.DateOfBirth,
		Phone:        intake.Phone,
		Email:        intake.Email,
		Age:          intake.Age,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := u.fichaRepo.InsertCrianca(ctx, f)
	if err != nil {
		return err
	}
	res.Crianca = &created
	intake.CriancaLink = created.ID
	return nil
}

// propagateCustomerLinks writes the produced entity ids back onto the
// Customer through the capability map. Missing capability entries are
// skipped silently; a write failure here never aborts the saga.
func (u *EnrollmentUseCase) propagateCustomerLinks(ctx context.Context, res *ProcessingResult) error {
	links := map[string]string{}
	if res.Student != nil {
		links["student"] = res.Student.ID
	}
	if res.Gestante != nil {
		links["gestante"] = res.Gestante.ID
	}
	if res.Crianca != nil {
		links["crianca"] = res.Crianca.ID
	}
	if len(links) == 0 {
		return nil
	}

	customer, err := u.customerRepo.GetByID(ctx, res.Customer.ID)
	if err != nil || customer.ID == "" {
		log.Printf("[enrollment][usecase] customer links skipped, reload failed customer=%s err=%v", res.Customer.ID, err)
		return nil
	}

	wrote := false
	for logical, id := range links {
		fields := u.cfg.CustomerLinkFields[logical]
		if len(fields) == 0 {
			log.Printf("[enrollment][usecase] no link field configured for %q, skipping", logical)
			continue
		}
		customer.SetLink(fields[0], id)
		wrote = true
	}
	if !wrote {
		return nil
	}

	saved, err := u.customerRepo.Save(ctx, customer)
	if err != nil {
		log.Printf("[enrollment][usecase] saving customer links failed (continuing) customer=%s err=%v", customer.ID, err)
		return nil
	}
	res.Customer = saved
	res.CustomerLinksUpdated = true
	return nil
}

// processProgramEnrollment enrolls the student in the program derived
// from the selected gestante student group. The group is the single
// source of truth: a group without a Program or Academic Year fails the
// whole stage.
func (u *EnrollmentUseCase) processProgramEnrollment(ctx context.Context, intake *entities.Intake, res *ProcessingResult) error {
	if res.Student == nil || res.Gestante == nil || intake.GestanteGroup == "" {
		log.Printf("[enrollment][usecase] program enrollment skipped intake=%s student=%t gestante=%t group=%q",
			intake.ID, res.Student != nil, res.Gestante != nil, intake.GestanteGroup)
		return nil
	}

	group, err := u.academicRepo.GetStudentGroup(ctx, intake.GestanteGroup)
	if err != nil {
		return err
	}
	if group.ID == "" {
		return fmt.Errorf("%w: %s", ErrStudentGroupNotFound, intake.GestanteGroup)
	}
	if group.Program == "" {
		return fmt.Errorf("%w: %s", ErrGroupMissingProgram, group.ID)
	}
	if group.AcademicYear == "" {
		return fmt.Errorf("%w: %s", ErrGroupMissingAcademicYear, group.ID)
	}

	program, err := u.academicRepo.GetProgram(ctx, group.Program)
	if err != nil {
		return err
	}
	if program.ID == "" {
		return fmt.Errorf("%w: %s", ErrProgramNotFound, group.Program)
	}

	year, err := u.academicRepo.GetAcademicYear(ctx, group.AcademicYear)
	if err != nil {
		return err
	}
	if year.ID == "" {
		return fmt.Errorf("%w: %s", ErrAcademicYearNotFound, group.AcademicYear)
	}

	term := entities.AcademicTerm{}
	if group.AcademicTerm != "" {
		term, err = u.academicRepo.GetAcademicTerm(ctx, group.AcademicTerm)
		if err != nil {
			return err
		}
		if term.ID == "" {
			return fmt.Errorf("%w: %s", ErrAcademicTermNotFound, group.AcademicTerm)
		}
	}

	// A lookup failure here is tolerated: worst case the saga inserts a
	// duplicate-candidate that the next run will find and update.
	existing, err := u.enrollmentRepo.GetByStudentAndProgram(ctx, res.Student.ID, program.ID)
	if err != nil {
		log.Printf("[enrollment][usecase] existing enrollment lookup failed (continuing) err=%v", err)
		existing = entities.ProgramEnrollment{}
	}

	now := time.Now().UTC()
	if existing.ID != "" {
		log.Printf("[enrollment][usecase] updating existing program enrollment %s", existing.ID)
		existing.StudentGroup = group.ID
		existing.AcademicYear = year.ID
		existing.EnrollmentDate = now
		existing.UpdatedAt = now
		saved, err := u.enrollmentRepo.Save(ctx, existing)
		if err != nil {
			return err
		}
		res.ProgramEnrollment = &saved
		return nil
	}

	log.Printf("[enrollment][usecase] creating program enrollment student=%s program=%s", res.Student.ID, program.ID)
	e := entities.ProgramEnrollment{
		ID:             uuid.NewString(),
		Student:        res.Student.ID,
		StudentName:    res.Student.Title,
		Program:        program.ID,
		AcademicYear:   year.ID,
		AcademicTerm:   term.ID,
		StudentGroup:   group.ID,
		EnrollmentDate: now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if res.Gestante != nil {
		e.ContactDateOfBirth = res.Gestante.DateOfBirth
		e.ContactPhone = res.Gestante.Phone
		e.ContactEmail = res.Gestante.Email
	}
	created, err := u.enrollmentRepo.Insert(ctx, e)
	if err != nil {
		return err
	}
	res.ProgramEnrollment = &created
	return nil
}

// cascadeStatus marks the intake "5.Matriculado" once an enrollment
// exists and fans the same status out to sibling intakes of the same
// student. Sibling failures are counted, never fatal.
func (u *EnrollmentUseCase) cascadeStatus(ctx context.Context, intake *entities.Intake, res *ProcessingResult) error {
	if res.ProgramEnrollment == nil {
		return nil
	}

	intake.Status = u.reconciler.Reconcile(string(entities.StatusMatriculado))
	intake.ProgramEnrollment = res.ProgramEnrollment.ID
	intake.Program = res.ProgramEnrollment.Program
	intake.EnrollmentDate = res.ProgramEnrollment.EnrollmentDate

	if !intake.Persisted() {
		log.Printf("[enrollment][usecase] intake not persisted yet, status update skipped")
	} else {
		saved, err := u.intakeRepo.Save(ctx, *intake)
		if err != nil {
			log.Printf("[enrollment][usecase] intake status save failed (continuing) intake=%s err=%v", intake.ID, err)
		} else {
			*intake = saved
			res.StatusUpdated = true
		}
	}

	if res.Student == nil {
		return nil
	}

	siblings, err := u.intakeRepo.ListByStudentLink(ctx, res.Student.ID, entities.StatusMatriculado)
	if err != nil {
		log.Printf("[enrollment][usecase] sibling lookup failed (continuing) student=%s err=%v", res.Student.ID, err)
		return nil
	}

	// Drop the record being processed; it was handled above.
	filtered := siblings[:0]
	for _, s := range siblings {
		if s.ID != intake.ID {
			filtered = append(filtered, s)
		}
	}
	siblings = filtered
	if len(siblings) == 0 {
		return nil
	}

	// Fan-out: sibling updates run concurrently, one failure never
	// cancels the others.
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for _, sibling := range siblings {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if err := u.markSiblingEnrolled(ctx, id, *res.ProgramEnrollment); err != nil {
				log.Printf("[enrollment][usecase] sibling status update failed intake=%s err=%v", id, err)
				return
			}
			mu.Lock()
			succeeded++
			mu.Unlock()
		}(sibling.ID)
	}
	wg.Wait()

	res.CascadeSucceeded = succeeded
	res.CascadeTotal = len(siblings)
	log.Printf("[enrollment][usecase] sibling cascade done %d/%d updated", succeeded, len(siblings))
	return nil
}

func (u *EnrollmentUseCase) markSiblingEnrolled(ctx context.Context, id string, enrollment entities.ProgramEnrollment) error {
	sibling, err := u.intakeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sibling.ID == "" {
		return ErrIntakeNotFound
	}
	if sibling.Status == entities.StatusMatriculado {
		return nil
	}
	sibling.Status = u.reconciler.Reconcile(string(entities.StatusMatriculado))
	sibling.ProgramEnrollment = enrollment.ID
	sibling.Program = enrollment.Program
	sibling.EnrollmentDate = enrollment.EnrollmentDate
	_, err = u.intakeRepo.Save(ctx, sibling)
	return err
}

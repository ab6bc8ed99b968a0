package entities

import (
	"math"
	"time"
)

// Mode is one of the five mutually exclusive intake modes. The mode
// decides which downstream records the enrollment saga produces.
type Mode string

const (
	ModeMundoTrabalho   Mode = "is_mt"
	ModeSocioFamiliar   Mode = "is_sf"
	ModeGestante        Mode = "is_ge"
	ModeEmpregabilidade Mode = "is_ep"
	ModeCestaBasica     Mode = "is_cb"
)

// ModeRule describes what a mode produces during processing.
// CreateFicha on ModeCestaBasica means "create a child case record",
// a rule inherited from the intake team.
type ModeRule struct {
	Label         string
	CreateStudent bool
	CreateFicha   bool
}

// ModeRules returns a fresh copy of the mode table so callers cannot
// mutate the shared definition.
func ModeRules() map[Mode]ModeRule {
	return map[Mode]ModeRule{
		ModeMundoTrabalho:   {Label: "Mundo do Trabalho", CreateStudent: true},
		ModeSocioFamiliar:   {Label: "Sócio-Familiar", CreateStudent: true},
		ModeGestante:        {Label: "Gestantes", CreateStudent: true, CreateFicha: true},
		ModeEmpregabilidade: {Label: "Empregabilidade"},
		ModeCestaBasica:     {Label: "Cesta Básica", CreateFicha: true},
	}
}

// SlotKey identifies one of the five course selection slots.
type SlotKey string

const (
	SlotSaturdayMorning   SlotKey = "sab"
	SlotSaturdaySecond    SlotKey = "sab_2"
	SlotSaturdayAfternoon SlotKey = "sab_t"
	SlotSunday            SlotKey = "dom"
	SlotSundaySecond      SlotKey = "dom_2"
)

// SlotKeys returns every slot in display order.
func SlotKeys() []SlotKey {
	return []SlotKey{
		SlotSaturdayMorning,
		SlotSaturdaySecond,
		SlotSaturdayAfternoon,
		SlotSunday,
		SlotSundaySecond,
	}
}

// Day returns the weekday filter value the slot selects groups from.
func (k SlotKey) Day() string {
	switch k {
	case SlotSunday, SlotSundaySecond:
		return "Dom"
	default:
		return "Sab"
	}
}

// Saturday reports whether the slot carries the SENAI paperwork fields.
func (k SlotKey) Saturday() bool {
	return k.Day() == "Sab"
}

// Secondary slots are only valid once a primary slot is filled.
func (k SlotKey) Secondary() bool {
	return k == SlotSaturdaySecond || k == SlotSundaySecond
}

// PrimarySlots returns the slots that must be filled before this
// secondary slot may be used. Empty for primary slots.
func (k SlotKey) PrimarySlots() []SlotKey {
	switch k {
	case SlotSaturdaySecond:
		return []SlotKey{SlotSaturdayMorning, SlotSaturdayAfternoon}
	case SlotSundaySecond:
		return []SlotKey{SlotSunday}
	default:
		return nil
	}
}

// CourseSlot caches, per slot, the data of the selected student group
// plus the bookkeeping flags the selection workflow maintains.
type CourseSlot struct {
	StudentGroup string    `json:"student_group"`
	StartDate    time.Time `json:"start_date"`
	MinAge       int       `json:"min_age"`
	MaxAge       int       `json:"max_age"`
	AgeOK        bool      `json:"age_ok"`
	Schooling    string    `json:"schooling"`
	Segment      string    `json:"segment"`
	Interview    bool      `json:"interview"`
	Senai        bool      `json:"senai"`
}

func (s CourseSlot) Filled() bool {
	return s.StudentGroup != ""
}

// Segment labels recognized when deriving the MT/SF segment flags.
const (
	SegmentMundoTrabalho = "MT - Mundo do Trabalho"
	SegmentSocioFamiliar = "SF - Sócio Familiar"
)

// Intake is the pre-registration record (the source form of the
// enrollment workflow). It is the only record this service mutates
// freely; every other entity is written through find-or-create.
type Intake struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	CPF         string    `json:"cpf"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	CEP         string    `json:"cep"`
	Numero      string    `json:"numero"`
	Gender      string    `json:"gender"`
	Age         int       `json:"age"`

	IsMT bool `json:"is_mt"`
	IsSF bool `json:"is_sf"`
	IsGE bool `json:"is_ge"`
	IsEP bool `json:"is_ep"`
	IsCB bool `json:"is_cb"`

	// GestanteGroup is the student group chosen for the Gestantes
	// program; it drives the Program Enrollment stage of the saga.
	GestanteGroup string `json:"gestante_group"`

	Slots map[SlotKey]CourseSlot `json:"slots"`

	// Derived segment flags, recomputed from filled age-ok slots.
	MundoTrabalho bool `json:"mundo_trabalho"`
	SocioFamiliar bool `json:"socio_familiar"`

	Status IntakeStatus `json:"status"`

	CustomerLink string `json:"customer_link"`
	StudentLink  string `json:"student_link"`
	GestanteLink string `json:"gestante_link"`
	CriancaLink  string `json:"crianca_link"`

	// Written by the status cascade once a Program Enrollment exists.
	ProgramEnrollment string    `json:"program_enrollment"`
	Program           string    `json:"program"`
	EnrollmentDate    time.Time `json:"enrollment_date"`

	ApplicationDate time.Time `json:"application_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Persisted reports whether the record has ever been saved. The status
// cascade cannot update an unsaved intake.
func (i *Intake) Persisted() bool {
	return i.ID != ""
}

// SetMode turns on exactly one mode flag, clearing the other four.
func (i *Intake) SetMode(m Mode) {
	i.IsMT = m == ModeMundoTrabalho
	i.IsSF = m == ModeSocioFamiliar
	i.IsGE = m == ModeGestante
	i.IsEP = m == ModeEmpregabilidade
	i.IsCB = m == ModeCestaBasica
}

// ActiveMode returns the selected mode, if any.
func (i *Intake) ActiveMode() (Mode, bool) {
	switch {
	case i.IsMT:
		return ModeMundoTrabalho, true
	case i.IsSF:
		return ModeSocioFamiliar, true
	case i.IsGE:
		return ModeGestante, true
	case i.IsEP:
		return ModeEmpregabilidade, true
	case i.IsCB:
		return ModeCestaBasica, true
	}
	return "", false
}

func (i *Intake) HasMode() bool {
	_, ok := i.ActiveMode()
	return ok
}

// Slot returns the slot state, zero-valued when never touched.
func (i *Intake) Slot(key SlotKey) CourseSlot {
	if i.Slots == nil {
		return CourseSlot{}
	}
	return i.Slots[key]
}

func (i *Intake) SetSlot(key SlotKey, s CourseSlot) {
	if i.Slots == nil {
		i.Slots = make(map[SlotKey]CourseSlot, 5)
	}
	i.Slots[key] = s
}

// HasSlotSelected reports whether any course slot is filled.
func (i *Intake) HasSlotSelected() bool {
	for _, key := range SlotKeys() {
		if i.Slot(key).Filled() {
			return true
		}
	}
	return false
}

// RecomputeSegments refreshes the MT/SF flags from the slots that are
// both filled and age-approved.
func (i *Intake) RecomputeSegments() {
	i.MundoTrabalho = false
	i.SocioFamiliar = false
	for _, key := range SlotKeys() {
		s := i.Slot(key)
		if !s.Filled() || !s.AgeOK {
			continue
		}
		switch s.Segment {
		case SegmentMundoTrabalho:
			i.MundoTrabalho = true
		case SegmentSocioFamiliar:
			i.SocioFamiliar = true
		}
	}
}

// AgeAt computes the age at a course start date as whole 365-day years,
// matching the platform's historical day-based arithmetic.
func AgeAt(dateOfBirth, courseStart time.Time) int {
	days := courseStart.Sub(dateOfBirth).Hours() / 24
	return int(math.Floor(days / 365))
}

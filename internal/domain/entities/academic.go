package entities

import "time"

// StudentGroup is a course class/cohort. The Program, Academic Year and
// Academic Term of a Gestante enrollment are derived from the group,
// never chosen independently.
type StudentGroup struct {
	ID           string    `json:"id"`
	Name         string    `json:"student_group_name"`
	Program      string    `json:"program"`
	Program2     string    `json:"program2"`
	AcademicYear string    `json:"academic_year"`
	AcademicTerm string    `json:"academic_term"`
	Day          string    `json:"dia"`
	Afternoon    bool      `json:"sab_t"`
	Department   string    `json:"department"`
	Status       string    `json:"status"`
	MinAge       int       `json:"idade_minima"`
	MaxAge       int       `json:"idade_maxima"`
	Schooling    string    `json:"escolaridade"`
	Segment      string    `json:"segmento"`
	StartDate    time.Time `json:"dt_inicio"`
}

type Program struct {
	ID   string `json:"id"`
	Name string `json:"program_name"`
}

type AcademicYear struct {
	ID        string    `json:"id"`
	Disabled  bool      `json:"disabled"`
	StartDate time.Time `json:"year_start_date"`
	EndDate   time.Time `json:"year_end_date"`
}

type AcademicTerm struct {
	ID string `json:"id"`
}

// ProgramEnrollment links a Student to a Program for an academic year
// and term. At most one exists per (student, program) pair; re-runs of
// the saga update the group/date of the existing record.
type ProgramEnrollment struct {
	ID             string    `json:"id"`
	Student        string    `json:"student"`
	StudentName    string    `json:"student_name"`
	Program        string    `json:"program"`
	AcademicYear   string    `json:"academic_year"`
	AcademicTerm   string    `json:"academic_term"`
	StudentGroup   string    `json:"student_group"`
	EnrollmentDate time.Time `json:"enrollment_date"`

	// Auxiliary contact data copied from the Gestante ficha.
	ContactDateOfBirth time.Time `json:"custom_data_nascimento"`
	ContactPhone       string    `json:"custom_telefone"`
	ContactEmail       string    `json:"custom_email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Department codes and names recognized by the double-booking filter.
const (
	CourseCodeInformatica = "220"
	CourseCodeDigitacao   = "255"

	DepartmentInformatica = "220 - Informática Básica - LM"
	DepartmentDigitacao   = "255 - Digitação - LM"
)

// GestantesProgram2 filters the gestante slot to its dedicated program.
const GestantesProgram2 = "115-PN Apoio à Gestante"

// DepartmentFilter restricts group selection to (or away from) one
// department.
type DepartmentFilter struct {
	Department string `json:"department"`
	Exclude    bool   `json:"exclude"`
}

// GroupQuery is the value-object form of the selection filters the UI
// used to register against the platform: only groups open for
// enrollment, on the slot's day, excluding already-chosen names, with
// an optional department restriction.
type GroupQuery struct {
	Day          string            `json:"day"`
	Afternoon    *bool             `json:"afternoon,omitempty"`
	Status       string            `json:"status"`
	ExcludeNames []string          `json:"exclude_names,omitempty"`
	Department   *DepartmentFilter `json:"department,omitempty"`
	Program2     string            `json:"program2,omitempty"`
}

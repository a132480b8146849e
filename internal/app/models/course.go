package models

// CourseStatus is the derived standing of a course for a given student.
type CourseStatus string

const (
	StatusCompleted CourseStatus = "COMPLETED"
	StatusCurrent   CourseStatus = "CURRENT"
	StatusNotTaken  CourseStatus = "NOT_TAKEN"
	StatusCanTake   CourseStatus = "CAN_TAKE"
)

// IsValid reports whether s is one of the known statuses.
func (s CourseStatus) IsValid() bool {
	switch s {
	case StatusCompleted, StatusCurrent, StatusNotTaken, StatusCanTake:
		return true
	}
	return false
}

// CourseCategory buckets courses for the degree requirements.
type CourseCategory string

const (
	CategoryMandatory CourseCategory = "Obrigatória"
	CategoryElective  CourseCategory = "Eletiva"
)

// Course is a node of the curriculum flowchart. It either wraps a concrete
// backend discipline (DisciplineID set) or is an elective-group container
// (IsElectiveGroup set, alternatives in Electives), never both.
type Course struct {
	ID              string         `json:"id" yaml:"id" example:"IME0104827"` // Frontend-stable identifier
	Code            string         `json:"code" yaml:"code" example:"IME01-04827"`
	Name            string         `json:"name" yaml:"name" example:"Cálculo I"`
	Credits         int            `json:"credits" yaml:"credits" example:"6"`
	Category        CourseCategory `json:"category" yaml:"category" example:"Obrigatória"`
	Semester        int            `json:"semester,omitempty" yaml:"semester,omitempty" example:"1"` // Suggested term, 0 = none
	Dependencies    []string       `json:"dependencies" yaml:"dependencies"`                         // Course IDs that must be COMPLETED first
	CreditLock      int            `json:"creditLock" yaml:"creditLock" example:"0"`                 // Minimum completed credits, 0 = none
	DisciplineID    string         `json:"disciplineId,omitempty" yaml:"disciplineId,omitempty"`     // Backend identifier
	IsElectiveGroup bool           `json:"isElectiveGroup,omitempty" yaml:"electiveGroup,omitempty"`
	Electives       []Course       `json:"electives,omitempty" yaml:"electives,omitempty"` // Ordered alternatives for a group
}

// IsConcrete reports whether the course maps to a backend discipline.
func (c *Course) IsConcrete() bool {
	return !c.IsElectiveGroup && c.DisciplineID != ""
}

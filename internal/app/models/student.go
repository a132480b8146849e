package models

import "encoding/json"

// CurrentDiscipline is one active enrollment: a backend discipline plus the
// class the student attends (zero or one class per discipline).
type CurrentDiscipline struct {
	DisciplineID string `json:"disciplineId" example:"04827"`
	ClassNumber  int    `json:"classNumber" example:"1"`
}

// UnmarshalJSON accepts both shapes the backend has used for current
// enrollments: the {disciplineId, classNumber} object and a bare discipline
// id string (older records, no class number).
func (c *CurrentDiscipline) UnmarshalJSON(data []byte) error {
	var bare string
	if err := json.Unmarshal(data, &bare); err == nil {
		c.DisciplineID = bare
		c.ClassNumber = 0
		return nil
	}

	type alias CurrentDiscipline
	var full alias
	if err := json.Unmarshal(data, &full); err != nil {
		return err
	}
	*c = CurrentDiscipline(full)
	return nil
}

// Student is the backend-owned record. It is never persisted locally; after
// every mutation it is refetched so derived state stays consistent.
type Student struct {
	StudentID            string              `json:"studentId" example:"202110041311"` // Matrícula; first 4 digits are the cohort year
	Name                 string              `json:"name" example:"João"`
	LastName             string              `json:"lastName" example:"Oliveira"`
	CompletedDisciplines []string            `json:"completedDisciplines"`
	CurrentDisciplines   []CurrentDiscipline `json:"currentDisciplines"`
	MandatoryCredits     int                 `json:"mandatoryCredits" example:"98"` // Computed upstream
	ElectiveCredits      int                 `json:"electiveCredits" example:"8"`   // Computed upstream
}

// CohortYear returns the leading 4-digit year prefix of the student id, or
// "" when the id does not start with 4 digits.
func (s *Student) CohortYear() string {
	if len(s.StudentID) < 4 {
		return ""
	}
	for _, r := range s.StudentID[:4] {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return s.StudentID[:4]
}

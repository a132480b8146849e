package models

// ClassInfo is one offered class of a discipline as scraped by the backend.
// Times is free text, e.g. "SEG N1 N2 QUA N1 N2".
type ClassInfo struct {
	Number        int    `json:"number" example:"1"`
	Teacher       string `json:"teacher" example:"PAULO EUSTAQUIO DUARTE PINTO"`
	Times         string `json:"times" example:"SEG N1 N2 QUA N1 N2"`
	WhatsappGroup string `json:"whatsappGroup,omitempty"`
}

// Discipline is the backend detail record for one academic course.
type Discipline struct {
	ID           string      `json:"_id,omitempty"`
	Name         string      `json:"name" example:"Algoritmos e Estruturas de Dados I"`
	Credits      int         `json:"credits" example:"4"`
	DisciplineID string      `json:"disciplineId" example:"04827"`
	Classes      []ClassInfo `json:"classes"`
}

// Teacher is one entry of the backend teacher roster.
type Teacher struct {
	TeacherID   string   `json:"teacherId"`
	Name        string   `json:"name"`
	Disciplines []string `json:"disciplines"` // Discipline ids taught
}

package models

// ScheduleCell is one filled (day, time-slot) cell of the weekly grid.
// Derived per request from current enrollments, never stored.
type ScheduleCell struct {
	CourseID    string `json:"courseId"`
	CourseName  string `json:"courseName"`
	ClassNumber int    `json:"classNumber"`
}

// ScheduleGrid maps day -> time slot -> cell. Sparse: only occupied cells
// have entries. At most one course per cell; later writes win.
type ScheduleGrid map[string]map[string]ScheduleCell

// Set fills a cell, overwriting any previous occupant.
func (g ScheduleGrid) Set(day, slot string, cell ScheduleCell) {
	row, ok := g[day]
	if !ok {
		row = make(map[string]ScheduleCell)
		g[day] = row
	}
	row[slot] = cell
}

// RankedStudent is one row of the same-cohort ranking.
type RankedStudent struct {
	Rank         int    `json:"rank"`
	StudentID    string `json:"studentId"`
	Name         string `json:"name"`
	TotalCredits int    `json:"totalCredits"`
	Separator    bool   `json:"separator,omitempty"` // Sentinel row between top 5 and the student's own entry
}

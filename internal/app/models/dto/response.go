package dto

import (
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/app/models"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/progress"
)

// CourseProgress is one flowchart node with its derived status and gate
// report, ready for rendering.
type CourseProgress struct {
	Course          models.Course       `json:"course"`
	Status          models.CourseStatus `json:"status"`
	DependenciesMet bool                `json:"dependenciesMet"`
	CreditsMet      bool                `json:"creditsMet"`
	CanTake         bool                `json:"canTake"`
}

// ProgressResponse is the full derived state for one student.
type ProgressResponse struct {
	Student               *models.Student                `json:"student"`
	Created               bool                           `json:"created,omitempty"` // True when the lookup registered a new student
	Statuses              map[string]models.CourseStatus `json:"statuses"`
	Courses               []CourseProgress               `json:"courses"`
	TotalCompletedCredits int                            `json:"totalCompletedCredits"`
	Requirements          progress.Summary               `json:"requirements"`
}

// ScheduleResponse is the weekly grid plus its axes so clients render rows
// and columns in a fixed order.
type ScheduleResponse struct {
	Days      []string            `json:"days"`
	TimeSlots []string            `json:"timeSlots"`
	Grid      models.ScheduleGrid `json:"grid"`
}

// RankingResponse is the same-cohort ranking window.
type RankingResponse struct {
	CohortYear string                 `json:"cohortYear"`
	Entries    []models.RankedStudent `json:"entries"`
}

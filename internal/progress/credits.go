package progress

import "github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/app/models"

// Requirements are the degree credit thresholds. Fixed at 177/20 for the
// CCOMP-UERJ curriculum; carried as values so the config owns them.
type Requirements struct {
	Mandatory int `json:"mandatory"`
	Elective  int `json:"elective"`
}

// Bucket is the progress of one requirement category.
type Bucket struct {
	Required  int    `json:"required"`
	Completed int    `json:"completed"`
	Remaining int    `json:"remaining"`
	Status    string `json:"status"` // "Completo" once nothing remains
}

// Summary is the credit progress against both requirement categories.
type Summary struct {
	Mandatory Bucket `json:"mandatory"`
	Elective  Bucket `json:"elective"`
}

// Summarize sums completed credits per category over the given courses.
// Callers pass the flattened catalog so elective-group placeholders never
// contribute and pool members always can.
func Summarize(courses []models.Course, statuses map[string]models.CourseStatus, req Requirements) Summary {
	completedMandatory := 0
	completedElective := 0

	for i := range courses {
		c := &courses[i]
		if c.IsElectiveGroup || statuses[c.ID] != models.StatusCompleted {
			continue
		}
		switch c.Category {
		case models.CategoryMandatory:
			completedMandatory += c.Credits
		case models.CategoryElective:
			completedElective += c.Credits
		}
	}

	return Summary{
		Mandatory: newBucket(req.Mandatory, completedMandatory),
		Elective:  newBucket(req.Elective, completedElective),
	}
}

func newBucket(required, completed int) Bucket {
	remaining := required - completed
	if remaining < 0 {
		remaining = 0
	}
	status := "Incompleto"
	if remaining == 0 {
		status = "Completo"
	}
	return Bucket{
		Required:  required,
		Completed: completed,
		Remaining: remaining,
		Status:    status,
	}
}

// TotalCompleted sums the credits of every completed non-group course,
// regardless of category. This is the figure credit locks compare against.
func TotalCompleted(courses []models.Course, statuses map[string]models.CourseStatus) int {
	total := 0
	for i := range courses {
		if !courses[i].IsElectiveGroup && statuses[courses[i].ID] == models.StatusCompleted {
			total += courses[i].Credits
		}
	}
	return total
}

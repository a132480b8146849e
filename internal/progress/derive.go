package progress

import (
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/app/models"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/catalog"
)

// DeriveStatuses maps every course touched by the student's record to its
// status. Pure function of its inputs; recomputed from scratch on every
// call, never patched incrementally.
//
// The completed list is applied before the current list, so CURRENT wins
// when the backend asserts a discipline in both (it should not, but the
// precedence must be deterministic). Discipline ids with no mapping entry
// are silently dropped. Courses absent from the result are NOT_TAKEN;
// callers must apply that default.
func DeriveStatuses(student *models.Student, cat *catalog.Catalog) map[string]models.CourseStatus {
	statuses := make(map[string]models.CourseStatus)
	if student == nil || !cat.Ready() {
		return statuses
	}

	mapping := cat.Mapping()

	for _, disciplineID := range student.CompletedDisciplines {
		if courseID, ok := mapping.CourseFor(disciplineID); ok {
			statuses[courseID] = models.StatusCompleted
		}
	}

	for _, enrollment := range student.CurrentDisciplines {
		if courseID, ok := mapping.CourseFor(enrollment.DisciplineID); ok {
			statuses[courseID] = models.StatusCurrent
		}
	}

	resolveElectiveGroups(statuses, cat.Courses())
	resolveElectiveSlots(statuses, cat)

	return statuses
}

// resolveElectiveGroups rolls child statuses up into their group container:
// any CURRENT child makes the group CURRENT, else any COMPLETED child makes
// it COMPLETED, else the group stays unset. Slot placeholders have no
// children and are untouched here.
func resolveElectiveGroups(statuses map[string]models.CourseStatus, courses []models.Course) {
	for i := range courses {
		group := &courses[i]
		if !group.IsElectiveGroup || len(group.Electives) == 0 {
			continue
		}

		hasCurrent := false
		hasCompleted := false
		for j := range group.Electives {
			switch statuses[group.Electives[j].ID] {
			case models.StatusCurrent:
				hasCurrent = true
			case models.StatusCompleted:
				hasCompleted = true
			}
		}

		if hasCurrent {
			statuses[group.ID] = models.StatusCurrent
		} else if hasCompleted {
			statuses[group.ID] = models.StatusCompleted
		}
	}
}

// resolveElectiveSlots assigns the ordered slot placeholders from the shared
// elective pool with a greedy two-queue consumption: each slot takes a
// completed elective while any remains, then a current one, else NOT_TAKEN.
// Pool order breaks ties, so the assignment is deterministic and running it
// twice on the same input yields the same result.
func resolveElectiveSlots(statuses map[string]models.CourseStatus, cat *catalog.Catalog) {
	slots := cat.ElectiveSlots()
	if len(slots) == 0 {
		return
	}

	completed := 0
	current := 0
	for _, elective := range cat.ElectivePool() {
		switch statuses[elective.ID] {
		case models.StatusCompleted:
			completed++
		case models.StatusCurrent:
			current++
		}
	}

	for _, slotID := range slots {
		switch {
		case completed > 0:
			statuses[slotID] = models.StatusCompleted
			completed--
		case current > 0:
			statuses[slotID] = models.StatusCurrent
			current--
		default:
			statuses[slotID] = models.StatusNotTaken
		}
	}
}

// StatusOf reads a status map with the NOT_TAKEN default.
func StatusOf(statuses map[string]models.CourseStatus, courseID string) models.CourseStatus {
	if s, ok := statuses[courseID]; ok {
		return s
	}
	return models.StatusNotTaken
}

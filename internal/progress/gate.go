package progress

import (
	"fmt"

	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/app/models"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/pkg/apperrors"
)

// DependenciesMet reports whether every prerequisite course of c is
// COMPLETED. A dependency missing from the status map counts as unmet.
func DependenciesMet(c *models.Course, statuses map[string]models.CourseStatus) bool {
	for _, dep := range c.Dependencies {
		if statuses[dep] != models.StatusCompleted {
			return false
		}
	}
	return true
}

// CreditsMet reports whether the credit lock of c is satisfied.
func CreditsMet(c *models.Course, totalCompletedCredits int) bool {
	return c.CreditLock == 0 || totalCompletedCredits >= c.CreditLock
}

// CanTake reports whether the course is open to the student. Without a
// logged-in student the whole flowchart is freely navigable.
func CanTake(c *models.Course, statuses map[string]models.CourseStatus, totalCompletedCredits int, hasStudent bool) bool {
	if !hasStudent {
		return true
	}
	return DependenciesMet(c, statuses) && CreditsMet(c, totalCompletedCredits)
}

// CheckGate returns nil when the course may be taken, or an error naming
// the first unmet requirement. Callers must reject a CURRENT/COMPLETED
// status change with this reason without contacting the backend.
func CheckGate(c *models.Course, statuses map[string]models.CourseStatus, totalCompletedCredits int) error {
	if !DependenciesMet(c, statuses) {
		return apperrors.NewCustomError(apperrors.ErrMissingPrerequisites,
			fmt.Sprintf("all prerequisite disciplines of %s must be completed first", c.Name))
	}
	if !CreditsMet(c, totalCompletedCredits) {
		return apperrors.NewCustomError(apperrors.ErrInsufficientCredits,
			fmt.Sprintf("%s requires %d completed credits, you have %d", c.Name, c.CreditLock, totalCompletedCredits))
	}
	return nil
}

// Package ranking orders same-cohort students by total credits and windows
// the list around the current student.
package ranking

import (
	"sort"

	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/app/models"
)

// topSize is how many cohort leaders are always shown.
const topSize = 5

// Build filters students to the current student's cohort (same 4-digit year
// prefix in the id), ranks them by mandatory+elective credits descending
// (stable, ties keep backend order) and returns the top 5. If the current
// student ranks below the top 5 their own entry is appended after a
// separator sentinel.
func Build(students []models.Student, current *models.Student) []models.RankedStudent {
	if current == nil {
		return nil
	}
	year := current.CohortYear()
	if year == "" {
		return nil
	}

	var cohort []models.RankedStudent
	for i := range students {
		s := &students[i]
		if s.CohortYear() != year {
			continue
		}
		cohort = append(cohort, models.RankedStudent{
			StudentID:    s.StudentID,
			Name:         s.Name + " " + s.LastName,
			TotalCredits: s.MandatoryCredits + s.ElectiveCredits,
		})
	}

	sort.SliceStable(cohort, func(i, j int) bool {
		return cohort[i].TotalCredits > cohort[j].TotalCredits
	})
	for i := range cohort {
		cohort[i].Rank = i + 1
	}

	if len(cohort) <= topSize {
		return cohort
	}

	top := cohort[:topSize]
	for _, entry := range top {
		if entry.StudentID == current.StudentID {
			return top
		}
	}

	for _, entry := range cohort[topSize:] {
		if entry.StudentID == current.StudentID {
			out := make([]models.RankedStudent, 0, topSize+2)
			out = append(out, top...)
			out = append(out, models.RankedStudent{Rank: -1, Name: "...", TotalCredits: -1, Separator: true})
			out = append(out, entry)
			return out
		}
	}

	return top
}

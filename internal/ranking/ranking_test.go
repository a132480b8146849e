package ranking

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/app/models"
)

func cohortStudent(id, name string, mandatory, elective int) models.Student {
	return models.Student{
		StudentID:        id,
		Name:             name,
		MandatoryCredits: mandatory,
		ElectiveCredits:  elective,
	}
}

func TestBuildRanksByTotalCredits(t *testing.T) {
	students := []models.Student{
		cohortStudent("202110001", "Ana", 40, 10),
		cohortStudent("202110002", "Bruno", 30, 10),
		cohortStudent("202110003", "Carla", 36, 4),
		cohortStudent("202110004", "Davi", 20, 10),
	}

	entries := Build(students, &students[0])
	require.Len(t, entries, 4)

	assert.Equal(t, []int{1, 2, 3, 4}, []int{entries[0].Rank, entries[1].Rank, entries[2].Rank, entries[3].Rank})
	assert.Equal(t, "202110001", entries[0].StudentID)
	assert.Equal(t, 50, entries[0].TotalCredits)

	// 40-credit tie keeps backend order (stable sort)
	assert.Equal(t, "202110002", entries[1].StudentID)
	assert.Equal(t, "202110003", entries[2].StudentID)
	assert.Equal(t, "202110004", entries[3].StudentID)
}

func TestBuildFiltersOtherCohorts(t *testing.T) {
	students := []models.Student{
		cohortStudent("202110001", "Ana", 40, 0),
		cohortStudent("202010001", "Veterano", 100, 20),
		cohortStudent("202210001", "Calouro", 10, 0),
	}

	entries := Build(students, &students[0])
	require.Len(t, entries, 1)
	assert.Equal(t, "202110001", entries[0].StudentID)
	assert.Equal(t, 1, entries[0].Rank)
}

func TestBuildTopFiveWindow(t *testing.T) {
	var students []models.Student
	for i := 0; i < 8; i++ {
		students = append(students, cohortStudent(
			fmt.Sprintf("20211000%d", i+1),
			fmt.Sprintf("Aluno%d", i+1),
			80-i*10, 0,
		))
	}

	// Current student is in the top 5: just the top 5, no separator
	entries := Build(students, &students[2])
	require.Len(t, entries, 5)
	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank)
		assert.False(t, e.Separator)
	}

	// Current student is 7th: top 5, separator sentinel, then their entry
	entries = Build(students, &students[6])
	require.Len(t, entries, 7)
	assert.True(t, entries[5].Separator)
	assert.Equal(t, -1, entries[5].Rank)
	assert.Equal(t, "...", entries[5].Name)
	assert.Equal(t, "202110007", entries[6].StudentID)
	assert.Equal(t, 7, entries[6].Rank)
}

func TestBuildNoCurrentStudent(t *testing.T) {
	students := []models.Student{cohortStudent("202110001", "Ana", 40, 0)}

	assert.Nil(t, Build(students, nil))
	assert.Nil(t, Build(students, &models.Student{StudentID: "abc"}))
}

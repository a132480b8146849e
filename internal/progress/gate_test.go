package progress

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/app/models"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/pkg/apperrors"
)

func TestDependenciesMet(t *testing.T) {
	course := &models.Course{ID: "B", Name: "Cálculo II", Dependencies: []string{"A"}}

	assert.False(t, DependenciesMet(course, map[string]models.CourseStatus{}))
	assert.False(t, DependenciesMet(course, map[string]models.CourseStatus{"A": models.StatusCurrent}))
	assert.True(t, DependenciesMet(course, map[string]models.CourseStatus{"A": models.StatusCompleted}))

	noDeps := &models.Course{ID: "A", Name: "Cálculo I"}
	assert.True(t, DependenciesMet(noDeps, nil))
}

func TestCreditsMet(t *testing.T) {
	locked := &models.Course{ID: "PROJ", Name: "Projeto Final", CreditLock: 100}

	assert.False(t, CreditsMet(locked, 80))
	assert.True(t, CreditsMet(locked, 100))
	assert.True(t, CreditsMet(locked, 140))

	unlocked := &models.Course{ID: "A", Name: "Cálculo I"}
	assert.True(t, CreditsMet(unlocked, 0))
}

func TestCanTake(t *testing.T) {
	course := &models.Course{ID: "B", Name: "Cálculo II", Dependencies: []string{"A"}, CreditLock: 10}
	statuses := map[string]models.CourseStatus{"A": models.StatusCompleted}

	// Without a logged-in student everything is open
	assert.True(t, CanTake(course, nil, 0, false))

	assert.True(t, CanTake(course, statuses, 10, true))
	assert.False(t, CanTake(course, statuses, 5, true))
	assert.False(t, CanTake(course, nil, 10, true))
}

func TestCheckGate(t *testing.T) {
	course := &models.Course{ID: "B", Name: "Cálculo II", Dependencies: []string{"A"}, CreditLock: 10}

	err := CheckGate(course, nil, 50)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrMissingPrerequisites))
	assert.Contains(t, err.Error(), "Cálculo II")

	err = CheckGate(course, map[string]models.CourseStatus{"A": models.StatusCompleted}, 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInsufficientCredits))

	err = CheckGate(course, map[string]models.CourseStatus{"A": models.StatusCompleted}, 10)
	assert.NoError(t, err)
}

package schedule

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/app/models"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/catalog"
)

// fakeFetcher answers GetDiscipline from an in-memory map, failing for ids
// listed in fail.
type fakeFetcher struct {
	mu          sync.Mutex
	disciplines map[string]*models.Discipline
	fail        map[string]bool
	calls       int
}

func (f *fakeFetcher) GetDiscipline(ctx context.Context, disciplineID string) (*models.Discipline, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.fail[disciplineID] {
		return nil, errors.New("backend blew up")
	}
	d, ok := f.disciplines[disciplineID]
	if !ok {
		return nil, errors.New("not found")
	}
	return d, nil
}

func loadTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load(filepath.Join("testdata", "catalog.yaml"))
	require.NoError(t, err)
	return cat
}

func testStudent(current ...models.CurrentDiscipline) *models.Student {
	return &models.Student{StudentID: "202110001", CurrentDisciplines: current}
}

func TestBuild(t *testing.T) {
	cat := loadTestCatalog(t)
	fetcher := &fakeFetcher{
		disciplines: map[string]*models.Discipline{
			"1": {DisciplineID: "1", Name: "Cálculo I", Classes: []models.ClassInfo{
				{Number: 1, Times: "SEG N1 N2 QUA N1 N2"},
			}},
			"2": {DisciplineID: "2", Name: "Cálculo II", Classes: []models.ClassInfo{
				{Number: 3, Times: "TER M1"},
			}},
		},
	}
	builder := NewBuilder(fetcher, zerolog.Nop())

	grid, err := builder.Build(context.Background(),
		testStudent(
			models.CurrentDiscipline{DisciplineID: "1", ClassNumber: 1},
			models.CurrentDiscipline{DisciplineID: "2", ClassNumber: 3},
		), cat)
	require.NoError(t, err)

	assert.Equal(t, 2, fetcher.calls)
	require.Contains(t, grid, "Seg")
	assert.Equal(t, models.ScheduleCell{CourseID: "MAT101", CourseName: "Cálculo I", ClassNumber: 1}, grid["Seg"]["N1"])
	assert.Equal(t, models.ScheduleCell{CourseID: "MAT101", CourseName: "Cálculo I", ClassNumber: 1}, grid["Qua"]["N2"])
	assert.Equal(t, models.ScheduleCell{CourseID: "MAT102", CourseName: "Cálculo II", ClassNumber: 3}, grid["Ter"]["M1"])
}

func TestBuildEmptyEnrollments(t *testing.T) {
	cat := loadTestCatalog(t)
	builder := NewBuilder(&fakeFetcher{}, zerolog.Nop())

	grid, err := builder.Build(context.Background(), testStudent(), cat)
	require.NoError(t, err)
	assert.Empty(t, grid)

	grid, err = builder.Build(context.Background(), nil, cat)
	require.NoError(t, err)
	assert.Empty(t, grid)
}

func TestBuildSkipsFailedFetch(t *testing.T) {
	cat := loadTestCatalog(t)
	fetcher := &fakeFetcher{
		disciplines: map[string]*models.Discipline{
			"1": {DisciplineID: "1", Name: "Cálculo I", Classes: []models.ClassInfo{
				{Number: 1, Times: "SEG N1"},
			}},
		},
		fail: map[string]bool{"2": true},
	}
	builder := NewBuilder(fetcher, zerolog.Nop())

	grid, err := builder.Build(context.Background(),
		testStudent(
			models.CurrentDiscipline{DisciplineID: "1", ClassNumber: 1},
			models.CurrentDiscipline{DisciplineID: "2", ClassNumber: 1},
		), cat)
	require.NoError(t, err)

	// The failed enrollment is skipped, the rest of the grid still builds
	assert.Equal(t, "MAT101", grid["Seg"]["N1"].CourseID)
	assert.Len(t, grid, 1)
}

func TestBuildUnknownEnrollmentSkipped(t *testing.T) {
	cat := loadTestCatalog(t)
	fetcher := &fakeFetcher{
		disciplines: map[string]*models.Discipline{
			"999": {DisciplineID: "999", Name: "Fantasma", Classes: []models.ClassInfo{
				{Number: 1, Times: "SEG N1"},
			}},
		},
	}
	builder := NewBuilder(fetcher, zerolog.Nop())

	grid, err := builder.Build(context.Background(),
		testStudent(models.CurrentDiscipline{DisciplineID: "999", ClassNumber: 1}), cat)
	require.NoError(t, err)
	assert.Empty(t, grid)
}

func TestBuildCancelledContext(t *testing.T) {
	cat := loadTestCatalog(t)
	fetcher := &fakeFetcher{
		disciplines: map[string]*models.Discipline{
			"1": {DisciplineID: "1", Name: "Cálculo I", Classes: []models.ClassInfo{
				{Number: 1, Times: "SEG N1"},
			}},
		},
	}
	builder := NewBuilder(fetcher, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := builder.Build(ctx,
		testStudent(models.CurrentDiscipline{DisciplineID: "1", ClassNumber: 1}), cat)
	assert.ErrorIs(t, err, context.Canceled)
}

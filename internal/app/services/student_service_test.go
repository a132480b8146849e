package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/app/models"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/backend"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/catalog"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/pkg/apperrors"
)

// fakeBackend is an in-memory progress backend keeping one student record
// and a log of every mutating request it served.
type fakeBackend struct {
	mu        sync.Mutex
	student   models.Student
	mutations []string
}

func (f *fakeBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		if r.Method != http.MethodGet {
			f.mutations = append(f.mutations, r.Method+" "+r.URL.Path)
		}

		switch {
		case r.Method == http.MethodGet:
			json.NewEncoder(w).Encode(f.student)

		case r.Method == http.MethodPut && pathDiscipline(r, "completed-disciplines") != "":
			f.student.CompletedDisciplines = append(f.student.CompletedDisciplines, pathDiscipline(r, "completed-disciplines"))
			w.Write([]byte(`{}`))

		case r.Method == http.MethodDelete && pathDiscipline(r, "completed-disciplines") != "":
			f.student.CompletedDisciplines = remove(f.student.CompletedDisciplines, pathDiscipline(r, "completed-disciplines"))
			w.Write([]byte(`{}`))

		case r.Method == http.MethodPut && pathDiscipline(r, "current-disciplines") != "":
			var body struct {
				ClassNumber int `json:"classNumber"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			f.student.CurrentDisciplines = append(f.student.CurrentDisciplines, models.CurrentDiscipline{
				DisciplineID: pathDiscipline(r, "current-disciplines"),
				ClassNumber:  body.ClassNumber,
			})
			w.Write([]byte(`{}`))

		case r.Method == http.MethodDelete && pathDiscipline(r, "current-disciplines") != "":
			id := pathDiscipline(r, "current-disciplines")
			kept := f.student.CurrentDisciplines[:0]
			for _, c := range f.student.CurrentDisciplines {
				if c.DisciplineID != id {
					kept = append(kept, c)
				}
			}
			f.student.CurrentDisciplines = kept
			w.Write([]byte(`{}`))

		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"not found"}`))
		}
	}
}

// pathDiscipline extracts the discipline id from
// /students/202110001/{segment}/{disciplineId} paths.
func pathDiscipline(r *http.Request, segment string) string {
	prefix := "/students/202110001/" + segment + "/"
	if len(r.URL.Path) > len(prefix) && r.URL.Path[:len(prefix)] == prefix {
		return r.URL.Path[len(prefix):]
	}
	return ""
}

func remove(list []string, item string) []string {
	kept := list[:0]
	for _, s := range list {
		if s != item {
			kept = append(kept, s)
		}
	}
	return kept
}

func newServiceFixture(t *testing.T, student models.Student) (*StudentService, *fakeBackend) {
	t.Helper()
	cat, err := catalog.Load(filepath.Join("testdata", "catalog.yaml"))
	require.NoError(t, err)

	fake := &fakeBackend{student: student}
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	client := backend.NewClient(srv.URL, 5*time.Second, zerolog.Nop())
	return NewStudentService(client, cat, zerolog.Nop()), fake
}

func TestUpdateCourseStatusCurrentToCompleted(t *testing.T) {
	svc, fake := newServiceFixture(t, models.Student{
		StudentID:          "202110001",
		CurrentDisciplines: []models.CurrentDiscipline{{DisciplineID: "1", ClassNumber: 2}},
	})

	student, statuses, err := svc.UpdateCourseStatus(context.Background(), "202110001", "MAT101", models.StatusCompleted, nil)
	require.NoError(t, err)

	// The old enrollment is removed before the completion is written
	assert.Equal(t, []string{
		"DELETE /students/202110001/current-disciplines/1",
		"PUT /students/202110001/completed-disciplines/1",
	}, fake.mutations)

	assert.Equal(t, models.StatusCompleted, statuses["MAT101"])
	assert.Equal(t, []string{"1"}, student.CompletedDisciplines)
	assert.Empty(t, student.CurrentDisciplines)
}

func TestUpdateCourseStatusToNotTaken(t *testing.T) {
	svc, fake := newServiceFixture(t, models.Student{
		StudentID:            "202110001",
		CompletedDisciplines: []string{"1"},
	})

	_, statuses, err := svc.UpdateCourseStatus(context.Background(), "202110001", "MAT101", models.StatusNotTaken, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"DELETE /students/202110001/completed-disciplines/1"}, fake.mutations)
	assert.Equal(t, models.StatusNotTaken, statuses["MAT101"])
}

func TestUpdateCourseStatusNoOp(t *testing.T) {
	svc, fake := newServiceFixture(t, models.Student{
		StudentID:            "202110001",
		CompletedDisciplines: []string{"1"},
	})

	_, statuses, err := svc.UpdateCourseStatus(context.Background(), "202110001", "MAT101", models.StatusCompleted, nil)
	require.NoError(t, err)

	assert.Empty(t, fake.mutations)
	assert.Equal(t, models.StatusCompleted, statuses["MAT101"])
}

func TestUpdateCourseStatusGateRejections(t *testing.T) {
	t.Run("missing prerequisite", func(t *testing.T) {
		svc, fake := newServiceFixture(t, models.Student{StudentID: "202110001"})

		// MAT102 requires MAT101 completed
		_, _, err := svc.UpdateCourseStatus(context.Background(), "202110001", "MAT102", models.StatusCompleted, nil)
		assert.True(t, errors.Is(err, apperrors.ErrMissingPrerequisites))
		assert.Empty(t, fake.mutations)
	})

	t.Run("credit lock", func(t *testing.T) {
		svc, fake := newServiceFixture(t, models.Student{
			StudentID:            "202110001",
			CompletedDisciplines: []string{"1", "2"},
		})

		// PROJ is locked behind 100 credits, the student has 7
		_, _, err := svc.UpdateCourseStatus(context.Background(), "202110001", "PROJ", models.StatusCompleted, nil)
		assert.True(t, errors.Is(err, apperrors.ErrInsufficientCredits))
		assert.Empty(t, fake.mutations)
	})
}

func TestUpdateCourseStatusCurrentRequiresClassNumber(t *testing.T) {
	svc, fake := newServiceFixture(t, models.Student{StudentID: "202110001"})

	_, _, err := svc.UpdateCourseStatus(context.Background(), "202110001", "MAT101", models.StatusCurrent, nil)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	assert.Empty(t, fake.mutations)

	class := 3
	_, statuses, err := svc.UpdateCourseStatus(context.Background(), "202110001", "MAT101", models.StatusCurrent, &class)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCurrent, statuses["MAT101"])
	assert.Equal(t, []string{"PUT /students/202110001/current-disciplines/1"}, fake.mutations)
}

func TestUpdateCourseStatusRejectsGroups(t *testing.T) {
	svc, fake := newServiceFixture(t, models.Student{StudentID: "202110001"})

	_, _, err := svc.UpdateCourseStatus(context.Background(), "202110001", "ELETIVAB", models.StatusCompleted, nil)
	assert.True(t, errors.Is(err, apperrors.ErrBadRequest))

	_, _, err = svc.UpdateCourseStatus(context.Background(), "202110001", "NOPE", models.StatusCompleted, nil)
	assert.True(t, errors.Is(err, apperrors.ErrCourseNotFound))

	assert.Empty(t, fake.mutations)
}

package catalog

import (
	"sync"

	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/app/models"
)

// IDMapping is the bidirectional lookup between frontend course ids and
// backend discipline ids. It populates exactly once; later Populate calls
// are ignored so a stale caller can never overwrite a live table.
type IDMapping struct {
	once               sync.Once
	courseToDiscipline map[string]string
	disciplineToCourse map[string]string
}

// NewIDMapping returns an empty, not yet populated mapping.
func NewIDMapping() *IDMapping {
	return &IDMapping{}
}

// Populate builds both directions of the table from the catalog courses,
// descending into elective-group children. Only the first call has effect.
func (m *IDMapping) Populate(courses []models.Course) {
	m.once.Do(func() {
		m.courseToDiscipline = make(map[string]string)
		m.disciplineToCourse = make(map[string]string)
		m.add(courses)
	})
}

func (m *IDMapping) add(courses []models.Course) {
	for i := range courses {
		c := &courses[i]
		if c.IsConcrete() {
			m.courseToDiscipline[c.ID] = c.DisciplineID
			m.disciplineToCourse[c.DisciplineID] = c.ID
		}
		if len(c.Electives) > 0 {
			m.add(c.Electives)
		}
	}
}

// Populated reports whether the one-time initialization already happened.
func (m *IDMapping) Populated() bool {
	return m.courseToDiscipline != nil
}

// DisciplineFor returns the backend discipline id for a course id.
func (m *IDMapping) DisciplineFor(courseID string) (string, bool) {
	id, ok := m.courseToDiscipline[courseID]
	return id, ok
}

// CourseFor returns the frontend course id for a backend discipline id.
func (m *IDMapping) CourseFor(disciplineID string) (string, bool) {
	id, ok := m.disciplineToCourse[disciplineID]
	return id, ok
}

// Len returns the number of concrete course/discipline pairs.
func (m *IDMapping) Len() int {
	return len(m.courseToDiscipline)
}

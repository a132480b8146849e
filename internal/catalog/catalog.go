package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/app/models"
)

// file is the on-disk shape of the curriculum asset.
type file struct {
	Courses       []models.Course `yaml:"courses"`
	ElectiveSlots []string        `yaml:"electiveSlots"`
	ElectivePool  []models.Course `yaml:"electivePool"`
}

// Catalog is the immutable curriculum: flowchart courses in declared order,
// the ordered sequential elective slots with their shared pool, and the
// course/discipline id mapping. Loaded once at startup.
type Catalog struct {
	courses []models.Course
	slots   []string
	pool    []models.Course
	byID    map[string]*models.Course
	mapping *IDMapping
}

// Load reads and validates the curriculum yaml at path.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	cat := &Catalog{
		courses: f.Courses,
		slots:   f.ElectiveSlots,
		pool:    f.ElectivePool,
		byID:    make(map[string]*models.Course),
		mapping: NewIDMapping(),
	}

	if err := cat.index(cat.courses); err != nil {
		return nil, err
	}
	if err := cat.index(cat.pool); err != nil {
		return nil, err
	}
	if err := cat.validate(); err != nil {
		return nil, err
	}

	cat.mapping.Populate(append(cat.courses, cat.pool...))
	return cat, nil
}

func (c *Catalog) index(courses []models.Course) error {
	for i := range courses {
		course := &courses[i]
		if course.ID == "" {
			return fmt.Errorf("catalog course without id (code %q)", course.Code)
		}
		if _, dup := c.byID[course.ID]; dup {
			return fmt.Errorf("duplicate course id %q", course.ID)
		}
		c.byID[course.ID] = course
		if len(course.Electives) > 0 {
			if err := c.index(course.Electives); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Catalog) validate() error {
	for id, course := range c.byID {
		concrete := course.DisciplineID != ""
		group := course.IsElectiveGroup
		if concrete && group {
			return fmt.Errorf("course %q is both concrete and an elective group", id)
		}
		if !concrete && !group {
			return fmt.Errorf("course %q is neither concrete nor an elective group", id)
		}
		for _, dep := range course.Dependencies {
			if _, ok := c.byID[dep]; !ok {
				return fmt.Errorf("course %q depends on unknown course %q", id, dep)
			}
		}
	}
	for _, slot := range c.slots {
		course, ok := c.byID[slot]
		if !ok {
			return fmt.Errorf("elective slot %q is not declared as a course", slot)
		}
		if !course.IsElectiveGroup {
			return fmt.Errorf("elective slot %q must be an elective-group placeholder", slot)
		}
	}
	for i := range c.pool {
		if !c.pool[i].IsConcrete() {
			return fmt.Errorf("elective pool entry %q must be a concrete course", c.pool[i].ID)
		}
	}
	return nil
}

// Courses returns the flowchart nodes in declared order.
func (c *Catalog) Courses() []models.Course {
	return c.courses
}

// Course looks a node up by frontend id, including elective-group children
// and pool members.
func (c *Catalog) Course(id string) (*models.Course, bool) {
	course, ok := c.byID[id]
	return course, ok
}

// CourseByDiscipline looks a concrete course up by backend discipline id.
func (c *Catalog) CourseByDiscipline(disciplineID string) (*models.Course, bool) {
	courseID, ok := c.mapping.CourseFor(disciplineID)
	if !ok {
		return nil, false
	}
	return c.Course(courseID)
}

// ElectiveSlots returns the ordered sequential slot ids.
func (c *Catalog) ElectiveSlots() []string {
	return c.slots
}

// ElectivePool returns the shared pool consumed by the sequential slots,
// in declared order.
func (c *Catalog) ElectivePool() []models.Course {
	return c.pool
}

// Flattened returns every concrete course: flowchart courses, elective-group
// children and pool members. Group and slot placeholders are excluded, so
// credit sums never double count.
func (c *Catalog) Flattened() []models.Course {
	var out []models.Course
	var walk func([]models.Course)
	walk = func(courses []models.Course) {
		for i := range courses {
			if courses[i].IsConcrete() {
				out = append(out, courses[i])
			}
			if len(courses[i].Electives) > 0 {
				walk(courses[i].Electives)
			}
		}
	}
	walk(c.courses)
	walk(c.pool)
	return out
}

// Mapping returns the course/discipline id table.
func (c *Catalog) Mapping() *IDMapping {
	return c.mapping
}

// Ready reports whether the catalog and its id mapping are usable by the
// derivation engine.
func (c *Catalog) Ready() bool {
	return c != nil && c.mapping.Populated() && len(c.courses) > 0
}

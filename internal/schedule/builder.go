package schedule

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/app/models"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/catalog"
)

// DisciplineFetcher loads backend discipline details, one per enrollment.
type DisciplineFetcher interface {
	GetDiscipline(ctx context.Context, disciplineID string) (*models.Discipline, error)
}

// Builder assembles the weekly grid from a student's current enrollments.
type Builder struct {
	fetcher DisciplineFetcher
	logger  zerolog.Logger
}

// NewBuilder creates a schedule Builder.
func NewBuilder(fetcher DisciplineFetcher, logger zerolog.Logger) *Builder {
	return &Builder{fetcher: fetcher, logger: logger}
}

// Build fetches every enrolled discipline's detail concurrently and fills
// the grid from each class's times string. A failed fetch is logged and its
// enrollment skipped; the rest of the grid still builds. All fetches settle
// before the grid is assembled. Cancelling ctx aborts the fan-out and
// discards any results that still arrive.
func (b *Builder) Build(ctx context.Context, student *models.Student, cat *catalog.Catalog) (models.ScheduleGrid, error) {
	grid := make(models.ScheduleGrid)
	if student == nil || len(student.CurrentDisciplines) == 0 {
		return grid, nil
	}

	details := make([]*models.Discipline, len(student.CurrentDisciplines))

	g, gctx := errgroup.WithContext(ctx)
	for i, enrollment := range student.CurrentDisciplines {
		i, enrollment := i, enrollment
		g.Go(func() error {
			detail, err := b.fetcher.GetDiscipline(gctx, enrollment.DisciplineID)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				b.logger.Warn().Err(err).
					Str("disciplineId", enrollment.DisciplineID).
					Msg("Skipping discipline detail fetch for schedule")
				return nil
			}
			details[i] = detail
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Assemble in enrollment order so an (unexpected) cell conflict always
	// resolves the same way: last write wins.
	for i, enrollment := range student.CurrentDisciplines {
		detail := details[i]
		if detail == nil {
			continue
		}

		course, ok := cat.CourseByDiscipline(enrollment.DisciplineID)
		if !ok {
			b.logger.Debug().
				Str("disciplineId", enrollment.DisciplineID).
				Msg("Enrolled discipline has no catalog course")
			continue
		}

		class := findClass(detail.Classes, enrollment.ClassNumber)
		if class == nil || class.Times == "" {
			continue
		}

		cell := models.ScheduleCell{
			CourseID:    course.ID,
			CourseName:  course.Name,
			ClassNumber: enrollment.ClassNumber,
		}
		for _, p := range ParseTimes(class.Times) {
			grid.Set(p.Day, p.Slot, cell)
		}
	}

	return grid, nil
}

func findClass(classes []models.ClassInfo, number int) *models.ClassInfo {
	for i := range classes {
		if classes[i].Number == number {
			return &classes[i]
		}
	}
	return nil
}

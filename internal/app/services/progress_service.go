package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/app/models"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/app/models/dto"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/backend"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/catalog"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/pkg/apperrors"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/progress"
)

// ProgressService derives the full flowchart state for one student.
type ProgressService struct {
	backend      *backend.Client
	catalog      *catalog.Catalog
	requirements progress.Requirements
	logger       zerolog.Logger
}

// NewProgressService creates a ProgressService.
func NewProgressService(client *backend.Client, cat *catalog.Catalog, req progress.Requirements, logger zerolog.Logger) *ProgressService {
	return &ProgressService{backend: client, catalog: cat, requirements: req, logger: logger}
}

// Progress fetches (or registers) the student and derives statuses, the
// per-course gate report and the credit summary in one shot. Derivation
// refuses to run before the catalog and its id mapping exist.
func (s *ProgressService) Progress(ctx context.Context, studentID string) (*dto.ProgressResponse, error) {
	if !s.catalog.Ready() {
		s.logger.Warn().Str("studentId", studentID).Msg("Progress requested before the catalog is ready, deferring")
		return nil, apperrors.ErrCatalogNotReady
	}

	student, created, err := s.backend.GetOrCreateStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	statuses := progress.DeriveStatuses(student, s.catalog)
	flattened := s.catalog.Flattened()
	total := progress.TotalCompleted(flattened, statuses)

	courses := s.catalog.Courses()
	report := make([]dto.CourseProgress, 0, len(courses))
	for i := range courses {
		c := &courses[i]
		depsMet := progress.DependenciesMet(c, statuses)
		creditsMet := progress.CreditsMet(c, total)
		report = append(report, dto.CourseProgress{
			Course:          courses[i],
			Status:          progress.StatusOf(statuses, c.ID),
			DependenciesMet: depsMet,
			CreditsMet:      creditsMet,
			CanTake:         progress.CanTake(c, statuses, total, student != nil),
		})
	}

	return &dto.ProgressResponse{
		Student:               student,
		Created:               created,
		Statuses:              statuses,
		Courses:               report,
		TotalCompletedCredits: total,
		Requirements:          progress.Summarize(flattened, statuses, s.requirements),
	}, nil
}

// Preview derives the logged-out flowchart: every course NOT_TAKEN and
// freely navigable.
func (s *ProgressService) Preview() (*dto.ProgressResponse, error) {
	if !s.catalog.Ready() {
		return nil, apperrors.ErrCatalogNotReady
	}

	courses := s.catalog.Courses()
	report := make([]dto.CourseProgress, 0, len(courses))
	for i := range courses {
		report = append(report, dto.CourseProgress{
			Course:          courses[i],
			Status:          models.StatusNotTaken,
			DependenciesMet: false,
			CreditsMet:      false,
			CanTake:         true,
		})
	}

	return &dto.ProgressResponse{
		Statuses:     map[string]models.CourseStatus{},
		Courses:      report,
		Requirements: progress.Summarize(nil, nil, s.requirements),
	}, nil
}

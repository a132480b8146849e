package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/app/models"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/backend"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/catalog"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/pkg/apperrors"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/progress"
)

// StudentService owns the student lifecycle and the gated status-change
// operation. The backend stays the source of truth: every mutation is
// followed by a full refetch, never a local patch.
type StudentService struct {
	backend *backend.Client
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewStudentService creates a StudentService.
func NewStudentService(client *backend.Client, cat *catalog.Catalog, logger zerolog.Logger) *StudentService {
	return &StudentService{backend: client, catalog: cat, logger: logger}
}

// GetOrCreate looks a student up, registering the record upstream on a miss.
func (s *StudentService) GetOrCreate(ctx context.Context, studentID string) (*models.Student, bool, error) {
	if studentID == "" {
		return nil, false, apperrors.ErrInvalidStudentID
	}
	return s.backend.GetOrCreateStudent(ctx, studentID)
}

// List returns every registered student.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	return s.backend.ListStudents(ctx)
}

// UpdateCourseStatus applies one status change for a concrete course and
// returns the refetched student with freshly derived statuses.
//
// Contract (the historical frontends disagreed; this is the one we honor):
//   - a prior COMPLETED always issues DELETE completed-disciplines,
//   - a prior CURRENT always issues DELETE current-disciplines,
//   - the new status then issues its own PUT (CURRENT requires a class
//     number), NOT_TAKEN issues nothing further,
//   - the refetch starts only after every mutation finished.
//
// A change to CURRENT/COMPLETED that fails the prerequisite or credit gate
// is rejected before any backend call.
func (s *StudentService) UpdateCourseStatus(ctx context.Context, studentID, courseID string, newStatus models.CourseStatus, classNumber *int) (*models.Student, map[string]models.CourseStatus, error) {
	if !s.catalog.Ready() {
		s.logger.Warn().Msg("Status change requested before the catalog is ready")
		return nil, nil, apperrors.ErrCatalogNotReady
	}

	course, ok := s.catalog.Course(courseID)
	if !ok {
		return nil, nil, apperrors.ErrCourseNotFound
	}
	if course.IsElectiveGroup {
		return nil, nil, apperrors.NewCustomError(apperrors.ErrBadRequest,
			"elective groups have no status of their own; change one of the elective courses instead")
	}

	student, err := s.backend.GetStudent(ctx, studentID)
	if err != nil {
		return nil, nil, err
	}

	statuses := progress.DeriveStatuses(student, s.catalog)
	oldStatus := progress.StatusOf(statuses, courseID)
	if newStatus == oldStatus {
		return student, statuses, nil
	}

	if newStatus == models.StatusCurrent || newStatus == models.StatusCompleted {
		total := progress.TotalCompleted(s.catalog.Flattened(), statuses)
		if err := progress.CheckGate(course, statuses, total); err != nil {
			return nil, nil, err
		}
	}

	if err := s.applyStatusChange(ctx, student, course, oldStatus, newStatus, classNumber); err != nil {
		return nil, nil, err
	}

	// Refetch strictly after the mutation settled.
	refreshed, err := s.backend.GetStudent(ctx, studentID)
	if err != nil {
		return nil, nil, err
	}
	return refreshed, progress.DeriveStatuses(refreshed, s.catalog), nil
}

func (s *StudentService) applyStatusChange(ctx context.Context, student *models.Student, course *models.Course, oldStatus, newStatus models.CourseStatus, classNumber *int) error {
	switch oldStatus {
	case models.StatusCompleted:
		if _, err := s.backend.DeleteCompletedDiscipline(ctx, student.StudentID, course.DisciplineID); err != nil {
			return err
		}
	case models.StatusCurrent:
		if _, err := s.backend.DeleteCurrentDiscipline(ctx, student.StudentID, course.DisciplineID); err != nil {
			return err
		}
	}

	switch newStatus {
	case models.StatusCompleted:
		_, err := s.backend.PutCompletedDiscipline(ctx, student.StudentID, course.DisciplineID)
		return err
	case models.StatusCurrent:
		if classNumber == nil {
			return apperrors.NewCustomError(apperrors.ErrValidationFailed,
				fmt.Sprintf("a class number is required to enroll in %s", course.Name))
		}
		_, err := s.backend.PutCurrentDiscipline(ctx, student.StudentID, course.DisciplineID, *classNumber)
		return err
	case models.StatusNotTaken:
		return nil
	default:
		return apperrors.NewCustomError(apperrors.ErrValidationFailed,
			fmt.Sprintf("unknown course status %q", newStatus))
	}
}

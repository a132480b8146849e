package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/app/models/dto"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/backend"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/catalog"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/schedule"
)

// ScheduleService builds the weekly grid for a student's current classes.
type ScheduleService struct {
	backend *backend.Client
	catalog *catalog.Catalog
	builder *schedule.Builder
}

// NewScheduleService creates a ScheduleService.
func NewScheduleService(client *backend.Client, cat *catalog.Catalog, logger zerolog.Logger) *ScheduleService {
	return &ScheduleService{
		backend: client,
		catalog: cat,
		builder: schedule.NewBuilder(client, logger),
	}
}

// Schedule fetches the student and assembles the grid. Per-discipline
// detail fetches run concurrently inside the builder; an individual failure
// only blanks that discipline's cells.
func (s *ScheduleService) Schedule(ctx context.Context, studentID string) (*dto.ScheduleResponse, error) {
	student, err := s.backend.GetStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	grid, err := s.builder.Build(ctx, student, s.catalog)
	if err != nil {
		return nil, err
	}

	return &dto.ScheduleResponse{
		Days:      schedule.Days,
		TimeSlots: schedule.TimeSlots,
		Grid:      grid,
	}, nil
}

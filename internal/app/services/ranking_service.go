package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/app/models"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/app/models/dto"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/backend"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/ranking"
)

// RankingService computes the same-cohort ranking window for a student.
type RankingService struct {
	backend *backend.Client
	logger  zerolog.Logger
}

// NewRankingService creates a RankingService.
func NewRankingService(client *backend.Client, logger zerolog.Logger) *RankingService {
	return &RankingService{backend: client, logger: logger}
}

// Ranking loads the student roster and windows the cohort ranking around
// the student. A roster fetch failure degrades to an empty ranking so the
// page still renders; the student lookup itself must succeed.
func (s *RankingService) Ranking(ctx context.Context, studentID string) (*dto.RankingResponse, error) {
	current, err := s.backend.GetStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	students, err := s.backend.ListStudents(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to fetch students for ranking, returning empty list")
		students = nil
	}

	entries := ranking.Build(students, current)
	if entries == nil {
		entries = []models.RankedStudent{}
	}

	return &dto.RankingResponse{
		CohortYear: current.CohortYear(),
		Entries:    entries,
	}, nil
}

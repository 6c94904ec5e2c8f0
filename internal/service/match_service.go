package service

import (
	"context"

	"talentflow-be/internal/dto"
	"talentflow-be/internal/repository/unitofwork"
	"talentflow-be/pkg/matching"
	"talentflow-be/pkg/matching/filterstate"

	"github.com/google/uuid"
)

type IMatchService interface {
	FindMatches(ctx context.Context, req *dto.FindMatchesRequest) (*dto.FindMatchesResponse, error)
	SaveFilters(ctx context.Context, req *dto.SaveFiltersRequest) error
	LoadFilters(ctx context.Context, ownerId uuid.UUID) (*dto.SavedFiltersResponse, error)
	ClearFilters(ctx context.Context, ownerId uuid.UUID) error
}

type matchService struct {
	uowFactory  unitofwork.RepositoryFactory
	filterStore filterstate.Store
	scorer      matching.Scorer
}

// NewMatchService wires the finder flow. A nil scorer keeps the baseline
// ranking (stable roster order).
func NewMatchService(uowFactory unitofwork.RepositoryFactory, filterStore filterstate.Store, scorer matching.Scorer) IMatchService {
	return &matchService{
		uowFactory:  uowFactory,
		filterStore: filterStore,
		scorer:      scorer,
	}
}

// FindMatches translates a project brief into filter criteria, runs the
// predicate chain over the roster, then ranks and caps the survivors.
func (s *matchService) FindMatches(ctx context.Context, req *dto.FindMatchesRequest) (*dto.FindMatchesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	roster, err := uow.FreelancerRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	attempts, err := uow.QuizRepository().FindAttempts(ctx)
	if err != nil {
		return nil, err
	}

	criteria := matching.DefaultCriteria().
		WithLanguagePairs(req.LanguagePairs).
		WithSpecializations(req.Specializations).
		WithServiceTypes(req.ServiceTypes).
		WithSkills(req.Skills).
		WithExperienceRange(req.MinExperience, nil).
		WithMaxRate(req.MaxRate).
		WithMinRating(req.MinRating).
		WithFlags(req.NdaSigned, false, req.Certified)

	filtered := matching.FilterRoster(roster, criteria, attempts)
	ranked := matching.RankMatches(filtered, criteria, s.scorer)

	matches := make([]dto.MatchResponse, len(ranked))
	for i, m := range ranked {
		matches[i] = dto.MatchResponse{
			Freelancer: *freelancerToResponse(m.Freelancer),
			Score:      m.Score,
		}
	}

	return &dto.FindMatchesResponse{Matches: matches}, nil
}

func (s *matchService) SaveFilters(ctx context.Context, req *dto.SaveFiltersRequest) error {
	return s.filterStore.Save(ctx, req.OwnerId, req.Filters.ToCriteria())
}

func (s *matchService) LoadFilters(ctx context.Context, ownerId uuid.UUID) (*dto.SavedFiltersResponse, error) {
	criteria, err := s.filterStore.Load(ctx, ownerId)
	if err != nil {
		return nil, err
	}

	return &dto.SavedFiltersResponse{
		Filters: dto.RosterFilterRequest{
			Search:          criteria.Search,
			Status:          criteria.Status,
			QuizPassed:      criteria.QuizPassed,
			MinQuizScore:    criteria.MinQuizScore,
			LanguagePairs:   criteria.LanguagePairs,
			Specializations: criteria.Specializations,
			ServiceTypes:    criteria.ServiceTypes,
			Skills:          criteria.Skills,
			MinExperience:   criteria.MinExperience,
			MaxExperience:   criteria.MaxExperience,
			Availability:    criteria.Availability,
			MaxRate:         criteria.MaxRate,
			NdaSigned:       criteria.NdaSigned,
			Tested:          criteria.Tested,
			Certified:       criteria.Certified,
			MinRating:       criteria.MinRating,
		},
	}, nil
}

func (s *matchService) ClearFilters(ctx context.Context, ownerId uuid.UUID) error {
	return s.filterStore.Clear(ctx, ownerId)
}

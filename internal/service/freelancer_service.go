package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"talentflow-be/internal/dto"
	"talentflow-be/internal/entity"
	"talentflow-be/internal/repository/specification"
	"talentflow-be/internal/repository/unitofwork"
	"talentflow-be/pkg/matching"
	"talentflow-be/pkg/matching/language"

	"github.com/google/uuid"
)

type IFreelancerService interface {
	Create(ctx context.Context, req *dto.CreateFreelancerRequest) (*dto.FreelancerResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.FreelancerResponse, error)
	Update(ctx context.Context, req *dto.UpdateFreelancerRequest) (*dto.FreelancerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error

	Search(ctx context.Context, query string, limit int) ([]*dto.FreelancerResponse, error)
	FilterRoster(ctx context.Context, req *dto.RosterFilterRequest) (*dto.RosterResponse, error)
	MoveStage(ctx context.Context, actorId uuid.UUID, req *dto.MoveStageRequest) (*dto.MoveStageResponse, error)
	UpdateReviewStatus(ctx context.Context, actorId uuid.UUID, req *dto.UpdateReviewStatusRequest) error
	AddNote(ctx context.Context, actorId uuid.UUID, req *dto.AddNoteRequest) error
	Facets(ctx context.Context) (*dto.FacetsResponse, error)
	PipelineStats(ctx context.Context) (*dto.PipelineStatsResponse, error)
	Activities(ctx context.Context, freelancerId uuid.UUID) ([]*dto.ActivityResponse, error)
}

type freelancerService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewFreelancerService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) IFreelancerService {
	return &freelancerService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *freelancerService) Create(ctx context.Context, req *dto.CreateFreelancerRequest) (*dto.FreelancerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, _ := uow.FreelancerRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	availability := entity.Availability(req.Availability)
	if req.Availability == "" {
		availability = entity.AvailabilityNotAvailable
	}

	freelancer := &entity.Freelancer{
		Id:              uuid.New(),
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		Status:          entity.StageNewApplication,
		LanguagePairs:   pairsFromDTO(req.LanguagePairs),
		Specializations: req.Specializations,
		ServiceTypes:    req.ServiceTypes,
		Skills:          req.Skills,
		Software:        req.Software,
		Rates:           ratesFromDTO(req.Rates),
		ExperienceYears: req.ExperienceYears,
		ResourceRating:  req.ResourceRating,
		Availability:    availability,
		Notes:           req.Notes,
		CreatedAt:       time.Now(),
	}

	if err := uow.FreelancerRepository().Create(ctx, freelancer); err != nil {
		return nil, err
	}

	return freelancerToResponse(freelancer), nil
}

func (s *freelancerService) Show(ctx context.Context, id uuid.UUID) (*dto.FreelancerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	freelancer, err := uow.FreelancerRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if freelancer == nil {
		return nil, nil
	}
	return freelancerToResponse(freelancer), nil
}

func (s *freelancerService) Update(ctx context.Context, req *dto.UpdateFreelancerRequest) (*dto.FreelancerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	freelancer, err := uow.FreelancerRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if freelancer == nil {
		return nil, errors.New("freelancer not found")
	}

	now := time.Now()
	freelancer.FullName = req.FullName
	freelancer.Email = req.Email
	freelancer.Phone = req.Phone
	freelancer.LanguagePairs = pairsFromDTO(req.LanguagePairs)
	freelancer.Specializations = req.Specializations
	freelancer.ServiceTypes = req.ServiceTypes
	freelancer.Skills = req.Skills
	freelancer.Software = req.Software
	freelancer.Rates = ratesFromDTO(req.Rates)
	freelancer.ExperienceYears = req.ExperienceYears
	freelancer.ResourceRating = req.ResourceRating
	if req.Availability != "" {
		freelancer.Availability = entity.Availability(req.Availability)
	}
	freelancer.NdaSigned = req.NdaSigned
	freelancer.Tested = req.Tested
	freelancer.Certified = req.Certified
	freelancer.Notes = req.Notes
	freelancer.UpdatedAt = &now

	if err := uow.FreelancerRepository().Update(ctx, freelancer); err != nil {
		return nil, err
	}

	return freelancerToResponse(freelancer), nil
}

func (s *freelancerService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.FreelancerRepository().Delete(ctx, id)
}

// Restore undoes a soft delete. The row keeps its history, so the
// freelancer comes back with activities and attempts intact.
func (s *freelancerService) Restore(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.FreelancerRepository().Restore(ctx, id)
}

// Search is the lightweight name/email typeahead. Unlike FilterRoster it
// pushes the match into SQL because it runs on every keystroke.
func (s *freelancerService) Search(ctx context.Context, query string, limit int) ([]*dto.FreelancerResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	results, err := uow.FreelancerRepository().SearchFreelancers(ctx, query, limit, 0)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.FreelancerResponse, len(results))
	for i, f := range results {
		responses[i] = freelancerToResponse(f)
	}
	return responses, nil
}

// FilterRoster loads the full roster plus quiz attempts and runs the
// in-memory filter chain. The roster for a translation agency stays in the
// low thousands, so a full scan per request is cheaper than mirroring every
// predicate into SQL.
func (s *freelancerService) FilterRoster(ctx context.Context, req *dto.RosterFilterRequest) (*dto.RosterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	roster, err := uow.FreelancerRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	attempts, err := uow.QuizRepository().FindAttempts(ctx)
	if err != nil {
		return nil, err
	}

	criteria := req.ToCriteria()
	filtered := matching.FilterRoster(roster, criteria, attempts)

	responses := make([]dto.FreelancerResponse, len(filtered))
	for i, f := range filtered {
		responses[i] = *freelancerToResponse(f)
	}

	return &dto.RosterResponse{
		Freelancers: responses,
		Total:       len(roster),
		Matched:     len(filtered),
	}, nil
}

func (s *freelancerService) MoveStage(ctx context.Context, actorId uuid.UUID, req *dto.MoveStageRequest) (*dto.MoveStageResponse, error) {
	stage, err := entity.ParsePipelineStage(req.Stage)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	freelancer, err := uow.FreelancerRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if freelancer == nil {
		return nil, errors.New("freelancer not found")
	}

	fromStage := freelancer.Status
	if err := uow.FreelancerRepository().UpdateStage(ctx, req.Id, string(stage)); err != nil {
		return nil, err
	}

	publishLifecycle(ctx, s.publisherService, dto.LifecycleMessage{
		EventType:    entity.ActivityStageMoved,
		FreelancerId: req.Id,
		ActorId:      &actorId,
		Description:  fmt.Sprintf("Moved from %s to %s", fromStage, stage),
		Details: map[string]interface{}{
			"from_stage": string(fromStage),
			"to_stage":   string(stage),
		},
		NotifyEmail: true,
	})

	return &dto.MoveStageResponse{Id: req.Id, Stage: string(stage)}, nil
}

func (s *freelancerService) UpdateReviewStatus(ctx context.Context, actorId uuid.UUID, req *dto.UpdateReviewStatusRequest) error {
	switch entity.ReviewStatus(req.ReviewStatus) {
	case entity.ReviewStatusNew, entity.ReviewStatusReviewing, entity.ReviewStatusInterviewScheduled,
		entity.ReviewStatusAccepted, entity.ReviewStatusRejected, entity.ReviewStatusOnHold:
	default:
		return fmt.Errorf("unknown review status %q", req.ReviewStatus)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	freelancer, err := uow.FreelancerRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return err
	}
	if freelancer == nil {
		return errors.New("freelancer not found")
	}

	return uow.FreelancerRepository().UpdateReviewStatus(ctx, req.Id, req.ReviewStatus)
}

func (s *freelancerService) AddNote(ctx context.Context, actorId uuid.UUID, req *dto.AddNoteRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	freelancer, err := uow.FreelancerRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return err
	}
	if freelancer == nil {
		return errors.New("freelancer not found")
	}

	note := req.Note
	if freelancer.Notes != nil && *freelancer.Notes != "" {
		note = *freelancer.Notes + "\n" + note
	}
	freelancer.Notes = &note
	now := time.Now()
	freelancer.UpdatedAt = &now

	if err := uow.FreelancerRepository().Update(ctx, freelancer); err != nil {
		return err
	}

	publishLifecycle(ctx, s.publisherService, dto.LifecycleMessage{
		EventType:    entity.ActivityNoteAdded,
		FreelancerId: req.Id,
		ActorId:      &actorId,
		Description:  "Note added",
		Details:      map[string]interface{}{"note": req.Note},
	})

	return nil
}

// Facets recomputes the filter option lists from current roster content.
func (s *freelancerService) Facets(ctx context.Context) (*dto.FacetsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	roster, err := uow.FreelancerRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.FacetsResponse{
		LanguagePairs:   matching.DistinctLanguagePairs(roster),
		Specializations: matching.DistinctSpecializations(roster),
		ServiceTypes:    matching.DistinctServiceTypes(roster),
		Skills:          matching.DistinctSkills(roster),
	}, nil
}

func (s *freelancerService) PipelineStats(ctx context.Context) (*dto.PipelineStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	counts, err := uow.FreelancerRepository().CountByStage(ctx)
	if err != nil {
		return nil, err
	}

	// Stages without members still show as zero columns on the board.
	full := make(map[string]int64, len(entity.PipelineStages()))
	var total int64
	for _, stage := range entity.PipelineStages() {
		full[string(stage)] = counts[string(stage)]
		total += counts[string(stage)]
	}

	return &dto.PipelineStatsResponse{Counts: full, Total: total}, nil
}

func (s *freelancerService) Activities(ctx context.Context, freelancerId uuid.UUID) ([]*dto.ActivityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	activities, err := uow.ActivityRepository().FindAll(ctx,
		specification.ByFreelancerID{FreelancerID: freelancerId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ActivityResponse, len(activities))
	for i, a := range activities {
		responses[i] = &dto.ActivityResponse{
			Id:           a.Id,
			FreelancerId: a.FreelancerId,
			ActorId:      a.ActorId,
			Type:         string(a.Type),
			Description:  a.Description,
			Details:      a.Details,
			CreatedAt:    a.CreatedAt,
		}
	}
	return responses, nil
}

// publishLifecycle is shared by every service that emits pipeline events.
// Publishing is auxiliary: failures are logged, never returned.
func publishLifecycle(ctx context.Context, pub IPublisherService, msg dto.LifecycleMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		fmt.Printf("[WARN] Failed to marshal lifecycle message: %v\n", err)
		return
	}
	if err := pub.Publish(ctx, payload); err != nil {
		fmt.Printf("[WARN] Failed to publish %s lifecycle message: %v\n", msg.EventType, err)
	}
}

// Shared DTO conversion helpers.

func pairsFromDTO(pairs []dto.LanguagePairDTO) []entity.LanguagePair {
	if len(pairs) == 0 {
		return nil
	}
	out := make([]entity.LanguagePair, len(pairs))
	for i, p := range pairs {
		out[i] = entity.LanguagePair{
			Source:      p.Source,
			Target:      p.Target,
			Proficiency: p.Proficiency,
			Rates:       ratesFromDTO(p.Rates),
		}
	}
	return out
}

func ratesFromDTO(rates []dto.RateDTO) []entity.Rate {
	if len(rates) == 0 {
		return nil
	}
	out := make([]entity.Rate, len(rates))
	for i, r := range rates {
		out[i] = entity.Rate{
			RateType:       r.RateType,
			RateValue:      r.RateValue,
			Currency:       r.Currency,
			Specialization: r.Specialization,
			Tool:           r.Tool,
		}
	}
	return out
}

func pairsToDTO(pairs []entity.LanguagePair) []dto.LanguagePairDTO {
	out := make([]dto.LanguagePairDTO, len(pairs))
	for i, p := range pairs {
		out[i] = dto.LanguagePairDTO{
			Source:      p.Source,
			Target:      p.Target,
			Proficiency: p.Proficiency,
			Rates:       ratesToDTO(p.Rates),
		}
	}
	return out
}

func ratesToDTO(rates []entity.Rate) []dto.RateDTO {
	out := make([]dto.RateDTO, len(rates))
	for i, r := range rates {
		out[i] = dto.RateDTO{
			RateType:       r.RateType,
			RateValue:      r.RateValue,
			Currency:       r.Currency,
			Specialization: r.Specialization,
			Tool:           r.Tool,
		}
	}
	return out
}

func freelancerToResponse(f *entity.Freelancer) *dto.FreelancerResponse {
	var reviewStatus *string
	if f.ReviewStatus != nil {
		rs := string(*f.ReviewStatus)
		reviewStatus = &rs
	}

	displayPairs := make([]string, len(f.LanguagePairs))
	for i, p := range f.LanguagePairs {
		displayPairs[i] = language.DisplayPair(p.Source, p.Target)
	}

	return &dto.FreelancerResponse{
		Id:              f.Id,
		FullName:        f.FullName,
		Email:           f.Email,
		Phone:           f.Phone,
		Status:          string(f.Status),
		ReviewStatus:    reviewStatus,
		LanguagePairs:   pairsToDTO(f.LanguagePairs),
		DisplayPairs:    displayPairs,
		Specializations: f.Specializations,
		ServiceTypes:    f.ServiceTypes,
		Skills:          f.Skills,
		Software:        f.Software,
		Rates:           ratesToDTO(f.Rates),
		ExperienceYears: f.ExperienceYears,
		ResourceRating:  f.ResourceRating,
		Availability:    string(f.Availability),
		NdaSigned:       f.NdaSigned,
		Tested:          f.Tested,
		Certified:       f.Certified,
		Notes:           f.Notes,
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}
}

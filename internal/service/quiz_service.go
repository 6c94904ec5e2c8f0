package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"talentflow-be/internal/dto"
	"talentflow-be/internal/entity"
	"talentflow-be/internal/repository/specification"
	"talentflow-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IQuizService interface {
	Create(ctx context.Context, req *dto.CreateQuizRequest) (*dto.QuizResponse, error)
	Update(ctx context.Context, req *dto.UpdateQuizRequest) (*dto.QuizResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*dto.QuizResponse, error)
	Assign(ctx context.Context, actorId uuid.UUID, req *dto.AssignQuizRequest) (*dto.QuizAttemptResponse, error)
	Grade(ctx context.Context, actorId uuid.UUID, req *dto.GradeAttemptRequest) (*dto.QuizAttemptResponse, error)
	AttemptsFor(ctx context.Context, freelancerId uuid.UUID) ([]*dto.QuizAttemptResponse, error)
	PendingAttempts(ctx context.Context) ([]*dto.QuizAttemptResponse, error)
	StatsFor(ctx context.Context, freelancerId uuid.UUID) (*dto.QuizStatsResponse, error)
}

type quizService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewQuizService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) IQuizService {
	return &quizService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *quizService) Create(ctx context.Context, req *dto.CreateQuizRequest) (*dto.QuizResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	quiz := &entity.Quiz{
		Id:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		PassScore:   req.PassScore,
		TimeLimit:   req.TimeLimit,
		CreatedAt:   time.Now(),
	}
	if quiz.PassScore == 0 {
		quiz.PassScore = 70
	}

	if err := uow.QuizRepository().Create(ctx, quiz); err != nil {
		return nil, err
	}

	return quizToResponse(quiz), nil
}

func (s *quizService) Update(ctx context.Context, req *dto.UpdateQuizRequest) (*dto.QuizResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	quiz, err := uow.QuizRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, errors.New("quiz not found")
	}

	quiz.Title = req.Title
	quiz.Description = req.Description
	quiz.PassScore = req.PassScore
	quiz.TimeLimit = req.TimeLimit

	if err := uow.QuizRepository().Update(ctx, quiz); err != nil {
		return nil, err
	}
	return quizToResponse(quiz), nil
}

// Delete removes a quiz. Existing attempts keep their quiz_id so grading
// history stays intact.
func (s *quizService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.QuizRepository().Delete(ctx, id)
}

func (s *quizService) List(ctx context.Context) ([]*dto.QuizResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	quizzes, err := uow.QuizRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.QuizResponse, len(quizzes))
	for i, q := range quizzes {
		responses[i] = quizToResponse(q)
	}
	return responses, nil
}

// Assign creates an ungraded attempt and notifies the freelancer. Passed
// stays nil until an operator grades the attempt; the attempt already
// counts as "taken" for roster filtering.
func (s *quizService) Assign(ctx context.Context, actorId uuid.UUID, req *dto.AssignQuizRequest) (*dto.QuizAttemptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	quiz, err := uow.QuizRepository().FindOne(ctx, specification.ByID{ID: req.QuizId})
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, errors.New("quiz not found")
	}

	freelancer, err := uow.FreelancerRepository().FindOne(ctx, specification.ByID{ID: req.FreelancerId})
	if err != nil {
		return nil, err
	}
	if freelancer == nil {
		return nil, errors.New("freelancer not found")
	}

	attempt := &entity.QuizAttempt{
		Id:           uuid.New(),
		QuizId:       req.QuizId,
		FreelancerId: req.FreelancerId,
		TakenAt:      time.Now(),
	}
	if err := uow.QuizRepository().CreateAttempt(ctx, attempt); err != nil {
		return nil, err
	}

	quizLink := fmt.Sprintf("%s/quiz/%s/attempt/%s", os.Getenv("FRONTEND_URL"), quiz.Id, attempt.Id)
	publishLifecycle(ctx, s.publisherService, dto.LifecycleMessage{
		EventType:    entity.ActivityQuizAssigned,
		FreelancerId: req.FreelancerId,
		ActorId:      &actorId,
		Description:  fmt.Sprintf("Assigned quiz %q", quiz.Title),
		Details: map[string]interface{}{
			"quiz_id":    quiz.Id.String(),
			"quiz_title": quiz.Title,
			"quiz_link":  quizLink,
		},
		NotifyEmail: true,
	})

	return attemptToResponse(attempt), nil
}

// Grade records the score and derives pass/fail from the quiz threshold.
// A passing grade also flips the freelancer's tested flag.
func (s *quizService) Grade(ctx context.Context, actorId uuid.UUID, req *dto.GradeAttemptRequest) (*dto.QuizAttemptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	attempt, err := uow.QuizRepository().FindAttempt(ctx, specification.ByID{ID: req.AttemptId})
	if err != nil {
		return nil, err
	}
	if attempt == nil {
		return nil, errors.New("attempt not found")
	}

	quiz, err := uow.QuizRepository().FindOne(ctx, specification.ByID{ID: attempt.QuizId})
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, errors.New("quiz not found")
	}

	passed := req.Score >= quiz.PassScore

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.QuizRepository().GradeAttempt(ctx, attempt.Id, req.Score, passed); err != nil {
		return nil, err
	}

	if passed {
		if err := uow.FreelancerRepository().MarkTested(ctx, attempt.FreelancerId); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	now := time.Now()
	attempt.Score = req.Score
	attempt.Passed = &passed
	attempt.GradedAt = &now

	outcome := "failed"
	if passed {
		outcome = "passed"
	}
	publishLifecycle(ctx, s.publisherService, dto.LifecycleMessage{
		EventType:    entity.ActivityQuizGraded,
		FreelancerId: attempt.FreelancerId,
		ActorId:      &actorId,
		Description:  fmt.Sprintf("Quiz %q graded: %s (%.1f%%)", quiz.Title, outcome, req.Score),
		Details: map[string]interface{}{
			"quiz_id":    quiz.Id.String(),
			"quiz_title": quiz.Title,
			"score":      req.Score,
			"passed":     passed,
		},
	})

	return attemptToResponse(attempt), nil
}

func (s *quizService) AttemptsFor(ctx context.Context, freelancerId uuid.UUID) ([]*dto.QuizAttemptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	attempts, err := uow.QuizRepository().FindAttempts(ctx,
		specification.ByFreelancerID{FreelancerID: freelancerId},
		specification.OrderBy{Field: "taken_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.QuizAttemptResponse, len(attempts))
	for i, a := range attempts {
		responses[i] = attemptToResponse(a)
	}
	return responses, nil
}

// PendingAttempts is the grading queue: every submitted attempt nobody
// has scored yet, oldest first so reviewers work in arrival order.
func (s *quizService) PendingAttempts(ctx context.Context) ([]*dto.QuizAttemptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	attempts, err := uow.QuizRepository().FindAttempts(ctx,
		specification.Ungraded{},
		specification.OrderBy{Field: "taken_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.QuizAttemptResponse, len(attempts))
	for i, a := range attempts {
		responses[i] = attemptToResponse(a)
	}
	return responses, nil
}

// StatsFor summarizes a freelancer's test history for the profile panel.
// Ungraded attempts count toward Attempts but not toward the score figures.
func (s *quizService) StatsFor(ctx context.Context, freelancerId uuid.UUID) (*dto.QuizStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	attempts, err := uow.QuizRepository().FindAttempts(ctx,
		specification.ByFreelancerID{FreelancerID: freelancerId},
	)
	if err != nil {
		return nil, err
	}

	stats := &dto.QuizStatsResponse{
		FreelancerId: freelancerId,
		Attempts:     len(attempts),
	}
	var sum float64
	for _, a := range attempts {
		if a.Passed == nil {
			continue
		}
		stats.Graded++
		sum += a.Score
		if a.Score > stats.BestScore {
			stats.BestScore = a.Score
		}
		if *a.Passed {
			stats.AnyPassed = true
		}
	}
	if stats.Graded > 0 {
		stats.AverageScore = sum / float64(stats.Graded)
	}
	return stats, nil
}

func quizToResponse(q *entity.Quiz) *dto.QuizResponse {
	return &dto.QuizResponse{
		Id:          q.Id,
		Title:       q.Title,
		Description: q.Description,
		PassScore:   q.PassScore,
		TimeLimit:   q.TimeLimit,
		CreatedAt:   q.CreatedAt,
	}
}

func attemptToResponse(a *entity.QuizAttempt) *dto.QuizAttemptResponse {
	return &dto.QuizAttemptResponse{
		Id:           a.Id,
		QuizId:       a.QuizId,
		FreelancerId: a.FreelancerId,
		Score:        a.Score,
		Passed:       a.Passed,
		TakenAt:      a.TakenAt,
		GradedAt:     a.GradedAt,
	}
}

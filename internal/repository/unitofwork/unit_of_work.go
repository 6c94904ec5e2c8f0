package unitofwork

import (
	"context"

	"talentflow-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	FreelancerRepository() contract.FreelancerRepository
	QuizRepository() contract.QuizRepository
	DocumentRepository() contract.DocumentRepository
	ActivityRepository() contract.ActivityRepository
	PayoutRepository() contract.PayoutRepository
}

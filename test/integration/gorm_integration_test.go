package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"talentflow-be/internal/entity"
	"talentflow-be/internal/repository/specification"
	"talentflow-be/internal/repository/unitofwork"
	"talentflow-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.FreelancerRepository())

	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Freelancer Repository", func(t *testing.T) {
		count, err := uow.FreelancerRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Freelancer count: %d", count)
	})

	t.Run("Check Pipeline Stage Counts", func(t *testing.T) {
		counts, err := uow.FreelancerRepository().CountByStage(context.Background())
		assert.NoError(t, err)
		t.Logf("Stage counts: %v", counts)
	})

	t.Run("Check Transactional Quiz Grading", func(t *testing.T) {
		ctx := context.Background()

		freelancer := &entity.Freelancer{
			Id:       uuid.New(),
			FullName: "Integration Test Freelancer",
			Email:    "test-integration-" + uuid.New().String() + "@example.com",
			Status:   entity.StageTestSent,
		}
		err := uow.FreelancerRepository().Create(ctx, freelancer)
		assert.NoError(t, err)
		defer uow.FreelancerRepository().DeleteUnscoped(ctx, freelancer.Id)

		quiz := &entity.Quiz{
			Id:        uuid.New(),
			Title:     "Integration Quiz " + uuid.New().String(),
			PassScore: 70,
		}
		err = uow.QuizRepository().Create(ctx, quiz)
		assert.NoError(t, err)

		attempt := &entity.QuizAttempt{
			Id:           uuid.New(),
			QuizId:       quiz.Id,
			FreelancerId: freelancer.Id,
		}
		err = uow.QuizRepository().CreateAttempt(ctx, attempt)
		assert.NoError(t, err)

		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		err = uow.QuizRepository().GradeAttempt(ctx, attempt.Id, 85, true)
		assert.NoError(t, err)

		err = uow.FreelancerRepository().MarkTested(ctx, freelancer.Id)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		graded, err := uow.QuizRepository().FindAttempt(ctx, specification.ByID{ID: attempt.Id})
		assert.NoError(t, err)
		if assert.NotNil(t, graded) {
			assert.NotNil(t, graded.Passed)
			assert.True(t, *graded.Passed)
			assert.Equal(t, 85.0, graded.Score)
		}
	})
}

package service

import (
	"context"

	"github.com/godilite/feedback-server/internal/repository/models"
)

// Store is the persistence surface the operations read and write through.
// Implementations are bound to a single transaction.
type Store interface {
	FindTrainerByUserName(ctx context.Context, userName string) (models.Trainer, error)
	FindTraineeByUserName(ctx context.Context, userName string) (models.Trainee, error)
	FindTraineeByID(ctx context.Context, id int64) (models.Trainee, error)
	FindCohortCoursesByTrainer(ctx context.Context, trainerID int64) ([]models.CohortCourse, error)
	FindCohortCoursesByCohort(ctx context.Context, cohortID int64) ([]models.CohortCourse, error)
	FindCohortCourseByID(ctx context.Context, id int64) (models.CohortCourse, error)
	FindEvaluationsByCohortCourse(ctx context.Context, cohortCourseID int64) ([]models.CohortCourseEvaluation, error)
	FindEvaluationsByTrainee(ctx context.Context, traineeID int64) ([]models.CohortCourseEvaluation, error)
	FindEvaluationByID(ctx context.Context, id int64) (models.CohortCourseEvaluation, error)
	FindEvaluationByTraineeAndCourse(ctx context.Context, traineeID, cohortCourseID int64) (models.CohortCourseEvaluation, error)
	CreateEvaluation(ctx context.Context, e *models.CohortCourseEvaluation) error
	UpdateEvaluation(ctx context.Context, e *models.CohortCourseEvaluation) error
}

// Transactor runs fn against a Store scoped to one transaction, committing
// when fn returns nil.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, store Store) error) error
}

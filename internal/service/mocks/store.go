package mocks

import (
	"context"
	"errors"

	"github.com/godilite/feedback-server/internal/repository/models"
)

// MockStore is a mock implementation of the service Store interface
// for testing the operation layer. It uses function-based mocking for flexibility.
type MockStore struct {
	FindTrainerByUserNameFunc            func(ctx context.Context, userName string) (models.Trainer, error)
	FindTraineeByUserNameFunc            func(ctx context.Context, userName string) (models.Trainee, error)
	FindTraineeByIDFunc                  func(ctx context.Context, id int64) (models.Trainee, error)
	FindCohortCoursesByTrainerFunc       func(ctx context.Context, trainerID int64) ([]models.CohortCourse, error)
	FindCohortCoursesByCohortFunc        func(ctx context.Context, cohortID int64) ([]models.CohortCourse, error)
	FindCohortCourseByIDFunc             func(ctx context.Context, id int64) (models.CohortCourse, error)
	FindEvaluationsByCohortCourseFunc    func(ctx context.Context, cohortCourseID int64) ([]models.CohortCourseEvaluation, error)
	FindEvaluationsByTraineeFunc         func(ctx context.Context, traineeID int64) ([]models.CohortCourseEvaluation, error)
	FindEvaluationByIDFunc               func(ctx context.Context, id int64) (models.CohortCourseEvaluation, error)
	FindEvaluationByTraineeAndCourseFunc func(ctx context.Context, traineeID, cohortCourseID int64) (models.CohortCourseEvaluation, error)
	CreateEvaluationFunc                 func(ctx context.Context, e *models.CohortCourseEvaluation) error
	UpdateEvaluationFunc                 func(ctx context.Context, e *models.CohortCourseEvaluation) error
}

func (m *MockStore) FindTrainerByUserName(ctx context.Context, userName string) (models.Trainer, error) {
	if m.FindTrainerByUserNameFunc != nil {
		return m.FindTrainerByUserNameFunc(ctx, userName)
	}
	return models.Trainer{}, errors.New("FindTrainerByUserNameFunc not implemented")
}

func (m *MockStore) FindTraineeByUserName(ctx context.Context, userName string) (models.Trainee, error) {
	if m.FindTraineeByUserNameFunc != nil {
		return m.FindTraineeByUserNameFunc(ctx, userName)
	}
	return models.Trainee{}, errors.New("FindTraineeByUserNameFunc not implemented")
}

func (m *MockStore) FindTraineeByID(ctx context.Context, id int64) (models.Trainee, error) {
	if m.FindTraineeByIDFunc != nil {
		return m.FindTraineeByIDFunc(ctx, id)
	}
	return models.Trainee{}, errors.New("FindTraineeByIDFunc not implemented")
}

func (m *MockStore) FindCohortCoursesByTrainer(ctx context.Context, trainerID int64) ([]models.CohortCourse, error) {
	if m.FindCohortCoursesByTrainerFunc != nil {
		return m.FindCohortCoursesByTrainerFunc(ctx, trainerID)
	}
	return nil, errors.New("FindCohortCoursesByTrainerFunc not implemented")
}

func (m *MockStore) FindCohortCoursesByCohort(ctx context.Context, cohortID int64) ([]models.CohortCourse, error) {
	if m.FindCohortCoursesByCohortFunc != nil {
		return m.FindCohortCoursesByCohortFunc(ctx, cohortID)
	}
	return nil, errors.New("FindCohortCoursesByCohortFunc not implemented")
}

func (m *MockStore) FindCohortCourseByID(ctx context.Context, id int64) (models.CohortCourse, error) {
	if m.FindCohortCourseByIDFunc != nil {
		return m.FindCohortCourseByIDFunc(ctx, id)
	}
	return models.CohortCourse{}, errors.New("FindCohortCourseByIDFunc not implemented")
}

func (m *MockStore) FindEvaluationsByCohortCourse(ctx context.Context, cohortCourseID int64) ([]models.CohortCourseEvaluation, error) {
	if m.FindEvaluationsByCohortCourseFunc != nil {
		return m.FindEvaluationsByCohortCourseFunc(ctx, cohortCourseID)
	}
	return nil, errors.New("FindEvaluationsByCohortCourseFunc not implemented")
}

func (m *MockStore) FindEvaluationsByTrainee(ctx context.Context, traineeID int64) ([]models.CohortCourseEvaluation, error) {
	if m.FindEvaluationsByTraineeFunc != nil {
		return m.FindEvaluationsByTraineeFunc(ctx, traineeID)
	}
	return nil, errors.New("FindEvaluationsByTraineeFunc not implemented")
}

func (m *MockStore) FindEvaluationByID(ctx context.Context, id int64) (models.CohortCourseEvaluation, error) {
	if m.FindEvaluationByIDFunc != nil {
		return m.FindEvaluationByIDFunc(ctx, id)
	}
	return models.CohortCourseEvaluation{}, errors.New("FindEvaluationByIDFunc not implemented")
}

func (m *MockStore) FindEvaluationByTraineeAndCourse(ctx context.Context, traineeID, cohortCourseID int64) (models.CohortCourseEvaluation, error) {
	if m.FindEvaluationByTraineeAndCourseFunc != nil {
		return m.FindEvaluationByTraineeAndCourseFunc(ctx, traineeID, cohortCourseID)
	}
	return models.CohortCourseEvaluation{}, errors.New("FindEvaluationByTraineeAndCourseFunc not implemented")
}

func (m *MockStore) CreateEvaluation(ctx context.Context, e *models.CohortCourseEvaluation) error {
	if m.CreateEvaluationFunc != nil {
		return m.CreateEvaluationFunc(ctx, e)
	}
	return errors.New("CreateEvaluationFunc not implemented")
}

func (m *MockStore) UpdateEvaluation(ctx context.Context, e *models.CohortCourseEvaluation) error {
	if m.UpdateEvaluationFunc != nil {
		return m.UpdateEvaluationFunc(ctx, e)
	}
	return errors.New("UpdateEvaluationFunc not implemented")
}

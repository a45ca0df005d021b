package mocks

import (
	"context"
	"errors"

	"github.com/godilite/feedback-server/internal/service"
)

// MockEvaluationService is a mock implementation of the EvaluationService interface
// for testing the handler layer. It uses function-based mocking for flexibility.
type MockEvaluationService struct {
	GetCohortCoursesForTrainerFunc     func(ctx context.Context, trainerUserName string) ([]service.CohortCourse, error)
	GetEvaluationsForTraineeFunc       func(ctx context.Context, traineeUserName string) ([]service.Evaluation, error)
	GetCurrentEvaluationForTraineeFunc func(ctx context.Context, traineeUserName string) (service.Evaluation, error)
	GetEvaluationFunc                  func(ctx context.Context, id int64) (service.Evaluation, error)
	GetEvaluationsForCourseFunc        func(ctx context.Context, cohortCourseID int64) ([]service.Evaluation, error)
	CreateEvaluationFunc               func(ctx context.Context, e service.Evaluation) (service.Evaluation, error)
	UpdateEvaluationFunc               func(ctx context.Context, e service.Evaluation) (service.Evaluation, error)
}

// GetCohortCoursesForTrainer implements the EvaluationService interface
func (m *MockEvaluationService) GetCohortCoursesForTrainer(ctx context.Context, trainerUserName string) ([]service.CohortCourse, error) {
	if m.GetCohortCoursesForTrainerFunc != nil {
		return m.GetCohortCoursesForTrainerFunc(ctx, trainerUserName)
	}
	return nil, errors.New("GetCohortCoursesForTrainerFunc not implemented")
}

// GetEvaluationsForTrainee implements the EvaluationService interface
func (m *MockEvaluationService) GetEvaluationsForTrainee(ctx context.Context, traineeUserName string) ([]service.Evaluation, error) {
	if m.GetEvaluationsForTraineeFunc != nil {
		return m.GetEvaluationsForTraineeFunc(ctx, traineeUserName)
	}
	return nil, errors.New("GetEvaluationsForTraineeFunc not implemented")
}

// GetCurrentEvaluationForTrainee implements the EvaluationService interface
func (m *MockEvaluationService) GetCurrentEvaluationForTrainee(ctx context.Context, traineeUserName string) (service.Evaluation, error) {
	if m.GetCurrentEvaluationForTraineeFunc != nil {
		return m.GetCurrentEvaluationForTraineeFunc(ctx, traineeUserName)
	}
	return service.Evaluation{}, errors.New("GetCurrentEvaluationForTraineeFunc not implemented")
}

// GetEvaluation implements the EvaluationService interface
func (m *MockEvaluationService) GetEvaluation(ctx context.Context, id int64) (service.Evaluation, error) {
	if m.GetEvaluationFunc != nil {
		return m.GetEvaluationFunc(ctx, id)
	}
	return service.Evaluation{}, errors.New("GetEvaluationFunc not implemented")
}

// GetEvaluationsForCourse implements the EvaluationService interface
func (m *MockEvaluationService) GetEvaluationsForCourse(ctx context.Context, cohortCourseID int64) ([]service.Evaluation, error) {
	if m.GetEvaluationsForCourseFunc != nil {
		return m.GetEvaluationsForCourseFunc(ctx, cohortCourseID)
	}
	return nil, errors.New("GetEvaluationsForCourseFunc not implemented")
}

// CreateEvaluation implements the write side used by the HTTP transport
func (m *MockEvaluationService) CreateEvaluation(ctx context.Context, e service.Evaluation) (service.Evaluation, error) {
	if m.CreateEvaluationFunc != nil {
		return m.CreateEvaluationFunc(ctx, e)
	}
	return service.Evaluation{}, errors.New("CreateEvaluationFunc not implemented")
}

// UpdateEvaluation implements the write side used by the HTTP transport
func (m *MockEvaluationService) UpdateEvaluation(ctx context.Context, e service.Evaluation) (service.Evaluation, error) {
	if m.UpdateEvaluationFunc != nil {
		return m.UpdateEvaluationFunc(ctx, e)
	}
	return service.Evaluation{}, errors.New("UpdateEvaluationFunc not implemented")
}

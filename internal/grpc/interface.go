package grpc

import (
	"context"

	"github.com/godilite/feedback-server/internal/service"
)

// EvaluationService is the read side of the evaluation facade exposed over gRPC.
type EvaluationService interface {
	GetCohortCoursesForTrainer(ctx context.Context, trainerUserName string) ([]service.CohortCourse, error)
	GetEvaluationsForTrainee(ctx context.Context, traineeUserName string) ([]service.Evaluation, error)
	GetCurrentEvaluationForTrainee(ctx context.Context, traineeUserName string) (service.Evaluation, error)
	GetEvaluation(ctx context.Context, id int64) (service.Evaluation, error)
	GetEvaluationsForCourse(ctx context.Context, cohortCourseID int64) ([]service.Evaluation, error)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/godilite/feedback-server/internal/repository"
)

var validate = validator.New()

// commandResult carries the saved evaluation plus the username of the
// course's trainer, whose cached course ratings are now stale.
type commandResult struct {
	evaluation      Evaluation
	trainerUserName string
}

type CreateEvaluationOperation struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewCreateEvaluationOperation(logger *zap.Logger, now func() time.Time) *CreateEvaluationOperation {
	return &CreateEvaluationOperation{logger: logger, now: now}
}

func (op *CreateEvaluationOperation) Execute(ctx context.Context, store Store, in Evaluation) (commandResult, error) {
	if in.Status == "" {
		in.Status = StatusSaved
	}
	if err := validate.Struct(in); err != nil {
		return commandResult{}, fmt.Errorf("%w: %v", ErrInvalidEvaluation, err)
	}

	if _, err := store.FindTraineeByID(ctx, in.TraineeID); err != nil {
		return commandResult{}, lookupErr(err, ErrTraineeNotFound)
	}
	course, err := store.FindCohortCourseByID(ctx, in.CohortCourseID)
	if err != nil {
		return commandResult{}, lookupErr(err, ErrCohortCourseNotFound)
	}

	_, err = store.FindEvaluationByTraineeAndCourse(ctx, in.TraineeID, in.CohortCourseID)
	switch {
	case err == nil:
		return commandResult{}, ErrDuplicateEvaluation
	case !errors.Is(err, repository.ErrNotFound):
		return commandResult{}, storageErr(err)
	}

	entity := toEvaluationEntity(in)
	entity.ID = 0
	now := op.now().UTC()
	entity.CreatedAt = now
	entity.UpdatedAt = now

	if err := store.CreateEvaluation(ctx, &entity); err != nil {
		return commandResult{}, storageErr(err)
	}

	op.logger.Info("evaluation created",
		zap.Int64("evaluation_id", entity.ID),
		zap.Int64("trainee_id", entity.TraineeID),
		zap.Int64("cohort_course_id", entity.CohortCourseID),
		zap.String("status", entity.Status))

	return commandResult{evaluation: toEvaluation(entity), trainerUserName: course.TrainerUserName}, nil
}

// UpdateEvaluationOperation replaces the responses and status of a saved
// evaluation. Submitted evaluations are final, and the trainee and cohort
// course of an evaluation never change.
type UpdateEvaluationOperation struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewUpdateEvaluationOperation(logger *zap.Logger, now func() time.Time) *UpdateEvaluationOperation {
	return &UpdateEvaluationOperation{logger: logger, now: now}
}

func (op *UpdateEvaluationOperation) Execute(ctx context.Context, store Store, in Evaluation) (commandResult, error) {
	if in.ID <= 0 {
		return commandResult{}, fmt.Errorf("%w: id is required", ErrInvalidEvaluation)
	}

	existing, err := store.FindEvaluationByID(ctx, in.ID)
	if err != nil {
		return commandResult{}, lookupErr(err, ErrEvaluationNotFound)
	}
	if EvaluationStatus(existing.Status) == StatusSubmitted {
		return commandResult{}, ErrEvaluationSubmitted
	}

	if in.TraineeID != 0 && in.TraineeID != existing.TraineeID {
		return commandResult{}, fmt.Errorf("%w: trainee cannot be changed", ErrInvalidEvaluation)
	}
	if in.CohortCourseID != 0 && in.CohortCourseID != existing.CohortCourseID {
		return commandResult{}, fmt.Errorf("%w: cohort course cannot be changed", ErrInvalidEvaluation)
	}
	in.TraineeID = existing.TraineeID
	in.CohortCourseID = existing.CohortCourseID
	if in.Status == "" {
		in.Status = EvaluationStatus(existing.Status)
	}
	if err := validate.Struct(in); err != nil {
		return commandResult{}, fmt.Errorf("%w: %v", ErrInvalidEvaluation, err)
	}

	course, err := store.FindCohortCourseByID(ctx, existing.CohortCourseID)
	if err != nil {
		return commandResult{}, lookupErr(err, ErrCohortCourseNotFound)
	}

	entity := toEvaluationEntity(in)
	entity.CreatedAt = existing.CreatedAt
	entity.UpdatedAt = op.now().UTC()

	if err := store.UpdateEvaluation(ctx, &entity); err != nil {
		return commandResult{}, lookupErr(err, ErrEvaluationNotFound)
	}

	op.logger.Info("evaluation updated",
		zap.Int64("evaluation_id", entity.ID),
		zap.String("status", entity.Status))

	return commandResult{evaluation: toEvaluation(entity), trainerUserName: course.TrainerUserName}, nil
}

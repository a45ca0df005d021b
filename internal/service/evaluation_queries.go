package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/godilite/feedback-server/internal/repository/models"
)

type GetEvaluationsForTraineeOperation struct {
	logger *zap.Logger
}

func NewGetEvaluationsForTraineeOperation(logger *zap.Logger) *GetEvaluationsForTraineeOperation {
	return &GetEvaluationsForTraineeOperation{logger: logger}
}

func (op *GetEvaluationsForTraineeOperation) Execute(ctx context.Context, store Store, userName string) ([]Evaluation, error) {
	trainee, err := store.FindTraineeByUserName(ctx, userName)
	if err != nil {
		return nil, lookupErr(err, ErrTraineeNotFound)
	}

	evals, err := store.FindEvaluationsByTrainee(ctx, trainee.ID)
	if err != nil {
		return nil, storageErr(err)
	}
	return toEvaluations(evals), nil
}

// GetCurrentEvaluationForTraineeOperation returns the trainee's evaluation
// of the cohort course running today.
type GetCurrentEvaluationForTraineeOperation struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewGetCurrentEvaluationForTraineeOperation(logger *zap.Logger, now func() time.Time) *GetCurrentEvaluationForTraineeOperation {
	return &GetCurrentEvaluationForTraineeOperation{logger: logger, now: now}
}

func (op *GetCurrentEvaluationForTraineeOperation) Execute(ctx context.Context, store Store, userName string) (Evaluation, error) {
	trainee, err := store.FindTraineeByUserName(ctx, userName)
	if err != nil {
		return Evaluation{}, lookupErr(err, ErrTraineeNotFound)
	}

	courses, err := store.FindCohortCoursesByCohort(ctx, trainee.CohortID)
	if err != nil {
		return Evaluation{}, storageErr(err)
	}

	course, ok := currentCourse(courses, op.now())
	if !ok {
		op.logger.Debug("no running cohort course",
			zap.String("trainee", userName),
			zap.Int64("cohort_id", trainee.CohortID))
		return Evaluation{}, ErrCohortCourseNotFound
	}

	eval, err := store.FindEvaluationByTraineeAndCourse(ctx, trainee.ID, course.ID)
	if err != nil {
		return Evaluation{}, lookupErr(err, ErrEvaluationNotFound)
	}
	return toEvaluation(eval), nil
}

// currentCourse picks the course whose date range contains the calendar day
// of now; when several run at once the latest start wins.
func currentCourse(courses []models.CohortCourse, now time.Time) (models.CohortCourse, bool) {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var (
		best  models.CohortCourse
		found bool
	)
	for _, c := range courses {
		if today.Before(truncateDay(c.StartDate)) || today.After(truncateDay(c.EndDate)) {
			continue
		}
		if !found || c.StartDate.After(best.StartDate) {
			best, found = c, true
		}
	}
	return best, found
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type GetEvaluationsForCourseOperation struct {
	logger *zap.Logger
}

func NewGetEvaluationsForCourseOperation(logger *zap.Logger) *GetEvaluationsForCourseOperation {
	return &GetEvaluationsForCourseOperation{logger: logger}
}

func (op *GetEvaluationsForCourseOperation) Execute(ctx context.Context, store Store, cohortCourseID int64) ([]Evaluation, error) {
	if _, err := store.FindCohortCourseByID(ctx, cohortCourseID); err != nil {
		return nil, lookupErr(err, ErrCohortCourseNotFound)
	}

	evals, err := store.FindEvaluationsByCohortCourse(ctx, cohortCourseID)
	if err != nil {
		return nil, storageErr(err)
	}
	return toEvaluations(evals), nil
}

type GetEvaluationOperation struct {
	logger *zap.Logger
}

func NewGetEvaluationOperation(logger *zap.Logger) *GetEvaluationOperation {
	return &GetEvaluationOperation{logger: logger}
}

func (op *GetEvaluationOperation) Execute(ctx context.Context, store Store, id int64) (Evaluation, error) {
	eval, err := store.FindEvaluationByID(ctx, id)
	if err != nil {
		return Evaluation{}, lookupErr(err, ErrEvaluationNotFound)
	}
	return toEvaluation(eval), nil
}

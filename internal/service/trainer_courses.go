package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// GetCohortCoursesForTrainerOperation lists a trainer's cohort courses with
// their average trainer-knowledge rating.
type GetCohortCoursesForTrainerOperation struct {
	logger *zap.Logger
}

func NewGetCohortCoursesForTrainerOperation(logger *zap.Logger) *GetCohortCoursesForTrainerOperation {
	return &GetCohortCoursesForTrainerOperation{logger: logger}
}

func (op *GetCohortCoursesForTrainerOperation) Execute(ctx context.Context, store Store, userName string) ([]CohortCourse, error) {
	trainer, err := store.FindTrainerByUserName(ctx, userName)
	if err != nil {
		return nil, lookupErr(err, ErrTrainerNotFound)
	}

	courses, err := store.FindCohortCoursesByTrainer(ctx, trainer.ID)
	if err != nil {
		return nil, storageErr(err)
	}

	out := make([]CohortCourse, 0, len(courses))
	for _, c := range courses {
		evals, err := store.FindEvaluationsByCohortCourse(ctx, c.ID)
		if err != nil {
			return nil, storageErr(err)
		}

		rating, err := averageKnowledgeRating(evals)
		if err != nil {
			op.logger.Warn("trainer evaluation rating failed",
				zap.String("trainer", userName),
				zap.Int64("cohort_course_id", c.ID),
				zap.Error(err))
			return nil, fmt.Errorf("cohort course %d: %w", c.ID, err)
		}

		out = append(out, toCohortCourse(c, rating))
	}

	sortCohortCourses(out)

	op.logger.Info("computed trainer course ratings",
		zap.String("trainer", userName),
		zap.Int("courses", len(out)))

	return out, nil
}

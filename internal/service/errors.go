package service

import (
	"errors"
	"fmt"

	"github.com/godilite/feedback-server/internal/repository"
)

var (
	ErrNotFound             = errors.New("resource not found")
	ErrTrainerNotFound      = fmt.Errorf("%w: trainer does not exist", ErrNotFound)
	ErrTraineeNotFound      = fmt.Errorf("%w: trainee does not exist", ErrNotFound)
	ErrCohortCourseNotFound = fmt.Errorf("%w: cohort course does not exist", ErrNotFound)
	ErrEvaluationNotFound   = fmt.Errorf("%w: evaluation does not exist", ErrNotFound)

	// ErrTrainerEvaluation is the business failure raised when a trainer
	// evaluation response cannot be turned into a rating.
	ErrTrainerEvaluation = errors.New("error calculating trainer evaluation")

	ErrInvalidEvaluation   = errors.New("invalid evaluation")
	ErrDuplicateEvaluation = errors.New("evaluation already exists for trainee and cohort course")
	ErrEvaluationSubmitted = errors.New("evaluation has already been submitted")
	ErrStorageFailure      = errors.New("storage failure")
)

// lookupErr translates a repository error, mapping a missing row to
// notFound and anything else to ErrStorageFailure.
func lookupErr(err error, notFound error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound
	}
	return storageErr(err)
}

func storageErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStorageFailure, err)
}

func isDomainErr(err error) bool {
	for _, target := range []error{
		ErrNotFound,
		ErrTrainerEvaluation,
		ErrInvalidEvaluation,
		ErrDuplicateEvaluation,
		ErrEvaluationSubmitted,
		ErrStorageFailure,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

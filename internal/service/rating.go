package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/godilite/feedback-server/internal/repository/models"
)

const (
	// TrainerEvaluationCategory tags the category responses that rate the
	// trainer's subject knowledge.
	TrainerEvaluationCategory = "Evaluation Trainer"

	NotApplicable = "N/A"
)

type ResponseValueKind int

const (
	ResponseValuePresent ResponseValueKind = iota
	ResponseValueEmpty
	ResponseValueMalformed
)

func (k ResponseValueKind) String() string {
	switch k {
	case ResponseValuePresent:
		return "present"
	case ResponseValueEmpty:
		return "empty"
	case ResponseValueMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// ResponseValue is the parsed form of a question response's stored values.
// Value is set only for ResponseValuePresent, Err only for
// ResponseValueMalformed.
type ResponseValue struct {
	Kind  ResponseValueKind
	Value int
	Err   error
}

// ParseResponseValue decodes raw as a JSON array of integers and keeps the
// first element. An empty array is Empty; anything that is not an array of
// integers, including null and null elements, is Malformed.
func ParseResponseValue(raw string) ResponseValue {
	var values []*int
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return ResponseValue{Kind: ResponseValueMalformed, Err: err}
	}
	if values == nil {
		return ResponseValue{Kind: ResponseValueMalformed, Err: errors.New("response values are null")}
	}
	if len(values) == 0 {
		return ResponseValue{Kind: ResponseValueEmpty}
	}
	for i, v := range values {
		if v == nil {
			return ResponseValue{Kind: ResponseValueMalformed, Err: fmt.Errorf("response value %d is null", i)}
		}
	}
	return ResponseValue{Kind: ResponseValuePresent, Value: *values[0]}
}

// KnowledgeRating accumulates trainer-knowledge values for one course.
type KnowledgeRating struct {
	Sum   int64
	Count int
}

func (r *KnowledgeRating) Add(v int) {
	r.Sum += int64(v)
	r.Count++
}

// Average returns the arithmetic mean and false when nothing was added.
func (r KnowledgeRating) Average() (float64, bool) {
	if r.Count == 0 {
		return 0, false
	}
	return float64(r.Sum) / float64(r.Count), true
}

// String renders the mean as a plain decimal, or "N/A" without values.
func (r KnowledgeRating) String() string {
	avg, ok := r.Average()
	if !ok {
		return NotApplicable
	}
	return strconv.FormatFloat(avg, 'f', -1, 64)
}

// averageKnowledgeRating folds the first response value of every trainer
// evaluation category across evals. Empty arrays are skipped; a malformed
// value, or a category without any question response, fails the course.
func averageKnowledgeRating(evals []models.CohortCourseEvaluation) (KnowledgeRating, error) {
	var rating KnowledgeRating
	for _, e := range evals {
		for _, cr := range e.CategoryResponses {
			if cr.CategoryName != TrainerEvaluationCategory {
				continue
			}
			if len(cr.QuestionResponses) == 0 {
				return KnowledgeRating{}, fmt.Errorf("%w: category response %d has no question responses", ErrTrainerEvaluation, cr.ID)
			}

			rv := ParseResponseValue(cr.QuestionResponses[0].ResponseValues)
			switch rv.Kind {
			case ResponseValuePresent:
				rating.Add(rv.Value)
			case ResponseValueEmpty:
				// "N/A": excluded from the average
			case ResponseValueMalformed:
				return KnowledgeRating{}, fmt.Errorf("%w: category response %d: %v", ErrTrainerEvaluation, cr.ID, rv.Err)
			}
		}
	}
	return rating, nil
}

// startsBeforeEnd reports whether a starts before b ends.
func startsBeforeEnd(a, b CohortCourse) bool {
	return a.StartDate.Before(b.EndDate)
}

// sortCohortCourses orders courses with startsBeforeEnd as a stable
// insertion pass: each course moves ahead of its predecessors while it
// starts before they end. The relation is not a strict weak ordering, so
// for overlapping courses the result depends on the input order.
func sortCohortCourses(courses []CohortCourse) {
	for i := 1; i < len(courses); i++ {
		for j := i; j > 0 && startsBeforeEnd(courses[j], courses[j-1]); j-- {
			courses[j], courses[j-1] = courses[j-1], courses[j]
		}
	}
}

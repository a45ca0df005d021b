package grpc

import (
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/godilite/feedback-server/internal/service"
)

// Field names mirror the JSON names of the HTTP API. Ids are carried as
// numbers, so they are exact up to 2^53.

func formatTime(t time.Time) *structpb.Value {
	if t.IsZero() {
		return structpb.NewNullValue()
	}
	return structpb.NewStringValue(t.UTC().Format(time.RFC3339))
}

func cohortCourseToProto(c service.CohortCourse) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"id":                     structpb.NewNumberValue(float64(c.ID)),
		"cohortId":               structpb.NewNumberValue(float64(c.CohortID)),
		"cohortName":             structpb.NewStringValue(c.CohortName),
		"courseName":             structpb.NewStringValue(c.CourseName),
		"trainerUserName":        structpb.NewStringValue(c.TrainerUserName),
		"startDate":              formatTime(c.StartDate),
		"endDate":                formatTime(c.EndDate),
		"averageKnowledgeRating": structpb.NewStringValue(c.AverageKnowledgeRating),
	}}
}

func evaluationToProto(e service.Evaluation) *structpb.Struct {
	categories := make([]*structpb.Value, len(e.CategoryResponses))
	for i, cr := range e.CategoryResponses {
		questions := make([]*structpb.Value, len(cr.QuestionResponses))
		for j, qr := range cr.QuestionResponses {
			questions[j] = structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
				"id":             structpb.NewNumberValue(float64(qr.ID)),
				"questionId":     structpb.NewNumberValue(float64(qr.QuestionID)),
				"responseValues": structpb.NewStringValue(qr.ResponseValues),
				"comment":        structpb.NewStringValue(qr.Comment),
			}})
		}
		categories[i] = structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
			"id":                structpb.NewNumberValue(float64(cr.ID)),
			"categoryName":      structpb.NewStringValue(cr.CategoryName),
			"comment":           structpb.NewStringValue(cr.Comment),
			"questionResponses": structpb.NewListValue(&structpb.ListValue{Values: questions}),
		}})
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"id":                structpb.NewNumberValue(float64(e.ID)),
		"traineeId":         structpb.NewNumberValue(float64(e.TraineeID)),
		"cohortCourseId":    structpb.NewNumberValue(float64(e.CohortCourseID)),
		"status":            structpb.NewStringValue(string(e.Status)),
		"createdAt":         formatTime(e.CreatedAt),
		"updatedAt":         formatTime(e.UpdatedAt),
		"categoryResponses": structpb.NewListValue(&structpb.ListValue{Values: categories}),
	}}
}

func evaluationsToProto(evals []service.Evaluation) *structpb.ListValue {
	values := make([]*structpb.Value, len(evals))
	for i, e := range evals {
		values[i] = structpb.NewStructValue(evaluationToProto(e))
	}
	return &structpb.ListValue{Values: values}
}

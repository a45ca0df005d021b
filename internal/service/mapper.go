package service

import "github.com/godilite/feedback-server/internal/repository/models"

func toCohortCourse(c models.CohortCourse, rating KnowledgeRating) CohortCourse {
	return CohortCourse{
		ID:                     c.ID,
		CohortID:               c.CohortID,
		CohortName:             c.CohortName,
		CourseName:             c.CourseName,
		TrainerUserName:        c.TrainerUserName,
		StartDate:              c.StartDate,
		EndDate:                c.EndDate,
		AverageKnowledgeRating: rating.String(),
	}
}

func toEvaluation(e models.CohortCourseEvaluation) Evaluation {
	categories := make([]CategoryResponse, len(e.CategoryResponses))
	for i, cr := range e.CategoryResponses {
		questions := make([]QuestionResponse, len(cr.QuestionResponses))
		for j, qr := range cr.QuestionResponses {
			questions[j] = QuestionResponse{
				ID:             qr.ID,
				QuestionID:     qr.QuestionID,
				ResponseValues: qr.ResponseValues,
				Comment:        qr.Comment,
			}
		}
		categories[i] = CategoryResponse{
			ID:                cr.ID,
			CategoryName:      cr.CategoryName,
			Comment:           cr.Comment,
			QuestionResponses: questions,
		}
	}

	return Evaluation{
		ID:                e.ID,
		TraineeID:         e.TraineeID,
		CohortCourseID:    e.CohortCourseID,
		Status:            EvaluationStatus(e.Status),
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
		CategoryResponses: categories,
	}
}

func toEvaluations(evals []models.CohortCourseEvaluation) []Evaluation {
	out := make([]Evaluation, len(evals))
	for i, e := range evals {
		out[i] = toEvaluation(e)
	}
	return out
}

// toEvaluationEntity maps the transport record to a new entity. IDs of
// nested responses are dropped; they are reassigned on insert.
func toEvaluationEntity(e Evaluation) models.CohortCourseEvaluation {
	categories := make([]models.EvalQuestionCategoryResponse, len(e.CategoryResponses))
	for i, cr := range e.CategoryResponses {
		questions := make([]models.QuestionResponse, len(cr.QuestionResponses))
		for j, qr := range cr.QuestionResponses {
			questions[j] = models.QuestionResponse{
				QuestionID:     qr.QuestionID,
				ResponseValues: qr.ResponseValues,
				Comment:        qr.Comment,
			}
		}
		categories[i] = models.EvalQuestionCategoryResponse{
			CategoryName:      cr.CategoryName,
			Comment:           cr.Comment,
			QuestionResponses: questions,
		}
	}

	return models.CohortCourseEvaluation{
		ID:                e.ID,
		TraineeID:         e.TraineeID,
		CohortCourseID:    e.CohortCourseID,
		Status:            string(e.Status),
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
		CategoryResponses: categories,
	}
}

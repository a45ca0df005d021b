package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/godilite/feedback-server/internal/repository/models"
)

const selectEvaluations = `
	SELECT id, trainee_id, cohort_course_id, status, created_at, updated_at
	FROM cohort_course_evaluations
`

// FindEvaluationsByCohortCourse returns every evaluation of a cohort course
// with its category and question responses loaded.
func (q *Queries) FindEvaluationsByCohortCourse(ctx context.Context, cohortCourseID int64) ([]models.CohortCourseEvaluation, error) {
	return q.selectEvaluations(ctx, "FindEvaluationsByCohortCourse",
		selectEvaluations+`WHERE cohort_course_id = ? ORDER BY id`, cohortCourseID)
}

func (q *Queries) FindEvaluationsByTrainee(ctx context.Context, traineeID int64) ([]models.CohortCourseEvaluation, error) {
	return q.selectEvaluations(ctx, "FindEvaluationsByTrainee",
		selectEvaluations+`WHERE trainee_id = ? ORDER BY id`, traineeID)
}

func (q *Queries) FindEvaluationByID(ctx context.Context, id int64) (models.CohortCourseEvaluation, error) {
	return q.getEvaluation(ctx, "FindEvaluationByID", selectEvaluations+`WHERE id = ?`, id)
}

func (q *Queries) FindEvaluationByTraineeAndCourse(ctx context.Context, traineeID, cohortCourseID int64) (models.CohortCourseEvaluation, error) {
	return q.getEvaluation(ctx, "FindEvaluationByTraineeAndCourse",
		selectEvaluations+`WHERE trainee_id = ? AND cohort_course_id = ?`, traineeID, cohortCourseID)
}

// CreateEvaluation inserts the evaluation and its responses, filling in the
// generated IDs.
func (q *Queries) CreateEvaluation(ctx context.Context, e *models.CohortCourseEvaluation) error {
	const query = `
		INSERT INTO cohort_course_evaluations (trainee_id, cohort_course_id, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`

	if err := sqlx.GetContext(ctx, q.db, &e.ID, q.db.Rebind(query),
		e.TraineeID, e.CohortCourseID, e.Status, e.CreatedAt, e.UpdatedAt); err != nil {
		return fmt.Errorf("insert evaluation: %w", err)
	}
	return q.insertResponses(ctx, e)
}

// UpdateEvaluation updates status and timestamp and replaces the full set
// of responses.
func (q *Queries) UpdateEvaluation(ctx context.Context, e *models.CohortCourseEvaluation) error {
	const update = `
		UPDATE cohort_course_evaluations
		SET status = ?, updated_at = ?
		WHERE id = ?
	`

	res, err := q.db.ExecContext(ctx, q.db.Rebind(update), e.Status, e.UpdatedAt, e.ID)
	if err != nil {
		return fmt.Errorf("update evaluation: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update evaluation rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("UpdateEvaluation: %w", ErrNotFound)
	}

	const deleteQuestions = `
		DELETE FROM question_responses
		WHERE category_response_id IN (
			SELECT id FROM eval_category_responses WHERE evaluation_id = ?
		)
	`
	if _, err := q.db.ExecContext(ctx, q.db.Rebind(deleteQuestions), e.ID); err != nil {
		return fmt.Errorf("delete question responses: %w", err)
	}

	const deleteCategories = `DELETE FROM eval_category_responses WHERE evaluation_id = ?`
	if _, err := q.db.ExecContext(ctx, q.db.Rebind(deleteCategories), e.ID); err != nil {
		return fmt.Errorf("delete category responses: %w", err)
	}

	return q.insertResponses(ctx, e)
}

func (q *Queries) insertResponses(ctx context.Context, e *models.CohortCourseEvaluation) error {
	const insertCategory = `
		INSERT INTO eval_category_responses (evaluation_id, category_name, comment)
		VALUES (?, ?, ?)
		RETURNING id
	`
	const insertQuestion = `
		INSERT INTO question_responses (category_response_id, question_id, response_values, comment)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`

	for i := range e.CategoryResponses {
		cr := &e.CategoryResponses[i]
		cr.EvaluationID = e.ID
		if err := sqlx.GetContext(ctx, q.db, &cr.ID, q.db.Rebind(insertCategory),
			cr.EvaluationID, cr.CategoryName, cr.Comment); err != nil {
			return fmt.Errorf("insert category response: %w", err)
		}

		for j := range cr.QuestionResponses {
			qr := &cr.QuestionResponses[j]
			qr.CategoryResponseID = cr.ID
			if err := sqlx.GetContext(ctx, q.db, &qr.ID, q.db.Rebind(insertQuestion),
				qr.CategoryResponseID, qr.QuestionID, qr.ResponseValues, qr.Comment); err != nil {
				return fmt.Errorf("insert question response: %w", err)
			}
		}
	}
	return nil
}

func (q *Queries) getEvaluation(ctx context.Context, op, query string, args ...any) (models.CohortCourseEvaluation, error) {
	var e models.CohortCourseEvaluation
	if err := sqlx.GetContext(ctx, q.db, &e, q.db.Rebind(query), args...); err != nil {
		return models.CohortCourseEvaluation{}, wrapErr(op, err)
	}

	evals := []models.CohortCourseEvaluation{e}
	if err := q.loadResponses(ctx, evals); err != nil {
		return models.CohortCourseEvaluation{}, wrapErr(op, err)
	}
	return evals[0], nil
}

func (q *Queries) selectEvaluations(ctx context.Context, op, query string, args ...any) ([]models.CohortCourseEvaluation, error) {
	var evals []models.CohortCourseEvaluation
	if err := sqlx.SelectContext(ctx, q.db, &evals, q.db.Rebind(query), args...); err != nil {
		return nil, wrapErr(op, err)
	}
	if err := q.loadResponses(ctx, evals); err != nil {
		return nil, wrapErr(op, err)
	}
	return evals, nil
}

// loadResponses attaches category and question responses to evals in place,
// preserving insertion order within each evaluation.
func (q *Queries) loadResponses(ctx context.Context, evals []models.CohortCourseEvaluation) error {
	if len(evals) == 0 {
		return nil
	}

	evalIDs := make([]int64, len(evals))
	for i, e := range evals {
		evalIDs[i] = e.ID
	}

	query, args, err := sqlx.In(`
		SELECT id, evaluation_id, category_name, comment
		FROM eval_category_responses
		WHERE evaluation_id IN (?)
		ORDER BY id
	`, evalIDs)
	if err != nil {
		return fmt.Errorf("build category responses query: %w", err)
	}

	var categories []models.EvalQuestionCategoryResponse
	if err := sqlx.SelectContext(ctx, q.db, &categories, q.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("select category responses: %w", err)
	}

	questionsByCategory := make(map[int64][]models.QuestionResponse)
	if len(categories) > 0 {
		categoryIDs := make([]int64, len(categories))
		for i, c := range categories {
			categoryIDs[i] = c.ID
		}

		query, args, err := sqlx.In(`
			SELECT id, category_response_id, question_id, response_values, comment
			FROM question_responses
			WHERE category_response_id IN (?)
			ORDER BY id
		`, categoryIDs)
		if err != nil {
			return fmt.Errorf("build question responses query: %w", err)
		}

		var questions []models.QuestionResponse
		if err := sqlx.SelectContext(ctx, q.db, &questions, q.db.Rebind(query), args...); err != nil {
			return fmt.Errorf("select question responses: %w", err)
		}
		for _, qr := range questions {
			questionsByCategory[qr.CategoryResponseID] = append(questionsByCategory[qr.CategoryResponseID], qr)
		}
	}

	categoriesByEval := make(map[int64][]models.EvalQuestionCategoryResponse)
	for _, c := range categories {
		c.QuestionResponses = questionsByCategory[c.ID]
		categoriesByEval[c.EvaluationID] = append(categoriesByEval[c.EvaluationID], c)
	}
	for i := range evals {
		evals[i].CategoryResponses = categoriesByEval[evals[i].ID]
	}
	return nil
}

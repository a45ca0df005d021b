package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/godilite/feedback-server/internal/repository/models"
)

const selectCohortCourses = `
	SELECT
		cc.id,
		cc.cohort_id,
		cc.cohort_name,
		cc.course_name,
		cc.trainer_id,
		t.user_name AS trainer_user_name,
		cc.start_date,
		cc.end_date
	FROM cohort_courses AS cc
	JOIN trainers AS t ON t.id = cc.trainer_id
`

// FindCohortCoursesByTrainer returns the trainer's cohort courses in
// insertion order.
func (q *Queries) FindCohortCoursesByTrainer(ctx context.Context, trainerID int64) ([]models.CohortCourse, error) {
	query := selectCohortCourses + `WHERE cc.trainer_id = ? ORDER BY cc.id`

	var courses []models.CohortCourse
	if err := sqlx.SelectContext(ctx, q.db, &courses, q.db.Rebind(query), trainerID); err != nil {
		return nil, wrapErr("FindCohortCoursesByTrainer", err)
	}
	return courses, nil
}

func (q *Queries) FindCohortCoursesByCohort(ctx context.Context, cohortID int64) ([]models.CohortCourse, error) {
	query := selectCohortCourses + `WHERE cc.cohort_id = ? ORDER BY cc.id`

	var courses []models.CohortCourse
	if err := sqlx.SelectContext(ctx, q.db, &courses, q.db.Rebind(query), cohortID); err != nil {
		return nil, wrapErr("FindCohortCoursesByCohort", err)
	}
	return courses, nil
}

func (q *Queries) FindCohortCourseByID(ctx context.Context, id int64) (models.CohortCourse, error) {
	query := selectCohortCourses + `WHERE cc.id = ?`

	var course models.CohortCourse
	if err := sqlx.GetContext(ctx, q.db, &course, q.db.Rebind(query), id); err != nil {
		return models.CohortCourse{}, wrapErr("FindCohortCourseByID", err)
	}
	return course, nil
}

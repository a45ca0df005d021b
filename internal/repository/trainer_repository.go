package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/godilite/feedback-server/internal/repository/models"
)

// FindTrainerByUserName looks a trainer up by their unique username.
func (q *Queries) FindTrainerByUserName(ctx context.Context, userName string) (models.Trainer, error) {
	const query = `
		SELECT id, user_name, first_name, last_name
		FROM trainers
		WHERE user_name = ?
	`

	var t models.Trainer
	if err := sqlx.GetContext(ctx, q.db, &t, q.db.Rebind(query), userName); err != nil {
		return models.Trainer{}, wrapErr("FindTrainerByUserName", err)
	}
	return t, nil
}

func (q *Queries) FindTraineeByUserName(ctx context.Context, userName string) (models.Trainee, error) {
	const query = `
		SELECT id, user_name, first_name, last_name, cohort_id
		FROM trainees
		WHERE user_name = ?
	`

	var t models.Trainee
	if err := sqlx.GetContext(ctx, q.db, &t, q.db.Rebind(query), userName); err != nil {
		return models.Trainee{}, wrapErr("FindTraineeByUserName", err)
	}
	return t, nil
}

func (q *Queries) FindTraineeByID(ctx context.Context, id int64) (models.Trainee, error) {
	const query = `
		SELECT id, user_name, first_name, last_name, cohort_id
		FROM trainees
		WHERE id = ?
	`

	var t models.Trainee
	if err := sqlx.GetContext(ctx, q.db, &t, q.db.Rebind(query), id); err != nil {
		return models.Trainee{}, wrapErr("FindTraineeByID", err)
	}
	return t, nil
}

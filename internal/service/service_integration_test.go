package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/godilite/feedback-server/internal/repository"
	"github.com/godilite/feedback-server/internal/service"
	dbbuilder "github.com/godilite/feedback-server/pkg/database"
)

func setupService(t *testing.T, now time.Time) (*service.EvaluationService, *sqlx.DB) {
	t.Helper()

	db, err := dbbuilder.New(context.Background(),
		dbbuilder.WithDriver("sqlite3"),
		dbbuilder.WithDataSource(":memory:"),
		dbbuilder.WithMaxOpenConns(1),
	)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, repository.Migrate(db.DB, "sqlite3", zap.NewNop()))

	_, err = db.Exec(`
	INSERT INTO trainers (id, user_name, first_name, last_name) VALUES
		(1, 'jdoe', 'Jane', 'Doe'),
		(2, 'idle', 'Ian', 'Dle');
	INSERT INTO trainees (id, user_name, first_name, last_name, cohort_id) VALUES
		(10, 'tbrown', 'Tom', 'Brown', 100),
		(11, 'kgreen', 'Kim', 'Green', 100),
		(12, 'mwhite', 'Mia', 'White', 100);
	INSERT INTO cohort_courses (id, cohort_id, cohort_name, course_name, trainer_id, start_date, end_date) VALUES
		(1000, 100, 'Cohort 100', 'Java Fundamentals', 1, '2025-01-01', '2025-02-01'),
		(1001, 100, 'Cohort 100', 'Spring Boot', 1, '2025-01-15', '2025-03-01');
	`)
	require.NoError(t, err)

	tx := service.NewSQLTransactor(db, zap.NewNop())
	return service.NewEvaluationService(tx, zap.NewNop(), service.WithClock(func() time.Time { return now })), db
}

func trainerEvaluation(traineeID, courseID int64, values string) service.Evaluation {
	return service.Evaluation{
		TraineeID:      traineeID,
		CohortCourseID: courseID,
		Status:         service.StatusSubmitted,
		CategoryResponses: []service.CategoryResponse{
			{
				CategoryName:      service.TrainerEvaluationCategory,
				QuestionResponses: []service.QuestionResponse{{QuestionID: 1, ResponseValues: values}},
			},
			{
				CategoryName:      "Evaluation Course",
				QuestionResponses: []service.QuestionResponse{{QuestionID: 2, ResponseValues: "[1]"}},
			},
		},
	}
}

func TestCohortCoursesForTrainer_SQLite(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t, time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC))

	for _, e := range []service.Evaluation{
		trainerEvaluation(10, 1000, "[4]"),
		trainerEvaluation(11, 1000, "[2]"),
		trainerEvaluation(10, 1001, "[]"),
		trainerEvaluation(11, 1001, "[5]"),
	} {
		_, err := svc.CreateEvaluation(ctx, e)
		require.NoError(t, err)
	}

	courses, err := svc.GetCohortCoursesForTrainer(ctx, "jdoe")
	require.NoError(t, err)
	require.Len(t, courses, 2)

	assert.Equal(t, int64(1001), courses[0].ID)
	assert.Equal(t, "5", courses[0].AverageKnowledgeRating)
	assert.Equal(t, int64(1000), courses[1].ID)
	assert.Equal(t, "3", courses[1].AverageKnowledgeRating)

	idle, err := svc.GetCohortCoursesForTrainer(ctx, "idle")
	require.NoError(t, err)
	assert.Empty(t, idle)

	_, err = svc.GetCohortCoursesForTrainer(ctx, "nobody")
	assert.ErrorIs(t, err, service.ErrTrainerNotFound)

	_, err = svc.CreateEvaluation(ctx, trainerEvaluation(12, 1000, "oops"))
	require.NoError(t, err)
	_, err = svc.GetCohortCoursesForTrainer(ctx, "jdoe")
	assert.ErrorIs(t, err, service.ErrTrainerEvaluation)
}

func TestEvaluationLifecycle_SQLite(t *testing.T) {
	ctx := context.Background()
	svc, db := setupService(t, time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC))

	draft := trainerEvaluation(10, 1001, "[3]")
	draft.Status = ""
	created, err := svc.CreateEvaluation(ctx, draft)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, service.StatusSaved, created.Status)

	_, err = svc.CreateEvaluation(ctx, draft)
	assert.ErrorIs(t, err, service.ErrDuplicateEvaluation)

	current, err := svc.GetCurrentEvaluationForTrainee(ctx, "tbrown")
	require.NoError(t, err)
	assert.Equal(t, created.ID, current.ID)

	update := trainerEvaluation(0, 0, "[4]")
	update.ID = created.ID
	updated, err := svc.UpdateEvaluation(ctx, update)
	require.NoError(t, err)
	assert.Equal(t, service.StatusSubmitted, updated.Status)

	got, err := svc.GetEvaluation(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, service.StatusSubmitted, got.Status)
	require.Len(t, got.CategoryResponses, 2)
	assert.Equal(t, "[4]", got.CategoryResponses[0].QuestionResponses[0].ResponseValues)

	_, err = svc.UpdateEvaluation(ctx, update)
	assert.ErrorIs(t, err, service.ErrEvaluationSubmitted)

	byTrainee, err := svc.GetEvaluationsForTrainee(ctx, "tbrown")
	require.NoError(t, err)
	assert.Len(t, byTrainee, 1)

	byCourse, err := svc.GetEvaluationsForCourse(ctx, 1001)
	require.NoError(t, err)
	assert.Len(t, byCourse, 1)

	_, err = svc.GetEvaluationsForCourse(ctx, 4242)
	assert.ErrorIs(t, err, service.ErrCohortCourseNotFound)

	var count int
	require.NoError(t, db.GetContext(ctx, &count, `SELECT COUNT(*) FROM question_responses`))
	assert.Equal(t, 2, count)
}

func TestFailedCreateRollsBack_SQLite(t *testing.T) {
	ctx := context.Background()
	svc, db := setupService(t, time.Now())

	_, err := svc.CreateEvaluation(ctx, trainerEvaluation(10, 9999, "[3]"))
	assert.ErrorIs(t, err, service.ErrCohortCourseNotFound)

	var count int
	require.NoError(t, db.GetContext(ctx, &count, `SELECT COUNT(*) FROM cohort_course_evaluations`))
	assert.Zero(t, count)
}

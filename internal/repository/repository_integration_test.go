package repository_test

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
	"github.com/godilite/feedback-server/internal/repository/models"
	dbbuilder "github.com/godilite/feedback-server/pkg/database"
)

func setupTestDB(t *testing.T) *sqlx.DB {
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
		(2, 'asmith', 'Alan', 'Smith');
	INSERT INTO trainees (id, user_name, first_name, last_name, cohort_id) VALUES
		(10, 'tbrown', 'Tom', 'Brown', 100),
		(11, 'kgreen', 'Kim', 'Green', 100);
	INSERT INTO cohort_courses (id, cohort_id, cohort_name, course_name, trainer_id, start_date, end_date) VALUES
		(1000, 100, 'Cohort 100', 'Java Fundamentals', 1, '2025-01-01', '2025-02-01'),
		(1001, 100, 'Cohort 100', 'Spring Boot', 1, '2025-01-15', '2025-03-01'),
		(1002, 200, 'Cohort 200', 'Go Services', 2, '2025-04-01', '2025-05-01');
	`)
	require.NoError(t, err)
	return db
}

func newEvaluation(traineeID, courseID int64, values ...string) *models.CohortCourseEvaluation {
	now := time.Date(2025, 1, 20, 9, 0, 0, 0, time.UTC)
	questions := make([]models.QuestionResponse, len(values))
	for i, v := range values {
		questions[i] = models.QuestionResponse{QuestionID: int64(i + 1), ResponseValues: v}
	}
	return &models.CohortCourseEvaluation{
		TraineeID:      traineeID,
		CohortCourseID: courseID,
		Status:         "Saved",
		CreatedAt:      now,
		UpdatedAt:      now,
		CategoryResponses: []models.EvalQuestionCategoryResponse{
			{CategoryName: "Evaluation Trainer", Comment: "clear explanations", QuestionResponses: questions},
			{CategoryName: "Evaluation Course", QuestionResponses: []models.QuestionResponse{{QuestionID: 9, ResponseValues: "[2]"}}},
		},
	}
}

func TestTrainerAndTraineeLookups(t *testing.T) {
	ctx := context.Background()
	q := repository.New(setupTestDB(t))

	trainer, err := q.FindTrainerByUserName(ctx, "jdoe")
	require.NoError(t, err)
	assert.Equal(t, int64(1), trainer.ID)
	assert.Equal(t, "Jane", trainer.FirstName)

	_, err = q.FindTrainerByUserName(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	trainee, err := q.FindTraineeByUserName(ctx, "tbrown")
	require.NoError(t, err)
	assert.Equal(t, int64(100), trainee.CohortID)

	byID, err := q.FindTraineeByID(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, "kgreen", byID.UserName)

	_, err = q.FindTraineeByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCohortCourseLookups(t *testing.T) {
	ctx := context.Background()
	q := repository.New(setupTestDB(t))

	courses, err := q.FindCohortCoursesByTrainer(ctx, 1)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "Java Fundamentals", courses[0].CourseName)
	assert.Equal(t, "jdoe", courses[0].TrainerUserName)
	assert.True(t, courses[0].StartDate.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, courses[1].EndDate.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))

	none, err := q.FindCohortCoursesByTrainer(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, none)

	byCohort, err := q.FindCohortCoursesByCohort(ctx, 200)
	require.NoError(t, err)
	require.Len(t, byCohort, 1)
	assert.Equal(t, "asmith", byCohort[0].TrainerUserName)

	course, err := q.FindCohortCourseByID(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, "Spring Boot", course.CourseName)

	_, err = q.FindCohortCourseByID(ctx, 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEvaluationLifecycle(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	q := repository.New(db)

	eval := newEvaluation(10, 1000, "[4]", "[5, 3]")
	require.NoError(t, q.CreateEvaluation(ctx, eval))
	assert.NotZero(t, eval.ID)
	assert.NotZero(t, eval.CategoryResponses[0].ID)
	assert.Equal(t, eval.CategoryResponses[0].ID, eval.CategoryResponses[0].QuestionResponses[1].CategoryResponseID)

	other := newEvaluation(11, 1000, "[2]")
	require.NoError(t, q.CreateEvaluation(ctx, other))

	t.Run("find by course loads nested responses in order", func(t *testing.T) {
		evals, err := q.FindEvaluationsByCohortCourse(ctx, 1000)
		require.NoError(t, err)
		require.Len(t, evals, 2)

		first := evals[0]
		assert.Equal(t, eval.ID, first.ID)
		require.Len(t, first.CategoryResponses, 2)
		assert.Equal(t, "Evaluation Trainer", first.CategoryResponses[0].CategoryName)
		assert.Equal(t, "clear explanations", first.CategoryResponses[0].Comment)
		require.Len(t, first.CategoryResponses[0].QuestionResponses, 2)
		assert.Equal(t, "[4]", first.CategoryResponses[0].QuestionResponses[0].ResponseValues)
		assert.Equal(t, "[5, 3]", first.CategoryResponses[0].QuestionResponses[1].ResponseValues)
		assert.True(t, first.CreatedAt.Equal(eval.CreatedAt))

		assert.Equal(t, "[2]", evals[1].CategoryResponses[0].QuestionResponses[0].ResponseValues)
	})

	t.Run("find by course without evaluations", func(t *testing.T) {
		evals, err := q.FindEvaluationsByCohortCourse(ctx, 1002)
		require.NoError(t, err)
		assert.Empty(t, evals)
	})

	t.Run("find by trainee", func(t *testing.T) {
		evals, err := q.FindEvaluationsByTrainee(ctx, 11)
		require.NoError(t, err)
		require.Len(t, evals, 1)
		assert.Equal(t, other.ID, evals[0].ID)
	})

	t.Run("find by trainee and course", func(t *testing.T) {
		got, err := q.FindEvaluationByTraineeAndCourse(ctx, 10, 1000)
		require.NoError(t, err)
		assert.Equal(t, eval.ID, got.ID)

		_, err = q.FindEvaluationByTraineeAndCourse(ctx, 10, 1001)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("update replaces responses", func(t *testing.T) {
		eval.Status = "Submitted"
		eval.UpdatedAt = eval.UpdatedAt.Add(time.Hour)
		eval.CategoryResponses = []models.EvalQuestionCategoryResponse{
			{CategoryName: "Evaluation Trainer", QuestionResponses: []models.QuestionResponse{{QuestionID: 1, ResponseValues: "[1]"}}},
		}
		require.NoError(t, q.UpdateEvaluation(ctx, eval))

		got, err := q.FindEvaluationByID(ctx, eval.ID)
		require.NoError(t, err)
		assert.Equal(t, "Submitted", got.Status)
		assert.True(t, got.UpdatedAt.Equal(eval.UpdatedAt))
		require.Len(t, got.CategoryResponses, 1)
		require.Len(t, got.CategoryResponses[0].QuestionResponses, 1)
		assert.Equal(t, "[1]", got.CategoryResponses[0].QuestionResponses[0].ResponseValues)

		var orphans int
		require.NoError(t, db.GetContext(ctx, &orphans, `
			SELECT COUNT(*) FROM question_responses
			WHERE category_response_id NOT IN (SELECT id FROM eval_category_responses)
		`))
		assert.Zero(t, orphans)
	})

	t.Run("update of missing evaluation", func(t *testing.T) {
		missing := newEvaluation(10, 1000, "[3]")
		missing.ID = 9999
		err := q.UpdateEvaluation(ctx, missing)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("find by id missing", func(t *testing.T) {
		_, err := q.FindEvaluationByID(ctx, 9999)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

//go:build e2e

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/wrapperspb"

	pb "github.com/godilite/feedback-server/api/v1"
	"github.com/godilite/feedback-server/internal/service"
)

func startSeededApp(t *testing.T) (*App, string, pb.CohortCourseEvaluationClient) {
	t.Helper()

	a, err := NewApp(context.Background(), testConfig(":memory:"), zap.NewNop())
	require.NoError(t, err)

	_, err = a.db.Exec(`
	INSERT INTO trainers (id, user_name, first_name, last_name) VALUES (1, 'jdoe', 'Jane', 'Doe');
	INSERT INTO trainees (id, user_name, first_name, last_name, cohort_id) VALUES
		(10, 'tbrown', 'Tom', 'Brown', 100),
		(11, 'kgreen', 'Kim', 'Green', 100),
		(12, 'mwhite', 'Mia', 'White', 100);
	INSERT INTO cohort_courses (id, cohort_id, cohort_name, course_name, trainer_id, start_date, end_date) VALUES
		(1000, 100, 'Cohort 100', 'Java Fundamentals', 1, '2025-01-01', '2025-02-01'),
		(1001, 100, 'Cohort 100', 'Spring Boot', 1, '2025-01-15', '2025-03-01');
	`)
	require.NoError(t, err)

	a.Start()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = a.Shutdown(ctx)
	})

	conn, err := grpc.NewClient(fmt.Sprintf("127.0.0.1:%d", a.GRPCAddr().(*net.TCPAddr).Port),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	baseURL := fmt.Sprintf("http://127.0.0.1:%d", a.HTTPAddr().(*net.TCPAddr).Port)
	return a, baseURL, pb.NewCohortCourseEvaluationClient(conn)
}

func postEvaluation(t *testing.T, baseURL string, traineeID, courseID int64, values string) {
	t.Helper()

	body, err := json.Marshal(service.Evaluation{
		TraineeID:      traineeID,
		CohortCourseID: courseID,
		Status:         service.StatusSubmitted,
		CategoryResponses: []service.CategoryResponse{{
			CategoryName:      service.TrainerEvaluationCategory,
			QuestionResponses: []service.QuestionResponse{{QuestionID: 1, ResponseValues: values}},
		}},
	})
	require.NoError(t, err)

	resp, err := http.Post(baseURL+"/evaluations", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestE2E_TrainerCourseRatings(t *testing.T) {
	_, baseURL, client := startSeededApp(t)

	postEvaluation(t, baseURL, 10, 1000, "[4]")
	postEvaluation(t, baseURL, 11, 1000, "[2]")
	postEvaluation(t, baseURL, 10, 1001, "[]")
	postEvaluation(t, baseURL, 11, 1001, "[5]")

	t.Run("over http", func(t *testing.T) {
		resp, err := http.Get(baseURL + "/trainers/jdoe/cohort-courses")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var courses []service.CohortCourse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&courses))
		require.Len(t, courses, 2)
		assert.Equal(t, int64(1001), courses[0].ID)
		assert.Equal(t, "5", courses[0].AverageKnowledgeRating)
		assert.Equal(t, "3", courses[1].AverageKnowledgeRating)
	})

	t.Run("over grpc", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		list, err := client.GetCohortCoursesForTrainer(ctx, wrapperspb.String("jdoe"))
		require.NoError(t, err)
		require.Len(t, list.GetValues(), 2)
		assert.Equal(t, "Spring Boot", list.GetValues()[0].GetStructValue().GetFields()["courseName"].GetStringValue())
	})

	t.Run("malformed response fails the request", func(t *testing.T) {
		postEvaluation(t, baseURL, 12, 1000, "{oops")

		resp, err := http.Get(baseURL + "/trainers/jdoe/cohort-courses")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}

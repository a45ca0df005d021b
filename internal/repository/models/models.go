package models

import "time"

type Trainer struct {
	ID        int64  `db:"id"`
	UserName  string `db:"user_name"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
}

type Trainee struct {
	ID        int64  `db:"id"`
	UserName  string `db:"user_name"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	CohortID  int64  `db:"cohort_id"`
}

type CohortCourse struct {
	ID              int64     `db:"id"`
	CohortID        int64     `db:"cohort_id"`
	CohortName      string    `db:"cohort_name"`
	CourseName      string    `db:"course_name"`
	TrainerID       int64     `db:"trainer_id"`
	TrainerUserName string    `db:"trainer_user_name"`
	StartDate       time.Time `db:"start_date"`
	EndDate         time.Time `db:"end_date"`
}

type CohortCourseEvaluation struct {
	ID                int64     `db:"id"`
	TraineeID         int64     `db:"trainee_id"`
	CohortCourseID    int64     `db:"cohort_course_id"`
	Status            string    `db:"status"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
	CategoryResponses []EvalQuestionCategoryResponse
}

// EvalQuestionCategoryResponse groups the answers given under one
// evaluation category.
type EvalQuestionCategoryResponse struct {
	ID                int64  `db:"id"`
	EvaluationID      int64  `db:"evaluation_id"`
	CategoryName      string `db:"category_name"`
	Comment           string `db:"comment"`
	QuestionResponses []QuestionResponse
}

// QuestionResponse holds one answer. ResponseValues is a JSON array of
// integers stored verbatim.
type QuestionResponse struct {
	ID                 int64  `db:"id"`
	CategoryResponseID int64  `db:"category_response_id"`
	QuestionID         int64  `db:"question_id"`
	ResponseValues     string `db:"response_values"`
	Comment            string `db:"comment"`
}

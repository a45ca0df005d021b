package service

import "time"

type EvaluationStatus string

const (
	StatusSaved     EvaluationStatus = "Saved"
	StatusSubmitted EvaluationStatus = "Submitted"
)

// CohortCourse is a trainer's cohort course annotated with the average
// trainer-knowledge rating, "N/A" when no rating is available.
type CohortCourse struct {
	ID                     int64     `json:"id"`
	CohortID               int64     `json:"cohortId"`
	CohortName             string    `json:"cohortName"`
	CourseName             string    `json:"courseName"`
	TrainerUserName        string    `json:"trainerUserName"`
	StartDate              time.Time `json:"startDate"`
	EndDate                time.Time `json:"endDate"`
	AverageKnowledgeRating string    `json:"averageKnowledgeRating"`
}

type QuestionResponse struct {
	ID             int64  `json:"id"`
	QuestionID     int64  `json:"questionId" validate:"gt=0"`
	ResponseValues string `json:"responseValues" validate:"required"`
	Comment        string `json:"comment,omitempty"`
}

type CategoryResponse struct {
	ID                int64              `json:"id"`
	CategoryName      string             `json:"categoryName" validate:"required"`
	Comment           string             `json:"comment,omitempty"`
	QuestionResponses []QuestionResponse `json:"questionResponses" validate:"dive"`
}

type Evaluation struct {
	ID                int64              `json:"id"`
	TraineeID         int64              `json:"traineeId" validate:"gt=0"`
	CohortCourseID    int64              `json:"cohortCourseId" validate:"gt=0"`
	Status            EvaluationStatus   `json:"status" validate:"oneof=Saved Submitted"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
	CategoryResponses []CategoryResponse `json:"categoryResponses" validate:"dive"`
}

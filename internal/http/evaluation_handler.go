package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/godilite/feedback-server/internal/service"
)

// EvaluationService is the evaluation facade as used by the HTTP API.
type EvaluationService interface {
	GetCohortCoursesForTrainer(ctx context.Context, trainerUserName string) ([]service.CohortCourse, error)
	GetEvaluationsForTrainee(ctx context.Context, traineeUserName string) ([]service.Evaluation, error)
	GetCurrentEvaluationForTrainee(ctx context.Context, traineeUserName string) (service.Evaluation, error)
	GetEvaluation(ctx context.Context, id int64) (service.Evaluation, error)
	GetEvaluationsForCourse(ctx context.Context, cohortCourseID int64) ([]service.Evaluation, error)
	CreateEvaluation(ctx context.Context, e service.Evaluation) (service.Evaluation, error)
	UpdateEvaluation(ctx context.Context, e service.Evaluation) (service.Evaluation, error)
}

type EvaluationHandler struct {
	logger      *zap.Logger
	evaluations EvaluationService
}

func NewEvaluationHandler(logger *zap.Logger, evaluations EvaluationService) *EvaluationHandler {
	if evaluations == nil {
		panic("nil EvaluationService provided to NewEvaluationHandler")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EvaluationHandler{
		logger:      logger.Named("http-handler"),
		evaluations: evaluations,
	}
}

// writeError maps service errors onto status codes. Storage details stay in
// the log.
func (h *EvaluationHandler) writeError(c *gin.Context, op string, err error) {
	fields := []zap.Field{
		zap.String("op", op),
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.Error(err),
	}

	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrTrainerEvaluation):
		h.logger.Warn("trainer evaluation failed", fields...)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": service.ErrTrainerEvaluation.Error()})
	case errors.Is(err, service.ErrInvalidEvaluation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrDuplicateEvaluation), errors.Is(err, service.ErrEvaluationSubmitted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		h.logger.Warn("request timeout", fields...)
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "request timed out"})
	default:
		h.logger.Error("request failed", fields...)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func userNameParam(c *gin.Context) (string, bool) {
	userName := strings.TrimSpace(c.Param("username"))
	if userName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return "", false
	}
	return userName, true
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
		return 0, false
	}
	return id, true
}

// GetCohortCoursesForTrainer handles GET /trainers/:username/cohort-courses.
func (h *EvaluationHandler) GetCohortCoursesForTrainer(c *gin.Context) {
	userName, ok := userNameParam(c)
	if !ok {
		return
	}

	courses, err := h.evaluations.GetCohortCoursesForTrainer(c.Request.Context(), userName)
	if err != nil {
		h.writeError(c, "GetCohortCoursesForTrainer", err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// GetEvaluationsForTrainee handles GET /trainees/:username/evaluations.
func (h *EvaluationHandler) GetEvaluationsForTrainee(c *gin.Context) {
	userName, ok := userNameParam(c)
	if !ok {
		return
	}

	evals, err := h.evaluations.GetEvaluationsForTrainee(c.Request.Context(), userName)
	if err != nil {
		h.writeError(c, "GetEvaluationsForTrainee", err)
		return
	}
	c.JSON(http.StatusOK, evals)
}

// GetCurrentEvaluationForTrainee handles GET /trainees/:username/evaluations/current.
func (h *EvaluationHandler) GetCurrentEvaluationForTrainee(c *gin.Context) {
	userName, ok := userNameParam(c)
	if !ok {
		return
	}

	eval, err := h.evaluations.GetCurrentEvaluationForTrainee(c.Request.Context(), userName)
	if err != nil {
		h.writeError(c, "GetCurrentEvaluationForTrainee", err)
		return
	}
	c.JSON(http.StatusOK, eval)
}

// GetEvaluationsForCourse handles GET /cohort-courses/:id/evaluations.
func (h *EvaluationHandler) GetEvaluationsForCourse(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	evals, err := h.evaluations.GetEvaluationsForCourse(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "GetEvaluationsForCourse", err)
		return
	}
	c.JSON(http.StatusOK, evals)
}

// GetEvaluation handles GET /evaluations/:id.
func (h *EvaluationHandler) GetEvaluation(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	eval, err := h.evaluations.GetEvaluation(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "GetEvaluation", err)
		return
	}
	c.JSON(http.StatusOK, eval)
}

// CreateEvaluation handles POST /evaluations.
func (h *EvaluationHandler) CreateEvaluation(c *gin.Context) {
	var req service.Evaluation
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create evaluation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	eval, err := h.evaluations.CreateEvaluation(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, "CreateEvaluation", err)
		return
	}
	c.JSON(http.StatusCreated, eval)
}

// UpdateEvaluation handles PUT /evaluations/:id.
func (h *EvaluationHandler) UpdateEvaluation(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req service.Evaluation
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid update evaluation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.ID != 0 && req.ID != id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id in body does not match path"})
		return
	}
	req.ID = id

	eval, err := h.evaluations.UpdateEvaluation(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, "UpdateEvaluation", err)
		return
	}
	c.JSON(http.StatusOK, eval)
}

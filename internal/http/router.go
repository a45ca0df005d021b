package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
)

// NewRouter wires the evaluation endpoints behind request-id, logging and
// recovery middleware.
func NewRouter(logger *zap.Logger, evalH *EvaluationHandler) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(requestIDMiddleware(), zapLoggerMiddleware(logger.Named("http")), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/trainers/:username/cohort-courses", evalH.GetCohortCoursesForTrainer)

	trainees := r.Group("/trainees/:username")
	trainees.GET("/evaluations", evalH.GetEvaluationsForTrainee)
	trainees.GET("/evaluations/current", evalH.GetCurrentEvaluationForTrainee)

	r.GET("/cohort-courses/:id/evaluations", evalH.GetEvaluationsForCourse)

	evals := r.Group("/evaluations")
	evals.POST("", evalH.CreateEvaluation)
	evals.GET("/:id", evalH.GetEvaluation)
	evals.PUT("/:id", evalH.UpdateEvaluation)

	return r
}

// requestIDMiddleware reuses the caller's X-Request-ID or generates one.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)
		c.Set(requestIDKey, requestID)
		c.Next()
	}
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString(requestIDKey)),
		)
	}
}

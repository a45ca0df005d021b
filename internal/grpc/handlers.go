package grpc

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	pb "github.com/godilite/feedback-server/api/v1"
	"github.com/godilite/feedback-server/internal/service"
)

const defaultGRPCTimeout = 10 * time.Second

type GRPCHandlers struct {
	pb.UnimplementedCohortCourseEvaluationServer
	evaluations EvaluationService
	logger      *zap.Logger
}

// NewGRPCHandlers initializes the gRPC handlers.
func NewGRPCHandlers(evaluations EvaluationService, logger *zap.Logger) *GRPCHandlers {
	if evaluations == nil {
		panic("nil EvaluationService provided to NewGRPCHandlers")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GRPCHandlers{
		evaluations: evaluations,
		logger:      logger.Named("grpc-handler"),
	}
}

func parseUserName(req *wrapperspb.StringValue) (string, error) {
	userName := strings.TrimSpace(req.GetValue())
	if userName == "" {
		return "", status.Error(codes.InvalidArgument, "username is required")
	}
	return userName, nil
}

func parseID(req *wrapperspb.Int64Value) (int64, error) {
	id := req.GetValue()
	if id <= 0 {
		return 0, status.Error(codes.InvalidArgument, "id must be positive")
	}
	return id, nil
}

func (s *GRPCHandlers) handleError(ctx context.Context, op string, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		s.logger.Warn("request canceled", zap.String("op", op))
		return status.Error(codes.Canceled, "request canceled")
	case context.DeadlineExceeded:
		s.logger.Warn("request timeout", zap.String("op", op))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	switch {
	case errors.Is(err, service.ErrNotFound):
		s.logger.Info("resource not found", zap.String("op", op), zap.Error(err))
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, service.ErrTrainerEvaluation):
		s.logger.Warn("trainer evaluation failed", zap.String("op", op), zap.Error(err))
		return status.Error(codes.FailedPrecondition, service.ErrTrainerEvaluation.Error())
	case errors.Is(err, service.ErrInvalidEvaluation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrStorageFailure):
		s.logger.Error("storage failure", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Internal, "database error")
	default:
		s.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
}

func (s *GRPCHandlers) GetCohortCoursesForTrainer(ctx context.Context, req *wrapperspb.StringValue) (*structpb.ListValue, error) {
	userName, err := parseUserName(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	courses, err := s.evaluations.GetCohortCoursesForTrainer(ctx, userName)
	if err != nil {
		return nil, s.handleError(ctx, "GetCohortCoursesForTrainer", err)
	}

	values := make([]*structpb.Value, len(courses))
	for i, c := range courses {
		values[i] = structpb.NewStructValue(cohortCourseToProto(c))
	}
	return &structpb.ListValue{Values: values}, nil
}

func (s *GRPCHandlers) GetEvaluationsForTrainee(ctx context.Context, req *wrapperspb.StringValue) (*structpb.ListValue, error) {
	userName, err := parseUserName(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	evals, err := s.evaluations.GetEvaluationsForTrainee(ctx, userName)
	if err != nil {
		return nil, s.handleError(ctx, "GetEvaluationsForTrainee", err)
	}
	return evaluationsToProto(evals), nil
}

func (s *GRPCHandlers) GetCurrentEvaluationForTrainee(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	userName, err := parseUserName(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	eval, err := s.evaluations.GetCurrentEvaluationForTrainee(ctx, userName)
	if err != nil {
		return nil, s.handleError(ctx, "GetCurrentEvaluationForTrainee", err)
	}
	return evaluationToProto(eval), nil
}

func (s *GRPCHandlers) GetEvaluation(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	id, err := parseID(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	eval, err := s.evaluations.GetEvaluation(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, "GetEvaluation", err)
	}
	return evaluationToProto(eval), nil
}

func (s *GRPCHandlers) GetEvaluationsForCourse(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.ListValue, error) {
	id, err := parseID(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	evals, err := s.evaluations.GetEvaluationsForCourse(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, "GetEvaluationsForCourse", err)
	}
	return evaluationsToProto(evals), nil
}

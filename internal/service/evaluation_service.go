package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/godilite/feedback-server/pkg/cache"
)

const (
	txTimeout            = 5 * time.Second
	defaultCacheDuration = 10 * time.Minute

	cacheKeyTrainerCourses = "trainer_cohort_courses:"
)

// EvaluationService is the facade over the evaluation use cases. Every call
// runs exactly one operation inside its own transaction.
type EvaluationService struct {
	tx           Transactor
	logger       *zap.Logger
	cache        cache.Cacher
	fills        cache.Group
	cacheTTL     time.Duration
	refreshAhead bool

	trainerCourses     *GetCohortCoursesForTrainerOperation
	traineeEvaluations *GetEvaluationsForTraineeOperation
	currentEvaluation  *GetCurrentEvaluationForTraineeOperation
	courseEvaluations  *GetEvaluationsForCourseOperation
	evaluation         *GetEvaluationOperation
	create             *CreateEvaluationOperation
	update             *UpdateEvaluationOperation
}

type Option func(*serviceOptions)

type serviceOptions struct {
	cache        cache.Cacher
	cacheTTL     time.Duration
	refreshAhead bool
	now          func() time.Time
}

// WithCache caches trainer course ratings for ttl.
func WithCache(c cache.Cacher, ttl time.Duration) Option {
	return func(o *serviceOptions) {
		o.cache = c
		o.cacheTTL = ttl
	}
}

// WithRefreshAhead refreshes a cached entry in the background on every hit.
func WithRefreshAhead(enabled bool) Option {
	return func(o *serviceOptions) {
		o.refreshAhead = enabled
	}
}

func WithClock(now func() time.Time) Option {
	return func(o *serviceOptions) {
		o.now = now
	}
}

// NewEvaluationService wires one instance of every operation behind tx.
func NewEvaluationService(tx Transactor, logger *zap.Logger, opts ...Option) *EvaluationService {
	if tx == nil {
		panic("transactor must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}

	options := &serviceOptions{now: time.Now}
	for _, opt := range opts {
		opt(options)
	}
	if options.cacheTTL <= 0 {
		options.cacheTTL = defaultCacheDuration
	}
	if options.now == nil {
		options.now = time.Now
	}

	logger = logger.Named("evaluation-service")
	return &EvaluationService{
		tx:           tx,
		logger:       logger,
		cache:        options.cache,
		cacheTTL:     options.cacheTTL,
		refreshAhead: options.refreshAhead,

		trainerCourses:     NewGetCohortCoursesForTrainerOperation(logger),
		traineeEvaluations: NewGetEvaluationsForTraineeOperation(logger),
		currentEvaluation:  NewGetCurrentEvaluationForTraineeOperation(logger, options.now),
		courseEvaluations:  NewGetEvaluationsForCourseOperation(logger),
		evaluation:         NewGetEvaluationOperation(logger),
		create:             NewCreateEvaluationOperation(logger, options.now),
		update:             NewUpdateEvaluationOperation(logger, options.now),
	}
}

// within runs fn in a transaction bounded by txTimeout. Errors that are not
// already service errors surface as ErrStorageFailure.
func within[T any](ctx context.Context, s *EvaluationService, op string, fn func(ctx context.Context, store Store) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, txTimeout)
	defer cancel()

	var out T
	err := s.tx.WithinTx(ctx, func(ctx context.Context, store Store) error {
		var err error
		out, err = fn(ctx, store)
		return err
	})
	if err != nil {
		var zero T
		if !isDomainErr(err) {
			err = storageErr(err)
		}
		s.logger.Debug("operation failed", zap.String("op", op), zap.Error(err))
		return zero, err
	}
	return out, nil
}

func trainerCoursesKey(userName string) string {
	return cacheKeyTrainerCourses + userName
}

func (s *EvaluationService) GetEvaluationsForTrainee(ctx context.Context, traineeUserName string) ([]Evaluation, error) {
	return within(ctx, s, "GetEvaluationsForTrainee", func(ctx context.Context, store Store) ([]Evaluation, error) {
		return s.traineeEvaluations.Execute(ctx, store, traineeUserName)
	})
}

func (s *EvaluationService) GetCurrentEvaluationForTrainee(ctx context.Context, traineeUserName string) (Evaluation, error) {
	return within(ctx, s, "GetCurrentEvaluationForTrainee", func(ctx context.Context, store Store) (Evaluation, error) {
		return s.currentEvaluation.Execute(ctx, store, traineeUserName)
	})
}

// GetCohortCoursesForTrainer returns the trainer's rated cohort courses,
// served through the cache when one is configured.
func (s *EvaluationService) GetCohortCoursesForTrainer(ctx context.Context, trainerUserName string) ([]CohortCourse, error) {
	return cache.FindAndCache(ctx, s.cache, &s.fills, trainerCoursesKey(trainerUserName), s.cacheTTL, s.refreshAhead, s.logger,
		func(ctx context.Context) ([]CohortCourse, error) {
			return within(ctx, s, "GetCohortCoursesForTrainer", func(ctx context.Context, store Store) ([]CohortCourse, error) {
				return s.trainerCourses.Execute(ctx, store, trainerUserName)
			})
		})
}

func (s *EvaluationService) GetEvaluation(ctx context.Context, id int64) (Evaluation, error) {
	return within(ctx, s, "GetEvaluation", func(ctx context.Context, store Store) (Evaluation, error) {
		return s.evaluation.Execute(ctx, store, id)
	})
}

func (s *EvaluationService) GetEvaluationsForCourse(ctx context.Context, cohortCourseID int64) ([]Evaluation, error) {
	return within(ctx, s, "GetEvaluationsForCourse", func(ctx context.Context, store Store) ([]Evaluation, error) {
		return s.courseEvaluations.Execute(ctx, store, cohortCourseID)
	})
}

func (s *EvaluationService) CreateEvaluation(ctx context.Context, e Evaluation) (Evaluation, error) {
	res, err := within(ctx, s, "CreateEvaluation", func(ctx context.Context, store Store) (commandResult, error) {
		return s.create.Execute(ctx, store, e)
	})
	if err != nil {
		return Evaluation{}, err
	}
	s.invalidateTrainerCourses(ctx, res.trainerUserName)
	return res.evaluation, nil
}

func (s *EvaluationService) UpdateEvaluation(ctx context.Context, e Evaluation) (Evaluation, error) {
	res, err := within(ctx, s, "UpdateEvaluation", func(ctx context.Context, store Store) (commandResult, error) {
		return s.update.Execute(ctx, store, e)
	})
	if err != nil {
		return Evaluation{}, err
	}
	s.invalidateTrainerCourses(ctx, res.trainerUserName)
	return res.evaluation, nil
}

func (s *EvaluationService) invalidateTrainerCourses(ctx context.Context, trainerUserName string) {
	if s.cache == nil || trainerUserName == "" {
		return
	}
	if err := s.fills.Invalidate(ctx, s.cache, trainerCoursesKey(trainerUserName)); err != nil {
		s.logger.Warn("failed to invalidate trainer course ratings",
			zap.String("trainer", trainerUserName),
			zap.Error(err))
	}
}

package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/godilite/feedback-server/internal/repository/models"
	"github.com/godilite/feedback-server/pkg/cache"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// evaluationWith builds an evaluation holding one category response per
// raw value, each with a single question response.
func evaluationWith(category string, rawValues ...string) models.CohortCourseEvaluation {
	e := models.CohortCourseEvaluation{Status: string(StatusSubmitted)}
	for i, raw := range rawValues {
		e.CategoryResponses = append(e.CategoryResponses, models.EvalQuestionCategoryResponse{
			ID:           int64(i + 1),
			CategoryName: category,
			QuestionResponses: []models.QuestionResponse{
				{ID: int64(i + 1), QuestionID: 1, ResponseValues: raw},
			},
		})
	}
	return e
}

// passthroughTx runs fn directly against store.
type passthroughTx struct {
	store Store
	calls int
}

func (p *passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context, store Store) error) error {
	p.calls++
	return fn(ctx, p.store)
}

type memoryCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	deleted []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (m *memoryCache) Get(_ context.Context, key string, dest any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.data[key]
	if !ok {
		return cache.ErrMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = raw
	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
		m.deleted = append(m.deleted, k)
	}
	return nil
}

func (m *memoryCache) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

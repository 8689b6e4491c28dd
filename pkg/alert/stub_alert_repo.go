package alert

import (
	"context"
	"sort"
)

type StubAlertRepo struct {
	nextId int
	data   []Alert
}

func NewStubAlertRepo() *StubAlertRepo {
	return &StubAlertRepo{}
}

func (s *StubAlertRepo) Store(ctx context.Context, a Alert) (int, error) {
	s.nextId++
	a.ID = s.nextId
	s.data = append(s.data, a)
	return a.ID, nil
}

func (s *StubAlertRepo) GetAll(ctx context.Context, unreadOnly bool, limit int) ([]Alert, error) {
	var result []Alert
	for _, a := range s.data {
		if unreadOnly && a.IsRead {
			continue
		}
		result = append(result, a)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (s *StubAlertRepo) MarkAllRead(ctx context.Context) (int, error) {
	marked := 0
	for i := range s.data {
		if !s.data[i].IsRead {
			s.data[i].IsRead = true
			marked++
		}
	}
	return marked, nil
}

func (s *StubAlertRepo) Cleanup() {
	s.data = nil
	s.nextId = 0
}

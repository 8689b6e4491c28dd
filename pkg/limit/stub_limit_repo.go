package limit

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
)

type StubLimitRepo struct {
	nextId int
	data   map[int]Limit // keyed by category id
	names  map[int]string
}

func NewStubLimitRepo() *StubLimitRepo {
	return &StubLimitRepo{data: map[int]Limit{}, names: map[int]string{}}
}

func (s *StubLimitRepo) Set(ctx context.Context, categoryId int, amount decimal.Decimal, period Period) error {
	existing, ok := s.data[categoryId]
	id := existing.ID
	if !ok {
		s.nextId++
		id = s.nextId
	}
	s.data[categoryId] = Limit{ID: id, CategoryID: categoryId, Amount: amount, Period: period}
	return nil
}

func (s *StubLimitRepo) Get(ctx context.Context, categoryId int) (Limit, error) {
	l, ok := s.data[categoryId]
	if !ok {
		return Limit{}, ErrNotFound
	}
	return l, nil
}

func (s *StubLimitRepo) Remove(ctx context.Context, categoryId int) (bool, error) {
	_, ok := s.data[categoryId]
	delete(s.data, categoryId)
	return ok, nil
}

func (s *StubLimitRepo) GetAll(ctx context.Context) ([]CategoryLimit, error) {
	limits := make([]CategoryLimit, 0, len(s.data))
	for categoryId, l := range s.data {
		limits = append(limits, CategoryLimit{Limit: l, CategoryName: s.names[categoryId]})
	}
	sort.Slice(limits, func(i, j int) bool { return limits[i].CategoryName < limits[j].CategoryName })
	return limits, nil
}

// SetCategoryName registers the name reported by GetAll for a category.
func (s *StubLimitRepo) SetCategoryName(categoryId int, name string) {
	s.names[categoryId] = name
}

func (s *StubLimitRepo) Cleanup() {
	s.data = map[int]Limit{}
	s.names = map[int]string{}
}

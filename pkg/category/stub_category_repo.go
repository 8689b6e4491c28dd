package category

import (
	"context"
	"fmt"
	"sort"
)

type StubCategoryRepo struct {
	nextId int
	data   map[int]Category
}

func NewStubCategoryRepo() *StubCategoryRepo {
	return &StubCategoryRepo{data: map[int]Category{}}
}

func (s *StubCategoryRepo) Store(ctx context.Context, name string) (int, error) {
	for _, c := range s.data {
		if c.Name == name {
			return 0, fmt.Errorf("%w: %s", ErrAlreadyExists, name)
		}
	}
	s.nextId++
	s.data[s.nextId] = Category{ID: s.nextId, Name: name}
	return s.nextId, nil
}

func (s *StubCategoryRepo) Get(ctx context.Context, id int) (Category, error) {
	c, ok := s.data[id]
	if !ok {
		return Category{}, ErrNotFound
	}
	return c, nil
}

func (s *StubCategoryRepo) GetByName(ctx context.Context, name string) (Category, error) {
	for _, c := range s.data {
		if c.Name == name {
			return c, nil
		}
	}
	return Category{}, fmt.Errorf("%w: %s", ErrNotFound, name)
}

func (s *StubCategoryRepo) GetAll(ctx context.Context) ([]Category, error) {
	categories := make([]Category, 0, len(s.data))
	for _, c := range s.data {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

func (s *StubCategoryRepo) Cleanup() {
	s.data = map[int]Category{}
}

package category

import (
	"context"
	"errors"
	"strings"
)

var ErrEmptyName = errors.New("category name must not be empty")

type Service interface {
	Create(ctx context.Context, name string) (Category, error)
	GetByName(ctx context.Context, name string) (Category, error)
	GetAll(ctx context.Context) ([]Category, error)
}

type ServiceImpl struct {
	repo Repo
}

func NewCategoryService(repo Repo) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) Create(ctx context.Context, name string) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, ErrEmptyName
	}
	id, err := s.repo.Store(ctx, name)
	if err != nil {
		return Category{}, err
	}
	return Category{ID: id, Name: name}, nil
}

func (s *ServiceImpl) GetByName(ctx context.Context, name string) (Category, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]Category, error) {
	return s.repo.GetAll(ctx)
}

package category

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("category not found")
var ErrAlreadyExists = errors.New("category already exists")

type Repo interface {
	// Store stores a new category and returns its id.
	Store(ctx context.Context, name string) (int, error)
	Get(ctx context.Context, id int) (Category, error)
	GetByName(ctx context.Context, name string) (Category, error)
	GetAll(ctx context.Context) ([]Category, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewCategoryRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) Store(ctx context.Context, name string) (int, error) {
	var existing int
	err := r.db.QueryRowContext(ctx, "SELECT id FROM categories WHERE name = ?", name).Scan(&existing)
	if err == nil {
		return 0, fmt.Errorf("%w: %s", ErrAlreadyExists, name)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		err := fmt.Errorf("could not check for existing category: %w", err)
		log.Error(err)
		return 0, err
	}

	result, err := r.db.ExecContext(ctx, "INSERT INTO categories (name) VALUES (?)", name)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return 0, err
	}
	lastInsertID, err := result.LastInsertId()
	if err != nil {
		err := fmt.Errorf("could not retrieve last insert id: %w", err)
		log.Error(err)
		return 0, err
	}
	return int(lastInsertID), nil
}

func (r *RepoImpl) Get(ctx context.Context, id int) (Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx, "SELECT id, name FROM categories WHERE id = ?", id).
		Scan(&c.ID, &c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return Category{}, ErrNotFound
	}
	if err != nil {
		err := fmt.Errorf("could not get category: %w", err)
		log.Error(err)
		return Category{}, err
	}
	return c, nil
}

func (r *RepoImpl) GetByName(ctx context.Context, name string) (Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx, "SELECT id, name FROM categories WHERE name = ?", name).
		Scan(&c.ID, &c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return Category{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		err := fmt.Errorf("could not get category: %w", err)
		log.Error(err)
		return Category{}, err
	}
	return c, nil
}

func (r *RepoImpl) GetAll(ctx context.Context) ([]Category, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name FROM categories ORDER BY name")
	if err != nil {
		err := fmt.Errorf("could not query categories: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			err := fmt.Errorf("could not scan category: %w", err)
			log.Error(err)
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return categories, nil
}

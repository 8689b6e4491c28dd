package category

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (Service, context.Context, func()) {
	repo := NewStubCategoryRepo()
	service := NewCategoryService(repo)
	return service, context.Background(), func() {
		repo.Cleanup()
	}
}

func TestCategoryServiceImpl_Create(t *testing.T) {
	service, ctx, teardown := setup(t)
	defer teardown()

	created, err := service.Create(ctx, "groceries")

	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "groceries", created.Name)
}

func TestCategoryServiceImpl_Create_trimsWhitespace(t *testing.T) {
	service, ctx, teardown := setup(t)
	defer teardown()

	created, err := service.Create(ctx, "  groceries  ")

	require.NoError(t, err)
	assert.Equal(t, "groceries", created.Name)
}

func TestCategoryServiceImpl_Create_rejectsEmptyName(t *testing.T) {
	service, ctx, teardown := setup(t)
	defer teardown()

	_, err := service.Create(ctx, "   ")

	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestCategoryServiceImpl_Create_duplicateName(t *testing.T) {
	service, ctx, teardown := setup(t)
	defer teardown()

	_, err := service.Create(ctx, "groceries")
	require.NoError(t, err)

	_, err = service.Create(ctx, "groceries")

	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestCategoryServiceImpl_GetByName(t *testing.T) {
	service, ctx, teardown := setup(t)
	defer teardown()

	created, err := service.Create(ctx, "groceries")
	require.NoError(t, err)

	found, err := service.GetByName(ctx, "groceries")
	require.NoError(t, err)
	assert.Equal(t, created, found)

	_, err = service.GetByName(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryServiceImpl_GetAll_sortedByName(t *testing.T) {
	service, ctx, teardown := setup(t)
	defer teardown()

	for _, name := range []string{"rent", "groceries", "utilities"} {
		_, err := service.Create(ctx, name)
		require.NoError(t, err)
	}

	categories, err := service.GetAll(ctx)

	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "groceries", categories[0].Name)
	assert.Equal(t, "rent", categories[1].Name)
	assert.Equal(t, "utilities", categories[2].Name)
}
